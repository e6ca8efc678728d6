// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"github.com/l3montree-dev/deppkg/controllers"
	"github.com/l3montree-dev/deppkg/middlewares"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/labstack/echo/v4"
)

type MSAPIRouter struct {
	*echo.Group
}

func NewMSAPIRouter(
	srv *echo.Echo,
	sbomController *controllers.SBOMController,
	purlController *controllers.PurlController,
	userValidator shared.UserValidator,
	catalogURLDetector *middlewares.CatalogURLDetector,
) MSAPIRouter {
	msapiRouter := srv.Group("/msapi")
	msapiRouter.GET("/deppkg", sbomController.SBOMType)

	/**
	All routes below need a caller the validate user service accepts.
	*/
	catalogSession := middlewares.CatalogSessionMiddleware(userValidator, catalogURLDetector)

	deppkgRouter := msapiRouter.Group("/deppkg", catalogSession)
	deppkgRouter.POST("/cyclonedx", sbomController.UploadCycloneDX)
	deppkgRouter.POST("/spdx", sbomController.UploadSPDX)
	deppkgRouter.POST("/safety", sbomController.UploadSafety)

	msapiRouter.POST("/purl2comp", purlController.Purl2Comp, catalogSession)

	return MSAPIRouter{
		Group: msapiRouter,
	}
}
