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

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/normalize"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/labstack/echo/v4"
)

type PurlController struct {
	identityService shared.ComponentIdentityService
}

func NewPurlController(identityService shared.ComponentIdentityService) *PurlController {
	return &PurlController{identityService: identityService}
}

// Purl2Comp creates the catalog component of a package release and tags it with its origin.
func (c *PurlController) Purl2Comp(ctx shared.Context) error {
	var req dtos.Purl2CompRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "purl is required").WithInternal(err)
	}
	if _, err := normalize.ParseCoordinate(req.Purl); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid purl").WithInternal(err)
	}

	if err := c.identityService.EnsureComponentForPurl(ctx.Request().Context(), shared.GetCatalogSession(ctx), req.Purl); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create component").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, dtos.DetailResponse{Detail: "component created"})
}
