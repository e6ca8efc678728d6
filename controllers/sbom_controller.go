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
	"encoding/json"
	"net/http"
	"strconv"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/normalize"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/labstack/echo/v4"
	spdxjson "github.com/spdx/tools-golang/json"
)

const (
	detailUpdated    = "components updated succesfully"
	detailNotUpdated = "components not updated"
)

type SBOMController struct {
	sbomService     shared.SBOMService
	safetyDBService shared.SafetyDBService
}

func NewSBOMController(sbomService shared.SBOMService, safetyDBService shared.SafetyDBService) *SBOMController {
	return &SBOMController{
		sbomService:     sbomService,
		safetyDBService: safetyDBService,
	}
}

func getCompID(ctx shared.Context) (int, error) {
	compID, err := strconv.Atoi(ctx.QueryParam("compid"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "compid must be an integer").WithInternal(err)
	}
	return compID, nil
}

// SBOMType tells the catalog which sbom shape this service accepts.
func (c *SBOMController) SBOMType(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, dtos.SBOMTypeResponse{SBOMType: "preparsed"})
}

func (c *SBOMController) UploadCycloneDX(ctx shared.Context) error {
	compID, err := getCompID(ctx)
	if err != nil {
		return err
	}

	var bom cdx.BOM
	if err := cdx.NewBOMDecoder(ctx.Request().Body, cdx.BOMFileFormatJSON).Decode(&bom); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid CycloneDX document").WithInternal(err)
	}

	return c.save(ctx, compID, dtos.DepTypeLicense, normalize.CycloneDXLicenseTuples(&bom), true)
}

func (c *SBOMController) UploadSPDX(ctx shared.Context) error {
	compID, err := getCompID(ctx)
	if err != nil {
		return err
	}

	doc, err := spdxjson.Read(ctx.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid SPDX document").WithInternal(err)
	}

	return c.save(ctx, compID, dtos.DepTypeLicense, normalize.SPDXLicenseTuples(doc), true)
}

func (c *SBOMController) UploadSafety(ctx shared.Context) error {
	compID, err := getCompID(ctx)
	if err != nil {
		return err
	}

	var rows []normalize.SafetyReportRow
	if err := json.NewDecoder(ctx.Request().Body).Decode(&rows); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid safety report").WithInternal(err)
	}

	tuples, err := normalize.SafetyCVETuples(ctx.Request().Context(), rows, c.safetyDBService)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid safety report").WithInternal(err)
	}

	return c.save(ctx, compID, dtos.DepTypeCVE, tuples, false)
}

func (c *SBOMController) save(ctx shared.Context, compID int, depType dtos.DepType, tuples []dtos.ComponentDependencyTuple, scan bool) error {
	if len(tuples) == 0 {
		return ctx.JSON(http.StatusOK, dtos.DetailResponse{Detail: detailNotUpdated})
	}

	stored, err := c.sbomService.SaveComponentDeps(ctx.Request().Context(), compID, depType, tuples)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not store components").WithInternal(err)
	}

	if scan {
		var session *shared.CatalogSession
		if s, ok := shared.MaybeGetCatalogSession(ctx); ok {
			session = &s
		}
		c.sbomService.ScheduleScan(session, tuples)
	}

	if stored > 0 {
		return ctx.JSON(http.StatusCreated, dtos.DetailResponse{Detail: detailUpdated})
	}
	return ctx.JSON(http.StatusOK, dtos.DetailResponse{Detail: detailNotUpdated})
}
