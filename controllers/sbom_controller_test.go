package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/mocks"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const cyclonedxUpload = `{
	"bomFormat": "CycloneDX",
	"specVersion": "1.5",
	"version": 1,
	"components": [
		{"type": "library", "name": "left-pad", "version": "1.3.0", "purl": "pkg:npm/left-pad@1.3.0", "licenses": [{"license": {"id": "MIT"}}]}
	]
}`

func newUploadContext(e *echo.Echo, target, body string) (shared.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUploadCycloneDX(t *testing.T) {
	e := echo.New()
	leftPad := []dtos.ComponentDependencyTuple{{PackageName: "left-pad", PackageVersion: "1.3.0", Purl: "pkg:npm/left-pad@1.3.0", PkgType: "npm", Name: "MIT", URL: "https://spdx.org/licenses/MIT.html"}}

	t.Run("should answer 201 if rows were stored and schedule a scan", func(t *testing.T) {
		sbomService := mocks.NewSBOMService(t)
		session := shared.CatalogSession{BaseURL: "https://catalog.example.com"}
		sbomService.On("SaveComponentDeps", mock.Anything, 42, dtos.DepTypeLicense, leftPad).Return(int64(1), nil).Once()
		sbomService.On("ScheduleScan", &session, leftPad).Return().Once()

		ctx, rec := newUploadContext(e, "/msapi/deppkg/cyclonedx?compid=42", cyclonedxUpload)
		shared.SetCatalogSession(ctx, session)

		err := NewSBOMController(sbomService, mocks.NewSafetyDBService(t)).UploadCycloneDX(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"detail":"components updated succesfully"}`, rec.Body.String())
	})

	t.Run("should answer 200 if nothing was stored", func(t *testing.T) {
		sbomService := mocks.NewSBOMService(t)
		sbomService.On("SaveComponentDeps", mock.Anything, 42, dtos.DepTypeLicense, leftPad).Return(int64(0), nil).Once()
		sbomService.On("ScheduleScan", (*shared.CatalogSession)(nil), leftPad).Return().Once()

		ctx, rec := newUploadContext(e, "/msapi/deppkg/cyclonedx?compid=42", cyclonedxUpload)

		err := NewSBOMController(sbomService, mocks.NewSafetyDBService(t)).UploadCycloneDX(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"detail":"components not updated"}`, rec.Body.String())
	})

	t.Run("should not store anything for a bom without components", func(t *testing.T) {
		ctx, rec := newUploadContext(e, "/msapi/deppkg/cyclonedx?compid=42", `{"bomFormat": "CycloneDX", "specVersion": "1.5", "version": 1}`)

		err := NewSBOMController(mocks.NewSBOMService(t), mocks.NewSafetyDBService(t)).UploadCycloneDX(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"detail":"components not updated"}`, rec.Body.String())
	})

	t.Run("should reject an invalid compid", func(t *testing.T) {
		ctx, _ := newUploadContext(e, "/msapi/deppkg/cyclonedx?compid=abc", cyclonedxUpload)

		err := NewSBOMController(mocks.NewSBOMService(t), mocks.NewSafetyDBService(t)).UploadCycloneDX(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("should reject a broken document", func(t *testing.T) {
		ctx, _ := newUploadContext(e, "/msapi/deppkg/cyclonedx?compid=42", `{"components": [`)

		err := NewSBOMController(mocks.NewSBOMService(t), mocks.NewSafetyDBService(t)).UploadCycloneDX(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("should answer 500 if the rows could not be stored", func(t *testing.T) {
		sbomService := mocks.NewSBOMService(t)
		sbomService.On("SaveComponentDeps", mock.Anything, 42, dtos.DepTypeLicense, leftPad).Return(int64(0), errors.New("db down")).Once()

		ctx, _ := newUploadContext(e, "/msapi/deppkg/cyclonedx?compid=42", cyclonedxUpload)

		err := NewSBOMController(sbomService, mocks.NewSafetyDBService(t)).UploadCycloneDX(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusInternalServerError, he.Code)
	})
}

func TestUploadSPDX(t *testing.T) {
	e := echo.New()
	doc := `{
		"spdxVersion": "SPDX-2.3",
		"dataLicense": "CC0-1.0",
		"SPDXID": "SPDXRef-DOCUMENT",
		"name": "app",
		"documentNamespace": "https://example.com/app",
		"creationInfo": {"created": "2024-01-01T00:00:00Z", "creators": ["Tool: test"]},
		"packages": [
			{
				"SPDXID": "SPDXRef-Package-lodash",
				"name": "lodash",
				"versionInfo": "4.17.21",
				"downloadLocation": "NOASSERTION",
				"licenseDeclared": "MIT",
				"externalRefs": [{"referenceCategory": "PACKAGE-MANAGER", "referenceType": "purl", "referenceLocator": "pkg:npm/lodash@4.17.21"}]
			}
		]
	}`

	sbomService := mocks.NewSBOMService(t)
	lodash := []dtos.ComponentDependencyTuple{{PackageName: "lodash", PackageVersion: "4.17.21", Purl: "pkg:npm/lodash@4.17.21", PkgType: "npm", Name: "MIT", URL: "https://spdx.org/licenses/MIT.html"}}
	sbomService.On("SaveComponentDeps", mock.Anything, 7, dtos.DepTypeLicense, lodash).Return(int64(1), nil).Once()
	sbomService.On("ScheduleScan", mock.Anything, lodash).Return().Once()

	ctx, rec := newUploadContext(e, "/msapi/deppkg/spdx?compid=7", doc)

	err := NewSBOMController(sbomService, mocks.NewSafetyDBService(t)).UploadSPDX(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUploadSafety(t *testing.T) {
	e := echo.New()

	t.Run("should store the findings as cves without scanning", func(t *testing.T) {
		sbomService := mocks.NewSBOMService(t)
		safetyDBService := mocks.NewSafetyDBService(t)
		safetyDBService.On("LookupCVE", mock.Anything, "pillow", "25853").Return("CVE-2014-1932", "https://nvd.nist.gov/vuln/detail/CVE-2014-1932").Once()
		sbomService.On("SaveComponentDeps", mock.Anything, 3, dtos.DepTypeCVE, []dtos.ComponentDependencyTuple{{
			PackageName:    "pillow",
			PackageVersion: "2.0.0",
			Name:           "CVE-2014-1932",
			URL:            "https://nvd.nist.gov/vuln/detail/CVE-2014-1932",
			Summary:        "overwrite files",
		}}).Return(int64(1), nil).Once()

		ctx, rec := newUploadContext(e, "/msapi/deppkg/safety?compid=3", `[["pillow", "<2.3.1", "2.0.0", "overwrite files", "25853", null]]`)

		err := NewSBOMController(sbomService, safetyDBService).UploadSafety(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should reject a report with short rows", func(t *testing.T) {
		ctx, _ := newUploadContext(e, "/msapi/deppkg/safety?compid=3", `[["pillow"]]`)

		err := NewSBOMController(mocks.NewSBOMService(t), mocks.NewSafetyDBService(t)).UploadSafety(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestSBOMType(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/msapi/deppkg", nil), httptest.NewRecorder())
	rec := ctx.Response().Writer.(*httptest.ResponseRecorder)

	require.NoError(t, NewSBOMController(nil, nil).SBOMType(ctx))
	assert.JSONEq(t, `{"SBOMType":"preparsed"}`, rec.Body.String())
}
