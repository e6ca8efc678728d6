package controllers

import (
	"net/http"
	"testing"

	"github.com/l3montree-dev/deppkg/mocks"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurl2Comp(t *testing.T) {
	e := echo.New()
	session := shared.CatalogSession{BaseURL: "https://catalog.example.com"}

	t.Run("should create the component of the purl", func(t *testing.T) {
		identityService := mocks.NewComponentIdentityService(t)
		identityService.On("EnsureComponentForPurl", mock.Anything, session, "pkg:npm/left-pad@1.3.0").Return(nil).Once()

		ctx, rec := newUploadContext(e, "/msapi/purl2comp", `{"purl": "pkg:npm/left-pad@1.3.0"}`)
		shared.SetCatalogSession(ctx, session)

		err := NewPurlController(identityService).Purl2Comp(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject a missing purl", func(t *testing.T) {
		ctx, _ := newUploadContext(e, "/msapi/purl2comp", `{}`)
		shared.SetCatalogSession(ctx, session)

		err := NewPurlController(mocks.NewComponentIdentityService(t)).Purl2Comp(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("should reject an invalid purl", func(t *testing.T) {
		ctx, _ := newUploadContext(e, "/msapi/purl2comp", `{"purl": "left-pad"}`)
		shared.SetCatalogSession(ctx, session)

		err := NewPurlController(mocks.NewComponentIdentityService(t)).Purl2Comp(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("should answer 500 if the catalog failed", func(t *testing.T) {
		identityService := mocks.NewComponentIdentityService(t)
		identityService.On("EnsureComponentForPurl", mock.Anything, session, "pkg:npm/left-pad@1.3.0").Return(errors.New("catalog down")).Once()

		ctx, _ := newUploadContext(e, "/msapi/purl2comp", `{"purl": "pkg:npm/left-pad@1.3.0"}`)
		shared.SetCatalogSession(ctx, session)

		err := NewPurlController(identityService).Purl2Comp(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusInternalServerError, he.Code)
	})
}
