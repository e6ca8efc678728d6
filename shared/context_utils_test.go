package shared_test

import (
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/deppkg/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCatalogSession(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())

	_, ok := shared.MaybeGetCatalogSession(ctx)
	assert.False(t, ok)

	shared.SetCatalogSession(ctx, shared.CatalogSession{BaseURL: "https://catalog.example.com"})

	session, ok := shared.MaybeGetCatalogSession(ctx)
	assert.True(t, ok)
	assert.Equal(t, "https://catalog.example.com", session.BaseURL)
	assert.Equal(t, "https://catalog.example.com", shared.GetCatalogSession(ctx).BaseURL)
}
