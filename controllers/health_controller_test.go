package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/deppkg/mocks"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	e := echo.New()

	t.Run("should report UP if the database answers", func(t *testing.T) {
		checker := mocks.NewHealthChecker(t)
		checker.On("Ping", mock.Anything).Return(nil).Once()
		rec := httptest.NewRecorder()

		require.NoError(t, NewHealthController(checker).Health(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"UP","service_name":"ortelius-ms-dep-pkg-cud"}`, rec.Body.String())
	})

	t.Run("should report DOWN with 503 otherwise", func(t *testing.T) {
		checker := mocks.NewHealthChecker(t)
		checker.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
		rec := httptest.NewRecorder()

		require.NoError(t, NewHealthController(checker).Health(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"DOWN","service_name":"ortelius-ms-dep-pkg-cud"}`, rec.Body.String())
	})
}
