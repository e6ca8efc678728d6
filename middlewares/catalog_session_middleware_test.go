package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/deppkg/mocks"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogSessionMiddleware(t *testing.T) {
	detector := NewCatalogURLDetector(shared.Config{CatalogURL: "https://catalog.example.com/"})

	t.Run("should reject callers the validation service does not accept", func(t *testing.T) {
		validator := mocks.NewUserValidator(t)
		validator.On("Validate", mock.Anything, mock.Anything).Return(errors.New("status 403")).Once()

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/msapi/deppkg/cyclonedx?compid=1", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		called := false
		err := CatalogSessionMiddleware(validator, detector)(func(ctx shared.Context) error {
			called = true
			return nil
		})(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
		assert.Equal(t, "Authorization Failed", he.Message)
		assert.False(t, called)
	})

	t.Run("should set the catalog session with the cookies of the caller", func(t *testing.T) {
		validator := mocks.NewUserValidator(t)
		validator.On("Validate", mock.Anything, mock.MatchedBy(func(cookies []*http.Cookie) bool {
			return len(cookies) == 1 && cookies[0].Name == "token"
		})).Return(nil).Once()

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/msapi/purl2comp", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "abc"})
		ctx := e.NewContext(req, httptest.NewRecorder())

		var session shared.CatalogSession
		err := CatalogSessionMiddleware(validator, detector)(func(ctx shared.Context) error {
			session = shared.GetCatalogSession(ctx)
			return nil
		})(ctx)

		require.NoError(t, err)
		assert.Equal(t, "https://catalog.example.com", session.BaseURL)
		require.Len(t, session.Cookies, 1)
		assert.Equal(t, "abc", session.Cookies[0].Value)
	})
}

func TestCatalogURLDetector(t *testing.T) {
	t.Run("should keep https requests as they are", func(t *testing.T) {
		d := NewCatalogURLDetector(shared.Config{})

		assert.Equal(t, "https://example.com", d.BaseURL(t.Context(), "https", "example.com"))
	})

	t.Run("should fall back to the original scheme if https is not reachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()
		host := srv.Listener.Addr().String()

		d := NewCatalogURLDetector(shared.Config{})

		// the plain http test server cannot answer a tls handshake
		assert.Equal(t, "http://"+host, d.BaseURL(t.Context(), "http", host))
	})
}
