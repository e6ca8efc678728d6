package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, handler http.HandlerFunc) (*CatalogClient, shared.CatalogSession) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	session := shared.CatalogSession{
		BaseURL: srv.URL,
		Cookies: []*http.Cookie{{Name: "token", Value: "abc"}},
	}
	return NewCatalogClientWithHTTPClient(srv.Client()), session
}

func TestGetComponent(t *testing.T) {
	t.Run("forwards the session cookies and query flags", func(t *testing.T) {
		c, session := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			require.NoError(t, err)
			assert.Equal(t, "abc", cookie.Value)
			assert.Equal(t, "/dmadminweb/API/component/", r.URL.Path)
			assert.Equal(t, "GLOBAL.Open Source.npm.left_pad;1_3_0", r.URL.Query().Get("name"))
			assert.Equal(t, "Y", r.URL.Query().Get("idonly"))
			assert.Equal(t, "Y", r.URL.Query().Get("latest"))
			w.Write([]byte(`{"success":true,"result":{"id":"17","name":"left_pad;1_3_0","versions":[{"id":18,"name":"left_pad;1_3_1"}]}}`)) // nolint:errcheck
		})

		comp, err := c.GetComponent(context.Background(), session, "GLOBAL.Open Source.npm.left_pad;1_3_0", true, true)
		require.NoError(t, err)
		assert.Equal(t, dtos.CatalogID(17), comp.ID)
		assert.Equal(t, "left_pad;1_3_0", comp.Name)
		require.Len(t, comp.Versions, 1)
		assert.Equal(t, dtos.CatalogID(18), comp.Versions[0].ID)
	})

	t.Run("reports a miss as not found", func(t *testing.T) {
		c, session := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"error":"Component not found"}`)) // nolint:errcheck
		})

		_, err := c.GetComponent(context.Background(), session, "GLOBAL.acme", false, true)
		assert.ErrorIs(t, err, ErrCatalogNotFound)
	})

	t.Run("reports a server error", func(t *testing.T) {
		c, session := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.GetComponent(context.Background(), session, "GLOBAL.acme", false, true)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCatalogNotFound)
	})
}

func TestCreateCalls(t *testing.T) {
	var paths []string
	c, session := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.RequestURI())
		w.Write([]byte(`{"success":true,"result":{"id":42}}`)) // nolint:errcheck
	})
	ctx := context.Background()

	id, err := c.NewBaseComponent(ctx, session, "GLOBAL.acme.widget;2_0_0")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	id, err = c.NewComponentFromParent(ctx, session, 41)
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	require.NoError(t, c.UpdateName(ctx, session, 42, "widget;2_0_0"))
	require.NoError(t, c.ResetItems(ctx, session, 42, dtos.ComponentKindDocker))

	id, err = c.NewComponentItem(ctx, session, 42, dtos.ComponentItemRequest{
		Name:       "base image",
		Kind:       dtos.ComponentKindFile,
		YPos:       200,
		Attributes: []dtos.ItemAttribute{{Key: "repository", Value: "acme/base"}},
		RemoveAll:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	require.NoError(t, c.LinkItems(ctx, session, 42, 1, 2))

	assert.Equal(t, []string{
		"/dmadminweb/API/new/compver/?name=GLOBAL.acme.widget%3B2_0_0",
		"/dmadminweb/API/new/compver/41",
		"/dmadminweb/UpdateSummaryData?objtype=23&id=42&change_1=widget%3B2_0_0",
		"/dmadminweb/UpdateAttrs?f=inv&c=42&xpos=100&ypos=100&kind=docker&removeall=Y",
		"/dmadminweb/API/new/compitem/base%20image?component=42&xpos=100&ypos=200&kind=file&repository=acme%2Fbase&removeall=Y",
		"/dmadminweb/UpdateAttrs?f=iad&c=42&fn=1&tn=2",
	}, paths)
}

func TestCreateWithoutID(t *testing.T) {
	c, session := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"no permission"}`)) // nolint:errcheck
	})

	_, err := c.NewBaseComponent(context.Background(), session, "GLOBAL.acme")
	assert.EqualError(t, err, "no permission")
}

func TestSetComponentAttributes(t *testing.T) {
	c, session := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dmadminweb/API/setvar/component/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var attrs map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&attrs))
		assert.Equal(t, map[string]string{
			"Purl":   "pkg:npm/left-pad@1.3.0",
			"GitUrl": "https://github.com/org/left-pad",
		}, attrs)
		w.Write([]byte(`{"success":true}`)) // nolint:errcheck
	})

	err := c.SetComponentAttributes(context.Background(), session, 7, dtos.ProvenanceAttributes{
		Purl:   "pkg:npm/left-pad@1.3.0",
		GitURL: "https://github.com/org/left-pad",
	})
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	t.Run("returns the session cookies", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "admin", r.PostForm.Get("user"))
			assert.Equal(t, "secret", r.PostForm.Get("pass"))
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "xyz"})
			io.WriteString(w, `{"success":true}`) // nolint:errcheck
		}))
		defer srv.Close()

		session, err := NewCatalogClientWithHTTPClient(srv.Client()).Login(context.Background(), srv.URL+"/", "admin", "secret")
		require.NoError(t, err)
		assert.Equal(t, srv.URL, session.BaseURL)
		require.Len(t, session.Cookies, 1)
		assert.Equal(t, "xyz", session.Cookies[0].Value)
	})

	t.Run("fails when the catalog rejects the credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"success":false,"error":"wrong password"}`) // nolint:errcheck
		}))
		defer srv.Close()

		_, err := NewCatalogClientWithHTTPClient(srv.Client()).Login(context.Background(), srv.URL, "admin", "nope")
		assert.ErrorContains(t, err, "wrong password")
	})
}
