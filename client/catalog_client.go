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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrCatalogNotFound is returned when the catalog answers without success.
var ErrCatalogNotFound = errors.New("catalog object not found")

const catalogTimeout = 300 * time.Second

type CatalogClient struct {
	httpClient *http.Client
}

func NewCatalogClient() *CatalogClient {
	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: catalogTimeout,
			Transport: otelhttp.NewTransport(&http.Transport{
				MaxIdleConnsPerHost: 10,
			}),
		},
	}
}

// NewCatalogClientWithHTTPClient is used by tests to talk to an httptest server.
func NewCatalogClientWithHTTPClient(httpClient *http.Client) *CatalogClient {
	return &CatalogClient{httpClient: httpClient}
}

// quote escapes s for use inside a url path or query value.
// Spaces become %20 instead of +, the catalog does not decode + in paths.
func quote(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (c *CatalogClient) do(ctx context.Context, session shared.CatalogSession, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(session.BaseURL, "/")+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, cookie := range session.Cookies {
		req.AddCookie(cookie)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not reach catalog")
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read catalog response")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d for %s", res.StatusCode, path)
	}
	return b, nil
}

func getJSON[T any](ctx context.Context, c *CatalogClient, session shared.CatalogSession, path string) (dtos.CatalogResponse[T], error) {
	var resp dtos.CatalogResponse[T]
	b, err := c.do(ctx, session, http.MethodGet, path, nil, "")
	if err != nil {
		return resp, err
	}
	if err := json.Unmarshal(b, &resp); err != nil {
		return resp, errors.Wrap(err, "could not decode catalog response")
	}
	return resp, nil
}

// createdID extracts the id of a freshly created catalog object.
func createdID(resp dtos.CatalogResponse[dtos.CatalogObjectRef]) (int, error) {
	if resp.Result == nil || resp.Result.ID <= 0 {
		if resp.Error != "" {
			return 0, errors.New(resp.Error)
		}
		return 0, errors.New("catalog did not return an id")
	}
	return int(resp.Result.ID), nil
}

func (c *CatalogClient) Login(ctx context.Context, baseURL, user, password string) (shared.CatalogSession, error) {
	session := shared.CatalogSession{BaseURL: strings.TrimRight(baseURL, "/")}

	form := url.Values{}
	form.Set("user", user)
	form.Set("pass", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, session.BaseURL+"/dmadminweb/API/login", strings.NewReader(form.Encode()))
	if err != nil {
		return session, errors.Wrap(err, "could not create login request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return session, errors.Wrap(err, "could not reach catalog")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return session, fmt.Errorf("catalog login failed with status %d", res.StatusCode)
	}

	var resp dtos.CatalogResponse[json.RawMessage]
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return session, errors.Wrap(err, "could not decode login response")
	}
	if !resp.Success {
		return session, errors.Errorf("catalog login rejected: %s", resp.Error)
	}

	session.Cookies = res.Cookies()
	return session, nil
}

func (c *CatalogClient) GetComponent(ctx context.Context, session shared.CatalogSession, qualifiedName string, idOnly, latest bool) (dtos.CatalogComponent, error) {
	path := "/dmadminweb/API/component/?name=" + quote(qualifiedName)
	if idOnly {
		path += "&idonly=Y"
	}
	if latest {
		path += "&latest=Y"
	}

	resp, err := getJSON[dtos.CatalogComponent](ctx, c, session, path)
	if err != nil {
		return dtos.CatalogComponent{}, err
	}
	if !resp.Success || resp.Result == nil {
		return dtos.CatalogComponent{}, ErrCatalogNotFound
	}
	return *resp.Result, nil
}

func (c *CatalogClient) GetComponentByID(ctx context.Context, session shared.CatalogSession, id int) (dtos.CatalogComponent, error) {
	resp, err := getJSON[dtos.CatalogComponent](ctx, c, session, "/dmadminweb/API/component/"+strconv.Itoa(id)+"?idonly=Y")
	if err != nil {
		return dtos.CatalogComponent{}, err
	}
	if !resp.Success || resp.Result == nil {
		return dtos.CatalogComponent{}, ErrCatalogNotFound
	}
	return *resp.Result, nil
}

func (c *CatalogClient) NewBaseComponent(ctx context.Context, session shared.CatalogSession, qualifiedName string) (int, error) {
	resp, err := getJSON[dtos.CatalogObjectRef](ctx, c, session, "/dmadminweb/API/new/compver/?name="+quote(qualifiedName))
	if err != nil {
		return 0, err
	}
	return createdID(resp)
}

func (c *CatalogClient) NewComponentFromParent(ctx context.Context, session shared.CatalogSession, parentID int) (int, error) {
	resp, err := getJSON[dtos.CatalogObjectRef](ctx, c, session, "/dmadminweb/API/new/compver/"+strconv.Itoa(parentID))
	if err != nil {
		return 0, err
	}
	return createdID(resp)
}

func (c *CatalogClient) UpdateName(ctx context.Context, session shared.CatalogSession, id int, name string) error {
	_, err := c.do(ctx, session, http.MethodGet, "/dmadminweb/UpdateSummaryData?objtype=23&id="+strconv.Itoa(id)+"&change_1="+quote(name), nil, "")
	return err
}

func (c *CatalogClient) ResetItems(ctx context.Context, session shared.CatalogSession, compID int, kind dtos.ComponentKind) error {
	_, err := c.do(ctx, session, http.MethodGet, "/dmadminweb/UpdateAttrs?f=inv&c="+strconv.Itoa(compID)+"&xpos=100&ypos=100&kind="+string(kind)+"&removeall=Y", nil, "")
	return err
}

func (c *CatalogClient) NewComponentItem(ctx context.Context, session shared.CatalogSession, compID int, item dtos.ComponentItemRequest) (int, error) {
	var sb strings.Builder
	sb.WriteString("/dmadminweb/API/new/compitem/")
	sb.WriteString(quote(item.Name))
	fmt.Fprintf(&sb, "?component=%d&xpos=100&ypos=%d&kind=%s", compID, item.YPos, item.Kind)
	for _, attr := range item.Attributes {
		sb.WriteString("&" + quote(attr.Key) + "=" + quote(attr.Value))
	}
	if item.RemoveAll {
		sb.WriteString("&removeall=Y")
	}

	resp, err := getJSON[dtos.CatalogObjectRef](ctx, c, session, sb.String())
	if err != nil {
		return 0, err
	}
	return createdID(resp)
}

func (c *CatalogClient) LinkItems(ctx context.Context, session shared.CatalogSession, compID int, fromItemID, toItemID int) error {
	_, err := c.do(ctx, session, http.MethodGet, fmt.Sprintf("/dmadminweb/UpdateAttrs?f=iad&c=%d&fn=%d&tn=%d", compID, fromItemID, toItemID), nil, "")
	return err
}

func (c *CatalogClient) SetComponentAttributes(ctx context.Context, session shared.CatalogSession, compID int, attrs dtos.ProvenanceAttributes) error {
	payload, err := json.Marshal(attrs)
	if err != nil {
		return errors.Wrap(err, "could not marshal attributes")
	}
	_, err = c.do(ctx, session, http.MethodPost, "/dmadminweb/API/setvar/component/"+strconv.Itoa(compID), bytes.NewReader(payload), "application/json")
	return err
}
