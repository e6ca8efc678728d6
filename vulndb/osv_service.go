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

package vulndb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxOSVPages bounds the pagination of a single query
const maxOSVPages = 10

type osvService struct {
	httpClient *http.Client
	baseURL    string
}

var _ shared.OSVService = (*osvService)(nil)

func NewOSVService(cfg shared.Config) *osvService {
	return newOSVService(cfg.OSVAPIURL)
}

func newOSVService(baseURL string) *osvService {
	return &osvService{
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// QueryFor builds the query of a package row. The purl is preferred,
// without purl name and version are sent lower cased.
func QueryFor(row dtos.PackageRow, queryPurl string) dtos.OSVQuery {
	if queryPurl != "" {
		return dtos.OSVQuery{Package: dtos.OSVPackage{Purl: queryPurl}}
	}
	return dtos.OSVQuery{
		Package: dtos.OSVPackage{Name: strings.ToLower(row.PackageName)},
		Version: strings.ToLower(row.PackageVersion),
	}
}

// Query returns all findings of the vulnerability database for the query, following pagination.
func (s *osvService) Query(ctx context.Context, query dtos.OSVQuery) ([]dtos.OSV, error) {
	var result []dtos.OSV
	for range maxOSVPages {
		page, err := s.queryPage(ctx, query)
		if err != nil {
			return result, err
		}
		result = append(result, page.Vulns...)

		if page.NextPageToken == "" {
			return result, nil
		}
		query.PageToken = page.NextPageToken
	}
	return result, nil
}

func (s *osvService) queryPage(ctx context.Context, query dtos.OSVQuery) (dtos.OSVQueryResponse, error) {
	var res dtos.OSVQueryResponse

	body, err := json.Marshal(query)
	if err != nil {
		return res, errors.Wrap(err, "could not marshal query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/query", bytes.NewReader(body))
	if err != nil {
		return res, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return res, errors.Wrap(err, "could not query vulnerability database")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("vulnerability database returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return res, errors.Wrap(err, "could not decode vulnerability database response")
	}
	return res, nil
}
