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
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/deppkg/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrUnauthorized is returned when the validation service rejects the caller.
var ErrUnauthorized = errors.New("authorization failed")

const validateUserTimeout = 5 * time.Second

// HTTPUserValidator delegates the authorization decision to the validate user service.
type HTTPUserValidator struct {
	httpClient *http.Client
	url        string
}

var _ shared.UserValidator = (*HTTPUserValidator)(nil)

func NewHTTPUserValidator(cfg shared.Config) *HTTPUserValidator {
	return newHTTPUserValidator(cfg.ValidateUserURL, &http.Client{
		Timeout:   validateUserTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func newHTTPUserValidator(baseURL string, httpClient *http.Client) *HTTPUserValidator {
	return &HTTPUserValidator{
		httpClient: httpClient,
		url:        strings.TrimRight(baseURL, "/") + "/msapi/validateuser",
	}
}

func (v *HTTPUserValidator) Validate(ctx context.Context, cookies []*http.Cookie) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return errors.Wrap(err, "could not create validate user request")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	res, err := v.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not reach validate user service")
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode != http.StatusOK {
		return errors.Wrap(ErrUnauthorized, fmt.Sprintf("validate user service returned %d", res.StatusCode))
	}
	return nil
}
