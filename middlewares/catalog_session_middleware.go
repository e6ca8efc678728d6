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

package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/deppkg/shared"
	"github.com/labstack/echo/v4"
)

const httpsProbeTimeout = 1 * time.Second

// CatalogURLDetector finds the base url of the catalog the caller came from.
// The catalog serves this service behind the same host.
type CatalogURLDetector struct {
	httpClient *http.Client
	// configured is used instead of probing if set
	configured string
}

func NewCatalogURLDetector(cfg shared.Config) *CatalogURLDetector {
	return &CatalogURLDetector{
		httpClient: &http.Client{
			Timeout: httpsProbeTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		configured: strings.TrimRight(cfg.CatalogURL, "/"),
	}
}

// BaseURL prefers https if the host answers a HEAD request on it with 200,
// the scheme of the request otherwise.
func (d *CatalogURLDetector) BaseURL(ctx context.Context, scheme, host string) string {
	if d.configured != "" {
		return d.configured
	}

	original := scheme + "://" + host
	if scheme == "https" {
		return original
	}

	secure := "https://" + host
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, secure, nil)
	if err != nil {
		return original
	}
	res, err := d.httpClient.Do(req)
	if err != nil {
		slog.Debug("catalog not reachable via https", "host", host, "err", err)
		return original
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return original
	}
	return secure
}

// CatalogSessionMiddleware lets only callers pass which the validate user service accepts.
// The cookies of accepted callers become the catalog session of the request.
func CatalogSessionMiddleware(validator shared.UserValidator, detector *CatalogURLDetector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			req := ctx.Request()
			if err := validator.Validate(req.Context(), req.Cookies()); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization Failed").WithInternal(err)
			}

			shared.SetCatalogSession(ctx, shared.CatalogSession{
				BaseURL: detector.BaseURL(req.Context(), ctx.Scheme(), req.Host),
				Cookies: req.Cookies(),
			})
			return next(ctx)
		}
	}
}
