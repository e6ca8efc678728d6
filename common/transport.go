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

package common

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

type RoundTripHandler = func(req *http.Request, next http.RoundTripper) (*http.Response, error)

// WrapHTTPClient puts handler in front of the current transport of client.
// Handlers wrapped last run first.
func WrapHTTPClient(client *http.Client, handler RoundTripHandler) {
	if client == nil {
		return
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return handler(req, base)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// CacheTransport keeps successful GET responses for a limited time.
// Registry metadata of a released version never changes, so a short lived cache is safe.
type CacheTransport struct {
	cache *expirable.LRU[string, []byte]
}

func NewCacheTransport(cacheSize int, expiration time.Duration) *CacheTransport {
	return &CacheTransport{
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, expiration),
	}
}

func (c *CacheTransport) Handler() RoundTripHandler {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		key := requestKey(req)
		if val, ok := c.cache.Get(key); ok {
			slog.Debug("registry cache hit", "url", req.URL.String())
			return responseFromBytes(val, req)
		}

		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, nil
		}

		v, err := httputil.DumpResponse(resp, true)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("could not buffer response: %w", err)
		}

		c.cache.Add(key, v)
		return responseFromBytes(v, req)
	}
}

// Len returns the number of cached responses.
func (c *CacheTransport) Len() int {
	return c.cache.Len()
}

// DeduplicationTransport collapses identical concurrent GET requests into one upstream call.
// Every caller receives its own copy of the response.
type DeduplicationTransport struct {
	group singleflight.Group
}

func NewDeduplicationTransport() *DeduplicationTransport {
	return &DeduplicationTransport{}
}

func (d *DeduplicationTransport) Handler() RoundTripHandler {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		v, err, shared := d.group.Do(requestKey(req), func() (any, error) {
			resp, err := next.RoundTrip(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			return httputil.DumpResponse(resp, true)
		})
		if shared {
			slog.Debug("deduplicated request", "url", req.URL.String())
		}
		if err != nil {
			return nil, err
		}
		return responseFromBytes(v.([]byte), req)
	}
}

// RateLimitTransport blocks until the limiter grants a token or the request context ends.
type RateLimitTransport struct {
	limiter *rate.Limiter
}

func NewRateLimitTransport(perSecond float64, burst int) *RateLimitTransport {
	return &RateLimitTransport{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (r *RateLimitTransport) Handler() RoundTripHandler {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if err := r.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
		return next.RoundTrip(req)
	}
}

func responseFromBytes(v []byte, req *http.Request) (*http.Response, error) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(v)), req)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp, nil
}

func requestKey(req *http.Request) string {
	key := req.Method + " " + req.URL.String()

	auth := req.Header.Get("Authorization")
	cookie := req.Header.Get("Cookie")
	if auth == "" && cookie == "" {
		return key
	}

	h := sha256.New()
	h.Write([]byte(key))
	h.Write([]byte(auth))
	h.Write([]byte(cookie))
	return fmt.Sprintf("%x", h.Sum(nil))
}
