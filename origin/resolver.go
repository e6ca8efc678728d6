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

package origin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/l3montree-dev/deppkg/common"
	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/monitoring"
	"github.com/l3montree-dev/deppkg/normalize"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Registries holds the base urls of every package registry the resolver talks to.
type Registries struct {
	PyPI          string
	NPM           string
	GoProxy       string
	Maven         string
	Crates        string
	DebianSources string
}

func DefaultRegistries() Registries {
	return Registries{
		PyPI:          "https://pypi.org/pypi",
		NPM:           "https://registry.npmjs.org",
		GoProxy:       "https://proxy.golang.org",
		Maven:         "https://repo1.maven.org/maven2",
		Crates:        "https://crates.io/api/v1/crates",
		DebianSources: "https://launchpad.net/ubuntu/+archive/primary/+sourcefiles",
	}
}

type Options struct {
	Registries      Registries
	RegistryTimeout time.Duration
	CloneTimeout    time.Duration
	// RequestsPerSecond limits the registry calls of one resolver
	RequestsPerSecond float64
}

func DefaultOptions() Options {
	return Options{
		Registries:        DefaultRegistries(),
		RegistryTimeout:   2 * time.Second,
		CloneTimeout:      5 * time.Second,
		RequestsPerSecond: 20,
	}
}

// registryResult is what a registry tells about a package release.
type registryResult struct {
	RepoURL string
	// Commit is only set by registries which know the exact revision
	Commit string
}

type registryStrategy interface {
	lookup(ctx context.Context, fetcher *registryFetcher, coordinate normalize.PackageCoordinate) (registryResult, error)
}

type commitResolver interface {
	ResolveCommit(ctx context.Context, repoURL, version string) (string, bool)
}

type Resolver struct {
	fetcher         *registryFetcher
	strategies      map[normalize.Ecosystem]registryStrategy
	commits         commitResolver
	registryTimeout time.Duration
}

var _ shared.OriginResolver = (*Resolver)(nil)

func NewResolver(opts Options) *Resolver {
	httpClient := &http.Client{}
	// handlers wrapped last run first: cache, then de-duplication, then rate limit
	common.WrapHTTPClient(httpClient, common.NewRateLimitTransport(opts.RequestsPerSecond, 5).Handler())
	common.WrapHTTPClient(httpClient, common.NewDeduplicationTransport().Handler())
	common.WrapHTTPClient(httpClient, common.NewCacheTransport(1024, 30*time.Minute).Handler())

	return &Resolver{
		fetcher: &registryFetcher{httpClient: httpClient},
		strategies: map[normalize.Ecosystem]registryStrategy{
			normalize.EcosystemPyPI:   pypiStrategy{baseURL: opts.Registries.PyPI},
			normalize.EcosystemNPM:    npmStrategy{baseURL: opts.Registries.NPM},
			normalize.EcosystemGolang: goProxyStrategy{baseURL: opts.Registries.GoProxy},
			normalize.EcosystemMaven:  mavenStrategy{baseURL: opts.Registries.Maven},
			normalize.EcosystemCargo:  cargoStrategy{baseURL: opts.Registries.Crates},
			normalize.EcosystemDebian: debianStrategy{baseURL: opts.Registries.DebianSources},
		},
		commits:         NewGitCommitResolver(opts.CloneTimeout),
		registryTimeout: opts.RegistryTimeout,
	}
}

func NewResolverFromConfig(cfg shared.Config) *Resolver {
	opts := DefaultOptions()
	if cfg.RegistryTimeout > 0 {
		opts.RegistryTimeout = cfg.RegistryTimeout
	}
	if cfg.GitCloneTimeout > 0 {
		opts.CloneTimeout = cfg.GitCloneTimeout
	}
	return NewResolver(opts)
}

// Resolve finds the source repository of the package and the commit of its version.
// It never fails. Whatever could not be found stays nil.
func (r *Resolver) Resolve(ctx context.Context, coordinate normalize.PackageCoordinate) dtos.OriginRecord {
	ctx, span := monitoring.Tracer.Start(ctx, "origin.Resolve", trace.WithAttributes(attribute.String("purl", coordinate.Purl)))
	defer span.End()

	record := r.resolve(ctx, coordinate)

	outcome := "none"
	switch {
	case record.CommitSHA != nil:
		outcome = "commit"
	case record.RepoURL != nil:
		outcome = "url"
	}
	monitoring.OriginResolutions.WithLabelValues(string(coordinate.Ecosystem), outcome).Inc()
	span.SetAttributes(attribute.String("outcome", outcome))
	return record
}

func (r *Resolver) resolve(ctx context.Context, coordinate normalize.PackageCoordinate) dtos.OriginRecord {
	strategy, ok := r.strategies[coordinate.Ecosystem]
	if !ok {
		slog.Debug("no registry for package type", "type", coordinate.Type, "purl", coordinate.Purl)
		return dtos.OriginRecord{}
	}

	registryCtx, cancel := context.WithTimeout(ctx, r.registryTimeout)
	res, err := strategy.lookup(registryCtx, r.fetcher, coordinate)
	cancel()
	if err != nil {
		slog.Debug("registry lookup failed", "purl", coordinate.Purl, "err", err)
		return dtos.OriginRecord{}
	}

	repoURL := NormalizeRepoURL(res.RepoURL)
	if repoURL == "" {
		return dtos.OriginRecord{}
	}

	record := dtos.OriginRecord{RepoURL: &repoURL}
	if res.Commit != "" {
		record.CommitSHA = &res.Commit
		return record
	}

	if coordinate.Version == "" {
		return record
	}

	if sha, ok := r.commits.ResolveCommit(ctx, repoURL, coordinate.Version); ok {
		record.CommitSHA = &sha
	}
	return record
}

type registryFetcher struct {
	httpClient *http.Client
}

var errRegistryMiss = errors.New("registry has no such package")

func (f *registryFetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("User-Agent", "deppkg-origin-resolver")

	res, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not reach registry")
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, errRegistryMiss
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d", res.StatusCode)
	}

	return io.ReadAll(res.Body)
}
