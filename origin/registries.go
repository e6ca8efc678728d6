package origin

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"net/url"
	"strings"

	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/normalize"
	"github.com/pkg/errors"
	"golang.org/x/mod/module"
	"golang.org/x/net/html/charset"
)

func decodeJSON[T any](ctx context.Context, fetcher *registryFetcher, url string) (T, error) {
	var v T
	body, err := fetcher.get(ctx, url)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, errors.Wrap(err, "could not decode registry response")
	}
	return v, nil
}

type pypiStrategy struct {
	baseURL string
}

// project_urls keys which usually point to the source repository, in order of preference
var pypiSourceKeys = []string{"Source", "Source Code", "Repository", "Code", "Homepage"}

func (s pypiStrategy) lookup(ctx context.Context, fetcher *registryFetcher, c normalize.PackageCoordinate) (registryResult, error) {
	info, err := decodeJSON[dtos.PyPIPackageInfo](ctx, fetcher, s.baseURL+"/"+url.PathEscape(c.Name)+"/"+url.PathEscape(c.Version)+"/json")
	if err != nil {
		return registryResult{}, err
	}

	if info.Info.HomePage != "" {
		return registryResult{RepoURL: info.Info.HomePage}, nil
	}
	for _, key := range pypiSourceKeys {
		if u := info.Info.ProjectURLs[key]; u != "" {
			return registryResult{RepoURL: u}, nil
		}
	}
	return registryResult{}, nil
}

type npmStrategy struct {
	baseURL string
}

func (s npmStrategy) lookup(ctx context.Context, fetcher *registryFetcher, c normalize.PackageCoordinate) (registryResult, error) {
	name := c.Name
	if c.Namespace != "" {
		// scoped packages, e.g. @angular/core
		name = c.Namespace + "/" + c.Name
	}

	pkg, err := decodeJSON[dtos.NPMPackageVersion](ctx, fetcher, s.baseURL+"/"+name+"/"+url.PathEscape(c.Version))
	if err != nil {
		return registryResult{}, err
	}
	return registryResult{RepoURL: pkg.Repository.URL}, nil
}

type goProxyStrategy struct {
	baseURL string
}

func (s goProxyStrategy) lookup(ctx context.Context, fetcher *registryFetcher, c normalize.PackageCoordinate) (registryResult, error) {
	modulePath := c.Name
	if c.Namespace != "" {
		modulePath = c.Namespace + "/" + c.Name
	}

	escapedPath, err := module.EscapePath(modulePath)
	if err != nil {
		return registryResult{}, errors.Wrap(err, "invalid module path")
	}
	escapedVersion, err := module.EscapeVersion(c.Version)
	if err != nil {
		return registryResult{}, errors.Wrap(err, "invalid module version")
	}

	info, err := decodeJSON[dtos.GoProxyVersionInfo](ctx, fetcher, s.baseURL+"/"+escapedPath+"/@v/"+escapedVersion+".info")
	if err != nil {
		return registryResult{}, err
	}
	return registryResult{RepoURL: info.Origin.URL, Commit: info.Origin.Hash}, nil
}

type mavenStrategy struct {
	baseURL string
}

func newMavenDecoder(body []byte) *xml.Decoder {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	// poms are not always utf-8 and like to use html entities
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Entity = xml.HTMLEntity
	return decoder
}

func (s mavenStrategy) lookup(ctx context.Context, fetcher *registryFetcher, c normalize.PackageCoordinate) (registryResult, error) {
	if c.Namespace == "" {
		return registryResult{}, errors.New("maven coordinate without group id")
	}

	group := strings.ReplaceAll(c.Namespace, ".", "/")
	body, err := fetcher.get(ctx, s.baseURL+"/"+group+"/"+c.Name+"/"+c.Version+"/"+c.Name+"-"+c.Version+".pom")
	if err != nil {
		return registryResult{}, err
	}

	var pom dtos.MavenPOM
	if err := newMavenDecoder(body).Decode(&pom); err != nil {
		return registryResult{}, errors.Wrap(err, "could not decode pom")
	}
	return registryResult{RepoURL: strings.TrimSpace(pom.SCM.URL)}, nil
}

type cargoStrategy struct {
	baseURL string
}

func (s cargoStrategy) lookup(ctx context.Context, fetcher *registryFetcher, c normalize.PackageCoordinate) (registryResult, error) {
	crate, err := decodeJSON[dtos.CargoCrateVersion](ctx, fetcher, s.baseURL+"/"+url.PathEscape(c.Name)+"/"+url.PathEscape(c.Version))
	if err != nil {
		return registryResult{}, err
	}
	return registryResult{RepoURL: crate.Crate.Repository}, nil
}
