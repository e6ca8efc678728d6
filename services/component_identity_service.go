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

package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/monitoring"
	"github.com/l3montree-dev/deppkg/normalize"
	"github.com/l3montree-dev/deppkg/origin"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/l3montree-dev/deppkg/utils"
	"github.com/pkg/errors"
)

// itemYStep is the vertical distance between two items of a file component
const itemYStep = 100

type ComponentIdentityService struct {
	catalogClient              shared.CatalogClient
	originResolver             shared.OriginResolver
	catalogComponentRepository shared.CatalogComponentRepository
	familyLocks                *utils.KeyedMutex
}

var _ shared.ComponentIdentityService = (*ComponentIdentityService)(nil)

func NewComponentIdentityService(catalogClient shared.CatalogClient, originResolver shared.OriginResolver, catalogComponentRepository shared.CatalogComponentRepository) *ComponentIdentityService {
	return &ComponentIdentityService{
		catalogClient:              catalogClient,
		originResolver:             originResolver,
		catalogComponentRepository: catalogComponentRepository,
		familyLocks:                utils.NewKeyedMutex(),
	}
}

// GetComponent looks up name[;variant[;version]] in the catalog.
// Any miss or transport failure is reported as (-1, "").
func (s *ComponentIdentityService) GetComponent(ctx context.Context, session shared.CatalogSession, name, variant, version string, idOnly, latest bool) (int, string) {
	variant, version = normalize.NormalizeQualifiers(variant, version)
	return s.lookup(ctx, session, name, variant, version, idOnly, latest)
}

// lookup expects qualifiers that already went through NormalizeQualifiers.
// Cleaning them a second time would rewrite "." produced from "/".
func (s *ComponentIdentityService) lookup(ctx context.Context, session shared.CatalogSession, name, variant, version string, idOnly, latest bool) (int, string) {
	checkName := normalize.CheckName(name, variant, version)

	component, err := s.catalogClient.GetComponent(ctx, session, normalize.QualifiedName(name, variant, version), idOnly, latest)
	if err != nil {
		slog.Debug("catalog lookup missed", "name", name, "variant", variant, "version", version, "err", err)
		return -1, ""
	}

	id, foundName := int(component.ID), component.Name
	if foundName != checkName {
		// the catalog may answer with the head of the version chain, the exact version is one of its versions
		for _, v := range component.Versions {
			if v.Name == checkName {
				return int(v.ID), v.Name
			}
		}

		monitoring.CatalogDivergentNameMatches.Inc()
		slog.Info("catalog lookup answered with a divergent name", "requested", checkName, "found", foundName, "id", id)
	}
	return id, foundName
}

// ResolveOrCreate returns the id of the catalog component described by req and
// creates the missing base or version on the way.
func (s *ComponentIdentityService) ResolveOrCreate(ctx context.Context, session shared.CatalogSession, req dtos.ComponentRequest) (int, error) {
	name := strings.TrimRight(req.Name, normalize.QualifierSeparator)
	variant, version := normalize.NormalizeQualifiers(req.Variant, req.Version)
	kind := req.Kind
	if kind == "" {
		kind = dtos.ComponentKindFile
	}

	unlock := s.familyLocks.Lock(session.BaseURL + "|" + name)
	defer unlock()

	latestID, foundName := s.lookup(ctx, session, name, variant, version, false, true)
	if latestID < 0 {
		latestID, foundName = s.lookup(ctx, session, name, variant, "", false, true)
	}
	if latestID < 0 {
		latestID, foundName = s.lookup(ctx, session, name, "", "", false, true)
	}

	if latestID < 0 {
		return s.createBaseComponent(ctx, session, name, variant, kind, req.Items)
	}

	if req.AutoIncrement != nil || foundName == normalize.CheckName(name, variant, version) {
		return latestID, nil
	}

	return s.createVersion(ctx, session, latestID, name, variant, version, kind, req.Items)
}

func (s *ComponentIdentityService) createBaseComponent(ctx context.Context, session shared.CatalogSession, name, variant string, kind dtos.ComponentKind, items []dtos.ComponentItem) (int, error) {
	id, err := s.catalogClient.NewBaseComponent(ctx, session, normalize.QualifiedName(name, variant, ""))
	if err != nil {
		return -1, errors.Wrapf(err, "could not create base component %s", name)
	}
	monitoring.CatalogComponentsCreated.WithLabelValues("base").Inc()
	slog.Info("created base component", "name", name, "variant", variant, "id", id)

	s.createItemsOrWarn(ctx, session, id, kind, items)
	return id, nil
}

func (s *ComponentIdentityService) createVersion(ctx context.Context, session shared.CatalogSession, parentID int, name, variant, version string, kind dtos.ComponentKind, items []dtos.ComponentItem) (int, error) {
	id, err := s.catalogClient.NewComponentFromParent(ctx, session, parentID)
	if err != nil {
		return -1, errors.Wrapf(err, "could not create version of component %d", parentID)
	}

	// the new version carries the name of its parent until it is renamed
	if err := s.catalogClient.UpdateName(ctx, session, id, normalize.CheckName(name, variant, version)); err != nil {
		return -1, errors.Wrapf(err, "could not rename component %d", id)
	}
	monitoring.CatalogComponentsCreated.WithLabelValues("version").Inc()
	slog.Info("created component version", "name", name, "variant", variant, "version", version, "id", id, "parent", parentID)

	s.createItemsOrWarn(ctx, session, id, kind, items)
	return id, nil
}

func (s *ComponentIdentityService) createItemsOrWarn(ctx context.Context, session shared.CatalogSession, compID int, kind dtos.ComponentKind, items []dtos.ComponentItem) {
	if err := s.CreateItems(ctx, session, compID, kind, items); err != nil {
		slog.Warn("could not create component items", "id", compID, "err", err)
	}
}

// CreateItems replaces the items of a component. File items form a chain,
// every item is linked to the item created before it.
func (s *ComponentIdentityService) CreateItems(ctx context.Context, session shared.CatalogSession, compID int, kind dtos.ComponentKind, items []dtos.ComponentItem) error {
	if kind == dtos.ComponentKindDocker || len(items) == 0 {
		return s.catalogClient.ResetItems(ctx, session, compID, kind)
	}

	previousItemID := -1
	for i, item := range items {
		itemID, err := s.catalogClient.NewComponentItem(ctx, session, compID, dtos.ComponentItemRequest{
			Name:       item.Name(),
			Kind:       kind,
			YPos:       itemYStep * (i + 1),
			Attributes: item.Attributes(),
			RemoveAll:  i == 0,
		})
		if err != nil {
			return errors.Wrapf(err, "could not create item %q", item.Name())
		}

		if previousItemID > 0 {
			if err := s.catalogClient.LinkItems(ctx, session, compID, previousItemID, itemID); err != nil {
				return errors.Wrapf(err, "could not link item %d to %d", previousItemID, itemID)
			}
		}
		previousItemID = itemID
	}
	return nil
}

// EnsureComponentForPurl creates the catalog component of a package release
// and tags it with the origin of the release. Existing components are left untouched.
func (s *ComponentIdentityService) EnsureComponentForPurl(ctx context.Context, session shared.CatalogSession, purl string) error {
	coordinate, err := normalize.ParseCoordinate(purl)
	if err != nil {
		return err
	}

	exists, err := s.catalogComponentRepository.ExistsInDomain(ctx, coordinate.CatalogDomain(), coordinate.VersionedName())
	if err != nil {
		return errors.Wrap(err, "could not check for existing component")
	}
	if exists {
		return nil
	}

	familyName := coordinate.FamilyName()
	if parentID, _ := s.GetComponent(ctx, session, familyName, "", "", true, true); parentID < 0 {
		if _, err := s.ResolveOrCreate(ctx, session, dtos.ComponentRequest{Name: familyName, Kind: dtos.ComponentKindFile}); err != nil {
			return err
		}
	}

	compID, err := s.ResolveOrCreate(ctx, session, dtos.ComponentRequest{
		Name:    familyName,
		Variant: coordinate.Version,
		Kind:    dtos.ComponentKindFile,
	})
	if err != nil {
		return err
	}

	component, err := s.catalogClient.GetComponentByID(ctx, session, compID)
	if err != nil {
		return errors.Wrapf(err, "created component %d is not visible", compID)
	}

	attrs, ok := provenanceAttributes(coordinate, s.originResolver.Resolve(ctx, coordinate))
	if !ok {
		slog.Debug("no origin found", "purl", purl, "component", component.Domain+"."+component.Name)
		return nil
	}

	if err := s.catalogClient.SetComponentAttributes(ctx, session, compID, attrs); err != nil {
		return errors.Wrapf(err, "could not attach origin to component %d", compID)
	}
	slog.Info("attached origin", "purl", purl, "component", component.Domain+"."+component.Name, "url", attrs.GitURL, "commit", attrs.GitCommit)
	return nil
}

// provenanceAttributes maps an origin onto catalog attributes. Without repository url nothing is attached.
func provenanceAttributes(coordinate normalize.PackageCoordinate, record dtos.OriginRecord) (dtos.ProvenanceAttributes, bool) {
	repoURL := strings.ReplaceAll(utils.SafeDereference(record.RepoURL), ".git", "")
	if repoURL == "" {
		return dtos.ProvenanceAttributes{}, false
	}

	org, project := origin.RepoPath(repoURL)
	attrs := dtos.ProvenanceAttributes{
		Purl:           coordinate.Purl,
		GitURL:         repoURL,
		GitOrg:         org,
		GitRepo:        org + "/" + project,
		GitRepoProject: project,
		GitCommit:      utils.SafeDereference(record.CommitSHA),
	}
	if coordinate.Version != "" {
		attrs.GitTag = coordinate.Version
	}
	return attrs, true
}
