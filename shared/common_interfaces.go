// Copyright (C) 2025 timbastin
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

package shared

import (
	"context"
	"net/http"

	"github.com/l3montree-dev/deppkg/database/models"
	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/normalize"
)

// CatalogSession is the request scoped access to the remote catalog.
// It is passed explicitly into every call which talks to the catalog.
type CatalogSession struct {
	BaseURL string
	Cookies []*http.Cookie
}

type CatalogClient interface {
	Login(ctx context.Context, baseURL, user, password string) (CatalogSession, error)
	// GetComponent looks up a component by its qualified name. A miss is reported as error.
	GetComponent(ctx context.Context, session CatalogSession, qualifiedName string, idOnly, latest bool) (dtos.CatalogComponent, error)
	GetComponentByID(ctx context.Context, session CatalogSession, id int) (dtos.CatalogComponent, error)
	NewBaseComponent(ctx context.Context, session CatalogSession, qualifiedName string) (int, error)
	NewComponentFromParent(ctx context.Context, session CatalogSession, parentID int) (int, error)
	UpdateName(ctx context.Context, session CatalogSession, id int, name string) error
	ResetItems(ctx context.Context, session CatalogSession, compID int, kind dtos.ComponentKind) error
	NewComponentItem(ctx context.Context, session CatalogSession, compID int, item dtos.ComponentItemRequest) (int, error)
	LinkItems(ctx context.Context, session CatalogSession, compID int, fromItemID, toItemID int) error
	SetComponentAttributes(ctx context.Context, session CatalogSession, compID int, attrs dtos.ProvenanceAttributes) error
}

type OriginResolver interface {
	// Resolve never fails. Missing information is reported as nil fields.
	Resolve(ctx context.Context, coordinate normalize.PackageCoordinate) dtos.OriginRecord
}

type ComponentIdentityService interface {
	ResolveOrCreate(ctx context.Context, session CatalogSession, req dtos.ComponentRequest) (int, error)
	GetComponent(ctx context.Context, session CatalogSession, name, variant, version string, idOnly, latest bool) (int, string)
	EnsureComponentForPurl(ctx context.Context, session CatalogSession, purl string) error
}

type OSVService interface {
	Query(ctx context.Context, query dtos.OSVQuery) ([]dtos.OSV, error)
}

type SafetyDBService interface {
	// LookupCVE maps a safety advisory id to its cve id and detail url.
	// The safety id is returned unchanged if no cve is known.
	LookupCVE(ctx context.Context, packageName, safetyID string) (string, string)
}

type VulnScanService interface {
	// ScanAndStore queries the vulnerability database for every row and stores the findings.
	// A nil session skips the catalog enrichment.
	ScanAndStore(ctx context.Context, session *CatalogSession, rows []dtos.PackageRow) error
	RescanAll(ctx context.Context, session *CatalogSession) error
}

type SBOMService interface {
	SaveComponentDeps(ctx context.Context, compID int, depType dtos.DepType, tuples []dtos.ComponentDependencyTuple) (int64, error)
	ScheduleScan(session *CatalogSession, tuples []dtos.ComponentDependencyTuple)
}

type ComponentDependencyRepository interface {
	ReplaceByType(ctx context.Context, compID int, depType dtos.DepType, rows []models.ComponentDependency) (int64, error)
	FindDistinctLicensePackages(ctx context.Context) ([]dtos.PackageRow, error)
}

type VulnerabilityRepository interface {
	InsertIgnoreDuplicates(ctx context.Context, vulns []models.Vulnerability) (int64, error)
}

type CatalogComponentRepository interface {
	ExistsInDomain(ctx context.Context, domain, name string) (bool, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type UserValidator interface {
	Validate(ctx context.Context, cookies []*http.Cookie) error
}

type ConfigRepository interface {
	Find(ctx context.Context, key string) (models.Config, error)
	Save(ctx context.Context, config *models.Config) error
}

type ConfigService interface {
	// GetJSONConfig unmarshals the value stored under key into v
	GetJSONConfig(ctx context.Context, key string, v any) error
	SetJSONConfig(ctx context.Context, key string, v any) error
}

// LeaderElector decides which replica runs the background jobs.
type LeaderElector interface {
	Start()
	Stop()
	IsLeader() bool
}

type DaemonRunner interface {
	Start()
	Stop()
}
