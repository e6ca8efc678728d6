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
	"time"

	"github.com/l3montree-dev/deppkg/database"
	"github.com/l3montree-dev/deppkg/database/models"
	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/monitoring"
	"github.com/l3montree-dev/deppkg/normalize"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/l3montree-dev/deppkg/utils"
	"github.com/pkg/errors"
)

// backgroundScanTimeout bounds a scan scheduled after an upload
const backgroundScanTimeout = 30 * time.Minute

type SBOMService struct {
	componentDependencyRepository shared.ComponentDependencyRepository
	vulnScanService               shared.VulnScanService
	synchronizer                  utils.FireAndForgetSynchronizer
	retryPolicy                   database.RetryPolicy
}

var _ shared.SBOMService = (*SBOMService)(nil)

func NewSBOMService(componentDependencyRepository shared.ComponentDependencyRepository, vulnScanService shared.VulnScanService, synchronizer utils.FireAndForgetSynchronizer, cfg shared.Config) *SBOMService {
	return &SBOMService{
		componentDependencyRepository: componentDependencyRepository,
		vulnScanService:               vulnScanService,
		synchronizer:                  synchronizer,
		retryPolicy:                   database.NewRetryPolicy(cfg.DBConnRetry),
	}
}

func tupleToModel(compID int, depType dtos.DepType, t dtos.ComponentDependencyTuple) models.ComponentDependency {
	return models.ComponentDependency{
		CompID:         compID,
		PackageName:    t.PackageName,
		PackageVersion: t.PackageVersion,
		DepType:        string(depType),
		Name:           t.Name,
		URL:            utils.EmptyThenNil(t.URL),
		Summary:        utils.EmptyThenNil(t.Summary),
		Purl:           utils.EmptyThenNil(t.Purl),
		PkgType:        utils.EmptyThenNil(t.PkgType),
	}
}

// SaveComponentDeps replaces all dependencies of the given type of a component.
// It returns the number of stored rows.
func (s *SBOMService) SaveComponentDeps(ctx context.Context, compID int, depType dtos.DepType, tuples []dtos.ComponentDependencyTuple) (int64, error) {
	rows := utils.UniqBy(utils.Map(tuples, func(t dtos.ComponentDependencyTuple) models.ComponentDependency {
		return tupleToModel(compID, depType, t)
	}), models.ComponentDependency.Key)
	if len(rows) == 0 {
		return 0, nil
	}

	var stored int64
	err := database.WithRetry(ctx, s.retryPolicy, "replace component dependencies", func(ctx context.Context) error {
		var err error
		stored, err = s.componentDependencyRepository.ReplaceByType(ctx, compID, depType, rows)
		return err
	})
	if err != nil {
		monitoring.Alert("could not store component dependencies", err)
		return 0, errors.Wrapf(err, "could not store dependencies of component %d", compID)
	}

	monitoring.ComponentDependenciesStored.WithLabelValues(string(depType)).Add(float64(stored))
	slog.Info("stored component dependencies", "compid", compID, "deptype", depType, "rows", stored)
	return stored, nil
}

// ScheduleScan scans the packages of the tuples in the background.
// The session is copied since the request it belongs to is gone once the scan runs.
func (s *SBOMService) ScheduleScan(session *shared.CatalogSession, tuples []dtos.ComponentDependencyTuple) {
	rows := utils.Map(tuples, func(t dtos.ComponentDependencyTuple) dtos.PackageRow {
		return dtos.PackageRow{PackageName: t.PackageName, PackageVersion: t.PackageVersion, Purl: t.Purl}
	})
	rows = utils.Filter(rows, func(r dtos.PackageRow) bool {
		// name based queries need an ecosystem, only purls carry one
		return normalize.PurlType(r.Purl) != ""
	})
	if len(rows) == 0 {
		return
	}

	var sessionCopy *shared.CatalogSession
	if session != nil {
		c := *session
		sessionCopy = &c
	}

	s.synchronizer.FireAndForget(func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundScanTimeout)
		defer cancel()
		if err := s.vulnScanService.ScanAndStore(ctx, sessionCopy, rows); err != nil {
			slog.Error("background vulnerability scan failed", "err", err)
		}
	})
}
