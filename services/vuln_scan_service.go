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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/deppkg/database"
	"github.com/l3montree-dev/deppkg/database/models"
	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/monitoring"
	"github.com/l3montree-dev/deppkg/normalize"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/l3montree-dev/deppkg/utils"
	"github.com/l3montree-dev/deppkg/vulndb"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type VulnScanService struct {
	osvService                    shared.OSVService
	identityService               shared.ComponentIdentityService
	vulnerabilityRepository       shared.VulnerabilityRepository
	componentDependencyRepository shared.ComponentDependencyRepository
	retryPolicy                   database.RetryPolicy
}

var _ shared.VulnScanService = (*VulnScanService)(nil)

func NewVulnScanService(osvService shared.OSVService, identityService shared.ComponentIdentityService, vulnerabilityRepository shared.VulnerabilityRepository, componentDependencyRepository shared.ComponentDependencyRepository, cfg shared.Config) *VulnScanService {
	return &VulnScanService{
		osvService:                    osvService,
		identityService:               identityService,
		vulnerabilityRepository:       vulnerabilityRepository,
		componentDependencyRepository: componentDependencyRepository,
		retryPolicy:                   database.NewRetryPolicy(cfg.DBConnRetry),
	}
}

func packageRowKey(row dtos.PackageRow) string {
	return row.PackageName + "\x00" + row.PackageVersion + "\x00" + row.Purl
}

func (s *VulnScanService) ScanAndStore(ctx context.Context, session *shared.CatalogSession, rows []dtos.PackageRow) error {
	start := time.Now()
	jobID := uuid.New().String()
	logger := slog.With("job", jobID)
	ctx, span := monitoring.Tracer.Start(ctx, "vulnscan.ScanAndStore", trace.WithAttributes(
		attribute.String("job", jobID),
		attribute.Int("packages", len(rows)),
	))
	defer func() {
		span.End()
		monitoring.VulnScanDuration.Observe(time.Since(start).Seconds())
	}()

	rows = utils.UniqBy(rows, packageRowKey)
	vulns := make([]models.Vulnerability, 0)
	for _, row := range rows {
		if session != nil && row.Purl != "" {
			if err := s.identityService.EnsureComponentForPurl(ctx, *session, row.Purl); err != nil {
				logger.Warn("could not create catalog component for purl", "purl", row.Purl, "err", err)
			}
		}

		findings, err := s.osvService.Query(ctx, vulndb.QueryFor(row, normalize.VulnQueryPurl(row.Purl)))
		if err != nil {
			monitoring.VulnDBQueryFailures.Inc()
			logger.Warn("could not query vulnerability database", "package", row.PackageName, "version", row.PackageVersion, "err", err)
			continue
		}

		vulns = append(vulns, toVulnerabilityModels(row, findings)...)
	}

	vulns = utils.UniqBy(vulns, models.Vulnerability.NaturalKey)
	if len(vulns) == 0 {
		logger.Debug("no vulnerabilities found", "packages", len(rows))
		return nil
	}

	var inserted int64
	err := database.WithRetry(ctx, s.retryPolicy, "insert vulnerabilities", func(ctx context.Context) error {
		var err error
		inserted, err = s.vulnerabilityRepository.InsertIgnoreDuplicates(ctx, vulns)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not store vulnerabilities")
		monitoring.Alert("could not store vulnerabilities", err)
		return errors.Wrap(err, "could not store vulnerabilities")
	}

	span.SetAttributes(attribute.Int64("inserted", inserted))

	monitoring.VulnFindingsInserted.Add(float64(inserted))
	logger.Info("stored vulnerabilities", "packages", len(rows), "found", len(vulns), "inserted", inserted)
	return nil
}

func toVulnerabilityModels(row dtos.PackageRow, findings []dtos.OSV) []models.Vulnerability {
	purl, _, _ := strings.Cut(row.Purl, "?")
	return utils.Map(findings, func(osv dtos.OSV) models.Vulnerability {
		return models.Vulnerability{
			PackageName:    row.PackageName,
			PackageVersion: row.PackageVersion,
			Purl:           purl,
			ID:             osv.ID,
			Summary:        osv.DisplaySummary(),
			RiskLevel:      vulndb.RiskLevel(osv),
			CVSS:           utils.EmptyThenNil(osv.Vector()),
		}
	})
}

// RescanAll scans every package known from a license upload again.
func (s *VulnScanService) RescanAll(ctx context.Context, session *shared.CatalogSession) error {
	start := time.Now()
	defer func() {
		monitoring.RescanDuration.Observe(time.Since(start).Seconds())
	}()

	rows, err := s.componentDependencyRepository.FindDistinctLicensePackages(ctx)
	if err != nil {
		return errors.Wrap(err, "could not load packages for rescan")
	}

	slog.Info("rescanning packages", "packages", len(rows))
	return s.ScanAndStore(ctx, session, rows)
}
