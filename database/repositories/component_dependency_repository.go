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

package repositories

import (
	"context"

	"github.com/l3montree-dev/deppkg/database/models"
	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/l3montree-dev/deppkg/utils"
	"gorm.io/gorm"
)

type componentDependencyRepository struct {
	*GormRepository[models.ComponentDependency]
	db *gorm.DB
}

func NewComponentDependencyRepository(db shared.DB) *componentDependencyRepository {
	return &componentDependencyRepository{
		GormRepository: newGormRepository[models.ComponentDependency](db),
		db:             db,
	}
}

// ReplaceByType deletes every row of the deptype for the component and inserts the new batch.
// Both happen in one transaction which holds an advisory lock on (compid, deptype),
// so concurrent uploads for the same component and deptype cannot interleave.
func (r *componentDependencyRepository) ReplaceByType(ctx context.Context, compID int, depType dtos.DepType, rows []models.ComponentDependency) (int64, error) {
	var inserted int64
	err := r.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(CAST(? AS integer), hashtext(?))", compID, string(depType)).Error; err != nil {
			return err
		}

		if err := tx.Where("compid = ? AND deptype = ?", compID, string(depType)).Delete(&models.ComponentDependency{}).Error; err != nil {
			return err
		}

		n, err := r.CreateBatch(tx, rows)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *componentDependencyRepository) FindDistinctLicensePackages(ctx context.Context) ([]dtos.PackageRow, error) {
	var deps []models.ComponentDependency
	err := r.db.WithContext(ctx).Raw(
		"SELECT DISTINCT packagename, packageversion, purl FROM dm.dm_componentdeps WHERE deptype = ? AND purl IS NOT NULL",
		string(dtos.DepTypeLicense),
	).Scan(&deps).Error
	if err != nil {
		return nil, err
	}

	return utils.Map(deps, func(d models.ComponentDependency) dtos.PackageRow {
		return dtos.PackageRow{
			PackageName:    d.PackageName,
			PackageVersion: d.PackageVersion,
			Purl:           utils.SafeDereference(d.Purl),
		}
	}), nil
}
