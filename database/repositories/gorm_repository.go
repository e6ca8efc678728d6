// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"context"

	"github.com/l3montree-dev/deppkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepository[T utils.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[T utils.Tabler](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{
		db: db,
	}
}

func (g *GormRepository[T]) Transaction(ctx context.Context, f func(tx *gorm.DB) error) error {
	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	err := f(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (g *GormRepository[T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return g.db
}

// CreateBatch inserts all rows and silently skips conflicting ones.
// It returns the number of rows actually inserted.
func (g *GormRepository[T]) CreateBatch(tx *gorm.DB, ts []T) (int64, error) {
	if len(ts) == 0 {
		return 0, nil
	}

	res := g.GetDB(tx).Clauses(clause.OnConflict{DoNothing: true}).Create(&ts)
	if res.Error != nil && res.Error.Error() == "extended protocol limited to 65535 parameters" {
		// split the batch in half and try again
		half := len(ts) / 2
		first, err := g.CreateBatch(tx, ts[:half])
		if err != nil {
			return first, err
		}
		second, err := g.CreateBatch(tx, ts[half:])
		return first + second, err
	}
	return res.RowsAffected, res.Error
}
