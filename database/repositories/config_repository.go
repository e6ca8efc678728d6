package repositories

import (
	"context"

	"github.com/l3montree-dev/deppkg/database/models"
	"github.com/l3montree-dev/deppkg/shared"
	"gorm.io/gorm/clause"
)

type configRepository struct {
	*GormRepository[models.Config]
}

func NewConfigRepository(db shared.DB) *configRepository {
	return &configRepository{
		GormRepository: newGormRepository[models.Config](db),
	}
}

// Find returns gorm.ErrRecordNotFound if the key was never written.
func (r *configRepository) Find(ctx context.Context, key string) (models.Config, error) {
	var config models.Config
	err := r.GetDB(nil).WithContext(ctx).Where("key = ?", key).First(&config).Error
	return config, err
}

func (r *configRepository) Save(ctx context.Context, config *models.Config) error {
	return r.GetDB(nil).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"val"}),
	}).Create(config).Error
}
