package repositories

import (
	"context"
	"log/slog"

	"github.com/l3montree-dev/deppkg/database/models"
	"github.com/l3montree-dev/deppkg/shared"
	"gorm.io/gorm"
)

type vulnerabilityRepository struct {
	*GormRepository[models.Vulnerability]
}

func NewVulnerabilityRepository(db shared.DB) *vulnerabilityRepository {
	return &vulnerabilityRepository{
		GormRepository: newGormRepository[models.Vulnerability](db),
	}
}

// InsertIgnoreDuplicates is append only. Rows conflicting with an existing
// finding are dropped and the stored one is kept.
func (r *vulnerabilityRepository) InsertIgnoreDuplicates(ctx context.Context, vulns []models.Vulnerability) (int64, error) {
	var inserted int64
	err := r.Transaction(ctx, func(tx *gorm.DB) error {
		n, err := r.CreateBatch(tx, vulns)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}

	if dropped := int64(len(vulns)) - inserted; dropped > 0 {
		slog.Debug("skipped already known vulnerabilities", "dropped", dropped, "inserted", inserted)
	}
	return inserted, nil
}
