package repositories

import (
	"context"

	"github.com/l3montree-dev/deppkg/shared"
)

// catalogComponentRepository reads the tables owned by the catalog. It never writes.
type catalogComponentRepository struct {
	db shared.DB
}

func NewCatalogComponentRepository(db shared.DB) *catalogComponentRepository {
	return &catalogComponentRepository{db: db}
}

func (r *catalogComponentRepository) ExistsInDomain(ctx context.Context, domain, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		"SELECT count(*) FROM dm.dm_component a, dm.dm_domain b WHERE a.domainid = b.id AND b.fullname = ? AND a.name = ?",
		domain, name,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *catalogComponentRepository) Ping(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT 1").Error
}
