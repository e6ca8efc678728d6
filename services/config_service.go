package services

import (
	"context"
	"encoding/json"

	"github.com/l3montree-dev/deppkg/database/models"
	"github.com/l3montree-dev/deppkg/shared"
)

type ConfigService struct {
	repository shared.ConfigRepository
}

func NewConfigService(repository shared.ConfigRepository) ConfigService {
	return ConfigService{
		repository: repository,
	}
}

func (service ConfigService) GetJSONConfig(ctx context.Context, key string, v any) error {
	config, err := service.repository.Find(ctx, key)
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(config.Val), v)
}

func (service ConfigService) SetJSONConfig(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return service.repository.Save(ctx, &models.Config{
		Key: key,
		Val: string(b),
	})
}

var _ shared.ConfigService = ConfigService{}
