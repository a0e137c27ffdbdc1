package service

import (
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/models"
)

type Services struct {
	AuthService    AuthService
	RecipeService  RecipeService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		RecipeService:  NewRecipeService(storages.RecipeRepository, storages.PhotoStorage, cfg.Storage.Files, logger),
		HealthService:  NewHealthService(storages.HealthChecker, logger),
		AppInfoService: appInfoService,
	}, nil
}
