// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
)

// Storages bundles every persistence component the services depend on.
type Storages struct {
	UserRepository   UserRepository
	RecipeRepository RecipeRepository
	PhotoStorage     PhotoStorage
	HealthChecker    HealthChecker
}

// NewStorages builds the repositories over db and the photo storage selected
// by cfg: S3 when a bucket is configured, the local directory otherwise.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		photos PhotoStorage
		err    error
	)
	if cfg.S3.Bucket != "" {
		photos, err = NewS3PhotoStorage(ctx, cfg.S3, log)
	} else {
		photos, err = NewLocalPhotoStorage(cfg.Files.PhotoDir, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating photo storage: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		RecipeRepository: NewRecipeRepository(db, log),
		PhotoStorage:     photos,
		HealthChecker:    db,
	}, nil
}
