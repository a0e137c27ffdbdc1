package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/store"
)

type healthService struct {
	healthChecker store.HealthChecker
	logger        *logger.Logger
}

func NewHealthService(healthChecker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{healthChecker: healthChecker, logger: logger}
}

// Check pings the database.
func (h *healthService) Check(ctx context.Context) error {
	if err := h.healthChecker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}
