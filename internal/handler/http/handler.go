package http

import (
	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadSize is the largest accepted photo in bytes.
	maxUploadSize int64
	// allowedOrigins is passed to the CORS middleware.
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadSize:  cfg.Storage.Files.MaxUploadSize,
		allowedOrigins: cfg.Server.CORSAllowedOrigins,
		logger:         logger,
	}
}
