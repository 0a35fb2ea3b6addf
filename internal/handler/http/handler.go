package http

import (
	"time"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/service"
	"github.com/MKhiriev/go-bookmarks/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validator,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
