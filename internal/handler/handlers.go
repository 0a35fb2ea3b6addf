package handler

import (
	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/handler/http"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/service"
	"github.com/MKhiriev/go-bookmarks/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validator, cfg, logger),
	}, nil
}
