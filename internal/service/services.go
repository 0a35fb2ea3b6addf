// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/crypto"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/store"
)

// Services groups the business services handed to the transport layer.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	BookmarkService BookmarkService
	AppInfoService  AppInfoService
}

// NewServices wires every service to its repositories. Construction is
// explicit: the caller owns storages and passes them in.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, crypto.NewArgon2Hasher(), cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		BookmarkService: NewBookmarkService(storages.BookmarkRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
