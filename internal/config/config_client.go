// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
)

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the API address, request timeout and bearer token.
	Adapter Adapter
	// Log contains logging settings.
	Log Log
	// Args holds the sub-command and its arguments.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config from env, flags and JSON, maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
		Args:    cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
