// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package config

import "time"

// Fallback values applied when neither env, flags, nor the JSON file set a
// field. Secrets never get defaults.
const (
	defaultHTTPAddress     = "localhost:8080"
	defaultTokenIssuer     = "craft-stash"
	defaultTokenDuration   = 24 * time.Hour
	defaultRequestTimeout  = 30 * time.Second
	defaultServerURL       = "http://localhost:8080"
	defaultRefreshInterval = 5 * time.Minute
)

// applyDefaults fills in fallback values for fields that remained unset after
// merging all configuration sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = defaultServerURL
	}
	if cfg.Client.RefreshInterval == 0 {
		cfg.Client.RefreshInterval = defaultRefreshInterval
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks invariants shared by both binaries. Binary-specific
// requirements (e.g. a non-empty DSN for the server) are enforced by
// [ValidateServer] and [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateServer checks that the configuration carries everything the server
// binary needs to start.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
