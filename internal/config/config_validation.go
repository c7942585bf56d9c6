package config

import (
	"errors"
	"time"
)

// Fallback values applied by validate for settings that may be omitted.
const (
	defaultHTTPAddress         = "localhost:8080"
	defaultTokenIssuer         = "go-biblioteca"
	defaultTokenDuration       = 24 * time.Hour
	defaultRequestTimeout      = 30 * time.Second
	defaultOverdueScanInterval = time.Hour
	defaultOverdueAfter        = 14 * 24 * time.Hour
)

// validate checks the merged configuration for completeness and fills in
// defaults for optional settings.
//
// Required settings:
//   - Storage.DB.DSN — the service cannot run without a database;
//   - Services.TokenSignKey — unsigned tokens would break authentication;
//   - Services.HashKey — unverifiable CSRF tokens would break the page surface.
func (c *StructuredConfig) validate() error {
	var err error

	if c.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if c.Services.TokenSignKey == "" || c.Services.HashKey == "" {
		err = errors.Join(err, ErrInvalidServicesConfigs)
	}

	if err != nil {
		return err
	}

	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Services.TokenIssuer == "" {
		c.Services.TokenIssuer = defaultTokenIssuer
	}
	if c.Services.TokenDuration == 0 {
		c.Services.TokenDuration = defaultTokenDuration
	}
	if c.Workers.OverdueScanInterval == 0 {
		c.Workers.OverdueScanInterval = defaultOverdueScanInterval
	}
	if c.Workers.OverdueAfter == 0 {
		c.Workers.OverdueAfter = defaultOverdueAfter
	}

	return nil
}
