package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Services: Services{
			TokenSignKey: "sign",
			HashKey:      "hash",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/biblioteca"},
		},
	}
}

func TestValidate_Success_AppliesDefaults(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.validate())

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultTokenIssuer, cfg.Services.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.Services.TokenDuration)
	assert.Equal(t, defaultOverdueScanInterval, cfg.Workers.OverdueScanInterval)
	assert.Equal(t, defaultOverdueAfter, cfg.Workers.OverdueAfter)
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = "0.0.0.0:9000"
	cfg.Services.TokenDuration = time.Hour

	require.NoError(t, cfg.validate())

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.Services.TokenDuration)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	err := cfg.validate()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestValidate_MissingKeys(t *testing.T) {
	cfg := validConfig()
	cfg.Services.TokenSignKey = ""

	require.ErrorIs(t, cfg.validate(), ErrInvalidServicesConfigs)

	cfg = validConfig()
	cfg.Services.HashKey = ""

	require.ErrorIs(t, cfg.validate(), ErrInvalidServicesConfigs)
}

func TestNetAddress_Set(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", a.String())

	require.Error(t, a.Set("no-port"))
	require.Error(t, a.Set("localhost:zero"))
	require.Error(t, a.Set("localhost:-1"))
}
