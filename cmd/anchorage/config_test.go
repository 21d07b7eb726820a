package main

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkParams(t *testing.T) {
	params, err := networkParams("mainnet")
	require.NoError(t, err)
	assert.Equal(t, &chaincfg.MainNetParams, params)

	params, err = networkParams("regtest")
	require.NoError(t, err)
	assert.Equal(t, &chaincfg.RegressionNetParams, params)

	_, err = networkParams("moonnet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown network")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ANCHORAGE_NETWORK", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "regtest", cfg.Network)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_InvalidNetwork(t *testing.T) {
	t.Setenv("ANCHORAGE_NETWORK", "moonnet")

	_, err := loadConfig()
	require.Error(t, err)
}
