package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, "0.0.0.0:8080", cfg.HTTPServerAddress)
	require.Equal(t, "fleet", cfg.ElasticSearchPrefix)
	require.Equal(t, "ship-commands", cfg.AzureShipCommandsQueueName)
	require.Equal(t, "./eventlogs", cfg.EventLogDir)
	require.True(t, cfg.EnableMigrations)
}
