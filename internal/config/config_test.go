package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "esrl/data", cfg.Monitor.Topic)
	assert.Equal(t, "one_dpps", cfg.Monitor.DataClass)
	assert.True(t, cfg.Monitor.Persist.Postgres)
	assert.False(t, cfg.Monitor.Persist.CSV)
	assert.Equal(t, "wsn:monitor:snapshot", cfg.Cache.SnapshotKey)
	assert.Equal(t, "wsn:samples:stream", cfg.Cache.Stream)
	assert.Equal(t, ":8090", cfg.Web.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONITOR_TOPIC", "lab/rigs")
	t.Setenv("MONITOR_DATA_CLASS", "two_dpps")
	t.Setenv("PERSIST_POSTGRES", "false")
	t.Setenv("PERSIST_CSV", "true")
	t.Setenv("MQTT_BROKER", "tcp://broker.local:1883")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "lab/rigs", cfg.Monitor.Topic)
	assert.Equal(t, "two_dpps", cfg.Monitor.DataClass)
	assert.False(t, cfg.Monitor.Persist.Postgres)
	assert.True(t, cfg.Monitor.Persist.CSV)
	assert.Equal(t, "tcp://broker.local:1883", cfg.MQTT.Broker)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "wsn",
		Password: "secret",
		Database: "samples",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.local port=5433 user=wsn password=secret dbname=samples sslmode=require",
		cfg.GetDSN(),
	)
}
