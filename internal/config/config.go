package config

import (
	"fmt"
	"os"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN returns the connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MQTTConfig holds broker connection settings.
type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      byte
}

// Config is the monitor service configuration.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	MQTT     MQTTConfig

	// Monitor holds ingestion and persistence settings.
	Monitor struct {
		// Topic is the MQTT topic both rigs publish on.
		Topic string
		// DataClass labels the current collection run; it names the
		// samples table and the CSV file.
		DataClass string

		Persist struct {
			Postgres bool
			CSV      bool
			CSVDir   string
		}
	}

	// Cache holds Redis publication settings.
	Cache struct {
		Enabled     bool
		SnapshotKey string
		SnapshotTTL int // seconds
		Stream      string
	}

	// Web holds the presentation server settings.
	Web struct {
		Enabled bool
		Addr    string
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load builds the configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = 5432
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "wsn")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://iot.eclipse.org:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "wsn-monitor")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.QoS = 1

	cfg.Monitor.Topic = getEnv("MONITOR_TOPIC", "esrl/data")
	cfg.Monitor.DataClass = getEnv("MONITOR_DATA_CLASS", "one_dpps")
	cfg.Monitor.Persist.Postgres = getEnvBool("PERSIST_POSTGRES", true)
	cfg.Monitor.Persist.CSV = getEnvBool("PERSIST_CSV", false)
	cfg.Monitor.Persist.CSVDir = getEnv("PERSIST_CSV_DIR", ".")

	cfg.Cache.Enabled = getEnvBool("CACHE_ENABLED", true)
	cfg.Cache.SnapshotKey = getEnv("CACHE_SNAPSHOT_KEY", "wsn:monitor:snapshot")
	cfg.Cache.SnapshotTTL = 300
	cfg.Cache.Stream = getEnv("CACHE_SAMPLE_STREAM", "wsn:samples:stream")

	cfg.Web.Enabled = getEnvBool("WEB_ENABLED", true)
	cfg.Web.Addr = getEnv("WEB_ADDR", ":8090")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
