package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Mesh    MeshConfig
	Sim     SimConfig
	Worker  WorkerConfig
	DB      DatabaseConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host      string
	Port      int
	RateLimit int // requests per second, global
}

type MeshConfig struct {
	DefaultResolution int
	MaxResolution     int
	Prewarm           bool
}

type SimConfig struct {
	TickInterval time.Duration
	Steps        int
}

type WorkerConfig struct {
	Count      int
	BufferSize int
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:      getEnv("SERVER_HOST", "localhost"),
			Port:      getEnvInt("SERVER_PORT", 8080),
			RateLimit: getEnvInt("RATE_LIMIT_RPS", 10),
		},
		Mesh: MeshConfig{
			DefaultResolution: getEnvInt("MESH_DEFAULT_RESOLUTION", 48),
			MaxResolution:     getEnvInt("MESH_MAX_RESOLUTION", 128),
			Prewarm:           getEnvBool("MESH_PREWARM", true),
		},
		Sim: SimConfig{
			TickInterval: getEnvDuration("SIM_TICK_INTERVAL", 200*time.Millisecond),
			Steps:        getEnvInt("SIM_STEPS", 20),
		},
		Worker: WorkerConfig{
			Count:      getEnvInt("WORKER_COUNT", 2),
			BufferSize: getEnvInt("WORKER_BUFFER_SIZE", 20),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/glacier-atlas.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Mesh.DefaultResolution < 2 || c.Mesh.DefaultResolution > c.Mesh.MaxResolution {
		return fmt.Errorf("invalid mesh resolution: default %d, max %d",
			c.Mesh.DefaultResolution, c.Mesh.MaxResolution)
	}

	if c.Sim.TickInterval < 10*time.Millisecond {
		return fmt.Errorf("simulation tick interval must be at least 10ms")
	}
	if c.Sim.Steps < 1 {
		return fmt.Errorf("simulation steps must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
