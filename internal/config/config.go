package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the battle server.
type Server struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Data catalogs
	SpeciesPath string `yaml:"species_path"`
	MovesPath   string `yaml:"moves_path"`

	// Database
	Database DatabaseConfig `yaml:"database"`
	// Persistence can be disabled for pure in-memory simulation runs.
	PersistSessions bool `yaml:"persist_sessions"`

	// Simulation defaults (cmd/battlesim)
	Simulation SimulationConfig `yaml:"simulation"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// SimulationConfig tunes a battlesim run.
type SimulationConfig struct {
	Battles     int    `yaml:"battles"`
	Parallelism int    `yaml:"parallelism"`
	Seed        uint64 `yaml:"seed"`
	TeamSize    int    `yaml:"team_size"`
	Level       int    `yaml:"level"`
	Doubles     bool   `yaml:"doubles"`
	ChaosMode   bool   `yaml:"chaos_mode"`
	MaxTurns    int    `yaml:"max_turns"`
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		LogLevel:    "info",
		SpeciesPath: "data/species.json",
		MovesPath:   "data/moves.json",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "randomlocke",
			Password: "randomlocke",
			DBName:   "randomlocke",
			SSLMode:  "disable",
		},
		Simulation: SimulationConfig{
			Battles:     100,
			Parallelism: 4,
			Seed:        1,
			TeamSize:    3,
			Level:       50,
			MaxTurns:    200,
		},
	}
}

// LoadServer loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// MustLoadServer is LoadServer for initialization paths where a broken
// config file is unrecoverable.
func MustLoadServer(path string) Server {
	cfg, err := LoadServer(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// SlogLevel maps the configured log level to a slog level.
func (s Server) SlogLevel() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
