// apps/solver/internal/config/config.go
//
// Runtime configuration for the solver server and CLI.
//
// Layering (later wins):
//   1. Built-in defaults (Default).
//   2. TOML file: explicit path, else SOLVER_CONFIG, else ./solver.toml if present.
//   3. .env file (loaded into the process environment, never overriding it).
//   4. Environment variables.
//
// Environment variables:
//   PORT, LOG_LEVEL, WORDS_FILE, WORDS_DB, WORDS_LIST, WORD_LENGTH, TOP_K,
//   JWT_SECRET, SESSION_TTL, CLIENT_ORIGIN

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultFile is read when no explicit config path is given and it exists.
const DefaultFile = "solver.toml"

// Config is the full configuration tree.
type Config struct {
	Server ServerConfig `toml:"server"`
	Words  WordsConfig  `toml:"words"`
	Solver SolverConfig `toml:"solver"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig has HTTP related options.
type ServerConfig struct {
	Port         string   `toml:"port"`
	ClientOrigin string   `toml:"client_origin"`
	JWTSecret    string   `toml:"jwt_secret"`
	SessionTTL   Duration `toml:"session_ttl"`
}

// WordsConfig selects the word-list source.
type WordsConfig struct {
	File   string `toml:"file"`
	DB     string `toml:"db"`
	List   string `toml:"list"`
	Length int    `toml:"length"`
}

// SolverConfig tunes recommendations.
type SolverConfig struct {
	TopK    int `toml:"top_k"`
	Display int `toml:"display"`
}

// LogConfig controls zerolog.
type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// Duration lets TOML carry "30m"-style strings.
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "5176",
			ClientOrigin: "http://localhost:5173",
			JWTSecret:    "dev_secret_change_me",
			SessionTTL:   Duration{2 * time.Hour},
		},
		Words: WordsConfig{
			List:   "default",
			Length: 5,
		},
		Solver: SolverConfig{
			TopK:    10,
			Display: 5,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load builds a Config from defaults, an optional TOML file and the environment.
// It returns the path of the TOML file used ("" if none).
func Load(path string) (*Config, string, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("SOLVER_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, "", fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func (c *Config) applyEnv() error {
	setStr := func(dst *string, k string) {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}
	setStr(&c.Server.Port, "PORT")
	setStr(&c.Server.ClientOrigin, "CLIENT_ORIGIN")
	setStr(&c.Server.JWTSecret, "JWT_SECRET")
	setStr(&c.Words.File, "WORDS_FILE")
	setStr(&c.Words.DB, "WORDS_DB")
	setStr(&c.Words.List, "WORDS_LIST")
	setStr(&c.Log.Level, "LOG_LEVEL")

	if v := os.Getenv("WORD_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: WORD_LENGTH: %w", err)
		}
		c.Words.Length = n
	}
	if v := os.Getenv("TOP_K"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: TOP_K: %w", err)
		}
		c.Solver.TopK = n
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: SESSION_TTL: %w", err)
		}
		c.Server.SessionTTL = Duration{d}
	}
	return nil
}

// Validate rejects values the solver cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Words.Length <= 0 {
		errs = append(errs, fmt.Errorf("words.length must be positive, got %d", c.Words.Length))
	}
	if c.Solver.TopK <= 0 {
		errs = append(errs, fmt.Errorf("solver.top_k must be positive, got %d", c.Solver.TopK))
	}
	if c.Solver.Display <= 0 || c.Solver.Display > c.Solver.TopK {
		c.Solver.Display = c.Solver.TopK
	}
	if c.Server.SessionTTL.Duration <= 0 {
		errs = append(errs, errors.New("server.session_ttl must be positive"))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
