// Package config loads process configuration from the environment, an
// optional .env file and an optional store order file.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// Custom store backends
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultEnvFile is loaded when present
const DefaultEnvFile = ".env"

// Config is the process configuration
type Config struct {
	RedisAddr     string `env:"DDB_IMPORTER_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"DDB_IMPORTER_REDIS_PASSWORD"`
	RedisDB       int    `env:"DDB_IMPORTER_REDIS_DB" envDefault:"0"`

	StoreBackend string `env:"DDB_IMPORTER_STORE_BACKEND" envDefault:"redis"`
	SQLitePath   string `env:"DDB_IMPORTER_SQLITE_PATH" envDefault:"ddb-importer.db"`
	StoreID      string `env:"DDB_IMPORTER_STORE_ID" envDefault:"ddb-imported-content"`
	StoreLabel   string `env:"DDB_IMPORTER_STORE_LABEL" envDefault:"D&D Beyond Imports"`
	OrderFile    string `env:"DDB_IMPORTER_ORDER_FILE"`

	SRDBaseURL  string        `env:"DDB_IMPORTER_SRD_BASE_URL"`
	SRDCacheTTL time.Duration `env:"DDB_IMPORTER_SRD_CACHE_TTL" envDefault:"24h"`
	SRDDisabled bool          `env:"DDB_IMPORTER_SRD_DISABLED"`

	DDBBaseURL string        `env:"DDB_IMPORTER_DDB_BASE_URL"`
	DDBTimeout time.Duration `env:"DDB_IMPORTER_DDB_TIMEOUT" envDefault:"25s"`
	// DDBSession is the CobaltSession cookie value
	DDBSession string `env:"DDB_IMPORTER_COBALT_SESSION"`

	GRPCPort  int    `env:"DDB_IMPORTER_GRPC_PORT" envDefault:"50051"`
	LogLevel  string `env:"DDB_IMPORTER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DDB_IMPORTER_LOG_FORMAT" envDefault:"text"`
}

// Load reads the given env files (those that do not exist are skipped)
// and parses the environment. Variables already set win over file values.
func Load(envFiles ...string) (*Config, error) {
	for _, path := range envFiles {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to stat %s", path)
		}
		if err := godotenv.Load(path); err != nil {
			return nil, errors.InvalidArgumentf("failed to load %s: %v", path, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.InvalidArgumentf("parse env: %v", err)
	}
	return cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("StoreBackend", c.StoreBackend, []string{BackendRedis, BackendSQLite, BackendNone}, vb)
	errors.ValidateEnum("LogFormat", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)
	errors.ValidateRequired("StoreID", c.StoreID, vb)
	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)

	if c.StoreBackend == BackendSQLite {
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}
	if c.StoreBackend == BackendRedis {
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}
	if _, err := c.SlogLevel(); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}
	if c.SRDCacheTTL < 0 {
		vb.InvalidField("SRDCacheTTL", "must be positive")
	}
	if c.DDBTimeout < 0 {
		vb.InvalidField("DDBTimeout", "must be positive")
	}
	return vb.Build()
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// Handler builds the slog handler for the configured level and format
func (c *Config) Handler(w io.Writer) slog.Handler {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == LogFormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

type orderFile struct {
	Order map[string][]string `yaml:"order"`
}

// LoadOrder reads a YAML store order file and merges it over the default
// order. An empty path returns the default order.
//
//	order:
//	  item: [srd.equipment, ddb.items]
func LoadOrder(path string) (compendium.Order, error) {
	if path == "" {
		return compendium.DefaultOrder(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read store order file %s", path)
	}
	return ParseOrder(raw)
}

// ParseOrder parses store order YAML and merges it over the default order
func ParseOrder(raw []byte) (compendium.Order, error) {
	var file orderFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.InvalidArgumentf("invalid store order: %v", err)
	}

	override := make(compendium.Order, len(file.Order))
	vb := errors.NewValidationBuilder()
	for name, ids := range file.Order {
		category := compendium.Category(strings.ToLower(strings.TrimSpace(name)))
		if !category.Valid() {
			vb.InvalidField("order."+name, "unknown category")
			continue
		}
		cleaned := make([]string, 0, len(ids))
		for _, id := range ids {
			if id = strings.TrimSpace(id); id != "" {
				cleaned = append(cleaned, id)
			}
		}
		override[category] = cleaned
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return compendium.DefaultOrder().Merge(override), nil
}
