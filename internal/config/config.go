package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/adaptivecoach/internal/adjustment"
	"github.com/2beens/adaptivecoach/internal/calibration"
	"github.com/2beens/adaptivecoach/internal/nutrition"
	"github.com/2beens/adaptivecoach/internal/periodization"
	"github.com/2beens/adaptivecoach/internal/pipeline"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// prometheus /metrics listener, kept off the public port
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	AllowedOrigins        []string `toml:"allowed_origins"`
	IngestRateLimitPerMin int      `toml:"ingest_rate_limit_per_min"`
	// sets may arrive late, a closed week is re-aggregated for this long after its end
	LateSetGraceHours   int `toml:"late_set_grace_hours"`
	UserLockTTLSeconds  int `toml:"user_lock_ttl_seconds"`
	UserLockWaitSeconds int `toml:"user_lock_wait_seconds"`
	PipelineTimeoutMin  int `toml:"pipeline_timeout_min"`

	Engine EngineConfig `toml:"engine"`
}

// EngineConfig holds the tunables of the coaching engines.
type EngineConfig struct {
	Calibration calibration.Config `toml:"calibration"`
	Adjustment  adjustment.Config  `toml:"adjustment"`
	Nutrition   nutrition.Config   `toml:"nutrition"`
	Pipeline    pipeline.Config    `toml:"pipeline"`
	// Rulesets are complete periodization rulesets, added to the built-in ones
	// or replacing a built-in one with the same id.
	Rulesets []periodization.Ruleset `toml:"rulesets"`
}

// RulesetsByID returns the built-in rulesets with the configured ones laid over them.
func (e EngineConfig) RulesetsByID() map[string]periodization.Ruleset {
	rulesets := periodization.DefaultRulesets()
	for _, r := range e.Rulesets {
		rulesets[r.ID] = r
	}
	return rulesets
}

func (e EngineConfig) Validate() error {
	if e.Pipeline.Schedule == "" {
		return fmt.Errorf("pipeline schedule not set")
	}
	if err := e.Calibration.Validate(); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	if err := e.Nutrition.Validate(); err != nil {
		return fmt.Errorf("nutrition: %w", err)
	}
	if e.Adjustment.MinSets < 0 || e.Adjustment.MaxLoadStepPct <= 0 {
		return fmt.Errorf("adjustment: min sets and max load step must be positive")
	}

	seen := make(map[string]bool, len(e.Rulesets))
	for _, r := range e.Rulesets {
		if r.ID == "" {
			return fmt.Errorf("ruleset without id")
		}
		if seen[r.ID] {
			return fmt.Errorf("ruleset %s defined twice", r.ID)
		}
		seen[r.ID] = true
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func Default() *Config {
	return &Config{
		Environment:           "development",
		Host:                  "localhost",
		Port:                  9000,
		PrometheusMetricsHost: "localhost",
		PrometheusMetricsPort: "2112",
		LogLevel:              "info",
		LogToStdout:           true,
		PostgresHost:          "localhost",
		PostgresPort:          "5432",
		PostgresDBName:        "adaptivecoach",
		PostgresUser:          "postgres",
		RedisHost:             "localhost",
		RedisPort:             "6379",
		IngestRateLimitPerMin: 120,
		LateSetGraceHours:     72,
		UserLockTTLSeconds:    30,
		UserLockWaitSeconds:   10,
		PipelineTimeoutMin:    30,
		Engine: EngineConfig{
			Calibration: calibration.DefaultConfig(),
			Adjustment:  adjustment.DefaultConfig(),
			Nutrition:   nutrition.DefaultConfig(),
			Pipeline:    pipeline.DefaultConfig(),
		},
	}
}

func (c *Config) LateSetGrace() time.Duration {
	return time.Duration(c.LateSetGraceHours) * time.Hour
}

func (c *Config) UserLockTTL() time.Duration {
	return time.Duration(c.UserLockTTLSeconds) * time.Second
}

func (c *Config) UserLockWait() time.Duration {
	return time.Duration(c.UserLockWaitSeconds) * time.Second
}

func (c *Config) PipelineTimeout() time.Duration {
	return time.Duration(c.PipelineTimeoutMin) * time.Minute
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.PostgresDBName == "" {
		return fmt.Errorf("postgres db name not set")
	}
	if c.UserLockTTLSeconds <= 0 {
		return fmt.Errorf("invalid user lock ttl: %d", c.UserLockTTLSeconds)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

// Toml mirrors the config file, one table per environment. Keys missing from
// a table keep their default value.
type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	t := &Toml{
		Development: Default(),
		Production:  Default(),
	}
	t.Production.Environment = "production"

	if _, err := toml.DecodeFile(path, t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}
