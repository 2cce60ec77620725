package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/2beens/adaptivecoach/internal"
	"github.com/2beens/adaptivecoach/internal/config"
	"github.com/2beens/adaptivecoach/internal/db"
	"github.com/2beens/adaptivecoach/internal/logging"
	"github.com/2beens/adaptivecoach/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFlag    string
	configPath string
	jsonOutput bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:          "coachctl",
	Short:        "Admin CLI for the adaptive coaching engine",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(envFlag, configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		// logs go to stderr, stdout is reserved for command output
		logging.Setup(logging.LoggerSetupParams{
			LogLevel:    cfg.LogLevel,
			Environment: cfg.Environment,
		})
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development",
		"environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml",
		"path for the TOML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"output in JSON format")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runPipelineCmd)
	rootCmd.AddCommand(tdeeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func openDBPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("COACH_DB_PASSWORD"),
		MaxConns:   4,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

// openComponents wires the same object graph the service runs with.
// The returned func releases the db pool and the redis client.
func openComponents(ctx context.Context) (*internal.Components, func(), error) {
	pool, err := openDBPool(ctx)
	if err != nil {
		return nil, nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("COACH_REDIS_PASS"),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		pool.Close()
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	metricsManager := metrics.NewManager("coachctl", "admin", metrics.SetupPrometheus())
	components := internal.NewComponents(cfg, pool, rdb, metricsManager)

	return components, func() {
		_ = rdb.Close()
		pool.Close()
	}, nil
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
