package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msomdec/enterprise/internal/config"
	"github.com/msomdec/enterprise/internal/repository/sqlite"
	"github.com/msomdec/enterprise/internal/service"
)

const defaultConfigFile = "enterprise.toml"

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var cfgPath string

	root := &cobra.Command{
		Use:          "enterprise",
		Short:        "Employee and department registry backed by SQLite",
		Version:      getVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}
			level, _ := cfg.Level()
			setupLogger(level)
			slog.Debug("configuration", "database_path", cfg.DatabasePath, "port", cfg.Port, "log_level", cfg.LogLevel)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "path to a TOML config file (default ./"+defaultConfigFile+" if present)")
	flags.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite database file")
	flags.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	serve := newServeCmd(&cfg)
	root.RunE = serve.RunE
	root.AddCommand(serve, newMigrateCmd(&cfg), newReportCmd(&cfg))
	return root
}

// resolveConfig layers the config file and the environment under any flags
// the user set explicitly, then validates the result.
func resolveConfig(cmd *cobra.Command, cfg *config.Config, cfgPath string) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	path := cfgPath
	if path == "" && config.FileExists(defaultConfigFile) {
		path = defaultConfigFile
	}
	if path != "" {
		fc, err := config.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		config.ApplyFile(cfg, fc, changed)
	}

	config.ApplyEnv(cfg, changed)
	return cfg.Validate()
}

func setupLogger(level slog.Level) {
	logOpts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)
}

// openStore opens and migrates the database. The caller closes it.
func openStore(ctx context.Context, cfg *config.Config, opts ...sqlite.Option) (*sqlite.DB, error) {
	db, err := sqlite.New(cfg.DatabasePath, opts...)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func newEnterpriseService(ctx context.Context, db *sqlite.DB) (*service.EnterpriseService, error) {
	svc := service.NewEnterpriseService(db.Employees(), db.Departments(), db.Memberships())
	if err := svc.Load(ctx); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return svc, nil
}
