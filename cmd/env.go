package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vexillo/internal/config"
	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/facts"
	"github.com/abhisek/vexillo/internal/llm"
	"github.com/abhisek/vexillo/internal/logger"
	"github.com/abhisek/vexillo/internal/store"
)

// loadConfig reads configuration and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		if _, err := country.ParseLang(lang); err != nil {
			return nil, err
		}
		cfg.Language = lang
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DB = db
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db or the db config key
// (highest priority), then VEXILLO_DB, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the diagnostics database named by cfg.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openDiagnostics opens the LLM diagnostics log. The log is optional, so a
// failure is logged and a nil repo returned; the caller always gets a
// usable close func.
func openDiagnostics(cfg *config.Config, log *zap.Logger) (store.EventRepo, func()) {
	s, err := openStore(cfg)
	if err != nil {
		log.Warn("diagnostics log disabled", zap.Error(err))
		return nil, func() {}
	}
	return s.EventRepo(), func() { _ = s.Close() }
}

// loadTable returns the country table, from data_file when set. An
// integrity error is fatal.
func loadTable(cfg *config.Config, log *zap.Logger) (*country.Table, error) {
	var (
		tbl *country.Table
		err error
	)
	if cfg.DataFile != "" {
		tbl, err = country.LoadFile(cfg.DataFile)
	} else {
		tbl, err = country.Default()
	}
	if err != nil {
		log.Error("country table rejected", zap.String("file", cfg.DataFile), zap.Error(err))
		return nil, fmt.Errorf("load country table: %w", err)
	}
	return tbl, nil
}

// factClient builds the fun-fact client. Without a provider it serves the
// offline fallback so the game still runs.
func factClient(ctx context.Context, cfg *config.Config, repo store.EventRepo, log *zap.Logger) (facts.Client, error) {
	lc := cfg.LLMConfig()
	provider, err := llm.NewProvider(ctx, lc, repo, log)
	if errors.Is(err, llm.ErrNoProvider) {
		log.Info("no LLM provider configured, fun facts are offline")
		return facts.Offline{}, nil
	}
	if err != nil {
		return nil, err
	}
	log.Info("fun facts enabled", zap.String("provider", lc.Provider), zap.String("model", provider.ModelID()))
	return facts.NewLLMClient(provider, cfg.LLM.Timeout), nil
}

// newLogger builds the file logger, falling back to a no-op logger when
// the log file cannot be opened.
func newLogger(cmd *cobra.Command, cfg *config.Config) *zap.Logger {
	log, err := logger.New(cfg)
	if err != nil {
		cmd.PrintErrln("logging disabled:", err)
		return logger.Nop()
	}
	return log
}
