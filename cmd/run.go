package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vexillo/internal/app"
	"github.com/abhisek/vexillo/internal/quiz"
)

// runApp loads configuration, opens the store, builds dependencies and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	defer func() { _ = log.Sync() }()

	tbl, err := loadTable(cfg, log)
	if err != nil {
		return err
	}

	repo, closeRepo := openDiagnostics(cfg, log)
	defer closeRepo()

	client, err := factClient(ctx, cfg, repo, log)
	if err != nil {
		return fmt.Errorf("configure fun facts: %w", err)
	}

	log.Info("starting",
		zap.Int("countries", tbl.Len()),
		zap.String("lang", string(cfg.Lang())),
		zap.Int("max_level", cfg.Game.MaxLevel))

	return app.Run(app.Options{
		Table:     tbl,
		Generator: quiz.New(tbl, nil, quiz.DefaultConfig()),
		Facts:     client,
		Session:   cfg.Session(),
		MaxLevel:  cfg.Game.MaxLevel,
		Lang:      cfg.Lang(),
		Logger:    log,
	})
}
