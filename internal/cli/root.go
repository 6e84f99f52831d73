// Package cli wires the command tree and the application's collaborators.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rlankford/crewboard/internal/config"
	"github.com/rlankford/crewboard/internal/domain"
	"github.com/rlankford/crewboard/internal/engine"
	"github.com/rlankford/crewboard/internal/persist"
	"github.com/rlankford/crewboard/internal/seed"
	"github.com/rlankford/crewboard/internal/services/analysis"
	"github.com/rlankford/crewboard/internal/store"
	"github.com/rlankford/crewboard/internal/ui"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "crewboard",
	Short:   "Terminal workforce dashboard",
	Long:    `Crewboard is a terminal dashboard for team workload, task assignment and product lines, with optional AI analysis.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		program := tea.NewProgram(app.model, tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.crewboard/config.yaml)")
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// app bundles the wired collaborators for a run.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *store.Store
	engine   *engine.Engine
	analyzer *analysis.Service
	model    ui.Model
}

// buildApp loads config and saved state and wires the dashboard. A missing or
// unreadable state file falls back to the seed dataset; persistence rides on
// the store's commit hook.
func buildApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)

	file := persist.NewFile(cfg.StatePath, logger)
	snapshot, found, err := file.Load()
	if err != nil {
		logger.Warn("saved state unreadable, starting from seed data", "path", cfg.StatePath, "error", err)
		snapshot = seed.Default()
	} else if !found {
		snapshot = seed.Default()
	}

	st := store.New(snapshot)
	st.OnCommit(func(snap domain.Snapshot) {
		if err := file.Save(snap); err != nil {
			logger.Error("failed to save state", "path", cfg.StatePath, "error", err)
		}
	})

	eng := engine.New(st, logger)

	httpClient := &http.Client{Timeout: time.Duration(cfg.AI.TimeoutMs) * time.Millisecond}
	analyzer := analysis.NewService(httpClient, logger, analysis.Options{
		Model:     cfg.AI.Model,
		MaxTokens: cfg.AI.MaxTokens,
		APIKey:    os.Getenv(cfg.AI.APIKeyEnv),
	})

	model := ui.New(ui.Deps{
		Store:    st,
		Engine:   eng,
		Analyzer: analyzer,
		Config:   cfg,
		Logger:   logger,
	})

	return &app{cfg: cfg, logger: logger, store: st, engine: eng, analyzer: analyzer, model: model}, nil
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger opens the configured log file. The TUI owns the terminal, so
// logs never go to stderr; an unopenable file degrades to discard.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var w io.Writer = io.Discard
	if cfg.Logging.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0755); err == nil {
			if f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				w = f
			}
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
