package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/azizk/campulse/internal/analysis"
	"github.com/azizk/campulse/internal/app"
	"github.com/azizk/campulse/internal/config"
	"github.com/azizk/campulse/internal/draft"
	"github.com/azizk/campulse/internal/identity"
	"github.com/azizk/campulse/internal/llm"
	"github.com/azizk/campulse/internal/logging"
	"github.com/azizk/campulse/internal/notify"
	"github.com/azizk/campulse/internal/store"
	"github.com/azizk/campulse/internal/submit"
)

// runApp loads config, opens the store, builds the submission pipeline and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dataDir, err := store.DefaultDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	cfg, err := config.Load(dataDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.Init(cfg.DataDir, cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Identity failures degrade to an anonymous session: the wizard still
	// runs and drafts still save, only persistence is skipped.
	var studentID uint
	deviceID, err := identity.DeviceID(cfg.DataDir)
	if err != nil {
		log.Warn("device identity unavailable, submissions will stay local", zap.Error(err))
	} else {
		student, err := st.EnsureStudent(ctx, deviceID)
		if err != nil {
			log.Warn("student registration failed, submissions will stay local", zap.Error(err))
		} else {
			studentID = student.ID
		}
	}

	var analyzer submit.Analyzer
	if llmCfg, ok := llm.ConfigFromEnv(); ok {
		provider, err := llm.NewProvider(ctx, llmCfg, log)
		if err != nil {
			log.Warn("LLM provider unavailable, submissions will skip analysis", zap.Error(err))
		} else {
			analyzer = analysis.NewService(provider, analysis.DefaultServiceConfig())
		}
	} else {
		log.Info("no LLM API key configured, submissions will skip analysis")
	}

	notifier, err := notify.New(cfg.Notify, log)
	if err != nil {
		log.Warn("notification channel unavailable", zap.Error(err))
		notifier = notify.NopNotifier{}
	}

	drafts := draft.NewStore(cfg.DataDir)
	pipeline := submit.NewPipeline(st, analyzer, notifier, drafts, log)

	return app.Run(app.Options{
		Stats:         st,
		Completer:     st,
		Drafts:        drafts,
		Pipeline:      pipeline,
		Subjects:      cfg.Subjects,
		StudentID:     studentID,
		CaptureDir:    cfg.Scanner.CaptureDir,
		AdminPassword: cfg.Admin.Password,
		ExportDir:     filepath.Join(cfg.DataDir, "exports"),
	})
}
