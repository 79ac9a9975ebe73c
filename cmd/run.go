package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/strum/internal/app"
	"github.com/abhisek/strum/internal/diagram"
	"github.com/abhisek/strum/internal/metronome"
	"github.com/abhisek/strum/internal/screens/home"
	"github.com/abhisek/strum/internal/screens/practice"
)

// runApp builds dependencies and launches the TUI. History is optional: when
// the database cannot be opened the trainer still runs.
func runApp(cmd *cobra.Command, startPractice bool) error {
	clicker, closer, err := metronome.New(cfg.MetronomeConfig(), logger)
	if err != nil {
		return fmt.Errorf("metronome: %w", err)
	}
	defer closer.Close()

	diagCfg := cfg.DiagramConfig()
	deps := home.Deps{
		Practice: practice.Deps{
			Config:   cfg.PracticeConfig(),
			Renderer: diagram.NewRenderer(diagCfg),
			Clicker:  clicker,
			Logger:   logger,
		},
		Diagram: diagCfg,
		Logger:  logger,
	}

	st, err := openStore()
	if err != nil {
		logger.Warn("history unavailable", zap.Error(err))
		fmt.Fprintln(os.Stderr, "History unavailable:", err)
	} else {
		defer st.Close()
		repo := st.SessionRepo()
		deps.Practice.Sessions = repo
		deps.Sessions = repo
	}

	logger.Info("starting tui", zap.Bool("practice", startPractice))
	return app.Run(app.Options{Home: deps, StartPractice: startPractice})
}
