package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/strum/internal/config"
	"github.com/abhisek/strum/internal/logging"
	"github.com/abhisek/strum/internal/store"
)

// Loaded by the root command before any subcommand runs.
var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "strum",
	Short:         "Ukulele chord change trainer",
	Long:          "strum flashes random ukulele chords from a set you choose, at a pace you set, with optional fingering diagrams and a metronome click.",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides STRUM_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STRUM_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(chordsCmd)
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config and builds the logger. An explicit --config must
// exist; the default location may be absent.
func setup(cmd *cobra.Command) error {
	var err error
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		cfg, err = config.Load(p)
	} else {
		var def string
		if def, err = config.DefaultPath(); err == nil {
			cfg, err = config.LoadOptional(def)
		}
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Store.Path = p
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Log.Level = "debug"
	}

	lc, err := cfg.LoggingConfig()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	logger, err = logging.New(lc)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", zap.String("command", cmd.Name()))
	return nil
}

// resolveDBPath returns the database path using --db or the config file
// (highest priority), then STRUM_DB env var, then the default XDG path.
func resolveDBPath() (string, error) {
	if p := cfg.Store.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database.
func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
