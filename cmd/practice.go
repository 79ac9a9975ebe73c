package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/strum/internal/config"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session right away",
	Example: `  strum practice --chords C,Am,F,G7 --interval 1.5
  strum practice --diagram --metronome --tuning D`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyPracticeFlags(cmd); err != nil {
			return err
		}
		return runApp(cmd, true)
	},
}

func init() {
	f := practiceCmd.Flags()
	f.Float64("interval", 0, "Seconds between chord changes")
	f.String("chords", "", "Comma separated chords to practice")
	f.String("tuning", "", "Ukulele tuning: C, D or G")
	f.Bool("diagram", false, "Show chord diagrams")
	f.Bool("metronome", false, "Click on every chord change")
}

// applyPracticeFlags overrides the loaded config with flags set on this run.
func applyPracticeFlags(cmd *cobra.Command) error {
	f := cmd.Flags()
	if f.Changed("interval") {
		cfg.Practice.IntervalSeconds, _ = f.GetFloat64("interval")
	}
	if f.Changed("chords") {
		s, _ := f.GetString("chords")
		cfg.Practice.Chords = config.SplitList(s)
	}
	if f.Changed("tuning") {
		cfg.Diagram.Tuning, _ = f.GetString("tuning")
	}
	if f.Changed("diagram") {
		cfg.Practice.ShowDiagram, _ = f.GetBool("diagram")
	}
	if f.Changed("metronome") {
		cfg.Practice.Metronome, _ = f.GetBool("metronome")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid practice options: %w", err)
	}
	return nil
}
