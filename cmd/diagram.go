package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/strum/internal/chord"
	"github.com/abhisek/strum/internal/diagram"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram CHORD",
	Short: "Print a chord diagram or write it as SVG",
	Example: `  strum diagram Am
  strum diagram G7 --tuning D
  strum diagram Fmaj7 --svg fmaj7.svg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dc := cfg.DiagramConfig()
		if t, _ := cmd.Flags().GetString("tuning"); t != "" {
			tuning, err := chord.ParseTuning(t)
			if err != nil {
				return err
			}
			dc.Tuning = tuning
		}

		d, err := diagram.NewRenderer(dc).Render(chord.Name(args[0]))
		if err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("svg"); path != "" {
			return writeSVG(cmd, d, path)
		}

		out := cmd.OutOrStdout()
		frets := make([]string, 0, len(d.Fingering.Positions))
		for _, f := range d.Fingering.Frets() {
			frets = append(frets, strconv.Itoa(f))
		}
		fmt.Fprintf(out, "%s (%s tuning)  frets %s\n\n", d.Chord, d.Tuning, strings.Join(frets, " "))
		fmt.Fprintln(out, d.Text())
		return nil
	},
}

func init() {
	diagramCmd.Flags().String("tuning", "", "Ukulele tuning: C, D or G (default from config)")
	diagramCmd.Flags().String("svg", "", "Write an SVG diagram to this file (- for stdout)")
}

func writeSVG(cmd *cobra.Command, d diagram.Diagram, path string) error {
	if path == "-" {
		return d.WriteSVG(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	if err := d.WriteSVG(f); err != nil {
		f.Close()
		return fmt.Errorf("write svg: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
	return nil
}
