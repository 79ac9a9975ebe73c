package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/strum/internal/chord"
)

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "List every chord the trainer knows",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		byQuality := make(map[chord.Quality][]string)
		for _, n := range chord.All() {
			c, err := chord.Parse(n)
			if err != nil {
				continue
			}
			byQuality[c.Quality] = append(byQuality[c.Quality], string(n))
		}
		out := cmd.OutOrStdout()
		for _, q := range chord.Qualities() {
			fmt.Fprintf(out, "%-13s %s\n", q.Label(), strings.Join(byQuality[q], " "))
		}
	},
}
