package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/strum/internal/store"
)

// resetFlags restores every flag to its default so tests sharing rootCmd do
// not leak values into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("STRUM_CONFIG", "")
	t.Setenv("STRUM_DB", "")
	t.Setenv("STRUM_TUNING", "")
	t.Setenv("STRUM_LOG_LEVEL", "off")

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "strum "), "got %q", out)
}

func TestChordsListsEveryQuality(t *testing.T) {
	out, err := run(t, "", "chords")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"major", "C", "D", "E", "F", "G", "A", "B"}, strings.Fields(lines[0]))
	assert.Contains(t, out, "Cmaj7 Dmaj7")
}

func TestDiagramText(t *testing.T) {
	out, err := run(t, "", "diagram", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "C (C tuning)  frets 0 0 0 3")

	out, err = run(t, "", "diagram", "D", "--tuning", "D")
	require.NoError(t, err)
	assert.Contains(t, out, "D (D tuning)  frets 0 0 0 3")
}

func TestDiagramSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.svg")
	out, err := run(t, "", "diagram", "Am", "--svg", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestDiagramUnknownChord(t *testing.T) {
	_, err := run(t, "", "diagram", "H7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "H7")
}

func TestHistoryAndReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "strum.db")

	out, err := run(t, "", "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions yet")

	st, err := store.Open(db)
	require.NoError(t, err)
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	_, err = st.SessionRepo().Record(context.Background(), store.SessionRecord{
		StartedAt: start, EndedAt: start.Add(2 * time.Minute), Advances: 60, IntervalSeconds: 2, Tuning: "C",
	})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err = run(t, "", "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1 session · 2:00 practiced · 60 chord changes")
	assert.Contains(t, out, "60 changes  every 2.00s")

	out, err = run(t, "n\n", "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = run(t, "", "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 sessions.")
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := run(t, "", "chords", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
