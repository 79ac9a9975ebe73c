package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/strum/internal/store"
)

type mockSessionRepo struct {
	records []store.SessionRecord
	err     error
	limit   int
}

func (m *mockSessionRepo) Record(context.Context, store.SessionRecord) (string, error) {
	return "", nil
}
func (m *mockSessionRepo) List(_ context.Context, opts store.QueryOpts) ([]store.SessionRecord, error) {
	m.limit = opts.Limit
	return m.records, m.err
}
func (m *mockSessionRepo) Totals(context.Context) (store.Totals, error) {
	var t store.Totals
	for _, r := range m.records {
		t.Sessions++
		t.Duration += r.Duration()
		t.Advances += r.Advances
	}
	return t, nil
}
func (m *mockSessionRepo) Reset(context.Context) (int64, error) { return 0, nil }

func loaded(t *testing.T, repo *mockSessionRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	s.Update(s.Init()())
	return s
}

func TestHistoryLoadsSessions(t *testing.T) {
	start := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	repo := &mockSessionRepo{records: []store.SessionRecord{
		{ID: "a", StartedAt: start, EndedAt: start.Add(95 * time.Second), Advances: 30, IntervalSeconds: 2, Tuning: "C", Chords: []string{"C", "G7"}},
		{ID: "b", StartedAt: start, EndedAt: start.Add(time.Minute), Advances: 12, IntervalSeconds: 1.5, Tuning: "D"},
	}}
	s := loaded(t, repo)

	if repo.limit != Limit {
		t.Errorf("limit = %d, want %d", repo.limit, Limit)
	}
	view := s.View(100, 30)
	for _, want := range []string{"1:35", "30 changes", "every 1.50s", "2 sessions", "42 chord changes"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "C G7") {
		t.Error("expected expanded chord list")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestHistoryEmpty(t *testing.T) {
	s := loaded(t, &mockSessionRepo{})
	if !strings.Contains(s.View(80, 20), "No sessions yet") {
		t.Error("expected empty message")
	}
}

func TestHistoryError(t *testing.T) {
	s := loaded(t, &mockSessionRepo{err: errors.New("disk on fire")})
	if !strings.Contains(s.View(80, 20), "disk on fire") {
		t.Error("expected error message")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int64]string{0: "0:00", 59: "0:59", 61: "1:01", 3600: "1:00:00", 3725: "1:02:05"}
	for secs, want := range tests {
		if got := FormatDuration(secs); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", secs, got, want)
		}
	}
}
