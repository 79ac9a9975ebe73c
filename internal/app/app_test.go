package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/strum/internal/diagram"
	prac "github.com/abhisek/strum/internal/practice"
	"github.com/abhisek/strum/internal/router"
	"github.com/abhisek/strum/internal/screen"
	"github.com/abhisek/strum/internal/screens/home"
	"github.com/abhisek/strum/internal/screens/practice"
)

func testOptions(start bool) Options {
	return Options{
		Home: home.Deps{
			Practice: practice.Deps{Config: prac.DefaultConfig()},
			Diagram:  diagram.DefaultConfig(),
		},
		StartPractice: start,
	}
}

func TestStartPracticeOpensSession(t *testing.T) {
	m := newAppModel(testOptions(true))
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if _, ok := m.router.Active().(*practice.PracticeScreen); !ok {
		t.Errorf("active = %T, want practice screen", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("expected the practice timer to start with Init")
	}
}

func TestEscPopsToHome(t *testing.T) {
	m := newAppModel(testOptions(true))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg")
	}
	m.Update(router.PopScreenMsg{})
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}

	// Esc on the home screen does nothing.
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("expected no command for esc at the root")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(false))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

// closingScreen records Close calls.
type closingScreen struct {
	closed int
}

func (c *closingScreen) Init() tea.Cmd                           { return nil }
func (c *closingScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return c, nil }
func (c *closingScreen) View(int, int) string                    { return "" }
func (c *closingScreen) Title() string                           { return "closing" }
func (c *closingScreen) Close()                                  { c.closed++ }

func TestCloseClosesOpenScreens(t *testing.T) {
	m := newAppModel(testOptions(false))
	cs := &closingScreen{}
	m.router.Push(cs)

	m.close()
	if cs.closed != 1 {
		t.Errorf("closed %d times, want 1", cs.closed)
	}
}

func TestViewFrames(t *testing.T) {
	m := newAppModel(testOptions(true))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 34})
	m = updated.(AppModel)

	content := m.render()
	for _, want := range []string{"strum", "Practice", "2.00s", "esc"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}
