package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/strum/internal/router"
	"github.com/abhisek/strum/internal/screen"
	"github.com/abhisek/strum/internal/screens/home"
	"github.com/abhisek/strum/internal/screens/practice"
	"github.com/abhisek/strum/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Home home.Deps

	// StartPractice opens a practice session directly instead of the menu.
	StartPractice bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model on the home screen, optionally with a
// practice session already on top.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(home.New(opts.Home)),
	}
	if opts.StartPractice {
		m.router.Push(practice.New(opts.Home.Practice))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	// Screens pushed before the program starts need their Init as well.
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			hints = kp.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "esc", Description: "back"},
			{Key: "ctrl+c", Description: "quit"},
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// close ends every open screen so running sessions are recorded.
func (m AppModel) close() {
	m.router.CloseAll()
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model := newAppModel(opts)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if fm, ok := final.(AppModel); ok {
		fm.close()
	} else {
		model.close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
