package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/strum/internal/chord"
	"github.com/abhisek/strum/internal/ui/components"
	"github.com/abhisek/strum/internal/ui/layout"
	"github.com/abhisek/strum/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	st := s.ctrl.State()

	top := renderChord(st.CurrentChord)
	if st.ShowDiagram {
		top = lipgloss.JoinHorizontal(lipgloss.Center, top, "    ", s.renderDiagram(st.CurrentChord))
	}

	settings := strings.Join([]string{
		theme.Body.Render(fmt.Sprintf("Interval %.2fs", st.IntervalSeconds)),
		components.Toggle{Label: "Diagram", On: st.ShowDiagram}.View(),
		components.Toggle{Label: "Metronome", On: st.MetronomeOn}.View(),
	}, "    ")

	sections := []string{top, settings}
	switch {
	case s.notice != "":
		sections = append(sections, theme.ErrorText.Render(s.notice))
	case len(st.ActiveChords) == 0:
		sections = append(sections, theme.Hint.Render("No active chords. Toggle one to resume."))
	}
	sections = append(sections, s.grid.View(st.Contains, true))

	return layout.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func renderChord(name chord.Name) string {
	label := string(name)
	if c, err := chord.Parse(name); err == nil {
		label += "\n" + theme.Subtitle.Render(strings.Join(c.Notes(), " "))
	}
	return theme.CurrentChord.Width(18).Render(label)
}

// renderDiagram draws the fretboard for name. Diagrams are rendered fresh on
// every frame; a failure is logged once per chord change.
func (s *PracticeScreen) renderDiagram(name chord.Name) string {
	d, err := s.deps.Renderer.Render(name)
	if err != nil {
		at := diagramFailure{chord: name, advance: s.ctrl.Stats().Advances}
		if s.lastDiagramFailure != at {
			s.lastDiagramFailure = at
			s.log.Warn("chord diagram unavailable", zap.String("chord", string(name)), zap.Error(err))
		}
		return theme.ErrorText.Render("no diagram for " + string(name))
	}
	return theme.Body.Render(d.TextStyled(theme.FingerMarker))
}

// diagramFailure identifies the chord change whose diagram failed.
type diagramFailure struct {
	chord   chord.Name
	advance int
}
