package diagram

import (
	"fmt"
	"io"
	"text/template"
)

var svgTemplate = template.Must(template.New("chord.svg").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<text x="{{.TitleX}}" y="{{.TitleY}}" text-anchor="middle" font-size="24" font-weight="600">{{.Title}}</text>
{{- range .Notes}}
<text x="{{.X}}" y="{{.Y}}" text-anchor="middle" font-size="12" fill="#64748b">{{.Text}}</text>
{{- end}}
<line x1="{{.Nut.X1}}" y1="{{.Nut.Y1}}" x2="{{.Nut.X2}}" y2="{{.Nut.Y2}}" stroke="black" stroke-width="5" />
{{- range .Frets}}
<line x1="{{.X1}}" y1="{{.Y1}}" x2="{{.X2}}" y2="{{.Y2}}" stroke="black" stroke-width="2" />
{{- end}}
{{- range .Strings}}
<line x1="{{.X1}}" y1="{{.Y1}}" x2="{{.X2}}" y2="{{.Y2}}" stroke="black" stroke-width="2" />
{{- end}}
{{- range .Markers}}
<circle cx="{{.X}}" cy="{{.Y}}" r="{{.Radius}}" />
<text x="{{.X}}" y="{{.LabelY}}" class="text" dominant-baseline="middle" text-anchor="middle" font-size="16" fill="white" font-weight="400">{{.Label}}</text>
{{- end}}
</svg>
`))

type svgLine struct {
	X1, Y1, X2, Y2 int
}

type svgText struct {
	X, Y int
	Text string
}

type svgMarker struct {
	Marker
	LabelY int
}

type svgData struct {
	Width, Height  int
	Title          string
	TitleX, TitleY int
	Notes          []svgText
	Nut            svgLine
	Frets          []svgLine
	Strings        []svgLine
	Markers        []svgMarker
}

// WriteSVG writes the diagram as a standalone SVG document. Fret lines sit
// half a spacing below each marker row so markers fall between frets.
func (d Diagram) WriteSVG(w io.Writer) error {
	cfg := d.cfg
	strings := len(d.Tuning.Strings)
	frets := d.Frets()

	left := cfg.Base
	right := cfg.Base + (strings-1)*cfg.Spacing
	nutY := cfg.Base + cfg.Spacing/2
	bottom := nutY + frets*cfg.Spacing

	data := svgData{
		Width:  right + cfg.Base,
		Height: bottom + cfg.Base/2,
		Title:  string(d.Chord),
		TitleX: (left + right) / 2,
		TitleY: cfg.Base / 2,
		Nut:    svgLine{X1: left, Y1: nutY, X2: right, Y2: nutY},
	}
	for i, note := range d.Tuning.NoteNames() {
		data.Notes = append(data.Notes, svgText{X: left + i*cfg.Spacing, Y: nutY - 8, Text: note})
	}
	for f := 1; f <= frets; f++ {
		y := nutY + f*cfg.Spacing
		data.Frets = append(data.Frets, svgLine{X1: left, Y1: y, X2: right, Y2: y})
	}
	for s := 0; s < strings; s++ {
		x := left + s*cfg.Spacing
		data.Strings = append(data.Strings, svgLine{X1: x, Y1: nutY, X2: x, Y2: bottom})
	}
	for _, m := range d.Markers {
		data.Markers = append(data.Markers, svgMarker{Marker: m, LabelY: m.Y + 2})
	}

	if err := svgTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render svg for %s: %w", d.Chord, err)
	}
	return nil
}
