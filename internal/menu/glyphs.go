package menu

// WideSpace separates the carousel arrows from the current item.
const WideSpace = "　"

// Glyphs are the icon placeholders substituted into rendered text. Hosts
// with an icon font replace them with their own code points.
type Glyphs struct {
	Enter  string `json:"enter,omitempty" yaml:"enter,omitempty"`
	Left   string `json:"left,omitempty" yaml:"left,omitempty"`
	Right  string `json:"right,omitempty" yaml:"right,omitempty"`
	Up     string `json:"up,omitempty" yaml:"up,omitempty"`
	Down   string `json:"down,omitempty" yaml:"down,omitempty"`
	UpDown string `json:"upDown,omitempty" yaml:"upDown,omitempty"`
}

// DefaultGlyphs are plain Unicode stand-ins for the console icon font.
var DefaultGlyphs = Glyphs{
	Enter:  "⏎",
	Left:   "◀",
	Right:  "▶",
	Up:     "▲",
	Down:   "▼",
	UpDown: "↕",
}

// WithDefaults fills empty fields from DefaultGlyphs.
func (g Glyphs) WithDefaults() Glyphs {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&g.Enter, DefaultGlyphs.Enter)
	fill(&g.Left, DefaultGlyphs.Left)
	fill(&g.Right, DefaultGlyphs.Right)
	fill(&g.Up, DefaultGlyphs.Up)
	fill(&g.Down, DefaultGlyphs.Down)
	fill(&g.UpDown, DefaultGlyphs.UpDown)
	return g
}

// bounds picks the arrow showing which directions are still available.
// The minimum check wins when both hold.
func (g Glyphs) bounds(atMin, atMax bool) string {
	switch {
	case atMin:
		return g.Up
	case atMax:
		return g.Down
	default:
		return g.UpDown
	}
}
