package console

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	ColorResult  = lipgloss.Color("#10B981") // Emerald
	ColorMistake = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles colours console output. The zero value prints plain text.
type Styles struct {
	enabled bool

	Label   lipgloss.Style
	Result  lipgloss.Style
	Mistake lipgloss.Style
}

func NewStyles(w io.Writer, color bool) Styles {
	if !color {
		return Styles{}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return Styles{
		enabled: true,
		Label:   r.NewStyle().Foreground(ColorMuted),
		Result:  r.NewStyle().Foreground(ColorResult).Bold(true),
		Mistake: r.NewStyle().Foreground(ColorMistake),
	}
}

func (s Styles) label(str string) string {
	if !s.enabled {
		return str
	}
	return s.Label.Render(str)
}

func (s Styles) result(str string, ok bool) string {
	if !s.enabled {
		return str
	}
	if ok {
		return s.Result.Render(str)
	}
	return s.Mistake.Render(str)
}

// ColorEnabled resolves a color setting (auto, always, never) for w. auto
// colours terminals only and honours NO_COLOR.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, found := os.LookupEnv("NO_COLOR"); found {
		return false
	}
	return IsTerminal(w)
}

func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
