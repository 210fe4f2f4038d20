package common

import (
	"os"

	"github.com/mattn/go-isatty"
)

type Color string

const (
	ColorBold   Color = "\033[1m"
	ColorRed    Color = "\033[31m"
	ColorBrown  Color = "\033[33m"
	ColorYellow Color = "\033[1;33m"
	ColorGreen  Color = "\033[1;32m"
	ColorReset  Color = "\033[0m"
)

// Colorizer wraps text in ANSI colors, or leaves it alone when disabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer enables colors when f is a terminal.
func NewColorizer(f *os.File) Colorizer {
	return Colorizer{Enabled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (c Colorizer) Paint(color Color, s string) string {
	if !c.Enabled {
		return s
	}

	return string(color) + s + string(ColorReset)
}

// PercentageColor picks the color of a verified fraction: red below 25%,
// brown below 50%, yellow below 75% and green above.
func PercentageColor(fraction float64) Color {
	switch {
	case fraction < 0.25:
		return ColorRed
	case fraction < 0.5:
		return ColorBrown
	case fraction < 0.75:
		return ColorYellow
	default:
		return ColorGreen
	}
}
