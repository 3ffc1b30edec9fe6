// Package theme defines color themes for the spendview dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds the chrome colors of the dashboard. Slice colors are not part
// of a theme: the pie palette stays the same whichever theme is active.
type Theme struct {
	Name string

	Background   lipgloss.Color // behind everything
	Surface      lipgloss.Color // cards, legend, chart plot area
	SurfaceHover lipgloss.Color // active tab

	Border       lipgloss.Color
	BorderAccent lipgloss.Color // help and picker overlays

	TextDim     lipgloss.Color // axes, percentages
	TextMuted   lipgloss.Color // labels, category names
	TextPrimary lipgloss.Color // amounts

	Accent       lipgloss.Color // highlight marker
	AccentBright lipgloss.Color // overlay titles
	AccentDim    lipgloss.Color // highlighted legend row
	Cyan         lipgloss.Color // keys in the full help

	Peak lipgloss.Color // the busiest day on the detail view
	Hint lipgloss.Color // "nothing to draw" and other empty states
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default: warm, paper-like dark colors.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	AccentDim:    lipgloss.Color("#1A3533"),
	Cyan:         lipgloss.Color("#24837B"),
	Peak:         lipgloss.Color("#DA702C"),
	Hint:         lipgloss.Color("#D0A215"),
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	SurfaceHover: lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4D0FB"),
	AccentDim:    lipgloss.Color("#293147"),
	Cyan:         lipgloss.Color("#94E2D5"),
	Peak:         lipgloss.Color("#FAB387"),
	Hint:         lipgloss.Color("#F9E2AF"),
}

// TokyoNight is a cool blue and purple theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	SurfaceHover: lipgloss.Color("#343A52"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentBright: lipgloss.Color("#A9C1FF"),
	AccentDim:    lipgloss.Color("#252B3F"),
	Cyan:         lipgloss.Color("#7DCFFF"),
	Peak:         lipgloss.Color("#FF9E64"),
	Hint:         lipgloss.Color("#E0AF68"),
}

// Terminal sticks to the 16 ANSI colors.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	AccentDim:    lipgloss.Color("4"),
	Cyan:         lipgloss.Color("6"),
	Peak:         lipgloss.Color("3"),
	Hint:         lipgloss.Color("11"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// slicePalette colors pie slices and their legend rows, cycling by index.
var slicePalette = [...]lipgloss.Color{
	"#FF8C00",
	"#1E90FF",
	"#32CD32",
	"#FF1493",
	"#FFD700",
	"#7B68EE",
	"#00FA9A",
	"#FF4500",
	"#ADFF2F",
	"#DC143C",
}

// PaletteSize is the number of distinct slice colors before they repeat.
const PaletteSize = len(slicePalette)

// SliceColor returns the color for the slice at index i. Negative indexes
// wrap the same way as positive ones.
func SliceColor(i int) lipgloss.Color {
	n := len(slicePalette)
	return slicePalette[((i%n)+n)%n]
}
