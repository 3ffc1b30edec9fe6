package tui

import (
	"strings"

	"github.com/theirongolddev/spendview/internal/config"
	"github.com/theirongolddev/spendview/internal/source"
	"github.com/theirongolddev/spendview/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	Theme    string
	Animate  bool
	DataFile string
}

// SetupValuesFrom seeds form answers from an existing config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:    cfg.Appearance.Theme,
		Animate:  cfg.TUI.Animate,
		DataFile: cfg.General.DataFile,
	}
}

// Apply writes the answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	cfg.TUI.Animate = v.Animate
	cfg.General.DataFile = strings.TrimSpace(v.DataFile)
}

// NewSetupForm builds the setup wizard. Answers are written through vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOpts[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to spendview!").
				Description("A couple of choices and you're done.\nRun `spendview setup` anytime to change them."),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),

			huh.NewConfirm().
				Title("Animate view switches?").
				Value(&vals.Animate),

			huh.NewInput().
				Title("Expenses file").
				Description("JSON array of expenses. Leave blank for the bundled sample.").
				Placeholder("~/expenses.json").
				Value(&vals.DataFile).
				Validate(validateDataFile),
		),
	).WithTheme(huh.ThemeBase16())
}

// validateDataFile accepts a blank path or a file that parses cleanly.
func validateDataFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	_, err := source.ParseFile(path)
	return err
}
