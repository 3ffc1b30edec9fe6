package tui

import "github.com/charmbracelet/huh"

// newCategoryPicker builds a single-select form over the loaded categories.
// The choice is written through value.
func newCategoryPicker(categories []string, current string, value *string) *huh.Form {
	opts := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		opts[i] = huh.NewOption(c, c)
	}
	*value = current

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Description("Open the daily chart for").
				Options(opts...).
				Value(value),
		),
	).WithShowHelp(false).WithTheme(huh.ThemeBase16())
}
