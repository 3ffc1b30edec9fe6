package tui

import "slices"

// View identifies one of the dashboard's two screens.
type View int

const (
	ViewPie View = iota
	ViewDetail
)

// Snapshot keys.
const (
	StateKeyView             = "view"
	StateKeySelectedCategory = "selected_category"
)

func (v View) String() string {
	if v == ViewDetail {
		return "detail"
	}
	return "pie"
}

func parseView(s string) View {
	if s == "detail" {
		return ViewDetail
	}
	return ViewPie
}

// ViewState is the part of the dashboard that survives a restart.
type ViewState struct {
	View             View
	SelectedCategory string
}

// Snapshot flattens the state to string pairs. An empty selection is
// omitted.
func (s ViewState) Snapshot() map[string]string {
	snap := map[string]string{StateKeyView: s.View.String()}
	if s.SelectedCategory != "" {
		snap[StateKeySelectedCategory] = s.SelectedCategory
	}
	return snap
}

// RestoreViewState rebuilds state from a snapshot, checked against the
// categories actually loaded. An unknown category clears the selection, and
// the detail view is only restored alongside a valid selection.
func RestoreViewState(snap map[string]string, categories []string) ViewState {
	var s ViewState
	if cat := snap[StateKeySelectedCategory]; cat != "" && slices.Contains(categories, cat) {
		s.SelectedCategory = cat
	}
	if s.SelectedCategory != "" {
		s.View = parseView(snap[StateKeyView])
	}
	return s
}
