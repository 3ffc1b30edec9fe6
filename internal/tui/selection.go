package tui

import tea "github.com/charmbracelet/bubbletea"

// SliceSelectionNotifier is told which category the user picked on the pie.
// The dashboard owns it; hit testing only reports the category.
type SliceSelectionNotifier interface {
	NotifySliceSelection(category string) tea.Cmd
}

// SliceSelectedMsg carries a slice selection back into the update loop.
type SliceSelectedMsg struct {
	Category string
}

// msgNotifier turns a selection into a SliceSelectedMsg.
type msgNotifier struct{}

func (msgNotifier) NotifySliceSelection(category string) tea.Cmd {
	return func() tea.Msg {
		return SliceSelectedMsg{Category: category}
	}
}
