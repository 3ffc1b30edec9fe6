// Package tui provides the interactive Bubble Tea dashboard for spendview.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/spendview/internal/chart"
	"github.com/theirongolddev/spendview/internal/cli"
	"github.com/theirongolddev/spendview/internal/logging"
	"github.com/theirongolddev/spendview/internal/model"
	"github.com/theirongolddev/spendview/internal/pipeline"
	"github.com/theirongolddev/spendview/internal/tui/components"
	"github.com/theirongolddev/spendview/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Options configure a new dashboard.
type Options struct {
	Entries  []model.ExpenseEntry
	Source   string
	Location *time.Location // nil means time.Local
	FillGaps bool
	Animate  bool
	State    map[string]string      // snapshot from a previous run
	Notifier SliceSelectionNotifier // nil delivers SliceSelectedMsg
	Logger   *logging.Logger
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	entries    []model.ExpenseEntry
	totals     []model.CategoryTotal
	slices     []model.PieSlice
	categories []string
	summary    model.Summary
	source     string
	loc        *time.Location
	fillGaps   bool

	// Daily buckets for the selected category
	buckets []model.DateBucket

	// UI state
	width     int
	height    int
	state     ViewState
	highlight int // index into slices
	keys      keyMap
	help      help.Model
	showHelp  bool

	// Category picker (huh form)
	picker    *huh.Form
	pickValue *string

	animate bool
	flip    flip

	notifier SliceSelectionNotifier
	log      *logging.Logger
}

const (
	minTerminalWidth  = 60
	minTerminalHeight = 16
	minContentHeight  = 5

	headerHeight = 1
	statusHeight = 1

	piePercent = 45 // share of the content width given to the pie card
	pickerMaxW = 50
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = msgNotifier{}
	}

	totals := pipeline.AggregateByCategory(opts.Entries)
	a := App{
		entries:    opts.Entries,
		totals:     totals,
		slices:     chart.LayoutSlices(totals),
		categories: pipeline.Categories(opts.Entries),
		summary:    pipeline.Summarize(opts.Entries),
		source:     opts.Source,
		loc:        loc,
		fillGaps:   opts.FillGaps,
		keys:       defaultKeyMap(),
		help:       newHelp(),
		animate:    opts.Animate,
		flip:       newFlip(),
		notifier:   notifier,
		log:        log,
	}

	a.state = RestoreViewState(opts.State, a.categories)
	if a.state.SelectedCategory != "" {
		a.highlight = chart.IndexOf(a.slices, a.state.SelectedCategory)
		a.loadBuckets()
	}
	log.Debug("dashboard ready",
		"entries", len(a.entries),
		"categories", len(a.categories),
		"view", a.state.View.String(),
		"selected", a.state.SelectedCategory)
	return a
}

func newHelp() help.Model {
	t := theme.Active
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	return h
}

// ViewState returns the state to persist across runs.
func (a App) ViewState() ViewState {
	return a.state
}

// Highlighted returns the category under the pie cursor, or "".
func (a App) Highlighted() string {
	if a.highlight < 0 || a.highlight >= len(a.slices) {
		return ""
	}
	return a.slices[a.highlight].Category
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.picker != nil {
			a.picker = a.picker.WithWidth(a.pickerWidth())
		}
		return a, nil

	case flipFrameMsg:
		cmd, _ := a.flip.step(msg)
		return a, cmd

	case SliceSelectedMsg:
		return a.selectCategory(msg.Category)

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the picker (cursor blinks, etc.)
	if a.picker != nil {
		return a.updatePicker(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// The picker intercepts all keys while open
	if a.picker != nil {
		if key.Matches(msg, a.keys.Back) {
			a.picker = nil
			return a, nil
		}
		return a.updatePicker(msg)
	}

	// Any key dismisses help
	if a.showHelp {
		a.showHelp = false
		a.help.ShowAll = false
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		a.help.ShowAll = true
		return a, nil

	case key.Matches(msg, a.keys.Toggle):
		if a.state.View == ViewPie {
			return a.showView(ViewDetail)
		}
		return a.showView(ViewPie)

	case key.Matches(msg, a.keys.Back):
		return a.showView(ViewPie)

	case key.Matches(msg, a.keys.Select):
		if a.state.View == ViewPie && len(a.slices) > 0 {
			return a, a.notifier.NotifySliceSelection(a.Highlighted())
		}
		return a, nil

	case key.Matches(msg, a.keys.Prev):
		a.moveHighlight(-1)
		return a, nil

	case key.Matches(msg, a.keys.Next):
		a.moveHighlight(1)
		return a, nil

	case key.Matches(msg, a.keys.Pick):
		return a.openPicker()
	}

	// Tab shortcuts
	if runes := msg.Runes; len(runes) == 1 {
		if tab := components.TabIdxByKey(runes[0]); tab >= 0 {
			return a.showView(View(tab))
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHelp || a.picker != nil || a.flip.active {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveHighlight(-1)
		return a, nil

	case tea.MouseButtonWheelDown:
		a.moveHighlight(1)
		return a, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if msg.Y < headerHeight {
			if tab := components.TabAtX(int(a.state.View), msg.X); tab >= 0 {
				return a.showView(View(tab))
			}
			return a, nil
		}
		if a.state.View != ViewPie {
			return a, nil
		}
		if cat, ok := a.layoutOverview().canvas.CategoryAtScreen(a.slices, msg.X, msg.Y); ok {
			return a, a.notifier.NotifySliceSelection(cat)
		}
	}
	return a, nil
}

func (a App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.picker.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.picker = f
	}

	switch a.picker.State {
	case huh.StateCompleted:
		cat := *a.pickValue
		a.picker = nil
		return a.selectCategory(cat)
	case huh.StateAborted:
		a.picker = nil
		return a, nil
	}
	return a, cmd
}

func (a App) openPicker() (tea.Model, tea.Cmd) {
	if len(a.categories) == 0 {
		return a, nil
	}
	current := a.state.SelectedCategory
	if current == "" {
		current = a.Highlighted()
	}
	a.pickValue = new(string)
	a.picker = newCategoryPicker(a.categories, current, a.pickValue)
	if a.width > 0 {
		a.picker = a.picker.WithWidth(a.pickerWidth())
	}
	return a, a.picker.Init()
}

func (a App) pickerWidth() int {
	w := a.width - 8
	if w > pickerMaxW {
		w = pickerMaxW
	}
	return w
}

// selectCategory makes cat the detail category and switches to the detail
// view. Unknown categories are ignored.
func (a App) selectCategory(cat string) (tea.Model, tea.Cmd) {
	idx := chart.IndexOf(a.slices, cat)
	if idx < 0 {
		a.log.Warn("ignoring selection of unknown category", "category", cat)
		return a, nil
	}
	a.highlight = idx
	a.state.SelectedCategory = cat
	a.loadBuckets()
	a.log.Info("category selected", "category", cat, "days", len(a.buckets))
	return a.showView(ViewDetail)
}

// showView switches to v, animating when enabled. Opening the detail view
// with nothing selected selects the highlighted slice.
func (a App) showView(v View) (tea.Model, tea.Cmd) {
	if v == a.state.View {
		return a, nil
	}
	if v == ViewDetail && a.state.SelectedCategory == "" && len(a.slices) > 0 {
		a.state.SelectedCategory = a.Highlighted()
		a.loadBuckets()
	}

	from := a.state.View
	a.state.View = v
	a.log.Debug("view switched", "from", from.String(), "to", v.String())

	if a.animate && a.height > 0 {
		return a, a.flip.start(from, v)
	}
	return a, nil
}

// moveHighlight steps the pie cursor, wrapping at either end. On the detail
// view the selection follows it.
func (a *App) moveHighlight(delta int) {
	n := len(a.slices)
	if n == 0 {
		return
	}
	a.highlight = ((a.highlight+delta)%n + n) % n
	if a.state.View == ViewDetail {
		a.state.SelectedCategory = a.slices[a.highlight].Category
		a.loadBuckets()
	}
}

func (a *App) loadBuckets() {
	if a.state.SelectedCategory == "" {
		a.buckets = nil
		return
	}
	a.buckets = pipeline.AggregateByDateIn(a.entries, a.state.SelectedCategory, a.loc)
	if a.fillGaps {
		filled, err := pipeline.FillDateGaps(a.buckets, a.loc)
		if err != nil {
			a.log.Warn("showing recorded days only", "category", a.state.SelectedCategory, "err", err)
		}
		a.buckets = filled
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth || a.height < minTerminalHeight {
		return a.viewTooSmall()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.picker != nil {
		return a.viewPicker()
	}

	return a.viewMain()
}

func (a App) viewTooSmall() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too small (%dx%d)\n\n  spendview needs at least %dx%d.\n",
		a.width, a.height, minTerminalWidth, minTerminalHeight,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(a.help.View(a.keys))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Click a slice to open its daily chart"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewPicker() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(a.picker.View()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	h := a.height

	header := components.RenderTabBar(int(a.state.View), w)
	statusBar := components.RenderStatusBar(w, a.help.ShortHelpView(a.keys.ShortHelp()), a.statusInfo())

	contentH := a.contentHeight()

	var content string
	if a.flip.active {
		v, frac := a.flip.showing()
		content = fold(a.renderView(v, contentH), frac, contentH)
	} else {
		content = a.renderView(a.state.View, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, w, t.Background)

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) contentHeight() int {
	h := a.height - headerHeight - statusHeight
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

func (a App) renderView(v View, h int) string {
	if v == ViewDetail {
		return a.renderDetail(h)
	}
	return a.renderOverview()
}

func (a App) statusInfo() string {
	var parts []string
	if a.source != "" {
		parts = append(parts, filepath.Base(a.source))
	}
	if a.state.SelectedCategory != "" {
		parts = append(parts, a.state.SelectedCategory)
	}
	return strings.Join(parts, " · ")
}

// ─── Overview ───────────────────────────────────────────────────

// overviewLayout sizes the pie view. Rendering and mouse hit testing both
// read it so clicks land on the cells that were drawn.
type overviewLayout struct {
	metrics string
	pieW    int
	legendW int
	canvas  components.PieCanvas
}

func (a App) layoutOverview() overviewLayout {
	w := a.width
	metrics := a.renderMetrics(w)
	metricsH := lipgloss.Height(metrics)

	pieW := w * piePercent / 100
	cols := components.CardInnerWidth(pieW)
	rows := a.contentHeight() - metricsH - 3 // card border + title
	if rows > cols/2 {
		rows = cols / 2
	}
	if rows < 0 {
		rows = 0
	}

	return overviewLayout{
		metrics: metrics,
		pieW:    pieW,
		legendW: w - pieW,
		canvas: components.PieCanvas{
			OriginX: 2, // border + padding
			OriginY: headerHeight + metricsH + 2,
			Cols:    cols,
			Rows:    rows,
		},
	}
}

func (a App) renderMetrics(w int) string {
	span := ""
	if !a.summary.First.IsZero() {
		span = a.summary.First.In(a.loc).Format(pipeline.DayLabelLayout) + " - " +
			a.summary.Last.In(a.loc).Format(pipeline.DayLabelLayout)
	}
	return components.MetricCardRow([]components.Metric{
		{Label: "Total", Value: cli.FormatAmount(a.summary.Total)},
		{Label: "Categories", Value: cli.FormatNumber(int64(a.summary.Categories))},
		{Label: "Entries", Value: cli.FormatNumber(int64(a.summary.Entries)), Note: span},
	}, w)
}

func (a App) renderOverview() string {
	t := theme.Active
	lay := a.layoutOverview()

	if len(a.slices) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.Hint).Render("No expenses to chart.")
		return lay.metrics + "\n" + components.ContentCard("Spending by category", hint, a.width)
	}

	highlight := a.Highlighted()
	pie := components.ContentCard("Spending by category", lay.canvas.Render(a.slices, highlight), lay.pieW)

	legendBody := components.Legend(a.totals, highlight, components.CardInnerWidth(lay.legendW))
	if a.highlight >= 0 && a.highlight < len(a.slices) {
		s := a.slices[a.highlight]
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		legendBody += "\n\n" + dim.Render(fmt.Sprintf("%s  starts at %s, sweeps %s",
			s.Category, cli.FormatAngle(s.StartAngle), cli.FormatAngle(s.SweepAngle)))
	}
	legend := components.ContentCard("Legend", legendBody, lay.legendW)

	return lay.metrics + "\n" + components.CardRow([]string{pie, legend})
}

// ─── Detail ─────────────────────────────────────────────────────

func (a App) renderDetail(h int) string {
	t := theme.Active
	w := a.width
	cat := a.state.SelectedCategory

	if cat == "" {
		hint := lipgloss.NewStyle().Foreground(t.Hint).
			Render("Select a slice on the overview to see its daily spending.")
		return components.ContentCard("Daily spending", hint, w)
	}

	idx := chart.IndexOf(a.slices, cat)
	total := 0.0
	if idx >= 0 {
		total = a.totals[idx].Amount
	}

	peak := model.DateBucket{}
	for _, b := range a.buckets {
		if b.Amount > peak.Amount {
			peak = b
		}
	}
	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Category", Value: cat},
		{Label: "Total", Value: cli.FormatAmount(total)},
		{Label: "Days", Value: cli.FormatNumber(int64(len(a.buckets)))},
		{Label: "Peak day", Value: cli.FormatAmount(peak.Amount), Note: peak.Label, Color: t.Peak},
	}, w)

	chartH := h - lipgloss.Height(metrics) - 3
	if chartH < 4 {
		chartH = 4
	}
	lineChart := components.LineChart(a.buckets, theme.SliceColor(idx), components.CardInnerWidth(w), chartH)

	return metrics + "\n" + components.ContentCard(cat+" by day", lineChart, w)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
