package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/trackline/internal/cli/formatter"
	"github.com/alexanderramin/trackline/internal/domain"
	"github.com/alexanderramin/trackline/internal/service"
	"github.com/alexanderramin/trackline/internal/timeline"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Interactive timeline view",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the timeline view requires an interactive terminal")
			}
			model := newTimelineModel(app)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type timelineKeymap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Weekly key.Binding
	Month  key.Binding
	Quart  key.Binding
	Snap   key.Binding
	StartL key.Binding
	StartR key.Binding
	EndL   key.Binding
	EndR   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultTimelineKeymap() timelineKeymap {
	return timelineKeymap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "forward")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev tracker")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next tracker")),
		Weekly: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "weekly")),
		Month:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "monthly")),
		Quart:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "quarterly")),
		Snap:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snap")),
		StartL: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "start earlier")),
		StartR: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "start later")),
		EndL:   key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "end earlier")),
		EndR:   key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "end later")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type layoutLoadedMsg struct {
	layout *service.Layout
	err    error
}

type resizeDoneMsg struct {
	result timeline.ResizeResult
	err    error
}

// timelineModel is the interactive lane view: pan, zoom, snap, and keyboard
// edge resizing of the selected tracker.
type timelineModel struct {
	app      *App
	keys     timelineKeymap
	viewport timeline.Viewport
	snap     bool
	layout   *service.Layout
	cursor   int
	width    int
	height   int
	loading  bool
	status   string
	err      error
}

func newTimelineModel(app *App) *timelineModel {
	mode := app.Config.ViewMode()
	return &timelineModel{
		app:      app,
		keys:     defaultTimelineKeymap(),
		viewport: timeline.NewViewport(time.Now().UTC(), mode),
		snap:     app.Config.Constraints().SnapToGrid,
		loading:  true,
	}
}

func (m *timelineModel) Init() tea.Cmd {
	return m.loadLayout()
}

func (m *timelineModel) loadLayout() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		layout, err := app.Layouts.Layout(context.Background(), app.Config.TimelineConfig())
		return layoutLoadedMsg{layout: layout, err: err}
	}
}

// resizeEdge commits a one-grid-unit move of the selected tracker's edge.
func (m *timelineModel) resizeEdge(handle timeline.HandleKind, direction int) tea.Cmd {
	sel := m.selected()
	if sel == nil {
		return nil
	}
	app := m.app
	mode := m.viewport.Mode

	var proposed time.Time
	if handle == timeline.HandleStart {
		proposed = stepDate(sel.StartDate, direction, mode)
	} else {
		proposed = stepDate(sel.EndDate, direction, mode)
	}

	c := app.Config.Constraints()
	c.SnapToGrid = m.snap
	id := sel.TrackerID
	return func() tea.Msg {
		res, err := app.Layouts.CommitResize(context.Background(), id, handle, proposed, c, mode)
		return resizeDoneMsg{result: res, err: err}
	}
}

// stepDate moves a date by one grid unit of the mode.
func stepDate(d time.Time, direction int, mode timeline.ViewMode) time.Time {
	switch mode {
	case timeline.ViewWeekly:
		return d.AddDate(0, 0, direction)
	case timeline.ViewQuarterly:
		return d.AddDate(0, direction, 0)
	default:
		return d.AddDate(0, 0, 7*direction)
	}
}

func (m *timelineModel) selected() *domain.LaneAssignment {
	if m.layout == nil || m.cursor < 0 || m.cursor >= len(m.layout.Assignments) {
		return nil
	}
	return &m.layout.Assignments[m.cursor]
}

func (m *timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case layoutLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.layout = msg.layout
		if m.cursor >= len(m.layout.Assignments) {
			m.cursor = len(m.layout.Assignments) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case resizeDoneMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("resize failed: " + msg.err.Error())
			return m, nil
		}
		if msg.result.IsValid {
			m.status = formatter.Dim("resized")
		} else {
			m.status = formatter.StyleYellow.Render("corrected: " + strings.Join(msg.result.Errors, "; "))
		}
		m.loading = true
		return m, m.loadLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.viewport = m.viewport.Navigate(-1)
		case key.Matches(msg, m.keys.Right):
			m.viewport = m.viewport.Navigate(1)
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.layout != nil && m.cursor < len(m.layout.Assignments)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Weekly):
			m.setMode(timeline.ViewWeekly)
		case key.Matches(msg, m.keys.Month):
			m.setMode(timeline.ViewMonthly)
		case key.Matches(msg, m.keys.Quart):
			m.setMode(timeline.ViewQuarterly)
		case key.Matches(msg, m.keys.Snap):
			m.snap = !m.snap
		case key.Matches(msg, m.keys.StartL):
			return m, m.resizeEdge(timeline.HandleStart, -1)
		case key.Matches(msg, m.keys.StartR):
			return m, m.resizeEdge(timeline.HandleStart, 1)
		case key.Matches(msg, m.keys.EndL):
			return m, m.resizeEdge(timeline.HandleEnd, -1)
		case key.Matches(msg, m.keys.EndR):
			return m, m.resizeEdge(timeline.HandleEnd, 1)
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			return m, m.loadLayout()
		}
	}
	return m, nil
}

func (m *timelineModel) setMode(mode timeline.ViewMode) {
	// Re-anchor the viewport so the current window's start stays visible.
	m.viewport = timeline.NewViewport(m.viewport.StartDate, mode)
}

func (m *timelineModel) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteByte('\n')

	switch {
	case m.loading:
		b.WriteString("\n  " + formatter.Dim("Loading timeline..."))
	case m.err != nil:
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()))
	case m.layout == nil || len(m.layout.Assignments) == 0:
		b.WriteString("\n  " + formatter.Dim("No trackers on the timeline."))
	default:
		b.WriteString(m.lanesView())
	}

	b.WriteByte('\n')
	if m.status != "" {
		b.WriteString("  " + m.status + "\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m *timelineModel) headerView() string {
	snapLabel := "off"
	if m.snap {
		snapLabel = "on"
	}
	return fmt.Sprintf("  %s  %s  %s",
		formatter.Bold(fmt.Sprintf("%s → %s",
			m.viewport.StartDate.Format(dateLayout),
			m.viewport.EndDate.Format(dateLayout))),
		formatter.StyleHeader.Render(string(m.viewport.Mode)),
		formatter.Dim("snap "+snapLabel),
	)
}

// lanesView renders one row per assignment, grouped by lane, with bars
// scaled to the visible window.
func (m *timelineModel) lanesView() string {
	byID := make(map[string]*domain.Tracker, len(m.layout.Trackers))
	for _, t := range m.layout.Trackers {
		byID[t.ID] = t
	}

	// Terminal cells available for the date axis.
	axisWidth := m.width - 30
	if axisWidth < 20 {
		axisWidth = 20
	}
	visibleDays := m.viewport.Mode.VisibleDays()

	var b strings.Builder
	lane := -1
	for i, a := range m.layout.Assignments {
		if a.LaneIndex != lane {
			lane = a.LaneIndex
			b.WriteString("\n  " + formatter.StyleHeader.Render(fmt.Sprintf("lane %d", lane)) + "\n")
		}

		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		title := a.TrackerID
		style := formatter.StyleBlue
		if t, ok := byID[a.TrackerID]; ok {
			title = t.Title
			style = formatter.PriorityStyle(t.Priority)
		}

		b.WriteString(fmt.Sprintf("  %s%s %s %s\n",
			cursor,
			m.barView(a, style, axisWidth, visibleDays),
			formatter.StyleFg.Render(title),
			formatter.Dim(fmt.Sprintf("%s → %s", a.StartDate.Format(dateLayout), a.EndDate.Format(dateLayout))),
		))
	}
	return b.String()
}

// barView draws the assignment's bar clipped to the viewport window.
func (m *timelineModel) barView(a domain.LaneAssignment, style lipgloss.Style, axisWidth, visibleDays int) string {
	offset := domain.DaysBetween(a.StartDate, m.viewport.StartDate)
	length := a.Duration()

	// Clip to the window.
	if offset < 0 {
		length += offset
		offset = 0
	}
	if offset >= visibleDays || length <= 0 {
		return formatter.Dim(strings.Repeat("·", axisWidth))
	}
	if offset+length > visibleDays {
		length = visibleDays - offset
	}

	scale := func(days int) int { return days * axisWidth / visibleDays }
	left := scale(offset)
	barLen := scale(offset+length) - left
	if barLen < 1 {
		barLen = 1
	}
	right := axisWidth - left - barLen
	if right < 0 {
		right = 0
	}

	return formatter.Dim(strings.Repeat("·", left)) +
		style.Render(strings.Repeat("█", barLen)) +
		formatter.Dim(strings.Repeat("·", right))
}

func (m *timelineModel) helpView() string {
	bindings := []key.Binding{
		m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down,
		m.keys.Weekly, m.keys.Month, m.keys.Quart, m.keys.Snap,
		m.keys.StartL, m.keys.StartR, m.keys.EndL, m.keys.EndR,
		m.keys.Reload, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "  " + formatter.Dim(strings.Join(parts, " · "))
}
