// internal/tui/tui.go
// Package tui provides the interactive terminal dashboard for revenue
// analytics.
package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/revlens/internal/analytics"
	"github.com/mwiater/revlens/internal/appconfig"
	"github.com/mwiater/revlens/internal/dashboard"
	"github.com/mwiater/revlens/internal/render"
)

// Config represents the shared application configuration for the TUI.
type Config = appconfig.Config

// viewState represents the current view or screen of the application.
type viewState int

const (
	// viewAuthorizing is the state while the warehouse scope request is in
	// flight.
	viewAuthorizing viewState = iota
	// viewDenied is the terminal state when the session lacks a required
	// read scope.
	viewDenied
	// viewLoading is the state while a refresh is in flight.
	viewLoading
	// viewDashboard is the main charts-and-filters state.
	viewDashboard
)

// tabID identifies one dashboard tab.
type tabID int

const (
	tabRevenue tabID = iota
	tabHiring
)

// model is the main application model for the Bubble Tea UI.
type model struct {
	ctx    context.Context
	config *Config
	loader *dashboard.Loader

	state     viewState
	tab       tabID
	isLoading bool
	err       error

	snapshot *dashboard.Snapshot
	cohorts  *dashboard.CohortSnapshot

	// cohortsRequested gates the lazy hiring load: the query runs once, on
	// the first visit to the hiring tab.
	cohortsRequested bool

	filterCursor int
	exportNote   string

	// calendarAxis switches the hiring chart x-axis from tenure quarters
	// to calendar quarters.
	calendarAxis bool

	spinner          spinner.Model
	viewport         viewport.Model
	width, height    int
	requestStartTime time.Time
}

// initialModel creates and initializes a new model with default values.
func initialModel(ctx context.Context, cfg *Config, loader *dashboard.Loader) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	vp := viewport.New(100, 5)

	return &model{
		ctx:              ctx,
		config:           cfg,
		loader:           loader,
		state:            viewAuthorizing,
		isLoading:        true,
		spinner:          s,
		viewport:         vp,
		requestStartTime: time.Now(),
	}
}

// authOKMsg is a message sent when the scope request was granted.
type authOKMsg struct{}

// authDeniedMsg is a message sent when the scope request was refused.
type authDeniedMsg struct{}

// authErrMsg is a message sent when the scope request itself failed.
type authErrMsg struct{ error }

// snapshotMsg is a message sent when a revenue refresh has completed.
type snapshotMsg struct{ snapshot *dashboard.Snapshot }

// snapshotErrMsg is a message sent when a revenue refresh failed.
type snapshotErrMsg struct{ error }

// cohortsMsg is a message sent when the hiring cohort load has completed.
type cohortsMsg struct{ snapshot *dashboard.CohortSnapshot }

// cohortsErrMsg is a message sent when the hiring cohort load failed.
type cohortsErrMsg struct{ error }

// exportDoneMsg is a message sent when an HTML export has been written.
type exportDoneMsg struct{ path string }

// exportErrMsg is a message sent when an HTML export failed.
type exportErrMsg struct{ error }

// tickMsg is a message sent at regular intervals, used for the elapsed
// timer while loading.
type tickMsg time.Time

// authorizeCmd creates a Bubble Tea command that requests the warehouse
// read scopes.
func authorizeCmd(ctx context.Context, loader *dashboard.Loader) tea.Cmd {
	return func() tea.Msg {
		switch err := loader.Authorize(ctx); {
		case err == nil:
			return authOKMsg{}
		case err == dashboard.ErrScopesDenied:
			return authDeniedMsg{}
		default:
			return authErrMsg{error: err}
		}
	}
}

// loadSnapshotCmd creates a Bubble Tea command that runs a revenue refresh.
func loadSnapshotCmd(ctx context.Context, loader *dashboard.Loader) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := loader.Load(ctx)
		if err != nil {
			return snapshotErrMsg{error: err}
		}
		return snapshotMsg{snapshot: snapshot}
	}
}

// loadCohortsCmd creates a Bubble Tea command that runs the hiring cohort
// load.
func loadCohortsCmd(ctx context.Context, loader *dashboard.Loader) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := loader.LoadCohorts(ctx)
		if err != nil {
			return cohortsErrMsg{error: err}
		}
		return cohortsMsg{snapshot: snapshot}
	}
}

// exportCmd creates a Bubble Tea command that writes the current snapshot
// as an HTML report.
func exportCmd(snapshot *dashboard.Snapshot, cohorts *dashboard.CohortSnapshot, path string) tea.Cmd {
	return func() tea.Msg {
		report := buildReport(snapshot, cohorts)
		if err := render.WriteHTMLFile(report, path); err != nil {
			return exportErrMsg{error: err}
		}
		return exportDoneMsg{path: path}
	}
}

// buildReport assembles every chart the dashboard can show into one
// export. The hiring section is included only when it has been loaded.
func buildReport(snapshot *dashboard.Snapshot, cohorts *dashboard.CohortSnapshot) render.Report {
	report := render.Report{
		Title:    "Revenue Performance",
		Subtitle: snapshot.TeamFilter.SummaryLabel("Teams"),
	}
	for _, chart := range snapshot.RevenueCharts() {
		report.Charts = append(report.Charts, render.RegionChart(chart.Metric, chart.Data))
	}
	totals := snapshot.TotalsChart()
	report.Charts = append(report.Charts, render.TotalsChart(totals.DisplayTitle(), totals.Data))

	if !cohorts.Empty() {
		report.Charts = append(report.Charts, render.CohortChart(analytics.BuildCohortChart(cohorts.Series())))
		report.Insights = cohorts.Insights()
	}
	return report
}

// tickCmd creates a Bubble Tea command that sends a tickMsg at a regular
// interval.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the Bubble Tea model: start the spinner and kick off
// the scope request.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, authorizeCmd(m.ctx, m.loader), tickCmd())
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, next, keyCmd := m.handleKey(msg); handled {
			return next, keyCmd
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight := 4
		footerHeight := 3
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight

	case authOKMsg:
		m.state = viewLoading
		m.requestStartTime = time.Now()
		return m, tea.Batch(m.spinner.Tick, loadSnapshotCmd(m.ctx, m.loader), tickCmd())

	case authDeniedMsg:
		m.isLoading = false
		m.state = viewDenied
		return m, nil

	case authErrMsg:
		m.isLoading = false
		m.err = msg.error
		return m, nil

	case snapshotMsg:
		m.isLoading = false
		m.err = nil
		m.snapshot = msg.snapshot
		m.state = viewDashboard
		m.filterCursor = 0
		return m, nil

	case snapshotErrMsg:
		m.isLoading = false
		m.err = msg.error
		m.state = viewDashboard
		return m, nil

	case cohortsMsg:
		m.isLoading = false
		m.err = nil
		m.cohorts = msg.snapshot
		return m, nil

	case cohortsErrMsg:
		m.isLoading = false
		m.err = msg.error
		// Allow a retry on the next tab visit.
		m.cohortsRequested = false
		return m, nil

	case exportDoneMsg:
		m.exportNote = "report written to " + msg.path
		return m, nil

	case exportErrMsg:
		m.err = msg.error
		return m, nil

	case tickMsg:
		if m.isLoading {
			return m, tickCmd()
		}
		return m, nil
	}

	if m.state == viewDashboard {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes key presses. It reports whether the key was
// consumed so list scrolling keys can still reach the viewport.
func (m *model) handleKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return true, m, tea.Quit

	case "tab":
		if m.state != viewDashboard {
			return true, m, nil
		}
		if m.tab == tabRevenue {
			m.tab = tabHiring
			m.filterCursor = 0
			if !m.cohortsRequested {
				m.cohortsRequested = true
				m.isLoading = true
				m.requestStartTime = time.Now()
				return true, m, tea.Batch(m.spinner.Tick, loadCohortsCmd(m.ctx, m.loader), tickCmd())
			}
		} else {
			m.tab = tabRevenue
			m.filterCursor = 0
		}
		return true, m, nil

	case "r":
		// Refresh is a no-op while a load is already in flight.
		if m.state != viewDashboard || m.isLoading {
			return true, m, nil
		}
		m.isLoading = true
		m.exportNote = ""
		m.requestStartTime = time.Now()
		if m.tab == tabHiring {
			return true, m, tea.Batch(m.spinner.Tick, loadCohortsCmd(m.ctx, m.loader), tickCmd())
		}
		return true, m, tea.Batch(m.spinner.Tick, loadSnapshotCmd(m.ctx, m.loader), tickCmd())

	case "e":
		if m.state != viewDashboard || m.snapshot.Empty() {
			return true, m, nil
		}
		m.exportNote = ""
		return true, m, exportCmd(m.snapshot, m.cohorts, m.config.ExportFilePath())

	case "up", "k":
		if filter := m.activeFilter(); filter != nil && m.filterCursor > 0 {
			m.filterCursor--
		}
		return true, m, nil

	case "down", "j":
		if filter := m.activeFilter(); filter != nil && m.filterCursor < len(filter.Universe())-1 {
			m.filterCursor++
		}
		return true, m, nil

	case " ":
		if filter, name := m.cursorItem(); filter != nil {
			filter.Toggle(name)
		}
		return true, m, nil

	case "o":
		if filter, name := m.cursorItem(); filter != nil {
			filter.Only(name)
		}
		return true, m, nil

	case "d":
		if filter, name := m.cursorItem(); filter != nil {
			filter.Deselect(name)
		}
		return true, m, nil

	case "a":
		if filter := m.activeFilter(); filter != nil {
			filter.SelectAll()
		}
		return true, m, nil

	case "c":
		if filter := m.activeFilter(); filter != nil {
			filter.Clear()
		}
		return true, m, nil

	case "x":
		if m.state == viewDashboard && m.tab == tabHiring {
			m.calendarAxis = !m.calendarAxis
		}
		return true, m, nil
	}

	return false, m, nil
}

// activeFilter returns the filter for the visible tab, nil when the tab
// has no data yet.
func (m *model) activeFilter() *analytics.Filter {
	if m.state != viewDashboard {
		return nil
	}
	if m.tab == tabHiring {
		if m.cohorts.Empty() {
			return nil
		}
		return m.cohorts.RegionFilter
	}
	if m.snapshot.Empty() {
		return nil
	}
	return m.snapshot.TeamFilter
}

// cursorItem returns the filter and the universe entry under the cursor.
func (m *model) cursorItem() (*analytics.Filter, string) {
	filter := m.activeFilter()
	if filter == nil {
		return nil, ""
	}
	universe := filter.Universe()
	if m.filterCursor < 0 || m.filterCursor >= len(universe) {
		return nil, ""
	}
	return filter, universe[m.filterCursor]
}

// Start initializes and runs the interactive dashboard.
func Start(ctx context.Context, cfg *appconfig.Config, loader *dashboard.Loader, cancel context.CancelFunc) {
	defer cancel()

	if cfg == nil {
		log.Fatalf("Failed to start: configuration is not loaded")
	}

	m := initialModel(ctx, cfg, loader)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
