package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minerun/internal/registry"
	"github.com/vovakirdan/minerun/internal/storage"
)

const (
	minWidthForSidebar = 100
	sidebarWidth       = 24
	maxRuns            = 100
	tabNameWidth       = 12
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabActive  = boardActive.Background(lipgloss.Color("57")).Padding(0, 1)
)

// RunOrder selects which runs the scoreboard lists.
type RunOrder int

const (
	OrderBest RunOrder = iota
	OrderRecent
)

func (o RunOrder) String() string {
	if o == OrderRecent {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Order key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Order, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Order, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Order: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "best/recent")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists stored runs per mode.
type ScoreboardModel struct {
	modes     []registry.Info
	cursor    int
	order     RunOrder
	store     *storage.Store
	runs      []storage.RunRecord
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered mode.
// A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.layout()
	m.reload()
	return m
}

var scoreColumns = []table.Column{
	{Title: "Rank", Width: 5},
	{Title: "Score", Width: 7},
	{Title: "Time", Width: 7},
	{Title: "Sect", Width: 5},
	{Title: "Tier", Width: 5},
	{Title: "Cause", Width: 9},
	{Title: "Date", Width: 12},
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// layout rebuilds the table for the current window size.
func (m *ScoreboardModel) layout() {
	columns := append([]table.Column(nil), scoreColumns...)

	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	for _, c := range columns {
		avail -= c.Width + 2
	}
	if avail > 0 {
		columns[5].Width += min(avail/2, 6)
		columns[6].Width += min(avail-avail/2, 6)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
		table.WithStyles(styles),
	)
	m.help.Width = m.width
	m.fillRows()
}

// reload fetches runs and stats for the selected mode.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.cursor].ID
		var (
			runs []storage.RunRecord
			err  error
		)
		if m.order == OrderRecent {
			runs, err = m.store.RecentRuns(id, maxRuns)
		} else {
			runs, err = m.store.TopRuns(id, maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			formatDuration(r.TimeAlive),
			strconv.Itoa(r.SectionsCleared),
			strconv.Itoa(r.MaxTier),
			r.Cause,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the mode cursor by delta with wrap-around.
func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.modes); n > 0 {
		m.cursor = ((m.cursor+delta)%n + n) % n
		m.reload()
	}
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.order.String()
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.cursor].Title
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")
	if m.wide() {
		b.WriteString(m.viewWide())
	} else {
		b.WriteString(m.viewNarrow())
	}
	b.WriteString("\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// shortTitle drops the shared game name from practice mode titles.
func shortTitle(title string) string {
	if short, ok := strings.CutPrefix(title, "Mine Run: "); ok {
		return short
	}
	return title
}

// truncate cuts s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 1 {
		return s
	}
	return string(r[:n-1]) + "."
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return ""
	}
	return boardStatsStyle.Render(fmt.Sprintf(
		"Runs %d  |  Best %d  |  Avg %.1f  |  Longest %s  |  Sections %d",
		m.stats.RunsCount, m.stats.HighScore, m.stats.AvgScore,
		formatDuration(m.stats.LongestRun), m.stats.TotalSections,
	))
}

// viewWide puts the mode list in a sidebar beside the table.
func (m ScoreboardModel) viewWide() string {
	var side strings.Builder
	side.WriteString("Modes\n")
	side.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, g := range m.modes {
		line := "  " + truncate(shortTitle(g.Title), sidebarWidth-6)
		if i == m.cursor {
			line = boardActive.Render("> " + truncate(shortTitle(g.Title), sidebarWidth-6))
		}
		side.WriteString("\n")
		side.WriteString(line)
	}

	sidebar := boardPanelStyle.Width(sidebarWidth).Render(side.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", boardPanelStyle.Render(m.viewTable()))
}

// viewNarrow shows the modes as tabs above the table.
func (m ScoreboardModel) viewNarrow() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		name := truncate(shortTitle(g.Title), tabNameWidth)
		if i == m.cursor {
			tabs[i] = boardTabActive.Render(name)
		} else {
			tabs[i] = boardTabStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if len(m.modes) > 0 && lipgloss.Width(line) > m.width-4 {
		line = "< " + shortTitle(m.modes[m.cursor].Title) + " >"
	}

	return centerText(line, m.width) + "\n\n" + centerText(boardPanelStyle.Render(m.viewTable()), m.width)
}

func (m ScoreboardModel) viewTable() string {
	if len(m.runs) == 0 {
		return boardEmptyStyle.Render("No runs recorded yet.\nDig in and set a high score!")
	}
	return m.table.View()
}

// Runs returns the runs currently listed.
func (m ScoreboardModel) Runs() []storage.RunRecord {
	return m.runs
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the user leaves it.
// goBack is false when the user quit instead.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
