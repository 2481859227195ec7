package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const historyLimit = 100

// historyKeys are the scoreboard bindings; they also feed the help bar.
type historyKeys struct {
	Scroll  key.Binding
	Variant key.Binding
	Order   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k historyKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Variant, k.Order, k.Back, k.Quit}
}

func (k historyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHistoryKeys() historyKeys {
	return historyKeys{
		Scroll:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Variant: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab", "variant")),
		Order:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "best/recent")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Scoreboard styles
var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208"))
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle    = mutedStyle.Italic(true).Padding(1, 3)
)

// ScoreboardModel shows the stored rounds of each variant.
type ScoreboardModel struct {
	store   *storage.Store
	games   []registry.GameInfo
	current int
	recent  bool // Order by date instead of score

	rounds  []storage.Round
	stats   *storage.GameStats
	loadErr error

	table table.Model
	help  help.Model
	keys  historyKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard sized for a width x height terminal.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		keys:   newHistoryKeys(),
		width:  width,
		height: height,
	}
	m.table = newHistoryTable(height)
	m.reload()
	return m
}

func newHistoryTable(termHeight int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Result", Width: 7},
			{Title: "Blocks", Width: 7},
			{Title: "Balls", Width: 6},
			{Title: "Time", Width: 7},
			{Title: "Played", Width: 13},
		}),
		table.WithFocused(true),
		// Tabs, summary, help and borders take about nine rows.
		table.WithHeight(max(termHeight-9, 3)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).
		BorderForeground(lipgloss.Color("240"))
	styles.Selected = styles.Selected.Bold(false).
		Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208"))
	t.SetStyles(styles)
	return t
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// reload fetches rounds and aggregates for the selected variant.
func (m *ScoreboardModel) reload() {
	m.rounds, m.stats, m.loadErr = nil, nil, nil

	if id := m.gameID(); m.store != nil && id != "" {
		fetch := m.store.TopRounds
		if m.recent {
			fetch = m.store.RecentRounds
		}
		m.rounds, m.loadErr = fetch(id, historyLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(id)
		}
	}

	rows := make([]table.Row, 0, len(m.rounds))
	for i, r := range m.rounds {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			r.Outcome,
			fmt.Sprint(r.BlocksDestroyed),
			fmt.Sprint(r.BallsSpawned),
			formatDuration(r.Duration),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders a round duration as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Leaving the scoreboard quits its program;
// callers check IsGoingBack to tell back from quit.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newHistoryTable(msg.Height)
		m.reload()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Order):
			m.recent = !m.recent
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Variant):
			if n := len(m.games); n > 0 {
				step := 1
				switch msg.String() {
				case "shift+tab", "left", "h":
					step = n - 1
				}
				m.current = (m.current + step) % n
				m.reload()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	order := "best rounds"
	if m.recent {
		order = "recent rounds"
	}

	sections := []string{
		m.tabs(),
		mutedStyle.Render(order + m.summary()),
		boxStyle.Render(m.body()),
		mutedStyle.Render(m.help.View(m.keys)),
	}
	page := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, page)
}

func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return tabStyle.Render("no variants")
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			parts[i] = activeTabStyle.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// summary renders the aggregate line for the selected variant.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return ""
	}
	return fmt.Sprintf("  ·  won %d of %d  ·  best %d  ·  avg %.0f",
		m.stats.Wins, m.stats.Rounds, m.stats.HighScore, m.stats.AvgScore)
}

func (m ScoreboardModel) body() string {
	switch {
	case m.store == nil:
		return noticeStyle.Render("Round history is unavailable.")
	case m.loadErr != nil:
		return noticeStyle.Render("Cannot load rounds:\n" + m.loadErr.Error())
	case len(m.rounds) == 0:
		return noticeStyle.Render(strings.Join([]string{
			"No rounds recorded yet.",
			"Clear the grid to set a score!",
		}, "\n"))
	}
	return m.table.View()
}

// IsGoingBack reports whether the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program and reports
// whether the user went back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
