package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

const (
	maxScores = 100 // rows loaded per mode
	// title, mode strip, stats line, table border and help
	scoreboardChrome = 10
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	modeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	modeActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	statsStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// scoreboardKeys are the scoreboard bindings. Left/right and tab both switch mode.
type scoreboardKeys struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	Back, Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "harder")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "easier")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of one difficulty mode at a time.
type ScoreboardModel struct {
	store  *storage.Store
	modes  []string
	mode   int
	scores []storage.ScoreEntry
	stats  *storage.ModeStats

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on the given mode, or on the first one
// when the mode is unknown.
func NewScoreboardModel(store *storage.Store, width, height int, mode string) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  scoreModes(store),
		keys:   newScoreboardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if i := slices.Index(m.modes, mode); i >= 0 {
		m.mode = i
	}
	m.table = m.newTable()
	m.load()
	return m
}

// scoreModes lists the difficulty modes followed by any other mode found in the store.
func scoreModes(store *storage.Store) []string {
	modes := []string{config.ModeName("")}
	for _, p := range config.Presets {
		modes = append(modes, config.ModeName(p))
	}
	if store == nil {
		return modes
	}
	stored, err := store.Modes()
	if err != nil {
		return modes
	}
	for _, name := range stored {
		if !slices.Contains(modes, name) {
			modes = append(modes, name)
		}
	}
	return modes
}

func (m *ScoreboardModel) newTable() table.Model {
	dateW := min(max(m.width-38, 12), 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Level", Width: 6},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the scores and stats of the current mode. Store errors show as an empty board.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		mode := m.Mode()
		if scores, err := m.store.TopScores(mode, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(mode); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves the mode cursor by d, wrapping around.
func (m *ScoreboardModel) step(d int) {
	n := len(m.modes)
	m.mode = ((m.mode+d)%n + n) % n
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
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
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
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

	body := emptyStyle.Render("No runs in this mode yet.")
	if len(m.scores) > 0 {
		body = m.table.View()
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		center(boardTitleStyle.Render("HIGH SCORES")),
		"",
		center(m.modeStrip()),
		center(statsStyle.Render(m.statsLine())),
		"",
		center(boardStyle.Render(body)),
		hintStyle.Render(m.help.View(m.keys)),
	)
}

// modeStrip renders every mode with the current one highlighted. On narrow
// terminals only the current mode is shown between arrows.
func (m ScoreboardModel) modeStrip() string {
	parts := make([]string, len(m.modes))
	for i, name := range m.modes {
		if i == m.mode {
			parts[i] = modeActiveStyle.Render(name)
		} else {
			parts[i] = modeStyle.Render(name)
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(strip) > m.width-2 {
		return "< " + modeActiveStyle.Render(m.Mode()) + " >"
	}
	return strip
}

func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.Runs == 0 {
		return "no runs"
	}
	line := fmt.Sprintf("runs %d   best %d   avg %.0f   top level %d",
		st.Runs, st.HighScore, st.AvgScore, st.BestLevel)
	if !st.LastPlayed.IsZero() {
		line += "   last " + st.LastPlayed.Format("Jan 02 15:04")
	}
	return line
}

// Mode returns the mode currently shown.
func (m ScoreboardModel) Mode() string {
	return m.modes[m.mode]
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on its own. goBack is false when the user quit.
func RunScoreboard(store *storage.Store, width, height int, mode string) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height, mode), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
