package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// MenuChoice identifies a start-menu entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceDifficulty
	ChoiceScores
	ChoiceQuit
)

var menuChoices = []MenuChoice{ChoicePlay, ChoiceDifficulty, ChoiceScores, ChoiceQuit}

// menuPresets are the selectable difficulties; "" plays the configured values as is.
var menuPresets = append([]config.DifficultyPreset{""}, config.Presets...)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor    int
	preset    int // index into menuPresets
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  MenuChoice
}

// NewMenuModel creates a new menu model with the given difficulty preselected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range menuPresets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapMenuAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.selected = ChoiceQuit
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		choice := menuChoices[m.cursor]
		if choice == ChoiceDifficulty {
			m.preset = (m.preset + 1) % len(menuPresets)
			return m, nil
		}
		m.selected = choice
		if choice == ChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit // Exit menu to run the choice
	}

	return m, nil
}

func (m MenuModel) label(c MenuChoice) string {
	switch c {
	case ChoicePlay:
		return "Start game"
	case ChoiceDifficulty:
		return "Difficulty: " + m.Mode()
	case ChoiceScores:
		return "High scores"
	case ChoiceQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  S P A C E   S H O O T E R  ", m.width)))
	b.WriteString("\n\n")

	best := "no runs yet"
	if m.store != nil {
		if hs, err := m.store.HighScore(m.Mode()); err == nil && hs > 0 {
			best = fmt.Sprintf("best: %d", hs)
		}
	}
	b.WriteString(dimStyle.Render(centerText(best, m.width)))
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		line := "  " + m.label(c)
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + m.label(c)
			style = activeStyle
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Preset returns the difficulty currently shown in the menu.
func (m MenuModel) Preset() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// Mode returns the score-table mode of the selected difficulty.
func (m MenuModel) Mode() string {
	return config.ModeName(m.Preset())
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
