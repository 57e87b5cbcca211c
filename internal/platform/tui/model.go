package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Shooter config.ShooterConfig
	Runtime core.RuntimeConfig
	// Mode is the score-table mode finished runs are saved under.
	Mode   string
	Store  *storage.Store
	Logger *log.Logger
	// Player names the session in logs.
	Player string
}

// GameModel is the Bubble Tea model hosting one shooter game.
// Row 0 shows the HUD, the last row the buttons, the rows between are the canvas.
type GameModel struct {
	game      *shooter.Game
	screen    *core.Screen
	surface   *core.CellSurface
	hud       *hudNodes
	cue       *cueFlash
	hold      *HoldTracker
	keyMapper *KeyMapper

	recorder *storage.Recorder
	logger   *log.Logger
	config   core.RuntimeConfig
	mode     string
	player   string

	loop       uint64
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	overLogged bool
}

// NewGameModel builds the game and its terminal hooks.
func NewGameModel(opts GameOptions) (GameModel, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	screen := core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH, 3))
	surface := core.NewCellSurface(screen, opts.Shooter.Canvas.Width, opts.Shooter.Canvas.Height)
	hud := newHUDNodes()
	cue := newCueFlash()
	hudHooks, pauseLabel := hud.hooks()

	game, err := shooter.New(opts.Shooter, cfg, shooter.Hooks{
		Surface:    surface,
		Audio:      cue,
		HUD:        hudHooks,
		PauseLabel: pauseLabel,
	})
	if err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		game:      game,
		screen:    screen,
		surface:   surface,
		hud:       hud,
		cue:       cue,
		hold:      NewHoldTracker(time.Duration(opts.Shooter.Input.HoldMS) * time.Millisecond),
		keyMapper: NewKeyMapper(),
		logger:    logger,
		config:    cfg,
		mode:      opts.Mode,
		player:    opts.Player,
		loop:      nextLoopID(),
		recorder:  storage.NewRecorder(opts.Store, opts.Mode),
	}
	m.layout()
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(max(msg.Width, 1), max(msg.Height, 3))
		m.layout()
		return m, nil

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// layout fits the canvas between the HUD row and the button row.
func (m GameModel) layout() {
	m.surface.SetViewport(0, 1, m.screen.Width(), m.screen.Height()-2)
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k, ok := m.keyMapper.MapGameKey(msg); ok {
		m.hold.Press(m.game.Keys(), k, time.Now())
		return m, nil
	}

	switch m.keyMapper.MapAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionConfirm:
		m.hold.Reset(m.game.Keys())
		m.game.Start()
		m.gameState = m.game.State()
		m.overLogged = false
		m.recorder.Reset()
		m.logger.Debug("run started", "player", m.player, "mode", m.mode)

	case core.ActionPause:
		if m.gameState.Started && !m.gameState.GameOver {
			paused := m.game.TogglePause()
			m.gameState = m.game.State()
			m.logger.Debug("pause toggled", "paused", paused)
		}

	case core.ActionBack:
		if m.game.RunState() != shooter.RunRunning {
			m.backToMenu = true
			return m, tea.Quit
		}

	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleTick runs one frame and schedules the next.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Expire(m.game.Keys(), time.Now())

	result := m.game.Frame()
	m.gameState = result.State
	if result.Rendered {
		m.cue.tick()
	}

	if m.gameState.GameOver {
		if !m.overLogged {
			m.overLogged = true
			m.logger.Info("game over", "player", m.player, "mode", m.mode,
				"score", m.gameState.Score, "level", m.gameState.Level)
		}
		m.saveScore()
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveScore keeps the stored row of a finished run in step with its score.
func (m GameModel) saveScore() {
	if err := m.recorder.Record(m.gameState.Score, m.gameState.Level); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current screen as text. Failures are only logged.
func (m GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return
	}

	filename := fmt.Sprintf("shooter_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.compose().String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write file", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// compose draws the HUD, the button bar and any overlay onto the screen.
func (m GameModel) compose() *core.Screen {
	s := m.screen
	w, h := s.Width(), s.Height()

	s.FillArea(0, 0, w, 1, ' ', core.ColorDefault)
	hud := strings.Join([]string{m.hud.score.text, m.hud.level.text, m.hud.powerUp.text}, "   ")
	s.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	s.FillArea(0, h-1, w, 1, ' ', core.ColorDefault)
	bar := fmt.Sprintf("[Enter] Start  [P] %s  [B] Menu  [Q] Quit", m.hud.pause.text)
	s.DrawTextColored(1, h-1, bar, core.ColorGray)
	if m.cue.label != "" {
		s.DrawTextColored(w-len(m.cue.label)-1, h-1, m.cue.label, core.ColorBrightYellow)
	}

	switch m.game.RunState() {
	case shooter.RunNotStarted:
		m.drawBanner("S P A C E   S H O O T E R", "Press ENTER to start")
	case shooter.RunPaused:
		m.drawBanner("PAUSED", "P to resume, B for menu")
	case shooter.RunGameOver:
		s.DrawTextCentered(h-2, "ENTER: play again   B: menu")
	}
	return s
}

// drawBanner draws a centered box over the canvas.
func (m GameModel) drawBanner(title, hint string) {
	s := m.screen
	boxW := max(len(title), len(hint)) + 6
	boxH := 5
	x := (s.Width() - boxW) / 2
	y := max((s.Height()-boxH)/2, 1)

	s.FillArea(x, y, boxW, boxH, ' ', core.ColorDefault)
	s.DrawBox(x, y, boxW, boxH)
	s.DrawTextColored(x+(boxW-len(title))/2, y+1, title, core.ColorBrightCyan)
	s.DrawTextColored(x+(boxW-len(hint))/2, y+3, hint, core.ColorWhite)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.compose())
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last reported run state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program with a single game.
// Returns true if the player asked to go back to the menu.
func Run(opts GameOptions) (goBack bool, err error) {
	model, err := NewGameModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
