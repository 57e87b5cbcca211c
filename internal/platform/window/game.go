package window

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// barH is the height of the HUD strip above and the button strip below the canvas.
const barH = 20

// Options configures a window run.
type Options struct {
	Shooter config.ShooterConfig
	Runtime core.RuntimeConfig
	Mode    string
	Store   *storage.Store
	Logger  *log.Logger
}

// label is a text sink read back when drawing the bars.
type label struct{ text string }

func (l *label) SetText(text string) { l.text = text }

// letterCodes lets WASD drive the ship alongside the arrow keys.
var letterCodes = map[ebiten.Key]string{
	ebiten.KeyW: "ArrowUp",
	ebiten.KeyS: "ArrowDown",
	ebiten.KeyA: "ArrowLeft",
	ebiten.KeyD: "ArrowRight",
}

// keyCode returns the code name the game understands for an Ebitengine key.
func keyCode(k ebiten.Key) string {
	if code, ok := letterCodes[k]; ok {
		return code
	}
	return k.String()
}

// Window adapts a shooter.Game to ebiten.Game.
type Window struct {
	ctx     context.Context
	game    *shooter.Game
	surface *ImageSurface
	opts    Options
	logger  *log.Logger

	score, level, powerUp, pause label

	keys       []ebiten.Key
	recorder   *storage.Recorder
	overLogged bool
}

// New builds the window front end. The audio context is created by the caller
// because Ebitengine allows one per process.
func New(ctx context.Context, opts Options, audioCtx *audio.Context) (*Window, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	w := &Window{
		ctx:      ctx,
		opts:     opts,
		logger:   opts.Logger,
		recorder: storage.NewRecorder(opts.Store, opts.Mode),
		surface:  NewImageSurface(opts.Shooter.Canvas.Width, opts.Shooter.Canvas.Height, opts.Shooter.Assets.Dir, opts.Logger),
	}
	w.score.SetText("Score: 0")
	w.level.SetText("Level: 1")
	w.powerUp.SetText("Power-up: " + shooter.LabelNone)
	w.pause.SetText("Pause")

	game, err := shooter.New(opts.Shooter, opts.Runtime, shooter.Hooks{
		Surface:    w.surface,
		Audio:      NewSpeaker(audioCtx, opts.Shooter.Assets.Dir, opts.Logger),
		HUD:        shooter.HUD{Score: &w.score, Level: &w.level, PowerUp: &w.powerUp},
		PauseLabel: &w.pause,
	})
	if err != nil {
		return nil, err
	}
	w.game = game
	return w, nil
}

// Update forwards key events and runs one frame.
func (w *Window) Update() error {
	if w.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	keys := w.game.Keys()
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		keys.PressCode(keyCode(k))
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		keys.ReleaseCode(keyCode(k))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		w.game.Start()
		w.overLogged = false
		w.recorder.Reset()
		w.logger.Debug("run started", "mode", w.opts.Mode)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if w.game.RunState() == shooter.RunRunning || w.game.RunState() == shooter.RunPaused {
			w.game.TogglePause()
		}
	}

	result := w.game.Frame()
	if result.State.GameOver {
		w.saveScore(result.State)
	}
	return nil
}

func (w *Window) saveScore(st core.GameState) {
	if !w.overLogged {
		w.overLogged = true
		w.logger.Info("game over", "mode", w.opts.Mode, "score", st.Score, "level", st.Level)
	}
	if err := w.recorder.Record(st.Score, st.Level); err != nil {
		w.logger.Warn("could not save score", "error", err)
	}
}

// Draw copies the canvas between the HUD and button strips.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(core.ColorBlack))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, barH)
	screen.DrawImage(w.surface.Canvas(), op)

	ebitenutil.DebugPrintAt(screen, w.score.text+"   "+w.level.text+"   "+w.powerUp.text, 4, 2)

	bar := fmt.Sprintf("[Enter] Start   [P] %s   [Esc] Quit", w.pause.text)
	if w.game.RunState() == shooter.RunNotStarted {
		bar = "Press ENTER to start   " + bar
	}
	ebitenutil.DebugPrintAt(screen, bar, 4, barH+int(w.opts.Shooter.Canvas.Height)+2)
}

// Layout fixes the logical screen to the canvas plus both strips.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.opts.Shooter.Canvas.Width), int(w.opts.Shooter.Canvas.Height) + 2*barH
}

// Run opens the window and blocks until it is closed, Esc is pressed or ctx is done.
func Run(ctx context.Context, opts Options) error {
	audioCtx := audio.NewContext(sampleRate)
	w, err := New(ctx, opts, audioCtx)
	if err != nil {
		return err
	}

	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = ebiten.SyncWithFPS
	}
	ebiten.SetTPS(tps)
	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Space Shooter")

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
