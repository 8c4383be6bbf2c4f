//go:build ebiten

package window

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/game"
	"github.com/vovakirdan/crossing/internal/registry"
	"github.com/vovakirdan/crossing/internal/render"
	"github.com/vovakirdan/crossing/internal/rules"
)

func init() {
	registry.Register(Name, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

// Name implements registry.Frontend.
func (Frontend) Name() string { return Name }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Desktop window (Ebitengine)" }

// Run loads the sprites, opens the window and blocks until it is closed.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	logger := opts.Logger
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cache := assets.NewCache(LoadSprite, 0)
	cache.OnReady(func() {
		logger.Debug("sprites ready", "count", cache.Len())
	})
	if err := cache.Load(ctx, render.Sprites()...); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	a := newApp(ctx, opts, seed, cache)

	cfg := opts.Config
	ebiten.SetWindowSize(cfg.Canvas.Width, cfg.Canvas.Height)
	ebiten.SetWindowTitle(game.Title)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	a.loop.Start(time.Now())
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// arrowKeys maps Ebitengine keys to the arrow key codes of the game.
var arrowKeys = []struct {
	key  ebiten.Key
	code int
}{
	{ebiten.KeyArrowLeft, rules.KeyLeft},
	{ebiten.KeyArrowUp, rules.KeyUp},
	{ebiten.KeyArrowRight, rules.KeyRight},
	{ebiten.KeyArrowDown, rules.KeyDown},
}

// app adapts a game.Game to the ebiten.Game interface.
type app struct {
	ctx     context.Context
	game    *game.Game
	loop    *game.Loop
	hud     *hud
	cache   *assets.Cache[*ebiten.Image]
	surface imageSurface
	logger  *log.Logger
	drawErr error
}

func newApp(ctx context.Context, opts registry.Options, seed int64, cache *assets.Cache[*ebiten.Image]) *app {
	h := &hud{}
	g := game.New(opts.Config, rules.NewRandom(seed),
		game.WithObserver(h),
		game.WithLogger(opts.Logger),
	)
	return &app{
		ctx:    ctx,
		game:   g,
		loop:   game.NewLoop(g),
		hud:    h,
		cache:  cache,
		logger: opts.Logger,
	}
}

// Update handles input and advances the simulation while the round is running.
// Moves fire on key release, like the keyup handler of a browser game.
func (a *app) Update() error {
	select {
	case <-a.ctx.Done():
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, k := range arrowKeys {
		if inpututil.IsKeyJustReleased(k.key) {
			a.game.HandleInput(rules.DirectionForKey(k.code))
		}
	}

	if a.hud.over && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || a.playAgainClicked()) {
		a.loop.PlayAgain(time.Now())
	}

	if a.loop.Running() {
		a.loop.Frame(time.Now())
	}
	return nil
}

func (a *app) playAgainClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return a.hud.button(a.game.Config().Canvas.Width, a.game.Config().Canvas.Height).
		Contains(x, y)
}

// Draw renders the scene, the score and the game-over dialog.
func (a *app) Draw(screen *ebiten.Image) {
	a.surface.target = screen

	if err := render.DrawScene[*ebiten.Image](&a.surface, a.cache, a.game.Entities()); err != nil {
		if a.drawErr == nil {
			a.logger.Error("drawing scene", "err", err)
		}
		a.drawErr = err
		return
	}
	a.hud.draw(screen, basicfont.Face7x13)
}

// Layout keeps the logical canvas size; Ebitengine scales it to the window.
func (a *app) Layout(_, _ int) (int, int) {
	cfg := a.game.Config()
	return cfg.Canvas.Width, cfg.Canvas.Height
}

var _ ebiten.Game = (*app)(nil)
