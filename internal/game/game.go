// Package game is the window adapter: it paints carousel frames with ebiten
// and forwards pointer, touch and keyboard input to the carousel.
package game

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sliding-scale/internal/carousel"
	"github.com/iburimskiy/sliding-scale/internal/config"
	"github.com/iburimskiy/sliding-scale/internal/deck"
	"github.com/iburimskiy/sliding-scale/internal/layout"
	"github.com/iburimskiy/sliding-scale/internal/tween"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game implements ebiten.Game over one carousel at a time. Loading another
// deck replaces the carousel; its scheduler is stopped first.
type Game struct {
	cfg config.Config
	log *slog.Logger
	now func() time.Time

	deck *deck.Deck
	car  *carousel.Carousel
	anim *tween.Animator
	geom layout.Geometry

	art   *art
	sound *sound

	toggle layout.Button
	open   layout.Button
	dots   []layout.Rect

	lastFocus    int
	lastAutoplay bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// NewGame mounts d focused on focus.
func NewGame(cfg config.Config, d *deck.Deck, focus int, log *slog.Logger) (*Game, error) {
	mode, ok := tween.ParseMode(cfg.Motion)
	if !ok {
		return nil, errors.New("unknown motion " + cfg.Motion)
	}

	a, err := newArt()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:  cfg,
		log:  log,
		now:  time.Now,
		anim: tween.NewAnimator(mode, cfg.Transition),
		geom: layout.Geometry{
			CenterX: config.WindowWidth / 2,
			CenterY: config.WindowHeight / 2,
			Tile:    config.TileSize,
			Unit:    config.UnitDistance,
		},
		art: a,
		toggle: layout.Button{Rect: layout.Rect{
			X: config.ButtonX, Y: config.ButtonY, W: config.ButtonWidth, H: config.ButtonHeight,
		}},
		open: layout.Button{Rect: layout.Rect{
			X: config.OpenButtonX, Y: config.ButtonY, W: config.OpenButtonWidth, H: config.ButtonHeight,
		}},
		prevKey: map[ebiten.Key]bool{},
	}
	if err := g.mount(d, focus); err != nil {
		return nil, err
	}
	g.sound = newSound(cfg.CuePath, cfg.Mute, log)
	log.Info("window ready", "items", g.car.Len(), "interval", g.car.Interval(), "motion", g.anim.Mode().String())
	return g, nil
}

// mount replaces the current carousel with a new one over d.
func (g *Game) mount(d *deck.Deck, focus int) error {
	car, err := carousel.New(d.IDs(), carousel.Options{
		Focused:  focus,
		Interval: g.cfg.Interval,
	})
	if err != nil {
		return err
	}

	if g.car != nil {
		g.car.Stop()
	}
	g.art.renderTiles(d)
	g.deck = d
	g.car = car
	g.dots = layout.Indicators(len(d.Items), config.WindowWidth/2, config.DotsY, config.DotSize, config.DotGap)

	now := g.now()
	g.anim.Reset()
	g.anim.Sync(car.Frame().Items, now)
	g.lastFocus = car.Focused()
	g.lastAutoplay = car.AutoplayEnabled()
	car.Start(now)
	return nil
}

// Close stops the scheduler and releases the speaker.
func (g *Game) Close() {
	if g.car.Running() {
		g.car.Stop()
	}
	if g.sound != nil {
		g.sound.close()
	}
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.toggle.Hover(float64(mouseX), float64(mouseY))
	g.open.Hover(float64(mouseX), float64(mouseY))

	down, up := pointerEvents()
	for _, p := range down {
		if g.toggle.Press(p.x, p.y) || g.open.Press(p.x, p.y) {
			continue
		}
		g.pointerDown(p.x, p.y)
	}
	for _, p := range up {
		if g.toggle.Release(p.x, p.y) {
			g.car.OnAutoplayToggleRequested()
		}
		if g.open.Release(p.x, p.y) {
			g.lastErr = g.openDeckDialog()
		}
	}

	if justPressed(ebiten.KeySpace) {
		g.car.OnAutoplayToggleRequested()
	}
	if justPressed(ebiten.KeyArrowLeft) {
		g.check(g.car.Step(-1))
	}
	if justPressed(ebiten.KeyArrowRight) {
		g.check(g.car.Step(1))
	}
	for i, k := range digitKeys {
		if justPressed(k) && i < g.car.Len() {
			g.check(g.car.OnItemActivated(i))
		}
	}
	if justPressed(ebiten.KeyM) && g.sound != nil {
		g.log.Info("sound", "muted", g.sound.toggleMute())
	}
	if justPressed(ebiten.KeyO) {
		g.lastErr = g.openDeckDialog()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := g.now()
	g.car.Tick(now)
	g.sync(now)
	return nil
}

// pointerDown activates the indicator dot or the top-most tile under (x, y).
func (g *Game) pointerDown(x, y float64) {
	if i, ok := layout.HitRects(g.dots, x, y); ok {
		g.check(g.car.OnItemActivated(i))
		return
	}
	if i, ok := g.geom.HitTest(g.sampled(g.now()), x, y); ok {
		g.check(g.car.OnItemActivated(i))
	}
}

// check logs an out-of-range selection. Indices come from the deck, so one
// reaching here is a bug in this adapter.
func (g *Game) check(err error) {
	if err != nil {
		g.log.Error("rejected selection", "error", err)
	}
}

// sync pushes the current frame's targets into the animator and reacts to
// focus and autoplay changes.
func (g *Game) sync(now time.Time) {
	f := g.car.Frame()
	g.anim.Sync(f.Items, now)

	if f.Focused != g.lastFocus {
		g.log.Debug("focus", "index", f.Focused, "id", f.FocusedID(), "autoplay", f.AutoplayEnabled)
		g.lastFocus = f.Focused
		if g.sound != nil {
			g.sound.play()
		}
	}
	if f.AutoplayEnabled != g.lastAutoplay {
		g.log.Debug("autoplay", "enabled", f.AutoplayEnabled)
		g.lastAutoplay = f.AutoplayEnabled
	}
}

// sampled returns the animated placements at now in paint order. Once the
// animator has settled the frame's own descriptors are already the answer.
func (g *Game) sampled(now time.Time) []carousel.Placement {
	items := g.car.Frame().Items
	if !g.anim.Settled(now) {
		for i := range items {
			if d, ok := g.anim.Sample(items[i].ID, now); ok {
				items[i].Descriptor = d
			}
		}
	}
	return carousel.PaintOrder(items)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
