package game

import (
	"bytes"
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/sliding-scale/internal/carousel"
	"github.com/iburimskiy/sliding-scale/internal/config"
	"github.com/iburimskiy/sliding-scale/internal/deck"
	"github.com/iburimskiy/sliding-scale/internal/layout"
)

var (
	gradientTop    = color.RGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}
	gradientBottom = color.RGBA{R: 0x76, G: 0x4b, B: 0xa2, A: 0xff}

	stopColor  = color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
	startColor = color.RGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff}
	openColor  = color.RGBA{R: 0x45, G: 0xb7, B: 0xd1, A: 0xff}

	dotOn  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dotOff = color.RGBA{R: 0x4c, G: 0x4c, B: 0x4c, A: 0x4c} // white at 30%, premultiplied
)

const instructions = "Click a tile or a dot to switch - three tiles side by side, the centre one grows over its neighbours"

// art holds everything drawn once: fonts, the background and one tile image
// per item.
type art struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource

	background *ebiten.Image
	shadow     *ebiten.Image
	tiles      map[string]*ebiten.Image
}

func newArt() (*art, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}

	a := &art{regular: regular, bold: bold, tiles: map[string]*ebiten.Image{}}

	a.background = ebiten.NewImage(config.WindowWidth, config.WindowHeight)
	for y := 0; y < config.WindowHeight; y++ {
		c := lerpColor(gradientTop, gradientBottom, float64(y)/config.WindowHeight)
		vector.StrokeLine(a.background, 0, float32(y), config.WindowWidth, float32(y), 1, c, false)
	}

	a.shadow = ebiten.NewImage(config.TileSize, config.TileSize)
	fillRounded(a.shadow, 0, 0, config.TileSize, config.TileSize, config.TileRadius, color.Black)
	return a, nil
}

// renderTiles draws one tile per deck item, replacing the previous set.
func (a *art) renderTiles(d *deck.Deck) {
	for _, img := range a.tiles {
		img.Deallocate()
	}
	a.tiles = make(map[string]*ebiten.Image, len(d.Items))

	const s = config.TileSize
	label := &text.GoTextFace{Source: a.bold, Size: config.LabelSize}
	number := &text.GoTextFace{Source: a.bold, Size: config.NumberSize}

	for i, it := range d.Items {
		img := ebiten.NewImage(s, s)
		fillRounded(img, 0, 0, s, s, config.TileRadius, it.Accent)

		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(s/2, s/2-config.LabelSize-8)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(img, it.Label, label, op)

		op = &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(s/2, s/2)
		op.ColorScale.ScaleWithColor(color.White)
		op.ColorScale.ScaleAlpha(0.8)
		text.Draw(img, strconv.Itoa(i+1), number, op)

		a.tiles[it.ID] = img
	}
}

// fillRounded fills a rounded rectangle from two rects and four corner discs.
func fillRounded(dst *ebiten.Image, x, y, w, h, r float32, c color.Color) {
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, c, true)
	vector.DrawFilledRect(dst, x, y+r, w, h-2*r, c, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, c, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, c, true)
	vector.DrawFilledCircle(dst, x+r, y+h-r, r, c, true)
	vector.DrawFilledCircle(dst, x+w-r, y+h-r, r, c, true)
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.now()

	screen.DrawImage(g.art.background, nil)
	g.drawHeader(screen)
	g.drawTiles(screen, now)
	g.drawDots(screen)
	g.drawFooter(screen, now)
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	title := &text.GoTextFace{Source: g.art.bold, Size: config.TitleSize}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignEnd
	op.GeoM.Translate(config.ButtonX-20, config.ButtonY+4)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, g.deck.Title, title, op)

	label, bg := "Start autoplay", startColor
	if g.car.AutoplayEnabled() {
		label, bg = "Stop autoplay", stopColor
	}
	g.drawButton(screen, &g.toggle, label, bg)
	g.drawButton(screen, &g.open, "Open deck", openColor)
}

func (g *Game) drawButton(screen *ebiten.Image, b *layout.Button, label string, bg color.RGBA) {
	switch {
	case b.Pressed:
		bg = brighten(bg, 0.8)
	case b.Hovered:
		bg = brighten(bg, 1.1)
	}
	r := b.Rect
	fillRounded(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(r.H/2), bg)

	face := &text.GoTextFace{Source: g.art.bold, Size: 15}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(r.X+r.W/2, r.Y+r.H/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label, face, op)
}

// drawTiles paints the sampled tiles back to front.
func (g *Game) drawTiles(screen *ebiten.Image, now time.Time) {
	focused := g.car.Frame().FocusedID()
	p := carousel.DefaultPolicy

	for _, it := range g.sampled(now) {
		d := it.Descriptor
		if !d.Visible || d.Opacity <= 0 {
			continue
		}
		img := g.art.tiles[it.ID]
		if img == nil {
			continue
		}
		r := g.geom.Place(d)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(d.Scale, d.Scale)
		op.GeoM.Translate(r.X+10*d.Scale, r.Y+20*d.Scale)
		op.ColorScale.ScaleAlpha(float32(0.3 * d.Opacity))
		screen.DrawImage(g.art.shadow, op)

		op = &ebiten.DrawImageOptions{}
		op.GeoM.Scale(d.Scale, d.Scale)
		op.GeoM.Translate(r.X, r.Y)
		op.Filter = ebiten.FilterLinear
		if it.ID == focused {
			// brightness ramps in as the tile grows into the centre
			t := clamp01((d.Scale - p.NeighborScale) / (p.FocusedScale - p.NeighborScale))
			f := float32(1 + (config.FocusBrightness-1)*t)
			op.ColorScale.Scale(f, f, f, 1)
		}
		op.ColorScale.ScaleAlpha(float32(d.Opacity))
		screen.DrawImage(img, op)
	}
}

func (g *Game) drawDots(screen *ebiten.Image) {
	focused := g.car.Focused()
	for i, r := range g.dots {
		c := dotOff
		if i == focused {
			c = dotOn
		}
		cx, cy := r.Center()
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r.W/2), c, true)
	}
}

func (g *Game) drawFooter(screen *ebiten.Image, now time.Time) {
	face := &text.GoTextFace{Source: g.art.regular, Size: 14}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(config.WindowWidth/2, config.WindowHeight-40)
	op.ColorScale.ScaleWithColor(color.White)
	op.ColorScale.ScaleAlpha(0.8)
	text.Draw(screen, instructions, face, op)

	status := "Autoplay off"
	if d, ok := g.car.Remaining(now); ok {
		status = "Autoplay on, next in " + formatCountdown(d)
	}
	status += " | Left/Right or 1-9 select, Space autoplay, O open deck, M mute, Esc/Q quit"
	if g.sound != nil && g.sound.muted() {
		status += " | muted"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}
