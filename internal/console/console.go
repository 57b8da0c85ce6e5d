// Package console is a terminal adapter for the carousel, built as an inline
// bubbletea program: it shows the three visible slots and maps single keys to
// carousel events.
//
// bubbletea calls Init, Update and View from one goroutine, which is the only
// one that touches the carousel.
package console

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/sliding-scale/internal/carousel"
	"github.com/iburimskiy/sliding-scale/internal/deck"
)

// DefaultTick is how often the scheduler is polled.
const DefaultTick = 20 * time.Millisecond

const help = "1-9 select, left/right or n/p step, a or space toggle autoplay, q quit"

// tickMsg carries the wall time of one scheduler poll.
type tickMsg time.Time

// Console is a bubbletea model over one carousel.
type Console struct {
	car   *carousel.Carousel
	items []deck.Item
	out   io.Writer
	log   *slog.Logger
	tick  time.Duration

	focus lipgloss.Style
	side  lipgloss.Style
	faint lipgloss.Style

	notice string
}

// New returns a console over car that renders to out. d supplies labels and
// accent colours; styles follow out's colour support.
func New(car *carousel.Carousel, d *deck.Deck, out io.Writer, log *slog.Logger) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		car:   car,
		items: d.Items,
		out:   out,
		log:   log,
		tick:  DefaultTick,
		focus: r.NewStyle().Bold(true),
		side:  r.NewStyle(),
		faint: r.NewStyle().Faint(true),
	}
}

// Run drives the carousel until ctx is done or the quit key arrives. tick is
// the scheduler poll period; zero selects DefaultTick. A cancelled ctx is
// reported as ctx.Err().
func (c *Console) Run(ctx context.Context, in io.Reader, tick time.Duration) error {
	if tick > 0 {
		c.tick = tick
	}
	defer c.car.Stop()

	p := tea.NewProgram(c,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(c.out),
		tea.WithoutSignalHandler(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Init starts the scheduler and the poll loop.
func (c *Console) Init() tea.Cmd {
	c.car.Start(time.Now())
	c.log.Info("console ready", "items", c.car.Len(), "interval", c.car.Interval())
	return c.poll()
}

func (c *Console) poll() tea.Cmd {
	return tea.Tick(c.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update applies one key or scheduler poll.
func (c *Console) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if c.car.Tick(time.Time(msg)) {
			c.log.Debug("autoplay advance", "focused", c.car.Focused())
		}
		return c, c.poll()
	case tea.KeyMsg:
		return c, c.key(msg.String())
	}
	return c, nil
}

func (c *Console) key(k string) tea.Cmd {
	c.notice = ""
	switch k {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case "a", " ", "space":
		c.car.OnAutoplayToggleRequested()
	case "n", "right":
		c.check(c.car.Step(1))
	case "p", "left":
		c.check(c.car.Step(-1))
	default:
		if len(k) != 1 || k[0] < '1' || k[0] > '9' {
			return nil
		}
		n := int(k[0] - '0')
		if n > c.car.Len() {
			c.notice = fmt.Sprintf("no item %d, pick 1-%d", n, c.car.Len())
			return nil
		}
		c.check(c.car.OnItemActivated(n - 1))
	}
	return nil
}

func (c *Console) check(err error) {
	if err != nil {
		c.log.Error("rejected selection", "error", err)
	}
}

// View renders the slots, the help line and the last notice.
func (c *Console) View() string {
	f := c.car.Frame()
	line := render(f, c.items, func(p carousel.Placement, s string) string {
		if p.Offset == 0 {
			return c.focus.Foreground(lipgloss.Color(hex(c.items[p.Index].Accent))).Render(s)
		}
		return c.side.Render(s)
	})

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(c.faint.Render(help))
	if c.notice != "" {
		b.WriteString("\n")
		b.WriteString(c.notice)
	}
	b.WriteString("\n")
	return b.String()
}

// Line renders a frame as "[left] (centre) [right]   autoplay on".
func Line(f carousel.Frame, items []deck.Item) string {
	return render(f, items, func(_ carousel.Placement, s string) string { return s })
}

func render(f carousel.Frame, items []deck.Item, style func(carousel.Placement, string) string) string {
	var left, centre, right string
	for _, p := range f.Visible() {
		label := items[p.Index].Label
		switch {
		case p.Offset == 0:
			centre = style(p, "("+label+")")
		case p.Descriptor.Lateral < 0:
			left = style(p, "["+label+"]")
		default:
			right = style(p, "["+label+"]")
		}
	}
	state := "off"
	if f.AutoplayEnabled {
		state = "on"
	}
	return fmt.Sprintf("%s %s %s   autoplay %s", left, centre, right, state)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
