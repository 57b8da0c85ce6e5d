package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iburimskiy/sliding-scale/internal/carousel"
	"github.com/iburimskiy/sliding-scale/internal/deck"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newConsole(t *testing.T, opts carousel.Options) (*Console, *carousel.Carousel, *bytes.Buffer) {
	t.Helper()
	d := deck.Default()
	car, err := carousel.New(d.IDs(), opts)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(car, d, &out, log), car, &out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestLine(t *testing.T) {
	d := deck.Default()
	car, _ := carousel.New(d.IDs(), carousel.Options{Focused: 2})
	if got, want := Line(car.Frame(), d.Items), "[2] (3) [4]   autoplay on"; got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}

	car.OnItemActivated(0)
	if got, want := Line(car.Frame(), d.Items), "[5] (1) [2]   autoplay off"; got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}
}

func TestKeys(t *testing.T) {
	c, car, _ := newConsole(t, carousel.Options{Focused: 2})

	tests := []struct {
		key      tea.KeyMsg
		focused  int
		autoplay bool
	}{
		{runes("a"), 2, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, 2, true},
		{runes("5"), 4, false},
		{runes("n"), 0, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, 4, false},
		{tea.KeyMsg{Type: tea.KeyRight}, 0, false},
		{runes("p"), 4, false},
		{runes("3"), 2, false},
		// ignored
		{runes("x"), 2, false},
	}
	for _, tt := range tests {
		_, cmd := c.Update(tt.key)
		if isQuit(cmd) {
			t.Fatalf("%q quit", tt.key.String())
		}
		if car.Focused() != tt.focused || car.AutoplayEnabled() != tt.autoplay {
			t.Errorf("after %q: focused=%d autoplay=%v", tt.key.String(), car.Focused(), car.AutoplayEnabled())
		}
	}
	if !strings.Contains(c.View(), "(3)") {
		t.Errorf("view missing focused item:\n%s", c.View())
	}
}

func TestDigitOutOfRange(t *testing.T) {
	c, car, _ := newConsole(t, carousel.Options{Focused: 2})

	c.Update(runes("7"))
	if car.Focused() != 2 || !car.AutoplayEnabled() {
		t.Errorf("focused=%d autoplay=%v", car.Focused(), car.AutoplayEnabled())
	}
	if !strings.Contains(c.View(), "no item 7, pick 1-5") {
		t.Errorf("view:\n%s", c.View())
	}

	c.Update(runes("1"))
	if strings.Contains(c.View(), "no item") {
		t.Errorf("notice kept after a valid key:\n%s", c.View())
	}
}

func TestQuitKeys(t *testing.T) {
	c, _, _ := newConsole(t, carousel.Options{})
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		if _, cmd := c.Update(k); !isQuit(cmd) {
			t.Errorf("%q did not quit", k.String())
		}
	}
}

func TestTickAdvances(t *testing.T) {
	c, car, _ := newConsole(t, carousel.Options{Focused: 2})
	car.Start(t0)

	if _, cmd := c.Update(tickMsg(t0.Add(time.Second))); cmd == nil {
		t.Error("poll not rescheduled")
	}
	if car.Focused() != 2 {
		t.Errorf("advanced early to %d", car.Focused())
	}

	c.Update(tickMsg(t0.Add(carousel.AutoplayInterval)))
	if car.Focused() != 3 {
		t.Errorf("focused = %d after one interval", car.Focused())
	}
	if got := strings.SplitN(c.View(), "\n", 2)[0]; !strings.Contains(got, "(4)") || !strings.Contains(got, "autoplay on") {
		t.Errorf("first view line = %q", got)
	}

	// a selection before the next poll cancels the pending advance
	c.Update(runes("1"))
	c.Update(tickMsg(t0.Add(10 * carousel.AutoplayInterval)))
	if car.Focused() != 0 {
		t.Errorf("advanced after selection to %d", car.Focused())
	}
}

func TestRunQuitStopsScheduler(t *testing.T) {
	c, car, _ := newConsole(t, carousel.Options{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Run(ctx, strings.NewReader("q"), time.Hour); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if car.Running() {
		t.Error("scheduler still running after Run")
	}
}

func TestRunCancelled(t *testing.T) {
	c, car, _ := newConsole(t, carousel.Options{})
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Run(ctx, pr, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Run err = %v", err)
	}
	if car.Running() {
		t.Error("scheduler still running after Run")
	}
}

func TestRunAutoplays(t *testing.T) {
	c, _, out := newConsole(t, carousel.Options{Focused: 2, Interval: 30 * time.Millisecond})

	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx, pr, 5*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run err = %v", err)
	}
	if !strings.Contains(out.String(), "(4)") {
		t.Errorf("no autoplay advance in 500ms:\n%s", out.String())
	}
}
