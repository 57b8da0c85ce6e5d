package carousel

import (
	"errors"
	"testing"
)

var fiveIDs = []string{"a", "b", "c", "d", "e"}

func newFive(t *testing.T) *Carousel {
	t.Helper()
	c, err := New(fiveIDs, Options{Focused: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejects(t *testing.T) {
	if _, err := New([]string{"a", "b"}, Options{}); !errors.Is(err, ErrTooFewItems) {
		t.Errorf("two items: err = %v", err)
	}
	if _, err := New([]string{"a", "b", "a"}, Options{}); err == nil {
		t.Error("duplicate ids accepted")
	}
	if _, err := New(fiveIDs, Options{Focused: 7}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("bad focus: err = %v", err)
	}
}

func TestFrameFiveFocusedTwo(t *testing.T) {
	f := newFive(t).Frame()

	if len(f.Items) != 5 {
		t.Fatalf("len(Items) = %d", len(f.Items))
	}
	wantOffsets := []int{-2, -1, 0, 1, 2}
	for i, p := range f.Items {
		if p.Index != i || p.ID != fiveIDs[i] {
			t.Errorf("item %d = %+v", i, p)
		}
		if p.Offset != wantOffsets[i] {
			t.Errorf("item %d offset = %d, want %d", i, p.Offset, wantOffsets[i])
		}
	}

	vis := f.Visible()
	if len(vis) != 3 || vis[0].Index != 1 || vis[1].Index != 2 || vis[2].Index != 3 {
		t.Errorf("visible = %+v", vis)
	}

	centre := f.Items[2].Descriptor
	if centre.Scale != 1.4 {
		t.Errorf("centre scale = %v", centre.Scale)
	}
	for _, p := range f.Items {
		if p.Index != 2 && p.Descriptor.Stack >= centre.Stack {
			t.Errorf("item %d stack %d not below centre %d", p.Index, p.Descriptor.Stack, centre.Stack)
		}
	}
	for _, i := range []int{1, 3} {
		if f.Items[i].Descriptor.Scale != 0.6 {
			t.Errorf("item %d scale = %v", i, f.Items[i].Descriptor.Scale)
		}
	}
	for _, i := range []int{0, 4} {
		if f.Items[i].Descriptor.Opacity != 0 {
			t.Errorf("item %d opacity = %v", i, f.Items[i].Descriptor.Opacity)
		}
	}
	if f.FocusedID() != "c" || !f.AutoplayEnabled {
		t.Errorf("focused id = %q autoplay = %v", f.FocusedID(), f.AutoplayEnabled)
	}
}

func TestVisibleCountAlwaysThree(t *testing.T) {
	for n := MinItems; n <= 9; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = string(rune('a' + i))
		}
		c, err := New(ids, Options{})
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < n; i++ {
			if got := len(c.Frame().Visible()); got != 3 {
				t.Fatalf("n=%d focused=%d: %d visible", n, c.Focused(), got)
			}
			c.state.Advance()
		}
	}
}

func TestAdapterEvents(t *testing.T) {
	c := newFive(t)
	c.Start(at(0))

	if err := c.OnItemActivated(4); err != nil {
		t.Fatal(err)
	}
	if c.Focused() != 4 || c.AutoplayEnabled() {
		t.Fatalf("focused=%d autoplay=%v", c.Focused(), c.AutoplayEnabled())
	}
	if c.Tick(at(1500)) || c.Tick(at(3000)) {
		t.Fatal("advanced without re-enabling autoplay")
	}

	c.OnAutoplayToggleRequested()
	c.Tick(at(3100))
	if !c.Tick(at(4600)) || c.Focused() != 0 {
		t.Errorf("after toggle focused=%d", c.Focused())
	}

	if err := c.OnItemActivated(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("OnItemActivated(5) err = %v", err)
	}
}

func TestStepWraps(t *testing.T) {
	c := newFive(t)
	if err := c.Step(-3); err != nil {
		t.Fatal(err)
	}
	if c.Focused() != 4 || c.AutoplayEnabled() {
		t.Errorf("focused=%d autoplay=%v", c.Focused(), c.AutoplayEnabled())
	}
	if err := c.Step(1); err != nil {
		t.Fatal(err)
	}
	if c.Focused() != 0 {
		t.Errorf("focused=%d, want 0", c.Focused())
	}
}

func TestPaintOrder(t *testing.T) {
	order := PaintOrder(newFive(t).Frame().Items)
	got := make([]int, len(order))
	for i, p := range order {
		got[i] = p.Index
	}
	want := []int{0, 4, 1, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paint order = %v, want %v", got, want)
		}
	}
}
