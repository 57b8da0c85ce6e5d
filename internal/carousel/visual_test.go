package carousel

import "testing"

func TestDescribeTable(t *testing.T) {
	tests := []struct {
		offset int
		want   Descriptor
	}{
		{0, Descriptor{Scale: 1.4, Lateral: 0, Opacity: 1, Stack: 10, Visible: true}},
		{-1, Descriptor{Scale: 0.6, Lateral: -1, Opacity: 1, Stack: 1, Visible: true}},
		{1, Descriptor{Scale: 0.6, Lateral: 1, Opacity: 1, Stack: 1, Visible: true}},
		{-2, Descriptor{Scale: 0.3, Lateral: -2, Opacity: 0, Stack: 0, Visible: false}},
		{2, Descriptor{Scale: 0.3, Lateral: 2, Opacity: 0, Stack: 0, Visible: false}},
		{5, Descriptor{Scale: 0.3, Lateral: 2, Opacity: 0, Stack: 0, Visible: false}},
		{-4, Descriptor{Scale: 0.3, Lateral: -2, Opacity: 0, Stack: 0, Visible: false}},
	}
	for _, tt := range tests {
		if got := Describe(tt.offset); got != tt.want {
			t.Errorf("Describe(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestVisibilityLaw(t *testing.T) {
	for off := -10; off <= 10; off++ {
		d := Describe(off)
		if d.Visible != (abs(off) <= 1) {
			t.Errorf("Describe(%d).Visible = %v", off, d.Visible)
		}
		if d.Scale <= 0 {
			t.Errorf("Describe(%d).Scale = %v, want positive", off, d.Scale)
		}
		if d.Opacity < 0 || d.Opacity > 1 {
			t.Errorf("Describe(%d).Opacity = %v", off, d.Opacity)
		}
	}
}

func TestPolicyUnitScalesLateral(t *testing.T) {
	p := DefaultPolicy
	p.Unit = 180
	if got := p.Describe(-1).Lateral; got != -180 {
		t.Errorf("neighbour lateral = %v, want -180", got)
	}
	if got := p.Describe(3).Lateral; got != 360 {
		t.Errorf("hidden lateral = %v, want 360", got)
	}
}
