package game

import (
	"fmt"
	"image/color"
	"time"
)

// brighten multiplies the colour channels by f, clamping at 255.
func brighten(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(clamp01(float64(v)*f/255) * 255)
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// lerpColor blends a toward b by t in [0,1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatCountdown formats a duration as seconds with one decimal.
func formatCountdown(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
