package colors

import (
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RecencyColor maps a timestamp's relative position inside [oldest, newest]
// onto a blue-to-red gradient: the oldest event in the working set renders
// blue, the newest red. The position is clamped to [0, 1]; a degenerate
// window (oldest == newest) counts as newest. The function is pure, so
// re-filtering to a narrower window re-stretches the gradient to the new
// extremes on the next render.
func RecencyColor(t, oldest, newest time.Time) drawing.Color {
	p := 1.0
	if newest.After(oldest) {
		p = float64(t.Sub(oldest)) / float64(newest.Sub(oldest))
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
	}

	return drawing.Color{
		R: uint8(255*p + 0.5),
		G: 0,
		B: uint8(255*(1-p) + 0.5),
		A: 255,
	}
}

// Hex renders a color as a #rrggbb string for use in HTML and map markers.
func Hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
