package colors

import (
	"testing"
	"time"
)

func TestRecencyColorGradientMonotonic(t *testing.T) {
	oldest := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newest := oldest.Add(48 * time.Hour)
	mid := oldest.Add(20 * time.Hour)

	cOld := RecencyColor(oldest, oldest, newest)
	cMid := RecencyColor(mid, oldest, newest)
	cNew := RecencyColor(newest, oldest, newest)

	if !(cOld.B > cMid.B && cMid.B > cNew.B) {
		t.Errorf("Blue channel should decrease with recency: %d, %d, %d", cOld.B, cMid.B, cNew.B)
	}
	if !(cOld.R < cMid.R && cMid.R < cNew.R) {
		t.Errorf("Red channel should increase with recency: %d, %d, %d", cOld.R, cMid.R, cNew.R)
	}
	for _, c := range []struct{ g uint8 }{{cOld.G}, {cMid.G}, {cNew.G}} {
		if c.g != 0 {
			t.Errorf("Green channel should stay 0, got %d", c.g)
		}
	}
}

func TestRecencyColorExtremes(t *testing.T) {
	oldest := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newest := oldest.Add(time.Hour)

	cOld := RecencyColor(oldest, oldest, newest)
	if cOld.R != 0 || cOld.B != 255 {
		t.Errorf("Oldest should be pure blue, got R=%d B=%d", cOld.R, cOld.B)
	}

	cNew := RecencyColor(newest, oldest, newest)
	if cNew.R != 255 || cNew.B != 0 {
		t.Errorf("Newest should be pure red, got R=%d B=%d", cNew.R, cNew.B)
	}
}

func TestRecencyColorDegenerateWindow(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// A single-point window maps to "newest".
	c := RecencyColor(ts, ts, ts)
	if c.R != 255 || c.B != 0 {
		t.Errorf("Degenerate window should yield the newest color, got R=%d B=%d", c.R, c.B)
	}
}

func TestRecencyColorClamped(t *testing.T) {
	oldest := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newest := oldest.Add(time.Hour)

	before := RecencyColor(oldest.Add(-time.Hour), oldest, newest)
	if before.R != 0 || before.B != 255 {
		t.Errorf("Timestamp before window should clamp to oldest color, got R=%d B=%d", before.R, before.B)
	}

	after := RecencyColor(newest.Add(time.Hour), oldest, newest)
	if after.R != 255 || after.B != 0 {
		t.Errorf("Timestamp after window should clamp to newest color, got R=%d B=%d", after.R, after.B)
	}
}

func TestHex(t *testing.T) {
	oldest := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newest := oldest.Add(time.Hour)

	if hex := Hex(RecencyColor(oldest, oldest, newest)); hex != "#0000ff" {
		t.Errorf("Expected #0000ff for oldest, got %s", hex)
	}
	if hex := Hex(RecencyColor(newest, oldest, newest)); hex != "#ff0000" {
		t.Errorf("Expected #ff0000 for newest, got %s", hex)
	}
}
