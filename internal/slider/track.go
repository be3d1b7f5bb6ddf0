package slider

// Track maps between pointer coordinates and normalized values. Scale is
// the display density; zero means 1.
type Track struct {
	X     float32
	Width float32
	Scale float32
}

// Valid reports whether the track has a usable width.
func (t Track) Valid() bool { return t.Width > 0 }

// Normalize maps a pointer coordinate onto [0, 1].
func (t Track) Normalize(px float32) float32 {
	if !t.Valid() {
		return 0
	}

	return unit((px - t.X) / t.Width)
}

// Pixel maps a normalized value onto the track.
func (t Track) Pixel(normalized float32) float32 {
	return t.X + unit(normalized)*t.Width
}

func (t Track) scale() float32 {
	if t.Scale <= 0 {
		return 1
	}

	return t.Scale
}
