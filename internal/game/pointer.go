package game

import "github.com/iburimskiy/particle-intro/internal/particle"

// pointer turns polled cursor coordinates into pointer-move events on a
// particle.Cursor. The cursor only becomes active once the pointer has moved
// inside the window, and stays at its last position afterwards unless
// clearOnLeave is set.
type pointer struct {
	cursor       *particle.Cursor
	clearOnLeave bool

	lastX, lastY int
	polled       bool
}

func (p *pointer) poll(x, y, width, height int) {
	inside := x >= 0 && y >= 0 && x < width && y < height
	if !inside {
		if p.clearOnLeave {
			p.cursor.Clear()
		}
		p.lastX, p.lastY, p.polled = x, y, true
		return
	}
	// The first poll only records where the pointer starts.
	if p.polled && (x != p.lastX || y != p.lastY) {
		p.cursor.MoveTo(float64(x), float64(y))
	}
	p.lastX, p.lastY, p.polled = x, y, true
}
