package surface

import "github.com/atomicstack/termdesk/internal/state"

const (
	// MinWidth fits a short title plus the three control buttons. Narrower
	// windows are drawn without controls.
	MinWidth = 16
	// MinHeight is title row, one content row and the status row.
	MinHeight = 3
)

// Rect is a half-open cell rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() state.Point {
	return state.Point{X: r.X, Y: r.Y}
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Layout returns the on-screen geometry for an entry. Maximized windows fill
// the viewport (the area above the taskbar); others use their stored
// position and size verbatim.
func Layout(e state.Entry, viewport state.Size) Rect {
	if e.Maximized {
		return Rect{X: 0, Y: 0, Width: viewport.Width, Height: viewport.Height}
	}
	return Rect{X: e.Position.X, Y: e.Position.Y, Width: e.Size.Width, Height: e.Size.Height}
}

// ContentRect is the area inside the window frame that hosts the app view.
func ContentRect(r Rect) Rect {
	inner := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}
