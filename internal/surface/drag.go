package surface

import "github.com/atomicstack/termdesk/internal/state"

// DragState is the state of the title-bar drag gesture.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// Drag tracks one in-flight title-bar drag. The captured offset is ordinary
// state carried between pointer events.
type Drag struct {
	state  DragState
	id     string
	offset state.Point
}

// State returns the current drag state.
func (d *Drag) State() DragState {
	return d.state
}

// ID returns the window being dragged, or "" when idle.
func (d *Drag) ID() string {
	if d.state != DragDragging {
		return ""
	}
	return d.id
}

// Offset returns the pointer offset captured at drag start.
func (d *Drag) Offset() state.Point {
	return d.offset
}

// Begin starts dragging window id currently drawn at r. It refuses to start
// for maximized windows.
func (d *Drag) Begin(id string, r Rect, pointer state.Point, maximized bool) bool {
	if maximized {
		return false
	}
	d.state = DragDragging
	d.id = id
	d.offset = state.Point{X: pointer.X - r.X, Y: pointer.Y - r.Y}
	return true
}

// Move returns the new top-left for the dragged window, clamped so neither
// axis goes negative.
func (d *Drag) Move(pointer state.Point) (string, state.Point, bool) {
	if d.state != DragDragging {
		return "", state.Point{}, false
	}
	pos := state.Point{X: pointer.X - d.offset.X, Y: pointer.Y - d.offset.Y}
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	return d.id, pos, true
}

// End returns to Idle and reports which window was being dragged.
func (d *Drag) End() (string, bool) {
	if d.state != DragDragging {
		return "", false
	}
	id := d.id
	d.state = DragIdle
	d.id = ""
	d.offset = state.Point{}
	return id, true
}
