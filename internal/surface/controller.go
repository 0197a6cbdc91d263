package surface

import (
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/state"
)

// PointerKind distinguishes the pointer events the controller understands.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// Pointer is one pointer event in desktop cell coordinates. Held reports
// whether the primary button is down during motion.
type Pointer struct {
	Kind PointerKind
	X, Y int
	Held bool
}

// ContentClick is a press inside a window body, relative to its content rect.
type ContentClick struct {
	X, Y int
}

// Outcome reports what a pointer event did.
type Outcome struct {
	// Handled is false when the event missed every visible window and no
	// drag was in flight.
	Handled bool
	ID      string
	Region  Region
	Click   *ContentClick
}

// Controller translates pointer gestures on the window surfaces into
// registry commands.
type Controller struct {
	reg      *state.Registry
	drag     Drag
	viewport state.Size
}

// NewController returns a controller driving reg.
func NewController(reg *state.Registry, viewport state.Size) *Controller {
	return &Controller{reg: reg, viewport: viewport}
}

// SetViewport updates the area available to maximized windows.
func (c *Controller) SetViewport(size state.Size) {
	c.viewport = size
}

// Viewport returns the current viewport.
func (c *Controller) Viewport() state.Size {
	return c.viewport
}

// Dragging reports the id of the window being dragged.
func (c *Controller) Dragging() (string, bool) {
	id := c.drag.ID()
	return id, id != ""
}

// HitWindow returns the topmost visible window under (x, y).
func (c *Controller) HitWindow(x, y int) (state.Entry, Rect, Region, bool) {
	entries := c.reg.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if !e.Visible() {
			continue
		}
		r := Layout(e, c.viewport)
		if region := HitTest(r, x, y); region != RegionNone {
			return e, r, region, true
		}
	}
	return state.Entry{}, Rect{}, RegionNone, false
}

// Handle applies one pointer event.
func (c *Controller) Handle(p Pointer) Outcome {
	switch p.Kind {
	case PointerPress:
		return c.press(p)
	case PointerMotion:
		return c.motion(p)
	case PointerRelease:
		return c.release()
	}
	return Outcome{}
}

// Press is shorthand for Handle with PointerPress.
func (c *Controller) Press(x, y int) Outcome {
	return c.Handle(Pointer{Kind: PointerPress, X: x, Y: y})
}

// Motion is shorthand for Handle with PointerMotion.
func (c *Controller) Motion(x, y int, held bool) Outcome {
	return c.Handle(Pointer{Kind: PointerMotion, X: x, Y: y, Held: held})
}

// Release is shorthand for Handle with PointerRelease.
func (c *Controller) Release(x, y int) Outcome {
	return c.Handle(Pointer{Kind: PointerRelease, X: x, Y: y})
}

func (c *Controller) press(p Pointer) Outcome {
	// a press can only arrive with the button up, so any drag still marked
	// in flight lost its release
	if id, ok := c.drag.End(); ok {
		events.Drag.End(id, events.ReasonNoButton)
	}
	e, r, region, ok := c.HitWindow(p.X, p.Y)
	if !ok {
		return Outcome{}
	}
	out := Outcome{Handled: true, ID: e.ID, Region: region}
	c.reg.Focus(e.ID)
	switch region {
	case RegionTitleBar:
		if c.drag.Begin(e.ID, r, state.Point{X: p.X, Y: p.Y}, e.Maximized) {
			off := c.drag.Offset()
			events.Drag.Begin(e.ID, off.X, off.Y)
		}
	case RegionMinimize:
		c.reg.Minimize(e.ID)
	case RegionMaximize:
		if e.Maximized {
			c.reg.Restore(e.ID)
		} else {
			c.reg.Maximize(e.ID)
		}
	case RegionClose:
		c.reg.Close(e.ID)
	case RegionBody:
		inner := ContentRect(r)
		out.Click = &ContentClick{X: p.X - inner.X, Y: p.Y - inner.Y}
	}
	return out
}

func (c *Controller) motion(p Pointer) Outcome {
	if c.drag.State() != DragDragging {
		return Outcome{}
	}
	if !p.Held {
		id, _ := c.drag.End()
		events.Drag.End(id, events.ReasonNoButton)
		return Outcome{Handled: true, ID: id}
	}
	e, ok := c.reg.Entry(c.drag.ID())
	if !ok || e.Minimized {
		id, _ := c.drag.End()
		events.Drag.End(id, events.ReasonGone)
		return Outcome{Handled: true, ID: id}
	}
	if e.Maximized {
		return Outcome{Handled: true, ID: e.ID}
	}
	id, pos, _ := c.drag.Move(state.Point{X: p.X, Y: p.Y})
	if pos != e.Position {
		c.reg.UpdatePosition(id, pos)
	}
	return Outcome{Handled: true, ID: id, Region: RegionTitleBar}
}

func (c *Controller) release() Outcome {
	id, ok := c.drag.End()
	if !ok {
		return Outcome{}
	}
	events.Drag.End(id, events.ReasonRelease)
	return Outcome{Handled: true, ID: id}
}
