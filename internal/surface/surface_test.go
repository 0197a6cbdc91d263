package surface

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdesk/internal/state"
)

func TestHitTestRegions(t *testing.T) {
	r := Rect{X: 5, Y: 2, Width: 20, Height: 6}
	cases := []struct {
		name string
		x, y int
		want Region
	}{
		{"outside left", 4, 2, RegionNone},
		{"outside below", 5, 8, RegionNone},
		{"title start", 5, 2, RegionTitleBar},
		{"title middle", 12, 2, RegionTitleBar},
		{"minimize", 15, 2, RegionMinimize},
		{"minimize end", 17, 2, RegionMinimize},
		{"maximize", 18, 2, RegionMaximize},
		{"close", 21, 2, RegionClose},
		{"close end", 23, 2, RegionClose},
		{"title right margin", 24, 2, RegionTitleBar},
		{"body", 6, 3, RegionBody},
		{"left border", 5, 4, RegionFrame},
		{"status row", 10, 7, RegionFrame},
	}
	for _, tc := range cases {
		if got := HitTest(r, tc.x, tc.y); got != tc.want {
			t.Fatalf("%s: HitTest(%d,%d) = %v, want %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestHitTestNarrowWindowHasNoControls(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: MinWidth - 1, Height: 4}
	for x := 0; x < r.Width; x++ {
		if got := HitTest(r, x, 0); got != RegionTitleBar {
			t.Fatalf("expected title bar at x=%d, got %v", x, got)
		}
	}
}

func TestLayoutMaximizedFillsViewport(t *testing.T) {
	e := state.Entry{Position: state.Point{X: 9, Y: 4}, Size: state.Size{Width: 30, Height: 10}}
	if got := Layout(e, state.Size{Width: 80, Height: 23}); got != (Rect{X: 9, Y: 4, Width: 30, Height: 10}) {
		t.Fatalf("unexpected layout %+v", got)
	}
	e.Maximized = true
	if got := Layout(e, state.Size{Width: 80, Height: 23}); got != (Rect{Width: 80, Height: 23}) {
		t.Fatalf("unexpected maximized layout %+v", got)
	}
}

func TestDragClampsToOrigin(t *testing.T) {
	var d Drag
	if d.Begin("a", Rect{X: 10, Y: 5, Width: 20, Height: 5}, state.Point{X: 14, Y: 5}, true) {
		t.Fatalf("maximized window must not start a drag")
	}
	if !d.Begin("a", Rect{X: 10, Y: 5, Width: 20, Height: 5}, state.Point{X: 14, Y: 5}, false) {
		t.Fatalf("expected drag to start")
	}
	if d.State() != DragDragging || d.ID() != "a" {
		t.Fatalf("unexpected drag state %v %q", d.State(), d.ID())
	}
	id, pos, ok := d.Move(state.Point{X: 20, Y: 9})
	if !ok || id != "a" || pos != (state.Point{X: 16, Y: 9}) {
		t.Fatalf("unexpected move %q %+v %v", id, pos, ok)
	}
	_, pos, _ = d.Move(state.Point{X: 1, Y: 0})
	if pos != (state.Point{X: 0, Y: 0}) {
		t.Fatalf("expected clamp to origin, got %+v", pos)
	}
	if id, ok := d.End(); !ok || id != "a" {
		t.Fatalf("unexpected end %q %v", id, ok)
	}
	if _, _, ok := d.Move(state.Point{X: 3, Y: 3}); ok {
		t.Fatalf("idle drag must not move")
	}
	if _, ok := d.End(); ok {
		t.Fatalf("second end should report nothing")
	}
}

func newTestController(t *testing.T) (*state.Registry, *Controller) {
	t.Helper()
	reg := state.NewRegistry()
	reg.Open(state.Descriptor{ID: "a", Title: "A", Position: state.Point{X: 5, Y: 2}, Size: state.Size{Width: 20, Height: 6}})
	return reg, NewController(reg, state.Size{Width: 80, Height: 23})
}

func TestControllerTitleDragMovesWindow(t *testing.T) {
	reg, c := newTestController(t)
	reg.Open(state.Descriptor{ID: "b", Title: "B", Position: state.Point{X: 40, Y: 2}, Size: state.Size{Width: 20, Height: 6}})

	out := c.Press(8, 2)
	if !out.Handled || out.ID != "a" || out.Region != RegionTitleBar {
		t.Fatalf("unexpected press outcome %+v", out)
	}
	if id, _ := reg.ActiveID(); id != "a" {
		t.Fatalf("press should focus a, active=%q", id)
	}
	if id, ok := c.Dragging(); !ok || id != "a" {
		t.Fatalf("expected drag of a, got %q %v", id, ok)
	}
	c.Motion(10, 6, true)
	e, _ := reg.Entry("a")
	if e.Position != (state.Point{X: 7, Y: 6}) {
		t.Fatalf("unexpected position after move %+v", e.Position)
	}
	c.Motion(0, 0, true)
	e, _ = reg.Entry("a")
	if e.Position != (state.Point{X: 0, Y: 0}) {
		t.Fatalf("expected clamped position, got %+v", e.Position)
	}
	if out := c.Release(0, 0); !out.Handled || out.ID != "a" {
		t.Fatalf("unexpected release outcome %+v", out)
	}
	if _, ok := c.Dragging(); ok {
		t.Fatalf("drag should end on release")
	}
	c.Motion(30, 10, true)
	e, _ = reg.Entry("a")
	if e.Position != (state.Point{X: 0, Y: 0}) {
		t.Fatalf("motion after release moved window to %+v", e.Position)
	}
}

func TestControllerMotionWithoutButtonEndsDrag(t *testing.T) {
	reg, c := newTestController(t)
	c.Press(8, 2)
	c.Motion(12, 4, false)
	if _, ok := c.Dragging(); ok {
		t.Fatalf("expected drag to self-heal")
	}
	e, _ := reg.Entry("a")
	if e.Position != (state.Point{X: 5, Y: 2}) {
		t.Fatalf("window moved without a held button: %+v", e.Position)
	}
}

func TestControllerDragEndsWhenWindowGone(t *testing.T) {
	reg, c := newTestController(t)
	c.Press(8, 2)
	reg.Close("a")
	if out := c.Motion(12, 4, true); !out.Handled {
		t.Fatalf("expected motion to be consumed by ending drag")
	}
	if _, ok := c.Dragging(); ok {
		t.Fatalf("expected drag to end for a closed window")
	}
}

func TestControllerControls(t *testing.T) {
	reg, c := newTestController(t)

	c.Press(18, 2)
	e, _ := reg.Entry("a")
	if !e.Maximized {
		t.Fatalf("maximize control should maximize")
	}
	if _, ok := c.Dragging(); ok {
		t.Fatalf("control press must not start a drag")
	}
	// maximized geometry moves the controls to the right edge of the viewport
	c.Press(80-controlsWidth+controlWidth, 0)
	e, _ = reg.Entry("a")
	if e.Maximized {
		t.Fatalf("second maximize press should restore")
	}

	c.Press(15, 2)
	e, _ = reg.Entry("a")
	if !e.Minimized {
		t.Fatalf("minimize control should minimize")
	}
	if _, ok := reg.ActiveID(); ok {
		t.Fatalf("minimize should clear focus")
	}
	if out := c.Press(8, 2); out.Handled {
		t.Fatalf("minimized windows are not hit-testable: %+v", out)
	}

	reg.Restore("a")
	c.Press(21, 2)
	if _, ok := reg.Entry("a"); ok {
		t.Fatalf("close control should remove the window")
	}
}

func TestControllerMaximizedTitleDoesNotDrag(t *testing.T) {
	reg, c := newTestController(t)
	reg.Maximize("a")
	out := c.Press(3, 0)
	if out.Region != RegionTitleBar {
		t.Fatalf("expected title bar press, got %+v", out)
	}
	if _, ok := c.Dragging(); ok {
		t.Fatalf("maximized window must not drag")
	}
}

func TestControllerBodyClickIsContentRelative(t *testing.T) {
	_, c := newTestController(t)
	out := c.Press(9, 5)
	if out.Click == nil {
		t.Fatalf("expected content click, got %+v", out)
	}
	if *out.Click != (ContentClick{X: 3, Y: 2}) {
		t.Fatalf("unexpected content click %+v", *out.Click)
	}
}

func TestControllerTopmostWindowWins(t *testing.T) {
	reg, c := newTestController(t)
	reg.Open(state.Descriptor{ID: "b", Title: "B", Position: state.Point{X: 10, Y: 3}, Size: state.Size{Width: 20, Height: 6}})
	out := c.Press(12, 4)
	if out.ID != "b" {
		t.Fatalf("expected top window b, got %q", out.ID)
	}
	// a's exposed title bar is still reachable
	out = c.Press(6, 2)
	if out.ID != "a" {
		t.Fatalf("expected a, got %q", out.ID)
	}
	entries := reg.Entries()
	if entries[len(entries)-1].ID != "a" {
		t.Fatalf("click should raise a to the top")
	}
	c.Release(6, 2)
	if out := c.Press(70, 20); out.Handled {
		t.Fatalf("press on bare desktop should not be handled")
	}
}

func TestRenderFrame(t *testing.T) {
	e := state.Entry{
		ID:      "n",
		Title:   "Notes",
		Icon:    "N",
		Size:    state.Size{Width: 20, Height: 5},
		Content: state.ContentFunc(func(w, h int) string { return "hello\nworld, this line is too long" }),
	}
	lines := Render(e, Layout(e, state.Size{Width: 80, Height: 23}), true, nil)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 20 {
			t.Fatalf("line %d width %d: %q", i, w, ansi.Strip(line))
		}
	}
	want := []string{
		" N Notes  [_][□][x] ",
		"│hello             │",
		"│world, this line i│",
		"│                  │",
		"└ Ready ───────────┘",
	}
	for i, line := range lines {
		if got := ansi.Strip(line); got != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestRenderTruncatesLongTitle(t *testing.T) {
	e := state.Entry{Title: strings.Repeat("x", 40), Size: state.Size{Width: 20, Height: 3}}
	lines := Render(e, Layout(e, state.Size{}), false, nil)
	title := ansi.Strip(lines[0])
	if !strings.HasSuffix(title, "…[_][□][x] ") {
		t.Fatalf("expected truncated title, got %q", title)
	}
	if ansi.StringWidth(lines[0]) != 20 {
		t.Fatalf("title row width %d", ansi.StringWidth(lines[0]))
	}
}

func TestRenderMinimizedIsEmpty(t *testing.T) {
	e := state.Entry{Title: "x", Size: state.Size{Width: 20, Height: 4}, Minimized: true}
	if lines := Render(e, Layout(e, state.Size{}), false, nil); lines != nil {
		t.Fatalf("expected no output, got %q", lines)
	}
}

func TestCanvasOverlayClips(t *testing.T) {
	c := NewCanvas(10, 3, strings.Repeat(".", 12))
	c.Overlay(2, 1, []string{"ab"})
	c.Overlay(-1, 0, []string{"xyz"})
	c.Overlay(8, 2, []string{"abc"})
	c.Overlay(3, 5, []string{"zz"})
	want := []string{"yz........", "..ab......", "........ab"}
	for i, line := range c.Lines() {
		if got := ansi.Strip(line); got != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestCanvasOverlayKeepsUnderlyingTail(t *testing.T) {
	c := NewCanvas(6, 1, "")
	c.SetLine(0, "abcdef")
	c.Overlay(1, 0, []string{"XY"})
	if got := ansi.Strip(c.String()); got != "aXYdef" {
		t.Fatalf("unexpected composite %q", got)
	}
}
