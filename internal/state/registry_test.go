package state

import (
	"fmt"
	"testing"
)

func desc(id string) Descriptor {
	return Descriptor{
		ID:       id,
		Title:    "Window " + id,
		Icon:     "*",
		Content:  ContentFunc(func(w, h int) string { return id }),
		Position: Point{X: 50, Y: 50},
		Size:     Size{Width: 300, Height: 200},
	}
}

func mustEntry(t *testing.T, r *Registry, id string) Entry {
	t.Helper()
	e, ok := r.Entry(id)
	if !ok {
		t.Fatalf("expected entry %q to exist", id)
	}
	return e
}

func TestOpenInsertsOnTop(t *testing.T) {
	r := NewRegistry()
	if !r.Open(desc("a")) {
		t.Fatalf("expected open to apply")
	}
	a := mustEntry(t, r, "a")
	if a.ZIndex != 1 {
		t.Fatalf("expected first window at z 1, got %d", a.ZIndex)
	}
	if a.Minimized || a.Maximized {
		t.Fatalf("expected fresh window to be normal, got %+v", a)
	}
	if id, ok := r.ActiveID(); !ok || id != "a" {
		t.Fatalf("expected a active, got %q", id)
	}
}

func TestOpenNeverDuplicatesIDs(t *testing.T) {
	r := NewRegistry()
	ids := []string{"a", "b", "a", "c", "b", "a", "a"}
	for _, id := range ids {
		r.Open(desc(id))
	}
	if r.Len() != 3 {
		t.Fatalf("expected 3 unique entries, got %d", r.Len())
	}
	seen := map[string]bool{}
	for _, e := range r.Entries() {
		if seen[e.ID] {
			t.Fatalf("duplicate entry %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestOpenExistingKeepsMetadataButRaisesAndUnminimizes(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	r.Minimize("a")

	second := desc("a")
	second.Title = "Replaced"
	second.Position = Point{X: 1, Y: 1}
	r.Open(second)

	a := mustEntry(t, r, "a")
	b := mustEntry(t, r, "b")
	if a.Title != "Window a" {
		t.Fatalf("expected original title retained, got %q", a.Title)
	}
	if a.Position != (Point{X: 50, Y: 50}) {
		t.Fatalf("expected original position retained, got %+v", a.Position)
	}
	if a.Minimized {
		t.Fatalf("expected reopen to clear minimized")
	}
	if a.ZIndex <= b.ZIndex {
		t.Fatalf("expected a above b, got a=%d b=%d", a.ZIndex, b.ZIndex)
	}
	if id, _ := r.ActiveID(); id != "a" {
		t.Fatalf("expected a active, got %q", id)
	}
}

func TestOpenExistingLeavesMaximized(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Maximize("a")
	r.Open(desc("a"))
	if !mustEntry(t, r, "a").Maximized {
		t.Fatalf("expected reopen to keep maximized flag")
	}
}

func TestRaisingOperationsAreStrictlyMonotonic(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	last := r.TopZ()
	steps := []func() bool{
		func() bool { return r.Focus("a") },
		func() bool { return r.Focus("a") },
		func() bool { return r.Restore("b") },
		func() bool { return r.Open(desc("c")) },
		func() bool { return r.Open(desc("a")) },
		func() bool { return r.Focus("c") },
	}
	for i, step := range steps {
		if !step() {
			t.Fatalf("step %d did not apply", i)
		}
		top := r.TopZ()
		if top != last+1 {
			t.Fatalf("step %d: expected counter %d, got %d", i, last+1, top)
		}
		entries := r.Entries()
		if entries[len(entries)-1].ZIndex != top {
			t.Fatalf("step %d: topmost entry z %d does not match counter %d", i, entries[len(entries)-1].ZIndex, top)
		}
		last = top
	}
}

func TestNonRaisingOperationsDoNotAdvanceCounter(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	before := r.TopZ()
	r.Maximize("a")
	r.Minimize("a")
	r.UpdatePosition("a", Point{X: 3, Y: 4})
	if r.TopZ() != before {
		t.Fatalf("expected counter to stay at %d, got %d", before, r.TopZ())
	}
}

func TestUnknownIDIsNoOp(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	r.Minimize("b")
	before := r.Snapshot()

	calls := 0
	unsub := r.Subscribe(func(Snapshot) { calls++ })
	defer unsub()

	ops := map[string]func() bool{
		"close":          func() bool { return r.Close("ghost") },
		"minimize":       func() bool { return r.Minimize("ghost") },
		"maximize":       func() bool { return r.Maximize("ghost") },
		"restore":        func() bool { return r.Restore("ghost") },
		"focus":          func() bool { return r.Focus("ghost") },
		"updatePosition": func() bool { return r.UpdatePosition("ghost", Point{X: 9, Y: 9}) },
	}
	for name, op := range ops {
		if op() {
			t.Fatalf("%s on unknown id reported a change", name)
		}
	}
	after := r.Snapshot()
	if fmt.Sprintf("%+v", stripContent(before)) != fmt.Sprintf("%+v", stripContent(after)) {
		t.Fatalf("state changed:\nbefore %+v\nafter  %+v", before, after)
	}
	if calls != 0 {
		t.Fatalf("expected no notifications, got %d", calls)
	}
}

func stripContent(s Snapshot) Snapshot {
	out := s
	out.Entries = make([]Entry, len(s.Entries))
	for i, e := range s.Entries {
		e.Content = nil
		out.Entries[i] = e
	}
	return out
}

func TestMinimizeActiveClearsFocusWithoutRefocus(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	r.Minimize("b")
	if id, ok := r.ActiveID(); ok {
		t.Fatalf("expected no active window, got %q", id)
	}
}

func TestMinimizeInactiveKeepsFocus(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	r.Minimize("a")
	if id, _ := r.ActiveID(); id != "b" {
		t.Fatalf("expected b to stay active, got %q", id)
	}
}

func TestCloseActiveClearsFocus(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	r.Close("b")
	if _, ok := r.Entry("b"); ok {
		t.Fatalf("expected b removed")
	}
	if id, ok := r.ActiveID(); ok {
		t.Fatalf("expected no active window after closing active, got %q", id)
	}
	if r.Len() != 1 {
		t.Fatalf("expected one entry left, got %d", r.Len())
	}
}

func TestMaximizeDoesNotChangeStackingOrFocus(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	aBefore := mustEntry(t, r, "a")
	r.Maximize("a")
	a := mustEntry(t, r, "a")
	if !a.Maximized {
		t.Fatalf("expected a maximized")
	}
	if a.ZIndex != aBefore.ZIndex {
		t.Fatalf("expected z unchanged, got %d -> %d", aBefore.ZIndex, a.ZIndex)
	}
	if id, _ := r.ActiveID(); id != "b" {
		t.Fatalf("expected b still active, got %q", id)
	}
}

func TestRestoreClearsFlagsAndFocuses(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	r.Maximize("a")
	r.Minimize("a")
	r.Restore("a")
	a := mustEntry(t, r, "a")
	if a.Minimized || a.Maximized {
		t.Fatalf("expected restore to clear both flags, got %+v", a)
	}
	if a.ZIndex <= mustEntry(t, r, "b").ZIndex {
		t.Fatalf("expected a raised above b")
	}
	if id, _ := r.ActiveID(); id != "a" {
		t.Fatalf("expected a active, got %q", id)
	}
}

func TestFocusKeepsFlags(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Maximize("a")
	r.Minimize("a")
	r.Focus("a")
	a := mustEntry(t, r, "a")
	if !a.Minimized || !a.Maximized {
		t.Fatalf("expected focus to leave flags alone, got %+v", a)
	}
}

func TestFocusMinimizedMakesItActiveButHidden(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	r.Minimize("a")
	top := r.TopZ()
	if !r.Focus("a") {
		t.Fatalf("expected focus to apply to a minimized window")
	}
	a := mustEntry(t, r, "a")
	if !a.Minimized || a.Visible() {
		t.Fatalf("focus must not un-minimize, got %+v", a)
	}
	if a.ZIndex != top+1 {
		t.Fatalf("expected z %d, got %d", top+1, a.ZIndex)
	}
	if id, _ := r.ActiveID(); id != "a" {
		t.Fatalf("expected a active, got %q", id)
	}
}

func TestUpdatePositionIsUnvalidated(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.UpdatePosition("a", Point{X: -5, Y: 10000})
	if got := mustEntry(t, r, "a").Position; got != (Point{X: -5, Y: 10000}) {
		t.Fatalf("expected position stored verbatim, got %+v", got)
	}
}

func TestTaskOrderFollowsInsertion(t *testing.T) {
	r := NewRegistry()
	r.Open(desc("a"))
	r.Open(desc("b"))
	r.Open(desc("c"))
	r.Focus("a")
	r.Close("b")
	order := r.TaskOrder()
	if len(order) != 2 || order[0].ID != "a" || order[1].ID != "c" {
		t.Fatalf("unexpected task order %+v", order)
	}
}

func TestSubscribeSeesEachMutation(t *testing.T) {
	r := NewRegistry()
	var seen []string
	unsub := r.Subscribe(func(s Snapshot) {
		seen = append(seen, fmt.Sprintf("%d:%s", len(s.Entries), s.ActiveID))
	})
	r.Open(desc("a"))
	r.Open(desc("b"))
	r.Minimize("b")
	unsub()
	r.Close("a")
	want := []string{"1:a", "2:b", "2:"}
	if fmt.Sprint(seen) != fmt.Sprint(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
}

func TestSubscriberMayReadRegistry(t *testing.T) {
	r := NewRegistry()
	var lens []int
	r.Subscribe(func(Snapshot) { lens = append(lens, r.Len()) })
	r.Open(desc("a"))
	r.Open(desc("b"))
	if fmt.Sprint(lens) != "[1 2]" {
		t.Fatalf("unexpected lens %v", lens)
	}
}

func TestEndToEndScenario(t *testing.T) {
	r := NewRegistry()

	r.Open(desc("a"))
	if r.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", r.Len())
	}
	if id, _ := r.ActiveID(); id != "a" {
		t.Fatalf("expected a active, got %q", id)
	}
	if z := mustEntry(t, r, "a").ZIndex; z != 1 {
		t.Fatalf("expected a at z 1, got %d", z)
	}

	r.Open(desc("b"))
	if r.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", r.Len())
	}
	if mustEntry(t, r, "b").ZIndex <= mustEntry(t, r, "a").ZIndex {
		t.Fatalf("expected b above a")
	}
	if id, _ := r.ActiveID(); id != "b" {
		t.Fatalf("expected b active, got %q", id)
	}

	r.Focus("a")
	if mustEntry(t, r, "a").ZIndex <= mustEntry(t, r, "b").ZIndex {
		t.Fatalf("expected a above b after focus")
	}
	if id, _ := r.ActiveID(); id != "a" {
		t.Fatalf("expected a active, got %q", id)
	}

	r.Minimize("a")
	if !mustEntry(t, r, "a").Minimized {
		t.Fatalf("expected a minimized")
	}
	if _, ok := r.ActiveID(); ok {
		t.Fatalf("expected no active window")
	}

	r.Restore("a")
	a := mustEntry(t, r, "a")
	if a.Minimized {
		t.Fatalf("expected a restored")
	}
	if a.ZIndex <= mustEntry(t, r, "b").ZIndex {
		t.Fatalf("expected a above b after restore")
	}
	if id, _ := r.ActiveID(); id != "a" {
		t.Fatalf("expected a active, got %q", id)
	}
}

func TestSnapshotActive(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Snapshot().Active(); ok {
		t.Fatalf("expected no active entry on empty registry")
	}
	r.Open(desc("a"))
	e, ok := r.Snapshot().Active()
	if !ok || e.ID != "a" {
		t.Fatalf("expected a active, got %+v", e)
	}
}
