package state

import (
	"sort"
	"sync"

	"github.com/atomicstack/termdesk/internal/logging/events"
)

// Registry owns the set of open windows, their stacking order and the active
// window. Every mutation goes through its command methods; operations naming
// an unknown id leave state untouched and report false.
//
// Closing or minimizing the active window clears the active id without
// promoting the next window, so the user has to click to refocus.
type Registry struct {
	mu       sync.Mutex
	entries  map[string]*Entry
	order    []string // insertion order, used by the taskbar
	activeID string
	topZ     int

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// NewRegistry returns an empty registry whose z-counter starts at zero.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		subs:    make(map[int]func(Snapshot)),
	}
}

// Subscribe registers fn to be called synchronously after each applied
// mutation. The returned func removes the subscription.
func (r *Registry) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	r.subMu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.subMu.Unlock()
	return func() {
		r.subMu.Lock()
		delete(r.subs, id)
		r.subMu.Unlock()
	}
}

// Open brings an existing window to the front and un-minimizes it, or inserts
// a new one on top. A second open for the same id ignores the rest of the
// descriptor.
func (r *Registry) Open(d Descriptor) bool {
	r.mu.Lock()
	r.topZ++
	z := r.topZ
	if existing, ok := r.entries[d.ID]; ok {
		existing.Minimized = false
		existing.ZIndex = z
		r.activeID = d.ID
		r.mu.Unlock()
		events.Window.Reopen(d.ID, z)
		r.notify()
		return true
	}
	r.entries[d.ID] = newEntry(d, z)
	r.order = append(r.order, d.ID)
	r.activeID = d.ID
	r.mu.Unlock()
	events.Window.Open(d.ID, d.Title, z)
	r.notify()
	return true
}

// Close removes the window entirely.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	if _, ok := r.entries[id]; !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.entries, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	wasActive := r.activeID == id
	if wasActive {
		r.activeID = ""
	}
	r.mu.Unlock()
	events.Window.Close(id, wasActive)
	r.notify()
	return true
}

// Minimize hides the window but keeps it registered.
func (r *Registry) Minimize(id string) bool {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	e.Minimized = true
	wasActive := r.activeID == id
	if wasActive {
		r.activeID = ""
	}
	r.mu.Unlock()
	events.Window.Minimize(id, wasActive)
	r.notify()
	return true
}

// Maximize marks the window maximized without touching stacking or focus.
func (r *Registry) Maximize(id string) bool {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	e.Maximized = true
	r.mu.Unlock()
	events.Window.Maximize(id)
	r.notify()
	return true
}

// Restore clears both minimized and maximized, raises the window and makes it
// active.
func (r *Registry) Restore(id string) bool {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	r.topZ++
	e.Minimized = false
	e.Maximized = false
	e.ZIndex = r.topZ
	r.activeID = id
	z := r.topZ
	r.mu.Unlock()
	events.Window.Restore(id, z)
	r.notify()
	return true
}

// Focus raises the window and makes it active. The counter advances even when
// the window is already on top. Minimized and maximized flags are left alone,
// so focusing a minimized window makes an unpainted window active; callers
// that want it on screen use Restore, as the taskbar does.
func (r *Registry) Focus(id string) bool {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	r.topZ++
	e.ZIndex = r.topZ
	r.activeID = id
	z := r.topZ
	r.mu.Unlock()
	events.Window.Focus(id, z)
	r.notify()
	return true
}

// UpdatePosition overwrites the window position. Bounds are the caller's job.
func (r *Registry) UpdatePosition(id string, pos Point) bool {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	e.Position = pos
	r.mu.Unlock()
	events.Window.Move(id, pos.X, pos.Y)
	r.notify()
	return true
}

// Entry returns a copy of the entry for id.
func (r *Registry) Entry(id string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries returns copies of all entries in ascending ZIndex order.
func (r *Registry) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedLocked()
}

// TaskOrder returns copies of all entries in the order they were opened.
func (r *Registry) TaskOrder() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.entries[id])
	}
	return out
}

// ActiveID returns the focused window id, if any.
func (r *Registry) ActiveID() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeID, r.activeID != ""
}

// Len returns the number of open windows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// TopZ returns the current value of the monotonic z-counter.
func (r *Registry) TopZ() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.topZ
}

// Snapshot returns a consistent copy of registry state.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Registry) snapshotLocked() Snapshot {
	return Snapshot{
		Entries:  r.sortedLocked(),
		ActiveID: r.activeID,
		TopZ:     r.topZ,
	}
}

func (r *Registry) sortedLocked() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

func (r *Registry) notify() {
	r.subMu.Lock()
	if len(r.subs) == 0 {
		r.subMu.Unlock()
		return
	}
	ids := make([]int, 0, len(r.subs))
	for id := range r.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, r.subs[id])
	}
	r.subMu.Unlock()

	snap := r.Snapshot()
	for _, fn := range fns {
		fn(snap)
	}
}
