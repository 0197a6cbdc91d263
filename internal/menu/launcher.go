package menu

import (
	"math/rand"

	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/state"
)

// Rand is the slice of math/rand the jitter needs. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

var (
	DefaultJitterBase = state.Point{X: 10, Y: 2}
	DefaultJitterSpan = state.Point{X: 10, Y: 3}
	DefaultWindowSize = state.Size{Width: 64, Height: 18}
)

// Jitter places new windows at a random offset so successive launches do
// not stack exactly on top of each other. Both bounds are inclusive.
type Jitter struct {
	Base state.Point
	Span state.Point
	Rand Rand
}

// DefaultJitter returns the stock placement: columns 10–20, rows 2–5.
func DefaultJitter(r Rand) Jitter {
	return Jitter{Base: DefaultJitterBase, Span: DefaultJitterSpan, Rand: r}
}

// Place picks a position in [Base, Base+Span] on each axis.
func (j Jitter) Place() state.Point {
	r := j.Rand
	if r == nil {
		r = globalRand{}
	}
	pos := j.Base
	if j.Span.X > 0 {
		pos.X += r.Intn(j.Span.X + 1)
	}
	if j.Span.Y > 0 {
		pos.Y += r.Intn(j.Span.Y + 1)
	}
	return pos
}

// Launcher turns catalog entries into window descriptors.
type Launcher struct {
	Jitter      Jitter
	DefaultSize state.Size
}

// NewLauncher returns a launcher with the stock window size.
func NewLauncher(j Jitter) *Launcher {
	return &Launcher{Jitter: j, DefaultSize: DefaultWindowSize}
}

// Descriptor builds the open request for e, constructing fresh content.
func (l *Launcher) Descriptor(e Entry, env Env) state.Descriptor {
	size := e.Size
	if size.Width == 0 || size.Height == 0 {
		size = l.DefaultSize
		if size.Width == 0 || size.Height == 0 {
			size = DefaultWindowSize
		}
	}
	var content state.Content
	if e.New != nil {
		content = e.New(env)
	}
	return state.Descriptor{
		ID:       e.ID,
		Title:    e.Title,
		Icon:     e.Icon,
		Content:  content,
		Position: l.Jitter.Place(),
		Size:     size,
	}
}

// Launch opens e in reg. A window that is already open is raised and keeps
// its content, position and size.
func (l *Launcher) Launch(reg *state.Registry, e Entry, env Env) bool {
	if e.Inert {
		return false
	}
	if existing, ok := reg.Entry(e.ID); ok {
		events.Launcher.Launch(e.ID, existing.Position.X, existing.Position.Y)
		return reg.Open(state.Descriptor{ID: e.ID})
	}
	d := l.Descriptor(e, env)
	events.Launcher.Launch(e.ID, d.Position.X, d.Position.Y)
	return reg.Open(d)
}

// Complete fills in the default size for a descriptor built elsewhere (an
// OpenRequest from a hosted app), and a jittered position unless placed.
func (l *Launcher) Complete(d state.Descriptor, placed bool) state.Descriptor {
	if !placed {
		d.Position = l.Jitter.Place()
	}
	if d.Size.Width == 0 || d.Size.Height == 0 {
		d.Size = l.DefaultSize
		if d.Size.Width == 0 || d.Size.Height == 0 {
			d.Size = DefaultWindowSize
		}
	}
	return d
}
