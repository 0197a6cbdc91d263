// Package apps assembles the launcher catalog from the hosted applications.
package apps

import (
	"math/rand"

	"github.com/atomicstack/termdesk/internal/apps/admin"
	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/apps/coderunner"
	"github.com/atomicstack/termdesk/internal/apps/mathquiz"
	"github.com/atomicstack/termdesk/internal/apps/memory"
	"github.com/atomicstack/termdesk/internal/apps/paint"
	"github.com/atomicstack/termdesk/internal/apps/problems"
	"github.com/atomicstack/termdesk/internal/apps/scramble"
	"github.com/atomicstack/termdesk/internal/apps/slider"
	"github.com/atomicstack/termdesk/internal/apps/submissions"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/state"
)

// Entries returns the launcher entries in desktop icon order.
func Entries() []menu.Entry {
	return []menu.Entry{
		{
			ID: "coderunner", Title: "Code Runner - Java/C++", Icon: "💻", Label: "Code Runner",
			Audience: menu.AudienceGuest,
			Size:     state.Size{Width: 72, Height: 22},
			New: func(env menu.Env) state.Content {
				return coderunner.New(env.Client, env.Styles)
			},
		},
		{
			ID: "paint", Title: "Paint", Icon: "🎨",
			Audience: menu.AudienceGuest,
			New: func(env menu.Env) state.Content {
				return paint.New(env.Styles)
			},
		},
		{
			ID: "problems", Title: "Problems", Icon: "📚",
			Audience: menu.AudienceUser,
			Size:     state.Size{Width: 64, Height: 17},
			New: func(env menu.Env) state.Content {
				return problems.New(env.Client, env.Data, env.Styles)
			},
		},
		{
			ID: "submissions", Title: "My Submissions", Icon: "📋",
			Audience: menu.AudienceUser,
			Size:     state.Size{Width: 72, Height: 16},
			New: func(env menu.Env) state.Content {
				return submissions.New(env.Data, env.Styles)
			},
		},
		{
			ID: "memory", Title: "Memory Game", Icon: "🎴",
			Audience: menu.AudienceUser,
			Size:     state.Size{Width: 40, Height: 16},
			New: func(env menu.Env) state.Content {
				return memory.New(derive(env.Rand), env.Styles)
			},
		},
		{
			ID: "math", Title: "Math Challenge", Icon: "🧮", Label: "Math Puzzle",
			Audience: menu.AudienceUser,
			Size:     state.Size{Width: 44, Height: 14},
			New: func(env menu.Env) state.Content {
				return mathquiz.New(derive(env.Rand), env.Styles)
			},
		},
		{
			ID: "wordscramble", Title: "Word Scramble", Icon: "🔤",
			Audience: menu.AudienceUser,
			Size:     state.Size{Width: 44, Height: 14},
			New: func(env menu.Env) state.Content {
				return scramble.New(derive(env.Rand), env.Styles)
			},
		},
		{
			ID: "slidingpuzzle", Title: "Sliding Puzzle", Icon: "🧩",
			Audience: menu.AudienceUser,
			Size:     state.Size{Width: 40, Height: 17},
			New: func(env menu.Env) state.Content {
				return slider.New(derive(env.Rand), env.Styles)
			},
		},
		{
			ID: "admin", Title: "Admin Panel", Icon: "⚙️",
			Audience: menu.AudienceAdmin,
			Size:     state.Size{Width: 66, Height: 22},
			New: func(env menu.Env) state.Content {
				return admin.New(env.Data, env.Styles)
			},
		},
		{ID: "recycle-bin", Title: "Recycle Bin", Icon: "🗑️", Audience: menu.AudienceGuest, Inert: true},
	}
}

// Catalog returns the default launcher catalog.
func Catalog() *menu.Catalog {
	return menu.MustCatalog(Entries()...)
}

// derive gives each window its own source so games opened from the same
// seed still diverge.
func derive(r *rand.Rand) *rand.Rand {
	return rand.New(rand.NewSource(appkit.Rand(r).Int63()))
}
