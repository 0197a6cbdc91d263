package menu

import (
	"math/rand"
	"strings"
	"unicode"

	"github.com/atomicstack/termdesk/internal/api"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/theme"
)

// Item represents a selectable start menu row.
type Item struct {
	ID    string
	Label string
}

// Audience controls who sees a launcher entry.
type Audience int

const (
	// AudienceGuest entries are always visible.
	AudienceGuest Audience = iota
	// AudienceUser entries need a signed-in session.
	AudienceUser
	// AudienceAdmin entries need the admin role.
	AudienceAdmin
)

func (a Audience) String() string {
	switch a {
	case AudienceUser:
		return "user"
	case AudienceAdmin:
		return "admin"
	default:
		return "guest"
	}
}

// Allows reports whether u may see entries for this audience.
func (a Audience) Allows(u state.User) bool {
	switch a {
	case AudienceGuest:
		return true
	case AudienceUser:
		return u.SignedIn()
	case AudienceAdmin:
		return u.SignedIn() && u.Role == state.RoleAdmin
	}
	return false
}

// Env carries the runtime services a hosted app may need when it is built.
type Env struct {
	Client *api.Client
	Data   state.DataStore
	Rand   *rand.Rand
	User   state.User
	Styles *theme.Styles
}

// Factory builds the content for a freshly opened window.
type Factory func(Env) state.Content

// Entry is a launchable application, shown as a desktop icon and a start
// menu row.
type Entry struct {
	ID       string
	Title    string
	Icon     string
	Label    string
	Audience Audience
	// Size overrides the launcher's default window size when non-zero.
	Size state.Size
	New  Factory
	// Inert entries are listed but open nothing.
	Inert bool
}

// DisplayLabel returns the text shown under a desktop icon.
func (e Entry) DisplayLabel() string {
	if e.Label != "" {
		return e.Label
	}
	if e.Title != "" {
		return e.Title
	}
	return prettyLabel(e.ID)
}

// Item converts the entry for the start menu list.
func (e Entry) Item() Item {
	label := e.DisplayLabel()
	if e.Icon != "" {
		label = e.Icon + " " + label
	}
	return Item{ID: e.ID, Label: label}
}

// OpenRequest asks the desktop to open (or raise) a window. Hosted apps
// return it from their commands to spawn related windows.
type OpenRequest struct {
	Descriptor state.Descriptor
	// Placed keeps Descriptor.Position as given, the origin included.
	// Otherwise the launcher picks a jittered position.
	Placed bool
}

// ActionResult communicates the outcome of a launcher action.
type ActionResult struct {
	Info string
	Err  error
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
