package state

// Point is a cell offset from the top-left corner of the desktop.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Content produces the view hosted inside a window. The registry stores it
// but never calls or inspects it.
type Content interface {
	View(width, height int) string
}

// ContentFunc adapts a plain render callback to Content.
type ContentFunc func(width, height int) string

// View implements Content.
func (f ContentFunc) View(width, height int) string {
	if f == nil {
		return ""
	}
	return f(width, height)
}

// Descriptor is the caller-supplied request used to open a window.
type Descriptor struct {
	ID       string
	Title    string
	Icon     string
	Content  Content
	Position Point
	Size     Size
}

// Entry is the registry record for one open window.
type Entry struct {
	ID        string
	Title     string
	Icon      string
	Content   Content
	Position  Point
	Size      Size
	Minimized bool
	Maximized bool
	ZIndex    int
}

// Visible reports whether the entry is painted at all.
func (e Entry) Visible() bool {
	return !e.Minimized
}

// Snapshot is a point-in-time copy of registry state handed to observers.
type Snapshot struct {
	// Entries are ordered by ascending ZIndex (paint order).
	Entries  []Entry
	ActiveID string
	TopZ     int
}

// Active returns the active entry, if any.
func (s Snapshot) Active() (Entry, bool) {
	if s.ActiveID == "" {
		return Entry{}, false
	}
	for _, e := range s.Entries {
		if e.ID == s.ActiveID {
			return e, true
		}
	}
	return Entry{}, false
}

func newEntry(d Descriptor, z int) *Entry {
	return &Entry{
		ID:       d.ID,
		Title:    d.Title,
		Icon:     d.Icon,
		Content:  d.Content,
		Position: d.Position,
		Size:     d.Size,
		ZIndex:   z,
	}
}
