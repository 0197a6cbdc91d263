package menu

import (
	"fmt"

	"github.com/atomicstack/termdesk/internal/state"
)

// Catalog is the ordered set of launchable entries.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// NewCatalog builds a catalog, rejecting empty or duplicate ids.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if err := c.Add(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustCatalog is NewCatalog for static tables; it panics on error.
func MustCatalog(entries ...Entry) *Catalog {
	c, err := NewCatalog(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Add appends an entry.
func (c *Catalog) Add(e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("catalog entry %q has no id", e.Title)
	}
	if _, dup := c.index[e.ID]; dup {
		return fmt.Errorf("duplicate catalog entry %q", e.ID)
	}
	c.index[e.ID] = len(c.entries)
	c.entries = append(c.entries, e)
	return nil
}

// Find locates an entry by id.
func (c *Catalog) Find(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns every entry in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Visible returns the entries u is allowed to see, in catalog order.
func (c *Catalog) Visible(u state.User) []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Audience.Allows(u) {
			out = append(out, e)
		}
	}
	return out
}

// Items converts the visible entries for the start menu list.
func (c *Catalog) Items(u state.User) []Item {
	visible := c.Visible(u)
	items := make([]Item, 0, len(visible))
	for _, e := range visible {
		items = append(items, e.Item())
	}
	return items
}
