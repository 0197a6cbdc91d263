// Package state holds list state for the start menu: the full item set, the
// filtered view, the cursor and the scroll offset.
package state

import (
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/menu"
)

// Level is one scrollable, filterable list of menu items.
type Level struct {
	ID             string
	Title          string
	Full           []menu.Item
	Items          []menu.Item
	Filter         string
	Cursor         int
	ViewportOffset int
	// lastCursor remembers the unfiltered cursor while a filter is active.
	lastCursor int
}

// NewLevel constructs a Level showing items with the cursor on the first row.
func NewLevel(id, title string, items []menu.Item) *Level {
	l := &Level{ID: id, Title: title, lastCursor: -1}
	l.UpdateItems(items)
	return l
}

// UpdateItems replaces the item set, keeping the filter and clamping the
// cursor.
func (l *Level) UpdateItems(items []menu.Item) {
	l.Full = cloneItems(items)
	l.applyFilter()
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the filtered index of id, or -1.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// SetFilter replaces the query. Entering a filter jumps to the best match;
// clearing it puts the cursor back where it was.
func (l *Level) SetFilter(query string) {
	was := l.Filter != ""
	now := query != ""
	if now && !was {
		l.lastCursor = l.Cursor
	}
	l.Filter = query
	l.applyFilter()
	switch {
	case now:
		if idx := BestMatchIndex(l.Items, query); idx >= 0 {
			l.Cursor = idx
		}
	case was:
		l.Cursor = 0
		if l.lastCursor >= 0 && l.lastCursor < len(l.Items) {
			l.Cursor = l.lastCursor
		}
		l.lastCursor = -1
	}
}

// AppendFilter types text at the end of the query.
func (l *Level) AppendFilter(text string) bool {
	if text == "" {
		return false
	}
	l.SetFilter(l.Filter + text)
	events.Filter.Append(l.ID, l.Filter)
	return true
}

// BackspaceFilter removes the last rune of the query.
func (l *Level) BackspaceFilter() bool {
	runes := []rune(l.Filter)
	if len(runes) == 0 {
		return false
	}
	l.SetFilter(string(runes[:len(runes)-1]))
	events.Filter.Backspace(l.ID, l.Filter)
	return true
}

// ClearFilter drops the query entirely.
func (l *Level) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("")
	events.Filter.Cleared(l.ID)
	return true
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// MoveCursor moves by delta rows, wrapping around either end.
func (l *Level) MoveCursor(delta int) bool {
	n := len(l.Items)
	if n == 0 || delta == 0 {
		return false
	}
	old := l.Cursor
	l.Cursor = ((l.Cursor+delta)%n + n) % n
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = len(l.Items) - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves up one page without wrapping.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.clampMove(-pageSize(len(l.Items), maxVisible))
}

// MoveCursorPageDown moves down one page without wrapping.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.clampMove(pageSize(len(l.Items), maxVisible))
}

func (l *Level) clampMove(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(l.Cursor+delta, 0, len(l.Items)-1)
	return old != l.Cursor
}

func pageSize(total, maxVisible int) int {
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible scrolls so the cursor row lies within maxVisible rows.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 || maxVisible <= 0 {
		l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	l.ViewportOffset = clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor >= l.ViewportOffset+maxVisible {
		l.ViewportOffset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
}

// Visible returns the rows currently scrolled into view.
func (l *Level) Visible(maxVisible int) []menu.Item {
	if maxVisible <= 0 || maxVisible >= len(l.Items) {
		return l.Items
	}
	end := l.ViewportOffset + maxVisible
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.ViewportOffset:end]
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
