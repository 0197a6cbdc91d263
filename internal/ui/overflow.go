package ui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/surface"
	"github.com/atomicstack/termdesk/internal/taskbar"
	"github.com/atomicstack/termdesk/internal/theme"
)

const overflowMaxWidth = 28

// overflowRect is the list of windows that did not fit on the taskbar,
// anchored above the overflow button. It is empty when nothing overflows.
func (m *Model) overflowRect(bar taskbar.Bar) surface.Rect {
	vp := m.viewport()
	if len(bar.Hidden) == 0 || vp.Height <= 0 {
		return surface.Rect{}
	}
	w := 0
	for _, e := range bar.Hidden {
		if lw := ansi.StringWidth(overflowLabel(e)) + 1; lw > w {
			w = lw
		}
	}
	if w > overflowMaxWidth {
		w = overflowMaxWidth
	}
	if w > m.width {
		w = m.width
	}
	h := len(bar.Hidden)
	if h > vp.Height {
		h = vp.Height
	}
	x := bar.Overflow.X
	if x+w > m.width {
		x = m.width - w
	}
	if x < 0 {
		x = 0
	}
	return surface.Rect{X: x, Y: vp.Height - h, Width: w, Height: h}
}

func overflowLabel(e state.Entry) string {
	label := " "
	if e.Icon != "" {
		label += e.Icon + " "
	}
	label += e.Title
	if e.Minimized {
		label += " (min)"
	}
	return label
}

func (m *Model) setOverflowOpen(open bool) {
	if m.overflowOpen == open {
		return
	}
	m.overflowOpen = open
	events.Taskbar.Overflow(open, len(m.taskbarLayout().Hidden))
}

// overflowEntryAt maps a desktop cell to a hidden window id.
func (m *Model) overflowEntryAt(x, y int) (string, bool) {
	bar := m.taskbarLayout()
	r := m.overflowRect(bar)
	if !r.Contains(x, y) {
		return "", false
	}
	row := y - r.Y
	if row < 0 || row >= len(bar.Hidden) {
		return "", true
	}
	return bar.Hidden[row].ID, true
}

func (m *Model) renderOverflow(bar taskbar.Bar) []string {
	r := m.overflowRect(bar)
	if r.Width <= 0 {
		return nil
	}
	active, _ := m.registry.ActiveID()
	lines := make([]string, 0, r.Height)
	for _, e := range bar.Hidden[:r.Height] {
		style := m.styles.MenuItem
		if e.ID == active && !e.Minimized {
			style = m.styles.MenuSelected
		}
		lines = append(lines, theme.Render(style, fitCells(overflowLabel(e), r.Width)))
	}
	return lines
}
