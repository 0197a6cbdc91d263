package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/surface"
	"github.com/atomicstack/termdesk/internal/theme"
	uistate "github.com/atomicstack/termdesk/internal/ui/state"
)

const (
	menuWidth      = 32
	menuChromeRows = 2 // header and filter
	maxMenuRows    = 12
	menuEllipsis   = "…"
)

// menuRows is the number of item rows the start menu may show.
func (m *Model) menuRows() int {
	rows := m.viewport().Height - menuChromeRows
	if rows > maxMenuRows {
		rows = maxMenuRows
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// menuRect is the start menu's box, anchored above the start button.
func (m *Model) menuRect() surface.Rect {
	rows := len(m.startMenu.Visible(m.menuRows()))
	if rows == 0 {
		rows = 1
	}
	h := menuChromeRows + rows
	y := m.viewport().Height - h
	if y < 0 {
		y = 0
	}
	w := menuWidth
	if w > m.width {
		w = m.width
	}
	return surface.Rect{X: 0, Y: y, Width: w, Height: h}
}

func (m *Model) setMenuOpen(open bool) {
	if m.menuOpen == open {
		return
	}
	m.menuOpen = open
	if open {
		m.setOverflowOpen(false)
		m.startMenu = uistate.NewLevel(startMenuID, startMenuTitle, m.catalog.Items(m.session.User()))
		m.startMenu.EnsureCursorVisible(m.menuRows())
	}
	events.Launcher.Toggle(open)
}

// ToggleMenu opens or closes the start menu.
func (m *Model) ToggleMenu() {
	m.setMenuOpen(!m.menuOpen)
}

// menuItemAt maps a desktop cell to a start menu row index.
func (m *Model) menuItemAt(x, y int) (int, bool) {
	r := m.menuRect()
	if !r.Contains(x, y) {
		return -1, false
	}
	row := y - r.Y - menuChromeRows
	idx := m.startMenu.ViewportOffset + row
	if row < 0 || idx >= len(m.startMenu.Items) {
		return -1, true
	}
	return idx, true
}

// activateMenuItem launches the entry at idx and closes the menu.
func (m *Model) activateMenuItem(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.startMenu.Items) {
		return nil
	}
	item := m.startMenu.Items[idx]
	m.setMenuOpen(false)
	e, ok := m.catalog.Find(item.ID)
	if !ok {
		return nil
	}
	return m.launch(e)
}

func (m *Model) handleMenuKey(key tea.KeyMsg) tea.Cmd {
	l := m.startMenu
	rows := m.menuRows()
	switch key.String() {
	case "esc":
		if !l.ClearFilter() {
			m.setMenuOpen(false)
		}
	case "enter":
		return m.activateMenuItem(l.Cursor)
	case "up", "ctrl+p":
		l.MoveCursor(-1)
	case "down", "ctrl+n":
		l.MoveCursor(1)
	case "home":
		l.MoveCursorHome()
	case "end":
		l.MoveCursorEnd()
	case "pgup":
		l.MoveCursorPageUp(rows)
	case "pgdown":
		l.MoveCursorPageDown(rows)
	case "ctrl+u":
		l.ClearFilter()
	case "backspace", "ctrl+h":
		l.BackspaceFilter()
	default:
		switch key.Type {
		case tea.KeySpace:
			l.AppendFilter(" ")
		case tea.KeyRunes:
			if !key.Alt {
				l.AppendFilter(string(key.Runes))
			}
		}
	}
	l.EnsureCursorVisible(rows)
	return nil
}

func (m *Model) renderStartMenu() []string {
	r := m.menuRect()
	w := r.Width
	if w <= 0 {
		return nil
	}
	l := m.startMenu
	lines := make([]string, 0, r.Height)
	lines = append(lines, theme.Render(m.styles.MenuHeader, fitCells(" 👤 "+m.session.User().DisplayName(), w)))
	if l.Filter == "" {
		lines = append(lines, theme.Render(m.styles.FilterPlaceholder, fitCells(" 🔎 type to search", w)))
	} else {
		lines = append(lines, theme.Render(m.styles.FilterPrompt, fitCells(" 🔎 "+l.Filter, w)))
	}
	visible := l.Visible(m.menuRows())
	if len(visible) == 0 {
		lines = append(lines, theme.Render(m.styles.MenuItem, fitCells(" no matches", w)))
		return lines
	}
	for i, item := range visible {
		style := m.styles.MenuItem
		if l.ViewportOffset+i == l.Cursor {
			style = m.styles.MenuSelected
		}
		lines = append(lines, theme.Render(style, fitCells(" "+item.Label, w)))
	}
	return lines
}

// fitCells clips s to width cells with an ellipsis and pads it to width.
func fitCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, menuEllipsis)
	}
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
