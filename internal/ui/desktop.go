package ui

import (
	"github.com/atomicstack/termdesk/internal/menu"
)

const (
	iconWidth    = 16
	iconColumn   = iconWidth + 2
	iconRowPitch = 2
	iconMarginX  = 1
	iconMarginY  = 1
)

// desktopIcon is one launcher entry painted on the desktop background.
type desktopIcon struct {
	ID    string
	Label string
	X, Y  int
}

// icons lays out the visible catalog entries top to bottom, then left to
// right.
func (m *Model) icons() []desktopIcon {
	vp := m.viewport()
	perColumn := (vp.Height - iconMarginY) / iconRowPitch
	if perColumn < 1 {
		return nil
	}
	entries := m.catalog.Visible(m.session.User())
	out := make([]desktopIcon, 0, len(entries))
	for i, e := range entries {
		col, row := i/perColumn, i%perColumn
		x := iconMarginX + col*iconColumn
		if x+iconWidth > vp.Width {
			break
		}
		out = append(out, desktopIcon{
			ID:    e.ID,
			Label: iconLabel(e),
			X:     x,
			Y:     iconMarginY + row*iconRowPitch,
		})
	}
	return out
}

func iconLabel(e menu.Entry) string {
	label := e.DisplayLabel()
	if e.Icon != "" {
		label = e.Icon + " " + label
	}
	return fitCells(label, iconWidth)
}

func (m *Model) iconAt(x, y int) (desktopIcon, bool) {
	for _, icon := range m.icons() {
		if y == icon.Y && x >= icon.X && x < icon.X+iconWidth {
			return icon, true
		}
	}
	return desktopIcon{}, false
}
