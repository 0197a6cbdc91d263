package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdesk/internal/surface"
	"github.com/atomicstack/termdesk/internal/taskbar"
	"github.com/atomicstack/termdesk/internal/theme"
)

// View composites the desktop back to front: background and icons, windows
// in ascending z order, the start menu and overflow list, then the taskbar
// row.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	vp := m.viewport()
	canvas := surface.NewCanvas(vp.Width, vp.Height, theme.Render(m.styles.Desktop, strings.Repeat(" ", vp.Width)))

	for _, icon := range m.icons() {
		canvas.Overlay(icon.X, icon.Y, []string{theme.Render(m.styles.DesktopIcon, icon.Label)})
	}

	snap := m.registry.Snapshot()
	for _, e := range snap.Entries {
		if !e.Visible() {
			continue
		}
		rect := surface.Layout(e, vp)
		canvas.Overlay(rect.X, rect.Y, surface.Render(e, rect, e.ID == snap.ActiveID, m.styles))
	}

	if m.menuOpen {
		r := m.menuRect()
		canvas.Overlay(r.X, r.Y, m.renderStartMenu())
	}

	bar := m.taskbarLayout()
	if m.overflowOpen {
		r := m.overflowRect(bar)
		canvas.Overlay(r.X, r.Y, m.renderOverflow(bar))
	}

	if text, ok := m.Notice(); ok && vp.Height > 0 {
		style := m.styles.Info
		if m.noticeErr {
			style = m.styles.Error
		}
		line := theme.Render(style, " "+text+" ")
		x := vp.Width - ansi.StringWidth(line)
		if x < 0 {
			x = 0
		}
		canvas.Overlay(x, vp.Height-1, []string{line})
	}

	row := bar.Render(m.styles, taskbar.Tray{User: m.session.User().DisplayName(), Now: m.clock}, m.menuOpen)
	lines := canvas.Lines()
	lines = append(lines, row)
	return strings.Join(lines, "\n")
}
