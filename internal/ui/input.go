package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/surface"
	"github.com/atomicstack/termdesk/internal/taskbar"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c":
		events.App.Quit("ctrl+c")
		return tea.Quit
	case "f1", "ctrl+o":
		m.ToggleMenu()
		return nil
	}
	if m.menuOpen {
		return m.handleMenuKey(key)
	}
	if m.overflowOpen && key.Type == tea.KeyEsc {
		m.setOverflowOpen(false)
		return nil
	}
	if id, ok := m.registry.ActiveID(); ok {
		return m.deliver(id, key)
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.handlePress(mouse.X, mouse.Y)
	case tea.MouseActionMotion:
		m.surfaces.Motion(mouse.X, mouse.Y, mouse.Button == tea.MouseButtonLeft)
	case tea.MouseActionRelease:
		m.surfaces.Release(mouse.X, mouse.Y)
	}
	return nil
}

// handlePress routes a primary press: start menu, taskbar overflow list,
// taskbar, windows from the top down, then desktop icons.
func (m *Model) handlePress(x, y int) tea.Cmd {
	if m.overflowOpen {
		if id, inside := m.overflowEntryAt(x, y); inside {
			m.setOverflowOpen(false)
			if id != "" {
				taskbar.Activate(m.registry, id)
			}
			return nil
		}
		m.setOverflowOpen(false)
		if y == m.taskbarRow() && m.taskbarLayout().HitTest(x).Kind == taskbar.HitOverflow {
			return nil
		}
	}
	if m.menuOpen {
		if idx, inside := m.menuItemAt(x, y); inside {
			return m.activateMenuItem(idx)
		}
		if y == m.taskbarRow() {
			if hit := m.taskbarLayout().HitTest(x); hit.Kind == taskbar.HitStart {
				m.setMenuOpen(false)
				return nil
			}
		}
		m.setMenuOpen(false)
	}

	if y == m.taskbarRow() {
		hit := m.taskbarLayout().HitTest(x)
		switch hit.Kind {
		case taskbar.HitStart:
			m.ToggleMenu()
		case taskbar.HitWindow:
			taskbar.Activate(m.registry, hit.ID)
		case taskbar.HitOverflow:
			m.setMenuOpen(false)
			m.setOverflowOpen(true)
		}
		return nil
	}

	out := m.surfaces.Press(x, y)
	if out.Handled {
		if out.Region == surface.RegionBody && out.Click != nil {
			return m.deliver(out.ID, appkit.Click{X: out.Click.X, Y: out.Click.Y})
		}
		return nil
	}

	if icon, ok := m.iconAt(x, y); ok {
		return m.Launch(icon.ID)
	}
	return nil
}

func (m *Model) taskbarRow() int {
	return m.height - taskbar.Height
}

func (m *Model) taskbarLayout() taskbar.Bar {
	active, _ := m.registry.ActiveID()
	return taskbar.Layout(m.width, m.registry.TaskOrder(), active)
}
