package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/ui/command"
)

// deliver hands msg to the content of window id and wraps whatever command it
// returns so the result comes back to the same window.
func (m *Model) deliver(id string, msg tea.Msg) tea.Cmd {
	e, ok := m.registry.Entry(id)
	if !ok {
		return nil
	}
	interactive, ok := e.Content.(appkit.Interactive)
	if !ok {
		return nil
	}
	return m.bus.Wrap(id, interactive.Update(msg))
}

// broadcast delivers msg to every open window in paint order.
func (m *Model) broadcast(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.registry.Entries() {
		if cmd := m.deliver(e.ID, msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (m *Model) handleEnvelope(msg tea.Msg) tea.Cmd {
	env, ok := msg.(command.Envelope)
	if !ok {
		return nil
	}
	if isDesktopMsg(env.Msg) {
		if handler := m.handlerFor(env.Msg); handler != nil {
			return handler(env.Msg)
		}
		return nil
	}
	if _, ok := m.registry.Entry(env.ID); !ok {
		events.Command.Dropped(env.ID, fmt.Sprintf("%T", env.Msg))
		return nil
	}
	return m.deliver(env.ID, env.Msg)
}

// isDesktopMsg reports messages that content sends to the desktop rather
// than to itself.
func isDesktopMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case menu.OpenRequest, menu.ActionResult:
		return true
	}
	return false
}

func (m *Model) handleOpenRequest(msg tea.Msg) tea.Cmd {
	req, ok := msg.(menu.OpenRequest)
	if !ok || req.Descriptor.ID == "" {
		return nil
	}
	_, existed := m.registry.Entry(req.Descriptor.ID)
	if existed {
		m.registry.Open(state.Descriptor{ID: req.Descriptor.ID})
		return nil
	}
	m.registry.Open(m.launcher.Complete(req.Descriptor, req.Placed))
	return m.initContent(req.Descriptor.ID)
}

// launch opens (or raises) the window for a catalog entry.
func (m *Model) launch(e menu.Entry) tea.Cmd {
	if e.Inert {
		m.setNotice(e.DisplayLabel()+" is empty.", false)
		return nil
	}
	if !e.Audience.Allows(m.session.User()) {
		m.setNotice("Sign in to open "+e.DisplayLabel()+".", true)
		return nil
	}
	_, existed := m.registry.Entry(e.ID)
	if !m.launcher.Launch(m.registry, e, m.env) {
		return nil
	}
	if existed {
		return nil
	}
	return m.initContent(e.ID)
}

// Launch opens the catalog entry id, as a desktop icon click would.
func (m *Model) Launch(id string) tea.Cmd {
	e, ok := m.catalog.Find(id)
	if !ok {
		return nil
	}
	return m.launch(e)
}

func (m *Model) initContent(id string) tea.Cmd {
	e, ok := m.registry.Entry(id)
	if !ok {
		return nil
	}
	init, ok := e.Content.(appkit.Initializer)
	if !ok {
		return nil
	}
	return m.bus.Wrap(id, init.Init())
}
