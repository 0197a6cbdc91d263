// Package command routes the commands returned by hosted content back to the
// window that produced them.
package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/logging/events"
)

// Envelope is a content message addressed to the window id it came from.
type Envelope struct {
	ID  string
	Msg tea.Msg
}

// Bus coordinates the execution of content commands.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Wrap turns cmd into a command whose result comes back as an Envelope for
// id. Batches are unpacked so every member is wrapped as well.
func (b *Bus) Wrap(id string, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	events.Command.Queue(id, "content")
	return func() tea.Msg {
		msg := cmd()
		if msg == nil {
			events.Command.Skip(id, "content")
			return nil
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			wrapped := make(tea.BatchMsg, 0, len(batch))
			for _, c := range batch {
				if w := b.Wrap(id, c); w != nil {
					wrapped = append(wrapped, w)
				}
			}
			return wrapped
		}
		events.Command.Result(id, "content", fmt.Sprintf("%T", msg))
		return Envelope{ID: id, Msg: msg}
	}
}
