package ui

import tea "github.com/charmbracelet/bubbletea"

// maxHarnessSteps bounds how many follow-up messages one Send may process.
const maxHarnessSteps = 256

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model. The model's Init is
// not run, so the clock only advances when a test sends ticks.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned
// commands synchronously, unpacking batches.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0 && steps < maxHarnessSteps; steps++ {
		next := queue[0]
		queue = queue[1:]
		if batch, ok := next.(tea.BatchMsg); ok {
			for _, cmd := range batch {
				if cmd == nil {
					continue
				}
				if out := cmd(); out != nil {
					queue = append(queue, out)
				}
			}
			continue
		}
		mdl, cmd := h.model.Update(next)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		if cmd != nil {
			if out := cmd(); out != nil {
				queue = append(queue, out)
			}
		}
	}
}

// Click presses and releases the primary button at (x, y).
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

// Drag presses at from, moves with the button held to to, and releases.
func (h *Harness) Drag(fromX, fromY, toX, toY int) {
	h.Send(tea.MouseMsg{X: fromX, Y: fromY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: toX, Y: toY, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	h.Send(tea.MouseMsg{X: toX, Y: toY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

// Key sends a single key press.
func (h *Harness) Key(key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

// Type sends each rune as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
