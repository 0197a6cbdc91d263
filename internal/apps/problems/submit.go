package problems

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdesk/internal/api"
	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/logging"
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/theme"
)

// Submitter records solutions. state.DataStore satisfies it.
type Submitter interface {
	Submit(state.NewSubmission) (state.Submission, error)
}

// Languages are the choices offered by the submit window, in cycling order.
var Languages = []string{"JavaScript", "Python", "C++", "Java"}

// SubmitSize is the window size used for submit windows.
var SubmitSize = state.Size{Width: 64, Height: 18}

// FlashDuration is how long the confirmation stays up after a submit.
const FlashDuration = 2 * time.Second

type flashDoneMsg struct{ gen int }

// Submit is the solution form for one problem.
type Submit struct {
	submitter Submitter
	problem   api.Problem
	cases     int
	language  int
	code      textarea.Model
	last      *state.Submission
	flash     bool
	err       error
	gen       int
	styles    *theme.Styles
}

// SubmitID is the window id of a problem's submit window.
func SubmitID(id int64) string {
	return "submit-" + strconv.FormatInt(id, 10)
}

// NewSubmit returns a form for p. cases is the number of known test cases
// and is only shown in the header.
func NewSubmit(submitter Submitter, p api.Problem, cases int, styles *theme.Styles) *Submit {
	if styles == nil {
		styles = theme.Default()
	}
	code := textarea.New()
	code.ShowLineNumbers = true
	code.CharLimit = 0
	code.MaxHeight = 0
	code.Prompt = ""
	code.Placeholder = "Write your solution here..."
	code.Focus()
	return &Submit{submitter: submitter, problem: p, cases: cases, code: code, styles: styles}
}

func (s *Submit) Language() string { return Languages[s.language] }
func (s *Submit) Code() string { return s.code.Value() }
func (s *Submit) Err() error { return s.err }
func (s *Submit) Flashing() bool { return s.flash }
func (s *Submit) Last() (state.Submission, bool) {
	if s.last == nil {
		return state.Submission{}, false
	}
	return *s.last, true
}

// SetCode replaces the editor contents.
func (s *Submit) SetCode(code string) { s.code.SetValue(code) }

// NextLanguage cycles to the following language.
func (s *Submit) NextLanguage() {
	s.language = (s.language + 1) % len(Languages)
}

// Send records the current code. Empty code is refused with an error and
// nothing is recorded.
func (s *Submit) Send() tea.Cmd {
	if s.submitter == nil {
		s.err = api.ErrNoClient
		return nil
	}
	sub, err := s.submitter.Submit(state.NewSubmission{
		ProblemID:    s.problem.ID,
		ProblemTitle: s.problem.Title,
		Code:         s.code.Value(),
		Language:     s.Language(),
	})
	events.Content.Submit(s.problem.ID, s.Language(), string(sub.Status), err)
	if err != nil {
		if !errors.Is(err, state.ErrMissingField) {
			logging.Error(err)
		}
		s.err = err
		return nil
	}
	s.err = nil
	s.last = &sub
	s.flash = true
	s.gen++
	gen := s.gen
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg { return flashDoneMsg{gen: gen} })
}

// Update implements appkit.Interactive.
func (s *Submit) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case flashDoneMsg:
		if msg.gen == s.gen {
			s.flash = false
		}
		return nil
	case appkit.Click:
		if msg.Y == 0 {
			return s.clickToolbar(msg.X)
		}
		return nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			return s.Send()
		case "ctrl+l", "tab":
			s.NextLanguage()
			return nil
		}
	}
	var cmd tea.Cmd
	s.code, cmd = s.code.Update(msg)
	return cmd
}

func toolbarLabels() []string {
	labels := make([]string, 0, len(Languages)+1)
	for _, l := range Languages {
		labels = append(labels, "["+l+"]")
	}
	return append(labels, "[Submit]")
}

func (s *Submit) clickToolbar(x int) tea.Cmd {
	start := 0
	for i, label := range toolbarLabels() {
		end := start + ansi.StringWidth(label)
		if x >= start && x < end {
			if i == len(Languages) {
				return s.Send()
			}
			s.language = i
			return nil
		}
		start = end + 1
	}
	return nil
}

// View implements state.Content.
func (s *Submit) View(width, height int) string {
	editorRows := height - 4
	if editorRows < 1 {
		editorRows = 1
	}
	s.code.SetWidth(width)
	s.code.SetHeight(editorRows)

	labels := toolbarLabels()
	labels[s.language] = theme.Render(s.styles.Highlight, labels[s.language])
	var sb strings.Builder
	sb.WriteString(strings.Join(labels, " "))
	sb.WriteString("\n")
	sb.WriteString(theme.Render(s.styles.Info, fmt.Sprintf("%s · %s · %d test case(s)", s.problem.Title, s.problem.Difficulty, s.cases)))
	sb.WriteString("\n")
	sb.WriteString(s.code.View())
	sb.WriteString("\n")
	switch {
	case errors.Is(s.err, state.ErrMissingField):
		sb.WriteString(theme.Render(s.styles.Error, "✗ Please write some code"))
	case s.err != nil:
		sb.WriteString(theme.Render(s.styles.Error, "✗ "+s.err.Error()))
	case s.flash:
		sb.WriteString(theme.Render(s.styles.Success, "✓ Submitted!"))
	case s.last != nil:
		sb.WriteString(theme.Render(s.styles.Info, fmt.Sprintf("Last: %s (%s)", s.last.Status, s.last.Language)))
	default:
		sb.WriteString(theme.Render(s.styles.Info, "ctrl+s submit · tab language"))
	}
	return appkit.Fit(sb.String(), width, height)
}
