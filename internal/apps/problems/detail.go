package problems

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/termdesk/internal/api"
	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/theme"
)

type detailMsg struct {
	gen     int
	problem api.Problem
	cases   []api.TestCase
	err     error
}

// Detail shows one problem with its sample test cases.
type Detail struct {
	source  Source
	submit  Submitter
	problem api.Problem
	cases   []api.TestCase
	loading bool
	err     error
	offset  int
	gen     int
	styles  *theme.Styles
}

// NewDetail returns a detail view seeded with the list row; Init refreshes
// it from the server.
func NewDetail(source Source, submit Submitter, p api.Problem, styles *theme.Styles) *Detail {
	if styles == nil {
		styles = theme.Default()
	}
	return &Detail{source: source, submit: submit, problem: p, styles: styles}
}

func (d *Detail) Problem() api.Problem { return d.problem }
func (d *Detail) TestCases() []api.TestCase { return d.cases }
func (d *Detail) Loading() bool { return d.loading }
func (d *Detail) Err() error { return d.err }

// Init implements appkit.Initializer.
func (d *Detail) Init() tea.Cmd {
	d.gen++
	gen := d.gen
	d.loading = true
	source := d.source
	id := d.problem.ID
	return func() tea.Msg {
		if source == nil {
			return detailMsg{gen: gen, err: api.ErrNoClient}
		}
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		p, err := source.GetProblem(ctx, id)
		if err != nil {
			return detailMsg{gen: gen, err: err}
		}
		cases, err := source.ListTestCases(ctx, id)
		return detailMsg{gen: gen, problem: p, cases: cases, err: err}
	}
}

// Update implements appkit.Interactive.
func (d *Detail) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case detailMsg:
		if msg.gen != d.gen {
			return nil
		}
		d.loading = false
		d.err = msg.err
		events.Content.Load("problem-detail", 0, msg.err)
		if msg.problem.ID != 0 {
			d.problem = msg.problem
		}
		if msg.err == nil {
			d.cases = msg.cases
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if d.offset > 0 {
				d.offset--
			}
		case "down", "j":
			d.offset++
		case "r":
			return d.Init()
		case "s":
			return d.OpenSubmit()
		}
	}
	return nil
}

// OpenSubmit asks the desktop to open the submit window for this problem.
func (d *Detail) OpenSubmit() tea.Cmd {
	p := d.problem
	desc := state.Descriptor{
		ID:      SubmitID(p.ID),
		Title:   "Submit - " + p.Title,
		Icon:    "📤",
		Content: NewSubmit(d.submit, p, len(d.cases), d.styles),
		Size:    SubmitSize,
	}
	return func() tea.Msg { return menu.OpenRequest{Descriptor: desc} }
}

func (d *Detail) body(width int) []string {
	p := d.problem
	var sb strings.Builder
	sb.WriteString(theme.Render(d.styles.MenuHeader, fmt.Sprintf("#%d %s", p.ID, p.Title)))
	sb.WriteString("\n")
	meta := string(p.Difficulty)
	if len(p.Tags) > 0 {
		meta += " · " + strings.Join(p.Tags, ", ")
	}
	if p.TimeLimitMs > 0 {
		meta += fmt.Sprintf(" · %dms", p.TimeLimitMs)
	}
	if p.MemoryLimitKb > 0 {
		meta += fmt.Sprintf(" · %dKB", p.MemoryLimitKb)
	}
	sb.WriteString(theme.Render(d.styles.Info, meta))
	sb.WriteString("\n\n")
	sb.WriteString(wordwrap.String(p.Description, width))
	if c := strings.TrimSpace(p.Constraints); c != "" {
		sb.WriteString("\n\nConstraints:\n")
		sb.WriteString(wordwrap.String(c, width))
	}
	switch {
	case d.loading:
		sb.WriteString("\n\n" + theme.Render(d.styles.Info, "Loading..."))
	case d.err != nil:
		sb.WriteString("\n\n" + theme.Render(d.styles.Error, "✗ "+d.err.Error()))
	default:
		sb.WriteString(fmt.Sprintf("\n\n%d test case(s) · s submit", len(d.cases)))
		for i, tc := range d.cases {
			sb.WriteString(fmt.Sprintf("\n%d. in: %s → %s", i+1, oneLine(tc.InputData), oneLine(tc.ExpectedOutput)))
		}
	}
	return strings.Split(sb.String(), "\n")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// View implements state.Content. Up and down scroll.
func (d *Detail) View(width, height int) string {
	lines := d.body(width)
	if maxOffset := len(lines) - height; d.offset > maxOffset {
		d.offset = max(maxOffset, 0)
	}
	return appkit.Fit(strings.Join(lines[d.offset:], "\n"), width, height)
}
