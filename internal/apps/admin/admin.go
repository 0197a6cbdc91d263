// Package admin is the problem bank editor shown to admins.
package admin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/format/table"
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/theme"
)

// ErrNoStore is reported when the panel was built without a data store.
var ErrNoStore = errors.New("no data store")

// Tab is one page of the panel.
type Tab int

const (
	TabManage Tab = iota
	TabAdd
)

type focus int

const (
	focusProblems focus = iota
	focusCases
	focusInput
	focusExpected
)

type field int

const (
	fieldTitle field = iota
	fieldDescription
	fieldDifficulty
	fieldCount
)

// problem rows start below the tab bar and the list header
const listTop = 3

var tabLabels = []string{"[Manage Problems]", "[Add New]"}

// Panel lists problems with their test cases and offers a form for new
// problems.
type Panel struct {
	store      state.DataStore
	tab        Tab
	problems   []state.Problem
	cursor     int
	caseCursor int
	focus      focus
	input      textinput.Model
	expected   textinput.Model
	field      field
	title      textinput.Model
	desc       textinput.Model
	difficulty int
	notice     string
	err        error
	styles     *theme.Styles
}

func newInput(prompt, placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = 256
	return in
}

// New returns a panel on the manage tab, loaded from store.
func New(store state.DataStore, styles *theme.Styles) *Panel {
	if styles == nil {
		styles = theme.Default()
	}
	p := &Panel{
		store:    store,
		input:    newInput("Input:    ", "e.g. [1,2,3]"),
		expected: newInput("Expected: ", "e.g. 6"),
		title:    newInput("Title:       ", "problem title"),
		desc:     newInput("Description: ", "problem statement"),
		styles:   styles,
	}
	p.reload()
	return p
}

func (p *Panel) Tab() Tab { return p.tab }
func (p *Panel) Cursor() int { return p.cursor }
func (p *Panel) Err() error { return p.err }
func (p *Panel) Notice() string { return p.notice }
func (p *Panel) Difficulty() state.Difficulty { return state.Difficulties[p.difficulty] }
func (p *Panel) Problems() []state.Problem {
	out := make([]state.Problem, len(p.problems))
	copy(out, p.problems)
	return out
}

// Selected returns the problem under the cursor.
func (p *Panel) Selected() (state.Problem, bool) {
	if p.cursor < 0 || p.cursor >= len(p.problems) {
		return state.Problem{}, false
	}
	return p.problems[p.cursor], true
}

func (p *Panel) reload() {
	if p.store == nil {
		p.err = ErrNoStore
		return
	}
	p.problems = p.store.Problems()
	p.cursor = clamp(p.cursor, len(p.problems))
	cases := 0
	if sel, ok := p.Selected(); ok {
		cases = len(sel.TestCases)
	}
	p.caseCursor = clamp(p.caseCursor, cases)
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (p *Panel) report(notice string, err error) {
	p.notice = notice
	p.err = err
}

// SwitchTab moves to t and focuses its first control.
func (p *Panel) SwitchTab(t Tab) tea.Cmd {
	p.tab = t
	p.blurAll()
	p.notice = ""
	if t == TabAdd {
		p.field = fieldTitle
		return p.title.Focus()
	}
	p.focus = focusProblems
	return nil
}

func (p *Panel) blurAll() {
	p.input.Blur()
	p.expected.Blur()
	p.title.Blur()
	p.desc.Blur()
}

// DeleteSelected removes the problem under the cursor.
func (p *Panel) DeleteSelected() {
	sel, ok := p.Selected()
	if !ok || p.store == nil {
		return
	}
	p.store.DeleteProblem(sel.ID)
	events.Content.Admin("problem.delete", sel.ID, nil)
	p.reload()
	p.report(fmt.Sprintf("Deleted %q", sel.Title), nil)
}

// DeleteSelectedCase removes the highlighted test case of the selected
// problem.
func (p *Panel) DeleteSelectedCase() {
	sel, ok := p.Selected()
	if !ok || p.store == nil || p.caseCursor >= len(sel.TestCases) {
		return
	}
	tc := sel.TestCases[p.caseCursor]
	p.store.DeleteTestCase(sel.ID, tc.ID)
	events.Content.Admin("testcase.delete", tc.ID, nil)
	p.reload()
	p.report("Deleted test case", nil)
}

// AddCase adds the input/expected pair to the selected problem and clears
// the form on success.
func (p *Panel) AddCase() {
	sel, ok := p.Selected()
	if !ok {
		return
	}
	if p.store == nil {
		p.report("", ErrNoStore)
		return
	}
	tc, err := p.store.AddTestCase(sel.ID, p.input.Value(), p.expected.Value())
	events.Content.Admin("testcase.add", tc.ID, err)
	if err != nil {
		p.report("", err)
		return
	}
	p.input.Reset()
	p.expected.Reset()
	p.reload()
	p.report("Test case added", nil)
}

// Create stores the add form as a new problem, then returns to the manage
// tab with it selected.
func (p *Panel) Create() tea.Cmd {
	if p.store == nil {
		p.report("", ErrNoStore)
		return nil
	}
	created, err := p.store.AddProblem(state.NewProblem{
		Title:       p.title.Value(),
		Description: p.desc.Value(),
		Difficulty:  p.Difficulty(),
	})
	events.Content.Admin("problem.add", created.ID, err)
	if err != nil {
		p.report("", err)
		return nil
	}
	p.title.Reset()
	p.desc.Reset()
	p.difficulty = 0
	cmd := p.SwitchTab(TabManage)
	p.reload()
	for i, pr := range p.problems {
		if pr.ID == created.ID {
			p.cursor = i
		}
	}
	p.caseCursor = 0
	p.report(fmt.Sprintf("Created %q", created.Title), nil)
	return cmd
}

// Update implements appkit.Interactive.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case appkit.Focus:
		if msg.Active {
			p.reload()
		}
		return nil
	case appkit.Click:
		return p.click(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+t" {
			return p.SwitchTab(1 - p.tab)
		}
		if p.tab == TabAdd {
			return p.updateAdd(msg)
		}
		return p.updateManage(msg)
	}
	return nil
}

func (p *Panel) click(msg appkit.Click) tea.Cmd {
	if msg.Y == 0 {
		start := 0
		for i, label := range tabLabels {
			end := start + ansi.StringWidth(label)
			if msg.X >= start && msg.X < end {
				return p.SwitchTab(Tab(i))
			}
			start = end + 1
		}
		return nil
	}
	if p.tab != TabManage {
		return nil
	}
	row := msg.Y - listTop
	if row >= 0 && row < len(p.problems) {
		p.blurAll()
		p.focus = focusProblems
		if row != p.cursor {
			p.cursor = row
			p.caseCursor = 0
		}
	}
	return nil
}

func (p *Panel) setFocus(f focus) tea.Cmd {
	p.blurAll()
	p.focus = f
	switch f {
	case focusInput:
		return p.input.Focus()
	case focusExpected:
		return p.expected.Focus()
	}
	return nil
}

func (p *Panel) updateManage(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "tab":
		return p.setFocus((p.focus + 1) % 4)
	case "shift+tab":
		return p.setFocus((p.focus + 3) % 4)
	}
	if p.focus == focusInput || p.focus == focusExpected {
		switch key {
		case "enter":
			p.AddCase()
			return nil
		case "esc":
			return p.setFocus(focusProblems)
		}
		var cmd tea.Cmd
		if p.focus == focusInput {
			p.input, cmd = p.input.Update(msg)
		} else {
			p.expected, cmd = p.expected.Update(msg)
		}
		return cmd
	}
	switch key {
	case "up", "k":
		p.move(-1)
	case "down", "j":
		p.move(1)
	case "d", "delete":
		if p.focus == focusCases {
			p.DeleteSelectedCase()
		} else {
			p.DeleteSelected()
		}
	}
	return nil
}

func (p *Panel) move(delta int) {
	if p.focus == focusCases {
		sel, ok := p.Selected()
		if !ok || len(sel.TestCases) == 0 {
			return
		}
		n := len(sel.TestCases)
		p.caseCursor = (p.caseCursor + delta + n) % n
		return
	}
	n := len(p.problems)
	if n == 0 {
		return
	}
	p.cursor = (p.cursor + delta + n) % n
	p.caseCursor = 0
}

func (p *Panel) setField(f field) tea.Cmd {
	p.blurAll()
	p.field = f
	switch f {
	case fieldTitle:
		return p.title.Focus()
	case fieldDescription:
		return p.desc.Focus()
	}
	return nil
}

func (p *Panel) updateAdd(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return p.setField((p.field + 1) % fieldCount)
	case "shift+tab", "up":
		return p.setField((p.field + fieldCount - 1) % fieldCount)
	case "enter", "ctrl+s":
		return p.Create()
	}
	var cmd tea.Cmd
	switch p.field {
	case fieldTitle:
		p.title, cmd = p.title.Update(msg)
	case fieldDescription:
		p.desc, cmd = p.desc.Update(msg)
	case fieldDifficulty:
		n := len(state.Difficulties)
		switch msg.String() {
		case "left", "h":
			p.difficulty = (p.difficulty + n - 1) % n
		case "right", "l", " ":
			p.difficulty = (p.difficulty + 1) % n
		}
	}
	return cmd
}

// View implements state.Content.
func (p *Panel) View(width, height int) string {
	labels := append([]string(nil), tabLabels...)
	labels[p.tab] = theme.Render(p.styles.Highlight, labels[p.tab])
	var sb strings.Builder
	sb.WriteString(strings.Join(labels, " "))
	sb.WriteString("\n")
	if p.tab == TabAdd {
		p.viewAdd(&sb, width)
	} else {
		p.viewManage(&sb, width)
	}
	sb.WriteString("\n")
	switch {
	case errors.Is(p.err, state.ErrMissingField):
		sb.WriteString(theme.Render(p.styles.Error, "✗ Please fill in all fields"))
	case p.err != nil:
		sb.WriteString(theme.Render(p.styles.Error, "✗ "+p.err.Error()))
	case p.notice != "":
		sb.WriteString(theme.Render(p.styles.Success, "✓ "+p.notice))
	case p.tab == TabAdd:
		sb.WriteString(theme.Render(p.styles.Info, "tab next field · ←/→ difficulty · enter create · ctrl+t tabs"))
	default:
		sb.WriteString(theme.Render(p.styles.Info, "tab focus · d delete · enter add case · ctrl+t tabs"))
	}
	return appkit.Fit(sb.String(), width, height)
}

func (p *Panel) viewManage(sb *strings.Builder, width int) {
	sb.WriteString(theme.Render(p.styles.MenuHeader, fmt.Sprintf("Problems (%d)", len(p.problems))))
	sb.WriteString("\n")
	rows := [][]string{{"#", "Title", "Level", "Cases"}}
	for _, pr := range p.problems {
		rows = append(rows, []string{strconv.FormatInt(pr.ID, 10), pr.Title, string(pr.Difficulty), strconv.Itoa(len(pr.TestCases))})
	}
	titleMax := max(width-4-6-5-6, 5)
	lines := table.FormatColumns(rows, []table.Column{
		{Align: table.AlignRight, Max: 4},
		{Align: table.AlignLeft, Max: titleMax},
		{Align: table.AlignLeft, Max: 6},
		{Align: table.AlignRight, Max: 5},
	})
	sb.WriteString(theme.Render(p.styles.Info, lines[0]))
	for i, line := range lines[1:] {
		sb.WriteString("\n")
		if i == p.cursor {
			style := p.styles.MenuSelected
			if p.focus != focusProblems {
				style = p.styles.Highlight
			}
			line = theme.Render(style, line)
		}
		sb.WriteString(line)
	}
	sel, ok := p.Selected()
	if !ok {
		sb.WriteString("\n" + theme.Render(p.styles.Info, "No problems."))
		return
	}
	sb.WriteString("\n\n")
	sb.WriteString(theme.Render(p.styles.MenuHeader, "Test cases: "+sel.Title))
	if len(sel.TestCases) == 0 {
		sb.WriteString("\n" + theme.Render(p.styles.Info, "none"))
	}
	for i, tc := range sel.TestCases {
		line := fmt.Sprintf("%d. %s → %s", i+1, tc.Input, tc.ExpectedOutput)
		if p.focus == focusCases && i == p.caseCursor {
			line = theme.Render(p.styles.MenuSelected, line)
		}
		sb.WriteString("\n" + line)
	}
	p.input.Width = max(width-len(p.input.Prompt)-1, 1)
	p.expected.Width = max(width-len(p.expected.Prompt)-1, 1)
	sb.WriteString("\n")
	sb.WriteString(p.input.View())
	sb.WriteString("\n")
	sb.WriteString(p.expected.View())
}

func (p *Panel) viewAdd(sb *strings.Builder, width int) {
	sb.WriteString(theme.Render(p.styles.MenuHeader, "New problem"))
	sb.WriteString("\n\n")
	p.title.Width = max(width-len(p.title.Prompt)-1, 1)
	p.desc.Width = max(width-len(p.desc.Prompt)-1, 1)
	sb.WriteString(p.title.View())
	sb.WriteString("\n")
	sb.WriteString(p.desc.View())
	sb.WriteString("\n")
	var opts []string
	for i, d := range state.Difficulties {
		label := string(d)
		if i == p.difficulty {
			label = "(" + label + ")"
			if p.field == fieldDifficulty {
				label = theme.Render(p.styles.MenuSelected, label)
			} else {
				label = theme.Render(p.styles.Highlight, label)
			}
		} else {
			label = " " + label + " "
		}
		opts = append(opts, label)
	}
	sb.WriteString("Difficulty:  " + strings.Join(opts, " "))
}
