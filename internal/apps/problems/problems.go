// Package problems browses the problem bank and opens detail windows.
package problems

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/api"
	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/format/table"
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/theme"
)

// Source is the slice of the API the browser reads. *api.Client satisfies it.
type Source interface {
	ListProblems(ctx context.Context, page, size int, title string) (api.Page[api.Problem], error)
	GetProblem(ctx context.Context, id int64) (api.Problem, error)
	ListTestCases(ctx context.Context, problemID int64) ([]api.TestCase, error)
}

const (
	// PageSize is the number of problems fetched per page.
	PageSize = 10
	// LoadTimeout bounds a single page or detail request.
	LoadTimeout = 15 * time.Second
	headerRows  = 3
)

// DetailSize is the window size used for problem detail windows.
var DetailSize = state.Size{Width: 60, Height: 20}

type pageMsg struct {
	gen  int
	page api.Page[api.Problem]
	err  error
}

// Browser is the paginated problem list.
type Browser struct {
	source  Source
	submit  Submitter
	page    api.Page[api.Problem]
	number  int
	cursor  int
	title   string
	search  textinput.Model
	loading bool
	loaded  bool
	err     error
	gen     int
	styles  *theme.Styles
}

// New returns a browser that loads the first page on Init. Detail windows
// opened from it record solutions through submit.
func New(source Source, submit Submitter, styles *theme.Styles) *Browser {
	if styles == nil {
		styles = theme.Default()
	}
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search titles"
	search.CharLimit = 64
	return &Browser{source: source, submit: submit, search: search, styles: styles}
}

func (b *Browser) Page() int { return b.number }
func (b *Browser) Cursor() int { return b.cursor }
func (b *Browser) Loading() bool { return b.loading }
func (b *Browser) Err() error { return b.err }
func (b *Browser) Title() string { return b.title }
func (b *Browser) Searching() bool { return b.search.Focused() }
func (b *Browser) Problems() []api.Problem {
	out := make([]api.Problem, len(b.page.Content))
	copy(out, b.page.Content)
	return out
}

// Selected returns the problem under the cursor.
func (b *Browser) Selected() (api.Problem, bool) {
	if b.cursor < 0 || b.cursor >= len(b.page.Content) {
		return api.Problem{}, false
	}
	return b.page.Content[b.cursor], true
}

// Init implements appkit.Initializer.
func (b *Browser) Init() tea.Cmd {
	return b.Load(0)
}

// Load fetches page n with the current title filter. Responses to earlier
// loads are discarded.
func (b *Browser) Load(n int) tea.Cmd {
	if n < 0 {
		n = 0
	}
	b.gen++
	gen := b.gen
	b.loading = true
	b.number = n
	source := b.source
	title := b.title
	return func() tea.Msg {
		if source == nil {
			return pageMsg{gen: gen, err: api.ErrNoClient}
		}
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		page, err := source.ListProblems(ctx, n, PageSize, title)
		return pageMsg{gen: gen, page: page, err: err}
	}
}

func (b *Browser) apply(msg pageMsg) {
	b.loading = false
	events.Content.Load("problems", b.number, msg.err)
	if msg.err != nil {
		b.err = msg.err
		return
	}
	b.err = nil
	b.loaded = true
	b.page = msg.page
	if b.cursor >= len(b.page.Content) {
		b.cursor = len(b.page.Content) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

// NextPage loads the following page unless this is the last one.
func (b *Browser) NextPage() tea.Cmd {
	if b.loading || !b.loaded || b.page.Last || b.number+1 >= b.page.TotalPages {
		return nil
	}
	b.cursor = 0
	return b.Load(b.number + 1)
}

// PrevPage loads the previous page unless this is the first one.
func (b *Browser) PrevPage() tea.Cmd {
	if b.loading || b.number == 0 {
		return nil
	}
	b.cursor = 0
	return b.Load(b.number - 1)
}

// Open returns a command that asks the desktop to open a detail window for
// the selected problem.
func (b *Browser) Open() tea.Cmd {
	p, ok := b.Selected()
	if !ok {
		return nil
	}
	detail := NewDetail(b.source, b.submit, p, b.styles)
	desc := state.Descriptor{
		ID:      DetailID(p.ID),
		Title:   p.Title,
		Icon:    "📄",
		Content: detail,
		Size:    DetailSize,
	}
	return func() tea.Msg { return menu.OpenRequest{Descriptor: desc} }
}

// DetailID is the window id of a problem's detail window.
func DetailID(id int64) string {
	return "problem-" + strconv.FormatInt(id, 10)
}

func (b *Browser) move(delta int) {
	n := len(b.page.Content)
	if n == 0 {
		b.cursor = 0
		return
	}
	b.cursor = (b.cursor + delta + n) % n
}

// Update implements appkit.Interactive.
func (b *Browser) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pageMsg:
		if msg.gen == b.gen {
			b.apply(msg)
		}
		return nil
	case appkit.Click:
		row := msg.Y - headerRows
		if row >= 0 && row < len(b.page.Content) {
			if row == b.cursor {
				return b.Open()
			}
			b.cursor = row
		}
		return nil
	case tea.KeyMsg:
		if b.search.Focused() {
			return b.updateSearch(msg)
		}
		switch msg.String() {
		case "up", "k":
			b.move(-1)
		case "down", "j":
			b.move(1)
		case "right", "n", "pgdown":
			return b.NextPage()
		case "left", "p", "pgup":
			return b.PrevPage()
		case "enter":
			return b.Open()
		case "r":
			return b.Load(b.number)
		case "/":
			b.search.SetValue(b.title)
			b.search.CursorEnd()
			return b.search.Focus()
		}
	}
	return nil
}

func (b *Browser) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		b.search.Blur()
		b.title = strings.TrimSpace(b.search.Value())
		b.cursor = 0
		return b.Load(0)
	case "esc":
		b.search.Blur()
		b.search.SetValue(b.title)
		return nil
	}
	var cmd tea.Cmd
	b.search, cmd = b.search.Update(msg)
	return cmd
}

// View implements state.Content.
func (b *Browser) View(width, height int) string {
	var sb strings.Builder
	if b.search.Focused() {
		b.search.Width = width - 3
		sb.WriteString(b.search.View())
	} else {
		header := fmt.Sprintf("Problems · page %d/%d · %d total", b.number+1, max(b.page.TotalPages, 1), b.page.TotalElements)
		if b.title != "" {
			header += fmt.Sprintf(" · %q", b.title)
		}
		sb.WriteString(theme.Render(b.styles.Info, header))
	}
	sb.WriteString("\n")

	titleMax := width - 4 - 2 - 6 - 2
	if titleMax < 5 {
		titleMax = 5
	}
	rows := [][]string{{"#", "Title", "Level"}}
	for _, p := range b.page.Content {
		rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.Title, string(p.Difficulty)})
	}
	lines := table.FormatColumns(rows, []table.Column{
		{Align: table.AlignRight, Max: 4},
		{Align: table.AlignLeft, Max: titleMax},
		{Align: table.AlignLeft, Max: 6},
	})
	sb.WriteString(theme.Render(b.styles.MenuHeader, lines[0]))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", max(width, 0)))
	for i, line := range lines[1:] {
		sb.WriteString("\n")
		if i == b.cursor {
			line = theme.Render(b.styles.Highlight, line)
		}
		sb.WriteString(line)
	}

	sb.WriteString("\n")
	switch {
	case b.loading:
		sb.WriteString(theme.Render(b.styles.Info, "Loading..."))
	case b.err != nil:
		sb.WriteString(theme.Render(b.styles.Error, "✗ "+b.err.Error()))
	case b.loaded && len(b.page.Content) == 0:
		sb.WriteString(theme.Render(b.styles.Info, "No problems found."))
	default:
		sb.WriteString(theme.Render(b.styles.Info, "enter open · n/p page · / search · r refresh"))
	}
	return appkit.Fit(sb.String(), width, height)
}
