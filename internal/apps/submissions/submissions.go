// Package submissions lists the signed-in user's submission history.
package submissions

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/format/table"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/theme"
)

// Source supplies the history, newest first. state.DataStore satisfies it.
type Source interface {
	Submissions() []state.Submission
}

const (
	dateLayout = "2006-01-02 15:04"
	headerRows = 2
)

// List is the submission table. It rereads the source on every render so
// new submissions show up without a refresh.
type List struct {
	source Source
	offset int
	styles *theme.Styles
}

func New(source Source, styles *theme.Styles) *List {
	if styles == nil {
		styles = theme.Default()
	}
	return &List{source: source, styles: styles}
}

func (l *List) Offset() int { return l.offset }

func (l *List) rows() []state.Submission {
	if l.source == nil {
		return nil
	}
	return l.source.Submissions()
}

// Update implements appkit.Interactive.
func (l *List) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if l.offset > 0 {
				l.offset--
			}
		case "down", "j":
			l.offset++
		case "home", "g":
			l.offset = 0
		}
	}
	return nil
}

func (l *List) statusStyle(s state.SubmissionStatus) string {
	switch s {
	case state.StatusAccepted:
		return theme.Render(l.styles.Success, string(s))
	case state.StatusPending:
		return theme.Render(l.styles.Info, string(s))
	default:
		return theme.Render(l.styles.Error, string(s))
	}
}

// View implements state.Content.
func (l *List) View(width, height int) string {
	subs := l.rows()
	if len(subs) == 0 {
		return appkit.Fit(theme.Render(l.styles.Info, "No submissions yet. Solve some problems!"), width, height)
	}
	rows := [][]string{{"#", "Problem", "Language", "Status", "Submitted"}}
	for i, s := range subs {
		rows = append(rows, []string{
			strconv.Itoa(len(subs) - i),
			s.ProblemTitle,
			s.Language,
			string(s.Status),
			s.SubmittedAt.Format(dateLayout),
		})
	}
	titleMax := max(width-4-10-19-len(dateLayout)-8, 6)
	lines := table.FormatColumns(rows, []table.Column{
		{Align: table.AlignRight, Max: 4},
		{Align: table.AlignLeft, Max: titleMax},
		{Align: table.AlignLeft, Max: 10},
		{Align: table.AlignLeft, Max: 19},
		{Align: table.AlignLeft},
	})

	visible := max(height-headerRows-1, 1)
	if maxOffset := len(subs) - visible; l.offset > maxOffset {
		l.offset = max(maxOffset, 0)
	}
	var sb strings.Builder
	sb.WriteString(theme.Render(l.styles.MenuHeader, lines[0]))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", max(width, 0)))
	end := min(l.offset+visible, len(subs))
	for i := l.offset; i < end; i++ {
		line := lines[i+1]
		status := string(subs[i].Status)
		if at := strings.LastIndex(line, status); at >= 0 {
			line = line[:at] + l.statusStyle(subs[i].Status) + line[at+len(status):]
		}
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	sb.WriteString("\n")
	sb.WriteString(theme.Render(l.styles.Info, fmt.Sprintf("%d submission(s) · %d accepted", len(subs), accepted(subs))))
	return appkit.Fit(sb.String(), width, height)
}

func accepted(subs []state.Submission) int {
	n := 0
	for _, s := range subs {
		if s.Status == state.StatusAccepted {
			n++
		}
	}
	return n
}
