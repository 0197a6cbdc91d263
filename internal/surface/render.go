package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/theme"
)

const (
	windowControls = "[_][□]"
	closeControl   = "[x]"
	statusLabel    = " Ready "
	ellipsis       = "…"
)

// Render draws the window frame and its content into exactly rect.Height
// lines, each rect.Width cells wide. Minimized entries render nothing.
func Render(e state.Entry, rect Rect, active bool, styles *theme.Styles) []string {
	if e.Minimized || rect.Empty() {
		return nil
	}
	if styles == nil {
		styles = theme.Default()
	}
	lines := make([]string, 0, rect.Height)
	lines = append(lines, renderTitle(e, rect.Width, active, styles))
	if rect.Height == 1 {
		return lines
	}

	border := styles.Border
	if active {
		border = styles.BorderActive
	}
	inner := ContentRect(rect)
	body := contentLines(e, inner)
	for _, line := range body {
		if rect.Width == 1 {
			lines = append(lines, theme.Render(border, "│"))
			continue
		}
		lines = append(lines, theme.Render(border, "│")+theme.Render(styles.Body, line)+theme.Render(border, "│"))
	}
	lines = append(lines, renderStatus(rect.Width, border, styles))
	return lines
}

func renderTitle(e state.Entry, width int, active bool, styles *theme.Styles) string {
	style := styles.TitleInactive
	if active {
		style = styles.TitleActive
	}
	label := " " + e.Title
	if e.Icon != "" {
		label = " " + e.Icon + " " + e.Title
	}
	if width < MinWidth {
		return theme.Render(style, pad(truncateCells(label, width), width))
	}
	avail := width - controlsWidth
	title := pad(truncateCells(label, avail), avail)
	controls := theme.Render(styles.Controls, windowControls) + theme.Render(styles.CloseControl, closeControl)
	return theme.Render(style, title) + controls + theme.Render(style, " ")
}

func renderStatus(width int, border *lipgloss.Style, styles *theme.Styles) string {
	if width < 2 {
		return theme.Render(border, "└")
	}
	fill := width - 2
	label := statusLabel
	if lipgloss.Width(label) > fill {
		label = truncateCells(label, fill)
	}
	rest := fill - lipgloss.Width(label)
	return theme.Render(border, "└") + theme.Render(styles.Status, label) +
		theme.Render(border, strings.Repeat("─", rest)+"┘")
}

// contentLines returns inner.Height lines of the content view, each clipped
// and padded to inner.Width.
func contentLines(e state.Entry, inner Rect) []string {
	var raw []string
	if e.Content != nil && inner.Width > 0 && inner.Height > 0 {
		raw = strings.Split(e.Content.View(inner.Width, inner.Height), "\n")
	}
	out := make([]string, inner.Height)
	for i := range out {
		line := ""
		if i < len(raw) {
			line = ansi.Truncate(strings.TrimRight(raw[i], "\r"), inner.Width, "")
		}
		out[i] = pad(line, inner.Width)
	}
	return out
}

func truncateCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

func pad(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
