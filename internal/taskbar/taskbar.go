// Package taskbar lays out and hit-tests the single-row taskbar: the start
// button, one button per open window and the tray.
package taskbar

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/theme"
)

const (
	// Height is the number of terminal rows the taskbar occupies.
	Height = 1

	startLabel     = " ⊞ start "
	buttonMaxWidth = 20
	buttonMinWidth = 6
	buttonGap      = 1
	// TrayWidth is reserved at the right edge for the user name and clock.
	TrayWidth = 24
)

// Button is one window button on the bar.
type Button struct {
	ID        string
	Label     string
	X         int
	Width     int
	Active    bool
	Minimized bool
}

// Bar is the computed layout of the taskbar row.
type Bar struct {
	Width   int
	Start   Button
	Buttons []Button
	// Overflow is the "+N" button standing in for Hidden. Its Width is zero
	// when every window has its own button.
	Overflow Button
	// Hidden lists, in taskbar order, the windows whose buttons did not fit.
	Hidden []state.Entry
}

// HitKind classifies a taskbar click.
type HitKind int

const (
	HitNone HitKind = iota
	HitStart
	HitWindow
	HitOverflow
	HitTray
)

// Hit is the result of Bar.HitTest.
type Hit struct {
	Kind HitKind
	ID   string
}

// Layout places the start button and one button per entry, in the order
// given (the registry's insertion order). When the full labels do not fit
// the buttons shrink to their icons; windows that still do not fit are
// collected behind an overflow button.
func Layout(width int, entries []state.Entry, activeID string) Bar {
	bar := Bar{Width: width}
	bar.Start = Button{Label: startLabel, X: 0, Width: ansi.StringWidth(startLabel)}

	x := bar.Start.Width + buttonGap
	limit := width - TrayWidth

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = buttonLabel(e)
	}
	if !fits(labels, x, limit) {
		for i, e := range entries {
			labels[i] = compactLabel(e)
		}
	}
	shown := len(entries)
	if !fits(labels, x, limit) {
		reserve := ansi.StringWidth(overflowLabel(len(entries))) + buttonGap
		shown = 0
		for end := x; shown < len(entries); shown++ {
			end += ansi.StringWidth(labels[shown]) + buttonGap
			if end+reserve-buttonGap > limit {
				break
			}
		}
	}

	for i, e := range entries[:shown] {
		w := ansi.StringWidth(labels[i])
		bar.Buttons = append(bar.Buttons, Button{
			ID:        e.ID,
			Label:     labels[i],
			X:         x,
			Width:     w,
			Active:    e.ID == activeID && !e.Minimized,
			Minimized: e.Minimized,
		})
		x += w + buttonGap
	}
	if shown < len(entries) {
		bar.Hidden = append([]state.Entry(nil), entries[shown:]...)
		label := overflowLabel(len(bar.Hidden))
		if w := ansi.StringWidth(label); x+w <= limit {
			active := false
			for _, e := range bar.Hidden {
				if e.ID == activeID && !e.Minimized {
					active = true
				}
			}
			bar.Overflow = Button{Label: label, X: x, Width: w, Active: active}
		}
	}
	return bar
}

// fits reports whether labels laid out from x with gaps end at or before limit.
func fits(labels []string, x, limit int) bool {
	for i, label := range labels {
		x += ansi.StringWidth(label)
		if i < len(labels)-1 {
			x += buttonGap
		}
	}
	return x <= limit
}

func overflowLabel(n int) string {
	return " +" + strconv.Itoa(n) + " "
}

// compactLabel is the narrow form used once the row is crowded: the icon
// alone, or a squeezed title for windows without one.
func compactLabel(e state.Entry) string {
	if e.Icon != "" {
		return " " + e.Icon + " "
	}
	return fit(" "+e.Title+" ", buttonMinWidth)
}

func buttonLabel(e state.Entry) string {
	label := " " + e.Title + " "
	if e.Icon != "" {
		label = " " + e.Icon + " " + e.Title + " "
	}
	return fit(label, buttonMaxWidth)
}

func fit(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// HitTest maps a column on the taskbar row to what lies under it.
func (b Bar) HitTest(x int) Hit {
	if x >= b.Start.X && x < b.Start.X+b.Start.Width {
		return Hit{Kind: HitStart}
	}
	for _, btn := range b.Buttons {
		if x >= btn.X && x < btn.X+btn.Width {
			return Hit{Kind: HitWindow, ID: btn.ID}
		}
	}
	if b.Overflow.Width > 0 && x >= b.Overflow.X && x < b.Overflow.X+b.Overflow.Width {
		return Hit{Kind: HitOverflow}
	}
	if x >= b.Width-TrayWidth && x < b.Width {
		return Hit{Kind: HitTray}
	}
	return Hit{}
}

// Button returns the button for id.
func (b Bar) Button(id string) (Button, bool) {
	for _, btn := range b.Buttons {
		if btn.ID == id {
			return btn, true
		}
	}
	return Button{}, false
}

// Activate handles a click on a window's taskbar button: a minimized window
// is restored, any other is focused.
func Activate(reg *state.Registry, id string) bool {
	e, ok := reg.Entry(id)
	if !ok {
		return false
	}
	events.Taskbar.Click(id, e.Minimized)
	if e.Minimized {
		return reg.Restore(id)
	}
	return reg.Focus(id)
}

// Tray is the right-hand status area.
type Tray struct {
	User string
	Now  time.Time
}

// Clock formats the tray time as HH:MM.
func (t Tray) Clock() string {
	return t.Now.Format("15:04")
}

func (t Tray) render(styles *theme.Styles) string {
	clock := " " + t.Clock() + " "
	user := fit(" 👤 "+t.User+" ", TrayWidth-ansi.StringWidth(clock)-1)
	body := user + "│" + clock
	if gap := TrayWidth - ansi.StringWidth(body); gap > 0 {
		body = strings.Repeat(" ", gap) + body
	}
	return theme.Render(styles.Tray, body)
}

// Render draws the bar as one row of exactly b.Width cells.
func (b Bar) Render(styles *theme.Styles, tray Tray, startOpen bool) string {
	if styles == nil {
		styles = theme.Default()
	}
	if b.Width <= 0 {
		return ""
	}
	startStyle := styles.StartButton
	if startOpen {
		startStyle = styles.StartButtonOpen
	}
	var sb strings.Builder
	sb.WriteString(theme.Render(startStyle, b.Start.Label))
	x := b.Start.Width
	buttons := b.Buttons
	if b.Overflow.Width > 0 {
		buttons = append(append([]Button(nil), b.Buttons...), b.Overflow)
	}
	for _, btn := range buttons {
		if gap := btn.X - x; gap > 0 {
			sb.WriteString(theme.Render(styles.Taskbar, strings.Repeat(" ", gap)))
		}
		style := styles.TaskButton
		if btn.Active {
			style = styles.TaskButtonActive
		}
		sb.WriteString(theme.Render(style, btn.Label))
		x = btn.X + btn.Width
	}
	trayX := b.Width - TrayWidth
	if trayX < x {
		trayX = x
	}
	if gap := trayX - x; gap > 0 {
		sb.WriteString(theme.Render(styles.Taskbar, strings.Repeat(" ", gap)))
	}
	row := sb.String() + tray.render(styles)
	return ansi.Truncate(row, b.Width, "")
}
