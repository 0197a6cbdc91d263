// Package appkit is the contract between the desktop and the apps it hosts.
package appkit

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Interactive content receives input while its window is active, plus the
// messages produced by its own commands.
type Interactive interface {
	Update(tea.Msg) tea.Cmd
}

// Initializer content starts work (usually a load) when its window opens.
type Initializer interface {
	Init() tea.Cmd
}

// Tick is broadcast to every open interactive window once a second.
type Tick struct {
	Time time.Time
}

// Click is a primary-button press inside the content area, in content cells.
type Click struct {
	X, Y int
}

// Focus tells content its window became (or stopped being) the active one.
type Focus struct {
	Active bool
}

// Fit clips each line of s to width and pads the block to height rows.
func Fit(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if height >= 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Center pads s on the left so it sits in the middle of width cells.
func Center(s string, width int) string {
	gap := (width - ansi.StringWidth(s)) / 2
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// Rand returns r, or a time-seeded source when r is nil.
func Rand(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
