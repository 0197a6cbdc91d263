package surface

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[0m"

// Canvas is a fixed-size grid of styled lines that layers are painted onto
// back to front.
type Canvas struct {
	width int
	lines []string
}

// NewCanvas fills a width×height canvas with copies of background. The
// background row is clipped or padded to width.
func NewCanvas(width, height int, background string) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	row := pad(ansi.Truncate(background, width, ""), width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = row
	}
	return &Canvas{width: width, lines: lines}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return len(c.lines) }

// SetLine replaces row y, clipped and padded to the canvas width.
func (c *Canvas) SetLine(y int, line string) {
	if y < 0 || y >= len(c.lines) {
		return
	}
	c.lines[y] = pad(ansi.Truncate(line, c.width, ""), c.width)
}

// Overlay paints block with its top-left corner at (x, y). Parts that fall
// outside the canvas are clipped.
func (c *Canvas) Overlay(x, y int, block []string) {
	for i, fg := range block {
		row := y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		c.lines[row] = overlayLine(c.lines[row], fg, x, c.width)
	}
}

// Lines returns the canvas rows.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// String joins the rows with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

func overlayLine(bg, fg string, x, width int) string {
	fgW := ansi.StringWidth(fg)
	if x < 0 {
		if -x >= fgW {
			return bg
		}
		fg = ansi.TruncateLeft(fg, -x, "")
		fgW += x
		x = 0
	}
	if x >= width || fgW == 0 {
		return bg
	}
	if x+fgW > width {
		fg = ansi.Truncate(fg, width-x, "")
		fgW = width - x
	}
	head := pad(ansi.Truncate(bg, x, ""), x)
	tail := ansi.TruncateLeft(bg, x+fgW, "")
	return head + resetSGR + fg + resetSGR + tail
}
