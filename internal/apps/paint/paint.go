// Package paint is a cell-based drawing canvas.
package paint

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/theme"
)

// Palette is the 16-colour VGA palette shown along the top row.
var Palette = []string{
	"#000000", "#FFFFFF", "#808080", "#C0C0C0",
	"#800000", "#FF0000", "#808000", "#FFFF00",
	"#008000", "#00FF00", "#008080", "#00FFFF",
	"#000080", "#0000FF", "#800080", "#FF00FF",
}

// Tool is the active drawing tool.
type Tool int

const (
	Brush Tool = iota
	Eraser
	Fill
)

func (t Tool) String() string {
	switch t {
	case Eraser:
		return "Eraser"
	case Fill:
		return "Fill"
	default:
		return "Brush"
	}
}

const (
	swatchWidth = 2
	canvasTop   = 2
	// blank is the colour of unpainted cells.
	blank = 1
	// maxFill bounds flood fill on an unbounded canvas.
	maxFill = 4096
)

type cell struct{ x, y int }

// Canvas is the hosted paint app.
type Canvas struct {
	cells  map[cell]int
	color  int
	tool   Tool
	cursor cell
	width  int
	height int
	styles *theme.Styles
}

// New returns an empty white canvas with the black brush selected.
func New(styles *theme.Styles) *Canvas {
	if styles == nil {
		styles = theme.Default()
	}
	return &Canvas{cells: make(map[cell]int), styles: styles}
}

func (c *Canvas) Color() int { return c.color }
func (c *Canvas) Tool() Tool { return c.tool }

// At returns the palette index painted at (x, y).
func (c *Canvas) At(x, y int) int {
	if v, ok := c.cells[cell{x, y}]; ok {
		return v
	}
	return blank
}

// SetColor picks a palette entry and switches back from the eraser.
func (c *Canvas) SetColor(i int) bool {
	if i < 0 || i >= len(Palette) {
		return false
	}
	c.color = i
	if c.tool == Eraser {
		c.tool = Brush
	}
	return true
}

// SetTool switches tools.
func (c *Canvas) SetTool(t Tool) {
	c.tool = t
}

// Clear wipes the canvas.
func (c *Canvas) Clear() {
	c.cells = make(map[cell]int)
}

// Apply uses the current tool at canvas cell (x, y).
func (c *Canvas) Apply(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	switch c.tool {
	case Brush:
		c.set(x, y, c.color)
	case Eraser:
		delete(c.cells, cell{x, y})
	case Fill:
		c.fill(x, y, c.color)
	}
}

func (c *Canvas) set(x, y, color int) {
	if color == blank {
		delete(c.cells, cell{x, y})
		return
	}
	c.cells[cell{x, y}] = color
}

// fill floods the 4-connected region of (x, y) within the last rendered
// canvas size.
func (c *Canvas) fill(x, y, color int) {
	target := c.At(x, y)
	if target == color {
		return
	}
	w, h := c.width, c.height
	if w <= 0 || h <= 0 {
		w, h = x+1, y+1
	}
	stack := []cell{{x, y}}
	for n := 0; len(stack) > 0 && n < maxFill; n++ {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.x < 0 || p.y < 0 || p.x >= w || p.y >= h || c.At(p.x, p.y) != target {
			continue
		}
		c.set(p.x, p.y, color)
		stack = append(stack, cell{p.x + 1, p.y}, cell{p.x - 1, p.y}, cell{p.x, p.y + 1}, cell{p.x, p.y - 1})
	}
}

// Update implements appkit.Interactive.
func (c *Canvas) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case appkit.Click:
		c.click(msg.X, msg.Y)
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			c.Clear()
		case "b":
			c.SetTool(Brush)
		case "e":
			c.SetTool(Eraser)
		case "f":
			c.SetTool(Fill)
		case "left":
			c.moveCursor(-1, 0)
		case "right":
			c.moveCursor(1, 0)
		case "up":
			c.moveCursor(0, -1)
		case "down":
			c.moveCursor(0, 1)
		case " ", "enter":
			c.Apply(c.cursor.x, c.cursor.y)
		case "[":
			c.SetColor((c.color + len(Palette) - 1) % len(Palette))
		case "]":
			c.SetColor((c.color + 1) % len(Palette))
		}
	}
	return nil
}

func (c *Canvas) moveCursor(dx, dy int) {
	c.cursor.x += dx
	c.cursor.y += dy
	if c.cursor.x < 0 {
		c.cursor.x = 0
	}
	if c.cursor.y < 0 {
		c.cursor.y = 0
	}
	if c.width > 0 && c.cursor.x >= c.width {
		c.cursor.x = c.width - 1
	}
	if c.height > 0 && c.cursor.y >= c.height {
		c.cursor.y = c.height - 1
	}
}

// toolbar: "[Brush] [Eraser] [Fill] [Clear]"
func (c *Canvas) click(x, y int) {
	switch {
	case y == 0:
		c.SetColor(x / swatchWidth)
	case y == 1:
		switch {
		case x >= 0 && x < 7:
			c.SetTool(Brush)
		case x >= 8 && x < 16:
			c.SetTool(Eraser)
		case x >= 17 && x < 23:
			c.SetTool(Fill)
		case x >= 24 && x < 31:
			c.Clear()
		}
	default:
		c.cursor = cell{x, y - canvasTop}
		c.Apply(x, y-canvasTop)
	}
}

func swatch(hex string, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Background(lipgloss.Color(hex)).Render(text)
}

// View implements state.Content.
func (c *Canvas) View(width, height int) string {
	c.width, c.height = width, height-canvasTop
	var sb strings.Builder
	for i, hex := range Palette {
		mark := "  "
		if i == c.color {
			mark = "▪▪"
		}
		sb.WriteString(swatch(hex, mark))
	}
	sb.WriteString("\n")
	for _, t := range []Tool{Brush, Eraser, Fill} {
		label := "[" + t.String() + "]"
		if t == c.tool {
			label = theme.Render(c.styles.Highlight, label)
		}
		sb.WriteString(label + " ")
	}
	sb.WriteString("[Clear]")
	for y := 0; y < c.height; y++ {
		sb.WriteString("\n")
		for x := 0; x < width; x++ {
			glyph := " "
			if x == c.cursor.x && y == c.cursor.y {
				glyph = "+"
			}
			sb.WriteString(swatch(Palette[c.At(x, y)], glyph))
		}
	}
	return appkit.Fit(sb.String(), width, height)
}
