package paint

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
)

func TestPaletteAndToolbarClicks(t *testing.T) {
	c := New(nil)
	c.Update(appkit.Click{X: 11, Y: 0})
	if c.Color() != 5 {
		t.Fatalf("expected red (5), got %d", c.Color())
	}
	c.Update(appkit.Click{X: 9, Y: 1})
	if c.Tool() != Eraser {
		t.Fatalf("expected eraser, got %s", c.Tool())
	}
	c.Update(appkit.Click{X: 2, Y: 0})
	if c.Tool() != Brush {
		t.Fatal("picking a colour should leave the eraser")
	}
	if c.SetColor(16) || c.SetColor(-1) {
		t.Fatal("out of range colours are rejected")
	}
}

func TestBrushEraserAndClear(t *testing.T) {
	c := New(nil)
	c.SetColor(5)
	c.Update(appkit.Click{X: 3, Y: canvasTop + 1})
	if c.At(3, 1) != 5 {
		t.Fatalf("expected painted cell, got %d", c.At(3, 1))
	}
	c.SetTool(Eraser)
	c.Apply(3, 1)
	if c.At(3, 1) != blank {
		t.Fatal("eraser should restore white")
	}
	c.SetTool(Brush)
	c.Apply(0, 0)
	c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if c.At(0, 0) != blank {
		t.Fatal("c should clear the canvas")
	}
}

func TestFloodFillStopsAtBorders(t *testing.T) {
	c := New(nil)
	c.View(6, 6) // 6x4 canvas
	for y := 0; y < 4; y++ {
		c.cells[cell{2, y}] = 0
	}
	c.SetColor(13)
	c.SetTool(Fill)
	c.Apply(0, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			want := blank
			switch {
			case x < 2:
				want = 13
			case x == 2:
				want = 0
			}
			if got := c.At(x, y); got != want {
				t.Fatalf("cell %d,%d = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestKeyboardCursorPaints(t *testing.T) {
	c := New(nil)
	c.View(10, 8)
	c.Update(tea.KeyMsg{Type: tea.KeyRight})
	c.Update(tea.KeyMsg{Type: tea.KeyDown})
	c.Update(tea.KeyMsg{Type: tea.KeySpace})
	if c.At(1, 1) != 0 {
		t.Fatalf("space should paint under the cursor, got %d", c.At(1, 1))
	}
	for i := 0; i < 20; i++ {
		c.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if c.cursor.y != 5 {
		t.Fatalf("cursor should stop at the last canvas row, got %d", c.cursor.y)
	}
}
