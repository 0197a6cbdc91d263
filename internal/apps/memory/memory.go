// Package memory is a pairs-matching card game on a 4×4 grid.
package memory

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/theme"
)

var faces = []string{"🎮", "🎲", "🎯", "🎪", "🎨", "🎭", "🎸", "🎺"}

const (
	cols = 4
	rows = 4
	// MissDelay is how long a mismatched pair stays visible.
	MissDelay = time.Second

	cardWidth = 6
	cardGap   = 1
	gridTop   = 3
)

type card struct {
	face    string
	flipped bool
	matched bool
}

type flipBackMsg struct {
	gen int
}

// Game is the hosted memory game.
type Game struct {
	cards    []card
	open     []int
	moves    int
	matches  int
	best     int
	checking bool
	won      bool
	cursor   int
	gen      int
	rng      *rand.Rand
	styles   *theme.Styles
}

// New deals a shuffled board.
func New(rng *rand.Rand, styles *theme.Styles) *Game {
	if styles == nil {
		styles = theme.Default()
	}
	g := &Game{rng: appkit.Rand(rng), styles: styles}
	g.Reset()
	return g
}

// Reset deals a new board, keeping the best score.
func (g *Game) Reset() {
	g.cards = make([]card, 0, rows*cols)
	for _, f := range faces {
		g.cards = append(g.cards, card{face: f}, card{face: f})
	}
	g.rng.Shuffle(len(g.cards), func(i, j int) { g.cards[i], g.cards[j] = g.cards[j], g.cards[i] })
	g.open = g.open[:0]
	g.moves, g.matches = 0, 0
	g.checking, g.won = false, false
	g.cursor = 0
	g.gen++
}

func (g *Game) Moves() int { return g.moves }
func (g *Game) Matches() int { return g.matches }
func (g *Game) Best() int { return g.best }
func (g *Game) Won() bool { return g.won }

// Face returns the emoji on card i, for tests and debugging.
func (g *Game) Face(i int) string { return g.cards[i].face }

// Revealed reports whether card i is currently showing its face.
func (g *Game) Revealed(i int) bool { return g.cards[i].flipped || g.cards[i].matched }

// Flip turns card i face up. Turning the second card of a pair counts a
// move; a miss schedules the pair to flip back after MissDelay.
func (g *Game) Flip(i int) tea.Cmd {
	if g.won || g.checking || i < 0 || i >= len(g.cards) || len(g.open) >= 2 {
		return nil
	}
	c := &g.cards[i]
	if c.flipped || c.matched {
		return nil
	}
	c.flipped = true
	g.open = append(g.open, i)
	if len(g.open) < 2 {
		return nil
	}
	g.moves++
	a, b := g.open[0], g.open[1]
	if g.cards[a].face == g.cards[b].face {
		g.cards[a].matched, g.cards[b].matched = true, true
		g.open = g.open[:0]
		g.matches++
		if g.matches == len(faces) {
			g.won = true
			if g.best == 0 || g.moves < g.best {
				g.best = g.moves
			}
		}
		return nil
	}
	g.checking = true
	gen := g.gen
	return tea.Tick(MissDelay, func(time.Time) tea.Msg { return flipBackMsg{gen: gen} })
}

func (g *Game) flipBack() {
	for _, i := range g.open {
		g.cards[i].flipped = false
	}
	g.open = g.open[:0]
	g.checking = false
}

// Update implements appkit.Interactive.
func (g *Game) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case flipBackMsg:
		if msg.gen == g.gen {
			g.flipBack()
		}
	case appkit.Click:
		if msg.Y == 1 {
			g.Reset()
			return nil
		}
		if i, ok := cardAt(msg.X, msg.Y); ok {
			g.cursor = i
			return g.Flip(i)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			g.cursor = (g.cursor + len(g.cards) - 1) % len(g.cards)
		case "right", "l":
			g.cursor = (g.cursor + 1) % len(g.cards)
		case "up", "k":
			g.cursor = (g.cursor + len(g.cards) - cols) % len(g.cards)
		case "down", "j":
			g.cursor = (g.cursor + cols) % len(g.cards)
		case "enter", " ":
			return g.Flip(g.cursor)
		case "n":
			g.Reset()
		}
	}
	return nil
}

func cardAt(x, y int) (int, bool) {
	if y < gridTop || (y-gridTop)%2 != 0 {
		return 0, false
	}
	row := (y - gridTop) / 2
	col := x / (cardWidth + cardGap)
	if x%(cardWidth+cardGap) >= cardWidth || row >= rows || col >= cols || x < 0 {
		return 0, false
	}
	return row*cols + col, true
}

// View implements state.Content.
func (g *Game) View(width, height int) string {
	var sb strings.Builder
	status := fmt.Sprintf("Moves: %d  Matches: %d/%d", g.moves, g.matches, len(faces))
	if g.best > 0 {
		status += fmt.Sprintf("  Best: %d", g.best)
	}
	sb.WriteString(status + "\n")
	sb.WriteString(theme.Render(g.styles.Highlight, "[ New Game ]") + "\n\n")
	if g.won {
		sb.WriteString(theme.Render(g.styles.Success, fmt.Sprintf("🎉 You won in %d moves!", g.moves)) + "\n")
		sb.WriteString("Press n or New Game to play again.")
		return appkit.Fit(sb.String(), width, height)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			face := "❓"
			if g.Revealed(i) {
				face = g.cards[i].face
			}
			cell := "[ " + face + " ]"
			if i == g.cursor {
				cell = theme.Render(g.styles.Highlight, cell)
			}
			sb.WriteString(cell)
			if c < cols-1 {
				sb.WriteString(strings.Repeat(" ", cardGap))
			}
		}
		sb.WriteString("\n\n")
	}
	sb.WriteString(theme.Render(g.styles.Info, "Match all pairs in as few moves as possible."))
	return appkit.Fit(sb.String(), width, height)
}
