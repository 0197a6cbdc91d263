// Package slider is the N×N sliding tile puzzle.
package slider

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/theme"
)

const (
	tileStride = 5
	gridTop    = 3
)

var sizes = []int{3, 4, 5}

// Puzzle is the hosted sliding puzzle. Tile 0 is the blank.
type Puzzle struct {
	size    int
	tiles   []int
	moves   int
	seconds int
	playing bool
	won     bool
	best    map[int]int
	rng     *rand.Rand
	styles  *theme.Styles
}

// New returns a shuffled 3×3 puzzle.
func New(rng *rand.Rand, styles *theme.Styles) *Puzzle {
	if styles == nil {
		styles = theme.Default()
	}
	p := &Puzzle{size: 3, best: map[int]int{}, rng: appkit.Rand(rng), styles: styles}
	p.Shuffle()
	return p
}

func (p *Puzzle) Size() int { return p.size }
func (p *Puzzle) Moves() int { return p.moves }
func (p *Puzzle) Seconds() int { return p.seconds }
func (p *Puzzle) Won() bool { return p.won }
func (p *Puzzle) Best(n int) int { return p.best[n] }

// Tiles returns a copy of the board in row-major order.
func (p *Puzzle) Tiles() []int {
	out := make([]int, len(p.tiles))
	copy(out, p.tiles)
	return out
}

// SetSize switches to an n×n board and reshuffles. Sizes other than 3, 4
// and 5 are ignored.
func (p *Puzzle) SetSize(n int) bool {
	for _, s := range sizes {
		if s == n {
			p.size = n
			p.Shuffle()
			return true
		}
	}
	return false
}

// Shuffle deals a random solvable, unsolved arrangement and restarts the
// timer.
func (p *Puzzle) Shuffle() {
	n := p.size * p.size
	tiles := make([]int, n)
	for {
		for i := 0; i < n-1; i++ {
			tiles[i] = i + 1
		}
		tiles[n-1] = 0
		p.rng.Shuffle(n, func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
		if Solvable(tiles, p.size) && !solved(tiles) {
			break
		}
	}
	p.tiles = tiles
	p.moves, p.seconds = 0, 0
	p.playing, p.won = true, false
}

// Solvable applies the inversion-parity rule. Odd widths need an even
// inversion count; even widths need inversions plus the blank's row (from
// the top, zero based) to be odd.
func Solvable(tiles []int, size int) bool {
	inversions := 0
	for i := 0; i < len(tiles); i++ {
		if tiles[i] == 0 {
			continue
		}
		for j := i + 1; j < len(tiles); j++ {
			if tiles[j] != 0 && tiles[i] > tiles[j] {
				inversions++
			}
		}
	}
	if size%2 == 1 {
		return inversions%2 == 0
	}
	blankRow := indexOf(tiles, 0) / size
	return (inversions+blankRow)%2 == 1
}

func solved(tiles []int) bool {
	for i := 0; i < len(tiles)-1; i++ {
		if tiles[i] != i+1 {
			return false
		}
	}
	return tiles[len(tiles)-1] == 0
}

func indexOf(tiles []int, v int) int {
	for i, t := range tiles {
		if t == v {
			return i
		}
	}
	return -1
}

// Move slides the tile at index into the blank when they are adjacent.
func (p *Puzzle) Move(index int) bool {
	if p.won || index < 0 || index >= len(p.tiles) || p.tiles[index] == 0 {
		return false
	}
	blank := indexOf(p.tiles, 0)
	r, c := index/p.size, index%p.size
	br, bc := blank/p.size, blank%p.size
	adjacent := (abs(r-br) == 1 && c == bc) || (abs(c-bc) == 1 && r == br)
	if !adjacent {
		return false
	}
	p.tiles[index], p.tiles[blank] = p.tiles[blank], p.tiles[index]
	p.moves++
	if solved(p.tiles) {
		p.won = true
		p.playing = false
		if b := p.best[p.size]; b == 0 || p.moves < b {
			p.best[p.size] = p.moves
		}
	}
	return true
}

// slide moves the tile that sits dr/dc away from the blank into it.
func (p *Puzzle) slide(dr, dc int) bool {
	blank := indexOf(p.tiles, 0)
	r, c := blank/p.size+dr, blank%p.size+dc
	if r < 0 || r >= p.size || c < 0 || c >= p.size {
		return false
	}
	return p.Move(r*p.size + c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Update implements appkit.Interactive.
func (p *Puzzle) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case appkit.Tick:
		if p.playing && !p.won {
			p.seconds++
		}
	case appkit.Click:
		p.click(msg.X, msg.Y)
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			p.slide(1, 0)
		case "down", "j":
			p.slide(-1, 0)
		case "left", "h":
			p.slide(0, 1)
		case "right", "l":
			p.slide(0, -1)
		case "3", "4", "5":
			p.SetSize(int(msg.String()[0] - '0'))
		case "r":
			p.Shuffle()
		}
	}
	return nil
}

func (p *Puzzle) click(x, y int) {
	if y == 0 {
		switch {
		case x >= 0 && x < 5:
			p.SetSize(3)
		case x >= 6 && x < 11:
			p.SetSize(4)
		case x >= 12 && x < 17:
			p.SetSize(5)
		case x >= 18 && x < 27:
			p.Shuffle()
		}
		return
	}
	row, col := y-gridTop, x/tileStride
	if row < 0 || row >= p.size || col >= p.size || x%tileStride == tileStride-1 {
		return
	}
	p.Move(row*p.size + col)
}

// View implements state.Content.
func (p *Puzzle) View(width, height int) string {
	var sb strings.Builder
	for i, s := range sizes {
		label := fmt.Sprintf("[%dx%d]", s, s)
		if s == p.size {
			label = theme.Render(p.styles.Highlight, label)
		}
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(label)
	}
	sb.WriteString(" [Shuffle]\n")
	status := fmt.Sprintf("Moves: %d  Time: %d:%02d", p.moves, p.seconds/60, p.seconds%60)
	if b := p.best[p.size]; b > 0 {
		status += fmt.Sprintf("  Best: %d", b)
	}
	sb.WriteString(status + "\n\n")
	for r := 0; r < p.size; r++ {
		for c := 0; c < p.size; c++ {
			t := p.tiles[r*p.size+c]
			cell := "    "
			if t != 0 {
				cell = fmt.Sprintf("[%2d]", t)
			}
			sb.WriteString(cell)
			if c < p.size-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	if p.won {
		sb.WriteString("\n" + theme.Render(p.styles.Success, fmt.Sprintf("🎉 Solved in %d moves!", p.moves)))
	} else {
		sb.WriteString("\n" + theme.Render(p.styles.Info, "Arrows slide tiles, 3/4/5 change size, r reshuffles."))
	}
	return appkit.Fit(sb.String(), width, height)
}
