package memory

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
)

func newGame() *Game {
	return New(rand.New(rand.NewSource(1)), nil)
}

func pairs(g *Game) map[string][]int {
	out := map[string][]int{}
	for i := range g.cards {
		out[g.Face(i)] = append(out[g.Face(i)], i)
	}
	return out
}

func mismatch(g *Game) (int, int) {
	for j := 1; j < len(g.cards); j++ {
		if g.Face(j) != g.Face(0) {
			return 0, j
		}
	}
	panic("board has a single face")
}

func TestDealHasEightPairs(t *testing.T) {
	g := newGame()
	p := pairs(g)
	if len(p) != 8 {
		t.Fatalf("expected 8 faces, got %d", len(p))
	}
	for face, idx := range p {
		if len(idx) != 2 {
			t.Fatalf("face %s dealt %d times", face, len(idx))
		}
	}
}

func TestMissFlipsBack(t *testing.T) {
	g := newGame()
	a, b := mismatch(g)
	if cmd := g.Flip(a); cmd != nil {
		t.Fatal("first card should not schedule anything")
	}
	if cmd := g.Flip(b); cmd == nil {
		t.Fatal("miss should schedule a flip back")
	}
	if g.Moves() != 1 {
		t.Fatalf("expected 1 move, got %d", g.Moves())
	}
	// b is at most 2 since each face is dealt exactly twice
	if g.Flip(b+1) != nil || g.Revealed(b+1) {
		t.Fatal("flips are locked while a miss is showing")
	}
	g.Update(flipBackMsg{gen: g.gen})
	if g.Revealed(a) || g.Revealed(b) {
		t.Fatal("mismatched pair should be face down again")
	}
}

func TestStaleFlipBackIgnored(t *testing.T) {
	g := newGame()
	a, b := mismatch(g)
	g.Flip(a)
	g.Flip(b)
	stale := flipBackMsg{gen: g.gen}
	g.Reset()
	g.Flip(0)
	g.Update(stale)
	if !g.Revealed(0) {
		t.Fatal("stale flip-back must not touch the new board")
	}
}

func TestMatchingAllPairsWins(t *testing.T) {
	g := newGame()
	for _, idx := range pairs(g) {
		g.Flip(idx[0])
		if cmd := g.Flip(idx[1]); cmd != nil {
			t.Fatal("a match should not schedule a flip back")
		}
	}
	if !g.Won() || g.Matches() != 8 || g.Moves() != 8 || g.Best() != 8 {
		t.Fatalf("unexpected end state won=%v matches=%d moves=%d best=%d", g.Won(), g.Matches(), g.Moves(), g.Best())
	}
	if !strings.Contains(g.View(40, 12), "You won in 8 moves") {
		t.Fatalf("expected win banner, got %q", g.View(40, 12))
	}
	g.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if g.Won() || g.Moves() != 0 || g.Best() != 8 {
		t.Fatal("new game should reset progress but keep the best score")
	}
}

func TestCardAt(t *testing.T) {
	cases := []struct {
		x, y int
		want int
		ok   bool
	}{
		{0, 3, 0, true},
		{7, 3, 1, true},
		{6, 3, 0, false},
		{0, 4, 0, false},
		{0, 5, 4, true},
		{21, 9, 15, true},
		{28, 3, 0, false},
		{0, 11, 0, false},
	}
	for _, tc := range cases {
		got, ok := cardAt(tc.x, tc.y)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("cardAt(%d,%d) = %d,%v want %d,%v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestClickFlipsCard(t *testing.T) {
	g := newGame()
	g.Update(appkit.Click{X: 8, Y: 3})
	if !g.Revealed(1) {
		t.Fatal("click should flip card 1")
	}
	g.Update(appkit.Click{X: 2, Y: 1})
	if g.Revealed(1) {
		t.Fatal("New Game row should reset the board")
	}
}
