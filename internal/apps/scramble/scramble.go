// Package scramble is the word-unscrambling game.
package scramble

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/theme"
)

// Level picks the word list and the points per word.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

var levelNames = [...]string{"Easy", "Medium", "Hard"}

func (l Level) String() string {
	if l < Easy || l > Hard {
		return "?"
	}
	return levelNames[l]
}

// Words holds the word list for each level.
var Words = map[Level][]string{
	Easy:   {"CAT", "DOG", "SUN", "CUP", "HAT", "PEN", "RED", "BIG", "RUN", "FUN"},
	Medium: {"APPLE", "HOUSE", "WATER", "CHAIR", "PHONE", "LIGHT", "MUSIC", "DANCE", "HAPPY", "SMILE"},
	Hard:   {"COMPUTER", "ELEPHANT", "SUNSHINE", "BIRTHDAY", "MOUNTAIN", "LANGUAGE", "CHAMPION", "TREASURE", "KEYBOARD", "ADVENTURE"},
}

const (
	hintCost   = 5
	minPoints  = 5
	nextDelay  = time.Second
	clearDelay = time.Second
)

// Points is the base score for a word at this level.
func (l Level) Points() int {
	return 10 * (int(l) + 1)
}

// Scramble shuffles word until it differs from the original. Words made of
// a single repeated letter are returned unchanged.
func Scramble(rng *rand.Rand, word string) string {
	letters := []rune(word)
	distinct := false
	for _, r := range letters[1:] {
		if r != letters[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		return word
	}
	for {
		rng.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })
		if s := string(letters); s != word {
			return s
		}
	}
}

type feedback int

const (
	feedbackNone feedback = iota
	feedbackRight
	feedbackWrong
)

type advanceMsg struct{ gen int }

type clearMsg struct{ gen int }

// Game is the hosted word scramble.
type Game struct {
	level     Level
	word      string
	scrambled string
	used      map[string]bool
	score     int
	round     int
	hints     int
	over      bool
	feedback  feedback
	gen       int
	input     textinput.Model
	rng       *rand.Rand
	styles    *theme.Styles
}

// New starts an Easy game.
func New(rng *rand.Rand, styles *theme.Styles) *Game {
	if styles == nil {
		styles = theme.Default()
	}
	ti := textinput.New()
	ti.Placeholder = "your guess"
	ti.CharLimit = 16
	ti.Width = 16
	ti.Prompt = "> "
	ti.Focus()
	g := &Game{rng: appkit.Rand(rng), styles: styles, input: ti}
	g.Reset()
	return g
}

func (g *Game) Level() Level { return g.level }
func (g *Game) Word() string { return g.word }
func (g *Game) Score() int { return g.score }
func (g *Game) Round() int { return g.round }
func (g *Game) Hints() int { return g.hints }
func (g *Game) Over() bool { return g.over }

// Reset clears progress and deals the first word.
func (g *Game) Reset() {
	g.used = make(map[string]bool)
	g.score, g.round = 0, 0
	g.over = false
	g.gen++
	g.nextWord()
}

// SetLevel switches word list and restarts.
func (g *Game) SetLevel(l Level) {
	if l < Easy || l > Hard {
		return
	}
	g.level = l
	g.Reset()
}

func (g *Game) nextWord() {
	var available []string
	for _, w := range Words[g.level] {
		if !g.used[w] {
			available = append(available, w)
		}
	}
	g.feedback = feedbackNone
	g.hints = 0
	g.input.Reset()
	if len(available) == 0 {
		g.over = true
		g.word, g.scrambled = "", ""
		return
	}
	g.word = available[g.rng.Intn(len(available))]
	g.used[g.word] = true
	g.scrambled = Scramble(g.rng, g.word)
}

// Display is the scrambled word with hinted letters fixed in place.
func (g *Game) Display() string {
	out := []rune(g.scrambled)
	word := []rune(g.word)
	for i := 0; i < g.hints && i < len(word); i++ {
		out[i] = word[i]
	}
	return string(out)
}

// Hint reveals one more leading letter. At most len(word)-2 hints are given.
func (g *Game) Hint() bool {
	if g.over || g.feedback == feedbackRight || g.hints >= len([]rune(g.word))-2 {
		return false
	}
	g.hints++
	return true
}

// Guess checks a guess, case-insensitively. A correct guess scores the
// level's points minus five per hint, never less than five.
func (g *Game) Guess(s string) tea.Cmd {
	s = strings.ToUpper(strings.TrimSpace(s))
	if g.over || s == "" || g.feedback == feedbackRight {
		return nil
	}
	gen := g.gen
	if s != g.word {
		g.feedback = feedbackWrong
		return tea.Tick(clearDelay, func(time.Time) tea.Msg { return clearMsg{gen: gen} })
	}
	points := g.level.Points() - g.hints*hintCost
	if points < minPoints {
		points = minPoints
	}
	g.score += points
	g.round++
	g.feedback = feedbackRight
	return tea.Tick(nextDelay, func(time.Time) tea.Msg { return advanceMsg{gen: gen} })
}

// Update implements appkit.Interactive.
func (g *Game) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case advanceMsg:
		if msg.gen == g.gen && g.feedback == feedbackRight {
			g.nextWord()
		}
		return nil
	case clearMsg:
		if msg.gen == g.gen && g.feedback == feedbackWrong {
			g.feedback = feedbackNone
		}
		return nil
	case appkit.Click:
		if msg.Y == 0 {
			g.clickHeader(msg.X)
		}
		return nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return g.Guess(g.input.Value())
		case "tab":
			g.Hint()
			return nil
		case "ctrl+n":
			g.Reset()
			return nil
		case "ctrl+l":
			g.SetLevel((g.level + 1) % 3)
			return nil
		}
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return cmd
}

// header: "[Easy] [Medium] [Hard] [Reset]"
func (g *Game) clickHeader(x int) {
	switch {
	case x >= 0 && x < 6:
		g.SetLevel(Easy)
	case x >= 7 && x < 15:
		g.SetLevel(Medium)
	case x >= 16 && x < 22:
		g.SetLevel(Hard)
	case x >= 23 && x < 30:
		g.Reset()
	}
}

// View implements state.Content.
func (g *Game) View(width, height int) string {
	var sb strings.Builder
	for l := Easy; l <= Hard; l++ {
		label := "[" + l.String() + "]"
		if l == g.level {
			label = theme.Render(g.styles.Highlight, label)
		}
		sb.WriteString(label + " ")
	}
	sb.WriteString("[Reset]\n")
	sb.WriteString(fmt.Sprintf("Score: %d  Round: %d/%d\n\n", g.score, g.round, len(Words[g.level])))
	if g.over {
		sb.WriteString(theme.Render(g.styles.Success, fmt.Sprintf("🎉 All words solved! Final score: %d", g.score)) + "\n")
		sb.WriteString("Press ctrl+n to play again.")
		return appkit.Fit(sb.String(), width, height)
	}
	sb.WriteString(appkit.Center(strings.Join(strings.Split(g.Display(), ""), " "), width) + "\n\n")
	sb.WriteString(g.input.View() + "\n\n")
	switch g.feedback {
	case feedbackRight:
		sb.WriteString(theme.Render(g.styles.Success, "✓ Correct!"))
	case feedbackWrong:
		sb.WriteString(theme.Render(g.styles.Error, "✗ Try again"))
	default:
		if g.hints > 0 {
			sb.WriteString(theme.Render(g.styles.Info, fmt.Sprintf("Hints used: %d (-%d points)", g.hints, g.hints*hintCost)))
		} else {
			sb.WriteString(theme.Render(g.styles.Info, "Enter to guess, Tab for a hint, ctrl+l for the next level."))
		}
	}
	return appkit.Fit(sb.String(), width, height)
}
