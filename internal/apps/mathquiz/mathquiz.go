// Package mathquiz is a timed mental arithmetic game.
package mathquiz

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/theme"
)

// Difficulty selects operators, operand range and points per answer.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Easy"
	}
}

func (d Difficulty) ops() []byte {
	switch d {
	case Medium:
		return []byte{'+', '-', '*'}
	case Hard:
		return []byte{'+', '-', '*', '/'}
	default:
		return []byte{'+', '-'}
	}
}

func (d Difficulty) maxOperand() int {
	switch d {
	case Medium:
		return 50
	case Hard:
		return 100
	default:
		return 20
	}
}

// Points is the base score for a correct answer.
func (d Difficulty) Points() int {
	return 10 * (int(d) + 1)
}

const (
	// RoundLength is the number of ticks in one round.
	RoundLength = 30
	// FeedbackDelay is how long the verdict shows before the next problem.
	FeedbackDelay = 500 * time.Millisecond
)

// Problem is one arithmetic question.
type Problem struct {
	A, B   int
	Op     byte
	Answer int
}

func (p Problem) String() string {
	sym := map[byte]string{'+': "+", '-': "-", '*': "×", '/': "÷"}[p.Op]
	return fmt.Sprintf("%d %s %d = ?", p.A, sym, p.B)
}

// Generate builds a problem for d. Subtraction never goes negative and
// division is always exact.
func Generate(rng *rand.Rand, d Difficulty) Problem {
	ops := d.ops()
	op := ops[rng.Intn(len(ops))]
	limit := d.maxOperand()
	var p Problem
	p.Op = op
	switch op {
	case '+':
		p.A, p.B = rng.Intn(limit)+1, rng.Intn(limit)+1
		p.Answer = p.A + p.B
	case '-':
		p.A = rng.Intn(limit) + 1
		p.B = rng.Intn(p.A) + 1
		p.Answer = p.A - p.B
	case '*':
		p.A, p.B = rng.Intn(12)+1, rng.Intn(12)+1
		p.Answer = p.A * p.B
	case '/':
		p.B = rng.Intn(12) + 1
		p.Answer = rng.Intn(12) + 1
		p.A = p.B * p.Answer
	}
	return p
}

type verdict int

const (
	verdictNone verdict = iota
	verdictRight
	verdictWrong
)

type nextProblemMsg struct {
	gen int
}

// Quiz is the hosted math challenge.
type Quiz struct {
	difficulty Difficulty
	problem    Problem
	input      textinput.Model
	score      int
	streak     int
	high       int
	timeLeft   int
	playing    bool
	finished   bool
	verdict    verdict
	gen        int
	rng        *rand.Rand
	styles     *theme.Styles
}

// New returns an idle quiz on Easy.
func New(rng *rand.Rand, styles *theme.Styles) *Quiz {
	if styles == nil {
		styles = theme.Default()
	}
	ti := textinput.New()
	ti.Placeholder = "?"
	ti.CharLimit = 6
	ti.Width = 8
	ti.Prompt = "> "
	return &Quiz{input: ti, timeLeft: RoundLength, rng: appkit.Rand(rng), styles: styles}
}

func (q *Quiz) Score() int { return q.score }
func (q *Quiz) Streak() int { return q.streak }
func (q *Quiz) HighScore() int { return q.high }
func (q *Quiz) TimeLeft() int { return q.timeLeft }
func (q *Quiz) Playing() bool { return q.playing }
func (q *Quiz) Problem() Problem { return q.problem }
func (q *Quiz) Difficulty() Difficulty { return q.difficulty }

// SetDifficulty changes the level between rounds.
func (q *Quiz) SetDifficulty(d Difficulty) bool {
	if q.playing || d < Easy || d > Hard {
		return false
	}
	q.difficulty = d
	return true
}

// Start begins a new round.
func (q *Quiz) Start() tea.Cmd {
	q.score, q.streak = 0, 0
	q.timeLeft = RoundLength
	q.playing, q.finished = true, false
	q.verdict = verdictNone
	q.gen++
	q.problem = Generate(q.rng, q.difficulty)
	q.input.Reset()
	return q.input.Focus()
}

// Submit checks answer against the current problem. A correct answer scores
// (streak+1) times the difficulty's points.
func (q *Quiz) Submit(answer string) tea.Cmd {
	answer = strings.TrimSpace(answer)
	if !q.playing || q.verdict != verdictNone || answer == "" {
		return nil
	}
	n, err := strconv.Atoi(answer)
	if err == nil && n == q.problem.Answer {
		q.score += (q.streak + 1) * q.difficulty.Points()
		q.streak++
		q.verdict = verdictRight
	} else {
		q.streak = 0
		q.verdict = verdictWrong
	}
	gen := q.gen
	return tea.Tick(FeedbackDelay, func(time.Time) tea.Msg { return nextProblemMsg{gen: gen} })
}

func (q *Quiz) next() {
	q.problem = Generate(q.rng, q.difficulty)
	q.verdict = verdictNone
	q.input.Reset()
}

func (q *Quiz) tick() {
	if !q.playing {
		return
	}
	q.timeLeft--
	if q.timeLeft > 0 {
		return
	}
	q.timeLeft = 0
	q.playing, q.finished = false, true
	q.input.Blur()
	if q.score > q.high {
		q.high = q.score
	}
}

// Update implements appkit.Interactive.
func (q *Quiz) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case appkit.Tick:
		q.tick()
		return nil
	case nextProblemMsg:
		if msg.gen == q.gen && q.playing {
			q.next()
		}
		return nil
	case appkit.Click:
		if !q.playing && msg.Y == 0 {
			q.SetDifficulty((q.difficulty + 1) % 3)
		}
		return nil
	case tea.KeyMsg:
		if !q.playing {
			switch msg.String() {
			case "enter", "s":
				return q.Start()
			case "tab":
				q.SetDifficulty((q.difficulty + 1) % 3)
			case "1", "2", "3":
				q.SetDifficulty(Difficulty(msg.String()[0] - '1'))
			}
			return nil
		}
		if msg.Type == tea.KeyEnter {
			return q.Submit(q.input.Value())
		}
	}
	if !q.playing {
		return nil
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return cmd
}

// View implements state.Content.
func (q *Quiz) View(width, height int) string {
	var sb strings.Builder
	header := fmt.Sprintf("Level: %s  Score: %d  Streak: %d", q.difficulty, q.score, q.streak)
	if q.playing {
		header += fmt.Sprintf("  ⏱ %ds", q.timeLeft)
	}
	if q.high > 0 {
		header += fmt.Sprintf("  High: %d", q.high)
	}
	sb.WriteString(header + "\n\n")
	switch {
	case q.playing:
		sb.WriteString(appkit.Center(q.problem.String(), width) + "\n\n")
		sb.WriteString(q.input.View() + "\n\n")
		switch q.verdict {
		case verdictRight:
			sb.WriteString(theme.Render(q.styles.Success, "✓ Correct!"))
		case verdictWrong:
			sb.WriteString(theme.Render(q.styles.Error, fmt.Sprintf("✗ Answer: %d", q.problem.Answer)))
		}
	case q.finished:
		sb.WriteString(fmt.Sprintf("Time's up! Final score: %d\n", q.score))
		if q.score > 0 && q.score >= q.high {
			sb.WriteString(theme.Render(q.styles.Success, "🏆 New high score!") + "\n")
		}
		sb.WriteString("\nPress Enter to play again, Tab to change level.")
	default:
		sb.WriteString("Solve as many problems as you can in 30 seconds!\n\n")
		sb.WriteString("Press Enter to start, Tab or 1-3 to change level.")
	}
	return appkit.Fit(sb.String(), width, height)
}
