package mathquiz

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
)

func newQuiz() *Quiz {
	return New(rand.New(rand.NewSource(3)), nil)
}

func TestGenerateStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		for i := 0; i < 500; i++ {
			p := Generate(rng, d)
			switch p.Op {
			case '+':
				if p.Answer != p.A+p.B || p.A > d.maxOperand() || p.B > d.maxOperand() {
					t.Fatalf("bad addition %+v", p)
				}
			case '-':
				if p.Answer != p.A-p.B || p.Answer < 0 {
					t.Fatalf("bad subtraction %+v", p)
				}
			case '*':
				if d == Easy || p.Answer != p.A*p.B || p.A > 12 || p.B > 12 {
					t.Fatalf("bad multiplication %+v on %s", p, d)
				}
			case '/':
				if d != Hard || p.B == 0 || p.A != p.B*p.Answer {
					t.Fatalf("bad division %+v on %s", p, d)
				}
			default:
				t.Fatalf("unknown operator %q", p.Op)
			}
		}
	}
}

func TestScoringUsesStreak(t *testing.T) {
	q := newQuiz()
	q.SetDifficulty(Medium)
	q.Start()
	answer := func() string { return strconv.Itoa(q.Problem().Answer) }

	if q.Submit(answer()) == nil {
		t.Fatal("expected a delayed next-problem command")
	}
	if q.Score() != 20 || q.Streak() != 1 {
		t.Fatalf("unexpected score %d streak %d", q.Score(), q.Streak())
	}
	if q.Submit(answer()) != nil {
		t.Fatal("answers are locked while feedback shows")
	}
	q.Update(nextProblemMsg{gen: q.gen})
	q.Submit(answer())
	if q.Score() != 60 || q.Streak() != 2 {
		t.Fatalf("second answer should score 2x20, got %d streak %d", q.Score(), q.Streak())
	}
	q.Update(nextProblemMsg{gen: q.gen})
	q.Submit("not a number")
	if q.Streak() != 0 || q.Score() != 60 {
		t.Fatalf("wrong answer should reset the streak, got %d/%d", q.Score(), q.Streak())
	}
}

func TestRoundEndsAfterThirtyTicks(t *testing.T) {
	q := newQuiz()
	q.Start()
	q.Submit(strconv.Itoa(q.Problem().Answer))
	for i := 0; i < RoundLength; i++ {
		q.Update(appkit.Tick{})
	}
	if q.Playing() || q.TimeLeft() != 0 {
		t.Fatalf("round should be over, playing=%v left=%d", q.Playing(), q.TimeLeft())
	}
	if q.HighScore() != 10 {
		t.Fatalf("expected high score 10, got %d", q.HighScore())
	}
	if !strings.Contains(q.View(60, 10), "Final score: 10") {
		t.Fatalf("unexpected end view %q", q.View(60, 10))
	}
	q.Update(appkit.Tick{})
	if q.TimeLeft() != 0 {
		t.Fatal("ticks after the round are ignored")
	}
}

func TestTypingAndEnter(t *testing.T) {
	q := newQuiz()
	q.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !q.Playing() {
		t.Fatal("enter should start a round")
	}
	for _, r := range strconv.Itoa(q.Problem().Answer) {
		q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	q.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if q.Score() != 10 {
		t.Fatalf("typed answer should score, got %d", q.Score())
	}
}

func TestDifficultyLockedWhilePlaying(t *testing.T) {
	q := newQuiz()
	q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if q.Difficulty() != Hard {
		t.Fatalf("expected Hard, got %s", q.Difficulty())
	}
	q.Start()
	if q.SetDifficulty(Easy) {
		t.Fatal("difficulty cannot change mid-round")
	}
}
