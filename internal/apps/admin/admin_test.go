package admin

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/state"
)

func newPanel() (*Panel, state.DataStore) {
	store := state.NewDataStore(state.DataOptions{Problems: state.SampleProblems()})
	return New(store, nil), store
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typeText(p *Panel, s string) {
	for _, r := range s {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestManageListsProblems(t *testing.T) {
	p, _ := newPanel()
	view := p.View(60, 20)
	for _, want := range []string{"[Manage Problems]", "Problems (3)", "Two Sum", "Binary Tree", "Test cases: Two Sum", "[2,7,11,15], target=9 → [0,1]"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDeleteProblem(t *testing.T) {
	p, store := newPanel()
	p.Update(key(tea.KeyDown))
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if len(store.Problems()) != 2 {
		t.Fatalf("expected delete, store has %d", len(store.Problems()))
	}
	if _, ok := store.Problem(4); ok {
		t.Fatal("Reverse String should be gone")
	}
	if !strings.Contains(p.Notice(), "Reverse String") {
		t.Fatalf("unexpected notice %q", p.Notice())
	}
	if sel, _ := p.Selected(); sel.Title != "Binary Tree Maximum Path Sum" {
		t.Fatalf("cursor should stay in range, selected %+v", sel)
	}
}

func TestAddAndDeleteTestCase(t *testing.T) {
	p, store := newPanel()
	p.Update(key(tea.KeyTab))
	p.Update(key(tea.KeyTab))
	typeText(p, "[4,4]")
	p.Update(key(tea.KeyTab))
	typeText(p, "8")
	p.Update(key(tea.KeyEnter))
	if p.Err() != nil {
		t.Fatalf("unexpected error %v", p.Err())
	}
	two, _ := store.Problem(1)
	if len(two.TestCases) != 3 || two.TestCases[2].Input != "[4,4]" || two.TestCases[2].ExpectedOutput != "8" {
		t.Fatalf("unexpected cases %+v", two.TestCases)
	}

	p.Update(key(tea.KeyShiftTab))
	p.Update(key(tea.KeyShiftTab))
	p.Update(key(tea.KeyUp))
	p.Update(key(tea.KeyDelete))
	two, _ = store.Problem(1)
	if len(two.TestCases) != 2 || two.TestCases[1].Input != "[3,2,4], target=6" {
		t.Fatalf("expected the last case removed, got %+v", two.TestCases)
	}
}

func TestAddTestCaseNeedsBothFields(t *testing.T) {
	p, store := newPanel()
	p.Update(key(tea.KeyTab))
	p.Update(key(tea.KeyTab))
	typeText(p, "only input")
	p.Update(key(tea.KeyEnter))
	if !errors.Is(p.Err(), state.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", p.Err())
	}
	if two, _ := store.Problem(1); len(two.TestCases) != 2 {
		t.Fatal("nothing should be added")
	}
	if !strings.Contains(p.View(60, 20), "Please fill in all fields") {
		t.Fatal("missing field error should be shown")
	}
}

func TestCreateProblem(t *testing.T) {
	p, store := newPanel()
	p.Update(key(tea.KeyCtrlT))
	if p.Tab() != TabAdd {
		t.Fatal("ctrl+t should switch to the add tab")
	}
	typeText(p, "Valid Parens")
	p.Update(key(tea.KeyTab))
	typeText(p, "Check the brackets.")
	p.Update(key(tea.KeyTab))
	p.Update(key(tea.KeyRight))
	p.Update(key(tea.KeyRight))
	if p.Difficulty() != state.DifficultyHard {
		t.Fatalf("expected Hard, got %s", p.Difficulty())
	}
	p.Update(key(tea.KeyEnter))
	if p.Err() != nil || p.Tab() != TabManage {
		t.Fatalf("expected success on the manage tab, err=%v tab=%d", p.Err(), p.Tab())
	}
	problems := store.Problems()
	last := problems[len(problems)-1]
	if last.Title != "Valid Parens" || last.Description != "Check the brackets." || last.Difficulty != state.DifficultyHard {
		t.Fatalf("unexpected problem %+v", last)
	}
	if sel, _ := p.Selected(); sel.ID != last.ID {
		t.Fatalf("new problem should be selected, got %+v", sel)
	}
}

func TestCreateRequiresTitleAndDescription(t *testing.T) {
	p, store := newPanel()
	p.SwitchTab(TabAdd)
	typeText(p, "Title only")
	p.Update(key(tea.KeyEnter))
	if !errors.Is(p.Err(), state.ErrMissingField) || p.Tab() != TabAdd {
		t.Fatalf("expected rejection on the add tab, err=%v", p.Err())
	}
	if len(store.Problems()) != 3 {
		t.Fatal("nothing should be created")
	}
}

func TestClicks(t *testing.T) {
	p, _ := newPanel()
	p.Update(appkit.Click{X: 4, Y: listTop + 2})
	if p.Cursor() != 2 {
		t.Fatalf("clicking a row should select it, cursor=%d", p.Cursor())
	}
	// "[Manage Problems] [Add New]"
	p.Update(appkit.Click{X: 20, Y: 0})
	if p.Tab() != TabAdd {
		t.Fatal("clicking the add tab should switch to it")
	}
	p.Update(appkit.Click{X: 2, Y: 0})
	if p.Tab() != TabManage {
		t.Fatal("clicking the manage tab should switch back")
	}
}

func TestFocusReloadsFromStore(t *testing.T) {
	p, store := newPanel()
	if _, err := store.AddProblem(state.NewProblem{Title: "Elsewhere", Description: "added outside"}); err != nil {
		t.Fatal(err)
	}
	p.Update(appkit.Focus{Active: true})
	if len(p.Problems()) != 4 {
		t.Fatalf("expected reload, got %d problems", len(p.Problems()))
	}
}

func TestNilStore(t *testing.T) {
	p := New(nil, nil)
	if !errors.Is(p.Err(), ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", p.Err())
	}
	if view := p.View(40, 10); !strings.Contains(view, "no data store") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}
