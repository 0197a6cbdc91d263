package state

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)

func sampleStore(judge Judge) DataStore {
	return NewDataStore(DataOptions{
		Problems:    SampleProblems(),
		Submissions: SampleSubmissions(),
		Judge:       judge,
		Now:         func() time.Time { return fixedNow },
	})
}

func TestSampleDataLoaded(t *testing.T) {
	s := sampleStore(nil)
	problems := s.Problems()
	if len(problems) != 3 || problems[0].Title != "Two Sum" || len(problems[0].TestCases) != 2 {
		t.Fatalf("unexpected problems %+v", problems)
	}
	subs := s.Submissions()
	if len(subs) != 2 || subs[0].ProblemTitle != "Reverse String" || subs[1].Status != StatusAccepted {
		t.Fatalf("unexpected submissions %+v", subs)
	}
}

func TestAddProblemAssignsFreshID(t *testing.T) {
	s := sampleStore(nil)
	p, err := s.AddProblem(NewProblem{Title: "  Valid Parens ", Description: "Check brackets."})
	if err != nil {
		t.Fatalf("AddProblem: %v", err)
	}
	if p.ID != 10 || p.Title != "Valid Parens" || p.Difficulty != DifficultyEasy || !p.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected problem %+v", p)
	}
	got, ok := s.Problem(p.ID)
	if !ok || got.Title != "Valid Parens" {
		t.Fatalf("problem not stored: %+v", got)
	}
	if len(s.Problems()) != 4 {
		t.Fatal("expected the new problem at the end of the bank")
	}
}

func TestAddProblemRequiresTitleAndDescription(t *testing.T) {
	s := sampleStore(nil)
	for _, np := range []NewProblem{{Title: " ", Description: "d"}, {Title: "t", Description: ""}} {
		if _, err := s.AddProblem(np); !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField for %+v, got %v", np, err)
		}
	}
	if len(s.Problems()) != 3 {
		t.Fatal("rejected problems must not be stored")
	}
}

func TestDeleteProblem(t *testing.T) {
	s := sampleStore(nil)
	if !s.DeleteProblem(4) {
		t.Fatal("expected delete to apply")
	}
	if s.DeleteProblem(4) {
		t.Fatal("second delete should report false")
	}
	if _, ok := s.Problem(4); ok {
		t.Fatal("deleted problem still present")
	}
}

func TestTestCases(t *testing.T) {
	s := sampleStore(nil)
	tc, err := s.AddTestCase(6, "[-3]", "-3")
	if err != nil {
		t.Fatalf("AddTestCase: %v", err)
	}
	p, _ := s.Problem(6)
	if len(p.TestCases) != 2 || p.TestCases[1] != tc {
		t.Fatalf("unexpected cases %+v", p.TestCases)
	}
	if _, err := s.AddTestCase(6, "", "x"); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if _, err := s.AddTestCase(404, "a", "b"); !errors.Is(err, ErrProblemNotFound) {
		t.Fatalf("expected ErrProblemNotFound, got %v", err)
	}
	if !s.DeleteTestCase(1, 2) || s.DeleteTestCase(1, 2) {
		t.Fatal("expected exactly one successful delete")
	}
	p, _ = s.Problem(1)
	if len(p.TestCases) != 1 || p.TestCases[0].ID != 3 {
		t.Fatalf("unexpected cases after delete %+v", p.TestCases)
	}
}

func TestReturnedProblemsAreCopies(t *testing.T) {
	s := sampleStore(nil)
	p, _ := s.Problem(1)
	p.TestCases[0].Input = "mutated"
	again, _ := s.Problem(1)
	if again.TestCases[0].Input == "mutated" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestSubmitPrependsJudgedSubmission(t *testing.T) {
	s := sampleStore(func(Submission) SubmissionStatus { return StatusTimeLimit })
	sub, err := s.Submit(NewSubmission{ProblemID: 1, Code: "return [0,1]", Language: "Python"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.ProblemTitle != "Two Sum" || sub.Status != StatusTimeLimit || !sub.SubmittedAt.Equal(fixedNow) {
		t.Fatalf("unexpected submission %+v", sub)
	}
	if subs := s.Submissions(); len(subs) != 3 || subs[0].ID != sub.ID {
		t.Fatalf("expected new submission first, got %+v", subs)
	}
}

func TestSubmitRemoteProblemKeepsGivenTitle(t *testing.T) {
	s := sampleStore(nil)
	sub, err := s.Submit(NewSubmission{ProblemID: 77, ProblemTitle: "Remote", Code: "x", Language: "Java"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.ProblemTitle != "Remote" || sub.Status != StatusPending {
		t.Fatalf("unexpected submission %+v", sub)
	}
}

func TestSubmitRejections(t *testing.T) {
	s := sampleStore(nil)
	if _, err := s.Submit(NewSubmission{ProblemID: 1, Code: "  \n"}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if _, err := s.Submit(NewSubmission{ProblemID: 404, Code: "x"}); !errors.Is(err, ErrProblemNotFound) {
		t.Fatalf("expected ErrProblemNotFound, got %v", err)
	}
	if len(s.Submissions()) != 2 {
		t.Fatal("rejected submissions must not be recorded")
	}
}

func TestRandomJudgeReturnsFinalVerdicts(t *testing.T) {
	judge := RandomJudge(rand.New(rand.NewSource(5)))
	seen := map[SubmissionStatus]bool{}
	for i := 0; i < 200; i++ {
		seen[judge(Submission{})] = true
	}
	if seen[StatusPending] || len(seen) != 4 {
		t.Fatalf("unexpected verdicts %v", seen)
	}
}
