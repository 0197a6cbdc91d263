package state

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Difficulty grades a problem in the local problem bank.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the grades in cycling order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// SubmissionStatus is the verdict recorded for a submission.
type SubmissionStatus string

const (
	StatusPending      SubmissionStatus = "Pending"
	StatusAccepted     SubmissionStatus = "Accepted"
	StatusWrongAnswer  SubmissionStatus = "Wrong Answer"
	StatusTimeLimit    SubmissionStatus = "Time Limit Exceeded"
	StatusRuntimeError SubmissionStatus = "Runtime Error"
)

var (
	ErrProblemNotFound = errors.New("problem not found")
	ErrMissingField    = errors.New("required field is empty")
)

type TestCase struct {
	ID             int64
	Input          string
	ExpectedOutput string
}

type Problem struct {
	ID          int64
	Title       string
	Description string
	Difficulty  Difficulty
	TestCases   []TestCase
	CreatedAt   time.Time
}

type Submission struct {
	ID           int64
	ProblemID    int64
	ProblemTitle string
	Code         string
	Language     string
	Status       SubmissionStatus
	SubmittedAt  time.Time
}

// NewProblem is the admin form's input for AddProblem.
type NewProblem struct {
	Title       string
	Description string
	Difficulty  Difficulty
}

// NewSubmission is what the submit window hands to Submit. The problem may
// come from the remote bank, so its title travels with it.
type NewSubmission struct {
	ProblemID    int64
	ProblemTitle string
	Code         string
	Language     string
}

// Judge decides the verdict for a new submission.
type Judge func(Submission) SubmissionStatus

// RandomJudge picks one of the four final verdicts uniformly.
func RandomJudge(r *rand.Rand) Judge {
	verdicts := []SubmissionStatus{StatusAccepted, StatusWrongAnswer, StatusTimeLimit, StatusRuntimeError}
	return func(Submission) SubmissionStatus {
		return verdicts[r.Intn(len(verdicts))]
	}
}

// DataStore is the in-memory problem bank and submission history shared by
// the admin panel, the submit windows and the submissions list.
type DataStore interface {
	Problems() []Problem
	Problem(id int64) (Problem, bool)
	AddProblem(NewProblem) (Problem, error)
	DeleteProblem(id int64) bool
	AddTestCase(problemID int64, input, expected string) (TestCase, error)
	DeleteTestCase(problemID, testCaseID int64) bool
	Submissions() []Submission
	Submit(NewSubmission) (Submission, error)
}

// DataOptions seeds a store. A nil Judge leaves submissions Pending; a nil
// Now uses time.Now.
type DataOptions struct {
	Problems    []Problem
	Submissions []Submission
	Judge       Judge
	Now         func() time.Time
}

type dataStore struct {
	mu          sync.Mutex
	problems    []Problem
	submissions []Submission
	nextID      int64
	judge       Judge
	now         func() time.Time
}

func NewDataStore(opts DataOptions) DataStore {
	s := &dataStore{judge: opts.Judge, now: opts.Now}
	if s.now == nil {
		s.now = time.Now
	}
	for _, p := range opts.Problems {
		p.TestCases = append([]TestCase(nil), p.TestCases...)
		s.problems = append(s.problems, p)
		s.bump(p.ID)
		for _, tc := range p.TestCases {
			s.bump(tc.ID)
		}
	}
	// history is kept newest first
	s.submissions = append(s.submissions, opts.Submissions...)
	for _, sub := range opts.Submissions {
		s.bump(sub.ID)
	}
	return s
}

func (s *dataStore) bump(id int64) {
	if id > s.nextID {
		s.nextID = id
	}
}

func (s *dataStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *dataStore) indexLocked(id int64) int {
	for i, p := range s.problems {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneProblem(p Problem) Problem {
	p.TestCases = append([]TestCase(nil), p.TestCases...)
	return p
}

func (s *dataStore) Problems() []Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Problem, len(s.problems))
	for i, p := range s.problems {
		out[i] = cloneProblem(p)
	}
	return out
}

func (s *dataStore) Problem(id int64) (Problem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return cloneProblem(s.problems[i]), true
	}
	return Problem{}, false
}

func (s *dataStore) AddProblem(np NewProblem) (Problem, error) {
	title := strings.TrimSpace(np.Title)
	if title == "" || strings.TrimSpace(np.Description) == "" {
		return Problem{}, ErrMissingField
	}
	if np.Difficulty == "" {
		np.Difficulty = DifficultyEasy
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := Problem{
		ID:          s.id(),
		Title:       title,
		Description: np.Description,
		Difficulty:  np.Difficulty,
		CreatedAt:   s.now(),
	}
	s.problems = append(s.problems, p)
	return cloneProblem(p), nil
}

func (s *dataStore) DeleteProblem(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.problems = append(s.problems[:i], s.problems[i+1:]...)
	return true
}

func (s *dataStore) AddTestCase(problemID int64, input, expected string) (TestCase, error) {
	if strings.TrimSpace(input) == "" || strings.TrimSpace(expected) == "" {
		return TestCase{}, ErrMissingField
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(problemID)
	if i < 0 {
		return TestCase{}, ErrProblemNotFound
	}
	tc := TestCase{ID: s.id(), Input: input, ExpectedOutput: expected}
	s.problems[i].TestCases = append(s.problems[i].TestCases, tc)
	return tc, nil
}

func (s *dataStore) DeleteTestCase(problemID, testCaseID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(problemID)
	if i < 0 {
		return false
	}
	cases := s.problems[i].TestCases
	for j, tc := range cases {
		if tc.ID == testCaseID {
			s.problems[i].TestCases = append(cases[:j:j], cases[j+1:]...)
			return true
		}
	}
	return false
}

// Submissions returns the history, newest first.
func (s *dataStore) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Submission(nil), s.submissions...)
}

func (s *dataStore) Submit(ns NewSubmission) (Submission, error) {
	if strings.TrimSpace(ns.Code) == "" {
		return Submission{}, ErrMissingField
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	title := ns.ProblemTitle
	if i := s.indexLocked(ns.ProblemID); i >= 0 && title == "" {
		title = s.problems[i].Title
	}
	if title == "" {
		return Submission{}, ErrProblemNotFound
	}
	sub := Submission{
		ID:           s.id(),
		ProblemID:    ns.ProblemID,
		ProblemTitle: title,
		Code:         ns.Code,
		Language:     ns.Language,
		Status:       StatusPending,
		SubmittedAt:  s.now(),
	}
	if s.judge != nil {
		sub.Status = s.judge(sub)
	}
	s.submissions = append([]Submission{sub}, s.submissions...)
	return sub, nil
}

// SampleProblems is the bank a fresh desktop starts with.
func SampleProblems() []Problem {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	return []Problem{
		{
			ID:          1,
			Title:       "Two Sum",
			Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
			Difficulty:  DifficultyEasy,
			TestCases: []TestCase{
				{ID: 2, Input: "[2,7,11,15], target=9", ExpectedOutput: "[0,1]"},
				{ID: 3, Input: "[3,2,4], target=6", ExpectedOutput: "[1,2]"},
			},
			CreatedAt: day(15),
		},
		{
			ID:          4,
			Title:       "Reverse String",
			Description: "Write a function that reverses a string. The input string is given as an array of characters.",
			Difficulty:  DifficultyEasy,
			TestCases: []TestCase{
				{ID: 5, Input: `["h","e","l","l","o"]`, ExpectedOutput: `["o","l","l","e","h"]`},
			},
			CreatedAt: day(16),
		},
		{
			ID:          6,
			Title:       "Binary Tree Maximum Path Sum",
			Description: "Given a non-empty binary tree, find the maximum path sum.",
			Difficulty:  DifficultyHard,
			TestCases: []TestCase{
				{ID: 7, Input: "[1,2,3]", ExpectedOutput: "6"},
			},
			CreatedAt: day(17),
		},
	}
}

// SampleSubmissions is the history a fresh desktop starts with, newest first.
func SampleSubmissions() []Submission {
	return []Submission{
		{ID: 9, ProblemID: 4, ProblemTitle: "Reverse String", Code: "function reverseString(s) { ... }", Language: "JavaScript", Status: StatusWrongAnswer, SubmittedAt: time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC)},
		{ID: 8, ProblemID: 1, ProblemTitle: "Two Sum", Code: "function twoSum(nums, target) { ... }", Language: "JavaScript", Status: StatusAccepted, SubmittedAt: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)},
	}
}
