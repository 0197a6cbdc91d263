package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Difficulty is the backend's problem grade.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Problem mirrors the backend problem record.
type Problem struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ExamplesJSON    string     `json:"examplesJson"`
	Constraints     string     `json:"constraints"`
	Tags            []string   `json:"tags"`
	TimeLimitMs     int        `json:"timeLimitMs,omitempty"`
	MemoryLimitKb   int        `json:"memoryLimitKb,omitempty"`
	Difficulty      Difficulty `json:"difficulty"`
	CreatedByUserID int64      `json:"createdByUserId"`
}

// TestCase is one input/expected-output pair for a problem.
type TestCase struct {
	ID             int64  `json:"id"`
	ProblemID      int64  `json:"problemId"`
	InputData      string `json:"inputData"`
	ExpectedOutput string `json:"expectedOutput"`
}

// Page is a Spring-style paginated response.
type Page[T any] struct {
	Content       []T  `json:"content"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Size          int  `json:"size"`
	Number        int  `json:"number"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
	Empty         bool `json:"empty"`
}

// ListProblems fetches one zero-based page, optionally filtered by title.
func (c *Client) ListProblems(ctx context.Context, page, size int, title string) (Page[Problem], error) {
	if c == nil {
		return Page[Problem]{}, ErrNoClient
	}
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if t := strings.TrimSpace(title); t != "" {
		q.Set("title", t)
	}
	var out Page[Problem]
	if _, err := c.do(ctx, "GET", "/api/problems/page/list", q, nil, &out); err != nil {
		return Page[Problem]{}, fmt.Errorf("list problems: %w", err)
	}
	return out, nil
}

// GetProblem fetches one problem.
func (c *Client) GetProblem(ctx context.Context, id int64) (Problem, error) {
	if c == nil {
		return Problem{}, ErrNoClient
	}
	var out Problem
	if _, err := c.do(ctx, "GET", "/api/problems/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return Problem{}, fmt.Errorf("get problem %d: %w", id, err)
	}
	return out, nil
}

// ListTestCases fetches the test cases attached to a problem.
func (c *Client) ListTestCases(ctx context.Context, problemID int64) ([]TestCase, error) {
	if c == nil {
		return nil, ErrNoClient
	}
	var out []TestCase
	if _, err := c.do(ctx, "GET", "/api/testcases/problem/"+strconv.FormatInt(problemID, 10), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list test cases for %d: %w", problemID, err)
	}
	return out, nil
}
