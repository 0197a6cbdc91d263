package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/termdesk/internal/logging/events"
)

// Language is a language accepted by the execution endpoint.
type Language string

const (
	Java Language = "JAVA"
	CPP  Language = "CPP"
)

// ParseLanguage accepts java, cpp or c++ in any case.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "java":
		return Java, nil
	case "cpp", "c++":
		return CPP, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// RunRequest is the body of POST /api/guest/run.
type RunRequest struct {
	Language Language `json:"language"`
	Code     string   `json:"code"`
	Input    string   `json:"input"`
}

// Status summarises an execution.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusTimeout Status = "timeout"
)

// NoOutput is reported when a program succeeds without printing anything.
const NoOutput = "Program executed successfully with no output."

// ExecutionResult is the normalised execution outcome.
type ExecutionResult struct {
	Output        string
	Error         string
	ExecutionTime time.Duration
	Status        Status
}

type runResponse struct {
	Output        string `json:"output"`
	Stdout        string `json:"stdout"`
	Error         string `json:"error"`
	Stderr        string `json:"stderr"`
	ExecutionTime int64  `json:"executionTime"`
}

// Run executes code on the backend. Compile and runtime failures come back
// as a result with StatusError; transport and HTTP failures are errors.
func (c *Client) Run(ctx context.Context, req RunRequest) (ExecutionResult, error) {
	if c == nil {
		return ExecutionResult{}, ErrNoClient
	}
	started := time.Now()
	var resp runResponse
	requestID, err := c.do(ctx, "POST", "/api/guest/run", nil, req, &resp)
	events.Content.Run(requestID, string(req.Language), len(req.Code))
	if err != nil {
		status := StatusError
		if errors.Is(err, context.DeadlineExceeded) {
			status = StatusTimeout
		}
		events.Content.RunResult(requestID, string(status), err)
		return ExecutionResult{Status: status, ExecutionTime: time.Since(started)}, fmt.Errorf("run %s: %w", strings.ToLower(string(req.Language)), err)
	}

	res := ExecutionResult{
		Output:        firstNonEmpty(resp.Output, resp.Stdout),
		Error:         firstNonEmpty(resp.Error, resp.Stderr),
		ExecutionTime: time.Duration(resp.ExecutionTime) * time.Millisecond,
		Status:        StatusSuccess,
	}
	if res.ExecutionTime == 0 {
		res.ExecutionTime = time.Since(started)
	}
	if res.Error != "" {
		res.Status = StatusError
	} else if res.Output == "" {
		res.Output = NoOutput
	}
	events.Content.RunResult(requestID, string(res.Status), nil)
	return res, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
