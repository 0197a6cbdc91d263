package coderunner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/api"
	"github.com/atomicstack/termdesk/internal/apps/appkit"
)

type fakeRunner struct {
	reqs []api.RunRequest
	res  api.ExecutionResult
	err  error
}

func (f *fakeRunner) Run(_ context.Context, req api.RunRequest) (api.ExecutionResult, error) {
	f.reqs = append(f.reqs, req)
	return f.res, f.err
}

func TestRunSendsEditorContents(t *testing.T) {
	runner := &fakeRunner{res: api.ExecutionResult{Output: "Hello, World!", Status: api.StatusSuccess, ExecutionTime: 12 * time.Millisecond}}
	e := New(runner, nil)
	e.stdin.SetValue("ada")

	cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd == nil || !e.Running() {
		t.Fatal("ctrl+r should start a run")
	}
	if e.Run() != nil {
		t.Fatal("a second run must wait for the first")
	}
	e.Update(cmd())
	if e.Running() {
		t.Fatal("result should end the run")
	}
	if len(runner.reqs) != 1 {
		t.Fatalf("expected one request, got %d", len(runner.reqs))
	}
	req := runner.reqs[0]
	if req.Language != api.Java || req.Input != "ada" || !strings.Contains(req.Code, "class Main") {
		t.Fatalf("unexpected request %+v", req)
	}
	last, ok := e.Last()
	if !ok || last.Result.Output != "Hello, World!" {
		t.Fatalf("unexpected last run %+v", last)
	}
	if !strings.Contains(e.View(60, 20), "Hello, World!") {
		t.Fatal("output should be rendered")
	}
}

func TestRunErrorIsShown(t *testing.T) {
	runner := &fakeRunner{err: &api.Error{Status: 503, Message: "judge offline"}}
	e := New(runner, nil)
	e.Update(e.Run()())
	last, _ := e.Last()
	var apiErr *api.Error
	if !errors.As(last.Err, &apiErr) || apiErr.Status != 503 {
		t.Fatalf("expected api error, got %v", last.Err)
	}
	if !strings.Contains(e.View(60, 20), "judge offline") {
		t.Fatal("error should be rendered")
	}
}

func TestNilRunner(t *testing.T) {
	e := New(nil, nil)
	e.Update(e.Run()())
	last, _ := e.Last()
	if !errors.Is(last.Err, api.ErrNoClient) {
		t.Fatalf("expected ErrNoClient, got %v", last.Err)
	}
}

func TestLanguageAndTemplates(t *testing.T) {
	e := New(&fakeRunner{}, nil)
	e.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if e.Language() != api.CPP || !strings.Contains(e.Code(), "#include <iostream>") {
		t.Fatalf("expected C++ template, got %s %q", e.Language(), e.Code())
	}
	e.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if e.Code() != Templates[api.CPP][1].Code {
		t.Fatal("ctrl+t should load the next template")
	}
	e.Update(appkit.Click{X: 2, Y: 0})
	if e.Language() != api.Java || e.Code() != Templates[api.Java][0].Code {
		t.Fatal("clicking Java should reload the Java starter")
	}
}

func TestEmptyCodeIsNotSent(t *testing.T) {
	runner := &fakeRunner{}
	e := New(runner, nil)
	e.code.SetValue("   ")
	if e.Run() != nil {
		t.Fatal("blank programs are not submitted")
	}
}

func TestHistoryIsCapped(t *testing.T) {
	e := New(&fakeRunner{res: api.ExecutionResult{Status: api.StatusSuccess}}, nil)
	for i := 0; i < maxHistory+3; i++ {
		e.Update(e.Run()())
	}
	if got := len(e.History()); got != maxHistory {
		t.Fatalf("expected %d history entries, got %d", maxHistory, got)
	}
}
