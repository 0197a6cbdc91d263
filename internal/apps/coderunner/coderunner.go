// Package coderunner is a small Java/C++ editor backed by the remote
// execution endpoint.
package coderunner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/api"
	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/logging"
	"github.com/atomicstack/termdesk/internal/theme"
)

// Runner executes code. *api.Client satisfies it.
type Runner interface {
	Run(ctx context.Context, req api.RunRequest) (api.ExecutionResult, error)
}

const (
	// RunTimeout bounds a single execution round trip.
	RunTimeout = 30 * time.Second
	maxHistory = 10
	stdinRows  = 2
	outputRows = 4
)

// Run is one recorded execution.
type Run struct {
	Language api.Language
	Code     string
	Input    string
	Result   api.ExecutionResult
	Err      error
	At       time.Time
}

type resultMsg struct {
	gen int
	run Run
}

type pane int

const (
	paneCode pane = iota
	paneInput
)

// Editor is the hosted code runner.
type Editor struct {
	runner   Runner
	language api.Language
	template int
	code     textarea.Model
	stdin    textarea.Model
	focus    pane
	running  bool
	last     *Run
	history  []Run
	gen      int
	now      func() time.Time
	styles   *theme.Styles
}

// New returns an editor loaded with the Java hello world template.
func New(runner Runner, styles *theme.Styles) *Editor {
	if styles == nil {
		styles = theme.Default()
	}
	code := textarea.New()
	code.ShowLineNumbers = true
	code.CharLimit = 0
	code.MaxHeight = 0
	code.Prompt = ""

	stdin := textarea.New()
	stdin.ShowLineNumbers = false
	stdin.Placeholder = "stdin"
	stdin.Prompt = "│ "
	stdin.SetHeight(stdinRows)

	e := &Editor{runner: runner, code: code, stdin: stdin, now: time.Now, styles: styles}
	e.SetLanguage(api.Java)
	e.code.Focus()
	return e
}

func (e *Editor) Language() api.Language { return e.language }
func (e *Editor) Code() string { return e.code.Value() }
func (e *Editor) Running() bool { return e.running }
func (e *Editor) Last() (Run, bool) {
	if e.last == nil {
		return Run{}, false
	}
	return *e.last, true
}

// History returns past runs, newest first.
func (e *Editor) History() []Run {
	out := make([]Run, len(e.history))
	copy(out, e.history)
	return out
}

// SetLanguage switches language, loads its first template and clears the
// last result.
func (e *Editor) SetLanguage(lang api.Language) {
	e.language = lang
	e.template = 0
	e.loadTemplate()
	e.last = nil
}

// NextTemplate cycles through the templates for the current language.
func (e *Editor) NextTemplate() {
	e.template = (e.template + 1) % len(Templates[e.language])
	e.loadTemplate()
}

func (e *Editor) loadTemplate() {
	list := Templates[e.language]
	if len(list) == 0 {
		e.code.SetValue("")
		return
	}
	e.code.SetValue(list[e.template].Code)
}

func (e *Editor) templateName() string {
	list := Templates[e.language]
	if len(list) == 0 {
		return ""
	}
	return list[e.template].Name
}

// Run submits the current code. Only one run is in flight at a time and
// empty programs are not sent.
func (e *Editor) Run() tea.Cmd {
	code := e.code.Value()
	if e.running || strings.TrimSpace(code) == "" {
		return nil
	}
	e.running = true
	e.gen++
	gen := e.gen
	req := api.RunRequest{Language: e.language, Code: code, Input: e.stdin.Value()}
	runner := e.runner
	now := e.now
	return func() tea.Msg {
		run := Run{Language: req.Language, Code: req.Code, Input: req.Input, At: now()}
		if runner == nil {
			run.Err = api.ErrNoClient
			return resultMsg{gen: gen, run: run}
		}
		ctx, cancel := context.WithTimeout(context.Background(), RunTimeout)
		defer cancel()
		run.Result, run.Err = runner.Run(ctx, req)
		return resultMsg{gen: gen, run: run}
	}
}

func (e *Editor) finish(run Run) {
	e.running = false
	if run.Err != nil {
		logging.Error(run.Err)
	}
	e.last = &run
	e.history = append([]Run{run}, e.history...)
	if len(e.history) > maxHistory {
		e.history = e.history[:maxHistory]
	}
}

func (e *Editor) toggleFocus() {
	if e.focus == paneCode {
		e.focus = paneInput
		e.code.Blur()
		e.stdin.Focus()
		return
	}
	e.focus = paneCode
	e.stdin.Blur()
	e.code.Focus()
}

// Update implements appkit.Interactive.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resultMsg:
		if msg.gen == e.gen {
			e.finish(msg.run)
		}
		return nil
	case appkit.Click:
		if msg.Y == 0 {
			return e.clickToolbar(msg.X)
		}
		return nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+r":
			return e.Run()
		case "ctrl+t":
			e.NextTemplate()
			return nil
		case "ctrl+l":
			if e.language == api.Java {
				e.SetLanguage(api.CPP)
			} else {
				e.SetLanguage(api.Java)
			}
			return nil
		case "tab":
			e.toggleFocus()
			return nil
		}
	}
	var cmd tea.Cmd
	if e.focus == paneCode {
		e.code, cmd = e.code.Update(msg)
	} else {
		e.stdin, cmd = e.stdin.Update(msg)
	}
	return cmd
}

// toolbar: "[Java] [C++] [Run]"
func (e *Editor) clickToolbar(x int) tea.Cmd {
	switch {
	case x >= 0 && x < 6:
		e.SetLanguage(api.Java)
	case x >= 7 && x < 12:
		e.SetLanguage(api.CPP)
	case x >= 13 && x < 18:
		return e.Run()
	}
	return nil
}

func (e *Editor) filename() string {
	if e.language == api.CPP {
		return "main.cpp"
	}
	return "Main.java"
}

// View implements state.Content.
func (e *Editor) View(width, height int) string {
	editorRows := height - stdinRows - outputRows - 3
	if editorRows < 1 {
		editorRows = 1
	}
	e.code.SetWidth(width)
	e.code.SetHeight(editorRows)
	e.stdin.SetWidth(width)

	var sb strings.Builder
	java, cpp := "[Java]", "[C++]"
	if e.language == api.Java {
		java = theme.Render(e.styles.Highlight, java)
	} else {
		cpp = theme.Render(e.styles.Highlight, cpp)
	}
	run := "[Run]"
	if e.running {
		run = "[Running…]"
	}
	sb.WriteString(fmt.Sprintf("%s %s %s  %s · %s", java, cpp, run, e.filename(), e.templateName()))
	sb.WriteString("\n")
	sb.WriteString(e.code.View())
	sb.WriteString("\n")
	sb.WriteString(theme.Render(e.styles.Info, "stdin (tab to switch, ctrl+r run, ctrl+t template, ctrl+l language)"))
	sb.WriteString("\n")
	sb.WriteString(e.stdin.View())
	sb.WriteString("\n")
	sb.WriteString(e.outputView())
	return appkit.Fit(sb.String(), width, height)
}

func (e *Editor) outputView() string {
	if e.running {
		return theme.Render(e.styles.Info, "Running...")
	}
	if e.last == nil {
		return theme.Render(e.styles.Info, "Output appears here.")
	}
	r := e.last
	if r.Err != nil {
		return theme.Render(e.styles.Error, "✗ "+r.Err.Error())
	}
	header := fmt.Sprintf("Output (%s, %dms)", r.Result.Status, r.Result.ExecutionTime.Milliseconds())
	body := r.Result.Output
	style := e.styles.Success
	if r.Result.Status != api.StatusSuccess {
		body = r.Result.Error
		style = e.styles.Error
	}
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if len(lines) > outputRows-1 {
		lines = lines[:outputRows-1]
	}
	return theme.Render(style, header) + "\n" + strings.Join(lines, "\n")
}
