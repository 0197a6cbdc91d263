package app

import (
	"errors"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/api"
	"github.com/atomicstack/termdesk/internal/apps"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	APIURL     string
	Token      string
	APITimeout time.Duration
	User       state.User
	// Seed fixes window placement and game shuffles; zero seeds from the clock.
	Seed       int64
	JitterBase state.Point
	JitterSpan state.Point
	WindowSize state.Size
}

// NewModel wires the desktop model for cfg.
func NewModel(cfg Config) *ui.Model {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	client := api.NewClient(cfg.APIURL, api.WithToken(cfg.Token), api.WithTimeout(cfg.APITimeout))
	data := state.NewDataStore(state.DataOptions{
		Problems:    state.SampleProblems(),
		Submissions: state.SampleSubmissions(),
		Judge:       state.RandomJudge(rand.New(rand.NewSource(rng.Int63()))),
	})
	return ui.NewModel(ui.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		User:        cfg.User,
		Client:      client,
		Data:        data,
		Catalog:     apps.Catalog(),
		Jitter:      menu.Jitter{Base: cfg.JitterBase, Span: cfg.JitterSpan, Rand: rng},
		DefaultSize: cfg.WindowSize,
		Rand:        rng,
	})
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	program := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
