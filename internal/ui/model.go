package ui

import (
	"math/rand"
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termdesk/internal/api"
	"github.com/atomicstack/termdesk/internal/apps/appkit"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/surface"
	"github.com/atomicstack/termdesk/internal/taskbar"
	"github.com/atomicstack/termdesk/internal/theme"
	"github.com/atomicstack/termdesk/internal/ui/command"
	uistate "github.com/atomicstack/termdesk/internal/ui/state"
)

const (
	startMenuID    = "start"
	startMenuTitle = "Start"
	noticeTTL      = 4 * time.Second
	tickInterval   = time.Second
)

type msgHandler func(tea.Msg) tea.Cmd

type tickMsg time.Time

// Options configures a desktop model.
type Options struct {
	// Width and Height pin the desktop size; zero follows the terminal.
	Width  int
	Height int
	User   state.User
	Client *api.Client
	// Data holds the local problem bank and submission history.
	Data state.DataStore
	// Catalog lists the launchable apps. Nil means an empty desktop.
	Catalog *menu.Catalog
	// Jitter places new windows. A nil Rand uses Options.Rand.
	Jitter      menu.Jitter
	DefaultSize state.Size
	Rand        *rand.Rand
	Styles      *theme.Styles
	Now         func() time.Time
}

// Model implements the Bubble Tea model for the desktop.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	registry *state.Registry
	surfaces *surface.Controller
	catalog  *menu.Catalog
	launcher *menu.Launcher
	session  state.SessionStore
	env      menu.Env
	bus      *command.Bus
	styles   *theme.Styles

	startMenu    *uistate.Level
	menuOpen     bool
	overflowOpen bool

	handlers   map[reflect.Type]msgHandler
	now        func() time.Time
	clock      time.Time
	ticking    bool
	focusedID  string
	notice     string
	noticeErr  bool
	noticeTill time.Time
}

// NewModel builds a desktop with no open windows.
func NewModel(opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = menu.MustCatalog()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := appkit.Rand(opts.Rand)
	jitter := opts.Jitter
	if jitter == (menu.Jitter{}) {
		jitter = menu.DefaultJitter(nil)
	}
	if jitter.Rand == nil {
		jitter.Rand = rng
	}
	launcher := menu.NewLauncher(jitter)
	if opts.DefaultSize.Width > 0 && opts.DefaultSize.Height > 0 {
		launcher.DefaultSize = opts.DefaultSize
	}
	session := state.NewSessionStore()
	session.SetUser(opts.User)
	registry := state.NewRegistry()

	m := &Model{
		registry: registry,
		surfaces: surface.NewController(registry, state.Size{}),
		catalog:  catalog,
		launcher: launcher,
		session:  session,
		bus:      command.New(),
		styles:   styles,
		now:      now,
		clock:    now(),
	}
	m.env = menu.Env{Client: opts.Client, Data: opts.Data, Rand: rng, User: session.User(), Styles: styles}
	m.startMenu = uistate.NewLevel(startMenuID, startMenuTitle, catalog.Items(session.User()))
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Registry exposes the window registry, mainly for tests and observers.
func (m *Model) Registry() *state.Registry { return m.registry }

// MenuOpen reports whether the start menu is showing.
func (m *Model) MenuOpen() bool { return m.menuOpen }

// OverflowOpen reports whether the taskbar overflow list is showing.
func (m *Model) OverflowOpen() bool { return m.overflowOpen }

// StartMenu exposes the start menu list state.
func (m *Model) StartMenu() *uistate.Level { return m.startMenu }

// Notice returns the transient status message, if any.
func (m *Model) Notice() (string, bool) {
	if m.notice == "" || m.now().After(m.noticeTill) {
		return "", false
	}
	return m.notice, true
}

// Init is part of the tea.Model interface. It starts the clock.
func (m *Model) Init() tea.Cmd {
	m.ticking = true
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(command.Envelope{}):  m.handleEnvelope,
		reflect.TypeOf(menu.OpenRequest{}):  m.handleOpenRequest,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.syncFocus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// syncFocus tells content when its window gains or loses the active slot.
func (m *Model) syncFocus() tea.Cmd {
	active, _ := m.registry.ActiveID()
	if active == m.focusedID {
		return nil
	}
	prev := m.focusedID
	m.focusedID = active
	var cmds []tea.Cmd
	if prev != "" {
		cmds = append(cmds, m.deliver(prev, appkit.Focus{Active: false}))
	}
	if active != "" {
		cmds = append(cmds, m.deliver(active, appkit.Focus{Active: true}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.syncViewport()
	return nil
}

// viewport is the desktop area above the taskbar.
func (m *Model) viewport() state.Size {
	h := m.height - taskbar.Height
	if h < 0 {
		h = 0
	}
	return state.Size{Width: m.width, Height: h}
}

func (m *Model) syncViewport() {
	m.surfaces.SetViewport(m.viewport())
	m.startMenu.EnsureCursorVisible(m.menuRows())
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	t, ok := msg.(tickMsg)
	if !ok {
		return nil
	}
	m.clock = time.Time(t)
	cmds := m.broadcast(appkit.Tick{Time: m.clock})
	if m.ticking {
		cmds = append(cmds, m.tickCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.setNotice(result.Err.Error(), true)
		return nil
	}
	if result.Info != "" {
		m.setNotice(result.Info, false)
	}
	return nil
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
	m.noticeTill = m.now().Add(noticeTTL)
}
