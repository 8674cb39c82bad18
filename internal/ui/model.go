package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/atomicstack/menukit/internal/backend"
	"github.com/atomicstack/menukit/internal/data/dispatcher"
	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/internal/menus"
	"github.com/atomicstack/menukit/internal/theme"
	"github.com/atomicstack/menukit/internal/trace"
	"github.com/atomicstack/menukit/internal/ui/command"
	"github.com/atomicstack/menukit/pkg/menu"
)

var styles = theme.Default()

// Pane selects which entity list has the cursor.
type Pane int

const (
	PaneTasks Pane = iota
	PaneChats
	PaneProjects
	PaneWorkflows

	paneCount = 4
)

func (p Pane) Title() string {
	switch p {
	case PaneTasks:
		return "Tasks"
	case PaneChats:
		return "Chats"
	case PaneProjects:
		return "Projects"
	case PaneWorkflows:
		return "Workflows"
	}
	return "?"
}

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a demo model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Watcher    *backend.Watcher
	Logger     *logr.Logger

	// Zero values fall back to the production defaults. Tests shorten
	// these so harness runs do not sleep.
	AnnounceClearAfter time.Duration
	StatusFadeAfter    time.Duration
}

// Model implements the Bubble Tea model for the menukit demo.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	pane    Pane
	cursors [paneCount]int

	tasks     entity.TaskStore
	chats     entity.ChatStore
	projects  entity.ProjectStore
	workflows entity.WorkflowStore

	dispatcher     *dispatcher.Dispatcher
	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	menu     *menu.Controller
	menuFor  string
	menuPane Pane
	palette  *Palette
	bus      *command.Bus

	listFocus *regionFocus

	errMsg    string
	infoMsg   string
	statusGen int
	fadeAfter time.Duration

	keys     KeyMap
	handlers map[reflect.Type]msgHandler
}

// regionFocus is the focus anchor for the entity list: the widget the
// popup returns keyboard focus to on close.
type regionFocus struct {
	focused bool
}

func (r *regionFocus) Focus() tea.Cmd {
	r.focused = true
	return nil
}

func (r *regionFocus) Blur() {
	r.focused = false
}

func (r *regionFocus) CanFocus() bool { return true }

// NewModel initialises the demo model around the given watcher.
func NewModel(opts Options) *Model {
	tasks := entity.NewTaskStore()
	chats := entity.NewChatStore()
	projects := entity.NewProjectStore()
	workflows := entity.NewWorkflowStore()

	announceClear := opts.AnnounceClearAfter
	if announceClear <= 0 {
		announceClear = menu.DefaultAnnounceClearAfter
	}
	fadeAfter := opts.StatusFadeAfter
	if fadeAfter <= 0 {
		fadeAfter = 3 * time.Second
	}

	bus := command.New()
	m := &Model{
		width:        80,
		height:       24,
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		tasks:        tasks,
		chats:        chats,
		projects:     projects,
		workflows:    workflows,
		dispatcher:   dispatcher.New(tasks, chats, projects, workflows),
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		bus:          bus,
		listFocus:    &regionFocus{focused: true},
		fadeAfter:    fadeAfter,
		keys:         DefaultKeyMap,
	}
	log := logr.Discard()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	m.menu = menu.New(
		menu.WithAnnounceClearAfter(announceClear),
		menu.WithLogger(log),
	)
	m.palette = NewPalette(announceClear, log, func() []menu.Item {
		return bus.Wrap(menus.PaletteItems(m.menuContext()))
	})
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.menu.SetScreenSize(m.width, m.height)
	m.palette.SetScreenSize(m.width, m.height)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	// Anything unrecognised may be an internal popup message (arming,
	// announcement clears); both controllers ignore what is not theirs.
	wasArmed := m.menu.Armed()
	cmds := []tea.Cmd{m.menu.Update(msg), m.palette.Update(msg)}
	if !wasArmed && m.menu.Armed() {
		trace.Menu.Armed(m.menu.Label())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
		reflect.TypeOf(menus.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(statusFadeMsg{}):      m.handleStatusFadeMsg,
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
	m.menu.SetScreenSize(m.width, m.height)
	m.palette.SetScreenSize(m.width, m.height)
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menus.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		trace.Command.Error(result.Err)
		m.errMsg = result.Err.Error()
		m.infoMsg = ""
		return m.scheduleStatusFade()
	}
	m.errMsg = ""
	if m.verbose && result.Info != "" {
		m.infoMsg = result.Info
		return m.scheduleStatusFade()
	}
	m.infoMsg = ""
	return nil
}

type statusFadeMsg struct {
	gen int
}

// scheduleStatusFade clears the status line after a delay. The
// generation guard keeps an older fade from wiping a newer message.
func (m *Model) scheduleStatusFade() tea.Cmd {
	m.statusGen++
	gen := m.statusGen
	return tea.Tick(m.fadeAfter, func(time.Time) tea.Msg {
		return statusFadeMsg{gen: gen}
	})
}

func (m *Model) handleStatusFadeMsg(msg tea.Msg) tea.Cmd {
	fade, ok := msg.(statusFadeMsg)
	if !ok || fade.gen != m.statusGen {
		return nil
	}
	m.errMsg = ""
	m.infoMsg = ""
	return nil
}

func (m *Model) menuContext() menus.Context {
	return menus.Context{
		Tasks:           m.tasks.Tasks(),
		CurrentTask:     m.tasks.Current(),
		Chats:           m.chats.Chats(),
		CurrentChat:     m.chats.Current(),
		Projects:        m.projects.Projects(),
		CurrentProject:  m.projects.Current(),
		Workflows:       m.workflows.Workflows(),
		CurrentWorkflow: m.workflows.Current(),
	}
}

// paneLength returns how many rows the given pane currently lists.
func (m *Model) paneLength(p Pane) int {
	switch p {
	case PaneTasks:
		return len(m.tasks.Tasks())
	case PaneChats:
		return len(m.chats.Chats())
	case PaneProjects:
		return len(m.projects.Projects())
	case PaneWorkflows:
		return len(m.workflows.Workflows())
	}
	return 0
}

// clampCursors pulls every pane cursor back into range after the
// backend reshapes a list.
func (m *Model) clampCursors() {
	for p := 0; p < paneCount; p++ {
		n := m.paneLength(Pane(p))
		if n == 0 {
			m.cursors[p] = 0
			continue
		}
		if m.cursors[p] >= n {
			m.cursors[p] = n - 1
		}
		if m.cursors[p] < 0 {
			m.cursors[p] = 0
		}
	}
}
