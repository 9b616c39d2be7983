package ui

import (
	"time"

	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/backend"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/display"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/logging/events"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/menu"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/render"
	"github.com/tungnguyens/PA-LNA-CC2538-CC2592/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

// ReloadFunc rebuilds the menu tree, typically by re-reading the
// definition file.
type ReloadFunc func() (*menu.Menu, error)

type watcherEventMsg backend.Event

type animTickMsg struct{}

// Model implements the Bubble Tea model for the LCD menu simulator. It is
// the embedding application of the menu core: it owns the menu tree,
// translates key presses into navigation operations, and displays the
// resulting frame buffer.
type Model struct {
	frame    *display.Frame
	renderer *render.Renderer
	root     *menu.Menu
	current  *menu.Menu

	watcher *backend.Watcher
	reload  ReloadFunc

	filtering bool
	filter    string

	// slide transition playback state; transOffset counts remaining
	// travel in pixel columns
	transPrev   []byte
	transMotion display.Motion
	transOffset int

	infoMsg string
	errMsg  string
	verbose bool

	width  int
	height int
}

// NewModel initialises the simulator over an already-built menu tree. The
// watcher and reload function are optional.
func NewModel(root *menu.Menu, frame *display.Frame, renderer *render.Renderer, watcher *backend.Watcher, reload ReloadFunc, verbose bool) *Model {
	m := &Model{
		frame:    frame,
		renderer: renderer,
		root:     root,
		current:  root,
		watcher:  watcher,
		reload:   reload,
		verbose:  verbose,
	}
	m.renderer.Display(m.current)
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForWatcherEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case watcherEventMsg:
		return m, m.handleWatcherEvent(backend.Event(msg))
	case animTickMsg:
		return m, m.advanceTransition()
	}
	return m, nil
}

// animStep is the per-tick slide travel in pixel columns.
const animStep = 16

func animTick() tea.Cmd {
	return tea.Tick(30*time.Millisecond, func(time.Time) tea.Msg {
		return animTickMsg{}
	})
}

func (m *Model) advanceTransition() tea.Cmd {
	if m.transMotion == display.MotionNone {
		return nil
	}
	m.transOffset -= animStep
	if m.transOffset <= 0 {
		m.transPrev = nil
		m.transMotion = display.MotionNone
		m.transOffset = 0
		return nil
	}
	return animTick()
}

func waitForWatcherEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return nil
		}
		return watcherEventMsg(evt)
	}
}

func (m *Model) handleWatcherEvent(evt backend.Event) tea.Cmd {
	if evt.Err != nil {
		events.Watcher.Error(evt.Err)
		m.errMsg = evt.Err.Error()
	} else {
		events.Watcher.Reload(evt.Path)
		m.applyReload()
	}
	return waitForWatcherEvent(m.watcher)
}

// applyReload rebuilds the menu tree and restarts navigation at its root.
func (m *Model) applyReload() {
	if m.reload == nil {
		return
	}
	root, err := m.reload()
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return
	}
	root.PositionTop()
	m.root = root
	m.current = root
	m.errMsg = ""
	m.infoMsg = "menu reloaded"
	m.renderer.Reset()
	m.transPrev = nil
	m.transMotion = display.MotionNone
	m.renderer.Display(m.current)
}

// redraw repaints the frame buffer for the active menu. When the renderer
// asked for a slide, playback starts and the returned command drives it.
func (m *Model) redraw() tea.Cmd {
	m.renderer.Display(m.current)
	prev, motion := m.frame.TakeTransition()
	if motion == display.MotionNone {
		return nil
	}
	m.transPrev = prev
	m.transMotion = motion
	m.transOffset = m.frame.Geometry().Cols
	return animTick()
}
