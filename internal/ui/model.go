package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/spiralmatrix/internal/config"
	"github.com/olivier-w/spiralmatrix/internal/gallery"
	"github.com/olivier-w/spiralmatrix/internal/loop"
	"github.com/olivier-w/spiralmatrix/internal/render"
	"github.com/olivier-w/spiralmatrix/internal/scene"
)

// Model is the Bubbletea model hosting the spiral scene in a terminal. Each
// frame tick rasterizes the grid into a pixel frame sized to the window and
// encodes it as half-block characters.
type Model struct {
	fps      int
	scene    *scene.Scene
	renderer *render.Renderer
	encoder  *render.Encoder
	frame    *render.Frame

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width     int
	height    int
	quitting  bool
	lastFrame loop.Frame
	view      string // last encoded frame
}

// New creates the terminal host for cfg with images drawn from refs.
func New(cfg config.Config, refs []string) Model {
	r := render.NewRenderer(cfg.TerminalMargin())
	r.ShowGrid = cfg.Grid

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		fps:      cfg.FPS,
		scene:    scene.New(cfg, refs),
		renderer: r,
		encoder:  render.NewEncoder(cfg.ColorMode()),
		frame:    render.NewFrame(0, 0),
		spinner:  s,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.scene.Start(),
		m.scene.LoadAsync(),
		m.spinner.Tick,
		frameCmd(m.fps),
		tea.SetWindowTitle("spiralmatrix"),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeFrame()
		return m, nil

	case frameMsg:
		if m.quitting {
			return m, nil
		}
		now := time.Time(msg)
		m.lastFrame = m.scene.Loop.Step(now)
		m.renderer.Draw(m.frame, m.scene.Grid, m.scene.Gallery, now)
		m.view = m.encoder.Encode(m.frame)
		return m, frameCmd(m.fps)

	case gallery.LoadedMsg:
		m.scene.Gallery.Update(msg)
		return m, nil

	case spinner.TickMsg:
		if m.scene.Gallery.Pending() == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if cmd, ok := m.scene.Driver.Update(msg); ok {
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.scene.Dispose()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Pause):
		return m, m.scene.TogglePause()

	case key.Matches(msg, m.keys.Faster):
		return m, m.scene.Faster()

	case key.Matches(msg, m.keys.Slower):
		return m, m.scene.Slower()

	case key.Matches(msg, m.keys.Bigger):
		if m.scene.Grow() {
			return m, m.loadNew()
		}

	case key.Matches(msg, m.keys.Smaller):
		if m.scene.Shrink() {
			return m, m.loadNew()
		}

	case key.Matches(msg, m.keys.Grid):
		m.renderer.ShowGrid = !m.renderer.ShowGrid

	case key.Matches(msg, m.keys.Easing):
		m.scene.ToggleEasing()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeFrame()
	}
	return m, nil
}

// loadNew fetches refs a resized grid introduced, restarting the spinner
// when it had gone idle.
func (m Model) loadNew() tea.Cmd {
	idle := m.scene.Gallery.Pending() == 0
	load := m.scene.LoadAsync()
	if load == nil || !idle {
		return load
	}
	return tea.Batch(load, m.spinner.Tick)
}

func (m *Model) resizeFrame() {
	rows := m.height - lipgloss.Height(m.footer())
	if rows < 1 || m.width < 1 {
		m.frame.Resize(0, 0)
		return
	}
	m.frame.Resize(m.width, render.PixelHeight(rows))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == "" {
		return m.footer()
	}
	return m.view + "\n" + m.footer()
}

func (m Model) footer() string {
	return m.statusLine() + "\n" + m.help.View(m.keys)
}
