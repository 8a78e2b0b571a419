package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/spiralmatrix/internal/config"
	"github.com/olivier-w/spiralmatrix/internal/gallery"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Size = 3
	cfg.Color = "off"
	if err := cfg.Normalize(); err != nil {
		t.Fatal(err)
	}
	m := New(cfg, gallery.Swatches(4))
	m.Init()
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return model, cmd
}

func TestNewPopulatesGridWithRefs(t *testing.T) {
	m := newTestModel(t)
	if n := len(m.scene.Grid.WithImage()); n != 9 {
		t.Fatalf("expected 9 cells with images, got %d", n)
	}
	if !m.scene.Driver.Running() {
		t.Fatal("expected Init to start the driver")
	}
	if m.scene.Gallery.Pending() != 4 {
		t.Fatalf("expected 4 pending loads, got %d", m.scene.Gallery.Pending())
	}
}

func TestWindowSizeResizesFrame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})

	footer := lipgloss.Height(m.footer())
	if m.frame.Width != 40 || m.frame.Height != (20-footer)*2 {
		t.Fatalf("expected 40x%d frame, got %dx%d", (20-footer)*2, m.frame.Width, m.frame.Height)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 1})
	if m.frame.Width != 0 || m.frame.Height != 0 {
		t.Fatalf("expected empty frame for tiny window, got %dx%d", m.frame.Width, m.frame.Height)
	}
}

func TestFrameRendersLoadedImages(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 20})
	for _, ref := range gallery.Swatches(4) {
		img, err := gallery.Decode(ref)
		if err != nil {
			t.Fatal(err)
		}
		m, _ = update(t, m, gallery.LoadedMsg{Ref: ref, Img: img})
	}
	if m.scene.Gallery.Pending() != 0 {
		t.Fatalf("expected no pending loads, got %d", m.scene.Gallery.Pending())
	}

	m, cmd := update(t, m, frameMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected next frame to be scheduled")
	}
	if m.view == "" {
		t.Fatal("expected encoded frame")
	}
	lines := strings.Split(m.view, "\n")
	if len(lines) != m.frame.Height/2 {
		t.Fatalf("expected %d rows, got %d", m.frame.Height/2, len(lines))
	}
	if strings.Trim(m.view, " \n") == "" {
		t.Fatal("expected images to be drawn")
	}
	if !strings.Contains(m.View(), "spiralmatrix") {
		t.Fatal("expected status line in view")
	}
}

func TestPauseStopsAndResumesDriver(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.scene.Paused() || m.scene.Driver.Running() {
		t.Fatal("expected paused model with stopped driver")
	}
	if !strings.Contains(m.statusLine(), "paused") {
		t.Fatal("expected paused indicator")
	}

	m, cmd := update(t, m, runes("p"))
	if m.scene.Paused() || !m.scene.Driver.Running() {
		t.Fatal("expected driver to resume")
	}
	if cmd == nil {
		t.Fatal("expected tick command on resume")
	}
}

func TestSpeedKeysChangeInterval(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, runes("+"))
	if m.scene.Interval() != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", m.scene.Interval())
	}
	if cmd == nil || m.scene.Driver.Interval() != 250*time.Millisecond {
		t.Fatal("expected driver restart at the new interval")
	}

	m, _ = update(t, m, runes("-"))
	m, _ = update(t, m, runes("-"))
	if m.scene.Interval() != time.Second {
		t.Fatalf("expected 1s, got %v", m.scene.Interval())
	}

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, runes("+"))
	}
	if m.scene.Interval() != config.MinInterval {
		t.Fatalf("expected interval clamped to %v, got %v", config.MinInterval, m.scene.Interval())
	}
}

func TestSpeedWhilePausedKeepsDriverStopped(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes(" "))
	m, cmd := update(t, m, runes("-"))
	if cmd != nil || m.scene.Driver.Running() {
		t.Fatal("expected driver to stay stopped while paused")
	}
	if m.scene.Interval() != time.Second {
		t.Fatalf("expected 1s, got %v", m.scene.Interval())
	}
}

func TestSizeKeysRebuildGrid(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("]"))
	if m.scene.Grid.Size() != 5 || len(m.scene.Grid.WithImage()) != 25 {
		t.Fatalf("expected populated 5x5 grid, got size %d", m.scene.Grid.Size())
	}

	m, _ = update(t, m, runes("["))
	m, _ = update(t, m, runes("["))
	m, cmd := update(t, m, runes("["))
	if m.scene.Grid.Size() != 1 {
		t.Fatalf("expected size to bottom out at 1, got %d", m.scene.Grid.Size())
	}
	if cmd != nil {
		t.Fatal("expected no command when size does not change")
	}
}

func TestToggles(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("g"))
	if !m.renderer.ShowGrid {
		t.Fatal("expected grid overlay on")
	}
	before := m.scene.Grid.Easing()
	m, _ = update(t, m, runes("e"))
	if m.scene.Grid.Easing() == before {
		t.Fatal("expected easing to change")
	}
	m, _ = update(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("expected full help")
	}
}

func TestQuitStopsDriver(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.quitting || m.scene.Driver.Running() {
		t.Fatal("expected quitting model with stopped driver")
	}
	if m.View() != "" {
		t.Fatal("expected empty view after quit")
	}
	if _, cmd := update(t, m, frameMsg(time.Now())); cmd != nil {
		t.Fatal("expected frames to stop after quit")
	}
}
