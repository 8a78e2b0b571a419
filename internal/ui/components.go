package ui

import (
	"fmt"
	"strings"

	"github.com/olivier-w/spiralmatrix/internal/util"
)

func (m Model) statusLine() string {
	var parts []string

	fps := fpsStyle.Render(util.FormatRate(m.scene.Loop.FPS()) + " fps")
	if m.lastFrame.Slow {
		fps = slowStyle.Render(util.FormatRate(m.scene.Loop.FPS()) + " fps slow")
	}
	parts = append(parts, headerStyle.Render("spiralmatrix"), fps)

	parts = append(parts,
		statusStyle.Render(fmt.Sprintf("%d×%d", m.scene.Grid.Size(), m.scene.Grid.Size())),
		statusStyle.Render("every "+m.scene.Interval().String()),
		statusStyle.Render(m.scene.Grid.Easing().String()),
		statusStyle.Render(fmt.Sprintf("rot %d", m.scene.Driver.Rotations())),
		statusStyle.Render("up "+util.FormatDuration(m.scene.Loop.Total())),
	)

	if m.scene.Paused() {
		parts = append(parts, pausedStyle.Render("❚❚ paused"))
	}
	if n := m.scene.Gallery.Pending(); n > 0 {
		total := n + m.scene.Gallery.Loaded() + m.scene.Gallery.Failed()
		parts = append(parts, m.spinner.View()+statusStyle.Render(fmt.Sprintf(" loading %d/%d", total-n, total)))
	}

	return " " + strings.Join(parts, "  ")
}
