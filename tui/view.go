package tui

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spanviz/controller"
	"github.com/katalvlaran/spanviz/render"
)

const helpLine = "p prim · k kruskal · space pause · n step · r random · c clear · x reset · +/- delay · q quit"

// View renders title, canvas, HUD, progress bar, status and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("spanviz  " + render.Title(snap)))
	b.WriteByte('\n')

	canvas, err := m.ascii.Render(render.SceneFrom(snap), m.canvas)
	if err != nil {
		canvas = []byte(err.Error())
	}
	b.WriteString(canvasStyle.Render(strings.TrimSuffix(string(canvas), "\n")))
	b.WriteByte('\n')

	b.WriteString(m.hud(snap))
	b.WriteByte('\n')

	percent := 0.0
	if exp := snap.Expected(); exp > 0 {
		percent = float64(len(snap.Edges)) / float64(exp)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteByte('\n')

	if m.statusErr {
		b.WriteString(errorStyle.Render("! " + m.status))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(helpLine))

	return b.String()
}

func (m Model) hud(snap controller.Snapshot) string {
	state := snap.State.String()
	if snap.State == controller.Running {
		if m.paused {
			state = "paused"
		} else {
			state = m.spinner.View() + " running"
		}
	}
	algo := "-"
	if snap.Algorithm != "" {
		algo = snap.Algorithm.String()
	}

	fields := []struct{ label, value string }{
		{"state", state},
		{"algo", algo},
		{"nodes", fmt.Sprint(len(snap.Nodes))},
		{"edges", fmt.Sprintf("%d/%d", len(snap.Edges), snap.Expected())},
		{"weight", fmt.Sprintf("%.3f", snap.TotalWeight)},
		{"visited", fmt.Sprint(snap.Visited)},
		{"components", fmt.Sprint(snap.Components)},
		{"delay", m.delay.String()},
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = hudLabelStyle.Render(f.label+":") + " " + hudValueStyle.Render(f.value)
	}

	return strings.Join(parts, "  ")
}
