// Package tui is the interactive terminal front end: a bubbletea program that
// paces a controller.Controller with a tick and draws the growing tree.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanviz/controller"
	"github.com/katalvlaran/spanviz/prim_kruskal"
	"github.com/katalvlaran/spanviz/render"
)

// Delay bounds and the +/- increment.
const (
	MinDelay  = 0
	MaxDelay  = 10 * time.Second
	DelayStep = 50 * time.Millisecond
)

const (
	minColumns = 20
	minRows    = 6
	// rows taken by title, canvas border, HUD, progress, status and help
	chromeRows = 8
	chromeCols = 2
)

// PointSource produces a fresh point set for the "r" key.
type PointSource func() ([]r2.Vec, error)

// stepMsg asks for one paced Step. gen ties it to the run that scheduled it
// so ticks from an abandoned run are ignored.
type stepMsg struct{ gen int }

// Model is the bubbletea model.
type Model struct {
	ctrl   *controller.Controller
	points PointSource

	delay  time.Duration
	paused bool
	gen    int

	canvas   *render.Options
	ascii    render.ASCIIRenderer
	progress progress.Model
	spinner  spinner.Model

	status    string
	statusErr bool
	quitting  bool
}

// NewModel returns a model driving ctrl. canvas gives the scene size in
// world coordinates; delay is clamped to [MinDelay, MaxDelay].
func NewModel(ctrl *controller.Controller, points PointSource, delay time.Duration, width, height float64) Model {
	opts := render.NewDefaultOptions()
	opts.Width, opts.Height = width, height
	opts.Columns, opts.Rows = 60, 18

	s := spinner.New()
	s.Spinner = spinner.Points

	return Model{
		ctrl:     ctrl,
		points:   points,
		delay:    clampDelay(delay),
		canvas:   opts,
		progress: progress.New(progress.WithGradient("#874BFD", "#00FF99"), progress.WithoutPercentage()),
		spinner:  s,
		status:   "p: Prim  k: Kruskal  r: random points",
	}
}

// Run starts the program on the alternate screen with mouse support and
// blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Delay returns the current step delay.
func (m Model) Delay() time.Duration { return m.delay }

// Paused reports whether paced stepping is suspended.
func (m Model) Paused() bool { return m.paused }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Update handles keys, mouse clicks, resizes and step ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.addAt(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.canvas.Columns = max(msg.Width-chromeCols, minColumns)
		m.canvas.Rows = max(msg.Height-chromeRows, minRows)
		m.progress.Width = max(msg.Width-chromeCols, minColumns)
		return m, nil

	case stepMsg:
		if msg.gen != m.gen || m.paused || m.ctrl.State() != controller.Running {
			return m, nil
		}
		if !m.step() {
			return m, nil
		}
		return m, m.schedule()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "p":
		return m.start(prim_kruskal.Prim)
	case "k":
		return m.start(prim_kruskal.Kruskal)

	case " ":
		if m.ctrl.State() != controller.Running {
			m.setErr("nothing to pause")
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			m.setStatus("paused")
			return m, nil
		}
		m.gen++
		m.setStatus("resumed")
		return m, m.schedule()

	case "n":
		if m.ctrl.State() != controller.Running {
			m.setErr("no run in progress")
			return m, nil
		}
		m.paused = true
		m.gen++
		m.step()
		return m, nil

	case "r":
		m.gen++
		m.paused = false
		m.ctrl.Clear()
		if m.points == nil {
			m.setErr("no point source configured")
			return m, nil
		}
		pts, err := m.points()
		if err == nil {
			err = m.ctrl.AddNodes(pts)
		}
		if err != nil {
			m.setErr(err.Error())
			return m, nil
		}
		m.setStatus(fmt.Sprintf("%d random points", len(pts)))

	case "c":
		m.gen++
		m.paused = false
		m.ctrl.Clear()
		m.setStatus("cleared")

	case "x":
		m.gen++
		m.paused = false
		m.ctrl.Reset()
		m.setStatus("reset")

	case "+", "=":
		m.delay = clampDelay(m.delay + DelayStep)
		m.setStatus(fmt.Sprintf("delay %s", m.delay))
	case "-", "_":
		m.delay = clampDelay(m.delay - DelayStep)
		m.setStatus(fmt.Sprintf("delay %s", m.delay))
	}

	return m, nil
}

// start runs algo over the current nodes, restarting a finished run.
func (m Model) start(algo prim_kruskal.Algorithm) (tea.Model, tea.Cmd) {
	if m.ctrl.State() == controller.Done {
		m.ctrl.Reset()
	}
	if err := m.ctrl.Start(algo); err != nil {
		switch {
		case errors.Is(err, controller.ErrNotIdle):
			m.setErr("a run is in progress; x resets it")
		case errors.Is(err, controller.ErrTooFewNodes):
			m.setErr("need at least two points; click or press r")
		default:
			m.setErr(err.Error())
		}
		return m, nil
	}
	m.gen++
	m.paused = false
	m.setStatus(fmt.Sprintf("running %s", algo))

	return m, m.schedule()
}

// step advances the controller once and reports whether the run continues.
func (m *Model) step() bool {
	res, err := m.ctrl.Step()
	if err != nil {
		m.setErr(err.Error())
		return false
	}
	if res.Done {
		m.setStatus(fmt.Sprintf("complete: %d edges", res.Index))
		return false
	}

	return true
}

func (m Model) schedule() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return stepMsg{gen: gen} })
}

// addAt adds a node under the terminal cell (x, y). Clicks outside the
// canvas are ignored.
func (m *Model) addAt(x, y int) {
	// canvas starts below the title line and inside the border
	col, row := x-1, y-2
	if col < 0 || row < 0 || col >= m.canvas.Columns || row >= m.canvas.Rows {
		return
	}
	wx := float64(col) / float64(max(m.canvas.Columns-1, 1)) * m.canvas.Width
	wy := float64(row) / float64(max(m.canvas.Rows-1, 1)) * m.canvas.Height
	if m.ctrl.State() == controller.Done {
		m.ctrl.Reset()
	}
	n, err := m.ctrl.AddNode(wx, wy)
	if err != nil {
		if errors.Is(err, controller.ErrNotIdle) {
			m.setErr("points can only be added while idle; x resets")
			return
		}
		m.setErr(err.Error())
		return
	}
	m.setStatus(fmt.Sprintf("added %s", n))
}

func (m *Model) setStatus(s string) { m.status, m.statusErr = s, false }
func (m *Model) setErr(s string)    { m.status, m.statusErr = s, true }

func clampDelay(d time.Duration) time.Duration {
	if d < MinDelay {
		return MinDelay
	}
	if d > MaxDelay {
		return MaxDelay
	}

	return d
}
