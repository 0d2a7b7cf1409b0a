package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lmoreno/physlab/internal/physics"
	"github.com/lmoreno/physlab/internal/sim"
)

const (
	canvasW    = 70
	canvasH    = 18
	historyCap = 400
)

type frameMsg time.Time

// Live renders one running demo. It is the frame driver: every tick
// message is converted into a millisecond timestamp for Runner.Step,
// and the next tick is only scheduled while the demo is running.
type Live struct {
	name    string
	runner  *sim.Runner
	canvas  *Canvas
	history []float64
	fps     int
}

func NewLive(name string, sys sim.System, fps int) Live {
	if fps <= 0 {
		fps = 60
	}
	return Live{
		name:    name,
		runner:  sim.NewRunner(sys),
		canvas:  NewCanvas(canvasW, canvasH),
		history: make([]float64, 0, historyCap),
		fps:     fps,
	}
}

func (m Live) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Live) Init() tea.Cmd {
	m.runner.Start()
	return m.frame()
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.runner.Status() == sim.StatusRunning {
				m.runner.Pause()
				return m, nil
			}
			m.runner.Start()
			return m, m.frame()
		case "r":
			m.runner.Reset()
			m.history = m.history[:0]
			m.runner.Start()
			return m, m.frame()
		}

	case frameMsg:
		if m.runner.Status() != sim.StatusRunning {
			return m, nil
		}
		ms := float64(time.Time(msg).UnixNano()) / 1e6
		m.runner.Step(ms)

		if s, ok := m.runner.System().(sim.Sampler); ok {
			m.history = append(m.history, s.Vector()[0])
			if len(m.history) > historyCap {
				m.history = m.history[1:]
			}
		}

		if m.runner.Status() == sim.StatusRunning {
			return m, m.frame()
		}
		return m, nil
	}
	return m, nil
}

func (m Live) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("physlab :: "+m.name) + "  " + m.statusLine() + "\n\n")

	if p, ok := m.runner.System().(*physics.Particles); ok {
		b.WriteString(renderParticles(p))
	} else {
		m.canvas.Clear()
		m.draw()
		b.WriteString(m.canvas.String())
	}

	b.WriteString("\n" + m.paramsLine() + "\n")

	if len(m.history) > 8 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(canvasW),
		)
		b.WriteString("\n" + graphStyle.Render(graph) + "\n")
	}

	b.WriteString(helpStyle.Render("space pause/resume  r reset  q quit"))
	return b.String()
}

func (m Live) statusLine() string {
	t := fmt.Sprintf(" t=%.2fs", m.runner.Elapsed())
	switch m.runner.Status() {
	case sim.StatusRunning:
		return statusRunning.Render("running") + dimStyle.Render(t)
	case sim.StatusCompleted:
		return statusCompleted.Render("completed") + dimStyle.Render(t)
	}
	return statusPaused.Render("paused") + dimStyle.Render(t)
}

func (m Live) paramsLine() string {
	params := m.runner.Params()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%s",
			labelStyle.Width(0).Render(name),
			valueStyle.Render(fmt.Sprintf("%.2f", params[name]))))
	}
	return strings.Join(parts, "  ")
}

func (m Live) draw() {
	switch sys := m.runner.System().(type) {
	case *physics.Pendulum:
		m.drawPendulum(sys)
	case *physics.Incline:
		m.drawIncline(sys)
	case *physics.Projectile:
		m.drawProjectile(sys)
	case *physics.Uniform:
		m.drawTrack(sys.Position(), math.Abs(sys.Velocity)*sys.TotalTime)
	case *physics.Accelerated:
		m.drawTrack(sys.Position(), acceleratedSpan(sys))
	case *physics.Wave:
		m.drawWave(sys)
	}
}

func (m Live) drawPendulum(p *physics.Pendulum) {
	px, py := canvasW, 6 // sub-pixel pivot
	reach := float64(canvasH*4 - 12)
	length := reach * (0.4 + 0.6*p.Length/5.0)

	bx := px + int(length*math.Sin(p.Angle()))
	by := py + int(length*math.Cos(p.Angle()))

	m.canvas.Set(px, py)
	m.canvas.Line(px, py, bx, by)
	m.canvas.Circle(bx, by, 3)
}

func (m Live) drawIncline(in *physics.Incline) {
	w, h := canvasW*2-8, canvasH*4-8
	angle := in.AngleDeg * math.Pi / 180.0

	// slope from top-left down to the base, foot position from the
	// track length projected onto the canvas
	run := float64(h) / math.Tan(angle)
	if run > float64(w) {
		run = float64(w)
	}
	topX, topY := 4, 4
	footX, footY := 4+int(run), 4+h

	m.canvas.Line(topX, topY, footX, footY)
	m.canvas.Line(topX, footY, footX, footY)
	m.canvas.Line(topX, topY, topX, footY)

	frac := in.Position() / in.TrackLength
	bx := topX + int(frac*float64(footX-topX))
	by := topY + int(frac*float64(footY-topY))
	m.canvas.Circle(bx, by, 2)
}

func (m Live) drawProjectile(p *physics.Projectile) {
	maxX := p.Range()
	maxY := p.MaxHeight()
	if maxX <= 0 || maxY <= 0 {
		return
	}
	w, h := float64(canvasW*2-4), float64(canvasH*4-4)

	for _, s := range p.Trajectory() {
		x := 2 + int(s.X/maxX*w)
		y := 2 + int((1-s.Y/maxY)*h)
		m.canvas.Set(x, y)
	}

	cx, cy := p.Position()
	m.canvas.Circle(2+int(cx/maxX*w), 2+int((1-cy/maxY)*h), 2)
}

func (m Live) drawTrack(pos, span float64) {
	if span <= 0 {
		span = 1
	}
	y := canvasH * 2
	m.canvas.Line(2, y, canvasW*2-2, y)

	frac := pos / span
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	m.canvas.Circle(2+int(frac*float64(canvasW*2-4)), y, 2)
}

func acceleratedSpan(a *physics.Accelerated) float64 {
	end := a.InitialVelocity*a.TotalTime + 0.5*a.Acceleration*a.TotalTime*a.TotalTime
	return math.Abs(end)
}

func (m Live) drawWave(w *physics.Wave) {
	span := 4 * w.Wavelength
	n := canvasW * 2
	mid := canvasH * 2
	scale := float64(canvasH*2-4) / math.Max(w.Amplitude, 1e-9)

	prevX, prevY := 0, mid
	for i, y := range w.Profile(n, span) {
		cy := mid - int(y*scale/2)
		if i > 0 {
			m.canvas.Line(prevX, prevY, i, cy)
		}
		prevX, prevY = i, cy
	}
}

// renderParticles uses a plain cell grid instead of the braille canvas
// so each body keeps its own display color.
func renderParticles(p *physics.Particles) string {
	w, h := canvasW, canvasH
	type cell struct {
		ch    rune
		color string
	}
	grid := make([][]cell, h)
	for i := range grid {
		grid[i] = make([]cell, w)
		for j := range grid[i] {
			grid[i][j] = cell{ch: ' '}
		}
	}

	for _, b := range p.Bodies() {
		x := int(b.X / p.Width * float64(w-1))
		y := int(b.Y / p.Height * float64(h-1))
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		grid[y][x] = cell{ch: '●', color: b.Color}
	}

	var sb strings.Builder
	for _, row := range grid {
		for _, c := range row {
			if c.ch == ' ' {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Render(string(c.ch)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
