package render

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fluidscene/internal/field"
	"github.com/san-kum/fluidscene/internal/scene"
	"github.com/san-kum/fluidscene/internal/sim"
)

const historyCapacity = 600

type TickMsg time.Time

// Model replays a scene tick by tick in the terminal.
type Model struct {
	name    string
	scene   *scene.Scene
	grid    *field.Grid
	runner  *sim.Runner
	colors  Colors
	dt      float64
	fps     int
	policy  string
	tick    int
	running bool
	history []float64
}

func NewModel(name string, s *scene.Scene, g *field.Grid, r *sim.Runner, c Colors, dt float64, fps int, policy string) Model {
	if fps <= 0 {
		fps = 20
	}
	return Model{
		name:    name,
		scene:   s,
		grid:    g,
		runner:  r,
		colors:  c,
		dt:      dt,
		fps:     fps,
		policy:  policy,
		running: true,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.schedule()
}

func (m Model) schedule() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.schedule()
	}
	return m, nil
}

func (m *Model) step() {
	m.runner.Tick(m.scene, m.grid, m.dt)
	m.tick++
	m.history = append(m.history, m.grid.TotalDensity())
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) reset() {
	m.scene.Reset()
	m.grid.Reset()
	m.tick = 0
	m.history = m.history[:0]
}

func (m Model) Tick() int { return m.tick }

func (m Model) Running() bool { return m.running }

func (m Model) View() string {
	canvas := canvasStyle.Render(Heatmap(m.grid, m.scene, m.colors))

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	if m.running {
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	}
	if chart := Chart(m.history, "Total density", 6, 32); chart != "" {
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.tick)) + "\n")
	s.WriteString(labelStyle.Render("Policy") + valueStyle.Render(m.policy) + "\n")
	s.WriteString(labelStyle.Render("Mass") + valueStyle.Render(fmt.Sprintf("%.1f", m.grid.TotalDensity())) + "\n")
	s.WriteString(labelStyle.Render("Peak") + valueStyle.Render(fmt.Sprintf("%.2f", m.grid.MaxSpeed())) + "\n")
	s.WriteString(labelStyle.Render("Assets") + valueStyle.Render(fmt.Sprintf("%d/%d/%d",
		len(m.scene.Densities), len(m.scene.Velocities), len(m.scene.Solids))) + "\n")
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause N:Step R:Reset Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, statsStyle.Render(s.String()))
}

// Run starts the live view and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
