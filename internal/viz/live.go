package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/geoid/internal/config"
	"github.com/san-kum/geoid/internal/field"
	"github.com/san-kum/geoid/internal/metrics"
	"github.com/san-kum/geoid/internal/surface"
)

const (
	canvasWidth  = 64
	canvasHeight = 22

	omegaStep = 0.005
	omegaMax  = 0.2
	levelStep = 0.02
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

// Model is the interactive surface viewer: a spinning wireframe of the
// current equipotential, rebuilt whenever rotation rate or sea level
// change.
type Model struct {
	cfg      *config.Config
	fld      *field.Field
	builder  *surface.Builder
	surf     *surface.Surface
	wire     *Wireframe
	canvas   *Canvas
	camera   *Camera
	stats    map[string]float64
	seaLevel float64
	spinning bool
	showHelp bool
}

func NewModel(cfg *config.Config) Model {
	b := surface.NewBuilder(cfg.SurfaceGrid(), cfg.SolverBracket())
	for _, m := range metrics.Defaults() {
		b.AddMetric(m)
	}

	m := Model{
		cfg:      cfg,
		fld:      cfg.Field(),
		builder:  b,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		camera:   NewCamera(),
		seaLevel: cfg.SeaLevel,
		spinning: true,
	}
	m.camera.RotX = 0.4
	m.rebuild()
	return m
}

// rebuild re-solves the surface for the current field and sea level. The
// field is only ever mutated here, between builds, never during one.
func (m *Model) rebuild() {
	m.surf = m.builder.Build(m.fld, m.seaLevel)
	m.stats = m.builder.Metrics()
	m.wire = SurfaceWireframe(m.surf)
	if max := m.stats["max_radius"]; max > 0 {
		m.camera.Extent = max * 1.15
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.spinning {
			m.camera.RotateY(0.03)
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.spinning = !m.spinning
		case "h", "?":
			m.showHelp = !m.showHelp
		case "right", "l":
			omega := m.fld.Omega + omegaStep
			if omega > omegaMax {
				omega = omegaMax
			}
			m.fld.SetOmega(omega)
			m.rebuild()
		case "left":
			omega := m.fld.Omega - omegaStep
			if omega < 0 {
				omega = 0
			}
			m.fld.SetOmega(omega)
			m.rebuild()
		case "up", "k":
			m.seaLevel += levelStep
			m.rebuild()
		case "down", "j":
			m.seaLevel -= levelStep
			m.rebuild()
		case "+", "=":
			m.camera.ZoomIn()
		case "-":
			m.camera.ZoomOut()
		case "r":
			m.fld = m.cfg.Field()
			m.seaLevel = m.cfg.SeaLevel
			m.rebuild()
		}
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	Render(m.canvas, m.wire, m.camera)

	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("GEOID") + "  " + subStyle.Render("equipotential surface viewer") + "\n\n")
	b.WriteString(m.canvas.String())

	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		labelStyle.Render("omega"), valueStyle.Render(fmt.Sprintf("%.3f", m.fld.Omega)),
		labelStyle.Render("sea level"), valueStyle.Render(fmt.Sprintf("%.3f", m.seaLevel)),
		labelStyle.Render("flattening"), valueStyle.Render(fmt.Sprintf("%+.4f", m.stats["flattening"])),
	))
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		labelStyle.Render("mean r"), valueStyle.Render(fmt.Sprintf("%.3f", m.stats["mean_radius"])),
		labelStyle.Render("min r"), valueStyle.Render(fmt.Sprintf("%.3f", m.stats["min_radius"])),
		labelStyle.Render("max r"), valueStyle.Render(fmt.Sprintf("%.3f", m.stats["max_radius"])),
	))

	ring := m.surf.EquatorRing()
	graph := asciigraph.Plot(ring,
		asciigraph.Height(5),
		asciigraph.Width(canvasWidth),
		asciigraph.Caption("equatorial radius vs longitude"),
	)
	b.WriteString("\n" + graphStyle.Render(graph) + "\n")

	if m.showHelp {
		b.WriteString(helpStyle.Render("  left/right omega  up/down sea level  +/- zoom  space spin  r reset  q quit") + "\n")
	} else {
		b.WriteString(helpStyle.Render("  h help  q quit") + "\n")
	}
	return b.String()
}

// RunInteractive starts the viewer for the given configuration.
func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
