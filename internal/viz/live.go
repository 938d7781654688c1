package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Coreymillia/psyscreen/internal/display"
	"github.com/Coreymillia/psyscreen/internal/engine"
	"github.com/Coreymillia/psyscreen/internal/stats"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	recordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model wraps the rotation engine in an interactive terminal view: the
// frame buffer blitted as half-block cells, a metrics sidebar, and keys for
// pausing, skipping and GIF capture.
type Model struct {
	cyc       *engine.Cycler
	blit      *Blitter
	frameTime *stats.FrameTime
	load      *stats.EffectLoad
	interval  time.Duration
	scale     int
	gifPath   string
	running   bool
	recording bool
	rec       *display.GIF
	showHelp  bool
	err       error
}

// NewModel hooks the metrics into the cycler and prepares the blitter.
// gifPath is where a capture toggled with the g key lands.
func NewModel(cyc *engine.Cycler, interval time.Duration, scale int, gifPath string) Model {
	ft := stats.NewFrameTime()
	load := stats.NewEffectLoad()
	cyc.AddMetric(ft)
	cyc.AddMetric(load)

	return Model{
		cyc:       cyc,
		blit:      NewBlitter(2),
		frameTime: ft,
		load:      load,
		interval:  interval,
		scale:     scale,
		gifPath:   gifPath,
		running:   true,
	}
}

// Err reports the engine failure that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			m.cyc.RequestNext()
		case "g":
			if m.recording {
				m.err = m.rec.Save(m.gifPath)
				m.recording = false
				m.rec = nil
				if m.err != nil {
					return m, tea.Quit
				}
			} else {
				delay := int(m.interval / (10 * time.Millisecond))
				m.rec = display.NewGIF(m.scale, delay)
				m.recording = true
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if err := m.cyc.Advance(time.Time(msg)); err != nil {
				m.err = err
				return m, tea.Quit
			}
			if m.recording {
				if err := m.rec.Push(m.cyc.Buffer(), m.cyc.Palette()); err != nil {
					m.err = err
					return m, tea.Quit
				}
			}
		}
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.blit.String(m.cyc.Buffer(), m.cyc.Palette()))

	var s strings.Builder
	s.WriteString(headerStyle.Render("PSYSCREEN") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.recording {
		status += recordStyle.Render("  REC " + fmt.Sprint(m.rec.Frames()))
	}
	s.WriteString(status + "\n\n")

	if hist := m.frameTime.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Step ms"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	inUse, budget := m.cyc.GuardianState()
	s.WriteString(labelStyle.Render("Effect") + valueStyle.Render(m.cyc.CurrentEffect()) + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprint(m.cyc.Frame())) + "\n")
	s.WriteString(labelStyle.Render("Rotations") + valueStyle.Render(fmt.Sprint(m.cyc.Rotations())) + "\n")
	s.WriteString(labelStyle.Render("Scratch") + valueStyle.Render(fmt.Sprintf("%d / %d B", inUse, budget)) + "\n")
	s.WriteString(labelStyle.Render("Step mean") + valueStyle.Render(fmt.Sprintf("%.2f ms", m.frameTime.Value())) + "\n")
	s.WriteString(labelStyle.Render("Step max") + valueStyle.Render(fmt.Sprintf("%.2f ms", m.frameTime.Max())) + "\n")

	if ranked := m.load.Effects(); len(ranked) > 0 {
		s.WriteString("\nCOST\n")
		for i, name := range ranked {
			if i == 3 {
				break
			}
			s.WriteString(fmt.Sprintf("  %-12s %.2f ms\n", name, m.load.Mean(name)))
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause N:Next Q:Quit\nG:Record ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume rotation    ║
║  N        - Skip to the next effect  ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
