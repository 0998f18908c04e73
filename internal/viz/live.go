package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/sim"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	panelWidth      = 44
	historyCapacity = 600
)

var tunables = config.Tunables

type TickMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Thunder is told how many bolts struck on each tick that produced any.
type Thunder interface {
	Strike(n int)
}

type Model struct {
	engine   *sim.Engine
	cfg      config.Config
	renderer *Renderer
	canvas   *Canvas
	thunder  Thunder
	recorder *Recorder
	gifPath  string

	running     bool
	showHelp    bool
	selected    int
	liveHistory []float64
	boltHistory []float64
	status      string
	title       string
}

func NewModel(engine *sim.Engine, title string) Model {
	m := Model{
		engine:      engine,
		cfg:         engine.Config(),
		renderer:    NewRenderer(ThemePeriwinkle),
		canvas:      NewCanvas(defaultCols, defaultRows),
		gifPath:     "stellar.gif",
		running:     true,
		liveHistory: make([]float64, 0, historyCapacity),
		boltHistory: make([]float64, 0, historyCapacity),
		title:       title,
	}
	m.fitEngine()
	return m
}

func (m Model) WithThunder(t Thunder) Model {
	m.thunder = t
	return m
}

func (m Model) WithTheme(name string) Model {
	m.renderer.Theme = GetTheme(name)
	return m
}

func (m Model) WithGIFPath(path string) Model {
	m.gifPath = path
	return m
}

func (m Model) Init() tea.Cmd {
	return frame()
}

// fitEngine sizes the engine viewport to the canvas.
func (m *Model) fitEngine() {
	cw, ch := m.canvas.Dots()
	m.engine.Resize(float64(cw)*WorldPerDot, float64(ch)*WorldPerDot)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width-panelWidth-4, msg.Height-2)
		m.fitEngine()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stopRecording()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.engine.Reset()
			m.liveHistory = m.liveHistory[:0]
			m.boltHistory = m.boltHistory[:0]
		case "p":
			m.cfg.PolarityEnabled = !m.cfg.PolarityEnabled
			m.engine.SetConfig(m.cfg)
		case "tab":
			m.selected = (m.selected + 1) % len(tunables)
		case "shift+tab":
			m.selected = (m.selected + len(tunables) - 1) % len(tunables)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "l":
			m.renderer.ShowLinks = !m.renderer.ShowLinks
		case "c":
			m.renderer.ShowGlow = !m.renderer.ShowGlow
		case "t":
			m.renderer.Theme = NextTheme(m.renderer.Theme.Name)
		case "n":
			m.nextPreset()
		case "g":
			if m.recorder != nil {
				m.stopRecording()
			} else {
				m.recorder = NewRecorder()
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		m.renderer.Draw(m.canvas, m.engine.Snapshot())
		if m.recorder != nil {
			m.recorder.Capture(m.canvas)
		}
		return m, frame()
	}
	return m, nil
}

func (m *Model) step() {
	st := m.engine.Tick()
	m.liveHistory = appendCapped(m.liveHistory, float64(st.Live))
	m.boltHistory = appendCapped(m.boltHistory, float64(st.Bolts))
	if st.Bolts > 0 && m.thunder != nil {
		m.thunder.Strike(st.Bolts)
	}
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func (m *Model) adjustParam(factor float64) {
	if err := m.cfg.Adjust(tunables[m.selected], factor, 0.05); err != nil {
		m.status = err.Error()
		return
	}
	m.engine.SetConfig(m.cfg)
}

func (m *Model) nextPreset() {
	names := config.ListPresets()
	if len(names) == 0 {
		return
	}
	idx := 0
	for i, name := range names {
		if name == m.title {
			idx = (i + 1) % len(names)
			break
		}
	}
	p := config.GetPreset(names[idx])
	p.Seed = m.cfg.Seed
	m.cfg = *p
	m.title = names[idx]
	m.engine.SetConfig(m.cfg)
}

func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Save(m.gifPath); err != nil {
		m.status = err.Error()
	} else if m.recorder.Len() > 0 {
		m.status = "saved " + m.gifPath
	}
	m.recorder = nil
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.Render())
	snap := m.engine.Snapshot()
	totals := m.engine.Totals()

	var s strings.Builder
	s.WriteString(headerStyle.Render(GradientText(strings.ToUpper("stellar "+m.title), m.renderer.Theme.Positive, m.renderer.Theme.Anti)) + "\n")

	switch {
	case m.recorder != nil:
		s.WriteString(StatusRecord.Render("● REC") + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.liveHistory) > 1 {
		chart := asciigraph.Plot(m.liveHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("live"))
		s.WriteString(graphStyle.Render(chart) + "\n")
		s.WriteString(SparklineChart(m.boltHistory, 34) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", snap.Tick))
	row("Live", fmt.Sprintf("%d", snap.Live))
	row("Bolts", fmt.Sprintf("%d active / %d", len(snap.Bolts), totals.Bolts))
	row("Annihilated", fmt.Sprintf("%d", totals.Annihilations))
	row("Peak charge", fmt.Sprintf("%.2f", snap.PeakCharge))
	row("Polarity", onOff(m.cfg.PolarityEnabled))
	row("Theme", m.renderer.Theme.Name)

	s.WriteString("\nPARAMETERS\n")
	params := m.cfg.Params()
	for i, key := range tunables {
		line := fmt.Sprintf("%-13s %8.3f", key, params[key])
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Width(0).Render(line) + "\n")
		}
	}
	if m.status != "" {
		s.WriteString("\n" + valueStyle.Render(m.status) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause R:Reset P:Polarity Q:Quit\nTab:Param ↑↓:Tune N:Preset ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

const helpOverlay = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Repopulate particles     ║
║  P        - Toggle polarity forces   ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  N        - Next preset              ║
║  L        - Toggle links             ║
║  C        - Toggle charge glow       ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the full-screen program.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
