package viz

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stellar/internal/attractor"
	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/sim"
)

var presetInfo = map[string]string{
	"calm":       "slow drift, no forces",
	"storm":      "dense charge, frequent lightning",
	"portrait":   "particles settle into a face",
	"antimatter": "annihilation heavy",
}

var (
	menuTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ccccff")).Bold(true)
	menuSub    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Bold(true)
	menuActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuIdle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8888cc")).Bold(true)
)

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// Launch builds an engine for cfg and loads the portrait targets in the
// background. pointsFile, when set, replaces the built-in portrait.
func Launch(cfg config.Config, pointsFile string) *sim.Engine {
	field := attractor.NewField(cfg.Width, cfg.Height)
	go func() {
		var err error
		if pointsFile != "" {
			err = field.LoadFile(pointsFile)
		} else {
			err = field.Load(attractor.Portrait())
		}
		if err != nil {
			log.Printf("attractor: %v", err)
		}
	}()
	return sim.New(cfg, sim.WithField(field))
}

type menu struct {
	state     int
	cursor    int
	presets   []string
	selected  string
	cfg       config.Config
	param     int
	seed      int64
	thunder   Thunder
	liveModel Model
	lastSize  *tea.WindowSizeMsg
}

func NewInteractiveApp(seed int64, thunder Thunder) *menu {
	return &menu{
		state:   stateMenu,
		presets: config.ListPresets(),
		seed:    seed,
		thunder: thunder,
	}
}

func (m menu) Init() tea.Cmd { return nil }

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.lastSize = &msg
	}
	if m.state == stateSim {
		return m.forward(msg)
	}
	return m, nil
}

func (m menu) forward(msg tea.Msg) (menu, tea.Cmd) {
	next, cmd := m.liveModel.Update(msg)
	m.liveModel = next.(Model)
	return m, cmd
}

func (m menu) handleKey(msg tea.KeyMsg) (menu, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		return m.forward(msg)
	}
	return m, nil
}

func (m menu) menuKey(msg tea.KeyMsg) (menu, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.presets) == 0 {
			return m, nil
		}
		m.selected = m.presets[m.cursor]
		m.cfg = *config.GetPreset(m.selected)
		m.cfg.Seed = m.seed
		m.state, m.param = stateConfig, 0
	}
	return m, nil
}

func (m menu) configKey(msg tea.KeyMsg) (menu, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.state = stateMenu
	case "up", "k":
		m.param = (m.param + len(tunables) - 1) % len(tunables)
	case "down", "j":
		m.param = (m.param + 1) % len(tunables)
	case "left", "h":
		m.nudge(0.9)
	case "right", "l":
		m.nudge(1.1)
	case "p":
		m.cfg.PolarityEnabled = !m.cfg.PolarityEnabled
	case "s", "enter":
		return m.start()
	}
	return m, nil
}

func (m *menu) nudge(factor float64) {
	_ = m.cfg.Adjust(tunables[m.param], factor, 0.1)
}

func (m menu) start() (menu, tea.Cmd) {
	m.liveModel = NewModel(Launch(m.cfg, ""), m.selected).WithThunder(m.thunder)
	m.state = stateSim
	cmds := []tea.Cmd{m.liveModel.Init()}
	if m.lastSize != nil {
		size := *m.lastSize
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return m, tea.Batch(cmds...)
}

func (m menu) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.liveModel.View()
	}
	return ""
}

func (m menu) header(title, sub string) string {
	return "\n\n    " + menuTitle.Render(title) + "\n    " + menuSub.Render(sub) + "\n    " + menuSub.Render("─────────────────────────") + "\n\n"
}

func hints(pairs ...string) string {
	var b strings.Builder
	b.WriteString("\n   ")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(" " + menuKey.Render(pairs[i]) + menuIdle.Render(" "+pairs[i+1]))
	}
	return b.String() + "\n"
}

func (m menu) viewMenu() string {
	var b strings.Builder
	b.WriteString(m.header("STELLAR", "charged particle network"))
	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuActive.Render(fmt.Sprintf("%-12s", name)), menuCursor.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", menuIdle.Render(fmt.Sprintf("%-12s", name)), menuSub.Render(desc)))
		}
	}
	b.WriteString(hints("j/k", "navigate", "enter", "select", "q", "quit"))
	return b.String()
}

func (m menu) viewConfig() string {
	var b strings.Builder
	b.WriteString(m.header(strings.ToUpper(m.selected), presetInfo[m.selected]))
	params := m.cfg.Params()
	for i, key := range tunables {
		val := fmt.Sprintf("%8.3f", params[key])
		if i == m.param {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", menuCursor.Render("▸"), menuActive.Render(fmt.Sprintf("%-13s", key)), menuCursor.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", menuIdle.Render(fmt.Sprintf("%-13s", key)), menuSub.Render(val)))
		}
	}
	b.WriteString(fmt.Sprintf("\n      %s %s\n", menuIdle.Render(fmt.Sprintf("%-13s", "polarity")), menuSub.Render(onOff(m.cfg.PolarityEnabled))))
	b.WriteString(hints("j/k", "select", "h/l", "adjust", "p", "polarity", "s", "start", "esc", "back"))
	return b.String()
}

func RunInteractive(seed int64, thunder Thunder) error {
	_, err := tea.NewProgram(NewInteractiveApp(seed, thunder), tea.WithAltScreen()).Run()
	return err
}
