package viz

import (
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/sim"
)

func testEngine() *sim.Engine {
	cfg := *config.DefaultConfig()
	cfg.ParticleCount = 30
	cfg.Seed = 9
	return sim.New(cfg)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelResize(t *testing.T) {
	eng := testEngine()
	m := NewModel(eng, "test")

	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(m, TickMsg(time.Now()))

	cols, rows := 120-panelWidth-4, 40-2
	w, h := eng.Viewport()
	if w != float64(cols*2)*WorldPerDot || h != float64(rows*4)*WorldPerDot {
		t.Errorf("viewport %vx%v does not match a %dx%d canvas", w, h, cols, rows)
	}
}

func TestModelPause(t *testing.T) {
	eng := testEngine()
	m := NewModel(eng, "test")

	m = update(m, TickMsg(time.Now()))
	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(m, TickMsg(time.Now()))
	m = update(m, TickMsg(time.Now()))

	if got := eng.Totals().Ticks; got != 1 {
		t.Errorf("expected 1 tick before pausing, got %d", got)
	}
}

func TestModelPolarityToggle(t *testing.T) {
	eng := testEngine()
	m := NewModel(eng, "test")

	m = update(m, key("p"))
	if eng.Config().PolarityEnabled {
		t.Error("config applied before the next tick")
	}
	m = update(m, TickMsg(time.Now()))
	if !eng.Config().PolarityEnabled {
		t.Error("expected polarity enabled after tick")
	}
}

func TestModelAdjustParticles(t *testing.T) {
	eng := testEngine()
	m := NewModel(eng, "test")

	for m.selected != 4 {
		m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m = update(m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(m, TickMsg(time.Now()))

	if got := eng.Config().ParticleCount; got != 32 {
		t.Errorf("expected 32 particles, got %d", got)
	}
	if got := eng.Stats().Live; got != 32 {
		t.Errorf("expected repopulation to 32, got %d", got)
	}
}

type countingThunder struct{ strikes int }

func (c *countingThunder) Strike(n int) { c.strikes += n }

func TestModelThunder(t *testing.T) {
	cfg := *config.GetPreset("storm")
	cfg.Seed = 4
	eng := sim.New(cfg)
	thunder := &countingThunder{}
	m := NewModel(eng, "storm").WithThunder(thunder)

	for i := 0; i < 120; i++ {
		m = update(m, TickMsg(time.Now()))
	}
	if thunder.strikes != eng.Totals().Bolts {
		t.Errorf("thunder heard %d strikes, engine emitted %d", thunder.strikes, eng.Totals().Bolts)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(testEngine(), "test")
	m = update(m, TickMsg(time.Now()))
	m = update(m, TickMsg(time.Now()))

	view := m.View()
	if !strings.Contains(view, "PARAMETERS") {
		t.Error("view missing the parameter panel")
	}

	m = update(m, key("?"))
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay not shown")
	}
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")

	empty := NewRecorder()
	if err := empty.Save(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty recording wrote a file")
	}

	c := NewCanvas(4, 2)
	rec := NewRecorder()
	c.Set(0, 0)
	rec.Capture(c)
	c.Set(7, 7)
	rec.Capture(c)
	if err := rec.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Errorf("expected 2 frames, got %d", len(anim.Image))
	}
	if b := anim.Image[0].Bounds(); b.Dx() != 4*charW || b.Dy() != 2*charH {
		t.Errorf("unexpected frame size %v", b)
	}
}

func TestMenuFlow(t *testing.T) {
	app := NewInteractiveApp(1, nil)
	var m tea.Model = *app

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	mm := m.(menu)
	if mm.state != stateConfig {
		t.Fatalf("expected config screen, got state %d", mm.state)
	}
	if mm.selected != mm.presets[1] || mm.cfg.Seed != 1 {
		t.Errorf("unexpected selection %q seed %d", mm.selected, mm.cfg.Seed)
	}

	m, _ = m.Update(key("s"))
	if m.(menu).state != stateSim {
		t.Error("expected simulation after start")
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}
