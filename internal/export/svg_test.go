package export

import (
	"strings"
	"testing"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/sim"
	"github.com/san-kum/stellar/internal/viz"
)

func TestSnapshotToSVG(t *testing.T) {
	cfg := *config.DefaultConfig()
	cfg.Width, cfg.Height = 400, 300
	cfg.ParticleCount = 20
	cfg.Seed = 5
	e := sim.New(cfg)
	e.Tick()

	var sb strings.Builder
	if err := SnapshotToSVG(&sb, e.Snapshot(), viz.ThemePeriwinkle); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output is not a complete svg document")
	}
	if !strings.Contains(out, `viewBox="0 0 400 300"`) {
		t.Error("viewBox should match the viewport")
	}
	if got := strings.Count(out, "<circle"); got < 20 {
		t.Errorf("expected at least one circle per particle, got %d", got)
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, []float64{1}, 100, 100, "#fff") != "" {
		t.Error("single point should produce nothing")
	}
	out := SeriesToSVG([]float64{0, 1, 2}, []float64{5, 5, 5}, 200, 100, "#ccccff")
	if strings.Count(out, " L") != 2 {
		t.Errorf("expected two line segments in %q", out)
	}
	if !strings.Contains(out, `stroke="#ccccff"`) {
		t.Error("stroke color missing")
	}
}
