package optim

import (
	"context"
	"testing"

	"github.com/san-kum/stellar/internal/config"
)

func TestParseAxis(t *testing.T) {
	name, values, err := ParseAxis("volatility=0.1:0.5:3")
	if err != nil {
		t.Fatal(err)
	}
	if name != "volatility" || len(values) != 3 {
		t.Fatalf("got %s %v", name, values)
	}
	if values[0] != 0.1 || values[2] != 0.5 {
		t.Errorf("endpoints %v", values)
	}

	_, values, err = ParseAxis("speed=2:9:1")
	if err != nil || len(values) != 1 || values[0] != 2 {
		t.Errorf("single step axis: %v %v", values, err)
	}

	for _, bad := range []string{"volatility", "v=1:2", "v=a:2:3", "v=1:b:3", "v=1:2:0"} {
		if _, _, err := ParseAxis(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestGridSearch(t *testing.T) {
	base := *config.DefaultConfig()
	base.Width, base.Height = 400, 300
	base.Seed = 2

	g := NewGridSearch([]string{"particles"}, [][]float64{{5, 15, 25}}, true)
	best, trials, err := g.Search(context.Background(), base, 3, "live")
	if err != nil {
		t.Fatal(err)
	}
	if len(trials) != 3 {
		t.Fatalf("expected 3 trials, got %d", len(trials))
	}
	if best.Params["particles"] != 25 {
		t.Errorf("best particles = %v, want 25", best.Params["particles"])
	}

	g = NewGridSearch([]string{"particles"}, [][]float64{{5, 15, 25}}, false)
	best, _, err = g.Search(context.Background(), base, 3, "live")
	if err != nil {
		t.Fatal(err)
	}
	if best.Params["particles"] != 5 {
		t.Errorf("min particles = %v, want 5", best.Params["particles"])
	}
}

func TestGridSearchErrors(t *testing.T) {
	base := *config.DefaultConfig()
	base.Width, base.Height = 400, 300
	base.ParticleCount = 5

	if _, _, err := NewGridSearch([]string{"bogus"}, [][]float64{{1}}, true).Search(context.Background(), base, 1, "live"); err == nil {
		t.Error("expected unknown param error")
	}
	if _, _, err := NewGridSearch(nil, nil, true).Search(context.Background(), base, 1, "nope"); err == nil {
		t.Error("expected unknown metric error")
	}
	if _, _, err := NewGridSearch([]string{"speed"}, [][]float64{{}}, true).Search(context.Background(), base, 1, "live"); err != ErrNoCandidates {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}
