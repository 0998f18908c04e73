package attractor

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/particle"
)

func TestField_InertUntilLoaded(t *testing.T) {
	f := NewField(800, 600)
	if f.Loaded() || f.Targets() != nil {
		t.Fatal("new field should be inert")
	}

	p := particle.New(r2.Vec{X: 10, Y: 10}, particle.Positive, particle.Normal)
	Pull(&p, f.Targets(), 5)
	if p.Vel != (r2.Vec{}) {
		t.Errorf("inert field moved particle: %v", p.Vel)
	}
}

func TestField_ConcurrentLoad(t *testing.T) {
	f := NewField(800, 600)
	points := Portrait()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := f.Load(points); err != nil {
			t.Error(err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			f.Rescale(800+float64(i), 600)
			if ts := f.Targets(); ts != nil && len(ts) != len(points) {
				t.Errorf("partial target set: %d of %d", len(ts), len(points))
			}
		}
	}()
	wg.Wait()

	f.Rescale(800, 600)
	if !f.Loaded() || len(f.Targets()) != len(points) {
		t.Errorf("expected %d targets after load, got %d", len(points), len(f.Targets()))
	}
}

func TestField_LoadEmpty(t *testing.T) {
	f := NewField(800, 600)
	if err := f.Load(nil); err != ErrNoPoints {
		t.Errorf("expected ErrNoPoints, got %v", err)
	}
	if f.Loaded() {
		t.Error("failed load must leave the field inert")
	}
}

func TestField_Rescale(t *testing.T) {
	f := NewField(800, 600)
	if err := f.Load([]Point{{X: 0.5, Y: 0.5}, {X: 0, Y: 0}, {X: 1, Y: 1}}); err != nil {
		t.Fatalf("load: %v", err)
	}

	got := f.Targets()
	want := []r2.Vec{{X: 400, Y: 300}, {X: 280, Y: 180}, {X: 520, Y: 420}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("target %d = %v, want %v", i, got[i], want[i])
		}
	}

	f.Rescale(1000, 2000)
	got = f.Targets()
	if got[1] != (r2.Vec{X: 300, Y: 800}) {
		t.Errorf("rescaled target = %v, want {300 800}", got[1])
	}
}

func TestNearest_FirstWinsTies(t *testing.T) {
	targets := []r2.Vec{{X: 10, Y: 0}, {X: -10, Y: 0}, {X: 0, Y: 50}}
	idx, d2 := Nearest(r2.Vec{}, targets)
	if idx != 0 || d2 != 100 {
		t.Errorf("Nearest = %d (%f), want 0 (100)", idx, d2)
	}
	if idx, _ := Nearest(r2.Vec{}, nil); idx != -1 {
		t.Errorf("Nearest on empty set = %d, want -1", idx)
	}
}

func TestPull(t *testing.T) {
	targets := []r2.Vec{{X: 100, Y: 100}}

	tests := []struct {
		name     string
		pos, vel r2.Vec
		strength float64
		want     r2.Vec
	}{
		{"far pull", r2.Vec{X: 100, Y: 0}, r2.Vec{}, 4, r2.Vec{X: 0, Y: 1}},
		{"settle", r2.Vec{X: 95, Y: 100}, r2.Vec{X: 1, Y: 1}, 4, r2.Vec{X: 0.6 + 0.5, Y: 0.6}},
		{"zero strength", r2.Vec{X: 100, Y: 0}, r2.Vec{X: 0.3}, 0, r2.Vec{X: 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := particle.New(tt.pos, particle.Negative, particle.Normal)
			p.Vel = tt.vel
			Pull(&p, targets, tt.strength)
			if math.Abs(p.Vel.X-tt.want.X) > 1e-12 || math.Abs(p.Vel.Y-tt.want.Y) > 1e-12 {
				t.Errorf("velocity = %v, want %v", p.Vel, tt.want)
			}
		})
	}
}

func TestPortrait(t *testing.T) {
	pts := Portrait()
	if len(pts) < 100 {
		t.Fatalf("expected a detailed silhouette, got %d points", len(pts))
	}
	for i, p := range pts {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("point %d outside unit square: %+v", i, p)
		}
	}
	pts[0].X = -1
	if Portrait()[0].X == -1 {
		t.Error("Portrait must return a copy")
	}
}

func TestReadPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.yaml")
	doc := "- {x: 0.1, y: 0.2}\n- {x: 0.9, y: 0.8, brightness: 0.5}\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	pts, err := ReadPoints(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(pts) != 2 || pts[0].Brightness != 1 || pts[1].Brightness != 0.5 {
		t.Errorf("unexpected points: %+v", pts)
	}

	f := NewField(100, 100)
	if err := f.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if f.Loaded() {
		t.Error("failed file load must leave the field inert")
	}
}
