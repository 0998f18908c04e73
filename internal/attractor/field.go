// Package attractor pulls particles toward a fixed silhouette of target
// points.
//
// Targets are stored normalized to [0,1]x[0,1] and scaled to screen space
// with [Field.Rescale]. Loading may happen from another goroutine while
// ticks run; until it completes the field is inert.
//
//	field := attractor.NewField(1280, 720)
//	go field.Load(attractor.Portrait())
//	targets := field.Targets() // once per tick
//	attractor.Pull(&p, targets, strength)
package attractor

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/stellar/internal/particle"
)

const (
	// SettleRadius is the distance inside which a particle snaps to its target.
	SettleRadius = 8.0
	// PullScale converts strength into a per-frame impulse.
	PullScale = 0.25
	// SettleDamping and SettleNudge shape the snap-to-target behavior.
	SettleDamping = 0.6
	SettleNudge   = 0.1
	// Coverage is the share of the smaller viewport side the silhouette spans.
	Coverage = 0.4
)

var ErrNoPoints = errors.New("stellar: attractor point set is empty")

// Point is a normalized target. Brightness is carried for future
// weighting and does not affect steering.
type Point struct {
	X          float64 `yaml:"x" json:"x"`
	Y          float64 `yaml:"y" json:"y"`
	Brightness float64 `yaml:"brightness" json:"brightness"`
}

type Field struct {
	mu            sync.RWMutex
	points        []Point
	scaled        []r2.Vec
	width, height float64
	loaded        bool
}

func NewField(width, height float64) *Field {
	return &Field{width: width, height: height}
}

// Load installs points and scales them to the current viewport. The set is
// immutable afterwards apart from rescaling.
func (f *Field) Load(points []Point) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	pts := make([]Point, len(points))
	copy(pts, points)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.points = pts
	f.loaded = true
	f.rescaleLocked()
	return nil
}

// LoadFile reads a yaml list of points and loads it.
func (f *Field) LoadFile(path string) error {
	points, err := ReadPoints(path)
	if err != nil {
		return err
	}
	return f.Load(points)
}

func (f *Field) Loaded() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loaded
}

func (f *Field) Rescale(width, height float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.width, f.height = width, height
	f.rescaleLocked()
}

func (f *Field) rescaleLocked() {
	size := math.Min(f.width, f.height) * Coverage
	cx, cy := f.width/2, f.height/2

	scaled := make([]r2.Vec, len(f.points))
	for i, p := range f.points {
		scaled[i] = r2.Vec{X: cx + (p.X-0.5)*size, Y: cy + (p.Y-0.5)*size}
	}
	f.scaled = scaled
}

// Targets returns the screen-space targets, or nil before loading. The
// returned slice is never modified afterwards.
func (f *Field) Targets() []r2.Vec {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.loaded {
		return nil
	}
	return f.scaled
}

// Nearest returns the index of the target closest to pos by squared
// distance, first match winning ties, or -1 for an empty set.
func Nearest(pos r2.Vec, targets []r2.Vec) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for i, t := range targets {
		if d := r2.Norm2(r2.Sub(t, pos)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// Pull steers p toward its nearest target. It is a no-op when strength is
// zero or there are no targets.
func Pull(p *particle.Particle, targets []r2.Vec, strength float64) {
	if strength == 0 || len(targets) == 0 {
		return
	}
	idx, dist2 := Nearest(p.Pos, targets)
	if idx < 0 {
		return
	}

	delta := r2.Sub(targets[idx], p.Pos)
	dist := math.Sqrt(dist2)
	if dist > SettleRadius {
		p.Vel = r2.Add(p.Vel, r2.Scale(strength*PullScale/dist, delta))
		return
	}
	p.Vel = r2.Add(r2.Scale(SettleDamping, p.Vel), r2.Scale(SettleNudge, delta))
}

// ReadPoints parses a yaml document holding a list of points.
func ReadPoints(path string) ([]Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points %s: %w", path, err)
	}
	var points []Point
	if err := yaml.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("parse points %s: %w", path, err)
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	for i := range points {
		if points[i].Brightness == 0 {
			points[i].Brightness = 1
		}
	}
	return points, nil
}
