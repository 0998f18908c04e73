// Package charge bins particles into a coarse grid of signed charge and
// turns strongly opposed cells into discharge events.
//
// The grid carries nothing across frames: [Grid.Rebuild] recomputes every
// cell from the particle snapshot, and discharge damping only lives until
// the next rebuild.
package charge

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/particle"
)

// CellSize is the side length of a grid cell in viewport units.
const CellSize = 80.0

type Cell struct {
	Row, Col int
	Center   r2.Vec
	Positive float64
	Negative float64
	Net      float64
	Count    int
}

type Grid struct {
	Rows, Cols int
	Cells      []Cell
}

func NewGrid(width, height float64) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize recomputes the grid dimensions for a viewport and clears every cell.
func (g *Grid) Resize(width, height float64) {
	g.Cols = int(math.Ceil(width / CellSize))
	g.Rows = int(math.Ceil(height / CellSize))
	if g.Cols < 0 {
		g.Cols = 0
	}
	if g.Rows < 0 {
		g.Rows = 0
	}
	g.Cells = make([]Cell, g.Rows*g.Cols)
	g.reset()
}

func (g *Grid) reset() {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			g.Cells[row*g.Cols+col] = Cell{
				Row: row,
				Col: col,
				Center: r2.Vec{
					X: float64(col)*CellSize + CellSize/2,
					Y: float64(row)*CellSize + CellSize/2,
				},
			}
		}
	}
}

// At returns the cell at row, col, or nil outside the grid.
func (g *Grid) At(row, col int) *Cell {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil
	}
	return &g.Cells[row*g.Cols+col]
}

// Rebuild recomputes every cell from ps. Antiparticles add half a unit to
// both accumulators; particles outside the grid are ignored.
func (g *Grid) Rebuild(ps []particle.Particle) {
	g.reset()

	for i := range ps {
		p := &ps[i]
		if !p.Alive {
			continue
		}
		cell := g.At(int(math.Floor(p.Pos.Y/CellSize)), int(math.Floor(p.Pos.X/CellSize)))
		if cell == nil {
			continue
		}
		cell.Count++
		switch {
		case p.IsAntiparticle():
			cell.Positive += 0.5
			cell.Negative += 0.5
		case p.Polarity == particle.Positive:
			cell.Positive++
		default:
			cell.Negative++
		}
	}

	for i := range g.Cells {
		g.Cells[i].Net = g.Cells[i].Positive - g.Cells[i].Negative
	}
}

// Snapshot copies the cells for read-only consumers.
func (g *Grid) Snapshot() []Cell {
	out := make([]Cell, len(g.Cells))
	copy(out, g.Cells)
	return out
}

// PeakCharge is the largest |Net| on the grid.
func (g *Grid) PeakCharge() float64 {
	peak := 0.0
	for i := range g.Cells {
		peak = math.Max(peak, math.Abs(g.Cells[i].Net))
	}
	return peak
}
