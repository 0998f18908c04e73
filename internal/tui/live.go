// Package tui prints a plain-character preview of a headless run using
// ANSI clear and cursor codes only.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/stellar/internal/particle"
	"github.com/san-kum/stellar/internal/sim"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

type LiveRenderer struct {
	out       io.Writer
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
}

func NewLiveRenderer(out io.Writer, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{out: out, frameRate: frameRate, canvas: canvas}
}

// OnFrame draws s unless the previous frame was drawn too recently.
func (r *LiveRenderer) OnFrame(s sim.Snapshot) {
	if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.Draw(s)
	r.render(s)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) line(x1, y1, x2, y2 int, c rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		r.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Draw rasterizes s into the character grid: bolts as '#', flashes as
// 'o', then '+' and '-' particles and '*' antiparticles.
func (r *LiveRenderer) Draw(s sim.Snapshot) {
	r.clear()
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	sx, sy := float64(width-1)/s.Width, float64(height-1)/s.Height
	cell := func(x, y float64) (int, int) { return int(x * sx), int(y * sy) }

	for _, b := range s.Bolts {
		for i := 1; i < len(b.Segments); i++ {
			x0, y0 := cell(b.Segments[i-1].X, b.Segments[i-1].Y)
			x1, y1 := cell(b.Segments[i].X, b.Segments[i].Y)
			r.line(x0, y0, x1, y1, '#')
		}
	}
	for _, f := range s.Flashes {
		x, y := cell(f.Center.X, f.Center.Y)
		r.set(x, y, 'o')
	}
	for _, p := range s.Particles {
		x, y := cell(p.Pos.X, p.Pos.Y)
		switch {
		case p.IsAntiparticle():
			r.set(x, y, '*')
		case p.Polarity == particle.Positive:
			r.set(x, y, '+')
		default:
			r.set(x, y, '-')
		}
	}
}

// String returns the current grid.
func (r *LiveRenderer) String() string {
	var b strings.Builder
	for _, row := range r.canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *LiveRenderer) render(s sim.Snapshot) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  stellar  tick=%d\n", s.Tick))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  live=%d bolts=%d flashes=%d peak=%.2f\n", s.Live, len(s.Bolts), len(s.Flashes), s.PeakCharge))

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
