package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/charge"
	"github.com/san-kum/stellar/internal/lightning"
	"github.com/san-kum/stellar/internal/particle"
	"github.com/san-kum/stellar/internal/sim"
)

// WorldPerDot is how many world units one braille dot covers. The engine
// viewport is sized from the canvas with it.
const WorldPerDot = 4.0

// minLinkOpacity hides the faintest links, which only add noise at
// terminal resolution.
const minLinkOpacity = 0.35

type Renderer struct {
	Theme     Theme
	ShowLinks bool
	ShowGlow  bool
}

func NewRenderer(th Theme) *Renderer {
	return &Renderer{Theme: th, ShowLinks: true, ShowGlow: true}
}

type projection struct {
	sx, sy float64
}

func (p projection) dot(v r2.Vec) (int, int) {
	return int(math.Round(v.X * p.sx)), int(math.Round(v.Y * p.sy))
}

// Draw clears c and paints one frame of s onto it: charge glow, links,
// bolts, flashes, then particles on top.
func (r *Renderer) Draw(c *Canvas, s sim.Snapshot) {
	c.Clear()
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	cw, ch := c.Dots()
	proj := projection{sx: float64(cw) / s.Width, sy: float64(ch) / s.Height}

	if r.ShowGlow {
		r.drawGlow(c, s, proj)
	}
	if r.ShowLinks {
		r.drawLinks(c, s, proj)
	}
	for _, b := range s.Bolts {
		r.drawBolt(c, b, proj)
	}
	for _, f := range s.Flashes {
		x, y := proj.dot(f.Center)
		c.Ring(x, y, int(math.Round(f.Radius*proj.sx)), Fade(r.Theme.Flash, r.Theme.Background, f.Alpha))
	}
	for i := range s.Particles {
		r.drawParticle(c, &s.Particles[i], proj)
	}
}

func (r *Renderer) drawGlow(c *Canvas, s sim.Snapshot, proj projection) {
	if s.Rows == 0 || s.Cols == 0 {
		return
	}
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			wx := (float64(col) + 0.5) * 2 / proj.sx
			wy := (float64(row) + 0.5) * 4 / proj.sy
			gc, gr := int(wx/charge.CellSize), int(wy/charge.CellSize)
			if gc < 0 || gr < 0 || gc >= s.Cols || gr >= s.Rows {
				continue
			}
			if tint := GlowColor(s.Cells[gr*s.Cols+gc].Net, r.Theme); tint != "" {
				c.Tint(col, row, tint)
			}
		}
	}
}

func (r *Renderer) linkColor(rel sim.Relation) lipgloss.Color {
	switch rel {
	case sim.Annihilate:
		return r.Theme.Annihilate
	case sim.Repel:
		return r.Theme.Repel
	}
	return r.Theme.Attract
}

func (r *Renderer) drawLinks(c *Canvas, s sim.Snapshot, proj projection) {
	for _, conn := range sim.Connections(s, s.ConnectivityRadius) {
		if conn.Opacity < minLinkOpacity {
			continue
		}
		x0, y0 := proj.dot(s.Particles[conn.A].Pos)
		x1, y1 := proj.dot(s.Particles[conn.B].Pos)
		c.DrawLine(x0, y0, x1, y1, Fade(r.linkColor(conn.Relation), r.Theme.Background, conn.Opacity))
	}
}

func (r *Renderer) drawPath(c *Canvas, path []r2.Vec, proj projection, color string) {
	for i := 1; i < len(path); i++ {
		x0, y0 := proj.dot(path[i-1])
		x1, y1 := proj.dot(path[i])
		c.DrawLine(x0, y0, x1, y1, color)
	}
}

func (r *Renderer) drawBolt(c *Canvas, b *lightning.Bolt, proj projection) {
	alpha := b.Alpha()
	for _, br := range b.Branches {
		r.drawPath(c, br, proj, Fade(r.Theme.BoltGlow, r.Theme.Background, alpha*0.7))
	}
	r.drawPath(c, b.Segments, proj, Fade(r.Theme.Bolt, r.Theme.Background, alpha))
}

func (r *Renderer) drawParticle(c *Canvas, p *particle.Particle, proj projection) {
	x, y := proj.dot(p.Pos)
	rad := int(math.Round(p.Radius * proj.sx * 0.5))
	switch {
	case p.IsAntiparticle():
		c.Ring(x, y, max(rad, 1), string(r.Theme.Anti))
		c.Plot(x, y, string(r.Theme.Anti))
	case p.Polarity == particle.Positive:
		c.Disc(x, y, rad, string(r.Theme.Positive))
	default:
		c.Ring(x, y, rad, string(r.Theme.Negative))
	}
}
