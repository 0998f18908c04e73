package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/charge"
	"github.com/san-kum/stellar/internal/effects"
	"github.com/san-kum/stellar/internal/lightning"
	"github.com/san-kum/stellar/internal/particle"
	"github.com/san-kum/stellar/internal/sim"
)

func vec(v r2.Vec) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func (a *App) drawGlow(s sim.Snapshot) {
	for _, cell := range s.Cells {
		inner, ok := a.Palette.Glow(cell.Net)
		if !ok {
			continue
		}
		outer := inner
		outer.A = 0
		rl.DrawCircleGradient(int32(cell.Center.X), int32(cell.Center.Y), charge.CellSize*0.75, inner, outer)
	}
}

func (a *App) linkColor(rel sim.Relation) rl.Color {
	switch rel {
	case sim.Annihilate:
		return a.Palette.Annihilate
	case sim.Repel:
		return a.Palette.Repel
	}
	return a.Palette.Attract
}

func (a *App) drawLinks(s sim.Snapshot) {
	for _, conn := range sim.Connections(s, s.ConnectivityRadius) {
		from, to := vec(s.Particles[conn.A].Pos), vec(s.Particles[conn.B].Pos)
		rl.DrawLineEx(from, to, 1, withAlpha(a.linkColor(conn.Relation), conn.Opacity*0.6))
	}
}

func drawPath(path []r2.Vec, thick float32, col rl.Color) {
	for i := 1; i < len(path); i++ {
		rl.DrawLineEx(vec(path[i-1]), vec(path[i]), thick, col)
	}
}

func (a *App) drawBolt(b *lightning.Bolt) {
	alpha := b.Alpha()
	for _, br := range b.Branches {
		drawPath(br, 1, withAlpha(a.Palette.BoltGlow, alpha*0.7))
	}
	drawPath(b.Segments, 6, withAlpha(a.Palette.BoltGlow, alpha*0.3))
	drawPath(b.Segments, 2, withAlpha(a.Palette.Bolt, alpha))
}

func (a *App) drawFlash(f effects.Annihilation) {
	rl.DrawCircleLines(int32(f.Center.X), int32(f.Center.Y), float32(f.Radius), withAlpha(a.Palette.Flash, f.Alpha))
}

func (a *App) drawParticle(p *particle.Particle) {
	pos := vec(p.Pos)
	r := float32(p.Radius)
	switch {
	case p.IsAntiparticle():
		rl.DrawCircleLines(int32(pos.X), int32(pos.Y), r, a.Palette.Anti)
		rl.DrawCircleV(pos, r*0.4, a.Palette.Anti)
	case p.Polarity == particle.Positive:
		rl.DrawCircleV(pos, r, a.Palette.Positive)
	default:
		rl.DrawCircleLines(int32(pos.X), int32(pos.Y), r, a.Palette.Negative)
	}
}

func (a *App) drawSim(s sim.Snapshot) {
	if a.ShowGlow {
		a.drawGlow(s)
	}
	if a.ShowLinks {
		a.drawLinks(s)
	}
	for _, b := range s.Bolts {
		a.drawBolt(b)
	}
	for _, f := range s.Flashes {
		a.drawFlash(f)
	}
	for i := range s.Particles {
		a.drawParticle(&s.Particles[i])
	}
}
