// Package export writes simulation frames and series as standalone SVG.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/particle"
	"github.com/san-kum/stellar/internal/sim"
	"github.com/san-kum/stellar/internal/viz"
)

func linkStroke(th viz.Theme, rel sim.Relation) lipgloss.Color {
	switch rel {
	case sim.Annihilate:
		return th.Annihilate
	case sim.Repel:
		return th.Repel
	}
	return th.Attract
}

func writePath(sb *strings.Builder, path []r2.Vec, stroke lipgloss.Color, width, opacity float64) {
	if len(path) < 2 {
		return
	}
	sb.WriteString(`<polyline fill="none" points="`)
	for i, p := range path {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%.1f,%.1f", p.X, p.Y)
	}
	fmt.Fprintf(sb, `" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f"/>
`, stroke, width, opacity)
}

// SnapshotToSVG draws one frame in world coordinates: glow cells, links,
// bolts, flashes and particles.
func SnapshotToSVG(w io.Writer, s sim.Snapshot, th viz.Theme) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, th.Background)

	for _, cell := range s.Cells {
		if tint := viz.GlowColor(cell.Net, th); tint != "" {
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="60" fill="%s" fill-opacity="0.6"/>
`, cell.Center.X, cell.Center.Y, tint)
		}
	}

	for _, conn := range sim.Connections(s, s.ConnectivityRadius) {
		a, b := s.Particles[conn.A].Pos, s.Particles[conn.B].Pos
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-opacity="%.2f"/>
`, a.X, a.Y, b.X, b.Y, linkStroke(th, conn.Relation), conn.Opacity*0.6)
	}

	for _, bolt := range s.Bolts {
		alpha := bolt.Alpha()
		for _, br := range bolt.Branches {
			writePath(&sb, br, th.BoltGlow, 1, alpha*0.7)
		}
		writePath(&sb, bolt.Segments, th.BoltGlow, 6, alpha*0.3)
		writePath(&sb, bolt.Segments, th.Bolt, 2, alpha)
	}

	for _, f := range s.Flashes {
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-opacity="%.2f"/>
`, f.Center.X, f.Center.Y, f.Radius, th.Flash, f.Alpha)
	}

	for i := range s.Particles {
		p := &s.Particles[i]
		switch {
		case p.IsAntiparticle():
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s"/>
<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, p.Pos.X, p.Pos.Y, p.Radius, th.Anti, p.Pos.X, p.Pos.Y, p.Radius*0.4, th.Anti)
		case p.Polarity == particle.Positive:
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, p.Pos.X, p.Pos.Y, p.Radius, th.Positive)
		default:
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s"/>
`, p.Pos.X, p.Pos.Y, p.Radius, th.Negative)
		}
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// SeriesToSVG plots y against x as a single path scaled into width x height.
func SeriesToSVG(x, y []float64, width, height int, stroke string) string {
	n := min(len(x), len(y))
	if n < 2 {
		return ""
	}

	minX, maxX := x[0], x[0]
	minY, maxY := y[0], y[0]
	for i := 0; i < n; i++ {
		minX, maxX = math.Min(minX, x[i]), math.Max(maxX, x[i])
		minY, maxY = math.Min(minY, y[i]), math.Max(maxY, y[i])
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a12"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, stroke)

	for i := 0; i < n; i++ {
		px := (x[i] - minX) / rangeX * float64(width)
		py := float64(height) - (y[i]-minY)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", px, py)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", px, py)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
