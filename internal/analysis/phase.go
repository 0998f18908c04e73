package analysis

import "strings"

type PhasePoint struct{ X, Y float64 }

// PhasePortrait pairs two series sample by sample.
type PhasePortrait struct {
	XName, YName string
	Points       []PhasePoint
}

// NewPhasePortrait zips x and y, truncating to the shorter.
func NewPhasePortrait(xName string, x []float64, yName string, y []float64) *PhasePortrait {
	n := min(len(x), len(y))
	p := &PhasePortrait{XName: xName, YName: yName, Points: make([]PhasePoint, n)}
	for i := 0; i < n; i++ {
		p.Points[i] = PhasePoint{X: x[i], Y: y[i]}
	}
	return p
}

func (p *PhasePortrait) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
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

	canvas := blankCanvas(width, height)
	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}
	return render(canvas)
}

func blankCanvas(width, height int) [][]rune {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}
	return canvas
}

func render(canvas [][]rune) string {
	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
