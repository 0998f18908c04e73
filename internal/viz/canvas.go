package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille dot buffer with one foreground color and one
// background tint per character cell. An empty color means uncolored.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string
	Tints         [][]string

	styles map[[2]string]lipgloss.Style
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{styles: make(map[[2]string]lipgloss.Style)}
	c.Resize(w, h)
	return c
}

// Resize reallocates the buffers and clears them.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]string, h)
	c.Tints = make([][]string, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
		c.Tints[i] = make([]string, w)
	}
	c.Clear()
}

// Dots returns the size in sub-pixels.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return col, row, true
}

// Set sets a pixel at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	c.Plot(x, y, "")
}

// Plot sets a pixel and, when color is non-empty, recolors its cell.
func (c *Canvas) Plot(x, y int, color string) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if color != "" {
		c.Colors[row][col] = color
	}
}

func (c *Canvas) Unset(x, y int) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Tint sets the background of a character cell.
func (c *Canvas) Tint(col, row int, color string) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Tints[row][col] = color
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = ""
			c.Tints[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color string) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Plot(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Ring draws a circle outline with the midpoint algorithm.
func (c *Canvas) Ring(cx, cy, r int, color string) {
	if r <= 0 {
		c.Plot(cx, cy, color)
		return
	}
	x, y, d := r, 0, 1-r
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			c.Plot(cx+p[0], cy+p[1], color)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func (c *Canvas) Disc(cx, cy, r int, color string) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Plot(cx+dx, cy+dy, color)
			}
		}
	}
}

// String renders the dots without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render renders the dots with their colors and tints.
func (c *Canvas) Render() string {
	var b strings.Builder
	for row := range c.Grid {
		for col, ch := range c.Grid[row] {
			fg, bg := c.Colors[row][col], c.Tints[row][col]
			if fg == "" && bg == "" {
				b.WriteRune(ch)
				continue
			}
			b.WriteString(c.style(fg, bg).Render(string(ch)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) style(fg, bg string) lipgloss.Style {
	key := [2]string{fg, bg}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	c.styles[key] = s
	return s
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
