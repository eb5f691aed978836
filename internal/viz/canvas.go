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

const (
	brailleBlank = 0x2800
	brailleLast  = 0x28ff
)

// Canvas is a braille dot grid with a per-cell foreground and background
// color. Dots are addressed in sub-pixels: (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	fg            [][]lipgloss.Color
	bg            [][]lipgloss.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		fg:     make([][]lipgloss.Color, h),
		bg:     make([][]lipgloss.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.fg[i] = make([]lipgloss.Color, w)
		c.bg[i] = make([]lipgloss.Color, w)
	}
	c.Clear()
	return c
}

// SubWidth and SubHeight are the canvas size in sub-pixels.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

func isBraille(r rune) bool {
	return r >= brailleBlank && r <= brailleLast
}

// Set turns on the dot at (x, y). Cells holding text are left alone.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok || !isBraille(c.Grid[row][col]) {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetColor turns on the dot at (x, y) and colors its cell.
func (c *Canvas) SetColor(x, y int, color lipgloss.Color) {
	row, col, ok := c.cell(x, y)
	if !ok || !isBraille(c.Grid[row][col]) {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.fg[row][col] = color
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok || !isBraille(c.Grid[row][col]) {
		return
	}
	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < brailleBlank {
		c.Grid[row][col] = brailleBlank
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.fg[i][j] = ""
			c.bg[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color lipgloss.Color) {
	c.line(x0, y0, x1, y1, color, 0, 0)
}

// DrawDashed draws a line lit for on sub-pixels and dark for off sub-pixels.
func (c *Canvas) DrawDashed(x0, y0, x1, y1, on, off int, color lipgloss.Color) {
	c.line(x0, y0, x1, y1, color, on, off)
}

func (c *Canvas) line(x0, y0, x1, y1 int, color lipgloss.Color, on, off int) {
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

	for step := 0; ; step++ {
		if on <= 0 || step%(on+off) < on {
			c.SetColor(x0, y0, color)
		}
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

// FillRect lights every dot in the sub-pixel rectangle [x0,x1] x [y0,y1].
func (c *Canvas) FillRect(x0, y0, x1, y1 int, color lipgloss.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.SetColor(x, y, color)
		}
	}
}

// ShadeColumns paints the background of cell columns [col0, col1].
func (c *Canvas) ShadeColumns(col0, col1 int, color lipgloss.Color) {
	if col0 > col1 {
		col0, col1 = col1, col0
	}
	if col0 < 0 {
		col0 = 0
	}
	if col1 >= c.Width {
		col1 = c.Width - 1
	}
	for row := range c.bg {
		for col := col0; col <= col1; col++ {
			c.bg[row][col] = color
		}
	}
}

// Text writes s into the cells starting at (col, row), clipped to the canvas.
func (c *Canvas) Text(col, row int, s string, color lipgloss.Color) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= c.Width {
			return
		}
		if col >= 0 {
			c.Grid[row][col] = r
			c.fg[row][col] = color
		}
		col++
	}
}

// String renders the canvas without colors.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Lines renders each row with its colors. Runs of cells sharing colors are
// styled together.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.Height)
	for row := range c.Grid {
		var b strings.Builder
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.fg[row][col] == c.fg[row][start] && c.bg[row][col] == c.bg[row][start] {
				continue
			}
			b.WriteString(c.style(row, start).Render(string(c.Grid[row][start:col])))
			start = col
		}
		lines[row] = b.String()
	}
	return lines
}

func (c *Canvas) style(row, col int) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg := c.fg[row][col]; fg != "" {
		s = s.Foreground(fg)
	}
	if bg := c.bg[row][col]; bg != "" {
		s = s.Background(bg)
	}
	return s
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
