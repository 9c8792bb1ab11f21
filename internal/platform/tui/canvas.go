package tui

import "strings"

// Color is a foreground color for a canvas cell.
type Color uint8

const (
	ColorDefault Color = iota
	ColorNeonPink
	ColorNeonCyan
	ColorNeonGreen
	ColorNeonYellow
	ColorNeonOrange
	ColorDim
	ColorWhite
)

// Cell is one character on the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a fixed-size grid of colored runes. Drawing outside the grid is
// clipped.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Resize reallocates the grid and clears it.
func (c *Canvas) Resize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
	c.Clear()
}

// Clear fills the canvas with blank cells.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at (x, y).
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawText writes text starting at (x, y).
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawTextCentered writes text centered on row y.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	x := (c.width - len([]rune(text))) / 2
	c.DrawText(x, y, text, color)
}

// DrawTextRight writes text so that it ends at the right edge of row y.
func (c *Canvas) DrawTextRight(y int, text string, color Color) {
	c.DrawText(c.width-len([]rune(text)), y, text, color)
}

// FillRect fills the cells from (x0, y0) up to but excluding (x1, y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 int, r rune, color Color) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, r, color)
		}
	}
}

// DrawHLine draws a horizontal line of the given length.
func (c *Canvas) DrawHLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.Set(x+i, y, r, color)
	}
}

// String returns the canvas as plain text without colors.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}
