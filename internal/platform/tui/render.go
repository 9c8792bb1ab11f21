package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game"
)

// Smallest canvas the field can be drawn on.
const (
	minCanvasW = 24
	minCanvasH = 8
)

// colorStyles maps canvas colors to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:    lipgloss.NewStyle(),
	ColorNeonPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	ColorNeonCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	ColorNeonGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	ColorNeonYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	ColorNeonOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorDim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// RenderCanvas converts a canvas to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func RenderCanvas(c *Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			color := c.Get(x, y).Color

			var run strings.Builder
			for x < c.Width() {
				cell := c.Get(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps field coordinates onto canvas cells. Row 0 holds the HUD and
// the ground line sits on the last row.
type viewport struct {
	cols, rows int // Canvas columns and field rows
	fieldW     float64
	groundY    float64
	fieldTop   int
	groundRow  int
}

func newViewport(c *Canvas, snap game.Snapshot) viewport {
	groundRow := c.Height() - 1
	fieldTop := 1
	return viewport{
		cols:      c.Width(),
		rows:      groundRow - fieldTop,
		fieldW:    snap.FieldWidth,
		groundY:   snap.GroundY,
		fieldTop:  fieldTop,
		groundRow: groundRow,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / v.fieldW))
}

// row maps y to a canvas row. Anything above the field is pinned to its top row.
func (v viewport) row(y float64) int {
	y = core.ClampF(y, 0, v.groundY)
	return v.fieldTop + int(math.Floor(y*float64(v.rows)/v.groundY))
}

// cells returns the half-open cell span covered by r, at least one cell each way.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, x1 = v.col(r.X), v.col(r.Right())
	y0, y1 = v.row(r.Top()), v.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	if y1 > v.groundRow {
		y1 = v.groundRow
		y0 = min(y0, y1-1)
	}
	return x0, y0, x1, y1
}

// DrawSnapshot draws the whole game frame onto the canvas.
func DrawSnapshot(c *Canvas, snap game.Snapshot) {
	c.Clear()
	if c.Width() < minCanvasW || c.Height() < minCanvasH {
		c.DrawText(0, 0, "terminal too small", ColorNeonOrange)
		return
	}
	if snap.FieldWidth <= 0 || snap.GroundY <= 0 {
		return
	}

	v := newViewport(c, snap)

	c.DrawHLine(0, v.groundRow, c.Width(), '▀', ColorNeonGreen)

	for _, o := range snap.Obstacles {
		x0, y0, x1, y1 := v.cells(o.Rect)
		c.FillRect(x0, y0, x1, y1, '█', ColorNeonCyan)
	}

	playerColor := ColorNeonPink
	if snap.Streak > 0 {
		playerColor = ColorNeonYellow
	}
	x0, y0, x1, y1 := v.cells(snap.Player.Rect)
	c.FillRect(x0, y0, x1, y1, '▓', playerColor)

	drawHUD(c, snap)
	drawOverlay(c, snap)
}

func drawHUD(c *Canvas, snap game.Snapshot) {
	c.DrawText(1, 0, fmt.Sprintf("SCORE %d", snap.Score), ColorWhite)
	c.DrawTextRight(0, fmt.Sprintf("BEST %d ", snap.HighScore), ColorDim)

	mid := fmt.Sprintf("LV %d", snap.Level)
	if snap.Streak > 0 {
		mid += fmt.Sprintf("  STREAK x%d", snap.Streak)
	} else if snap.PerfectJumps > 0 {
		mid += fmt.Sprintf("  PERFECT %d", snap.PerfectJumps)
	}
	c.DrawTextCentered(0, mid, ColorNeonYellow)
}

func drawOverlay(c *Canvas, snap game.Snapshot) {
	y := c.Height() / 3
	switch snap.State {
	case game.StateReady:
		c.DrawTextCentered(y, "N E O N   R U N N E R", ColorNeonPink)
		c.DrawTextCentered(y+2, "press space to start", ColorDim)
	case game.StatePaused:
		c.DrawTextCentered(y, "PAUSED", ColorWhite)
		c.DrawTextCentered(y+2, "press p to resume", ColorDim)
	case game.StateGameOver:
		c.DrawTextCentered(y, "GAME OVER", ColorNeonOrange)
		c.DrawTextCentered(y+1, fmt.Sprintf("score %d  distance %d  bonus %d",
			snap.Score, snap.Distance, snap.Bonus), ColorWhite)
		if snap.NewRecord {
			c.DrawTextCentered(y+2, "NEW RECORD!", ColorNeonYellow)
		}
		c.DrawTextCentered(y+3, "press r to restart", ColorDim)
	}
}
