package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// tileColors cycles through the palette by power of two: 2, 4, 8, ...
var tileColors = []core.Color{
	core.ColorWhite,
	core.ColorBrightWhite,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorGreen,
	core.ColorBrightCyan,
	core.ColorCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// TileColor returns the display color for a tile value.
func TileColor(v int) core.Color {
	if v <= 0 {
		return core.ColorDefault
	}
	exp := 0
	for v > 2 {
		v >>= 1
		exp++
	}
	return tileColors[exp%len(tileColors)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardH := BoardSize*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))

	dst.DrawTextCentered(boardY+boardH+1, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Best: %d", g.score))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Lvl %d/%d Goal %d", g.levelIndex+1, LevelCount(), g.currentTarget)
	} else {
		info = fmt.Sprintf("Moves: %d", g.moves)
	}
	infoX := max(boardX+boardW-len(info), boardX)
	dst.DrawText(infoX, 2, info)

	mode := "Campaign"
	if g.mode == ModeEndless {
		mode = "Endless"
	}
	dst.DrawText(boardX, 2, mode)
}

// gridRune picks the box-drawing rune for grid intersection (x, y).
func gridRune(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, gridRune(x, y))

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for i, v := range g.board.Values() {
		if v == 0 {
			continue
		}
		cellX := boardX + (i%BoardSize)*cellWidth + 1
		cellY := boardY + (i/BoardSize)*cellHeight + 1

		valStr := strconv.Itoa(v)
		padLeft := max((cellWidth-1-len(valStr))/2, 0)
		dst.DrawTextColor(cellX+padLeft, cellY, valStr, TileColor(v))
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.levelCleared:
		reached := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= LevelCount()-1 {
			drawOverlay(dst, board, reached, "Final level complete!")
		} else {
			drawOverlay(dst, board, reached, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won:
		drawOverlay(dst, board, "CAMPAIGN COMPLETE!", "Press R to restart")
	case g.gameOver:
		drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Max tile: %d", g.score), "Press R to restart")
	}
}

// drawOverlay draws a boxed block of text centered on area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredIn(area, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
