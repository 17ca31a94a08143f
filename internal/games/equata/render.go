package equata

import (
	"fmt"

	"github.com/vovakirdan/equata/internal/core"
	"github.com/vovakirdan/equata/internal/games/equata/level"
)

const (
	hudRows    = 2 // title and status lines above the plot
	editorRows = 3 // template, coefficients, key help below the plot
)

const helpLine = "←/→ select  ↑/↓ ±step  +/- fine  enter fire  p pause  r restart  q quit"

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.lvl == nil {
		return
	}

	g.renderHUD(dst)

	plotArea := core.NewRect(0, hudRows, g.screenW, g.screenH-hudRows-editorRows)
	dst.DrawBox(plotArea, core.ColorAxis)
	g.renderPlot(dst, plotArea.Inset(1))

	g.renderEditor(dst, g.screenH-editorRows)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorHUD)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH), core.ColorGray)
}

// renderHUD draws the level name, score and timer.
func (g *Game) renderHUD(dst *core.Screen) {
	title := fmt.Sprintf("EQUATA  %s", g.levelName)
	dst.DrawTextColor(1, 0, title, core.ColorHUD)

	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColor(g.screenW-len(score)-1, 0, score, core.ColorHUD)

	timeColor := core.ColorHUD
	if g.lvl.TimeLeft() < 10 {
		timeColor = core.ColorOrange
	}
	status := fmt.Sprintf("Time left: %5.1fs", g.lvl.TimeLeft())
	dst.DrawTextColor(1, 1, status, timeColor)

	misses := fmt.Sprintf("Misses: %d", g.lvl.WrongGuesses())
	dst.DrawTextColor(len(status)+4, 1, misses, core.ColorGray)

	if g.message != "" {
		dst.DrawTextColor(g.screenW-len(g.message)-1, 1, g.message, core.ColorYellow)
	}
}

// renderPlot draws axes, the revealed part of the enemy path and the player's guess.
func (g *Game) renderPlot(dst *core.Screen, area core.Rect) {
	lim := g.lvl.Limits()
	vp := core.Viewport{
		Area: area,
		MinX: lim.Min.X, MaxX: lim.Max.X,
		MinY: lim.Min.Y, MaxY: lim.Max.Y,
	}

	if _, y, ok := vp.ToCell(lim.Min.X, 0); ok {
		dst.DrawHLine(area.X, y, area.W, '─', core.ColorAxis)
	}
	if x, _, ok := vp.ToCell(0, lim.Min.Y); ok {
		dst.DrawVLine(x, area.Y, area.H, '│', core.ColorAxis)
		if _, y, ok := vp.ToCell(0, 0); ok {
			dst.SetColor(x, y, '┼', core.ColorAxis)
		}
	}

	for x := range g.lvl.DomainRangeLimits(g.cfg.Sampling.PlayerSpacing).All() {
		if cx, cy, ok := vp.ToCell(x, g.lvl.EvalPlayer(x)); ok {
			dst.SetColor(cx, cy, '·', core.ColorPlayer)
		}
	}

	headX, headY, haveHead := 0, 0, false
	for x := range g.lvl.DomainRangeTime(g.cfg.Sampling.EnemySpacing).All() {
		if cx, cy, ok := vp.ToCell(x, g.lvl.EvalEnemy(x)); ok {
			switch dst.Get(cx, cy) {
			case '·', '●':
				dst.SetColor(cx, cy, '●', core.ColorWin) // guess already on the path
			default:
				dst.SetColor(cx, cy, '•', core.ColorEnemy)
			}
			headX, headY, haveHead = cx, cy, true
		}
	}
	if haveHead && !g.lvl.Won() {
		dst.SetColor(headX, headY, '◆', core.ColorEnemy)
	}
}

// renderEditor draws the equation template and the coefficient editor.
func (g *Game) renderEditor(dst *core.Screen, y int) {
	n := g.lvl.NumCoefs()
	template := "y = " + level.Template(n-1)
	dst.DrawTextColor(1, y, template, core.ColorHUD)

	if g.hint != "" {
		hint := "hint: " + g.hint
		x := g.screenW - len([]rune(hint)) - 1
		if x > len(template)+3 {
			dst.DrawTextColor(x, y, hint, core.ColorGray)
		}
	}

	x := 1
	for i := range n {
		label := fmt.Sprintf("%s=%6.2f", level.CoefName(i), g.lvl.PlayerCoef(i))
		text, color := " "+label+" ", core.ColorPlayer
		if i == g.selected {
			text, color = "["+label+"]", core.ColorSelected
		}
		dst.DrawTextColor(x, y+1, text, color)
		x += len(text) + 1
	}

	dst.DrawTextColor(1, y+2, helpLine, core.ColorGray)
}

// renderOverlays draws pause, level-cleared and game-over boxes.
func (g *Game) renderOverlays(dst *core.Screen) {
	var lines []string
	color := core.ColorHUD

	switch {
	case g.won:
		color = core.ColorWin
		lines = []string{
			"ALL LEVELS CLEARED",
			fmt.Sprintf("Final score: %d", g.score),
			"r: play again   b: menu",
		}
	case g.gameOver:
		color = core.ColorLose
		lines = []string{
			"OUT OF TIME",
			"The path was y = " + g.lvl.EnemyCoefs().String(),
			fmt.Sprintf("Cleared %d level(s), score %d", g.cleared, g.score),
			"r: new run   b: menu",
		}
	case g.levelCleared:
		color = core.ColorWin
		lines = []string{
			"LEVEL CLEARED",
			"y = " + g.lvl.EnemyCoefs().String(),
			fmt.Sprintf("%.1fs  +%d points", g.lvl.TimeTaken(), g.lastGain),
			"n: next level",
		}
	case g.paused:
		lines = []string{"PAUSED", "p: resume   b: menu"}
	default:
		return
	}

	drawMessageBox(dst, lines, color)
}

// drawMessageBox draws a centered, cleared box holding lines.
func drawMessageBox(dst *core.Screen, lines []string, color core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	box := core.NewRect(
		core.Clamp((dst.Width()-width)/2, 0, dst.Width()),
		core.Clamp((dst.Height()-height)/2, 0, dst.Height()),
		width, height,
	)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		c := core.ColorHUD
		if i == 0 {
			c = color
		}
		x := box.X + (width-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, c)
	}
}
