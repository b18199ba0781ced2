package render

import (
	"fmt"

	"ascii-dungeon/internal/component"
	"ascii-dungeon/internal/ecs"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status line and the newest log lines in the rows below
// the map. Lines wider than the screen are truncated.
func (r *Renderer) DrawHUD(w *ecs.World, playerID ecs.EntityID, lines []string) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	if stats, ok := w.Get(playerID, component.CCombatStats).(component.CombatStats); ok {
		label := fmt.Sprintf(" HP: %d / %d ", stats.HP, stats.MaxHP)
		col := r.drawText(0, hudY+1, label, styleBase.Foreground(tcell.ColorYellow))
		r.drawBar(col, hudY+1, screenW-col-1, stats.HP, stats.MaxHP)
	}

	room := HUDRows - 2
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for i, msg := range lines {
		msg = runewidth.Truncate(msg, screenW, "…")
		r.drawText(0, hudY+2+i, msg, styleBase.Foreground(tcell.ColorWhite))
	}
}

// drawBar draws a width-cell bar filled in proportion to cur/maxVal.
func (r *Renderer) drawBar(x, y, width, cur, maxVal int) {
	if width <= 0 || maxVal <= 0 {
		return
	}
	filled := max(0, min(width, cur*width/maxVal))
	full := styleBase.Foreground(tcell.ColorRed)
	empty := styleBase.Foreground(tcell.ColorMaroon)
	for i := range width {
		if i < filled {
			r.screen.SetContent(x+i, y, '█', nil, full)
		} else {
			r.screen.SetContent(x+i, y, '░', nil, empty)
		}
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}
