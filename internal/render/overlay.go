package render

import (
	"fmt"

	"ascii-dungeon/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawMenu draws a boxed list in the middle of the map area. Entries are
// labelled a, b, c... in order; footer is shown under the list.
func (r *Renderer) DrawMenu(title string, entries []string, footer string) {
	width := runewidth.StringWidth(title) + 4
	width = max(width, runewidth.StringWidth(footer)+4)
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e)+8)
	}
	height := len(entries) + 4
	x := max(0, (r.camera.ViewWidth-width)/2)
	y := max(0, (r.camera.ViewHeight-height)/2)

	frame := styleBase.Foreground(tcell.ColorWhite)
	r.drawBox(x, y, width, height, frame)
	r.drawText(x+2, y, title, styleBase.Foreground(tcell.ColorYellow))
	r.drawText(x+2, y+height-1, footer, styleBase.Foreground(tcell.ColorYellow))

	if len(entries) == 0 {
		r.drawText(x+2, y+2, "(empty)", styleBase.Foreground(tcell.ColorGray))
		return
	}
	for i, e := range entries {
		row := y + 2 + i
		label := fmt.Sprintf("(%c) ", 'a'+rune(i))
		col := r.drawText(x+2, row, label, styleBase.Foreground(tcell.ColorYellow))
		r.drawText(col, row, e, frame)
	}
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			ch := ' '
			switch {
			case (row == y || row == y+h-1) && (col == x || col == x+w-1):
				ch = '+'
			case row == y || row == y+h-1:
				ch = '─'
			case col == x || col == x+w-1:
				ch = '│'
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// DrawTargeting highlights the tiles a ranged item can hit and marks the
// cursor tile.
func (r *Renderer) DrawTargeting(cells []gamemap.Point, cursor gamemap.Point) {
	r.drawText(0, 0, "Select Target:", styleBase.Foreground(tcell.ColorYellow))
	for _, c := range cells {
		r.tint(c, tcell.ColorNavy)
	}
	r.tint(cursor, tcell.ColorAqua)
}

// tint recolors the background of the cell at world point p, keeping its glyph.
func (r *Renderer) tint(p gamemap.Point, bg tcell.Color) {
	sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
	if !onScreen {
		return
	}
	mainc, combc, style, _ := r.screen.GetContent(sx, sy)
	r.screen.SetContent(sx, sy, mainc, combc, style.Background(bg))
}
