package render

import (
	"fmt"

	"backrooms-crawl/internal/component"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the one-line summary shown above the message log.
type Status struct {
	Level    string
	HP       component.Health
	Turn     int
	Hostiles int
}

// DrawHUD renders the status bar and the last three messages, then shows
// the frame.
func (r *Renderer) DrawHUD(s Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	hpStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if s.HP.Max > 0 && s.HP.Current <= s.HP.Max/3 {
		hpStyle = hpStyle.Foreground(tcell.ColorRed)
	}
	status := fmt.Sprintf("HP: %.0f/%.0f  Turn: %d  Hostiles: %d  %s", s.HP.Current, s.HP.Max, s.Turn, s.Hostiles, s.Level)
	r.drawText(0, hudY+1, status, hpStyle)

	start := max(len(messages)-3, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// DrawCentered writes lines in the middle of an otherwise blank screen.
func (r *Renderer) DrawCentered(lines []string, style tcell.Style) {
	r.screen.Clear()
	w, h := r.screen.Size()
	y := (h - len(lines)) / 2
	for i, line := range lines {
		x := max((w-runewidth.StringWidth(line))/2, 0)
		r.drawText(x, y+i, line, style)
	}
	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
