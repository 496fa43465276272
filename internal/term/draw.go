package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"ringrace/internal/race"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

var (
	styleRoad    = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	styleLine    = styleRoad.Foreground(tcell.ColorWhite)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkSlateGray)
	styleCar     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorDarkSlateGray)
	styleTruck   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorDarkSlateGray)
	styleFuel    = tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorDarkSlateGray).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// viewport maps world coordinates onto the cell grid.
type viewport struct {
	cx, cy float64 // screen centre in cells
	wx, wy float64 // world point at the screen centre
	scale  float64 // cells per world unit, horizontally
}

func newViewport(w, h int, f race.Frame, shakeX int) viewport {
	// Leave two rows for the HUD.
	avail := math.Min(float64(w)/cellAspect, float64(h-2))
	base := avail / (2 * f.Track.OuterRadius() * 1.05)
	vp := viewport{
		cx:    float64(w)/2 + float64(shakeX),
		cy:    float64(h+2) / 2,
		scale: base * cellAspect * f.View.Zoom(),
	}
	if f.View != race.ViewOverview {
		vp.wx, vp.wy = f.Player.X, f.Player.Y
	}
	return vp
}

func (v viewport) toCell(x, y float64) (int, int) {
	sx := v.cx + (x-v.wx)*v.scale
	sy := v.cy - (y-v.wy)*v.scale/cellAspect
	return int(math.Floor(sx)), int(math.Floor(sy))
}

func (v viewport) toWorld(col, row int) (float64, float64) {
	x := (float64(col)+0.5-v.cx)/v.scale + v.wx
	y := -(float64(row)+0.5-v.cy)*cellAspect/v.scale + v.wy
	return x, y
}

// Draw renders one frame: ring, pickups, traffic, player, HUD and banners.
func Draw(s tcell.Screen, f race.Frame, shakeX int) {
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 2 {
		s.Show()
		return
	}
	vp := newViewport(w, h, f, shakeX)

	drawTrack(s, vp, f.Track, w, h)
	for _, p := range f.Pickups {
		drawBox(s, vp, p, '+', styleFuel, w, h)
	}
	for _, t := range f.Traffic {
		switch t.Kind {
		case race.KindCar:
			drawBox(s, vp, t, '▒', styleCar, w, h)
		case race.KindTruck:
			drawBox(s, vp, t, '█', styleTruck, w, h)
		}
	}
	drawBox(s, vp, f.Player, '▓', stylePlayer, w, h)

	drawHUD(s, f.HUD, f.View, w)
	drawBanner(s, f.HUD, w, h)
	s.Show()
}

func drawTrack(s tcell.Screen, vp viewport, tr race.Track, w, h int) {
	// Half a cell of tolerance on the centre line.
	lineTol := 0.5 / vp.scale * cellAspect
	for row := 2; row < h; row++ {
		for col := 0; col < w; col++ {
			x, y := vp.toWorld(col, row)
			r := math.Hypot(x, y)
			if r < tr.InnerRadius() || r > tr.OuterRadius() {
				continue
			}
			if math.Abs(r-tr.CenterRadius) < lineTol && (col/2)%2 == 0 {
				s.SetContent(col, row, '·', nil, styleLine)
				continue
			}
			s.SetContent(col, row, ' ', nil, styleRoad)
		}
	}
}

func drawBox(s tcell.Screen, vp viewport, t race.Transform, ch rune, st tcell.Style, w, h int) {
	x0, y1 := vp.toCell(t.X-t.HalfX, t.Y-t.HalfY)
	x1, y0 := vp.toCell(t.X+t.HalfX, t.Y+t.HalfY)
	for row := y0; row <= y1; row++ {
		if row < 2 || row >= h {
			continue
		}
		for col := x0; col <= x1; col++ {
			if col < 0 || col >= w {
				continue
			}
			s.SetContent(col, row, ch, nil, st)
		}
	}
}

func drawText(s tcell.Screen, col, row int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(col, row, r, nil, st)
		col++
	}
}

// StatusLine formats the HUD values for the top row.
func StatusLine(hud race.HUD, view race.View) string {
	return fmt.Sprintf("HEALTH %5.1f  FUEL %5.1f  LAPS %d  TIME %6.1fs  DIST %4.0f  VIEW %d",
		hud.Health, hud.Fuel, hud.Score, hud.Elapsed, hud.DistanceRemaining, int(view))
}

func drawHUD(s tcell.Screen, hud race.HUD, view race.View, w int) {
	drawText(s, 1, 0, StatusLine(hud, view), styleHUD)

	// Fuel gauge on the second row.
	barW := w / 3
	if barW < 4 {
		return
	}
	filled := int(math.Round(hud.FuelFraction * float64(barW)))
	st := styleFuel
	if hud.FuelFraction < 0.2 {
		st = styleWarning
	}
	for i := 0; i < barW; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		s.SetContent(1+i, 1, ch, nil, st)
	}
}

// Banner returns the centred message for the current phase, if any.
func Banner(hud race.HUD) string {
	switch hud.Phase {
	case race.PhaseIntro:
		return " RING RACE  press SPACE or ENTER to start "
	case race.PhaseRunning:
		if !hud.Active {
			return " hold W or UP to drive "
		}
	case race.PhaseGameOver:
		r := hud.Result
		return fmt.Sprintf(" GAME OVER  laps %d  rank %d of %d  press R to restart ", r.Score, r.Rank, r.Field)
	}
	return ""
}

func drawBanner(s tcell.Screen, hud race.HUD, w, h int) {
	msg := Banner(hud)
	if msg == "" {
		return
	}
	col := (w - len([]rune(msg))) / 2
	if col < 0 {
		col = 0
	}
	drawText(s, col, h/2, msg, styleBanner)
}
