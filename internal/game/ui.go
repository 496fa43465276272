package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"ringrace/internal/race"
	"ringrace/internal/view"
)

// hud draws the bars in-scene and mirrors the text readout into the window
// title, only touching the title when it changes.
type hud struct {
	base  string
	title string
}

func (h *hud) render(r *Renderer, window *glfw.Window, f race.Frame, cam view.Camera, fbW, fbH int) {
	if f.HUD.Phase == race.PhaseRunning {
		r.hudBuf = view.HUDSprites(f.HUD, cam, fbW, fbH, r.hudBuf)
		r.DrawSprites(r.hudBuf, cam, fbW, fbH)
	}

	title := view.Title(h.base, f.HUD, f.View)
	if title != h.title {
		window.SetTitle(title)
		h.title = title
	}
}
