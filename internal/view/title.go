package view

import (
	"fmt"

	"ringrace/internal/race"
)

// Title renders the HUD into a window title; the desktop build has no font.
func Title(base string, hud race.HUD, v race.View) string {
	switch hud.Phase {
	case race.PhaseIntro:
		return fmt.Sprintf("%s | press SPACE or ENTER to start", base)
	case race.PhaseGameOver:
		r := hud.Result
		return fmt.Sprintf("%s | GAME OVER | laps %d | rank %d of %d | %.1fs | press R to restart",
			base, r.Score, r.Rank, r.Field, r.Elapsed)
	}
	if !hud.Active {
		return fmt.Sprintf("%s | hold W or UP to drive", base)
	}
	return fmt.Sprintf("%s | laps %d | health %.0f | fuel %.0f | %.1fs | distance %.0f | view %d",
		base, hud.Score, hud.Health, hud.Fuel, hud.Elapsed, hud.DistanceRemaining, int(v))
}
