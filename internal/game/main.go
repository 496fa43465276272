// Package game is the desktop frontend: a GLFW window with an OpenGL
// renderer and oto sound, driving a race loop.
package game

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"ringrace/internal/config"
	"ringrace/internal/race"
	"ringrace/internal/view"
)

type Options struct {
	Window config.WindowConfig
	Audio  config.AudioConfig
	Seed   uint64
}

// RunDesktop opens the window and runs the loop until the window closes,
// Escape is pressed or ctx ends. It must be called from the main goroutine.
func RunDesktop(ctx context.Context, loop *race.Loop, opts Options, log zerolog.Logger) error {
	runtime.LockOSThread()
	log = log.With().Str("component", "desktop").Logger()

	window, err := initWindow(opts.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if opts.Audio.Enabled {
		audio, err := NewAudio(opts.Audio.Volume, log)
		if err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		} else {
			audio.Subscribe(loop.Bus)
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	r, g, b := view.Palette.Grass.Floats()
	gl.ClearColor(r, g, b, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	rend.InitVehicleTextures(opts.Seed ^ 0xC0FFEE)
	rend.trackBuf = view.TrackSprites(loop.State().Track, nil)

	var cam view.Camera
	flashUntil := 0.0
	loop.Bus.Subscribe(race.EventCollision, func(race.Event) {
		flashUntil = glfw.GetTime() + contactShakeDuration
		if loop.State().View == race.ViewClose {
			cam.AddShake(contactShake, contactShakeDuration)
		}
	})

	title := opts.Window.Title
	if title == "" {
		title = DefaultTitle
	}
	ui := hud{base: title}
	input := NewInput()

	log.Info().Uint64("seed", opts.Seed).Msg("desktop frontend started")
	start := glfw.GetTime()
	last := start
	for !window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			log.Info().Msg("quit requested")
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		input.Poll(window, &loop.Latch, dt)
		f := loop.Advance(ctx, time.Duration((now-start)*float64(time.Second)))

		cam.Follow(f, dt, fbW, fbH)
		cam.UpdateShake(dt, opts.Seed)
		shaken := cam.Shaken()

		rend.BeginFrame(fbW, fbH)
		rend.DrawSprites(rend.trackBuf, shaken, fbW, fbH)
		rend.glowBuf = view.PickupGlow(f, now, rend.glowBuf)
		rend.DrawGlowSprites(rend.glowBuf, shaken, fbW, fbH)
		rend.shadowBuf = view.ShadowSprites(f, rend.shadowBuf)
		rend.DrawShadowSprites(rend.shadowBuf, shaken, fbW, fbH)
		rend.quads = view.VehicleQuads(f, rend.quads)
		rend.DrawVehicles(rend.quads, now < flashUntil, shaken, fbW, fbH)
		ui.render(rend, window, f, shaken, fbW, fbH)

		window.SwapBuffers()
	}
	return nil
}
