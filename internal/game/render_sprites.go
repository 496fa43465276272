package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"ringrace/internal/view"
)

func (r *Renderer) streamSprites(buf []float32) int32 {
	count := len(buf) / view.SpriteStride
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferData(gl.ARRAY_BUFFER, count*view.SpriteStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	return int32(count)
}

// DrawSprites renders square point sprites with alpha blending.
// buf format: [x, y, size, r, g, b, a, rotation] * N.
func (r *Renderer) DrawSprites(buf []float32, cam view.Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.spriteProg)
	gl.Uniform2f(r.spUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.POINTS, 0, r.streamSprites(buf))
	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and radial
// falloff. RGB values should be pre-multiplied by the desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam view.Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.glowProg)
	gl.Uniform2f(r.glowUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.glowUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DrawArrays(gl.POINTS, 0, r.streamSprites(buf))
	gl.Disable(gl.BLEND)
}

// DrawShadowSprites renders soft round blobs under vehicles.
func (r *Renderer) DrawShadowSprites(buf []float32, cam view.Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.shadowProg)
	gl.Uniform2f(r.shadowUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.shadowUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.shadowUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.POINTS, 0, r.streamSprites(buf))
	gl.Disable(gl.BLEND)
}
