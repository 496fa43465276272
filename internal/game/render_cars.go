package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"ringrace/internal/race"
	"ringrace/internal/view"
)

// Vehicle textures are drawn front-up: row 0 is the nose.
type vehicleTextures struct {
	player   uint32
	cars     []uint32
	truck    uint32
	fuelCan  uint32
	uploaded []uint32
}

type texImage struct {
	w, h int
	pix  []uint8
}

func newTexImage(w, h int) texImage {
	return texImage{w: w, h: h, pix: make([]uint8, w*h*4)}
}

func (t texImage) set(x, y int, col view.RGB) {
	i := (y*t.w + x) * 4
	t.pix[i+0] = col.R
	t.pix[i+1] = col.G
	t.pix[i+2] = col.B
	t.pix[i+3] = 255
}

func (t texImage) row(y int, col view.RGB) {
	for x := 0; x < t.w; x++ {
		t.set(x, y, col)
	}
}

// bands paints consecutive full-width rows; leftover rows get fill.
func (t texImage) bands(heights []int, cols []view.RGB, fill view.RGB) {
	y := 0
	for bi := 0; bi < len(heights) && y < t.h; bi++ {
		for n := 0; n < heights[bi] && y < t.h; n++ {
			t.row(y, cols[bi])
			y++
		}
	}
	for ; y < t.h; y++ {
		t.row(y, fill)
	}
}

func (vt *vehicleTextures) upload(img texImage) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.w), int32(img.h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.pix))
	vt.uploaded = append(vt.uploaded, tex)
	return tex
}

func (vt *vehicleTextures) destroy() {
	if len(vt.uploaded) > 0 {
		gl.DeleteTextures(int32(len(vt.uploaded)), &vt.uploaded[0])
	}
	vt.uploaded = nil
}

func playerImage() texImage {
	img := newTexImage(8, 16)
	body := view.Palette.Player
	window := view.RGB{R: 40, G: 50, B: 70}
	img.bands(
		[]int{1, 4, 3, 4, 3},
		[]view.RGB{body.Mul(200), body, window, body.Mul(220), window},
		body.Mul(200),
	)
	// Racing stripe.
	for y := 0; y < img.h; y++ {
		img.set(3, y, view.Palette.Line)
		img.set(4, y, view.Palette.Line)
	}
	return img
}

func carImage(seed uint64) texImage {
	img := newTexImage(8, 16)
	r := race.NewRand(seed)
	base := view.Palette.Car
	body := base.Add(r.Intn(81)-40, r.Intn(81)-40, r.Intn(81)-40)
	window := view.RGB{R: 130, G: 135, B: 140}
	roof := body.Mul(180)

	archetypes := [][]int{
		{4, 4, 4, 4}, {4, 4, 2, 6}, {2, 4, 6, 4},
		{2, 2, 8, 4}, {4, 2, 6, 4}, {2, 6, 4, 4},
	}
	img.bands(archetypes[r.Intn(len(archetypes))],
		[]view.RGB{body, window, roof, body}, body)
	return img
}

// truckImage is a cab with a long trailer behind a coupling gap.
func truckImage() texImage {
	img := newTexImage(8, 24)
	cab := view.Palette.Truck
	trailer := view.RGB{R: 200, G: 200, B: 195}
	img.bands(
		[]int{1, 2, 2, 1},
		[]view.RGB{cab.Mul(200), cab, view.RGB{R: 40, G: 50, B: 70}, view.RGB{R: 20, G: 20, B: 20}},
		trailer,
	)
	for y := 6; y < img.h; y++ {
		img.set(0, y, trailer.Mul(170))
		img.set(img.w-1, y, trailer.Mul(170))
	}
	return img
}

func fuelCanImage() texImage {
	img := newTexImage(8, 8)
	can := view.Palette.Fuel
	img.bands([]int{2}, []view.RGB{can.Mul(150)}, can)
	img.set(5, 0, view.RGB{R: 20, G: 20, B: 20})
	img.set(6, 0, view.RGB{R: 20, G: 20, B: 20})
	for y := 3; y < 7; y++ {
		img.set(1+(y-3), y, can.Add(60, 60, 60))
		img.set(6-(y-3), y, can.Add(60, 60, 60))
	}
	return img
}

// InitVehicleTextures creates the textures for every entity kind.
func (r *Renderer) InitVehicleTextures(seed uint64) {
	vt := &r.vehicleTex
	vt.player = vt.upload(playerImage())
	rng := race.NewRand(seed)
	vt.cars = make([]uint32, 8)
	for i := range vt.cars {
		vt.cars[i] = vt.upload(carImage(rng.NextU64()))
	}
	vt.truck = vt.upload(truckImage())
	vt.fuelCan = vt.upload(fuelCanImage())
}

func (vt *vehicleTextures) forQuad(q view.Quad) uint32 {
	switch q.Kind {
	case race.KindPlayer:
		return vt.player
	case race.KindTruck:
		return vt.truck
	case race.KindFuelCan:
		return vt.fuelCan
	}
	if len(vt.cars) == 0 {
		return vt.player
	}
	return vt.cars[q.Index%len(vt.cars)]
}

// DrawVehicles renders each quad as a rotated textured rectangle. The player
// is tinted red while flashing.
func (r *Renderer) DrawVehicles(quads []view.Quad, flash bool, cam view.Camera, fbW, fbH int) {
	if len(quads) == 0 {
		return
	}

	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	for _, q := range quads {
		ox, oy := q.Origin()
		gl.Uniform2f(r.uSize, float32(q.W), float32(q.H))
		gl.Uniform2f(r.uOrigin, float32(ox), float32(oy))
		gl.Uniform1f(r.uRotation, float32(q.Rotation))
		if flash && q.Kind == race.KindPlayer {
			gl.Uniform3f(r.uTint, 1.0, 0.45, 0.45)
		} else {
			gl.Uniform3f(r.uTint, 1, 1, 1)
		}
		gl.BindTexture(gl.TEXTURE_2D, r.vehicleTex.forQuad(q))
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.Disable(gl.BLEND)
	gl.Uniform3f(r.uTint, 1, 1, 1)
}
