package game

const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	DefaultTitle        = "Ring Race"

	// MaxSpriteRender caps one sprite draw call; the sprite VBO is sized for it.
	MaxSpriteRender = 20000
)

// Held steering keys repeat after steerRepeatDelay, then every steerRepeatRate.
const (
	steerRepeatDelay = 0.22
	steerRepeatRate  = 0.05
)

// Camera shake on contact, in world units and seconds.
const (
	contactShake         = 1.5
	contactShakeDuration = 0.25
)
