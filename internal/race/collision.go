package race

// RectF is an axis-aligned rectangle in world space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

// Collisions lists the indices of traffic vehicles and pickups overlapping the
// player during one tick.
type Collisions struct {
	Traffic []int
	Pickups []int
}

// DetectCollisions tests the player box against every traffic and pickup box.
// Each check is independent, so the order of the inputs does not change the
// outcome, only the order of the returned indices.
func DetectCollisions(player Transform, traffic, pickups []Transform) Collisions {
	var c Collisions
	pb := player.Box()
	for i, t := range traffic {
		if pb.Intersects(t.Box()) {
			c.Traffic = append(c.Traffic, i)
		}
	}
	for i, p := range pickups {
		if pb.Intersects(p.Box()) {
			c.Pickups = append(c.Pickups, i)
		}
	}
	return c
}

// HealthDelta is the total health change for the tick.
func (c Collisions) HealthDelta(penalty float64) float64 {
	return -penalty * float64(len(c.Traffic))
}
