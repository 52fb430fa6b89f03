package entity

import "github.com/vovakirdan/minerun/internal/core"

// Coin is a collectible that scrolls with the world.
type Coin struct {
	Pos       core.Vec2
	Radius    float64
	Value     int
	Velocity  float64
	Collected bool
}

// NewCoin creates an uncollected coin.
func NewCoin(pos core.Vec2, radius float64, value int, velocity float64) *Coin {
	return &Coin{Pos: pos, Radius: radius, Value: value, Velocity: velocity}
}

// Update moves the coin left.
func (c *Coin) Update(dt float64) {
	c.Pos.X -= c.Velocity * dt
}

// ShouldDespawn reports whether the coin left the screen or was taken.
func (c *Coin) ShouldDespawn() bool {
	return c.Collected || c.Pos.X+c.Radius <= 0
}

// Hitbox returns the coin's circle.
func (c *Coin) Hitbox() (core.Vec2, float64) {
	return c.Pos, c.Radius
}

// Touches reports strict overlap with another circle.
func (c *Coin) Touches(center core.Vec2, radius float64) bool {
	return core.CircleCircleOverlap(c.Pos, c.Radius, center, radius)
}
