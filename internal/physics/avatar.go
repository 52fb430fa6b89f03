package physics

import "github.com/vovakirdan/minerun/internal/core"

// DefaultAvatarRadius is the player's hitbox radius in virtual pixels.
const DefaultAvatarRadius = 35.0

// Avatar is the player's circular body.
type Avatar struct {
	Pos    core.Vec2 // Center
	Vel    core.Vec2
	Radius float64
}

// NewAvatar creates an avatar at rest centered on (x, y).
func NewAvatar(x, y, radius float64) *Avatar {
	return &Avatar{Pos: core.Vec2{X: x, Y: y}, Radius: radius}
}

// Hitbox returns the collision circle.
func (a *Avatar) Hitbox() (core.Vec2, float64) {
	return a.Pos, a.Radius
}

// Top returns the y-coordinate of the avatar's highest point.
func (a *Avatar) Top() float64 {
	return a.Pos.Y - a.Radius
}

// Bottom returns the y-coordinate of the avatar's lowest point.
func (a *Avatar) Bottom() float64 {
	return a.Pos.Y + a.Radius
}
