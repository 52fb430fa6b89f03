package entity

import "github.com/vovakirdan/minerun/internal/core"

// Cart tuning.
const (
	CartWidth  = 70.0
	CartHeight = 36.0

	CartGravity        = 1800.0 // px/s²
	CartClimbThreshold = 6.0    // Largest floor rise a cart can take
	CartLookahead      = 12.0   // Distance ahead of the nose that is probed
)

// MineCart is a lethal cart that rides the tunnel floor toward the player.
type MineCart struct {
	Rect     core.RectF
	Velocity float64
	VelY     float64

	floor   FloorSampler
	crashed bool
}

// NewMineCart creates a cart; attach a floor to make it ride the terrain.
func NewMineCart(rect core.RectF, velocity float64) *MineCart {
	return &MineCart{Rect: rect, Velocity: velocity}
}

// AttachFloor couples the cart to a floor height field.
func (c *MineCart) AttachFloor(f FloorSampler) { c.floor = f }

// GroundRiding reports whether a floor is attached.
func (c *MineCart) GroundRiding() bool { return c.floor != nil }

// Crashed reports whether the cart hit a rise it could not climb.
func (c *MineCart) Crashed() bool { return c.crashed }

func (c *MineCart) Update(dt float64) {
	c.Rect.X -= c.Velocity * dt
	if c.floor == nil || c.crashed {
		return
	}

	c.VelY += CartGravity * dt
	c.Rect.Y += c.VelY * dt

	center := c.Rect.Center()
	floorY := c.floor.FloorYAt(center.X)
	if c.Rect.Bottom() >= floorY {
		c.Rect.Y = floorY - c.Rect.H
		c.VelY = 0
	}

	// Carts travel left, so the floor ahead is left of the nose.
	ahead := c.floor.FloorYAt(c.Rect.Left() - CartLookahead)
	if floorY-ahead > CartClimbThreshold {
		c.crashed = true
	}
}

func (c *MineCart) ShouldDespawn() bool { return c.crashed || c.Rect.Right() <= 0 }

func (c *MineCart) Hitbox() core.RectF { return c.Rect }

func (c *MineCart) Lethal() bool { return true }

func (c *MineCart) Kind() Kind { return KindCart }
