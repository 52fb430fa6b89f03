// Package physics integrates the avatar's vertical motion and resolves its
// contact with world rectangles.
package physics

import (
	"math"
	"time"

	"github.com/vovakirdan/minerun/internal/core"
)

// Default tuning, in virtual pixels and seconds.
const (
	DefaultWidth           = 1280.0
	DefaultHeight          = 720.0
	DefaultGravity         = 9.81
	DefaultGravityScale    = 95.0
	DefaultVelocityScale   = 2.0
	DefaultJumpImpulse     = -355.0
	DefaultMaxDt           = 0.05
	DefaultStepUpTolerance = 16.0
)

// Config holds the engine's world bounds and feel constants.
type Config struct {
	Width, Height   float64 // World bounds; the floor is y == Height, the ceiling y == 0
	Gravity         float64
	GravityScale    float64 // velocity.y += Gravity * dt * GravityScale
	VelocityScale   float64 // position.y += velocity.y * dt * VelocityScale
	JumpImpulse     float64 // velocity.y set on Jump (negative = up)
	MaxDt           float64 // Upper bound for a single time step
	StepUpTolerance float64 // Vertical penetration always resolved vertically
	RoundOnClamp    bool    // Round Y when a boundary snap happens
}

// DefaultConfig returns the tuned engine configuration.
func DefaultConfig() Config {
	return Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		Gravity:         DefaultGravity,
		GravityScale:    DefaultGravityScale,
		VelocityScale:   DefaultVelocityScale,
		JumpImpulse:     DefaultJumpImpulse,
		MaxDt:           DefaultMaxDt,
		StepUpTolerance: DefaultStepUpTolerance,
		RoundOnClamp:    true,
	}
}

// Hitboxer is anything with a rectangular hitbox.
type Hitboxer interface {
	Hitbox() core.RectF
}

// Engine advances simulation time and applies avatar physics.
type Engine struct {
	cfg   Config
	clock Clock
	last  time.Time
	dt    float64
}

// New creates an engine reading time from clock.
// A nil clock means the system monotonic clock.
func New(cfg Config, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	e := &Engine{cfg: cfg, clock: clock}
	e.ResetClock()
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// ResetClock restarts time measurement so the next step does not spike.
func (e *Engine) ResetClock() {
	e.last = e.clock.Now()
	e.dt = 0
}

// UpdateDt advances the internal delta-time from the clock.
func (e *Engine) UpdateDt() {
	now := e.clock.Now()
	e.SetDt(now.Sub(e.last).Seconds())
	e.last = now
}

// SetDt sets the current step directly, clamped to [0, MaxDt].
func (e *Engine) SetDt(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if e.cfg.MaxDt > 0 && dt > e.cfg.MaxDt {
		dt = e.cfg.MaxDt
	}
	e.dt = dt
}

// Dt returns the current time step in seconds.
func (e *Engine) Dt() float64 {
	return e.dt
}

// ApplyGravity integrates vertical motion unless the avatar rests on the floor.
func (e *Engine) ApplyGravity(a *Avatar) {
	resting := a.Pos.Y == e.cfg.Height-a.Radius && a.Vel.Y >= 0
	if !resting {
		a.Vel.Y += e.cfg.Gravity * e.dt * e.cfg.GravityScale
		a.Pos.Y += a.Vel.Y * e.dt * e.cfg.VelocityScale
	}
	e.ClampAvatar(a)
}

// ClampAvatar keeps the avatar between ceiling and floor.
func (e *Engine) ClampAvatar(a *Avatar) {
	snapped := false

	if a.Pos.Y > e.cfg.Height-a.Radius {
		a.Pos.Y = e.cfg.Height - a.Radius
		if a.Vel.Y > 0 {
			a.Vel.Y = 0
		}
		snapped = true
	}
	if a.Pos.Y < a.Radius {
		a.Pos.Y = a.Radius
		if a.Vel.Y < 0 {
			a.Vel.Y = 0
		}
		snapped = true
	}

	if snapped && e.cfg.RoundOnClamp {
		a.Pos.Y = math.Round(a.Pos.Y)
	}
}

// Jump applies the lift impulse.
func (e *Engine) Jump(a *Avatar) {
	a.Vel.Y = e.cfg.JumpImpulse
	e.ClampAvatar(a)
}

// CircleRectOverlap is the strict closest-point circle/rect test.
func (e *Engine) CircleRectOverlap(center core.Vec2, radius float64, rect core.RectF) bool {
	return core.CircleRectOverlap(center, radius, rect)
}

// CheckCollision reports whether the avatar's circle overlaps obstacle's hitbox.
func (e *Engine) CheckCollision(a *Avatar, obstacle Hitboxer) bool {
	center, radius := a.Hitbox()
	return core.CircleRectOverlap(center, radius, obstacle.Hitbox())
}

// ResolveSolidCircleRect pushes the avatar out of a walkable solid.
// Call it only for non-lethal rectangles.
func (e *Engine) ResolveSolidCircleRect(a *Avatar, rect core.RectF) {
	center, r := a.Hitbox()
	closest := rect.ClosestPoint(center)
	delta := center.Sub(closest)
	if delta.LenSq() >= r*r {
		return
	}

	// Center inside the rect: push vertically out of the nearer half.
	if delta.X == 0 && delta.Y == 0 {
		if center.Y < rect.Center().Y {
			e.pushUp(a, rect)
		} else {
			e.pushDown(a, rect)
		}
		return
	}

	up := center.Y + r - rect.Top()
	down := rect.Bottom() - (center.Y - r)
	left := center.X + r - rect.Left()
	right := rect.Right() - (center.X - r)

	vertical := math.Min(up, down)
	horizontal := math.Min(left, right)

	if vertical <= horizontal || vertical <= e.cfg.StepUpTolerance {
		if up <= down {
			e.pushUp(a, rect)
		} else {
			e.pushDown(a, rect)
		}
		return
	}

	if left <= right {
		a.Pos.X = rect.Left() - r
	} else {
		a.Pos.X = rect.Right() + r
	}
}

func (e *Engine) pushUp(a *Avatar, rect core.RectF) {
	a.Pos.Y = rect.Top() - a.Radius
	if a.Vel.Y > 0 {
		a.Vel.Y = 0
	}
}

func (e *Engine) pushDown(a *Avatar, rect core.RectF) {
	a.Pos.Y = rect.Bottom() + a.Radius
	if a.Vel.Y < 0 {
		a.Vel.Y = 0
	}
}
