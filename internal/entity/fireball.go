package entity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/minerun/internal/core"
)

// minFireBallPeriod is the shortest eruption cycle in seconds.
const minFireBallPeriod = 0.7

// FireBallConfig describes one fireball's eruption.
type FireBallConfig struct {
	X        float64
	Velocity float64
	LavaTop  float64 // Y of the lava surface
	Radius   float64
	Period   float64 // Seconds per eruption
	// UnderLava is how far below the lava surface the ball rests.
	UnderLava float64
	// PeakMinY and PeakMaxY bound the peak; PeakMaxY is the higher one (smaller y).
	PeakMinY, PeakMaxY float64
	Reroll             bool // New peak each cycle
}

// FireBall erupts from under the lava in a parabolic hop while drifting left.
type FireBall struct {
	Pos      core.Vec2
	Radius   float64
	Velocity float64

	restY    float64
	peakY    float64
	peakMinY float64
	peakMaxY float64
	period   float64
	phase    float64
	reroll   bool
	rng      *rand.Rand
}

// NewFireBall creates a fireball with a random starting phase and peak.
func NewFireBall(rng *rand.Rand, cfg FireBallConfig) *FireBall {
	f := &FireBall{
		Radius:   cfg.Radius,
		Velocity: cfg.Velocity,
		restY:    cfg.LavaTop + cfg.UnderLava,
		peakMinY: cfg.PeakMinY,
		peakMaxY: cfg.PeakMaxY,
		period:   math.Max(minFireBallPeriod, cfg.Period),
		reroll:   cfg.Reroll,
		rng:      rng,
	}
	if f.peakMaxY > f.peakMinY {
		f.peakMaxY, f.peakMinY = f.peakMinY, f.peakMaxY
	}
	f.phase = rng.Float64()
	f.peakY = f.rollPeak()
	f.Pos = core.Vec2{X: cfg.X, Y: f.heightAt(f.phase)}
	return f
}

func (f *FireBall) rollPeak() float64 {
	return f.peakMaxY + f.rng.Float64()*(f.peakMinY-f.peakMaxY)
}

func (f *FireBall) heightAt(t float64) float64 {
	return f.restY + (f.peakY-f.restY)*4*t*(1-t)
}

func (f *FireBall) Update(dt float64) {
	f.Pos.X -= f.Velocity * dt

	prev := f.phase
	f.phase = math.Mod(f.phase+dt/f.period, 1)
	if f.reroll && f.phase < prev {
		f.peakY = f.rollPeak()
	}
	f.Pos.Y = f.heightAt(f.phase)
}

// Phase returns the eruption progress in [0, 1).
func (f *FireBall) Phase() float64 { return f.phase }

// PeakY returns the current cycle's peak height.
func (f *FireBall) PeakY() float64 { return f.peakY }

// RestY returns the under-lava resting height.
func (f *FireBall) RestY() float64 { return f.restY }

// PeakRange returns the peak bounds, higher (smaller y) first.
func (f *FireBall) PeakRange() (float64, float64) { return f.peakMaxY, f.peakMinY }

func (f *FireBall) ShouldDespawn() bool { return f.Pos.X+f.Radius <= 0 }

func (f *FireBall) Hitbox() core.RectF {
	return core.NewRectF(f.Pos.X-f.Radius, f.Pos.Y-f.Radius, 2*f.Radius, 2*f.Radius)
}

func (f *FireBall) Lethal() bool { return true }

func (f *FireBall) Kind() Kind { return KindFireBall }
