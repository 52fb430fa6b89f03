// Package spawner generates the obstacles and coins of each section
// archetype. Spawners are driven by a shared seeded random source so a run
// can be reproduced from its seed.
package spawner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/minerun/internal/entity"
)

// Spawner is the contract shared by every section archetype.
type Spawner interface {
	// SetDifficultyTier derives speeds, rates and sizes from tier.
	SetDifficultyTier(tier int)
	// Update advances the spawn timer.
	Update(dt float64)
	// ShouldSpawn reports whether the spawn interval has elapsed.
	ShouldSpawn() bool
	// Spawn resets the timer and produces this interval's entities.
	Spawn(tier int) ([]entity.Obstacle, []*entity.Coin)
	// Reset clears timers and pattern state.
	Reset()
	// SpawnRate returns the current spawn interval in seconds.
	SpawnRate() float64
}

// WorldSpeedSetter is implemented by spawners that scroll at the world speed.
type WorldSpeedSetter interface {
	SetWorldSpeed(speed float64)
}

// HazardIntensitySetter is implemented by spawners with secondary hazards.
type HazardIntensitySetter interface {
	SetHazardIntensity(intensity float64)
}

// SectionContext tells a spawner where its section starts and ends.
type SectionContext struct {
	EntryCenter float64 // Opening center to meet on the first spawn
	ExitCenter  float64 // Opening center to hand over on the last spawn
	HasEntry    bool
	HasExit     bool
	Remaining   float64 // Seconds left in the section
}

// SectionContextSetter is implemented by spawners that align their openings
// across section boundaries.
type SectionContextSetter interface {
	SetSectionContext(ctx SectionContext)
}

// PassageReporter is implemented by spawners that know where the free
// passage currently is.
type PassageReporter interface {
	PassageCenter() (float64, bool)
}

// triangular samples a triangular distribution on [lo, hi] peaking at mode.
func triangular(rng *rand.Rand, lo, hi, mode float64) float64 {
	if hi == lo {
		return lo
	}
	u := rng.Float64()
	c := (mode - lo) / (hi - lo)
	if u > c {
		u = 1 - u
		c = 1 - c
		lo, hi = hi, lo
	}
	return lo + (hi-lo)*math.Sqrt(u*c)
}

// randInt returns an integer in [lo, hi], inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampTier(tier int) int {
	if tier < 0 {
		return 0
	}
	return tier
}
