// Package progression tracks run-wide time, coins and hazard intensity.
package progression

import "math"

// Curve shapes hazard intensity over a run.
type Curve struct {
	RampSeconds   float64 // Time constant of the saturating curve
	CoinsPerBoost float64 // Coin value worth a full unit of boost
	MaxCoinBoost  float64
}

// DefaultCurve returns the standard intensity curve.
func DefaultCurve() Curve {
	return Curve{RampSeconds: 55, CoinsPerBoost: 120, MaxCoinBoost: 0.6}
}

// Progression accumulates state over one run.
type Progression struct {
	curve     Curve
	timeAlive float64
	coins     int
	intensity float64
}

// New creates a zeroed progression on the default curve.
func New() *Progression {
	return NewWithCurve(DefaultCurve())
}

// NewWithCurve creates a zeroed progression. Non-positive curve fields
// fall back to the defaults.
func NewWithCurve(c Curve) *Progression {
	def := DefaultCurve()
	if c.RampSeconds <= 0 {
		c.RampSeconds = def.RampSeconds
	}
	if c.CoinsPerBoost <= 0 {
		c.CoinsPerBoost = def.CoinsPerBoost
	}
	if c.MaxCoinBoost < 0 {
		c.MaxCoinBoost = def.MaxCoinBoost
	}
	return &Progression{curve: c}
}

// Curve returns the intensity curve in use.
func (p *Progression) Curve() Curve { return p.curve }

// Reset zeroes everything for a new run.
func (p *Progression) Reset() {
	*p = Progression{curve: p.curve}
}

// AddCoins records collected coin value.
func (p *Progression) AddCoins(n int) {
	p.coins += n
}

// Update advances time and recomputes hazard intensity. Intensity rises
// along a saturating curve, slightly faster with more coins.
func (p *Progression) Update(dt float64) {
	p.timeAlive += dt

	boost := math.Min(p.curve.MaxCoinBoost, float64(p.coins)/p.curve.CoinsPerBoost)
	t := (p.timeAlive / p.curve.RampSeconds) * (1 + boost)
	p.intensity = math.Max(0, math.Min(1, 1-math.Exp(-t)))
}

// HazardIntensity returns the current intensity in [0, 1].
func (p *Progression) HazardIntensity() float64 { return p.intensity }

// TimeAlive returns seconds survived.
func (p *Progression) TimeAlive() float64 { return p.timeAlive }

// CoinsCollected returns the total collected coin value.
func (p *Progression) CoinsCollected() int { return p.coins }
