package progression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartsAtZero(t *testing.T) {
	p := New()
	assert.Zero(t, p.HazardIntensity())
	assert.Zero(t, p.TimeAlive())
	assert.Zero(t, p.CoinsCollected())
}

func TestIntensityCurve(t *testing.T) {
	p := New()
	p.Update(55)
	assert.InDelta(t, 1-math.Exp(-1), p.HazardIntensity(), 1e-12)

	p = New()
	p.AddCoins(60)
	p.Update(55)
	assert.InDelta(t, 1-math.Exp(-1.5), p.HazardIntensity(), 1e-12)
}

func TestCoinBoostCaps(t *testing.T) {
	p := New()
	p.AddCoins(10000)
	p.Update(55)
	assert.InDelta(t, 1-math.Exp(-1.6), p.HazardIntensity(), 1e-12)
}

func TestIntensityMonotoneAndBounded(t *testing.T) {
	p := New()
	prev := 0.0
	for i := 0; i < 60*600; i++ {
		if i%97 == 0 {
			p.AddCoins(1)
		}
		p.Update(1.0 / 60)
		v := p.HazardIntensity()
		assert.GreaterOrEqual(t, v, prev)
		assert.LessOrEqual(t, v, 1.0)
		prev = v
	}
	assert.Greater(t, prev, 0.99)
}

func TestReset(t *testing.T) {
	p := New()
	p.AddCoins(5)
	p.Update(10)
	p.Reset()

	assert.Zero(t, p.HazardIntensity())
	assert.Zero(t, p.TimeAlive())
	assert.Zero(t, p.CoinsCollected())
}

func TestCustomCurve(t *testing.T) {
	p := NewWithCurve(Curve{RampSeconds: 10, CoinsPerBoost: 10, MaxCoinBoost: 0})
	p.AddCoins(50)
	p.Update(10)
	assert.InDelta(t, 1-math.Exp(-1), p.HazardIntensity(), 1e-12)

	p.Reset()
	assert.Equal(t, 10.0, p.Curve().RampSeconds)
	assert.Zero(t, p.TimeAlive())
}

func TestCurveFallsBackToDefaults(t *testing.T) {
	p := NewWithCurve(Curve{MaxCoinBoost: -1})
	assert.Equal(t, DefaultCurve(), p.Curve())
}
