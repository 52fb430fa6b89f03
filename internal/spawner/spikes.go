package spawner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/entity"
)

// Spikes tuning.
const (
	DefaultLavaHeight = 34.0

	spikesBaseVelocity = 500.0
	spikeSpawnOffset   = 20.0
	largeSpikeRatio    = 0.78
	spikeSmallChance   = 0.10
	maxFireBallChance  = 0.6
	// intensityFireBallBoost is added to the fireball chance at full hazard intensity.
	intensityFireBallBoost = 0.12
)

var spikePatterns = [][]entity.Orientation{
	{entity.OrientTop, entity.OrientBottom},
	{entity.OrientBottom, entity.OrientTop, entity.OrientBottom, entity.OrientTop},
	{entity.OrientTop, entity.OrientBottom, entity.OrientTop},
	{entity.OrientBottom, entity.OrientTop},
}

// Spikes emits spike blocks over an always-lethal lava floor, with
// occasional fireballs and rare coins.
type Spikes struct {
	rng           *rand.Rand
	width, height float64
	edge          int

	// LavaHeight is the height of the floor lava strip.
	LavaHeight float64

	timer      float64
	rate       float64
	velocity   float64
	largeProb  float64
	fireProb   float64
	fireMinGap int
	intensity  float64

	pattern    []entity.Orientation
	patternIdx int

	sinceCoin     int
	nextCoinIn    int
	sinceFireBall int
	// largeCooldown counts spawns that may not carry a fireball.
	largeCooldown int
}

// NewSpikes creates a spikes spawner for a world of the given size.
func NewSpikes(rng *rand.Rand, width, height float64) *Spikes {
	s := &Spikes{
		rng:        rng,
		width:      width,
		height:     height,
		edge:       int(height * 0.05),
		LavaHeight: DefaultLavaHeight,
	}
	s.SetDifficultyTier(0)
	s.Reset()
	return s
}

// Reset clears timers, pattern and throttles.
func (s *Spikes) Reset() {
	s.timer = 0
	s.pattern = spikePatterns[s.rng.Intn(len(spikePatterns))]
	s.patternIdx = 0
	s.sinceCoin = 0
	s.nextCoinIn = randInt(s.rng, 3, 6)
	s.sinceFireBall = 999
	s.largeCooldown = 0
}

// SetDifficultyTier derives speed, rate, large-spike and fireball odds.
func (s *Spikes) SetDifficultyTier(tier int) {
	t := float64(clampTier(tier))
	s.velocity = spikesBaseVelocity + t*35
	s.rate = math.Max(0.55, 0.85-t*0.03)
	s.largeProb = clamp(0.12+0.01*math.Min(t, 6), 0.12, 0.18)
	s.fireProb = clamp(0.38+0.02*math.Min(t, 5), 0.38, 0.50)
	s.fireMinGap = max(2, 3-clampTier(tier)/7)
}

// SetHazardIntensity raises the fireball chance with run progression.
func (s *Spikes) SetHazardIntensity(intensity float64) {
	s.intensity = clamp(intensity, 0, 1)
}

func (s *Spikes) Update(dt float64) { s.timer += dt }

func (s *Spikes) ShouldSpawn() bool { return s.timer >= s.rate }

func (s *Spikes) SpawnRate() float64 { return s.rate }

// Velocity returns the scroll speed of spawned entities.
func (s *Spikes) Velocity() float64 { return s.velocity }

// FireBallChance returns the current per-spike fireball probability.
func (s *Spikes) FireBallChance() float64 {
	return math.Min(maxFireBallChance, s.fireProb+intensityFireBallBoost*s.intensity)
}

// HeightRange returns the spike height bounds and the large-spike cut.
func (s *Spikes) HeightRange() (minH, maxH, largeCut int) {
	base := float64(entity.SpikeBaseHeight)
	minH = max(65, int(base*0.68))
	maxH = min(int(s.height*0.58), int(base*2.35))
	largeCut = int(float64(minH) + largeSpikeRatio*float64(maxH-minH))
	return minH, maxH, largeCut
}

// Spawn emits a lava strip, one spike and maybe a fireball and coins.
func (s *Spikes) Spawn(tier int) ([]entity.Obstacle, []*entity.Coin) {
	s.SetDifficultyTier(tier)

	orient := s.nextOrientation()
	x := s.width + spikeSpawnOffset

	minH, maxH, largeCut := s.HeightRange()
	h := s.sampleHeight(minH, maxH)

	var y int
	if orient == entity.OrientTop {
		y = randInt(s.rng, -s.edge, 0)
	} else {
		y = randInt(s.rng, int(s.height)-h, int(s.height)-s.edge)
	}

	spike := entity.NewSpikeBlock(x, float64(y), float64(h), s.velocity, orient)
	spike.Large = h >= largeCut

	obstacles := []entity.Obstacle{s.lava(x), spike}
	if fb := s.maybeFireBall(x, spike.Large); fb != nil {
		obstacles = append(obstacles, fb)
	}

	coins := s.maybeCoins(x, orient)

	s.timer = 0
	return obstacles, coins
}

func (s *Spikes) nextOrientation() entity.Orientation {
	o := s.pattern[s.patternIdx]
	s.patternIdx++
	if s.patternIdx >= len(s.pattern) {
		s.pattern = spikePatterns[s.rng.Intn(len(spikePatterns))]
		s.patternIdx = 0
	}
	return o
}

// sampleHeight draws from three buckets: rare small, common middle, rare large.
func (s *Spikes) sampleHeight(minH, maxH int) int {
	if maxH <= minH {
		return minH
	}
	lo, hi := float64(minH), float64(maxH)

	pSmall := clamp(spikeSmallChance, 0, 0.45)
	pLarge := clamp(s.largeProb, 0, 0.45)

	var h float64
	switch r := s.rng.Float64(); {
	case r < pSmall:
		h = triangular(s.rng, lo, hi, lo)
	case r > 1-pLarge:
		h = triangular(s.rng, lo, hi, hi)
	default:
		h = triangular(s.rng, lo, hi, (lo+hi)/2)
	}
	return int(clamp(h, lo, hi))
}

func (s *Spikes) lava(spikeX float64) *entity.HazardPatch {
	h := math.Floor(s.LavaHeight)
	rect := core.NewRectF(
		math.Trunc(spikeX-s.width*0.15),
		s.height-h,
		math.Trunc(s.width*1.35),
		h,
	)
	return entity.NewHazardPatch(rect, s.velocity)
}

// maybeFireBall never fires on a large spike's spawn nor on the one after it.
func (s *Spikes) maybeFireBall(spikeX float64, large bool) *entity.FireBall {
	if large {
		s.largeCooldown = 1
		return nil
	}
	if s.largeCooldown > 0 {
		s.largeCooldown--
		return nil
	}

	s.sinceFireBall++
	if s.sinceFireBall < s.fireMinGap {
		return nil
	}
	if s.rng.Float64() > s.FireBallChance() {
		return nil
	}
	s.sinceFireBall = 0

	lavaTop := s.height - math.Floor(s.LavaHeight)
	fx := spikeX + entity.SpikeWidth + float64(randInt(s.rng, 150, 320))

	peakMinAbove := uniform(s.rng, 18, 34)
	peakMinY := lavaTop - peakMinAbove
	peakMaxY := math.Trunc(clamp(math.Trunc(s.height*0.45), 70, peakMinY-25))

	return entity.NewFireBall(s.rng, entity.FireBallConfig{
		X:         fx,
		Velocity:  s.velocity,
		LavaTop:   lavaTop,
		Period:    uniform(s.rng, 1.6, 2.35),
		UnderLava: uniform(s.rng, 55, 90),
		Radius:    float64(randInt(s.rng, 14, 18)),
		PeakMinY:  peakMinY,
		PeakMaxY:  peakMaxY,
		Reroll:    true,
	})
}

// maybeCoins emits a coin every few spikes, on the open side of the spike.
func (s *Spikes) maybeCoins(spikeX float64, orient entity.Orientation) []*entity.Coin {
	s.sinceCoin++
	if s.sinceCoin < s.nextCoinIn {
		return nil
	}
	s.sinceCoin = 0
	s.nextCoinIn = randInt(s.rng, 3, 6)

	x := spikeX + entity.SpikeWidth + float64(randInt(s.rng, 70, 140))
	var y int
	if orient == entity.OrientTop {
		y = randInt(s.rng, int(s.height*0.45), int(s.height*0.80))
	} else {
		y = randInt(s.rng, int(s.height*0.20), int(s.height*0.55))
	}

	coins := []*entity.Coin{entity.NewCoin(core.Vec2{X: x, Y: float64(y)}, 13, 1, s.velocity)}
	if s.rng.Float64() < 0.12 {
		coins = append(coins, entity.NewCoin(core.Vec2{X: x + 60, Y: float64(y) - 25}, 15, 5, s.velocity))
	}
	return coins
}
