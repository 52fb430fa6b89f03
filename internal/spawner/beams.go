package spawner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/entity"
)

// Beam frame geometry.
const (
	BeamFrameWidth = 90.0
	BeamThickness  = 40.0

	beamsBaseVelocity = 500.0
	beamCenterMargin  = 120.0
	lastBeamWindow    = 1.15
	maxStepRetries    = 10
	beamCoinChance    = 0.28
)

// Beams emits top and bottom support beams whose opening drifts in a
// biased random walk, anchored to the neighbouring sections at its ends.
type Beams struct {
	rng           *rand.Rand
	width, height float64

	// SpacingScale stretches the interval between beams.
	SpacingScale float64

	velocity float64
	timer    float64
	rate     float64
	opening  float64
	minStep  float64
	maxStep  float64

	ctx         SectionContext
	spawnedAny  bool
	exitDone    bool
	lastCenter  float64
	hasCenter   bool
	lastStep    float64
	hasLastStep bool
}

// NewBeams creates a beams spawner for a world of the given size.
func NewBeams(rng *rand.Rand, width, height float64) *Beams {
	b := &Beams{
		rng:          rng,
		width:        width,
		height:       height,
		SpacingScale: 1,
		velocity:     beamsBaseVelocity,
	}
	b.SetDifficultyTier(0)
	b.Reset()
	return b
}

// SetWorldSpeed sets the scroll speed of spawned beams.
func (b *Beams) SetWorldSpeed(speed float64) { b.velocity = speed }

// SetSectionContext sets the anchors for the first and last beam.
func (b *Beams) SetSectionContext(ctx SectionContext) { b.ctx = ctx }

// Reset forgets the walk and the section anchors.
func (b *Beams) Reset() {
	b.timer = 0
	b.spawnedAny = false
	b.exitDone = false
	b.hasCenter = false
	b.hasLastStep = false
	b.lastCenter = 0
	b.lastStep = 0
	b.ctx = SectionContext{}
}

// SetDifficultyTier derives interval, opening and step bounds.
func (b *Beams) SetDifficultyTier(tier int) {
	t := float64(clampTier(tier))

	b.rate = clamp(1.15-t*0.03, 0.60, 1.20) * b.SpacingScale
	b.opening = math.Max(170, 280-t*8)
	b.maxStep = math.Trunc(clamp(65+t*1.6, 55, 95))
	b.minStep = math.Trunc(clamp(8+t*0.2, 6, math.Min(16, b.maxStep)))
}

func (b *Beams) Update(dt float64) { b.timer += dt }

func (b *Beams) ShouldSpawn() bool { return b.timer >= b.rate }

func (b *Beams) SpawnRate() float64 { return b.rate }

// StepRange returns the bounds of one random-walk step.
func (b *Beams) StepRange() (float64, float64) { return b.minStep, b.maxStep }

// Opening returns the opening height.
func (b *Beams) Opening() float64 { return b.opening }

// PassageCenter returns the last opening center.
func (b *Beams) PassageCenter() (float64, bool) { return b.lastCenter, b.hasCenter }

// Spawn emits one beam pair and maybe a coin in the opening.
func (b *Beams) Spawn(tier int) ([]entity.Obstacle, []*entity.Coin) {
	b.SetDifficultyTier(tier)

	x := b.width + 20
	center := b.chooseCenter()

	openTop := math.Max(BeamThickness, center-math.Floor(b.opening/2))
	openBot := math.Min(b.height-BeamThickness, center+math.Floor(b.opening/2))

	top := entity.NewRectObstacle(entity.KindBeam,
		core.NewRectF(x, 0, BeamFrameWidth, openTop), b.velocity, true)
	bot := entity.NewRectObstacle(entity.KindBeam,
		core.NewRectF(x, openBot, BeamFrameWidth, b.height-openBot), b.velocity, true)

	var coins []*entity.Coin
	if b.rng.Float64() < beamCoinChance {
		mid := math.Floor((openTop + openBot) / 2)
		coins = append(coins, entity.NewCoin(core.Vec2{X: x + BeamFrameWidth + 90, Y: mid}, 13, 1, b.velocity))
	}

	b.timer = 0
	b.spawnedAny = true
	return []entity.Obstacle{top, bot}, coins
}

func (b *Beams) bounds() (float64, float64) {
	return beamCenterMargin, b.height - beamCenterMargin
}

var anchorNudges = []float64{0, 1, -1, 2, -2}

// anchor snaps the opening to y. After the first beam the snap may move
// up to two pixels so the step stays non-zero and unrepeated.
func (b *Beams) anchor(y float64) float64 {
	lo, hi := b.bounds()
	c := clamp(y, lo, hi)
	if b.hasCenter {
		for _, d := range anchorNudges {
			if n := clamp(c+d, lo, hi); b.acceptable(n - b.lastCenter) {
				c = n
				break
			}
		}
		b.lastStep = c - b.lastCenter
		b.hasLastStep = true
	}
	b.lastCenter = c
	b.hasCenter = true
	return c
}

func (b *Beams) chooseCenter() float64 {
	if !b.spawnedAny && b.ctx.HasEntry {
		return b.anchor(b.ctx.EntryCenter)
	}
	if !b.exitDone && b.ctx.HasExit && b.ctx.Remaining <= b.rate*lastBeamWindow {
		b.exitDone = true
		return b.anchor(b.ctx.ExitCenter)
	}

	lo, hi := b.bounds()
	if !b.hasCenter {
		b.lastCenter = math.Floor((lo + hi) / 2)
		b.hasCenter = true
	}

	step := b.nextStep()
	b.lastStep = step
	b.hasLastStep = true
	b.lastCenter = clamp(b.lastCenter+step, lo, hi)
	return b.lastCenter
}

// effective returns the step actually taken after clamping to the bounds.
func (b *Beams) effective(step float64) float64 {
	lo, hi := b.bounds()
	return clamp(b.lastCenter+step, lo, hi) - b.lastCenter
}

func (b *Beams) acceptable(eff float64) bool {
	return eff != 0 && (!b.hasLastStep || eff != b.lastStep)
}

// nextStep returns a step whose clamped effect is non-zero and differs
// from the previous one.
func (b *Beams) nextStep() float64 {
	for i := 0; i <= maxStepRetries; i++ {
		if eff := b.effective(b.sampleStep()); b.acceptable(eff) {
			return eff
		}
	}
	if b.hasLastStep {
		if eff := b.effective(-b.lastStep); b.acceptable(eff) {
			return eff
		}
	}

	// Head toward the middle, where a minimum step always fits.
	lo, hi := b.bounds()
	dir := 1.0
	if b.lastCenter > (lo+hi)/2 {
		dir = -1
	}
	step := dir * b.minStep
	if b.hasLastStep && step == b.lastStep {
		step = dir * (b.minStep + 1)
	}
	return step
}

// sampleStep draws a signed step biased toward small magnitudes.
func (b *Beams) sampleStep() float64 {
	maxStep := b.maxStep
	minStep := math.Min(b.minStep, maxStep)

	mag := math.Trunc(triangular(b.rng, minStep, maxStep, minStep))
	mag = clamp(mag, minStep, maxStep)

	sign := 1.0
	if b.rng.Float64() < 0.5 {
		sign = -1
	}
	step := sign * mag
	if step == 0 {
		step = sign * math.Max(1, minStep)
	}
	return step
}
