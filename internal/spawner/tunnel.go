package spawner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/entity"
)

// Tunnel geometry and pacing.
const (
	DefaultWorldSpeed    = 520.0
	DefaultCartSpeedMult = 1.30

	PanelWidth   = 180.0
	PanelOverlap = 4.0

	tunnelMargin       = 60.0
	minCorridor        = 175.0
	slopeRerollPeriod  = 0.85
	minBundleSpike     = 18
	skipBundleAtOrLess = 20
	tightCorridorSlack = 25.0
)

// FloorPainter is the floor height field the tunnel paints into.
type FloorPainter interface {
	entity.FloorSampler
	PaintSpan(x0, x1, floorY float64)
	Reset()
}

// Tunnel advances a walkable floor and ceiling one panel at a time, with
// slope spike bundles and mine carts on flat runs.
type Tunnel struct {
	rng           *rand.Rand
	width, height float64
	field         FloorPainter

	// CartSpeedMult scales cart speed relative to the world.
	CartSpeedMult float64

	velocity    float64
	timer       float64
	slopeTimer  float64
	rate        float64
	gap         float64
	slopeStep   float64
	floorY      float64
	ceilingY    float64
	slopeDir    int
	lastSlope   int
	safePassage float64

	flatLeft      int
	flatRunMin    int
	flatRunMax    int
	nextFlatIn    int
	sinceFlat     int
	cartCooldown  int
	cartReadyIn   int
	sinceCoin     int
	nextCoinIn    int
	bundleLenMax  int
	gapLenMin     int
	gapLenMax     int
	spikeMode     spikeMode
	bundleLeft    int
	gapLeft       int
	bundleSide    entity.Orientation
	bundleTargetW int
	bundleTargetH int
}

type spikeMode int

const (
	modeGap spikeMode = iota
	modeBundle
)

const bundleLenMin = 2

// NewTunnel creates a tunnel spawner painting into field.
// A nil field disables floor tracking for carts.
func NewTunnel(rng *rand.Rand, width, height float64, field FloorPainter) *Tunnel {
	t := &Tunnel{
		rng:           rng,
		width:         width,
		height:        height,
		field:         field,
		CartSpeedMult: DefaultCartSpeedMult,
		velocity:      DefaultWorldSpeed,
		gapLenMax:     2,
	}
	t.SetDifficultyTier(0)
	t.Reset()
	return t
}

// SetWorldSpeed sets the scroll speed of panels, carts and coins.
func (t *Tunnel) SetWorldSpeed(speed float64) { t.velocity = speed }

// Reset restores the initial profile and clears pattern state.
func (t *Tunnel) Reset() {
	t.gap = 240
	t.floorY = math.Trunc(t.height * 0.70)
	t.ceilingY = math.Trunc(t.height * 0.25)

	t.timer = 0
	t.slopeTimer = 0
	t.slopeDir = 0
	t.lastSlope = 0
	t.flatLeft = 0
	t.nextFlatIn = randInt(t.rng, 10, 16)
	t.sinceFlat = 0
	t.cartReadyIn = 0
	t.sinceCoin = 0
	t.nextCoinIn = randInt(t.rng, 4, 7)

	t.spikeMode = modeGap
	t.bundleLeft = 0
	t.gapLeft = randInt(t.rng, t.gapLenMin, t.gapLenMax)
	t.bundleSide = entity.Orientation(t.rng.Intn(2))
	t.bundleTargetW = 0
	t.bundleTargetH = 0

	if t.field != nil {
		t.field.Reset()
	}
}

// SetDifficultyTier derives corridor size, panel rate, slope and pattern limits.
func (t *Tunnel) SetDifficultyTier(tier int) {
	tier = clampTier(tier)
	ft := float64(tier)

	t.gap = math.Max(minCorridor, 240-ft*6)
	t.rate = math.Max(0.16, 0.22-ft*0.003)
	t.slopeStep = math.Trunc(clamp(10+ft*0.3, 10, 14))

	t.flatRunMin = max(5, 6-tier/10)
	t.flatRunMax = max(t.flatRunMin, 10-tier/8)
	t.cartCooldown = max(5, 7-tier/8)

	t.bundleLenMax = int(clamp(4+ft*0.05, 4, 5))
	t.gapLenMin = max(2, 2-tier/20)
	t.safePassage = float64(max(130, 140-tier/12))
}

// Update advances timers and re-rolls the slope. The field's owner
// scrolls it every tick, in every section.
func (t *Tunnel) Update(dt float64) {
	t.timer += dt
	t.slopeTimer += dt

	if t.flatLeft <= 0 && t.slopeTimer >= slopeRerollPeriod {
		t.slopeTimer = 0
		switch r := t.rng.Float64(); {
		case r < 0.35:
			t.slopeDir = 0
		case r < 0.675:
			t.slopeDir = -1
		default:
			t.slopeDir = 1
		}
	}
}

func (t *Tunnel) ShouldSpawn() bool { return t.timer >= t.rate }

func (t *Tunnel) SpawnRate() float64 { return t.rate }

// Corridor returns the current ceiling and floor heights.
func (t *Tunnel) Corridor() (ceilingY, floorY float64) { return t.ceilingY, t.floorY }

// SafePassage returns the free height guaranteed next to slope spikes.
func (t *Tunnel) SafePassage() float64 { return t.safePassage }

// LastSlope returns the slope direction of the last panel.
func (t *Tunnel) LastSlope() int { return t.lastSlope }

// PassageCenter returns the middle of the current corridor.
func (t *Tunnel) PassageCenter() (float64, bool) {
	return math.Floor((t.ceilingY + t.floorY) / 2), true
}

// Spawn emits one panel: ceiling and floor walls, slope spikes, carts and coins.
func (t *Tunnel) Spawn(tier int) ([]entity.Obstacle, []*entity.Coin) {
	t.SetDifficultyTier(tier)

	x := t.width + 20 - PanelOverlap
	panelW := PanelWidth + PanelOverlap

	slope := t.advanceProfile()
	t.lastSlope = slope

	top := entity.NewRectObstacle(entity.KindWall,
		core.NewRectF(x, 0, panelW, math.Max(0, t.ceilingY)), t.velocity, false)
	bottom := entity.NewRectObstacle(entity.KindWall,
		core.NewRectF(x, t.floorY, panelW, math.Max(0, t.height-t.floorY)), t.velocity, false)

	if t.field != nil {
		t.field.PaintSpan(x, x+panelW, t.floorY)
	}

	obstacles := []entity.Obstacle{top, bottom}
	if spike := t.slopeSpike(x, slope); spike != nil {
		obstacles = append(obstacles, spike)
	}
	if cart := t.maybeCart(x, slope); cart != nil {
		obstacles = append(obstacles, cart)
	}

	coins := t.maybeCoin(x)

	t.timer = 0
	return obstacles, coins
}

func (t *Tunnel) scheduleFlatRun() {
	t.sinceFlat++
	if t.flatLeft > 0 {
		return
	}
	if t.sinceFlat >= t.nextFlatIn {
		t.flatLeft = randInt(t.rng, t.flatRunMin, t.flatRunMax)
		t.sinceFlat = 0
		t.nextFlatIn = randInt(t.rng, 10, 16)
		t.cartReadyIn = randInt(t.rng, 2, 4)
	}
}

// advanceProfile moves floor and ceiling by one panel and returns the slope used.
func (t *Tunnel) advanceProfile() int {
	t.scheduleFlatRun()

	slope := t.slopeDir
	if t.flatLeft > 0 {
		slope = 0
		t.flatLeft--
	}

	floor := t.floorY + float64(slope)*t.slopeStep
	floor = clamp(floor, tunnelMargin+t.gap, t.height-tunnelMargin)

	ceil := floor - t.gap
	if ceil < tunnelMargin {
		ceil = tunnelMargin
		floor = ceil + t.gap
	}

	t.floorY = floor
	t.ceilingY = ceil
	return slope
}

func (t *Tunnel) maybeCoin(x float64) []*entity.Coin {
	t.sinceCoin++
	if t.sinceCoin < t.nextCoinIn {
		return nil
	}
	t.sinceCoin = 0
	t.nextCoinIn = randInt(t.rng, 4, 7)

	center, _ := t.PassageCenter()
	y := center + float64(randInt(t.rng, -25, 25))
	cx := x + PanelWidth + float64(randInt(t.rng, 110, 180))
	return []*entity.Coin{entity.NewCoin(core.Vec2{X: cx, Y: y}, 13, 1, t.velocity)}
}

// maybeCart emits a cart during a flat run once its delay has passed.
func (t *Tunnel) maybeCart(x float64, slope int) *entity.MineCart {
	if slope != 0 || t.flatLeft <= 0 {
		return nil
	}
	if t.cartReadyIn > 0 {
		t.cartReadyIn--
		return nil
	}
	t.cartReadyIn = t.cartCooldown

	cx := x + PanelWidth + float64(randInt(t.rng, 160, 280))
	rect := core.NewRectF(cx, t.floorY-entity.CartHeight, entity.CartWidth, entity.CartHeight)
	cart := entity.NewMineCart(rect, t.velocity*t.CartSpeedMult)
	if t.field != nil {
		cart.AttachFloor(t.field)
	}
	return cart
}

func (t *Tunnel) toGap(n int) {
	t.spikeMode = modeGap
	t.bundleLeft = 0
	t.gapLeft = n
}

func (t *Tunnel) maxSpike() int {
	return max(0, int(t.floorY-t.ceilingY-t.safePassage))
}

func (t *Tunnel) beginBundle() {
	t.spikeMode = modeBundle
	t.bundleLeft = randInt(t.rng, bundleLenMin, t.bundleLenMax)
	if t.bundleSide == entity.OrientTop {
		t.bundleSide = entity.OrientBottom
	} else {
		t.bundleSide = entity.OrientTop
	}

	maxSpike := t.maxSpike()
	if maxSpike <= skipBundleAtOrLess {
		t.toGap(randInt(t.rng, t.gapLenMin, t.gapLenMax))
		return
	}

	t.bundleTargetW = randInt(t.rng, 38, 56)

	lo := max(minBundleSpike, int(float64(maxSpike)*0.35))
	hi := max(lo, int(float64(maxSpike)*0.70))

	var h int
	switch r := t.rng.Float64(); {
	case r < 0.12:
		h = randInt(t.rng, minBundleSpike, max(minBundleSpike, int(float64(lo)*0.9)))
	case r > 0.88:
		h = randInt(t.rng, max(lo, int(float64(hi)*0.85)), hi)
	default:
		h = randInt(t.rng, lo, hi)
	}
	t.bundleTargetH = core.Clamp(h, minBundleSpike, maxSpike)
}

// slopeSpike emits at most one spike per slope panel. Bundles alternate
// between ceiling and floor and are separated by gap panels.
func (t *Tunnel) slopeSpike(x float64, slope int) *entity.RectObstacle {
	if slope == 0 {
		t.toGap(randInt(t.rng, t.gapLenMin, t.gapLenMax))
		return nil
	}

	if t.floorY-t.ceilingY < t.safePassage+tightCorridorSlack {
		t.spikeMode = modeGap
		t.bundleLeft = 0
		t.gapLeft = max(t.gapLeft, 3)
	}

	if t.spikeMode == modeGap {
		t.gapLeft--
		if t.gapLeft <= 0 {
			t.beginBundle()
		}
		return nil
	}

	if t.bundleLeft <= 0 {
		t.toGap(randInt(t.rng, t.gapLenMin, t.gapLenMax))
		return nil
	}

	maxSpike := t.maxSpike()
	if maxSpike <= skipBundleAtOrLess {
		t.toGap(randInt(t.rng, t.gapLenMin, t.gapLenMax))
		return nil
	}

	w := t.bundleTargetW
	h := core.Clamp(t.bundleTargetH+randInt(t.rng, -10, 10), minBundleSpike, maxSpike)
	sx := x + float64(randInt(t.rng, 48, max(49, int(PanelWidth)-w-14)))

	var sy float64
	if t.bundleSide == entity.OrientTop {
		sy = t.ceilingY
	} else {
		sy = t.floorY - float64(h)
	}
	spike := entity.NewRectObstacle(entity.KindSlopeSpike,
		core.NewRectF(sx, sy, float64(w), float64(h)), t.velocity, true)

	t.bundleLeft--
	if t.bundleLeft <= 0 {
		t.toGap(randInt(t.rng, t.gapLenMin, t.gapLenMax))
	}
	return spike
}
