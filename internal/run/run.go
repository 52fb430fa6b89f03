// Package run wires the physics engine, floor field, section manager and
// progression into one playable run, advanced one tick at a time.
package run

import (
	"math/rand"

	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/entity"
	"github.com/vovakirdan/minerun/internal/floorfield"
	"github.com/vovakirdan/minerun/internal/physics"
	"github.com/vovakirdan/minerun/internal/progression"
	"github.com/vovakirdan/minerun/internal/section"
)

// DefaultWorldSpeed is the scroll speed handed to spawners, in px/s.
const DefaultWorldSpeed = 520.0

const causeCrushed = "Crushed"

// AnimState is the avatar's animation state.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimFlying
	AnimFalling
)

// String returns the state name.
func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimFlying:
		return "flying"
	case AnimFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Options configures a run.
type Options struct {
	Seed         int64
	Physics      physics.Config
	Section      section.Options
	Curve        progression.Curve
	WorldSpeed   float64
	AvatarRadius float64
	// FixedDt, when positive, replaces clock time with a fixed step.
	FixedDt float64
	// Clock is used when FixedDt is zero. Nil means the system clock.
	Clock physics.Clock
}

// DefaultOptions returns a fixed-step 60 Hz run.
func DefaultOptions() Options {
	return Options{
		Physics:      physics.DefaultConfig(),
		Section:      section.DefaultOptions(),
		Curve:        progression.DefaultCurve(),
		WorldSpeed:   DefaultWorldSpeed,
		AvatarRadius: physics.DefaultAvatarRadius,
		FixedDt:      1.0 / 60,
	}
}

// TickResult is what one Step produced.
type TickResult struct {
	Died           bool
	Cause          string // What killed the avatar
	ScoreDelta     int
	CoinsCollected int
	Transition     *section.Transition
}

// Summary describes a finished or ongoing run.
type Summary struct {
	Score           int
	Coins           int
	TimeAlive       float64
	SectionsCleared int
	MaxTier         int
}

// Run is the state of one play-through.
type Run struct {
	opts     Options
	rng      *rand.Rand
	engine   *physics.Engine
	avatar   *physics.Avatar
	field    *floorfield.Field
	sections *section.Manager
	prog     *progression.Progression

	obstacles []entity.Obstacle
	coins     []*entity.Coin

	score    int
	coinsHit int
	dead     bool
	cause    string
	jumpHeld bool
	grounded bool
	anim     AnimState
	ticks    int
}

// New builds a run from opts, all randomness drawn from opts.Seed.
func New(opts Options) *Run {
	if opts.WorldSpeed <= 0 {
		opts.WorldSpeed = DefaultWorldSpeed
	}
	if opts.AvatarRadius <= 0 {
		opts.AvatarRadius = physics.DefaultAvatarRadius
	}
	opts.Section.Width = opts.Physics.Width
	opts.Section.Height = opts.Physics.Height

	r := &Run{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		prog: progression.NewWithCurve(opts.Curve),
	}
	r.engine = physics.New(opts.Physics, opts.Clock)
	r.avatar = physics.NewAvatar(opts.Physics.Width/2, opts.Physics.Height/2, opts.AvatarRadius)
	r.field = floorfield.New(opts.Physics.Width, opts.Physics.Height, floorfield.DefaultSampleStep)
	r.sections = section.NewManager(r.rng, r.field, opts.Section)
	r.Reset()
	return r
}

// Reset starts the run over from the same seed.
func (r *Run) Reset() {
	r.rng.Seed(r.opts.Seed)

	r.avatar.Pos = core.Vec2{X: r.opts.Physics.Width / 2, Y: r.opts.Physics.Height / 2}
	r.avatar.Vel = core.Vec2{}
	r.obstacles = r.obstacles[:0]
	r.coins = r.coins[:0]
	r.score = 0
	r.coinsHit = 0
	r.dead = false
	r.cause = ""
	r.jumpHeld = false
	r.grounded = false
	r.anim = AnimIdle
	r.ticks = 0

	r.field.Reset()
	r.sections.Reset()
	r.prog.Reset()
	r.engine.ResetClock()
}

// Jump applies the lift impulse.
func (r *Run) Jump() {
	if r.dead {
		return
	}
	r.engine.Jump(r.avatar)
}

// ResetClock restarts engine time measurement, e.g. after a pause.
func (r *Run) ResetClock() { r.engine.ResetClock() }

// SetJumpHeld records whether jump is held, for the flying animation.
func (r *Run) SetJumpHeld(held bool) { r.jumpHeld = held }

// Step advances the run by one tick: time, physics, progression and
// sections, spawning, collisions, collection, then cleanup.
func (r *Run) Step() TickResult {
	if r.dead {
		return TickResult{Died: true, Cause: r.cause}
	}
	var res TickResult

	if r.opts.FixedDt > 0 {
		r.engine.SetDt(r.opts.FixedDt)
	} else {
		r.engine.UpdateDt()
	}
	dt := r.engine.Dt()
	r.ticks++

	r.engine.ApplyGravity(r.avatar)

	// Carts outlive the tunnel that painted the field.
	r.field.Update(dt, r.opts.WorldSpeed)
	r.prog.Update(dt)
	if tr, ok := r.sections.Update(dt); ok {
		res.Transition = &tr
	}

	obs, coins := r.sections.MaybeSpawn(r.prog.HazardIntensity(), r.opts.WorldSpeed)
	r.obstacles = append(r.obstacles, obs...)
	r.coins = append(r.coins, coins...)

	if cause, died := r.collide(dt); died {
		r.dead = true
		r.cause = cause
		res.Died = true
		res.Cause = cause
		return res
	}

	for _, c := range r.coins {
		c.Update(dt)
		if c.Collected {
			continue
		}
		center, radius := r.avatar.Hitbox()
		if c.Touches(center, radius) {
			c.Collected = true
			res.ScoreDelta += c.Value
			res.CoinsCollected++
		}
	}
	if res.ScoreDelta > 0 {
		r.score += res.ScoreDelta
		r.coinsHit += res.CoinsCollected
		r.prog.AddCoins(res.ScoreDelta)
	}

	r.cleanup()
	r.decideAnim()
	return res
}

// collide moves obstacles, kills on lethal contact and resolves solids.
func (r *Run) collide(dt float64) (string, bool) {
	r.grounded = false

	for _, o := range r.obstacles {
		o.Update(dt)
	}

	if r.sections.IsSpikes() {
		lava := r.sections.LavaHeight()
		band := core.NewRectF(0, r.opts.Physics.Height-lava, r.opts.Physics.Width, lava)
		center, radius := r.avatar.Hitbox()
		if core.CircleRectOverlap(center, radius, band) {
			return entity.KindLava.String(), true
		}
	}

	for _, o := range r.obstacles {
		if !r.engine.CheckCollision(r.avatar, o) {
			continue
		}
		if o.Lethal() {
			if el, ok := o.(entity.EdgeLethal); ok {
				center, radius := r.avatar.Hitbox()
				if !el.IsLethalCollision(center, radius) {
					continue
				}
			}
			return o.Kind().String(), true
		}

		before := r.avatar.Pos.Y
		r.engine.ResolveSolidCircleRect(r.avatar, o.Hitbox())
		if r.avatar.Pos.Y < before {
			r.grounded = true
		}
	}
	r.engine.ClampAvatar(r.avatar)

	// Walls can shove the avatar left; off the screen means crushed.
	if r.avatar.Pos.X+r.avatar.Radius <= 0 {
		return causeCrushed, true
	}
	return "", false
}

func (r *Run) cleanup() {
	live := r.obstacles[:0]
	for _, o := range r.obstacles {
		if !o.ShouldDespawn() {
			live = append(live, o)
		}
	}
	clear(r.obstacles[len(live):])
	r.obstacles = live

	coins := r.coins[:0]
	for _, c := range r.coins {
		if !c.ShouldDespawn() {
			coins = append(coins, c)
		}
	}
	clear(r.coins[len(coins):])
	r.coins = coins
}

func (r *Run) decideAnim() {
	switch {
	case r.avatar.Bottom() >= r.opts.Physics.Height || r.grounded:
		r.anim = AnimIdle
	case r.avatar.Vel.Y < 0 || r.jumpHeld:
		r.anim = AnimFlying
	case r.avatar.Vel.Y > 0:
		r.anim = AnimFalling
	}
}

// Avatar returns the player's body.
func (r *Run) Avatar() *physics.Avatar { return r.avatar }

// Obstacles returns the live obstacles. The slice is reused between ticks.
func (r *Run) Obstacles() []entity.Obstacle { return r.obstacles }

// Coins returns the live coins. The slice is reused between ticks.
func (r *Run) Coins() []*entity.Coin { return r.coins }

// Sections returns the section manager.
func (r *Run) Sections() *section.Manager { return r.sections }

// Progression returns run progression.
func (r *Run) Progression() *progression.Progression { return r.prog }

// Field returns the floor height field.
func (r *Run) Field() *floorfield.Field { return r.field }

// Dead reports whether the run has ended.
func (r *Run) Dead() bool { return r.dead }

// Cause returns what ended the run.
func (r *Run) Cause() string { return r.cause }

// Score returns the coin-based score.
func (r *Run) Score() int { return r.score }

// Ticks returns the number of steps taken.
func (r *Run) Ticks() int { return r.ticks }

// AnimState returns the avatar's animation state.
func (r *Run) AnimState() AnimState { return r.anim }

// World returns the world size in virtual pixels.
func (r *Run) World() (float64, float64) {
	return r.opts.Physics.Width, r.opts.Physics.Height
}

// Summary returns the run's totals.
func (r *Run) Summary() Summary {
	return Summary{
		Score:           r.score,
		Coins:           r.coinsHit,
		TimeAlive:       r.prog.TimeAlive(),
		SectionsCleared: r.sections.Cleared(),
		MaxTier:         r.sections.MaxTier(),
	}
}
