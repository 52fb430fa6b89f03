// Package section cycles a run through its section archetypes. Each
// archetype keeps its own difficulty tier, raised every time a section of
// that archetype completes.
package section

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/minerun/internal/entity"
	"github.com/vovakirdan/minerun/internal/spawner"
)

// Kind is a section archetype.
type Kind int

const (
	Spikes Kind = iota
	Tunnel
	Beams
)

// Kinds lists every archetype in a stable order.
var Kinds = []Kind{Spikes, Tunnel, Beams}

// String returns the archetype name.
func (k Kind) String() string {
	switch k {
	case Spikes:
		return "spikes"
	case Tunnel:
		return "tunnel"
	case Beams:
		return "beams"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses an archetype name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("section: unknown kind %q", s)
}

func (k Kind) valid() bool {
	return k >= Spikes && k <= Beams
}

// Section is the active span of one archetype.
type Section struct {
	Kind     Kind
	Tier     int
	Elapsed  float64
	Duration float64
}

// Remaining returns the seconds left in the section.
func (s Section) Remaining() float64 {
	return math.Max(0, s.Duration-s.Elapsed)
}

// Transition describes a completed section and the one that replaced it.
type Transition struct {
	Completed   Section
	Next        Section
	EntryCenter float64 // Passage center handed to the next section
}

// Options configures a Manager.
type Options struct {
	Width, Height float64
	StartKind     Kind
	TierBias      int  // Starting tier of every archetype
	FixedTiers    bool // Tiers never rise

	InitialDuration  float64 // First section's length
	BaseDuration     float64
	DurationPerTier  float64
	MaxExtraDuration float64

	BeamSpacing   float64
	CartSpeedMult float64
	LavaHeight    float64
}

// DefaultOptions returns the standard section pacing.
func DefaultOptions() Options {
	return Options{
		Width:            1280,
		Height:           720,
		StartKind:        Spikes,
		InitialDuration:  10,
		BaseDuration:     9,
		DurationPerTier:  0.4,
		MaxExtraDuration: 6,
		BeamSpacing:      1,
		CartSpeedMult:    spawner.DefaultCartSpeedMult,
		LavaHeight:       spawner.DefaultLavaHeight,
	}
}

// Manager is the section state machine.
type Manager struct {
	rng      *rand.Rand
	opts     Options
	tiers    *intmap.Map[Kind, int]
	spikes   *spawner.Spikes
	tunnel   *spawner.Tunnel
	beams    *spawner.Beams
	cur      Section
	entry    float64
	hasEntry bool
	cleared  int
}

// NewManager creates a manager whose tunnel paints into field.
func NewManager(rng *rand.Rand, field spawner.FloorPainter, opts Options) *Manager {
	if !opts.StartKind.valid() {
		opts.StartKind = Spikes
	}
	if opts.TierBias < 0 {
		opts.TierBias = 0
	}

	m := &Manager{
		rng:   rng,
		opts:  opts,
		tiers: intmap.New[Kind, int](len(Kinds)),
	}
	m.spikes = spawner.NewSpikes(rng, opts.Width, opts.Height)
	m.spikes.LavaHeight = opts.LavaHeight
	m.tunnel = spawner.NewTunnel(rng, opts.Width, opts.Height, field)
	m.tunnel.CartSpeedMult = opts.CartSpeedMult
	m.beams = spawner.NewBeams(rng, opts.Width, opts.Height)
	m.beams.SpacingScale = opts.BeamSpacing

	m.Reset()
	return m
}

// Reset restores every tier and starts the first section.
func (m *Manager) Reset() {
	for _, k := range Kinds {
		m.tiers.Put(k, m.opts.TierBias)
		m.Spawner(k).Reset()
	}
	m.cleared = 0
	m.hasEntry = false
	m.entry = m.opts.Height / 2

	tier := m.Tier(m.opts.StartKind)
	m.cur = Section{
		Kind:     m.opts.StartKind,
		Tier:     tier,
		Duration: m.opts.InitialDuration,
	}
	m.Spawner(m.cur.Kind).SetDifficultyTier(tier)
}

// Spawner returns the spawner of an archetype.
func (m *Manager) Spawner(k Kind) spawner.Spawner {
	switch k {
	case Spikes:
		return m.spikes
	case Tunnel:
		return m.tunnel
	case Beams:
		return m.beams
	}
	panic(fmt.Sprintf("section: no spawner for %v", k))
}

// Current returns the active section.
func (m *Manager) Current() Section { return m.cur }

// Tier returns an archetype's tier.
func (m *Manager) Tier(k Kind) int {
	t, _ := m.tiers.Get(k)
	return t
}

// MaxTier returns the highest tier reached by any archetype.
func (m *Manager) MaxTier() int {
	best := 0
	for _, k := range Kinds {
		best = max(best, m.Tier(k))
	}
	return best
}

// Cleared returns the number of completed sections.
func (m *Manager) Cleared() int { return m.cleared }

// IsSpikes reports whether the floor is lava right now.
func (m *Manager) IsSpikes() bool { return m.cur.Kind == Spikes }

// LavaHeight returns the height of the spike section's lava band.
func (m *Manager) LavaHeight() float64 { return m.spikes.LavaHeight }

// Duration returns the length of a section at tier.
func (m *Manager) Duration(tier int) float64 {
	return m.opts.BaseDuration + math.Min(m.opts.MaxExtraDuration, float64(tier)*m.opts.DurationPerTier)
}

// Update advances the active section and switches archetype once its
// duration has elapsed.
func (m *Manager) Update(dt float64) (Transition, bool) {
	m.cur.Elapsed += dt
	sp := m.Spawner(m.cur.Kind)
	sp.Update(dt)

	if m.cur.Elapsed < m.cur.Duration {
		return Transition{}, false
	}

	completed := m.cur
	if !m.opts.FixedTiers {
		m.tiers.Put(completed.Kind, completed.Tier+1)
	}
	m.cleared++

	entry := m.passageCenter(sp)
	m.enter(m.chooseNext(), entry)

	return Transition{Completed: completed, Next: m.cur, EntryCenter: entry}, true
}

func (m *Manager) passageCenter(sp spawner.Spawner) float64 {
	if pr, ok := sp.(spawner.PassageReporter); ok {
		if c, ok := pr.PassageCenter(); ok {
			return c
		}
	}
	return m.opts.Height / 2
}

func (m *Manager) chooseNext() Kind {
	options := make([]Kind, 0, len(Kinds)-1)
	for _, k := range Kinds {
		if k != m.cur.Kind {
			options = append(options, k)
		}
	}
	return options[m.rng.Intn(len(options))]
}

// enter switches to next. Re-entering the active archetype is a programming error.
func (m *Manager) enter(next Kind, entry float64) {
	if !next.valid() {
		panic(fmt.Sprintf("section: invalid kind %v", next))
	}
	if next == m.cur.Kind {
		panic(fmt.Sprintf("section: illegal transition %v -> %v", m.cur.Kind, next))
	}

	tier := m.Tier(next)
	m.cur = Section{Kind: next, Tier: tier, Duration: m.Duration(tier)}
	m.entry = entry
	m.hasEntry = true

	sp := m.Spawner(next)
	sp.Reset()
	sp.SetDifficultyTier(tier)
}

// MaybeSpawn feeds the active spawner its context and returns its
// entities when its interval has elapsed.
func (m *Manager) MaybeSpawn(hazardIntensity, worldSpeed float64) ([]entity.Obstacle, []*entity.Coin) {
	sp := m.Spawner(m.cur.Kind)

	if ws, ok := sp.(spawner.WorldSpeedSetter); ok {
		ws.SetWorldSpeed(worldSpeed)
	}
	if hs, ok := sp.(spawner.HazardIntensitySetter); ok {
		hs.SetHazardIntensity(hazardIntensity)
	}
	if cs, ok := sp.(spawner.SectionContextSetter); ok {
		cs.SetSectionContext(spawner.SectionContext{
			EntryCenter: m.entry,
			HasEntry:    m.hasEntry,
			ExitCenter:  m.opts.Height / 2,
			HasExit:     true,
			Remaining:   m.cur.Remaining(),
		})
	}

	if !sp.ShouldSpawn() {
		return nil, nil
	}
	return sp.Spawn(m.cur.Tier)
}
