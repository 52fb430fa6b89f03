package section

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/minerun/internal/floorfield"
)

func newTestManager(t *testing.T, seed int64, opts Options) *Manager {
	t.Helper()
	field := floorfield.New(opts.Width, opts.Height, floorfield.DefaultSampleStep)
	return NewManager(rand.New(rand.NewSource(seed)), field, opts)
}

// finish runs the active section to completion.
func finish(m *Manager) Transition {
	for {
		if tr, ok := m.Update(1.0 / 60); ok {
			return tr
		}
	}
}

func TestInitialState(t *testing.T) {
	m := newTestManager(t, 1, DefaultOptions())
	cur := m.Current()

	assert.Equal(t, Spikes, cur.Kind)
	assert.Equal(t, 0, cur.Tier)
	assert.Equal(t, 10.0, cur.Duration)
	assert.True(t, m.IsSpikes())
	assert.Equal(t, 34.0, m.LavaHeight())
	for _, k := range Kinds {
		assert.Zero(t, m.Tier(k))
	}
}

func TestSpikesTierTwoCompletes(t *testing.T) {
	m := newTestManager(t, 3, DefaultOptions())
	m.tiers.Put(Spikes, 2)
	m.cur.Tier = 2

	tr := finish(m)

	assert.Equal(t, Spikes, tr.Completed.Kind)
	assert.NotEqual(t, Spikes, tr.Next.Kind)
	assert.NotEqual(t, Spikes, m.Current().Kind)
	assert.Equal(t, 3, m.Tier(Spikes))
	assert.Equal(t, 0, m.Tier(tr.Next.Kind))
	assert.Equal(t, 9.0, m.Current().Duration)
	assert.Zero(t, m.Current().Elapsed)
}

func TestNeverRepeatsAndTiersRiseByOne(t *testing.T) {
	m := newTestManager(t, 17, DefaultOptions())

	seen := map[Kind]int{}
	for i := 0; i < 300; i++ {
		before := map[Kind]int{}
		for _, k := range Kinds {
			before[k] = m.Tier(k)
		}

		prev := m.Current().Kind
		tr := finish(m)
		require.Equal(t, prev, tr.Completed.Kind)
		require.NotEqual(t, prev, m.Current().Kind, "repeat at %d", i)
		seen[m.Current().Kind]++

		for _, k := range Kinds {
			want := before[k]
			if k == prev {
				want++
			}
			require.Equal(t, want, m.Tier(k))
		}
		require.Equal(t, i+1, m.Cleared())
	}

	for _, k := range Kinds {
		assert.Greater(t, seen[k], 50, k.String())
	}
	assert.Equal(t, m.MaxTier(), max(m.Tier(Spikes), m.Tier(Tunnel), m.Tier(Beams)))
}

func TestDurationGrowsAndCaps(t *testing.T) {
	m := newTestManager(t, 1, DefaultOptions())
	assert.Equal(t, 9.0, m.Duration(0))
	assert.InDelta(t, 11.0, m.Duration(5), 1e-9)
	assert.Equal(t, 15.0, m.Duration(15))
	assert.Equal(t, 15.0, m.Duration(100))
}

func TestIllegalTransitionPanics(t *testing.T) {
	m := newTestManager(t, 1, DefaultOptions())
	assert.Panics(t, func() { m.enter(m.Current().Kind, 0) })
	assert.Panics(t, func() { m.enter(Kind(9), 0) })
}

func TestFixedTiers(t *testing.T) {
	opts := DefaultOptions()
	opts.TierBias = 3
	opts.FixedTiers = true
	m := newTestManager(t, 5, opts)

	for i := 0; i < 20; i++ {
		finish(m)
	}
	for _, k := range Kinds {
		assert.Equal(t, 3, m.Tier(k))
	}
	assert.Equal(t, 3, m.Current().Tier)
}

func TestStartKind(t *testing.T) {
	opts := DefaultOptions()
	opts.StartKind = Beams
	m := newTestManager(t, 5, opts)

	assert.Equal(t, Beams, m.Current().Kind)
	assert.False(t, m.IsSpikes())
	tr := finish(m)
	assert.NotEqual(t, Beams, tr.Next.Kind)
}

func TestMaybeSpawnFollowsActiveSpawner(t *testing.T) {
	m := newTestManager(t, 8, DefaultOptions())

	obs, coins := m.MaybeSpawn(0, 520)
	assert.Empty(t, obs)
	assert.Empty(t, coins)

	m.Update(m.Spawner(Spikes).SpawnRate())
	obs, _ = m.MaybeSpawn(0, 520)
	require.NotEmpty(t, obs)

	obs, _ = m.MaybeSpawn(0, 520)
	assert.Empty(t, obs)
}

func TestPassageHandoffFromTunnel(t *testing.T) {
	opts := DefaultOptions()
	opts.StartKind = Tunnel
	m := newTestManager(t, 12, opts)

	for m.Current().Kind == Tunnel {
		m.MaybeSpawn(0, 520)
		if tr, ok := m.Update(1.0 / 60); ok {
			c, _ := m.tunnel.PassageCenter()
			assert.Equal(t, c, tr.EntryCenter)
		}
	}
}

func TestBeamsFirstOpeningMeetsEntry(t *testing.T) {
	opts := DefaultOptions()
	m := newTestManager(t, 12, opts)

	// Drive sections until beams is entered.
	var tr Transition
	for {
		tr = finish(m)
		if tr.Next.Kind == Beams {
			break
		}
	}

	for i := 0; i < 600; i++ {
		m.Update(1.0 / 60)
		obs, _ := m.MaybeSpawn(0, 520)
		if len(obs) > 0 {
			c, ok := m.beams.PassageCenter()
			require.True(t, ok)
			want := tr.EntryCenter
			want = max(120, min(opts.Height-120, want))
			assert.Equal(t, want, c)
			return
		}
	}
	t.Fatal("beams never spawned")
}

func TestBeamsStepsDistinctAcrossSections(t *testing.T) {
	opts := DefaultOptions()
	opts.StartKind = Tunnel
	const dt = 1.0 / 60

	sections := 0
	for seed := int64(1); seed <= 200; seed++ {
		m := newTestManager(t, seed, opts)

		var centers []float64
		for tick := 0; tick < 200*60; tick++ {
			if tr, ok := m.Update(dt); ok && tr.Next.Kind == Beams {
				centers = centers[:0]
				sections++
			}
			obs, _ := m.MaybeSpawn(0, 520)
			if m.Current().Kind != Beams || len(obs) == 0 {
				continue
			}
			c, ok := m.beams.PassageCenter()
			require.True(t, ok)
			centers = append(centers, c)

			n := len(centers)
			if n < 2 {
				continue
			}
			step := centers[n-1] - centers[n-2]
			require.NotZerof(t, step, "seed %d tick %d: zero step", seed, tick)
			if n >= 3 {
				prev := centers[n-2] - centers[n-3]
				require.NotEqualf(t, prev, step, "seed %d tick %d: repeated step", seed, tick)
			}
		}
	}
	assert.Greater(t, sections, 200)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("lava")
	assert.Error(t, err)
	got, err := ParseKind("Tunnel")
	require.NoError(t, err)
	assert.Equal(t, Tunnel, got)
}

func TestResetRestoresTiers(t *testing.T) {
	opts := DefaultOptions()
	opts.TierBias = 1
	m := newTestManager(t, 2, opts)
	for i := 0; i < 5; i++ {
		finish(m)
	}
	m.Reset()

	for _, k := range Kinds {
		assert.Equal(t, 1, m.Tier(k))
	}
	assert.Equal(t, Spikes, m.Current().Kind)
	assert.Zero(t, m.Cleared())
}
