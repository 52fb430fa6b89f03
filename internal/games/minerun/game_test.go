package minerun

import (
	"strings"
	"testing"

	"github.com/vovakirdan/minerun/internal/config"
	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/registry"
	"github.com/vovakirdan/minerun/internal/run"
	"github.com/vovakirdan/minerun/internal/section"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	g := NewWithConfig(mode, config.DefaultMinerunConfig())
	g.Reset(testRuntime(12345))
	return g
}

func jumpFrame() core.InputFrame {
	f := core.NewInputFrame()
	f.Set(core.ActionJump)
	return f
}

func TestGameDeterminism(t *testing.T) {
	play := func() (core.GameState, int, float64) {
		g := newTestGame(t, Modes[0])
		for i := 0; i < 1200; i++ {
			in := core.NewInputFrame()
			if g.Run().Avatar().Pos.Y > 470 {
				in = jumpFrame()
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.State(), g.Run().Ticks(), g.Run().Avatar().Pos.Y
	}

	s1, ticks1, y1 := play()
	s2, ticks2, y2 := play()

	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
	if y1 != y2 {
		t.Errorf("Determinism failed: avatar y differs. Run1=%v, Run2=%v", y1, y2)
	}
}

func TestGameOverEmitsDeathAndRecord(t *testing.T) {
	g := newTestGame(t, Modes[0])

	var died *core.Event
	for i := 0; i < 600 && died == nil; i++ {
		res := g.Step(core.NewInputFrame())
		for _, ev := range res.Events {
			if ev.Kind == core.EventDied {
				died = &ev
			}
		}
	}

	if died == nil {
		t.Fatal("falling into lava should end the run")
	}
	if died.Message != "Lava" {
		t.Errorf("death cause = %q, want Lava", died.Message)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false after death")
	}

	rec := g.Record()
	if rec.GameID != "minerun" || rec.Cause != "Lava" || rec.Seed != 12345 {
		t.Errorf("Record() = %+v", rec)
	}
	if rec.TimeAlive <= 0 {
		t.Errorf("Record().TimeAlive = %v, want > 0", rec.TimeAlive)
	}

	// Steps after game over are inert.
	ticks := g.Run().Ticks()
	g.Step(jumpFrame())
	if g.Run().Ticks() != ticks {
		t.Error("game advanced after game over")
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g := newTestGame(t, Modes[0])

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	y := g.Run().Avatar().Pos.Y
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Run().Avatar().Pos.Y != y || g.Run().Ticks() != 0 {
		t.Error("run advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestSectionChangeEvent(t *testing.T) {
	cfg := config.DefaultMinerunConfig()
	cfg.Sections.InitialDuration = 0.1
	g := NewWithConfig(Modes[0], cfg)
	g.Reset(testRuntime(3))

	var got *core.Event
	for i := 0; i < 20 && got == nil; i++ {
		for _, ev := range g.Step(core.NewInputFrame()).Events {
			if ev.Kind == core.EventSectionChanged {
				got = &ev
			}
		}
	}
	if got == nil {
		t.Fatal("expected a section change")
	}
	if !strings.HasPrefix(got.Message, "spikes -> ") {
		t.Errorf("event message = %q", got.Message)
	}
	if g.bannerTicks <= 0 || !strings.Contains(g.banner, "TIER") {
		t.Errorf("banner = %q (%d ticks)", g.banner, g.bannerTicks)
	}
}

func TestPracticeModesStartInTheirSection(t *testing.T) {
	tests := []struct {
		mode Mode
		want section.Kind
	}{
		{Modes[0], section.Spikes},
		{Modes[1], section.Tunnel},
		{Modes[2], section.Beams},
	}

	for _, tt := range tests {
		t.Run(tt.mode.ID, func(t *testing.T) {
			g := newTestGame(t, tt.mode)
			if got := g.Run().Sections().Current().Kind; got != tt.want {
				t.Errorf("start section = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModesRegistered(t *testing.T) {
	for _, m := range Modes {
		if !registry.Exists(m.ID) {
			t.Errorf("mode %q not registered", m.ID)
		}
		g, err := registry.Create(m.ID)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", m.ID, err)
		}
		if g.Title() != m.Title {
			t.Errorf("Title() = %q, want %q", g.Title(), m.Title)
		}
		if _, ok := g.(registry.HighScoreAware); !ok {
			t.Errorf("%q should accept a high score", m.ID)
		}
	}
}

func TestRunOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultMinerunConfig()
	config.ApplyPreset(&cfg, config.DifficultyHard)
	cfg.World.Speed = 600

	opts := RunOptions(cfg, 9, 30, "beams")

	if opts.Seed != 9 || opts.WorldSpeed != 600 {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Section.TierBias != 3 || opts.Section.FixedTiers {
		t.Errorf("section opts = %+v", opts.Section)
	}
	if opts.Section.StartKind != section.Beams {
		t.Errorf("StartKind = %v, want beams", opts.Section.StartKind)
	}
	if opts.FixedDt != 1.0/30 {
		t.Errorf("FixedDt = %v, want 1/30", opts.FixedDt)
	}
	if opts.Physics.JumpImpulse != -355 || opts.Curve.RampSeconds != 55 {
		t.Errorf("physics or curve not copied: %+v %+v", opts.Physics, opts.Curve)
	}

	// Unknown start falls back to spikes.
	if got := RunOptions(cfg, 1, 60, "caves").Section.StartKind; got != section.Spikes {
		t.Errorf("unknown start = %v, want spikes", got)
	}
}

func TestRenderHUDAndAvatar(t *testing.T) {
	g := newTestGame(t, Modes[0])
	g.SetHighScore(77)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"SCORE 0", "BEST 77", "SPIKES T0", "HAZARD"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// Avatar sits at the middle of the play field.
	x, y := newViewport(screen, 1280, 720).point(g.Run().Avatar().Pos)
	if screen.Get(x, y) != AvatarChar {
		t.Errorf("cell (%d,%d) = %q, want avatar", x, y, screen.Get(x, y))
	}

	// Lava band on the bottom row during spikes.
	if screen.Get(0, 23) != LavaChar {
		t.Errorf("bottom-left cell = %q, want lava", screen.Get(0, 23))
	}
}

func TestHitboxOverlayToggle(t *testing.T) {
	g := newTestGame(t, Modes[0])
	if g.Hitboxes() {
		t.Fatal("overlay should start off")
	}

	toggle := core.NewInputFrame()
	toggle.Set(core.ActionHitboxes)
	g.Step(toggle)
	if !g.Hitboxes() {
		t.Fatal("overlay should be on")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "[H]") {
		t.Error("HUD should flag the overlay")
	}
	if !strings.ContainsRune(screen.String(), HitboxChar) {
		t.Error("avatar hitbox outline missing")
	}
}

func TestResetStartsFresh(t *testing.T) {
	g := newTestGame(t, Modes[0])
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Reset(testRuntime(1))

	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("state after reset = %+v", g.State())
	}
	if g.Run().AnimState() != run.AnimIdle {
		t.Errorf("anim after reset = %v", g.Run().AnimState())
	}
}

func TestSetDifficulty(t *testing.T) {
	g := NewWithConfig(Modes[0], config.DefaultMinerunConfig())
	if err := g.SetDifficulty("nightmare"); err == nil {
		t.Error("SetDifficulty(nightmare) should fail")
	}
	if err := g.SetDifficulty("Hard"); err != nil {
		t.Fatalf("SetDifficulty(Hard) error: %v", err)
	}
	g.Reset(testRuntime(3))

	if got := g.Record().Difficulty; got != "hard" {
		t.Errorf("Record().Difficulty = %q, want hard", got)
	}
	var _ registry.DifficultyAware = g
}
