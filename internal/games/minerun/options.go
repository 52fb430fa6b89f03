package minerun

import (
	"github.com/vovakirdan/minerun/internal/config"
	"github.com/vovakirdan/minerun/internal/physics"
	"github.com/vovakirdan/minerun/internal/progression"
	"github.com/vovakirdan/minerun/internal/run"
	"github.com/vovakirdan/minerun/internal/section"
)

// RunOptions converts a loaded configuration into run options.
// start overrides the configured first section when non-empty.
func RunOptions(cfg config.MinerunConfig, seed int64, tickRate int, start string) run.Options {
	if tickRate <= 0 {
		tickRate = 60
	}
	if start == "" {
		start = cfg.Sections.Start
	}
	startKind, err := section.ParseKind(start)
	if err != nil {
		startKind = section.Spikes
	}

	sec := section.DefaultOptions()
	sec.StartKind = startKind
	sec.TierBias = cfg.Difficulty.TierBias
	sec.FixedTiers = cfg.Difficulty.FixedTiers
	sec.InitialDuration = cfg.Sections.InitialDuration
	sec.BaseDuration = cfg.Sections.BaseDuration
	sec.DurationPerTier = cfg.Sections.DurationPerTier
	sec.MaxExtraDuration = cfg.Sections.MaxExtraDuration
	sec.LavaHeight = cfg.Spawners.LavaHeight
	if cfg.Spawners.CartSpeedMult > 0 {
		sec.CartSpeedMult = cfg.Spawners.CartSpeedMult
	}
	if cfg.Spawners.BeamSpacing > 0 {
		sec.BeamSpacing = cfg.Spawners.BeamSpacing
	}

	return run.Options{
		Seed: seed,
		Physics: physics.Config{
			Width:           cfg.World.Width,
			Height:          cfg.World.Height,
			Gravity:         cfg.Physics.Gravity,
			GravityScale:    cfg.Physics.GravityScale,
			VelocityScale:   cfg.Physics.VelocityScale,
			JumpImpulse:     cfg.Physics.JumpImpulse,
			MaxDt:           cfg.Physics.MaxDt,
			StepUpTolerance: cfg.Physics.StepUpTolerance,
			RoundOnClamp:    cfg.Physics.RoundOnClamp,
		},
		Section: sec,
		Curve: progression.Curve{
			RampSeconds:   cfg.Progression.RampSeconds,
			CoinsPerBoost: cfg.Progression.CoinsPerBoost,
			MaxCoinBoost:  cfg.Progression.MaxCoinBoost,
		},
		WorldSpeed:   cfg.World.Speed,
		AvatarRadius: cfg.World.AvatarRadius,
		FixedDt:      1.0 / float64(tickRate),
	}
}
