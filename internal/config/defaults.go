package config

import (
	_ "embed"
)

//go:embed defaults/minerun.yaml
var defaultMinerunYAML []byte

// DefaultMinerunConfig returns the default Mine Run configuration.
func DefaultMinerunConfig() MinerunConfig {
	return MinerunConfig{
		World: WorldConfig{
			Width:        1280,
			Height:       720,
			Speed:        520,
			AvatarRadius: 35,
		},
		Physics: PhysicsConfig{
			Gravity:         9.81,
			GravityScale:    95,
			VelocityScale:   2,
			JumpImpulse:     -355,
			MaxDt:           0.05,
			StepUpTolerance: 16,
			RoundOnClamp:    true,
		},
		Sections: SectionsConfig{
			Start:            "spikes",
			InitialDuration:  10,
			BaseDuration:     9,
			DurationPerTier:  0.4,
			MaxExtraDuration: 6,
		},
		Progression: ProgressionConfig{
			RampSeconds:   55,
			CoinsPerBoost: 120,
			MaxCoinBoost:  0.6,
		},
		Spawners: SpawnersConfig{
			LavaHeight:    34,
			CartSpeedMult: 1.30,
			BeamSpacing:   1,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyEasy,
		},
	}
}
