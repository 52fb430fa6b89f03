// Package config provides YAML-based configuration loading and difficulty
// presets for Mine Run.
package config

import (
	"fmt"
	"strings"
)

// MinerunConfig contains all tunable configuration for a run.
type MinerunConfig struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Sections    SectionsConfig    `yaml:"sections"`
	Progression ProgressionConfig `yaml:"progression"`
	Spawners    SpawnersConfig    `yaml:"spawners"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// WorldConfig defines the virtual world the simulation runs in.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"` // Scroll speed in px/s
	AvatarRadius float64 `yaml:"avatar_radius"`
}

// PhysicsConfig defines the engine feel constants.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	GravityScale    float64 `yaml:"gravity_scale"`
	VelocityScale   float64 `yaml:"velocity_scale"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	MaxDt           float64 `yaml:"max_dt"`
	StepUpTolerance float64 `yaml:"step_up_tolerance"`
	RoundOnClamp    bool    `yaml:"round_on_clamp"`
}

// SectionsConfig defines section pacing.
type SectionsConfig struct {
	Start            string  `yaml:"start"` // "spikes", "tunnel" or "beams"
	InitialDuration  float64 `yaml:"initial_duration"`
	BaseDuration     float64 `yaml:"base_duration"`
	DurationPerTier  float64 `yaml:"duration_per_tier"`
	MaxExtraDuration float64 `yaml:"max_extra_duration"`
}

// ProgressionConfig shapes the hazard-intensity curve.
type ProgressionConfig struct {
	RampSeconds   float64 `yaml:"ramp_seconds"`
	CoinsPerBoost float64 `yaml:"coins_per_boost"`
	MaxCoinBoost  float64 `yaml:"max_coin_boost"`
}

// SpawnersConfig holds the per-archetype knobs that are not tier formulas.
type SpawnersConfig struct {
	LavaHeight    float64 `yaml:"lava_height"`
	CartSpeedMult float64 `yaml:"cart_speed_mult"`
	BeamSpacing   float64 `yaml:"beam_spacing"`
}

// DifficultyConfig defines starting tier and escalation.
type DifficultyConfig struct {
	Preset     DifficultyPreset `yaml:"preset"`
	TierBias   int              `yaml:"tier_bias"`   // Starting tier of every section kind
	FixedTiers bool             `yaml:"fixed_tiers"` // Tiers never rise
}

// Validate reports the first out-of-range value.
func (c MinerunConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.Speed <= 0:
		return fmt.Errorf("config: world speed must be positive, got %v", c.World.Speed)
	case c.World.AvatarRadius <= 0 || 2*c.World.AvatarRadius >= c.World.Height:
		return fmt.Errorf("config: avatar radius %v does not fit the world", c.World.AvatarRadius)
	case c.Physics.MaxDt <= 0:
		return fmt.Errorf("config: physics max_dt must be positive, got %v", c.Physics.MaxDt)
	case c.Sections.InitialDuration <= 0 || c.Sections.BaseDuration <= 0:
		return fmt.Errorf("config: section durations must be positive")
	case c.Spawners.LavaHeight < 0:
		return fmt.Errorf("config: lava height must not be negative, got %v", c.Spawners.LavaHeight)
	case c.Difficulty.TierBias < 0:
		return fmt.Errorf("config: tier bias must not be negative, got %d", c.Difficulty.TierBias)
	}
	if !validStart(c.Sections.Start) {
		return fmt.Errorf("config: unknown start section %q", c.Sections.Start)
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			return err
		}
	}
	return nil
}

func validStart(s string) bool {
	switch strings.ToLower(s) {
	case "", "spikes", "tunnel", "beams":
		return true
	}
	return false
}
