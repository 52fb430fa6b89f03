package entity

import "github.com/vovakirdan/minerun/internal/core"

// Spike block geometry.
const (
	SpikeWidth      = 110.0
	SpikeBaseHeight = 125.0

	spikeHitboxScaleX = 0.55
	spikeHitboxScaleY = 0.90
)

// Orientation is the side a spike hangs from.
type Orientation int

const (
	OrientTop Orientation = iota
	OrientBottom
)

// String returns "top" or "bottom".
func (o Orientation) String() string {
	if o == OrientTop {
		return "top"
	}
	return "bottom"
}

// SpikeBlock is the spike section's main obstacle.
type SpikeBlock struct {
	Pos         core.Vec2 // Top-left of the visual bounds
	W, H        float64
	Velocity    float64
	Orientation Orientation
	Large       bool // Height above the large-spike cut
}

// NewSpikeBlock creates a spike of the standard width.
func NewSpikeBlock(x, y, height, velocity float64, orient Orientation) *SpikeBlock {
	return &SpikeBlock{
		Pos:         core.Vec2{X: x, Y: y},
		W:           SpikeWidth,
		H:           height,
		Velocity:    velocity,
		Orientation: orient,
	}
}

func (s *SpikeBlock) Update(dt float64) { s.Pos.X -= s.Velocity * dt }

func (s *SpikeBlock) ShouldDespawn() bool { return s.Pos.X+s.W <= 0 }

func (s *SpikeBlock) Lethal() bool { return true }

func (s *SpikeBlock) Kind() Kind { return KindSpike }

// Bounds returns the visual rectangle.
func (s *SpikeBlock) Bounds() core.RectF {
	return core.NewRectF(s.Pos.X, s.Pos.Y, s.W, s.H)
}

// Hitbox is inset from the visual bounds so grazing misses look fair.
func (s *SpikeBlock) Hitbox() core.RectF {
	w := s.W * spikeHitboxScaleX
	h := s.H * spikeHitboxScaleY
	return core.NewRectF(s.Pos.X+(s.W-w)/2, s.Pos.Y+(s.H-h)/2, w, h)
}
