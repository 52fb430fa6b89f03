// Package entity defines the obstacles and collectibles that scroll through
// a run. Every obstacle moves left at its own velocity and is despawned once
// it leaves the screen.
package entity

import "github.com/vovakirdan/minerun/internal/core"

// Kind identifies an obstacle variant for rendering and telemetry.
type Kind int

const (
	KindSpike      Kind = iota + 1 // Spike section block
	KindLava                       // Floor lava strip
	KindFireBall                   // Erupting fireball
	KindWall                       // Walkable tunnel panel
	KindSlopeSpike                 // Tunnel slope spike
	KindCart                       // Mine cart
	KindBeam                       // Support beam
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindSpike:
		return "Spike"
	case KindLava:
		return "Lava"
	case KindFireBall:
		return "FireBall"
	case KindWall:
		return "Wall"
	case KindSlopeSpike:
		return "SlopeSpike"
	case KindCart:
		return "Cart"
	case KindBeam:
		return "Beam"
	default:
		return "Unknown"
	}
}

// Obstacle is the shared capability set of everything the avatar can hit.
type Obstacle interface {
	Update(dt float64)
	ShouldDespawn() bool
	Hitbox() core.RectF
	Lethal() bool
	Kind() Kind
}

// EdgeLethal is implemented by obstacles whose lethality may be restricted
// to bands along some of their edges.
type EdgeLethal interface {
	LethalEdges() Edges
	// IsLethalCollision assumes overlap is already confirmed.
	IsLethalCollision(center core.Vec2, radius float64) bool
}

// FloorSampler answers floor height queries.
type FloorSampler interface {
	FloorYAt(x float64) float64
}

// GroundRider is implemented by obstacles that follow the floor height field.
type GroundRider interface {
	AttachFloor(f FloorSampler)
	GroundRiding() bool
}

// Edges is a set of rectangle edges.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom

	NoEdges  Edges = 0
	AllEdges       = EdgeLeft | EdgeRight | EdgeTop | EdgeBottom
)

// Has reports whether every edge in o is in e.
func (e Edges) Has(o Edges) bool {
	return e&o == o
}
