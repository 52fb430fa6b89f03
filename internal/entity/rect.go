package entity

import "github.com/vovakirdan/minerun/internal/core"

// DefaultEdgeMargin is the thickness of a lethal edge band.
const DefaultEdgeMargin = 10.0

// RectObstacle is a rectangular obstacle. A non-lethal one is a walkable
// solid; a lethal one kills on overlap, optionally only near some edges.
type RectObstacle struct {
	Rect       core.RectF
	Velocity   float64
	EdgeMargin float64

	kind   Kind
	lethal bool
	edges  Edges
}

// NewRectObstacle creates a rectangle that is lethal on all edges or on none.
func NewRectObstacle(kind Kind, rect core.RectF, velocity float64, lethal bool) *RectObstacle {
	edges := NoEdges
	if lethal {
		edges = AllEdges
	}
	return &RectObstacle{
		Rect:       rect,
		Velocity:   velocity,
		EdgeMargin: DefaultEdgeMargin,
		kind:       kind,
		lethal:     lethal,
		edges:      edges,
	}
}

// NewEdgeLethalRect creates a lethal rectangle that only kills inside the
// bands along edges. No built-in section emits one; the run's collision
// pass and the hitbox overlay honor the bands for any obstacle that does,
// such as a hazard whose leading face alone should kill.
func NewEdgeLethalRect(kind Kind, rect core.RectF, velocity float64, edges Edges) *RectObstacle {
	r := NewRectObstacle(kind, rect, velocity, true)
	r.edges = edges
	return r
}

func (r *RectObstacle) Update(dt float64) { r.Rect.X -= r.Velocity * dt }

func (r *RectObstacle) ShouldDespawn() bool { return r.Rect.Right() <= 0 }

func (r *RectObstacle) Hitbox() core.RectF { return r.Rect }

func (r *RectObstacle) Lethal() bool { return r.lethal }

func (r *RectObstacle) Kind() Kind { return r.kind }

// LethalEdges returns the edges whose bands kill.
func (r *RectObstacle) LethalEdges() Edges { return r.edges }

// EdgeBands returns the lethal band rectangles, empty when the whole
// rectangle is lethal or none of it is.
func (r *RectObstacle) EdgeBands() []core.RectF {
	if !r.lethal || r.edges == AllEdges {
		return nil
	}
	m := r.EdgeMargin
	rc := r.Rect
	var bands []core.RectF
	if r.edges.Has(EdgeLeft) {
		bands = append(bands, core.NewRectF(rc.Left(), rc.Top(), m, rc.H))
	}
	if r.edges.Has(EdgeRight) {
		bands = append(bands, core.NewRectF(rc.Right()-m, rc.Top(), m, rc.H))
	}
	if r.edges.Has(EdgeTop) {
		bands = append(bands, core.NewRectF(rc.Left(), rc.Top(), rc.W, m))
	}
	if r.edges.Has(EdgeBottom) {
		bands = append(bands, core.NewRectF(rc.Left(), rc.Bottom()-m, rc.W, m))
	}
	return bands
}

// IsLethalCollision reports whether an overlapping circle touches a lethal band.
func (r *RectObstacle) IsLethalCollision(center core.Vec2, radius float64) bool {
	if !r.lethal {
		return false
	}
	if r.edges == AllEdges {
		return true
	}
	for _, band := range r.EdgeBands() {
		if core.CircleRectOverlap(center, radius, band) {
			return true
		}
	}
	return false
}

// HazardPatch is a moving kill zone, such as the lava strip.
type HazardPatch struct {
	Rect     core.RectF
	Velocity float64
}

// NewHazardPatch creates a lethal patch.
func NewHazardPatch(rect core.RectF, velocity float64) *HazardPatch {
	return &HazardPatch{Rect: rect, Velocity: velocity}
}

func (h *HazardPatch) Update(dt float64) { h.Rect.X -= h.Velocity * dt }

func (h *HazardPatch) ShouldDespawn() bool { return h.Rect.Right() <= 0 }

func (h *HazardPatch) Hitbox() core.RectF { return h.Rect }

func (h *HazardPatch) Lethal() bool { return true }

func (h *HazardPatch) Kind() Kind { return KindLava }
