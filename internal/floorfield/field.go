// Package floorfield holds the scrolling floor heightmap that ground-riding
// hazards follow.
package floorfield

import "math"

const (
	// DefaultSampleStep is the width of one sample in pixels.
	DefaultSampleStep = 4
	// lookaheadSamples extend the buffer past the right screen edge.
	lookaheadSamples = 16
	// paintOverscan is how far right of the screen a span may be painted.
	paintOverscan = 400
)

// Field is a fixed-size buffer of floor heights across the screen.
// It is written by the tunnel spawner and read by carts within one tick.
type Field struct {
	screenWidth  float64
	defaultY     float64
	step         int
	heights      []float64
	lastY        float64
	pendingShift float64
}

// New creates a field covering screenWidth plus lookahead, filled with defaultY.
func New(screenWidth, defaultFloorY float64, sampleStep int) *Field {
	if sampleStep < 1 {
		sampleStep = 1
	}
	count := int(math.Ceil(screenWidth/float64(sampleStep))) + lookaheadSamples
	f := &Field{
		screenWidth: screenWidth,
		defaultY:    defaultFloorY,
		step:        sampleStep,
		heights:     make([]float64, count),
	}
	f.Reset()
	return f
}

// Reset refills the field with the default floor height.
func (f *Field) Reset() {
	for i := range f.heights {
		f.heights[i] = f.defaultY
	}
	f.lastY = f.defaultY
	f.pendingShift = 0
}

// Len returns the number of samples.
func (f *Field) Len() int {
	return len(f.heights)
}

// SampleStep returns the width of one sample in pixels.
func (f *Field) SampleStep() int {
	return f.step
}

// Update scrolls the field left by velocity*dt pixels in whole samples.
// Exposed samples take the most recently painted height.
func (f *Field) Update(dt, velocity float64) {
	dx := velocity * dt
	if dx <= 0 {
		return
	}
	f.pendingShift += dx

	step := float64(f.step)
	shift := 0
	for f.pendingShift >= step {
		f.pendingShift -= step
		shift++
	}
	if shift == 0 {
		return
	}
	if shift > len(f.heights) {
		shift = len(f.heights)
	}
	copy(f.heights, f.heights[shift:])
	for i := len(f.heights) - shift; i < len(f.heights); i++ {
		f.heights[i] = f.lastY
	}
}

// PaintSpan sets every sample in [x0, x1] to floorY and remembers floorY
// as the fill value for samples scrolled in later.
func (f *Field) PaintSpan(x0, x1, floorY float64) {
	f.lastY = floorY

	if x1 < x0 {
		x0, x1 = x1, x0
	}
	x0 = math.Max(0, x0)
	x1 = math.Min(f.screenWidth+paintOverscan, x1)
	if x1 <= 0 {
		return
	}

	i0 := int(x0 / float64(f.step))
	i1 := int(x1 / float64(f.step))
	if i1 < 0 || i0 >= len(f.heights) {
		return
	}
	if i1 >= len(f.heights) {
		i1 = len(f.heights) - 1
	}
	for i := i0; i <= i1; i++ {
		f.heights[i] = floorY
	}
}

// FloorYAt returns the floor height of the sample nearest x, clamped to the buffer.
func (f *Field) FloorYAt(x float64) float64 {
	idx := int(math.Floor(x / float64(f.step)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(f.heights) {
		idx = len(f.heights) - 1
	}
	return f.heights[idx]
}
