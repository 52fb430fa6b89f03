package floorfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSampleCount(t *testing.T) {
	f := New(1280, 504, DefaultSampleStep)
	assert.Equal(t, 320+16, f.Len())
	assert.Equal(t, 4, f.SampleStep())
	assert.Equal(t, 504.0, f.FloorYAt(0))
	assert.Equal(t, 504.0, f.FloorYAt(5000))

	odd := New(1281, 504, 4)
	assert.Equal(t, 321+16, odd.Len())

	assert.Equal(t, 1, New(100, 0, 0).SampleStep())
}

func TestPaintSpanAndQuery(t *testing.T) {
	f := New(1280, 500, 4)
	f.PaintSpan(100, 200, 450)

	assert.Equal(t, 500.0, f.FloorYAt(95))
	assert.Equal(t, 450.0, f.FloorYAt(100))
	assert.Equal(t, 450.0, f.FloorYAt(150))
	assert.Equal(t, 450.0, f.FloorYAt(203))
	assert.Equal(t, 500.0, f.FloorYAt(204))
}

func TestPaintSpanSwapsAndClamps(t *testing.T) {
	f := New(400, 500, 4)
	f.PaintSpan(40, 0, 300)
	assert.Equal(t, 300.0, f.FloorYAt(0))
	assert.Equal(t, 300.0, f.FloorYAt(40))

	// Far right spans clamp to the buffer without panicking.
	f.PaintSpan(350, 10000, 320)
	assert.Equal(t, 320.0, f.FloorYAt(float64(f.Len()*4-1)))

	// Entirely left of the screen: only the fill value changes.
	before := f.FloorYAt(0)
	f.PaintSpan(-50, -10, 280)
	assert.Equal(t, before, f.FloorYAt(0))
	f.Update(1, 4)
	assert.Equal(t, 280.0, f.FloorYAt(float64(f.Len()*4-1)))
}

func TestUpdateShiftsWholeSamples(t *testing.T) {
	f := New(1280, 500, 4)
	f.PaintSpan(40, 43, 400) // sample 10
	require.Equal(t, 400.0, f.FloorYAt(40))

	f.Update(1, 3) // less than one sample
	assert.Equal(t, 400.0, f.FloorYAt(40))

	f.Update(1, 1) // accumulated to one sample
	assert.Equal(t, 400.0, f.FloorYAt(36))
	assert.Equal(t, 500.0, f.FloorYAt(40))

	f.Update(1, 8)
	assert.Equal(t, 400.0, f.FloorYAt(28))
}

func TestUpdateFillsWithLastPainted(t *testing.T) {
	f := New(100, 500, 4)
	f.PaintSpan(0, 10, 420)

	f.Update(1, float64(4*f.Len()))
	for x := 0.0; x < float64(4*f.Len()); x += 4 {
		assert.Equal(t, 420.0, f.FloorYAt(x))
	}
}

func TestUpdateIgnoresNonPositiveShift(t *testing.T) {
	f := New(100, 500, 4)
	f.PaintSpan(0, 3, 420)
	f.Update(1, 0)
	f.Update(1, -40)
	assert.Equal(t, 420.0, f.FloorYAt(0))
}

func TestReset(t *testing.T) {
	f := New(100, 500, 4)
	f.PaintSpan(0, 100, 420)
	f.Update(0.5, 3)
	f.Reset()

	assert.Equal(t, 500.0, f.FloorYAt(0))
	f.Update(1, 4)
	assert.Equal(t, 500.0, f.FloorYAt(0))
	assert.Equal(t, 500.0, f.FloorYAt(float64(4*f.Len())))
}
