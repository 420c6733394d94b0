package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"beatplace/internal/notedir"
)

func TestResolveCanonical(t *testing.T) {
	assert.InDelta(t, math.Pi, Resolve(notedir.Up, 0), 1e-12)
	assert.InDelta(t, 0, Resolve(notedir.Down, 0), 1e-12)
	assert.InDelta(t, math.Pi/4, Resolve(notedir.DownRight, 0), 1e-12)
	assert.InDelta(t, math.Pi/2, Resolve(notedir.Down, 90), 1e-12)
}

func TestResolveFineAngle(t *testing.T) {
	// 1000: (1270 % 360) = 190, 180-190 = -10, then the +3π patch.
	want := (-10 + 3*math.Pi) * math.Pi / 180
	assert.InDelta(t, want, Resolve(1000, 0), 1e-12)

	// angleOffset does not apply to fine angles.
	assert.Equal(t, Resolve(1045, 0), Resolve(1045, 30))
}

func TestResolveTotal(t *testing.T) {
	for _, offset := range []float64{0, -45, 15.5, 720} {
		for d := 0; d < notedir.FineMax; d++ {
			r := Resolve(d, offset)
			if math.IsNaN(r) || math.IsInf(r, 0) {
				t.Fatalf("Resolve(%d, %v) = %v", d, offset, r)
			}
		}
	}
}

func TestUnknownCodeIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Degrees(42, 0))
	assert.Equal(t, 10.0, Degrees(-3, 10))
}
