package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapDegrees(t *testing.T) {
	assert.InDelta(t, 0, WrapDegrees(360), 1e-12)
	assert.InDelta(t, 270, WrapDegrees(-90), 1e-12)
	assert.InDelta(t, 45, WrapDegrees(765), 1e-12)
}

func TestQuatMatchesRotZ(t *testing.T) {
	for _, deg := range []float64{0, 30, 90, 180, 271, -45} {
		a := Deg2Rad(deg)
		got := QuatToMat3(EulerToQuat(0, 0, a))
		want := RotZ(a)
		for i := range got {
			assert.InDelta(t, want[i], got[i], 1e-9, "deg=%v elem=%d", deg, i)
		}
	}
}

func TestFromMat3Translation(t *testing.T) {
	m := FromMat3Translation(RotZ(math.Pi/2), Vec3{1, 2, 3})
	assert.Equal(t, Vec3{1, 2, 3}, m.Translation())
	assert.InDelta(t, -1, m[1], 1e-12)
	assert.InDelta(t, 1, m[4], 1e-12)
	assert.Equal(t, 1.0, m[15])
	assert.True(t, m.ApproxEqual(m, 0))
	assert.False(t, m.ApproxEqual(FromMat3Translation(Mat3Identity(), Vec3{1, 2, 3}), 1e-6))
}

func TestMirrorMatrices(t *testing.T) {
	v := Vec3{1.5, -1, -6}
	assert.Equal(t, Vec3{-1.5, -1, -6}, MirrorX.MulVec3(v))
	assert.Equal(t, Vec3{1.5, 1, -6}, MirrorY.MulVec3(v))
	assert.Equal(t, v, Mat3Mul(MirrorX, MirrorX).MulVec3(v))
	assert.Equal(t, v, Mat3Identity().MulVec3(v))
}

func TestVec3IsFinite(t *testing.T) {
	assert.True(t, Vec3{1, 2, 3}.IsFinite())
	assert.False(t, Vec3{math.NaN(), 0, 0}.IsFinite())
	assert.False(t, Vec3{0, math.Inf(1), 0}.IsFinite())
	assert.Equal(t, 2.0, Vec3{1, 2, 3}.Y())
}
