package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsampleSolid(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 200, 40, 40, 255
	}

	out := Downsample(src, 16)
	assert.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())
	c := out.NRGBAAt(8, 8)
	assert.InDelta(t, 200, int(c.R), 1)
	assert.InDelta(t, 40, int(c.G), 1)
	assert.Equal(t, uint8(255), c.A)
}

func TestDownsampleKeepsSmallImages(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	assert.Same(t, src, Downsample(src, 16))
}

func TestUnpremultiply(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 50, G: 0, B: 0, A: 128})
	out := Unpremultiply(src)
	c := out.NRGBAAt(0, 0)
	assert.InDelta(t, 100, int(c.R), 1)
	assert.Equal(t, uint8(128), c.A)

	src.SetRGBA(0, 0, color.RGBA{})
	assert.Equal(t, color.NRGBA{}, Unpremultiply(src).NRGBAAt(0, 0))
}
