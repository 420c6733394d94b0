package preview

import (
	"bytes"
	"image"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beatplace/internal/beatmap"
	"beatplace/internal/notedir"
)

func scene() []beatmap.Object {
	return []beatmap.Object{
		{
			Kind: beatmap.KindNote, PosX: beatmap.Float(0), PosY: beatmap.Float(0),
			Time: beatmap.Float(0), Direction: beatmap.Int(notedir.Down),
			Color: beatmap.Color(beatmap.ColorLeft),
		},
		{
			Kind: beatmap.KindNote, PosX: beatmap.Float(3), PosY: beatmap.Float(0),
			Time: beatmap.Float(0), Direction: beatmap.Int(notedir.Any),
			Color: beatmap.Color(beatmap.ColorRight),
		},
		// outside the window
		{
			Kind: beatmap.KindNote, PosX: beatmap.Float(1), PosY: beatmap.Float(2),
			Time: beatmap.Float(4), Direction: beatmap.Int(notedir.Up),
		},
		// untimed objects are skipped
		{Kind: beatmap.KindBomb, PosX: beatmap.Float(2), PosY: beatmap.Float(1)},
	}
}

func opts() Options {
	return Options{Size: 64, Supersample: 1, Grid: beatmap.DefaultGrid, BeatDepth: 9, WindowBeats: 4}
}

func TestRenderPlacesNotes(t *testing.T) {
	img := Render(scene(), opts())
	require.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	left := img.NRGBAAt(14, 41)
	assert.Greater(t, left.R, left.B)
	assert.Equal(t, uint8(255), left.A)

	right := img.NRGBAAt(50, 41)
	assert.Greater(t, right.B, right.R)

	assert.Equal(t, uint8(0), img.NRGBAAt(27, 21).A)
}

func TestRenderSupersampled(t *testing.T) {
	o := opts()
	o.Supersample = 3
	img := Render(scene(), o)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	c := img.NRGBAAt(14, 41)
	assert.Greater(t, c.R, c.B)
}

func TestEncode(t *testing.T) {
	img := Render(scene(), opts())

	var webp bytes.Buffer
	require.NoError(t, Encode(&webp, img, "webp"))
	assert.Equal(t, "RIFF", webp.String()[:4])

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, "TGA"))
	decoded, err := tga.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Size(), decoded.Bounds().Size())

	assert.Error(t, Encode(&buf, img, "png"))
}

func TestWriteFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "preview.webp")
	require.NoError(t, WriteFile(p, Render(scene(), opts()), "webp"))
	assert.FileExists(t, p)
}
