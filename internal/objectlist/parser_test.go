package objectlist

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beatplace/internal/beatmap"
)

func TestDecodeObjectsForm(t *testing.T) {
	objs, err := Decode(strings.NewReader(`{"objects": [
		{"id": "a", "posX": 0, "posY": 2, "time": 1.5, "direction": 3, "color": "right"},
		{"kind": "bomb", "posX": 1, "posY": 1, "time": 2},
		{"kind": "obstacle", "posX": 0, "time": 4, "width": 2, "duration": 1}
	]}`))
	require.NoError(t, err)
	require.Len(t, objs, 3)

	a := objs[0]
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, beatmap.KindNote, a.Kind)
	assert.Equal(t, 2.0, *a.PosY)
	assert.Equal(t, 3, *a.Direction)
	assert.Equal(t, beatmap.ColorRight, *a.Color)

	b := objs[1]
	assert.Equal(t, beatmap.KindBomb, b.Kind)
	assert.Nil(t, b.Direction)
	assert.Nil(t, b.Color)
	_, err = uuid.Parse(b.ID)
	assert.NoError(t, err)

	assert.Equal(t, 2.0, *objs[2].Width)
}

func TestDecodeBareArray(t *testing.T) {
	objs, err := Decode(strings.NewReader(` [{"posX": 1}] `))
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Nil(t, objs[0].Time)
	assert.Nil(t, objs[0].PosY)
}

func TestDecodeRejectsUnknownValues(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"kind": "arc"}]`))
	assert.ErrorContains(t, err, "object 0")

	_, err = Decode(strings.NewReader(`[{"color": "green"}]`))
	assert.Error(t, err)
}

func TestWriteThenParse(t *testing.T) {
	p := filepath.Join(t.TempDir(), "objects.json")
	in := []beatmap.Object{{
		ID:        "n1",
		Kind:      beatmap.KindNote,
		PosX:      beatmap.Float(1500),
		Time:      beatmap.Float(8),
		Direction: beatmap.Int(1090),
		Color:     beatmap.Color(beatmap.ColorLeft),
	}}
	require.NoError(t, Write(p, in))

	out, err := Parse(p)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
