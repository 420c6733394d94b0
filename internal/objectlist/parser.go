package objectlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"beatplace/internal/beatmap"
)

// Parse reads an objects file. Objects without an id are given a fresh one.
func Parse(path string) ([]beatmap.Object, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("objectlist: read %s: %w", path, err)
	}
	objs, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("objectlist: parse %s: %w", path, err)
	}
	return objs, nil
}

// Decode reads objects from r. Both {"objects": [...]} and a bare array
// are accepted.
func Decode(r io.Reader) ([]beatmap.Object, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var recs []record
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &recs)
	} else {
		var f file
		err = json.Unmarshal(raw, &f)
		recs = f.Objects
	}
	if err != nil {
		return nil, err
	}

	objs := make([]beatmap.Object, 0, len(recs))
	for i, rec := range recs {
		obj, err := rec.object()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// Write stores objects in the {"objects": [...]} form.
func Write(path string, objs []beatmap.Object) error {
	f := file{Objects: make([]record, len(objs))}
	for i, o := range objs {
		f.Objects[i] = fromObject(o)
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (r record) object() (beatmap.Object, error) {
	obj := beatmap.Object{
		ID:          r.ID,
		Kind:        beatmap.ObjectKind(strings.ToLower(r.Kind)),
		PosX:        r.PosX,
		PosY:        r.PosY,
		Time:        r.Time,
		Direction:   r.Direction,
		AngleOffset: r.AngleOffset,
		Width:       r.Width,
		Height:      r.Height,
		Duration:    r.Duration,
	}
	if obj.ID == "" {
		obj.ID = uuid.NewString()
	}
	switch obj.Kind {
	case "":
		obj.Kind = beatmap.KindNote
	case beatmap.KindNote, beatmap.KindBomb, beatmap.KindObstacle:
	default:
		return beatmap.Object{}, fmt.Errorf("unknown kind %q", r.Kind)
	}
	if r.Color != nil {
		switch strings.ToLower(*r.Color) {
		case "left", "red", "0":
			obj.Color = beatmap.Color(beatmap.ColorLeft)
		case "right", "blue", "1":
			obj.Color = beatmap.Color(beatmap.ColorRight)
		default:
			return beatmap.Object{}, fmt.Errorf("unknown color %q", *r.Color)
		}
	}
	return obj, nil
}

func fromObject(o beatmap.Object) record {
	r := record{
		ID:          o.ID,
		Kind:        string(o.Kind),
		PosX:        o.PosX,
		PosY:        o.PosY,
		Time:        o.Time,
		Direction:   o.Direction,
		AngleOffset: o.AngleOffset,
		Width:       o.Width,
		Height:      o.Height,
		Duration:    o.Duration,
	}
	if o.Color != nil {
		s := o.Color.String()
		r.Color = &s
	}
	return r
}
