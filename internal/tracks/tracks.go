// Package tracks classifies lighting event tracks for the event grid.
package tracks

import (
	"fmt"
	"maps"
	"slices"
)

// Kind is the semantic type of an event track.
type Kind int

const (
	Light Kind = iota
	Trigger
	Value
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case Light:
		return "light"
	case Trigger:
		return "trigger"
	case Value:
		return "value"
	}
	return "unsupported"
}

// Side is the optional left/right placement of a track.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return ""
}

// Track describes one event track.
type Track struct {
	Kind  Kind
	Side  Side
	Label string
}

// View is an immutable id → track projection.
type View struct {
	tracks map[int]Track
}

// Lookup returns the track for id.
func (v View) Lookup(id int) (Track, bool) {
	t, ok := v.tracks[id]
	return t, ok
}

// Has reports whether id is in the view.
func (v View) Has(id int) bool {
	_, ok := v.tracks[id]
	return ok
}

// Len returns the number of tracks.
func (v View) Len() int { return len(v.tracks) }

// IDs returns the track ids in row order.
func (v View) IDs() []int {
	return slices.Sorted(maps.Keys(v.tracks))
}

// Map returns a copy of the underlying mapping.
func (v View) Map() map[int]Track {
	return maps.Clone(v.tracks)
}

// BySide groups ids by side, each group in row order.
func (v View) BySide() map[Side][]int {
	out := make(map[Side][]int)
	for _, id := range v.IDs() {
		s := v.tracks[id].Side
		out[s] = append(out[s], id)
	}
	return out
}

// project builds a view over ids. Every id must exist in src.
func project(src map[int]Track, ids []int) View {
	m := make(map[int]Track, len(ids))
	for _, id := range ids {
		t, ok := src[id]
		if !ok {
			panic(fmt.Sprintf("tracks: id %d not in table", id))
		}
		m[id] = t
	}
	return View{tracks: m}
}
