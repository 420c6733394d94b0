package objectlist

// record matches one entry of an objects file. Absent keys stay nil.
type record struct {
	ID          string   `json:"id,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	PosX        *float64 `json:"posX,omitempty"`
	PosY        *float64 `json:"posY,omitempty"`
	Time        *float64 `json:"time,omitempty"`
	Direction   *int     `json:"direction,omitempty"`
	Color       *string  `json:"color,omitempty"`
	AngleOffset float64  `json:"angleOffset,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
}

// file is the top-level schema of an objects file.
type file struct {
	Objects []record `json:"objects"`
}
