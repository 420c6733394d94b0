package tracks

// SupportedIDs are the tracks the event grid can edit.
var SupportedIDs = []int{0, 1, 2, 3, 4, 6, 7, 8, 9, 10, 11, 12, 13, 16, 17, 18, 19}

// CommonIDs are shown before extended lighting tracks are enabled.
var CommonIDs = []int{0, 1, 2, 3, 4, 8, 9, 12, 13}

func authored() map[int]Track {
	return map[int]Track{
		0:    {Kind: Light, Label: "Back lasers"},
		1:    {Kind: Light, Label: "Ring lights"},
		2:    {Kind: Light, Side: SideLeft, Label: "Left laser"},
		3:    {Kind: Light, Side: SideRight, Label: "Right laser"},
		4:    {Kind: Light, Label: "Center lights"},
		5:    {Kind: Unsupported, Label: "Boost colors"},
		6:    {Kind: Light, Side: SideLeft, Label: "Extra left lights"},
		7:    {Kind: Light, Side: SideRight, Label: "Extra right lights"},
		8:    {Kind: Trigger, Label: "Ring rotation"},
		9:    {Kind: Trigger, Label: "Ring zoom"},
		10:   {Kind: Light, Side: SideLeft, Label: "Extra left lasers"},
		11:   {Kind: Light, Side: SideRight, Label: "Extra right lasers"},
		12:   {Kind: Value, Side: SideLeft, Label: "Left laser speed"},
		13:   {Kind: Value, Side: SideRight, Label: "Right laser speed"},
		14:   {Kind: Unsupported, Label: "Early lane rotation"},
		15:   {Kind: Unsupported, Label: "Late lane rotation"},
		16:   {Kind: Value, Label: "Utility 1"},
		17:   {Kind: Value, Label: "Utility 2"},
		18:   {Kind: Value, Label: "Utility 3"},
		19:   {Kind: Value, Label: "Utility 4"},
		100:  {Kind: Unsupported, Label: "BPM change"},
		1000: {Kind: Unsupported, Label: "Legacy BPM change"},
	}
}

// Table is the event track classification with its derived views.
// It is read-only after NewTable and safe for concurrent use.
type Table struct {
	all       View
	supported View
	common    View
}

// NewTable builds the authored table. It panics if an allow-list id is
// missing from the table, which is a programming error.
func NewTable() *Table {
	all := authored()
	supported := project(all, SupportedIDs)
	return &Table{
		all:       View{tracks: all},
		supported: supported,
		common:    project(supported.tracks, CommonIDs),
	}
}

// All returns every authored track, unsupported ones included.
func (t *Table) All() View { return t.all }

// Supported returns the editable tracks.
func (t *Table) Supported() View { return t.supported }

// Common returns the default subset of supported tracks.
func (t *Table) Common() View { return t.common }

// Visible returns the rows shown by the event grid.
func (t *Table) Visible(extended bool) View {
	if extended {
		return t.supported
	}
	return t.common
}
