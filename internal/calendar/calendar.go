package calendar

// OverlayType identifies the decorative marker drawn on a calendar day
type OverlayType string

const (
	OverlayCircle   OverlayType = "circle"
	OverlayTriangle OverlayType = "triangle"
	OverlayCross    OverlayType = "cross"
	OverlayDiamond  OverlayType = "diamond"
)

// ValidOverlayTypes lists the accepted overlay types in the order they are
// reported to callers on validation failure.
var ValidOverlayTypes = []OverlayType{
	OverlayCircle,
	OverlayTriangle,
	OverlayCross,
	OverlayDiamond,
}

// IsValid reports whether t is one of the enumerated overlay types
func (t OverlayType) IsValid() bool {
	switch t {
	case OverlayCircle, OverlayTriangle, OverlayCross, OverlayDiamond:
		return true
	}
	return false
}

// Overlay represents "draw this shape on these days".
// Days may contain duplicates; each value must be a valid day of month.
type Overlay struct {
	Type OverlayType `json:"type"`
	Days []int       `json:"days"`
}

// Request is a calendar generation request as received from the caller
type Request struct {
	Year           int       `json:"year"`
	Month          int       `json:"month"`
	Overlay        []Overlay `json:"overlay"`
	OutputFolderID string    `json:"outputFolderId,omitempty"`
	Filename       string    `json:"filename,omitempty"`
	Description    string    `json:"description,omitempty"`
}

// DayCell is a single cell of the month grid.
// Day 0 marks a blank padding cell; Overlay is empty when no marker applies.
type DayCell struct {
	Day     int
	Overlay OverlayType
}

// Blank reports whether the cell is a padding cell
func (c DayCell) Blank() bool {
	return c.Day == 0
}

// Grid is the 7-column week-row layout of a full month.
// Every row has exactly 7 cells; the first row is padded with leading blanks
// so day 1 sits on its actual weekday (Sunday-first columns).
type Grid struct {
	Year  int
	Month int
	Weeks [][]DayCell
}

// Days returns the number of non-blank cells in the grid
func (g *Grid) Days() int {
	n := 0
	for _, week := range g.Weeks {
		for _, cell := range week {
			if !cell.Blank() {
				n++
			}
		}
	}
	return n
}
