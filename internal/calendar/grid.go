package calendar

import (
	"fmt"

	"github.com/username/calendar-pdf-service/pkg/dateutil"
)

const daysPerWeek = 7

// InvalidDateError reports a month outside the 1..12 range
type InvalidDateError struct {
	Year  int
	Month int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: year=%d month=%d", e.Year, e.Month)
}

// BuildGrid lays out the given month as week rows of 7 cells.
// The first row is padded with blanks up to the weekday of day 1
// (Sunday-first), the last row is padded with trailing blanks.
func BuildGrid(year, month int) (*Grid, error) {
	if month < 1 || month > 12 {
		return nil, &InvalidDateError{Year: year, Month: month}
	}

	daysInMonth := dateutil.DaysInMonth(year, month)
	firstWeekday := dateutil.FirstWeekday(year, month)

	// Flat cell sequence: leading blanks, days, trailing blanks.
	total := firstWeekday + daysInMonth
	if rem := total % daysPerWeek; rem != 0 {
		total += daysPerWeek - rem
	}

	cells := make([]DayCell, total)
	for day := 1; day <= daysInMonth; day++ {
		cells[firstWeekday+day-1] = DayCell{Day: day}
	}

	grid := &Grid{
		Year:  year,
		Month: month,
		Weeks: make([][]DayCell, 0, total/daysPerWeek),
	}
	for i := 0; i < total; i += daysPerWeek {
		grid.Weeks = append(grid.Weeks, cells[i:i+daysPerWeek])
	}

	return grid, nil
}

// ApplyOverlays resolves an overlay for every non-blank cell in the grid.
// The grid is modified in place and returned for convenience.
func ApplyOverlays(grid *Grid, specs []Overlay) *Grid {
	for _, week := range grid.Weeks {
		for i, cell := range week {
			if cell.Blank() {
				continue
			}
			if overlay, ok := ResolveOverlay(cell.Day, specs); ok {
				week[i].Overlay = overlay
			}
		}
	}
	return grid
}
