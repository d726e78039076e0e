package calendar

import (
	"errors"
	"testing"

	"github.com/username/calendar-pdf-service/pkg/dateutil"
)

func TestBuildGridShape(t *testing.T) {
	tests := []struct {
		name         string
		year         int
		month        int
		wantDays     int
		wantFirstCol int // column of day 1, Sunday=0
	}{
		{"February non-leap", 2025, 2, 28, 6},
		{"February leap", 2024, 2, 29, 4},
		{"February century non-leap", 1900, 2, 28, 4},
		{"30-day month", 2025, 4, 30, 2},
		{"31-day month", 2025, 8, 31, 5},
		{"month starting on Sunday", 2025, 6, 30, 0},
		{"December 2100", 2100, 12, 31, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := BuildGrid(tt.year, tt.month)
			if err != nil {
				t.Fatalf("BuildGrid(%d, %d) error: %v", tt.year, tt.month, err)
			}

			if got := grid.Days(); got != tt.wantDays {
				t.Errorf("non-blank cells = %d, want %d", got, tt.wantDays)
			}

			for i, week := range grid.Weeks {
				if len(week) != 7 {
					t.Errorf("week %d has %d cells, want 7", i, len(week))
				}
			}

			// Day 1 must sit on its actual weekday.
			first := grid.Weeks[0]
			for col := 0; col < tt.wantFirstCol; col++ {
				if !first[col].Blank() {
					t.Errorf("column %d of first week not blank", col)
				}
			}
			if first[tt.wantFirstCol].Day != 1 {
				t.Errorf("day 1 at column %d = %d, want 1",
					tt.wantFirstCol, first[tt.wantFirstCol].Day)
			}

			// Last week must be padded with trailing blanks after the last day.
			last := grid.Weeks[len(grid.Weeks)-1]
			seenBlank := false
			for col, cell := range last {
				if cell.Blank() {
					seenBlank = true
					continue
				}
				if seenBlank {
					t.Errorf("non-blank cell at column %d after trailing blanks", col)
				}
			}
		})
	}
}

func TestBuildGridDaysAreSequential(t *testing.T) {
	grid, err := BuildGrid(2025, 2)
	if err != nil {
		t.Fatalf("BuildGrid error: %v", err)
	}

	want := 1
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Blank() {
				continue
			}
			if cell.Day != want {
				t.Fatalf("day = %d, want %d", cell.Day, want)
			}
			want++
		}
	}
	if want != 29 {
		t.Errorf("last day+1 = %d, want 29", want)
	}
}

func TestBuildGridAllMonths(t *testing.T) {
	// Shape invariants over a leap and a non-leap year.
	for _, year := range []int{2024, 2025} {
		for month := 1; month <= 12; month++ {
			grid, err := BuildGrid(year, month)
			if err != nil {
				t.Fatalf("BuildGrid(%d, %d) error: %v", year, month, err)
			}

			if got, want := grid.Days(), dateutil.DaysInMonth(year, month); got != want {
				t.Errorf("%d-%02d: non-blank cells = %d, want %d", year, month, got, want)
			}
			for i, week := range grid.Weeks {
				if len(week) != 7 {
					t.Errorf("%d-%02d: week %d has %d cells", year, month, i, len(week))
				}
			}
		}
	}
}

func TestBuildGridInvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := BuildGrid(2025, month)
		if err == nil {
			t.Errorf("BuildGrid(2025, %d) expected error", month)
			continue
		}
		var invalid *InvalidDateError
		if !errors.As(err, &invalid) {
			t.Errorf("BuildGrid(2025, %d) error = %T, want *InvalidDateError", month, err)
		}
	}
}

func TestApplyOverlays(t *testing.T) {
	grid, err := BuildGrid(2025, 2)
	if err != nil {
		t.Fatalf("BuildGrid error: %v", err)
	}

	ApplyOverlays(grid, []Overlay{
		{Type: OverlayCircle, Days: []int{1, 15}},
		{Type: OverlayTriangle, Days: []int{15, 20}},
	})

	got := map[int]OverlayType{}
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Overlay != "" {
				got[cell.Day] = cell.Overlay
			}
		}
	}

	want := map[int]OverlayType{
		1:  OverlayCircle,
		15: OverlayCircle, // first spec wins
		20: OverlayTriangle,
	}
	if len(got) != len(want) {
		t.Errorf("marked days = %v, want %v", got, want)
	}
	for day, overlay := range want {
		if got[day] != overlay {
			t.Errorf("day %d overlay = %q, want %q", day, got[day], overlay)
		}
	}
}
