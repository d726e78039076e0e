package calendar

import (
	"strings"
	"testing"
)

func TestRenderMonthDocument(t *testing.T) {
	html, err := RenderMonth(2025, 2, []Overlay{
		{Type: OverlayCircle, Days: []int{1, 15}},
	})
	if err != nil {
		t.Fatalf("RenderMonth error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<html>",
		"</html>",
		"@page",
		"2025年2月",
		"<th>日</th>", "<th>月</th>", "<th>火</th>", "<th>水</th>",
		"<th>木</th>", "<th>金</th>", "<th>土</th>",
		`<div class="circle"></div>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered document missing %q", want)
		}
	}

	// 2025-02-01 is a Saturday: six leading blanks before day 1.
	if !strings.Contains(html, "<tr><td></td><td></td><td></td><td></td><td></td><td></td>"+
		`<td class="day">1<div class="circle"></div></td></tr>`) {
		t.Error("first week row not padded to Saturday start")
	}

	// Exactly the two requested days carry a marker.
	if got := strings.Count(html, `<div class="circle"></div>`); got != 2 {
		t.Errorf("circle markers = %d, want 2", got)
	}
}

func TestRenderMonthAllOverlayTypes(t *testing.T) {
	html, err := RenderMonth(2025, 2, []Overlay{
		{Type: OverlayCircle, Days: []int{1}},
		{Type: OverlayTriangle, Days: []int{2}},
		{Type: OverlayCross, Days: []int{3}},
		{Type: OverlayDiamond, Days: []int{4}},
	})
	if err != nil {
		t.Fatalf("RenderMonth error: %v", err)
	}

	for _, want := range []string{
		`<div class="circle"></div>`,
		`<div class="triangle"></div>`,
		`<div class="cross">×</div>`,
		`<div class="diamond"></div>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered document missing marker %q", want)
		}
	}
}

func TestRenderMonthEmptyOverlay(t *testing.T) {
	html, err := RenderMonth(2025, 2, nil)
	if err != nil {
		t.Fatalf("RenderMonth error: %v", err)
	}

	for _, marker := range []string{"circle\"></div>", "triangle\"></div>", "cross\">", "diamond\"></div>"} {
		if strings.Contains(html, "<div class=\""+marker) {
			t.Errorf("empty overlay request rendered marker %q", marker)
		}
	}

	// Same grid shape as a marked request for the same month.
	marked, err := RenderMonth(2025, 2, []Overlay{{Type: OverlayCircle, Days: []int{1}}})
	if err != nil {
		t.Fatalf("RenderMonth error: %v", err)
	}
	if strings.Count(html, "<tr>") != strings.Count(marked, "<tr>") {
		t.Error("grid shape differs between empty and marked overlay")
	}
}

func TestRenderMonthDeterministic(t *testing.T) {
	specs := []Overlay{{Type: OverlayDiamond, Days: []int{7, 21}}}

	first, err := RenderMonth(2031, 10, specs)
	if err != nil {
		t.Fatalf("RenderMonth error: %v", err)
	}
	second, err := RenderMonth(2031, 10, specs)
	if err != nil {
		t.Fatalf("RenderMonth error: %v", err)
	}

	if first != second {
		t.Error("rendering the same request twice produced different markup")
	}
}

func TestRenderUnknownOverlayType(t *testing.T) {
	grid, err := BuildGrid(2025, 2)
	if err != nil {
		t.Fatalf("BuildGrid error: %v", err)
	}
	// An unknown type can only reach the renderer if validation is skipped;
	// it must render no marker and not panic.
	grid.Weeks[0][6].Overlay = OverlayType("star")

	html := RenderHTML(grid)
	if !strings.Contains(html, `<td class="day">1</td>`) {
		t.Error("cell with unknown overlay type should render bare day number")
	}
}
