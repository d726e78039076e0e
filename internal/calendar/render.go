package calendar

import (
	"fmt"
	"strings"
)

// weekdayLabels are the column headers, Sunday first
var weekdayLabels = []string{"日", "月", "火", "水", "木", "金", "土"}

// markup emitted inside a day cell for each overlay type.
// The mapping is total over the enumerated types; anything else renders
// no marker at all.
var overlayMarkup = map[OverlayType]string{
	OverlayCircle:   `<div class="circle"></div>`,
	OverlayTriangle: `<div class="triangle"></div>`,
	OverlayCross:    `<div class="cross">×</div>`,
	OverlayDiamond:  `<div class="diamond"></div>`,
}

const pageStyle = `@page {
  size: A4 landscape;
  margin: 1cm;
}
body {
  font-family: "Hiragino Kaku Gothic ProN", "Yu Gothic", Meiryo, sans-serif;
  margin: 0;
}
h1 {
  text-align: center;
  font-size: 28px;
  margin: 8px 0 16px;
}
table.exact-calendar {
  width: 100%;
  border-collapse: collapse;
  table-layout: fixed;
}
table.exact-calendar th {
  border: 1px solid #333;
  padding: 6px 0;
  font-size: 14px;
  background: #f0f0f0;
}
table.exact-calendar td {
  border: 1px solid #333;
  height: 72px;
  vertical-align: top;
  padding: 4px 6px;
  font-size: 16px;
  position: relative;
}
.circle {
  position: absolute;
  top: 2px;
  left: 2px;
  width: 34px;
  height: 34px;
  border: 3px solid #e53935;
  border-radius: 50%;
}
.triangle {
  position: absolute;
  top: 4px;
  left: 4px;
  width: 0;
  height: 0;
  border-left: 17px solid transparent;
  border-right: 17px solid transparent;
  border-bottom: 30px solid rgba(67, 160, 71, 0.6);
}
.cross {
  position: absolute;
  top: 0;
  left: 4px;
  font-size: 34px;
  font-weight: bold;
  color: #1e88e5;
}
.diamond {
  position: absolute;
  top: 6px;
  left: 6px;
  width: 26px;
  height: 26px;
  border: 3px solid #fb8c00;
  transform: rotate(45deg);
}`

// RenderHTML serializes the grid as a self-contained HTML document suitable
// for headless-browser PDF rasterization. Output depends only on the grid
// contents, so identical input yields identical markup.
func RenderHTML(grid *Grid) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	b.WriteString(pageStyle)
	b.WriteString("\n</style>\n</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>%d年%d月</h1>\n", grid.Year, grid.Month)

	b.WriteString(`<table class="exact-calendar">` + "\n<thead>\n<tr>")
	for _, label := range weekdayLabels {
		fmt.Fprintf(&b, "<th>%s</th>", label)
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, week := range grid.Weeks {
		b.WriteString("<tr>")
		for _, cell := range week {
			writeDayCell(&b, cell)
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n</body>\n</html>\n")
	return b.String()
}

// RenderMonth builds the month grid, resolves overlays and renders the
// document in one step.
func RenderMonth(year, month int, specs []Overlay) (string, error) {
	grid, err := BuildGrid(year, month)
	if err != nil {
		return "", err
	}
	return RenderHTML(ApplyOverlays(grid, specs)), nil
}

func writeDayCell(b *strings.Builder, cell DayCell) {
	if cell.Blank() {
		b.WriteString("<td></td>")
		return
	}

	fmt.Fprintf(b, `<td class="day">%d`, cell.Day)
	if marker, ok := overlayMarkup[cell.Overlay]; ok {
		b.WriteString(marker)
	}
	b.WriteString("</td>")
}
