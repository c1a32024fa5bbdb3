package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/gridiron/internal/model"
	"github.com/verte-zerg/gridiron/internal/report"
	"github.com/verte-zerg/gridiron/internal/roster"
)

// trackerRow is one selectable line of the tracker. index is -1 for the
// position header.
type trackerRow struct {
	pos   model.Position
	index int
}

func buildTrackerRows(r roster.Roster) []trackerRow {
	rows := make([]trackerRow, 0, len(model.AllPositions()))
	for _, pos := range model.AllPositions() {
		rows = append(rows, trackerRow{pos: pos, index: -1})
		for i := 0; i < r.Len(pos); i++ {
			rows = append(rows, trackerRow{pos: pos, index: i})
		}
	}
	return rows
}

func rowIndex(rows []trackerRow, target trackerRow) int {
	for i, row := range rows {
		if row == target {
			return i
		}
	}
	return -1
}

func renderTrackerLines(r roster.Roster, rows []trackerRow, cursor int) []string {
	nameWidth := runewidth.StringWidth(report.DisplayName(""))
	for _, row := range rows {
		if row.index < 0 {
			continue
		}
		p, err := r.Player(row.pos, row.index)
		if err != nil {
			continue
		}
		if w := runewidth.StringWidth(report.DisplayName(p.Name)); w > nameWidth {
			nameWidth = w
		}
	}

	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		var line string
		if row.index < 0 {
			line = positionStyle.Render(fmt.Sprintf("%s (%d)", row.pos, r.Len(row.pos)))
		} else {
			p, err := r.Player(row.pos, row.index)
			if err != nil {
				continue
			}
			name := report.DisplayName(p.Name)
			pad := strings.Repeat(" ", nameWidth-runewidth.StringWidth(name))
			line = fmt.Sprintf("  %2d. %s%s  %-6s  %s", row.index+1, name, pad, p.ClassYear, p.DevelopmentTrait)
		}
		if i == cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return lines
}

// visibleWindow returns the [start, end) range of lines to show so that the
// cursor stays on screen.
func visibleWindow(total, cursor, height, offset int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	if offset+height > total {
		offset = total - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset, offset + height
}

func cycleYear(current model.YearTag, delta int) model.YearTag {
	return model.YearOptions[cycleIndex(indexOfYear(current), delta, len(model.YearOptions))]
}

func cycleTrait(current model.TraitTag, delta int) model.TraitTag {
	return model.TraitOptions[cycleIndex(indexOfTrait(current), delta, len(model.TraitOptions))]
}

func cycleIndex(idx, delta, count int) int {
	next := (idx + delta) % count
	if next < 0 {
		next += count
	}
	return next
}

func indexOfYear(y model.YearTag) int {
	for i, opt := range model.YearOptions {
		if opt == y {
			return i
		}
	}
	return 0
}

func indexOfTrait(t model.TraitTag) int {
	for i, opt := range model.TraitOptions {
		if opt == t {
			return i
		}
	}
	return 0
}
