package report

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/gridiron/internal/model"
	"github.com/verte-zerg/gridiron/internal/roster"
)

const (
	barChar     = '#'
	maxBarWidth = 40
)

// ClassBalance counts the whole roster per class-year bucket.
func ClassBalance(r roster.Roster) YearSummary {
	var team YearSummary
	for _, s := range SummarizeByYear(r, model.AllPositions()) {
		team.Recruit += s.Recruit
		team.Freshman += s.Freshman
		team.Sophomore += s.Sophomore
		team.Junior += s.Junior
		team.Senior += s.Senior
		team.TotalPlayers += s.TotalPlayers
	}
	return team
}

func classBalanceLines(team YearSummary) []string {
	peak := 0
	for _, b := range model.YearBuckets {
		if n := team.Count(b); n > peak {
			peak = n
		}
	}
	rows := make([][]string, 0, len(model.YearBuckets))
	for _, b := range model.YearBuckets {
		n := team.Count(b)
		rows = append(rows, []string{yearHeaders[b], strconv.Itoa(n), bar(n, peak, maxBarWidth)})
	}
	return formatTable(nil, rows, map[int]bool{1: true})
}

// bar scales value against peak. Non-zero values get at least one mark.
func bar(value, peak, width int) string {
	if value <= 0 || peak <= 0 || width <= 0 {
		return ""
	}
	n := value * width / peak
	if n < 1 {
		n = 1
	}
	return strings.Repeat(string(barChar), n)
}
