package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/gridiron/internal/model"
	"github.com/verte-zerg/gridiron/internal/roster"
)

const (
	noPlayersLabel = "No Players"
	unnamedLabel   = "(unnamed)"
)

var yearHeaders = map[model.YearBucket]string{
	model.BucketRecruit:   "Recruits",
	model.BucketFreshman:  "Freshmen",
	model.BucketSophomore: "Sophomores",
	model.BucketJunior:    "Juniors",
	model.BucketSenior:    "Seniors",
}

// RenderYearSummary writes the class-year table for every squad.
func RenderYearSummary(w io.Writer, r roster.Roster) error {
	lines := []string{"Class Year Summary"}
	for _, g := range model.Groups {
		positions := g.Positions()
		summary := SummarizeByYear(r, positions)

		headers := []string{"Pos"}
		for _, b := range model.YearBuckets {
			headers = append(headers, yearHeaders[b])
		}
		headers = append(headers, "Total")

		rows := make([][]string, 0, len(positions))
		for _, pos := range positions {
			s := summary[pos]
			row := []string{string(pos)}
			for _, b := range model.YearBuckets {
				row = append(row, strconv.Itoa(s.Count(b)))
			}
			row = append(row, strconv.Itoa(s.TotalPlayers))
			rows = append(rows, row)
		}
		lines = append(lines, "", g.Label())
		lines = append(lines, formatTable(headers, rows, numericCols(len(headers)))...)
	}
	lines = append(lines, "", "Team Class Balance")
	lines = append(lines, classBalanceLines(ClassBalance(r))...)
	return writeLines(w, lines)
}

// RenderDevelopmentSummary writes the development-trait table for every squad.
func RenderDevelopmentSummary(w io.Writer, r roster.Roster) error {
	lines := []string{"Development Trait Totals"}
	for _, g := range model.Groups {
		positions := g.Positions()
		summary := SummarizeByDevelopment(r, positions)

		headers := []string{"Pos"}
		for _, t := range model.ReportedTraits {
			headers = append(headers, string(t))
		}
		rows := make([][]string, 0, len(positions))
		for _, pos := range positions {
			s := summary[pos]
			row := []string{string(pos)}
			for _, t := range model.ReportedTraits {
				row = append(row, strconv.Itoa(s.Count(t)))
			}
			rows = append(rows, row)
		}
		lines = append(lines, "", g.Label())
		lines = append(lines, formatTable(headers, rows, numericCols(len(headers)))...)
	}
	return writeLines(w, lines)
}

// RenderTotals writes the squad and team player counts.
func RenderTotals(w io.Writer, r roster.Roster) error {
	t := BuildTotals(r)
	rows := [][]string{
		{model.Offense.Label(), strconv.Itoa(t.Offense)},
		{model.Defense.Label(), strconv.Itoa(t.Defense)},
		{model.SpecialTeams.Label(), strconv.Itoa(t.SpecialTeams)},
		{"Team Total", strconv.Itoa(t.Team)},
	}
	lines := []string{"Total Player Count", ""}
	lines = append(lines, formatTable([]string{"Squad", "Players"}, rows, map[int]bool{1: true})...)
	return writeLines(w, lines)
}

// RenderDepthChart writes every position of the group with its players.
func RenderDepthChart(w io.Writer, r roster.Roster, g model.Group) error {
	lines := []string{fmt.Sprintf("%s Depth Chart", g.Label())}
	for _, pos := range g.Positions() {
		lines = append(lines, "", string(pos))
		players := r.Players(pos)
		if len(players) == 0 {
			lines = append(lines, "  "+noPlayersLabel)
			continue
		}
		for _, p := range players {
			lines = append(lines, "  "+PlayerLine(p))
		}
	}
	return writeLines(w, lines)
}

// RenderTracker writes the full roster listing with player indices.
func RenderTracker(w io.Writer, r roster.Roster) error {
	lines := []string{"Player Tracker"}
	for _, pos := range model.AllPositions() {
		players := r.Players(pos)
		lines = append(lines, "", fmt.Sprintf("%s (%d)", pos, len(players)))
		if len(players) == 0 {
			lines = append(lines, "  "+noPlayersLabel)
			continue
		}
		rows := make([][]string, 0, len(players))
		for i, p := range players {
			rows = append(rows, []string{strconv.Itoa(i + 1), DisplayName(p.Name), string(p.ClassYear), string(p.DevelopmentTrait)})
		}
		for _, line := range formatTable([]string{"#", "Name", "Year", "Development"}, rows, map[int]bool{0: true}) {
			lines = append(lines, "  "+line)
		}
	}
	return writeLines(w, lines)
}

// RenderOptions writes the position groups and the selectable tags.
func RenderOptions(w io.Writer) error {
	rows := make([][]string, 0, len(model.Groups))
	for _, g := range model.Groups {
		names := make([]string, 0, len(g.Positions()))
		for _, pos := range g.Positions() {
			names = append(names, string(pos))
		}
		rows = append(rows, []string{g.Label(), strings.Join(names, " ")})
	}
	years := make([]string, 0, len(model.YearOptions))
	for _, y := range model.YearOptions {
		years = append(years, string(y))
	}
	traits := make([]string, 0, len(model.TraitOptions))
	for _, t := range model.TraitOptions {
		traits = append(traits, string(t))
	}
	lines := formatTable([]string{"Group", "Positions"}, rows, nil)
	lines = append(lines, "")
	lines = append(lines, formatTable([]string{"Option", "Values"}, [][]string{
		{"Class year", strings.Join(years, " ")},
		{"Development", strings.Join(traits, " ")},
	}, nil)...)
	return writeLines(w, lines)
}

// PlayerLine formats a player as "name - year - trait".
func PlayerLine(p model.Player) string {
	return fmt.Sprintf("%s - %s - %s", DisplayName(p.Name), p.ClassYear, p.DevelopmentTrait)
}

// DisplayName substitutes a placeholder for blank names.
func DisplayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return unnamedLabel
	}
	return name
}

func numericCols(count int) map[int]bool {
	cols := make(map[int]bool, count)
	for i := 1; i < count; i++ {
		cols[i] = true
	}
	return cols
}

func writeLines(w io.Writer, lines []string) error {
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
