// Package report derives roster summaries and renders them as text.
package report

import (
	"github.com/verte-zerg/gridiron/internal/model"
	"github.com/verte-zerg/gridiron/internal/roster"
)

// YearSummary counts a position's players per class-year bucket.
type YearSummary struct {
	Recruit      int
	Freshman     int
	Sophomore    int
	Junior       int
	Senior       int
	TotalPlayers int
}

// Count returns the count for a bucket.
func (s YearSummary) Count(b model.YearBucket) int {
	switch b {
	case model.BucketRecruit:
		return s.Recruit
	case model.BucketFreshman:
		return s.Freshman
	case model.BucketSophomore:
		return s.Sophomore
	case model.BucketJunior:
		return s.Junior
	case model.BucketSenior:
		return s.Senior
	default:
		return 0
	}
}

// DevelopmentSummary counts a position's players per reported trait.
type DevelopmentSummary struct {
	Normal int
	Impact int
	Star   int
	Elite  int
}

// Count returns the count for a trait. Gem is never counted.
func (s DevelopmentSummary) Count(t model.TraitTag) int {
	switch t {
	case model.TraitNormal:
		return s.Normal
	case model.TraitImpact:
		return s.Impact
	case model.TraitStar:
		return s.Star
	case model.TraitElite:
		return s.Elite
	default:
		return 0
	}
}

// Totals holds player counts per squad and for the whole team.
type Totals struct {
	Offense      int
	Defense      int
	SpecialTeams int
	Team         int
}

// SummarizeByYear counts players per class-year bucket for each position.
func SummarizeByYear(r roster.Roster, positions []model.Position) map[model.Position]YearSummary {
	out := make(map[model.Position]YearSummary, len(positions))
	for _, pos := range positions {
		players := r.Players(pos)
		var s YearSummary
		for _, p := range players {
			switch p.ClassYear.Bucket() {
			case model.BucketRecruit:
				s.Recruit++
			case model.BucketFreshman:
				s.Freshman++
			case model.BucketSophomore:
				s.Sophomore++
			case model.BucketJunior:
				s.Junior++
			case model.BucketSenior:
				s.Senior++
			}
		}
		s.TotalPlayers = len(players)
		out[pos] = s
	}
	return out
}

// SummarizeByDevelopment counts players per reported development trait for
// each position.
func SummarizeByDevelopment(r roster.Roster, positions []model.Position) map[model.Position]DevelopmentSummary {
	out := make(map[model.Position]DevelopmentSummary, len(positions))
	for _, pos := range positions {
		var s DevelopmentSummary
		for _, p := range r.Players(pos) {
			switch p.DevelopmentTrait {
			case model.TraitNormal:
				s.Normal++
			case model.TraitImpact:
				s.Impact++
			case model.TraitStar:
				s.Star++
			case model.TraitElite:
				s.Elite++
			}
		}
		out[pos] = s
	}
	return out
}

// TotalCount sums the number of players across positions.
func TotalCount(r roster.Roster, positions []model.Position) int {
	total := 0
	for _, pos := range positions {
		total += r.Len(pos)
	}
	return total
}

// BuildTotals counts players per squad. Team is the sum of the three squads.
func BuildTotals(r roster.Roster) Totals {
	t := Totals{
		Offense:      TotalCount(r, model.OffensePositions),
		Defense:      TotalCount(r, model.DefensePositions),
		SpecialTeams: TotalCount(r, model.SpecialTeamsPositions),
	}
	t.Team = t.Offense + t.Defense + t.SpecialTeams
	return t
}
