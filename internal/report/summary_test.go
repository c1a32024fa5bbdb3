package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/gridiron/internal/model"
	"github.com/verte-zerg/gridiron/internal/roster"
)

type seedPlayer struct {
	pos   model.Position
	year  model.YearTag
	trait model.TraitTag
}

func buildRoster(t *testing.T, seeds []seedPlayer) roster.Roster {
	t.Helper()
	st := roster.NewStore()
	for _, s := range seeds {
		if err := st.AddPlayer(s.pos); err != nil {
			t.Fatalf("add %s: %v", s.pos, err)
		}
		idx := st.Snapshot().Len(s.pos) - 1
		if err := st.UpdatePlayerField(s.pos, idx, model.FieldClassYear, string(s.year)); err != nil {
			t.Fatalf("year: %v", err)
		}
		if err := st.UpdatePlayerField(s.pos, idx, model.FieldDevelopmentTrait, string(s.trait)); err != nil {
			t.Fatalf("trait: %v", err)
		}
	}
	return st.Snapshot()
}

func TestSingleRedshirtFreshmanStar(t *testing.T) {
	r := buildRoster(t, []seedPlayer{{model.QB, model.YearFreshmanRedshirt, model.TraitStar}})

	years := SummarizeByYear(r, model.OffensePositions)
	wantYear := YearSummary{Freshman: 1, TotalPlayers: 1}
	if diff := cmp.Diff(wantYear, years[model.QB]); diff != "" {
		t.Fatalf("unexpected QB year summary (-want +got):\n%s", diff)
	}

	dev := SummarizeByDevelopment(r, model.OffensePositions)
	wantDev := DevelopmentSummary{Star: 1}
	if diff := cmp.Diff(wantDev, dev[model.QB]); diff != "" {
		t.Fatalf("unexpected QB development summary (-want +got):\n%s", diff)
	}
}

func TestYearBucketsPartitionRoster(t *testing.T) {
	var seeds []seedPlayer
	for i, y := range model.YearOptions {
		pos := model.AllPositions()[i%3]
		seeds = append(seeds, seedPlayer{pos, y, model.TraitNormal})
		seeds = append(seeds, seedPlayer{model.MLB, y, model.TraitGem})
	}
	r := buildRoster(t, seeds)

	summary := SummarizeByYear(r, model.AllPositions())
	if len(summary) != 20 {
		t.Fatalf("expected 20 positions, got %d", len(summary))
	}
	for pos, s := range summary {
		sum := s.Recruit + s.Freshman + s.Sophomore + s.Junior + s.Senior
		if sum != s.TotalPlayers {
			t.Fatalf("%s: buckets sum to %d, total is %d", pos, sum, s.TotalPlayers)
		}
		if s.TotalPlayers != r.Len(pos) {
			t.Fatalf("%s: total %d, roster has %d", pos, s.TotalPlayers, r.Len(pos))
		}
	}
	mlb := summary[model.MLB]
	want := YearSummary{Recruit: 1, Freshman: 2, Sophomore: 2, Junior: 2, Senior: 2, TotalPlayers: 9}
	if diff := cmp.Diff(want, mlb); diff != "" {
		t.Fatalf("unexpected MLB summary (-want +got):\n%s", diff)
	}
}

func TestDevelopmentSkipsGem(t *testing.T) {
	r := buildRoster(t, []seedPlayer{
		{model.CB, model.YearSenior, model.TraitGem},
		{model.CB, model.YearSenior, model.TraitElite},
		{model.CB, model.YearJunior, model.TraitImpact},
		{model.CB, model.YearJunior, model.TraitNormal},
	})
	got := SummarizeByDevelopment(r, model.DefensePositions)[model.CB]
	want := DevelopmentSummary{Normal: 1, Impact: 1, Elite: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected CB summary (-want +got):\n%s", diff)
	}
	if got.Count(model.TraitGem) != 0 {
		t.Fatalf("gem must never be counted")
	}
}

func TestTotalsAddUp(t *testing.T) {
	r := buildRoster(t, []seedPlayer{
		{model.QB, model.YearSenior, model.TraitStar},
		{model.WR, model.YearRecruit, model.TraitNormal},
		{model.SS, model.YearJunior, model.TraitImpact},
		{model.P, model.YearSophomore, model.TraitNormal},
		{model.K, model.YearFreshman, model.TraitNormal},
	})
	off := TotalCount(r, model.OffensePositions)
	def := TotalCount(r, model.DefensePositions)
	st := TotalCount(r, model.SpecialTeamsPositions)
	if off+def+st != TotalCount(r, model.AllPositions()) {
		t.Fatalf("squad totals %d+%d+%d do not match all positions", off, def, st)
	}
	got := BuildTotals(r)
	want := Totals{Offense: 2, Defense: 1, SpecialTeams: 2, Team: 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected totals (-want +got):\n%s", diff)
	}
}

func TestEmptyRosterIsAllZero(t *testing.T) {
	r := roster.New()
	for pos, s := range SummarizeByYear(r, model.AllPositions()) {
		if s != (YearSummary{}) {
			t.Fatalf("%s: expected zero year summary, got %+v", pos, s)
		}
	}
	for pos, s := range SummarizeByDevelopment(r, model.AllPositions()) {
		if s != (DevelopmentSummary{}) {
			t.Fatalf("%s: expected zero development summary, got %+v", pos, s)
		}
	}
	if n := TotalCount(r, model.AllPositions()); n != 0 {
		t.Fatalf("expected 0 players, got %d", n)
	}
}
