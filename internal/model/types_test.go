package model

import "testing"

func TestAllPositionsCoversGroups(t *testing.T) {
	all := AllPositions()
	if len(all) != 20 {
		t.Fatalf("expected 20 positions, got %d", len(all))
	}
	seen := map[Position]bool{}
	for _, g := range Groups {
		for _, p := range g.Positions() {
			if seen[p] {
				t.Fatalf("position %s appears in more than one group", p)
			}
			seen[p] = true
		}
	}
	if len(seen) != len(all) {
		t.Fatalf("groups cover %d positions, want %d", len(seen), len(all))
	}
	if all[0] != QB || all[len(all)-1] != P {
		t.Fatalf("unexpected order: %v", all)
	}
}

func TestYearBucketMapping(t *testing.T) {
	cases := map[YearTag]YearBucket{
		YearRecruit:           BucketRecruit,
		YearFreshman:          BucketFreshman,
		YearFreshmanRedshirt:  BucketFreshman,
		YearSophomore:         BucketSophomore,
		YearSophomoreRedshirt: BucketSophomore,
		YearJunior:            BucketJunior,
		YearJuniorRedshirt:    BucketJunior,
		YearSenior:            BucketSenior,
		YearSeniorRedshirt:    BucketSenior,
	}
	if len(cases) != len(YearOptions) {
		t.Fatalf("expected a bucket for every year option")
	}
	for tag, want := range cases {
		if got := tag.Bucket(); got != want {
			t.Fatalf("%s: expected %s, got %s", tag, want, got)
		}
	}
	if got := YearTag("GR").Bucket(); got != "" {
		t.Fatalf("expected empty bucket for unknown tag, got %q", got)
	}
}

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer()
	if p.Name != "" || p.ClassYear != YearFreshman || p.DevelopmentTrait != TraitNormal {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestParseHelpers(t *testing.T) {
	if pos, err := ParsePosition(" lolb "); err != nil || pos != LOLB {
		t.Fatalf("expected LOLB, got %q (%v)", pos, err)
	}
	if _, err := ParsePosition("KR"); err == nil {
		t.Fatalf("expected error for unknown position")
	}
	if y, err := ParseYearTag("so(rs)"); err != nil || y != YearSophomoreRedshirt {
		t.Fatalf("expected SO(RS), got %q (%v)", y, err)
	}
	if tr, err := ParseTraitTag("elite"); err != nil || tr != TraitElite {
		t.Fatalf("expected Elite, got %q (%v)", tr, err)
	}
	if f, ok := ParseField("year"); !ok || f != FieldClassYear {
		t.Fatalf("expected year alias to resolve, got %q", f)
	}
	if _, ok := ParseField("number"); ok {
		t.Fatalf("expected unknown field to fail")
	}
	if v, err := ParseView("offense"); err != nil || v != ViewOffense {
		t.Fatalf("expected offense alias, got %q (%v)", v, err)
	}
}
