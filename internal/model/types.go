// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Position is a roster slot.
type Position string

// Offense positions.
const (
	QB Position = "QB"
	HB Position = "HB"
	WR Position = "WR"
	TE Position = "TE"
	LT Position = "LT"
	LG Position = "LG"
	C  Position = "C"
	RG Position = "RG"
	RT Position = "RT"
)

// Defense positions.
const (
	LE   Position = "LE"
	DT   Position = "DT"
	RE   Position = "RE"
	LOLB Position = "LOLB"
	MLB  Position = "MLB"
	ROLB Position = "ROLB"
	CB   Position = "CB"
	FS   Position = "FS"
	SS   Position = "SS"
)

// Special teams positions.
const (
	K Position = "K"
	P Position = "P"
)

var (
	// OffensePositions lists offense slots in depth-chart order.
	OffensePositions = []Position{QB, HB, WR, TE, LT, LG, C, RG, RT}
	// DefensePositions lists defense slots in depth-chart order.
	DefensePositions = []Position{LE, DT, RE, LOLB, MLB, ROLB, CB, FS, SS}
	// SpecialTeamsPositions lists special teams slots.
	SpecialTeamsPositions = []Position{K, P}
)

// AllPositions returns every position: offense, defense, then special teams.
func AllPositions() []Position {
	out := make([]Position, 0, len(OffensePositions)+len(DefensePositions)+len(SpecialTeamsPositions))
	out = append(out, OffensePositions...)
	out = append(out, DefensePositions...)
	out = append(out, SpecialTeamsPositions...)
	return out
}

// ParsePosition resolves a position label, ignoring case and surrounding space.
func ParsePosition(value string) (Position, error) {
	want := strings.ToUpper(strings.TrimSpace(value))
	for _, pos := range AllPositions() {
		if string(pos) == want {
			return pos, nil
		}
	}
	return "", fmt.Errorf("unknown position %q", value)
}

// Valid reports whether p is one of the 20 roster positions.
func (p Position) Valid() bool {
	for _, pos := range AllPositions() {
		if pos == p {
			return true
		}
	}
	return false
}

// Group is a squad grouping of positions.
type Group int

const (
	Offense Group = iota
	Defense
	SpecialTeams
)

// Groups lists the squad groupings in report order.
var Groups = []Group{Offense, Defense, SpecialTeams}

// Positions returns the positions belonging to the group.
func (g Group) Positions() []Position {
	switch g {
	case Offense:
		return OffensePositions
	case Defense:
		return DefensePositions
	case SpecialTeams:
		return SpecialTeamsPositions
	default:
		return nil
	}
}

// Label returns the display name of the group.
func (g Group) Label() string {
	switch g {
	case Offense:
		return "Offense"
	case Defense:
		return "Defense"
	case SpecialTeams:
		return "Special Teams"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// YearTag is a player's class year, including redshirt variants.
type YearTag string

const (
	YearRecruit           YearTag = "RC"
	YearFreshman          YearTag = "FR"
	YearSophomore         YearTag = "SO"
	YearJunior            YearTag = "JR"
	YearSenior            YearTag = "SR"
	YearFreshmanRedshirt  YearTag = "FR(RS)"
	YearSophomoreRedshirt YearTag = "SO(RS)"
	YearJuniorRedshirt    YearTag = "JR(RS)"
	YearSeniorRedshirt    YearTag = "SR(RS)"
)

// YearOptions lists the selectable class years in menu order.
var YearOptions = []YearTag{
	YearRecruit,
	YearFreshman,
	YearSophomore,
	YearJunior,
	YearSenior,
	YearFreshmanRedshirt,
	YearSophomoreRedshirt,
	YearJuniorRedshirt,
	YearSeniorRedshirt,
}

// YearBucket is a class-year report column.
type YearBucket string

const (
	BucketRecruit   YearBucket = "Recruit"
	BucketFreshman  YearBucket = "Freshman"
	BucketSophomore YearBucket = "Sophomore"
	BucketJunior    YearBucket = "Junior"
	BucketSenior    YearBucket = "Senior"
)

// YearBuckets lists the report buckets in column order.
var YearBuckets = []YearBucket{BucketRecruit, BucketFreshman, BucketSophomore, BucketJunior, BucketSenior}

// Bucket maps the class year onto its report bucket. Unknown tags return "".
func (y YearTag) Bucket() YearBucket {
	switch y {
	case YearRecruit:
		return BucketRecruit
	case YearFreshman, YearFreshmanRedshirt:
		return BucketFreshman
	case YearSophomore, YearSophomoreRedshirt:
		return BucketSophomore
	case YearJunior, YearJuniorRedshirt:
		return BucketJunior
	case YearSenior, YearSeniorRedshirt:
		return BucketSenior
	default:
		return ""
	}
}

// ParseYearTag validates a class year against YearOptions.
func ParseYearTag(value string) (YearTag, error) {
	want := strings.ToUpper(strings.TrimSpace(value))
	for _, y := range YearOptions {
		if string(y) == want {
			return y, nil
		}
	}
	return "", fmt.Errorf("unknown class year %q", value)
}

// TraitTag is a player's development trait.
type TraitTag string

const (
	TraitGem    TraitTag = "Gem"
	TraitNormal TraitTag = "Normal"
	TraitImpact TraitTag = "Impact"
	TraitStar   TraitTag = "Star"
	TraitElite  TraitTag = "Elite"
)

// TraitOptions lists the selectable development traits in menu order.
var TraitOptions = []TraitTag{TraitGem, TraitNormal, TraitImpact, TraitStar, TraitElite}

// ReportedTraits lists the traits tallied by the development report.
// Gem is selectable but never counted.
var ReportedTraits = []TraitTag{TraitNormal, TraitImpact, TraitStar, TraitElite}

// ParseTraitTag validates a development trait against TraitOptions.
func ParseTraitTag(value string) (TraitTag, error) {
	want := strings.TrimSpace(value)
	for _, t := range TraitOptions {
		if strings.EqualFold(string(t), want) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown development trait %q", value)
}

// Player is a single roster entry. It has no identity beyond its index
// within a position's list.
type Player struct {
	Name             string
	ClassYear        YearTag
	DevelopmentTrait TraitTag
}

// NewPlayer returns a player with default field values.
func NewPlayer() Player {
	return Player{
		Name:             "",
		ClassYear:        YearFreshman,
		DevelopmentTrait: TraitNormal,
	}
}

// Field names an editable player field.
type Field string

const (
	FieldName             Field = "name"
	FieldClassYear        Field = "classYear"
	FieldDevelopmentTrait Field = "developmentTrait"
)

// ParseField resolves a field key. "year" and "development" are accepted as
// aliases.
func ParseField(value string) (Field, bool) {
	switch strings.TrimSpace(value) {
	case string(FieldName):
		return FieldName, true
	case string(FieldClassYear), "year":
		return FieldClassYear, true
	case string(FieldDevelopmentTrait), "development":
		return FieldDevelopmentTrait, true
	default:
		return "", false
	}
}

// View names a presentation view.
type View string

const (
	ViewTracker     View = "tracker"
	ViewSummary     View = "summary"
	ViewTotals      View = "totals"
	ViewDevelopment View = "development"
	ViewOffense     View = "offenseView"
	ViewDefense     View = "defenseView"
)

// Views lists the views in tab order.
var Views = []View{ViewTracker, ViewSummary, ViewTotals, ViewDevelopment, ViewOffense, ViewDefense}

// Title returns the tab label for the view.
func (v View) Title() string {
	switch v {
	case ViewTracker:
		return "Player Tracker"
	case ViewSummary:
		return "Class Year Summary"
	case ViewTotals:
		return "Player Totals"
	case ViewDevelopment:
		return "Development Traits"
	case ViewOffense:
		return "Team View Offense"
	case ViewDefense:
		return "Team View Defense"
	default:
		return string(v)
	}
}

// ParseView resolves a view name. "offense" and "defense" are accepted as
// aliases.
func ParseView(value string) (View, error) {
	v := strings.TrimSpace(value)
	switch v {
	case "offense":
		return ViewOffense, nil
	case "defense":
		return ViewDefense, nil
	}
	for _, view := range Views {
		if string(view) == v {
			return view, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", value)
}
