package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/gridiron/internal/model"
	"github.com/verte-zerg/gridiron/internal/session"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(session.New(nil, nil, model.ViewTracker), nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestAddEditAndCycle(t *testing.T) {
	m := newTestModel(t)

	press(m, "a")
	if n := m.sess.Roster().Len(model.QB); n != 1 {
		t.Fatalf("expected 1 QB, got %d", n)
	}
	row, _ := m.selectedRow()
	if row != (trackerRow{pos: model.QB, index: 0}) {
		t.Fatalf("expected cursor on new player, got %+v", row)
	}

	press(m, "enter", "S", "a", "m", "enter")
	press(m, "y", "y", "t", "t", "t")
	p, err := m.sess.Roster().Player(model.QB, 0)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if p.Name != "Sam" || p.ClassYear != model.YearJunior || p.DevelopmentTrait != model.TraitElite {
		t.Fatalf("unexpected player: %+v", p)
	}

	press(m, "Y", "T")
	p, _ = m.sess.Roster().Player(model.QB, 0)
	if p.ClassYear != model.YearSophomore || p.DevelopmentTrait != model.TraitStar {
		t.Fatalf("unexpected player after reverse cycle: %+v", p)
	}
	if !strings.Contains(m.View(), "Sam") {
		t.Fatalf("expected name in tracker view")
	}
}

func TestEscapeCancelsEdit(t *testing.T) {
	m := newTestModel(t)
	press(m, "a", "enter", "Z", "esc")
	p, _ := m.sess.Roster().Player(model.QB, 0)
	if p.Name != "" {
		t.Fatalf("expected name unchanged, got %q", p.Name)
	}
	if m.editing {
		t.Fatalf("expected edit mode closed")
	}
}

func TestRemoveKeepsCursorInPosition(t *testing.T) {
	m := newTestModel(t)
	press(m, "a", "a", "a")
	press(m, "x")
	if n := m.sess.Roster().Len(model.QB); n != 2 {
		t.Fatalf("expected 2 QBs, got %d", n)
	}
	row, _ := m.selectedRow()
	if row != (trackerRow{pos: model.QB, index: 1}) {
		t.Fatalf("expected cursor on last QB, got %+v", row)
	}
}

func TestRemoveOnHeaderIsIgnored(t *testing.T) {
	m := newTestModel(t)
	press(m, "x")
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
}

func TestTabsRenderViews(t *testing.T) {
	m := newTestModel(t)
	press(m, "a", "3")
	if m.sess.View() != model.ViewTotals {
		t.Fatalf("expected totals view, got %s", m.sess.View())
	}
	if !strings.Contains(m.View(), "Team Total") {
		t.Fatalf("expected totals in view:\n%s", m.View())
	}
	press(m, "right", "right")
	if m.sess.View() != model.ViewOffense {
		t.Fatalf("expected offense view, got %s", m.sess.View())
	}
	if !strings.Contains(m.View(), "Offense Depth Chart") {
		t.Fatalf("expected depth chart in view")
	}
	press(m, "right", "right")
	if m.sess.View() != model.ViewTracker {
		t.Fatalf("expected wraparound to tracker, got %s", m.sess.View())
	}
}

func TestVisibleWindow(t *testing.T) {
	start, end := visibleWindow(50, 30, 10, 0)
	if start != 21 || end != 31 {
		t.Fatalf("expected [21,31), got [%d,%d)", start, end)
	}
	start, end = visibleWindow(50, 5, 10, 21)
	if start != 5 || end != 15 {
		t.Fatalf("expected [5,15), got [%d,%d)", start, end)
	}
	start, end = visibleWindow(5, 4, 10, 0)
	if start != 0 || end != 5 {
		t.Fatalf("expected [0,5), got [%d,%d)", start, end)
	}
}

func TestCycleWraps(t *testing.T) {
	if got := cycleYear(model.YearSeniorRedshirt, 1); got != model.YearRecruit {
		t.Fatalf("expected wrap to RC, got %s", got)
	}
	if got := cycleTrait(model.TraitGem, -1); got != model.TraitElite {
		t.Fatalf("expected wrap to Elite, got %s", got)
	}
}
