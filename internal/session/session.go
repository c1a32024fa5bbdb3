// Package session connects presentation events to the roster store and
// the report renderers.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/gridiron/internal/journal"
	"github.com/verte-zerg/gridiron/internal/logger"
	"github.com/verte-zerg/gridiron/internal/model"
	"github.com/verte-zerg/gridiron/internal/report"
	"github.com/verte-zerg/gridiron/internal/roster"
)

// ErrUnknownView is returned when selecting a view outside model.Views.
var ErrUnknownView = errors.New("unknown view")

// Event is an input event from the presentation layer.
type Event interface {
	isEvent()
}

// AddPlayer appends a default player to Position.
type AddPlayer struct {
	Position model.Position
}

// RemovePlayer removes the player at Index from Position.
type RemovePlayer struct {
	Position model.Position
	Index    int
}

// EditField sets one field of the player at Index.
type EditField struct {
	Position model.Position
	Index    int
	Field    model.Field
	Value    string
}

// SelectView switches the active view.
type SelectView struct {
	View model.View
}

func (AddPlayer) isEvent()    {}
func (RemovePlayer) isEvent() {}
func (EditField) isEvent()    {}
func (SelectView) isEvent()   {}

// Session is the single-threaded state of one tracker run.
type Session struct {
	store   *roster.Store
	view    model.View
	log     *logger.Logger
	journal *journal.Journal
}

// New creates a session on an empty roster. j may be nil.
func New(log *logger.Logger, j *journal.Journal, view model.View) *Session {
	if log == nil {
		log = logger.Nop()
	}
	if view == "" {
		view = model.ViewTracker
	}
	return &Session{
		store:   roster.NewStore(),
		view:    view,
		log:     log,
		journal: j,
	}
}

// Roster returns the current snapshot.
func (s *Session) Roster() roster.Roster {
	return s.store.Snapshot()
}

// View returns the active view.
func (s *Session) View() model.View {
	return s.view
}

// Apply runs one event. Errors leave the roster unchanged.
func (s *Session) Apply(ctx context.Context, ev Event) error {
	entry := journal.Entry{Index: -1}
	var err error
	switch e := ev.(type) {
	case AddPlayer:
		entry.Kind = journal.KindAdd
		entry.Position = string(e.Position)
		err = s.store.AddPlayer(e.Position)
	case RemovePlayer:
		entry.Kind = journal.KindRemove
		entry.Position = string(e.Position)
		entry.Index = e.Index
		err = s.store.RemovePlayer(e.Position, e.Index)
	case EditField:
		entry.Kind = journal.KindEdit
		entry.Position = string(e.Position)
		entry.Index = e.Index
		entry.Field = string(e.Field)
		entry.Value = e.Value
		err = s.store.UpdatePlayerField(e.Position, e.Index, e.Field, e.Value)
	case SelectView:
		entry.Kind = journal.KindView
		entry.Value = string(e.View)
		err = s.selectView(e.View)
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}

	if err != nil {
		entry.Err = err.Error()
		s.log.Warn("event rejected", "kind", entry.Kind, "position", entry.Position, "index", entry.Index, "error", err)
	} else {
		s.log.Debug("event applied", "kind", entry.Kind, "position", entry.Position, "index", entry.Index, "field", entry.Field)
	}
	s.record(ctx, entry)
	return err
}

func (s *Session) selectView(v model.View) error {
	for _, known := range model.Views {
		if v == known {
			s.view = v
			return nil
		}
	}
	return fmt.Errorf("select %q: %w", v, ErrUnknownView)
}

func (s *Session) record(ctx context.Context, entry journal.Entry) {
	if s.journal == nil {
		return
	}
	if _, err := s.journal.Record(ctx, entry); err != nil {
		s.log.Error("failed to journal event", "kind", entry.Kind, "error", err)
	}
}

// LastActivity describes the most recent journaled event, or "" if none.
func (s *Session) LastActivity(ctx context.Context) string {
	if s.journal == nil {
		return ""
	}
	entries, err := s.journal.Recent(ctx, 1)
	if err != nil {
		s.log.Error("failed to read journal", "error", err)
		return ""
	}
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Describe()
}

// Render materializes the active view as text.
func (s *Session) Render() (string, error) {
	return RenderView(s.store.Snapshot(), s.view)
}

// RenderView materializes view v for roster r.
func RenderView(r roster.Roster, v model.View) (string, error) {
	var b strings.Builder
	var err error
	switch v {
	case model.ViewTracker:
		err = report.RenderTracker(&b, r)
	case model.ViewSummary:
		err = report.RenderYearSummary(&b, r)
	case model.ViewTotals:
		err = report.RenderTotals(&b, r)
	case model.ViewDevelopment:
		err = report.RenderDevelopmentSummary(&b, r)
	case model.ViewOffense:
		err = report.RenderDepthChart(&b, r, model.Offense)
	case model.ViewDefense:
		err = report.RenderDepthChart(&b, r, model.Defense)
	default:
		return "", fmt.Errorf("render %q: %w", v, ErrUnknownView)
	}
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
