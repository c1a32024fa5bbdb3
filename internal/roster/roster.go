// Package roster holds the in-memory roster and its mutations.
package roster

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/gridiron/internal/model"
)

var (
	// ErrIndexOutOfRange is returned when a player index is outside a position's list.
	ErrIndexOutOfRange = errors.New("player index out of range")
	// ErrUnknownField is returned when a field key is not name, classYear or developmentTrait.
	ErrUnknownField = errors.New("unknown player field")
	// ErrUnknownPosition is returned for positions outside the 20 roster slots.
	ErrUnknownPosition = errors.New("unknown position")
	// ErrInvalidValue is returned when a class year or trait is not a selectable option.
	ErrInvalidValue = errors.New("invalid field value")
)

// Roster is an immutable snapshot of players keyed by position.
// Values returned by Store are never modified afterwards.
type Roster struct {
	players map[model.Position][]model.Player
}

// New returns a roster with an empty list for every position.
func New() Roster {
	players := make(map[model.Position][]model.Player, len(model.AllPositions()))
	for _, pos := range model.AllPositions() {
		players[pos] = nil
	}
	return Roster{players: players}
}

// Players returns a copy of the players at pos in order.
func (r Roster) Players(pos model.Position) []model.Player {
	list := r.players[pos]
	out := make([]model.Player, len(list))
	copy(out, list)
	return out
}

// Len returns the number of players at pos.
func (r Roster) Len(pos model.Position) int {
	return len(r.players[pos])
}

// Player returns the player at index within pos.
func (r Roster) Player(pos model.Position, index int) (model.Player, error) {
	list := r.players[pos]
	if index < 0 || index >= len(list) {
		return model.Player{}, fmt.Errorf("%s[%d]: %w", pos, index, ErrIndexOutOfRange)
	}
	return list[index], nil
}

// withPosition returns a new roster sharing every list except pos.
func (r Roster) withPosition(pos model.Position, list []model.Player) Roster {
	next := make(map[model.Position][]model.Player, len(r.players))
	for k, v := range r.players {
		next[k] = v
	}
	next[pos] = list
	return Roster{players: next}
}

// Store owns the current roster snapshot. Each mutation replaces the
// snapshot, so readers holding an earlier Roster never see partial updates.
type Store struct {
	current Roster
}

// NewStore returns a store holding an empty roster.
func NewStore() *Store {
	return &Store{current: New()}
}

// Snapshot returns the current roster.
func (s *Store) Snapshot() Roster {
	return s.current
}

// AddPlayer appends a default player to pos.
func (s *Store) AddPlayer(pos model.Position) error {
	if !pos.Valid() {
		return fmt.Errorf("add player %q: %w", pos, ErrUnknownPosition)
	}
	old := s.current.players[pos]
	list := make([]model.Player, len(old), len(old)+1)
	copy(list, old)
	list = append(list, model.NewPlayer())
	s.current = s.current.withPosition(pos, list)
	return nil
}

// RemovePlayer removes the player at index from pos. Players after index
// shift down by one.
func (s *Store) RemovePlayer(pos model.Position, index int) error {
	if !pos.Valid() {
		return fmt.Errorf("remove player %q: %w", pos, ErrUnknownPosition)
	}
	old := s.current.players[pos]
	if index < 0 || index >= len(old) {
		return fmt.Errorf("remove player %s[%d] (have %d): %w", pos, index, len(old), ErrIndexOutOfRange)
	}
	list := make([]model.Player, 0, len(old)-1)
	list = append(list, old[:index]...)
	list = append(list, old[index+1:]...)
	s.current = s.current.withPosition(pos, list)
	return nil
}

// UpdatePlayerField replaces one field of the player at index in pos.
func (s *Store) UpdatePlayerField(pos model.Position, index int, field model.Field, value string) error {
	if !pos.Valid() {
		return fmt.Errorf("update player %q: %w", pos, ErrUnknownPosition)
	}
	old := s.current.players[pos]
	if index < 0 || index >= len(old) {
		return fmt.Errorf("update player %s[%d] (have %d): %w", pos, index, len(old), ErrIndexOutOfRange)
	}
	player := old[index]
	switch field {
	case model.FieldName:
		player.Name = value
	case model.FieldClassYear:
		year, err := model.ParseYearTag(value)
		if err != nil {
			return fmt.Errorf("update %s[%d] %s: %w: %v", pos, index, field, ErrInvalidValue, err)
		}
		player.ClassYear = year
	case model.FieldDevelopmentTrait:
		trait, err := model.ParseTraitTag(value)
		if err != nil {
			return fmt.Errorf("update %s[%d] %s: %w: %v", pos, index, field, ErrInvalidValue, err)
		}
		player.DevelopmentTrait = trait
	default:
		return fmt.Errorf("update %s[%d] %q: %w", pos, index, field, ErrUnknownField)
	}
	list := make([]model.Player, len(old))
	copy(list, old)
	list[index] = player
	s.current = s.current.withPosition(pos, list)
	return nil
}
