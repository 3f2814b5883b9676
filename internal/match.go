package internal

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrNoScore     = errors.New("no score")
	ErrEqualScore  = errors.New("equal score")
	ErrMatchPlayed = errors.New("match already has a result")
	ErrEmptySlot   = errors.New("match slot is not occupied")
)

// The result of a match.
type Score interface {
	// Points of first opponent
	Points1() int

	// Points of second opponent
	Points2() int

	// Returns either 0 or 1 whether the
	// first opponent won or the second.
	// Errors when no winner is determined.
	GetWinner() (int, error)
}

// A MatchSimulator produces the score of a match between two
// teams from their strength ranks. The first points of the
// returned score belong to the team with strength1.
type MatchSimulator interface {
	Simulate(strength1, strength2 int) Score
}

// The random source used for draws.
// A *math/rand.Rand satisfies it.
type Rand interface {
	// Returns a pseudo-random number in [0.0,1.0)
	Float64() float64
}

// A match with two slots for the opponents.
//
// Once the match has a Score it is never changed again.
type Match struct {
	// The first opponent slot
	Slot1 *Slot
	// The second opponent slot
	Slot2 *Slot

	// An iterator that goes over the two slots
	Slots iter.Seq[*Slot]

	// Score of the match or
	// nil when the match is not played yet
	Score Score

	// Name of the stage the match belongs to
	Stage string

	// Id for graph node hashing
	id int
}

func (m *Match) Team1() *Team {
	return m.Slot1.Team()
}

func (m *Match) Team2() *Team {
	return m.Slot2.Team()
}

func (m *Match) GetWinner() (*Slot, error) {
	if m.Score == nil {
		return nil, ErrNoScore
	}

	winnerIndex, err := m.Score.GetWinner()
	if err != nil {
		return nil, ErrEqualScore
	}

	if winnerIndex == 0 {
		return m.Slot1, nil
	}
	return m.Slot2, nil
}

// Returns the winning and the losing team of a played match
func (m *Match) Outcome() (*Team, *Team, error) {
	winner, err := m.GetWinner()
	if err != nil {
		return nil, nil, err
	}
	return winner.Team(), m.OtherSlot(winner).Team(), nil
}

func (m *Match) OtherSlot(slot *Slot) *Slot {
	if slot == m.Slot1 {
		return m.Slot2
	}
	if slot == m.Slot2 {
		return m.Slot1
	}

	panic("Slot is not in the Match")
}

// Sets the result of the match. Both slots have to be
// occupied and the score has to have a winner.
func (m *Match) SetResult(score Score) error {
	if m.Score != nil {
		return ErrMatchPlayed
	}
	if m.Team1() == nil || m.Team2() == nil {
		return ErrEmptySlot
	}
	if _, err := score.GetWinner(); err != nil {
		return ErrEqualScore
	}
	m.Score = score
	return nil
}

// Simulates the match with the given simulator and sets the result
func (m *Match) Play(simulator MatchSimulator) error {
	t1, t2 := m.Team1(), m.Team2()
	if t1 == nil || t2 == nil {
		return fmt.Errorf("%s: %w", m.Stage, ErrEmptySlot)
	}
	score := simulator.Simulate(t1.Rank, t2.Rank)
	return m.SetResult(score)
}

func (m *Match) Id() int {
	return m.id
}

func (m *Match) String() string {
	var sb strings.Builder
	sb.WriteString(slotName(m.Slot1))
	sb.WriteString(" - ")
	sb.WriteString(slotName(m.Slot2))

	if m.Score != nil {
		fmt.Fprintf(&sb, " (%d:%d)", m.Score.Points1(), m.Score.Points2())
	}

	return sb.String()
}

// Returns the team name or what the slot is waiting for
func slotName(s *Slot) string {
	if t := s.Team(); t != nil {
		return t.Name
	}
	if p := s.Placement(); p != nil {
		return "[" + p.String() + "]"
	}
	return "[Empty]"
}

func NewMatch(slot1, slot2 *Slot) *Match {
	id := NextNodeId()

	iterator := func(yield func(s *Slot) bool) {
		if !yield(slot1) {
			return
		}
		yield(slot2)
	}

	match := &Match{
		Slot1: slot1,
		Slot2: slot2,
		Slots: iterator,
		id:    id,
	}
	return match
}

// Returns true when all given matches have a score
func MatchesComplete(matches ...*Match) bool {
	for _, m := range matches {
		if m.Score == nil {
			return false
		}
	}
	return true
}

// A Round is a list of matches that are played in
// parallel during a tournament.
// The matches of a round depend on the completion
// of all previous rounds.
type Round struct {
	Name string

	// The matches that are played in this round
	Matches []*Match

	// Other Rounds that this Round is composed of
	// Is empty when no underlying rounds exist
	NestedRounds []*Round
}
