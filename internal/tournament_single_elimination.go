package internal

import (
	"errors"
	"fmt"
	"slices"
)

// The number of quarterfinal pairings of the bracket
const NumPairings = NumSeeded / 2

var ErrBracketSize = errors.New("the bracket needs exactly 4 quarterfinal pairings")

// The Bracket is the single elimination stage.
//
// The quarterfinal winners meet in the semifinals. The
// semifinal winners play the final and the semifinal losers
// play the third place match.
type Bracket struct {
	Rounds  []*Round
	Matches []*Match

	Quarterfinals []*Match
	Semifinals    []*Match
	ThirdPlace    *Match
	Final         *Match

	WinnerRankings map[*Match]*WinnerRanking
	MedalRanking   *MedalRanking

	RankingGraph     *RankingGraph
	EliminationGraph *EliminationGraph

	entries *ConstantRanking
}

// Plays the matches of the bracket round by round and
// advances the teams after every match.
func (b *Bracket) Play(simulator MatchSimulator, ledger *Ledger) error {
	for _, m := range b.Matches {
		if err := m.Play(simulator); err != nil {
			return err
		}
		if err := ledger.Add(m); err != nil {
			return fmt.Errorf("%s: %w", m.Stage, err)
		}
		b.RankingGraph.Update(b.WinnerRankings[m])
	}
	return nil
}

// Returns gold, silver and bronze medalists once the
// medal matches are played
func (b *Bracket) Medals() []*Team {
	if !MatchesComplete(b.Final, b.ThirdPlace) {
		return nil
	}
	return b.MedalRanking.Teams()
}

// Returns the stages of the matches that the teams of
// the given match advance to
func (b *Bracket) NextStages(match *Match) []string {
	next := b.EliminationGraph.NextMatches(match)
	stages := make([]string, 0, len(next))
	for _, m := range next {
		stages = append(stages, m.Stage)
	}
	slices.Sort(stages)
	return stages
}

// Creates a match between the teams on the given place
// of the two matches' winner rankings
func (b *Bracket) followUp(match1, match2 *Match, place int, stage string) *Match {
	slot1 := NewPlacementSlot(NewOutcomePlacement(b.WinnerRankings[match1], place))
	slot2 := NewPlacementSlot(NewOutcomePlacement(b.WinnerRankings[match2], place))
	match := NewMatch(slot1, slot2)
	match.Stage = stage

	b.WinnerRankings[match] = NewWinnerRanking(match, b.RankingGraph)

	b.EliminationGraph.AddVertex(match)
	for _, m := range []*Match{match1, match2} {
		b.EliminationGraph.AddVertex(m)
		b.EliminationGraph.AddEdge(m, match)
	}

	return match
}

func NewBracket(pairings []Pairing) (*Bracket, error) {
	if len(pairings) != NumPairings {
		return nil, fmt.Errorf("got %d pairings: %w", len(pairings), ErrBracketSize)
	}

	teams := make([]*Team, 0, 2*len(pairings))
	for _, p := range pairings {
		teams = append(teams, p.Team1, p.Team2)
	}
	entries := NewConstantRanking(teams)

	bracket := &Bracket{
		WinnerRankings:   make(map[*Match]*WinnerRanking),
		RankingGraph:     NewRankingGraph(entries),
		EliminationGraph: NewEliminationGraph(),
		entries:          entries,
	}

	bracket.Quarterfinals = make([]*Match, 0, len(pairings))
	for i := range pairings {
		slot1 := NewPlacementSlot(NewPlacement(entries, 2*i))
		slot2 := NewPlacementSlot(NewPlacement(entries, 2*i+1))
		match := NewMatch(slot1, slot2)
		match.Stage = fmt.Sprintf("Quarterfinal %d", i+1)
		bracket.WinnerRankings[match] = NewWinnerRanking(match, bracket.RankingGraph)
		bracket.Quarterfinals = append(bracket.Quarterfinals, match)
	}

	qf := bracket.Quarterfinals
	bracket.Semifinals = []*Match{
		bracket.followUp(qf[0], qf[1], 0, "Semifinal 1"),
		bracket.followUp(qf[2], qf[3], 0, "Semifinal 2"),
	}

	sf := bracket.Semifinals
	bracket.ThirdPlace = bracket.followUp(sf[0], sf[1], 1, "Third place match")
	bracket.Final = bracket.followUp(sf[0], sf[1], 0, "Final")

	bracket.MedalRanking = NewMedalRanking(
		bracket.WinnerRankings[bracket.Final],
		bracket.WinnerRankings[bracket.ThirdPlace],
		bracket.RankingGraph,
	)

	bracket.Rounds = []*Round{
		{Name: "Quarterfinals", Matches: bracket.Quarterfinals},
		{Name: "Semifinals", Matches: bracket.Semifinals},
		{Name: "Third place match", Matches: []*Match{bracket.ThirdPlace}},
		{Name: "Final", Matches: []*Match{bracket.Final}},
	}
	for _, r := range bracket.Rounds {
		bracket.Matches = append(bracket.Matches, r.Matches...)
	}

	bracket.RankingGraph.Update(entries)

	return bracket, nil
}
