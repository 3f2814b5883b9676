package internal

import (
	"errors"
	"fmt"
)

// The number of teams in a group
const GroupSize = 4

var ErrGroupSize = errors.New("a group must consist of exactly 4 teams")

// The fixtures of a group given as pairs of indices into the
// group's entries. Every team meets every other team once over
// three rounds of two concurrent matches.
var groupFixtures = [GroupSize - 1][GroupSize / 2][2]int{
	{{0, 1}, {2, 3}},
	{{0, 2}, {1, 3}},
	{{0, 3}, {1, 2}},
}

// The teams that enter a group
type GroupEntries struct {
	Name  string
	Teams []*Team
}

// A Group plays a single round robin between its four teams.
type Group struct {
	Name string

	// The teams of the group. After all matches are played
	// this is the final standing of the group.
	Teams []*Team

	Rounds  []*Round
	Matches []*Match

	Entries *ConstantRanking
	Ranking *GroupRanking
}

// Plays all matches of the group in schedule order and writes
// the results into the ledger.
func (g *Group) Play(simulator MatchSimulator, ledger *Ledger) error {
	for _, m := range g.Matches {
		if err := m.Play(simulator); err != nil {
			return fmt.Errorf("group %s: %w", g.Name, err)
		}
		if err := ledger.Add(m); err != nil {
			return fmt.Errorf("group %s: %w", g.Name, err)
		}
	}
	return nil
}

// Rewrites the team order with the current group ranking
func (g *Group) updateStanding() {
	g.Teams = g.Ranking.Teams()
}

func NewGroup(entries GroupEntries, ledger *Ledger, rankingGraph *RankingGraph) (*Group, error) {
	if len(entries.Teams) != GroupSize {
		return nil, fmt.Errorf("group %s has %d teams: %w", entries.Name, len(entries.Teams), ErrGroupSize)
	}

	teams := make([]*Team, len(entries.Teams))
	copy(teams, entries.Teams)

	entryRanking := NewConstantRanking(teams)
	entrySlots := entryRanking.Ranks()

	rounds := make([]*Round, 0, len(groupFixtures))
	matches := make([]*Match, 0, len(groupFixtures)*len(groupFixtures[0]))
	for roundI, fixtures := range groupFixtures {
		round := &Round{
			Name:    fmt.Sprintf("Round %d", roundI+1),
			Matches: make([]*Match, 0, len(fixtures)),
		}
		for _, fixture := range fixtures {
			match := NewMatch(entrySlots[fixture[0]], entrySlots[fixture[1]])
			match.Stage = fmt.Sprintf("Group %s, %s", entries.Name, round.Name)
			round.Matches = append(round.Matches, match)
		}
		rounds = append(rounds, round)
		matches = append(matches, round.Matches...)
	}

	rankingGraph.AddVertex(entryRanking)
	ranking := NewGroupRanking(entryRanking, ledger, len(groupFixtures), rankingGraph)

	group := &Group{
		Name:    entries.Name,
		Teams:   teams,
		Rounds:  rounds,
		Matches: matches,
		Entries: entryRanking,
		Ranking: ranking,
	}

	return group, nil
}
