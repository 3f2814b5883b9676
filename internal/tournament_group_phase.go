package internal

import (
	"errors"
	"fmt"
)

var ErrNoGroups = errors.New("the group phase has no groups")

// The GroupPhase plays all groups, ranks them and
// ranks the group placements across the groups
// to determine the qualifiers.
type GroupPhase struct {
	Groups []*Group

	// The rounds of all groups combined. Each round
	// has the group rounds as its nested rounds.
	Rounds  []*Round
	Matches []*Match

	CrossGroupRanking *CrossGroupRanking
	RankingGraph      *RankingGraph

	entries *ConstantRanking
	ledger  *Ledger
}

// Plays the matches of all groups and updates the rankings
func (p *GroupPhase) Play(simulator MatchSimulator) error {
	for _, g := range p.Groups {
		if err := g.Play(simulator, p.ledger); err != nil {
			return err
		}
	}

	p.RankingGraph.Update(p.entries)
	for _, g := range p.Groups {
		g.updateStanding()
	}

	return nil
}

// Returns the final standing of each group
func (p *GroupPhase) Standings() [][]*Team {
	standings := make([][]*Team, 0, len(p.Groups))
	for _, g := range p.Groups {
		standings = append(standings, g.Teams)
	}
	return standings
}

// Returns the qualifiers for the elimination stage in
// the order of the cross group ranking
func (p *GroupPhase) Qualifiers() []*Team {
	return p.CrossGroupRanking.Teams()
}

func (p *GroupPhase) createRounds() {
	numRounds := len(groupFixtures)

	p.Rounds = make([]*Round, 0, numRounds)
	p.Matches = make([]*Match, 0, numRounds*len(p.Groups)*len(groupFixtures[0]))
	for i := range numRounds {
		groupRounds := collectRounds(i, p.Groups)
		roundMatches := make([]*Match, 0, len(groupRounds)*len(groupFixtures[0]))
		for _, r := range groupRounds {
			roundMatches = append(roundMatches, r.Matches...)
		}
		p.Matches = append(p.Matches, roundMatches...)
		round := &Round{
			Name:         fmt.Sprintf("Round %d", i+1),
			Matches:      roundMatches,
			NestedRounds: groupRounds,
		}
		p.Rounds = append(p.Rounds, round)
	}
}

func collectRounds(roundI int, groups []*Group) []*Round {
	rounds := make([]*Round, 0, len(groups))
	for _, g := range groups {
		if roundI > len(g.Rounds)-1 {
			continue
		}
		rounds = append(rounds, g.Rounds[roundI])
	}
	return rounds
}

func NewGroupPhase(entries []GroupEntries, ledger *Ledger) (*GroupPhase, error) {
	if len(entries) == 0 {
		return nil, ErrNoGroups
	}

	allTeams := make([]*Team, 0, len(entries)*GroupSize)
	for _, e := range entries {
		allTeams = append(allTeams, e.Teams...)
	}
	entryRanking := NewConstantRanking(allTeams)
	rankingGraph := NewRankingGraph(entryRanking)

	groups := make([]*Group, 0, len(entries))
	groupRankings := make([]*GroupRanking, 0, len(entries))
	for _, e := range entries {
		group, err := NewGroup(e, ledger, rankingGraph)
		if err != nil {
			return nil, err
		}
		rankingGraph.AddEdge(entryRanking, group.Entries)
		groups = append(groups, group)
		groupRankings = append(groupRankings, group.Ranking)
	}

	crossGroupRanking := NewCrossGroupRanking(groupRankings, ledger, rankingGraph)

	groupPhase := &GroupPhase{
		Groups:            groups,
		CrossGroupRanking: crossGroupRanking,
		RankingGraph:      rankingGraph,
		entries:           entryRanking,
		ledger:            ledger,
	}
	groupPhase.createRounds()

	return groupPhase, nil
}
