package internal

import (
	"cmp"
	"slices"
)

// A GroupRanking ranks the teams of one group by their
// group stage records.
type GroupRanking struct {
	BaseRanking

	entries Ranking
	ledger  *Ledger

	numMatches int

	// Set when the ranking had to break a tie between all
	// teams of the group
	FullTie bool
}

// Ranks the group once every team has played all its matches.
// Before that the entry order is kept.
func (r *GroupRanking) UpdateRanks() {
	teams := SlotTeams(r.entries.Ranks())

	if !r.Complete() {
		r.FullTie = false
		r.setTeams(teams)
		return
	}

	byPoints := sortByMetric(teams, r.ledger, func(rec *Record) int { return rec.Points })
	r.FullTie = len(teams) > 1 && len(byPoints) == 1

	r.setTeams(RankGroup(teams, r.ledger))
}

// Returns true when all teams of the group completed their matches
func (r *GroupRanking) Complete() bool {
	for _, t := range SlotTeams(r.entries.Ranks()) {
		record := r.ledger.Record(t)
		if record.NumMatches() < r.numMatches {
			return false
		}
	}
	return true
}

func NewGroupRanking(
	entries Ranking,
	ledger *Ledger,
	numMatches int,
	rankingGraph *RankingGraph,
) *GroupRanking {
	ranking := &GroupRanking{
		BaseRanking: NewBaseRanking(),
		entries:     entries,
		ledger:      ledger,
		numMatches:  numMatches,
	}
	ranking.UpdateRanks()

	rankingGraph.AddVertex(ranking)
	rankingGraph.AddEdge(entries, ranking)

	return ranking
}

// Orders the teams of a group by their records, best first.
//
// The teams are bucketed by points. Ties inside a bucket
// are broken by breakTie.
func RankGroup(teams []*Team, ledger *Ledger) []*Team {
	sortedByPoints := sortByMetric(teams, ledger, func(r *Record) int { return r.Points })

	ranked := make([]*Team, 0, len(teams))
	for _, tie := range sortedByPoints {
		ranked = append(ranked, breakTie(ledger, tie)...)
	}

	return ranked
}

// Breaks the tie between teams with the same amount of points.
//
//   - A 2-way-tie is broken by the direct encounter
//   - Bigger ties are broken by the circular point difference
//     which only counts the matches among the tied teams
func breakTie(ledger *Ledger, tie []*Team) []*Team {
	switch len(tie) {
	case 1:
		return tie
	case 2:
		return breakTwoWayTie(ledger, tie[0], tie[1])
	default:
		return breakCircularTie(ledger, tie)
	}
}

// Puts the winner of the direct encounter first. If the two never
// met the stronger ranked team goes first.
func breakTwoWayTie(ledger *Ledger, t1, t2 *Team) []*Team {
	switch {
	case ledger.Defeated(t1, t2):
		return []*Team{t1, t2}
	case ledger.Defeated(t2, t1):
		return []*Team{t2, t1}
	case t2.Rank < t1.Rank:
		return []*Team{t2, t1}
	default:
		return []*Team{t1, t2}
	}
}

// Sorts the tied teams descending by their circular point
// difference. Equal differences are ordered by strength rank.
func breakCircularTie(ledger *Ledger, tie []*Team) []*Team {
	differences := make(map[*Team]int, len(tie))
	for _, t := range tie {
		differences[t] = CircularDifference(ledger, t, tie)
	}

	sorted := slices.Clone(tie)
	slices.SortStableFunc(sorted, func(a, b *Team) int {
		if c := cmp.Compare(differences[b], differences[a]); c != 0 {
			return c
		}
		return cmp.Compare(a.Rank, b.Rank)
	})

	return sorted
}

// Returns the point difference of the team in the matches
// against the other members of the circle
func CircularDifference(ledger *Ledger, team *Team, circle []*Team) int {
	record := ledger.Record(team)
	difference := 0
	for _, other := range circle {
		if other == team {
			continue
		}
		match, ok := record.MatchAgainst(other)
		if ok {
			difference += match.Difference()
		}
	}
	return difference
}

// Sorts the teams in descending buckets of one of the record values returned by the getter
func sortByMetric(teams []*Team, ledger *Ledger, getter func(r *Record) int) [][]*Team {
	buckets := make(map[int][]*Team)

	for _, t := range teams {
		record := ledger.Record(t)
		metric := getter(&record)
		bucket, ok := buckets[metric]
		if !ok {
			bucket = make([]*Team, 0, 3)
		}
		buckets[metric] = append(bucket, t)
	}

	sortedMetrics := make([]int, 0, len(buckets))
	for k := range buckets {
		sortedMetrics = append(sortedMetrics, k)
	}
	slices.SortFunc(sortedMetrics, func(a, b int) int { return cmp.Compare(b, a) })

	sortedTeams := make([][]*Team, 0, len(sortedMetrics))
	for _, v := range sortedMetrics {
		sortedTeams = append(sortedTeams, buckets[v])
	}

	return sortedTeams
}
