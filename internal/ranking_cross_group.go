package internal

import (
	"cmp"
	"slices"
)

// The number of places per group that can qualify
// for the elimination stage
const QualifyingPlaces = 3

// The CrossGroupRanking compares the teams of the same group
// placement across all groups.
//
// All group winners are ranked first, then all 2nd places and
// then all 3rd places. The last placed team of each group is
// out. The single worst 3rd place is also dropped, which leaves
// 3*G-1 qualifiers for G groups.
type CrossGroupRanking struct {
	BaseRanking

	groups []*GroupRanking
	ledger *Ledger

	// The ranked teams of each qualifying placement
	// (group winners, runners-up, 3rd places)
	Tiers [][]*Team

	// The 3rd placed team that was dropped from the qualifiers
	Dropped *Team
}

func (r *CrossGroupRanking) UpdateRanks() {
	r.Tiers = nil
	r.Dropped = nil

	for _, g := range r.groups {
		if !g.Complete() {
			r.ranks = []*Slot{}
			return
		}
	}

	r.Tiers = make([][]*Team, 0, QualifyingPlaces)
	for place := range QualifyingPlaces {
		tier := make([]*Team, 0, len(r.groups))
		for _, g := range r.groups {
			if slot := g.At(place); slot != nil {
				tier = append(tier, slot.Team())
			}
		}
		r.Tiers = append(r.Tiers, RankTier(tier, r.ledger))
	}

	qualifiers := slices.Concat(r.Tiers...)
	if len(qualifiers) > 0 {
		r.Dropped = qualifiers[len(qualifiers)-1]
		qualifiers = qualifiers[:len(qualifiers)-1]
	}

	r.setTeams(qualifiers)
}

// Sorts teams of the same group placement by points, then
// point difference, then scored points. Equal records keep
// their order.
func RankTier(teams []*Team, ledger *Ledger) []*Team {
	sorted := slices.Clone(teams)
	slices.SortStableFunc(sorted, func(a, b *Team) int {
		return CompareRecords(ledger.Record(a), ledger.Record(b))
	})
	return sorted
}

// Compares two records for the cross group ranking.
// A negative result means a ranks above b.
func CompareRecords(a, b Record) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Difference(), a.Difference()); c != 0 {
		return c
	}
	return cmp.Compare(b.Scored, a.Scored)
}

func NewCrossGroupRanking(
	groups []*GroupRanking,
	ledger *Ledger,
	rankingGraph *RankingGraph,
) *CrossGroupRanking {
	ranking := &CrossGroupRanking{
		BaseRanking: NewBaseRanking(),
		groups:      groups,
		ledger:      ledger,
	}
	ranking.UpdateRanks()

	rankingGraph.AddVertex(ranking)
	for _, g := range groups {
		rankingGraph.AddEdge(g, ranking)
	}

	return ranking
}
