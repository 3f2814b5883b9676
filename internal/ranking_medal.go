package internal

// The number of medals that are awarded
const NumMedals = 3

// The MedalRanking puts the winner and the loser of the
// final on the first two places and the winner of the
// third place match on the third.
type MedalRanking struct {
	BaseRanking

	final      *WinnerRanking
	thirdPlace *WinnerRanking
}

// The ranking stays empty until both medal matches are decided
func (r *MedalRanking) UpdateRanks() {
	gold, silver := r.final.Winner(), r.final.Loser()
	bronze := r.thirdPlace.Winner()
	if gold == nil || bronze == nil {
		r.ranks = []*Slot{}
		return
	}
	r.setTeams([]*Team{gold, silver, bronze})
}

func NewMedalRanking(final, thirdPlace *WinnerRanking, rankingGraph *RankingGraph) *MedalRanking {
	ranking := &MedalRanking{
		BaseRanking: NewBaseRanking(),
		final:       final,
		thirdPlace:  thirdPlace,
	}
	ranking.UpdateRanks()

	rankingGraph.AddVertex(ranking)
	rankingGraph.AddEdge(final, ranking)
	rankingGraph.AddEdge(thirdPlace, ranking)

	return ranking
}
