package internal

// A WinnerRanking ranks the two teams of a bracket match.
// Place 0 is the winner who advances and place 1 is the loser.
type WinnerRanking struct {
	BaseRanking

	Match *Match
}

// The ranking stays empty until the match has a winner
func (r *WinnerRanking) UpdateRanks() {
	winner, err := r.Match.GetWinner()
	if err != nil {
		r.ranks = []*Slot{}
		return
	}
	r.ranks = []*Slot{winner, r.Match.OtherSlot(winner)}
}

// Returns the winning team or nil before the match is played
func (r *WinnerRanking) Winner() *Team {
	if s := r.At(0); s != nil {
		return s.Team()
	}
	return nil
}

// Returns the losing team or nil before the match is played
func (r *WinnerRanking) Loser() *Team {
	if s := r.At(1); s != nil {
		return s.Team()
	}
	return nil
}

// Creates the ranking of the match and puts it into the ranking
// graph below the rankings that the match slots are placed from
func NewWinnerRanking(match *Match, rankingGraph *RankingGraph) *WinnerRanking {
	ranking := &WinnerRanking{Match: match, BaseRanking: NewBaseRanking()}
	ranking.UpdateRanks()

	rankingGraph.AddVertex(ranking)
	for slot := range match.Slots {
		if p := slot.Placement(); p != nil {
			rankingGraph.AddEdge(p.Ranking(), ranking)
		}
	}

	return ranking
}
