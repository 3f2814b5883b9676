package internal

import "fmt"

// A Placement points at one place of a ranking, for example
// the winner of a quarterfinal or the 2nd team of the entries.
type Placement struct {
	ranking Ranking
	place   int

	// Readable name of the place, e.g. "Winner Semifinal 1"
	Label string
}

// Returns the slot currently at the place or nil
func (p *Placement) Slot() *Slot {
	return p.ranking.At(p.place)
}

func (p *Placement) Ranking() Ranking {
	return p.ranking
}

func (p *Placement) Place() int {
	return p.place
}

func (p *Placement) String() string {
	if p.Label != "" {
		return p.Label
	}
	return fmt.Sprintf("Place %d", p.place+1)
}

func NewPlacement(ranking Ranking, place int) *Placement {
	if ranking == nil {
		panic("Passed nil ranking to a placement")
	}
	return &Placement{ranking: ranking, place: place}
}

// Creates a placement on the winner (place 0) or the
// loser (place 1) of the ranked match
func NewOutcomePlacement(ranking *WinnerRanking, place int) *Placement {
	placement := NewPlacement(ranking, place)
	outcome := "Winner"
	if place == 1 {
		outcome = "Loser"
	}
	placement.Label = outcome + " " + ranking.Match.Stage
	return placement
}
