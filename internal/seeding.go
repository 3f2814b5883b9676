package internal

import (
	"errors"
	"fmt"
)

// The number of qualifiers per pot
const PotSize = 2

// The pots of the elimination draw in bracket order
var PotNames = []string{"D", "E", "F", "G"}

// The number of qualifiers that are drawn into the bracket
const NumSeeded = PotSize * 4

var ErrTooFewQualifiers = errors.New("not enough qualifiers to fill the pots")

// A Pot is a tier of qualifiers that are drawn together
type Pot struct {
	Name  string
	Teams []*Team
}

// The two teams of a first round elimination match
type Pairing struct {
	Team1, Team2 *Team
}

// The result of the elimination draw
type Draw struct {
	Pots []*Pot

	// The quarterfinal pairings. The first two pairings
	// form the first half of the bracket.
	Pairings []Pairing

	// Qualifiers that did not fit into the pots
	Unseeded []*Team
}

// Puts the qualifiers in order into the pots D, E, F and G.
// The order inside each pot is reversed with a chance of 50%.
// The qualifiers that do not fit into the pots are returned
// as the second value.
func DrawPots(qualifiers []*Team, rng Rand) ([]*Pot, []*Team, error) {
	if len(qualifiers) < NumSeeded {
		return nil, nil, fmt.Errorf("%d qualifiers for %d pot places: %w", len(qualifiers), NumSeeded, ErrTooFewQualifiers)
	}

	pots := make([]*Pot, 0, len(PotNames))
	for i, name := range PotNames {
		teams := []*Team{qualifiers[i*PotSize], qualifiers[i*PotSize+1]}
		if rng.Float64() < 0.5 {
			teams[0], teams[1] = teams[1], teams[0]
		}
		pots = append(pots, &Pot{Name: name, Teams: teams})
	}

	return pots, qualifiers[NumSeeded:], nil
}

// Pairs the pots for the quarterfinals.
//
// Pot D is paired with pot G and pot E with pot F. The first
// teams of the pots form the first bracket half. When the two
// first teams already met in the group stage, the second teams
// of the pots are swapped to avoid the rematch.
func PairPots(pots []*Pot, ledger *Ledger) []Pairing {
	d, e, f, g := pots[0], pots[1], pots[2], pots[3]

	dg1, dg2 := pairPotsAvoidingRematch(d, g, ledger)
	ef1, ef2 := pairPotsAvoidingRematch(e, f, ledger)

	return []Pairing{dg1, ef1, dg2, ef2}
}

func pairPotsAvoidingRematch(upper, lower *Pot, ledger *Ledger) (Pairing, Pairing) {
	u, l := upper.Teams, lower.Teams
	if ledger.Met(u[0], l[0]) {
		return Pairing{u[0], l[1]}, Pairing{u[1], l[0]}
	}
	return Pairing{u[0], l[0]}, Pairing{u[1], l[1]}
}

// Draws the pots from the qualifiers and pairs them
func DrawBracket(qualifiers []*Team, rng Rand, ledger *Ledger) (*Draw, error) {
	pots, unseeded, err := DrawPots(qualifiers, rng)
	if err != nil {
		return nil, err
	}

	draw := &Draw{
		Pots:     pots,
		Pairings: PairPots(pots, ledger),
		Unseeded: unseeded,
	}
	return draw, nil
}
