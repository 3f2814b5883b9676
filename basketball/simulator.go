package basketball

import (
	"math"

	"knockoutsim/internal"
)

const (
	favoriteBase = 44
	underdogBase = 40

	// Number of random point increments per team and game
	numRolls = 4
	// Lowest value a roll counts with
	minRoll       = 0.15
	pointsPerRoll = 20

	favoriteBonus   = 20
	underdogPenalty = 10

	// Points added to the favorite when the game would end in a draw
	drawBreakPoints = 3
)

// The Simulator simulates basketball games. The outcome is random
// but biased towards the team with the better strength rank.
type Simulator struct {
	rng internal.Rand
}

// Returns the advantage of the favorite for the given difference
// of strength ranks. The factor grows with the difference but
// flattens out towards 1/3.
func AdvantageFactor(rankDifference int) float64 {
	diff := float64(rankDifference)
	return diff / (50 + 3*diff)
}

// Simulates the points of a game between teams with the given
// strength ranks. The points are returned in argument order and
// are never equal. On equal ranks the second team is the favorite.
func (s *Simulator) Points(strength1, strength2 int) (int, int) {
	firstIsFavorite := strength1 < strength2
	rankDifference := strength1 - strength2
	if rankDifference < 0 {
		rankDifference = -rankDifference
	}
	advantage := AdvantageFactor(rankDifference)

	favorite := favoriteBase
	underdog := underdogBase
	for range numRolls {
		favorite += int(math.Round(s.roll()*pointsPerRoll + advantage*favoriteBonus))
		underdog += int(math.Round(s.roll()*pointsPerRoll - advantage*underdogPenalty))
	}

	if favorite == underdog {
		favorite += drawBreakPoints
	}

	if firstIsFavorite {
		return favorite, underdog
	}
	return underdog, favorite
}

// Simulates a game and returns it as a score
func (s *Simulator) Simulate(strength1, strength2 int) internal.Score {
	a, b := s.Points(strength1, strength2)
	return &score{a, b}
}

func (s *Simulator) roll() float64 {
	return max(minRoll, s.rng.Float64())
}

func NewSimulator(rng internal.Rand) *Simulator {
	return &Simulator{rng: rng}
}

var _ internal.MatchSimulator = &Simulator{}
