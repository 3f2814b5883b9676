package internal

import "strings"

// A Team is a competitor of the tournament.
//
// The Team only carries the identity of the competitor.
// Everything that accumulates while matches are played
// is kept in a [Ledger].
type Team struct {
	Name string

	// Short code that is unique among the teams of a tournament.
	// It is used for head-to-head lookups.
	Code string

	// Strength rank of the team. Lower is stronger.
	Rank int
}

// Returns the code which identifies the team
func (t *Team) Id() string {
	return t.Code
}

func (t *Team) String() string {
	return t.Name
}

func NewTeam(name, code string, rank int) *Team {
	return &Team{Name: name, Code: code, Rank: rank}
}

// Returns the codes of the given teams joined by a comma
func TeamCodes(teams []*Team) string {
	codes := make([]string, 0, len(teams))
	for _, t := range teams {
		codes = append(codes, t.Code)
	}
	return strings.Join(codes, ",")
}
