package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrDuplicateTeam = errors.New("team code is used more than once")

// The minimum number of groups that produce enough
// qualifiers to fill the pots
const MinGroups = (NumSeeded + 1 + QualifyingPlaces - 1) / QualifyingPlaces

// The Result of a simulated tournament
type Result struct {
	// The group phase rounds with one nested round per group
	GroupRounds []*Round

	// The groups with their final standings
	Groups []*Group

	// The qualifiers in cross group ranking order
	Qualifiers []*Team

	// The best 3rd place that missed the qualification
	Dropped *Team

	Draw *Draw

	EliminationRounds []*Round

	// Gold, silver and bronze
	Medals []*Team

	// The records of the group phase only
	GroupLedger *Ledger

	// The records of all played matches
	Ledger *Ledger
}

// A Tournament plays a group phase of groups with four teams
// followed by an elimination bracket of eight qualifiers.
//
// All randomness is drawn from the simulator and the rng
// passed to NewTournament. Passing the rng that the simulator
// uses keeps the whole tournament on one stream, so a seeded
// source reproduces the same tournament.
type Tournament struct {
	Ledger     *Ledger
	GroupPhase *GroupPhase
	Draw       *Draw
	Bracket    *Bracket

	simulator MatchSimulator
	rng       Rand
	logger    logrus.FieldLogger
}

// Validates the group entries. The tournament needs groups
// of four teams with unique codes and enough groups to fill
// the elimination pots.
func ValidateGroups(groups []GroupEntries) error {
	if len(groups) == 0 {
		return ErrNoGroups
	}

	codes := make(map[string]string)
	for _, g := range groups {
		if len(g.Teams) != GroupSize {
			return fmt.Errorf("group %s has %d teams: %w", g.Name, len(g.Teams), ErrGroupSize)
		}
		for _, t := range g.Teams {
			if other, ok := codes[t.Code]; ok {
				return fmt.Errorf("%s in group %s and group %s: %w", t.Code, other, g.Name, ErrDuplicateTeam)
			}
			codes[t.Code] = g.Name
		}
	}

	if len(groups) < MinGroups {
		numQualifiers := QualifyingPlaces*len(groups) - 1
		return fmt.Errorf("%d groups yield %d qualifiers: %w", len(groups), numQualifiers, ErrTooFewQualifiers)
	}

	return nil
}

// Plays the whole tournament and returns its result
func (t *Tournament) Run() (*Result, error) {
	t.logger.WithField("groups", len(t.GroupPhase.Groups)).Info("Starting group phase")

	if err := t.GroupPhase.Play(t.simulator); err != nil {
		return nil, err
	}
	t.logMatches(t.GroupPhase.Matches)
	groupLedger := t.Ledger.Clone()

	for _, g := range t.GroupPhase.Groups {
		if g.Ranking.FullTie {
			t.logger.WithField("group", g.Name).
				Warn("All teams of the group are tied on points, ranked by circular point difference")
		}
		t.logger.WithFields(logrus.Fields{
			"group":    g.Name,
			"standing": TeamCodes(g.Teams),
		}).Debug("Group ranked")
	}

	crossGroupRanking := t.GroupPhase.CrossGroupRanking
	qualifiers := t.GroupPhase.Qualifiers()
	t.logger.WithFields(logrus.Fields{
		"qualifiers": TeamCodes(qualifiers),
		"dropped":    crossGroupRanking.Dropped,
	}).Info("Group phase complete")

	draw, err := DrawBracket(qualifiers, t.rng, t.Ledger)
	if err != nil {
		return nil, err
	}
	t.Draw = draw
	if len(draw.Unseeded) > 0 {
		t.logger.WithField("unseeded", TeamCodes(draw.Unseeded)).
			Warn("Qualifiers beyond the pots are not drawn into the bracket")
	}

	bracket, err := NewBracket(draw.Pairings)
	if err != nil {
		return nil, err
	}
	t.Bracket = bracket

	t.logger.Info("Starting elimination phase")
	if err := bracket.Play(t.simulator, t.Ledger); err != nil {
		return nil, err
	}
	t.logMatches(bracket.Matches)
	for _, m := range bracket.Matches {
		next := bracket.NextStages(m)
		if len(next) == 0 {
			continue
		}
		winner, _, _ := m.Outcome()
		t.logger.WithFields(logrus.Fields{
			"stage":  m.Stage,
			"winner": winner.Code,
			"next":   strings.Join(next, ","),
		}).Debug("Team advanced")
	}

	medals := bracket.Medals()
	t.logger.WithField("medals", TeamCodes(medals)).Info("Tournament complete")

	result := &Result{
		GroupRounds:       t.GroupPhase.Rounds,
		Groups:            t.GroupPhase.Groups,
		Qualifiers:        qualifiers,
		Dropped:           crossGroupRanking.Dropped,
		Draw:              draw,
		EliminationRounds: bracket.Rounds,
		Medals:            medals,
		GroupLedger:       groupLedger,
		Ledger:            t.Ledger,
	}

	return result, nil
}

func (t *Tournament) logMatches(matches []*Match) {
	for _, m := range matches {
		t.logger.WithFields(logrus.Fields{
			"stage":  m.Stage,
			"team1":  m.Team1().Code,
			"team2":  m.Team2().Code,
			"score1": m.Score.Points1(),
			"score2": m.Score.Points2(),
		}).Debug("Match played")
	}
}

// Creates a tournament after validating the groups.
// A nil logger falls back to the logrus standard logger.
func NewTournament(
	groups []GroupEntries,
	simulator MatchSimulator,
	rng Rand,
	logger logrus.FieldLogger,
) (*Tournament, error) {
	if err := ValidateGroups(groups); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	ledger := NewLedger()
	groupPhase, err := NewGroupPhase(groups, ledger)
	if err != nil {
		return nil, err
	}

	tournament := &Tournament{
		Ledger:     ledger,
		GroupPhase: groupPhase,
		simulator:  simulator,
		rng:        rng,
		logger:     logger,
	}

	return tournament, nil
}
