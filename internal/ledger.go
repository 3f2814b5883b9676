package internal

import (
	"maps"
	"slices"
)

// One played match from the perspective of one team
type MatchRecord struct {
	Opponent *Team
	Scored   int
	Conceded int
}

func (r MatchRecord) Difference() int {
	return r.Scored - r.Conceded
}

// A Record is the running total of a team's matches.
//
// With N matches recorded it holds that
// Wins+Losses == N and Points == 2*Wins + Losses.
type Record struct {
	Points, Wins, Losses int
	Scored, Conceded     int

	// The matches in the order they were played
	Matches []MatchRecord
}

// Returns the point difference (scored minus conceded)
func (r *Record) Difference() int {
	return r.Scored - r.Conceded
}

func (r *Record) NumMatches() int {
	return len(r.Matches)
}

// Returns the first recorded match against the opponent
func (r *Record) MatchAgainst(opponent *Team) (MatchRecord, bool) {
	for _, m := range r.Matches {
		if m.Opponent == opponent {
			return m, true
		}
	}
	return MatchRecord{}, false
}

func (r *Record) add(opponent *Team, scored, conceded int) {
	if scored > conceded {
		r.Points += 2
		r.Wins += 1
	} else {
		r.Points += 1
		r.Losses += 1
	}
	r.Scored += scored
	r.Conceded += conceded
	r.Matches = append(r.Matches, MatchRecord{
		Opponent: opponent,
		Scored:   scored,
		Conceded: conceded,
	})
}

// An ordered pair of team codes. The first team defeated the second.
type Defeat struct {
	Winner, Loser string
}

// A Ledger owns the accumulated state of all teams
// in a tournament.
//
// It holds a Record per team and the defeat relation
// which is queried for head-to-head tie-breaks and to
// avoid bracket rematches. Only played matches are
// written into the ledger, rankings only read from it.
type Ledger struct {
	records map[*Team]*Record

	defeats   []Defeat
	defeatSet map[Defeat]struct{}
}

// Adds the result of a played match to the records
// of both teams and to the defeat relation
func (l *Ledger) Add(match *Match) error {
	winner, loser, err := match.Outcome()
	if err != nil {
		return err
	}

	t1, t2 := match.Team1(), match.Team2()
	p1, p2 := match.Score.Points1(), match.Score.Points2()

	l.record(t1).add(t2, p1, p2)
	l.record(t2).add(t1, p2, p1)

	defeat := Defeat{Winner: winner.Code, Loser: loser.Code}
	if _, ok := l.defeatSet[defeat]; !ok {
		l.defeatSet[defeat] = struct{}{}
		l.defeats = append(l.defeats, defeat)
	}

	return nil
}

// Returns a copy of the team's record.
// Teams without matches have a zero record.
func (l *Ledger) Record(team *Team) Record {
	record, ok := l.records[team]
	if !ok {
		return Record{}
	}
	return *record
}

func (l *Ledger) record(team *Team) *Record {
	record, ok := l.records[team]
	if !ok {
		record = &Record{}
		l.records[team] = record
	}
	return record
}

// Returns true when the winner defeated the loser in
// any recorded match
func (l *Ledger) Defeated(winner, loser *Team) bool {
	_, ok := l.defeatSet[Defeat{Winner: winner.Code, Loser: loser.Code}]
	return ok
}

// Returns true when the two teams have played each other
func (l *Ledger) Met(a, b *Team) bool {
	return l.Defeated(a, b) || l.Defeated(b, a)
}

// Returns the codes of the teams that the given team
// defeated in the order the wins were recorded
func (l *Ledger) DefeatedBy(team *Team) []string {
	codes := make([]string, 0, 3)
	for _, d := range l.defeats {
		if d.Winner == team.Code {
			codes = append(codes, d.Loser)
		}
	}
	return codes
}

// Returns the defeat relation in the order it was recorded
func (l *Ledger) Defeats() []Defeat {
	return l.defeats
}

// Returns an independent copy of the ledger. Matches added
// to either ledger afterwards do not show up in the other.
func (l *Ledger) Clone() *Ledger {
	clone := NewLedger()
	for team, record := range l.records {
		r := *record
		r.Matches = slices.Clone(record.Matches)
		clone.records[team] = &r
	}
	clone.defeats = slices.Clone(l.defeats)
	maps.Copy(clone.defeatSet, l.defeatSet)
	return clone
}

func NewLedger() *Ledger {
	return &Ledger{
		records:   make(map[*Team]*Record),
		defeatSet: make(map[Defeat]struct{}),
	}
}
