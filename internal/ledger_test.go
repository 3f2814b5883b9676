package internal

import (
	"slices"
	"testing"
)

func TestLedgerRecords(t *testing.T) {
	teams := TeamSlice(3)
	ledger := NewLedger()

	matches := []*Match{
		PlayedMatch(teams[0], teams[1], 80, 70),
		PlayedMatch(teams[0], teams[2], 65, 72),
		PlayedMatch(teams[1], teams[2], 90, 60),
	}
	for _, m := range matches {
		if err := ledger.Add(m); err != nil {
			t.Fatal(err)
		}
	}

	for _, team := range teams {
		r := ledger.Record(team)
		eq1 := r.Wins+r.Losses == r.NumMatches()
		eq2 := r.Points == 2*r.Wins+r.Losses
		scored, conceded := 0, 0
		for _, m := range r.Matches {
			scored += m.Scored
			conceded += m.Conceded
		}
		eq3 := scored == r.Scored && conceded == r.Conceded
		if !eq1 || !eq2 || !eq3 {
			t.Fatalf("The record of %s is inconsistent: %+v", team.Code, r)
		}
	}

	r0 := ledger.Record(teams[0])
	eq1 := r0.Points == 3 && r0.Wins == 1 && r0.Losses == 1
	eq2 := r0.Scored == 145 && r0.Conceded == 142 && r0.Difference() == 3
	if !eq1 || !eq2 {
		t.Fatal("The record does not add up the match results")
	}

	m, ok := r0.MatchAgainst(teams[2])
	if !ok || m.Difference() != -7 {
		t.Fatal("The match against an opponent was not found in the record")
	}
}

func TestLedgerDefeats(t *testing.T) {
	teams := TeamSlice(3)
	ledger := NewLedger()
	ledger.Add(PlayedMatch(teams[0], teams[1], 70, 80))

	eq1 := ledger.Defeated(teams[1], teams[0])
	eq2 := !ledger.Defeated(teams[0], teams[1])
	eq3 := ledger.Met(teams[0], teams[1]) && ledger.Met(teams[1], teams[0])
	eq4 := !ledger.Met(teams[0], teams[2])
	if !eq1 || !eq2 || !eq3 || !eq4 {
		t.Fatal("The defeat relation does not reflect the played match")
	}

	eq1 = slices.Equal(ledger.DefeatedBy(teams[1]), []string{"T0"})
	eq2 = len(ledger.DefeatedBy(teams[0])) == 0
	eq3 = slices.Equal(ledger.Defeats(), []Defeat{{Winner: "T1", Loser: "T0"}})
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("The defeated codes were not returned in order")
	}
}

func TestLedgerUnplayed(t *testing.T) {
	teams := TeamSlice(2)
	ledger := NewLedger()

	match := NewMatch(NewTeamSlot(teams[0]), NewTeamSlot(teams[1]))
	if err := ledger.Add(match); err == nil {
		t.Fatal("An unplayed match was added to the ledger")
	}

	r := ledger.Record(teams[0])
	if r.NumMatches() != 0 || r.Points != 0 {
		t.Fatal("A team without matches does not have an empty record")
	}
}

func TestLedgerRecordCopy(t *testing.T) {
	teams := TeamSlice(2)
	ledger := NewLedger()
	ledger.Add(PlayedMatch(teams[0], teams[1], 80, 70))

	r := ledger.Record(teams[0])
	r.Points = 100

	if ledger.Record(teams[0]).Points != 2 {
		t.Fatal("Changing a returned record changed the ledger")
	}
}

func TestLedgerClone(t *testing.T) {
	teams := TeamSlice(3)
	ledger := NewLedger()
	ledger.Add(PlayedMatch(teams[0], teams[1], 80, 70))

	clone := ledger.Clone()
	ledger.Add(PlayedMatch(teams[0], teams[2], 80, 70))
	clone.Add(PlayedMatch(teams[2], teams[1], 80, 70))

	cloneRecord := clone.Record(teams[0])
	eq1 := cloneRecord.NumMatches() == 1
	eq2 := !clone.Met(teams[0], teams[2])
	eq3 := slices.Equal(clone.DefeatedBy(teams[0]), []string{"T1"})
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("Matches added to the ledger show up in its clone")
	}

	ledgerRecord := ledger.Record(teams[1])
	eq1 = ledgerRecord.NumMatches() == 1
	eq2 = !ledger.Met(teams[2], teams[1])
	eq3 = len(ledger.Defeats()) == 2
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("Matches added to the clone show up in the ledger")
	}
}
