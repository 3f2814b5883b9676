package internal

import (
	"slices"
	"testing"
)

func TestCompareRecords(t *testing.T) {
	better := Record{Points: 5, Scored: 80, Conceded: 70}
	worse := Record{Points: 5, Scored: 75, Conceded: 65}

	eq1 := CompareRecords(better, worse) < 0
	eq2 := CompareRecords(worse, better) > 0
	eq3 := CompareRecords(better, better) == 0
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("Equal points and difference were not decided by scored points")
	}

	eq1 = CompareRecords(Record{Points: 6}, Record{Points: 5, Scored: 100}) < 0
	eq2 = CompareRecords(Record{Points: 5, Scored: 70, Conceded: 60}, Record{Points: 5, Scored: 90, Conceded: 85}) < 0
	if !eq1 || !eq2 {
		t.Fatal("The record comparison does not go by points, then difference")
	}
}

func groupEntries(teams []*Team) []GroupEntries {
	names := []string{"A", "B", "C", "D", "E", "F"}
	entries := make([]GroupEntries, 0, len(teams)/GroupSize)
	for i := 0; i+GroupSize <= len(teams); i += GroupSize {
		entries = append(entries, GroupEntries{
			Name:  names[i/GroupSize],
			Teams: teams[i : i+GroupSize],
		})
	}
	return entries
}

func TestQualifiers(t *testing.T) {
	teams := TeamSlice(16)
	groupPhase, err := NewGroupPhase(groupEntries(teams), NewLedger())
	if err != nil {
		t.Fatal(err)
	}

	if len(groupPhase.Qualifiers()) != 0 {
		t.Fatal("Qualifiers were ranked before the groups were played")
	}

	if err := groupPhase.Play(&StrongerWinsSimulator{}); err != nil {
		t.Fatal(err)
	}

	qualifiers := groupPhase.Qualifiers()
	if len(qualifiers) != 11 {
		t.Fatalf("4 groups produced %d qualifiers", len(qualifiers))
	}

	expected := []*Team{
		teams[0], teams[4], teams[8], teams[12],
		teams[1], teams[5], teams[9], teams[13],
		teams[2], teams[6], teams[10],
	}
	if !slices.Equal(qualifiers, expected) {
		t.Fatalf("Unexpected qualifiers %s", TeamCodes(qualifiers))
	}

	crossGroupRanking := groupPhase.CrossGroupRanking
	if crossGroupRanking.Dropped != teams[14] {
		t.Fatal("The last 3rd place was not dropped")
	}
	if len(crossGroupRanking.Tiers) != QualifyingPlaces {
		t.Fatal("The cross group ranking does not have a tier per qualifying place")
	}

	for _, standing := range groupPhase.Standings() {
		if slices.Contains(qualifiers, standing[3]) {
			t.Fatal("A 4th placed team qualified")
		}
	}
}

func TestRankTier(t *testing.T) {
	teams := TeamSlice(3)
	a, b, c := teams[0], teams[1], teams[2]
	others := TeamSlice(6)[3:]

	ledger := fillLedger(t,
		PlayedMatch(a, others[0], 80, 70),
		PlayedMatch(b, others[1], 90, 70),
		PlayedMatch(c, others[2], 80, 70),
	)

	ranked := RankTier([]*Team{a, b, c}, ledger)
	if !slices.Equal(ranked, []*Team{b, a, c}) {
		t.Fatalf("The tier was not sorted stably: %s", TeamCodes(ranked))
	}
}
