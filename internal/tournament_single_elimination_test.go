package internal

import (
	"errors"
	"slices"
	"testing"
)

func bracketPairings(teams []*Team) []Pairing {
	return []Pairing{
		{teams[0], teams[7]},
		{teams[3], teams[4]},
		{teams[1], teams[6]},
		{teams[2], teams[5]},
	}
}

func TestBracketStructure(t *testing.T) {
	teams := TeamSlice(8)
	bracket, err := NewBracket(bracketPairings(teams))
	if err != nil {
		t.Fatal(err)
	}

	eq1 := len(bracket.Rounds) == 4
	eq2 := len(bracket.Matches) == 8
	eq3 := len(bracket.Quarterfinals) == 4 && len(bracket.Semifinals) == 2
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("The bracket does not have quarterfinals, semifinals, third place match and final")
	}

	qf := bracket.Quarterfinals
	eq1 = qf[0].Team1() == teams[0] && qf[0].Team2() == teams[7]
	eq2 = qf[3].Team1() == teams[2] && qf[3].Team2() == teams[5]
	if !eq1 || !eq2 {
		t.Fatal("The quarterfinals were not filled with the pairings")
	}

	if bracket.Final.Team1() != nil || bracket.ThirdPlace.Team2() != nil {
		t.Fatal("Undetermined slots are occupied")
	}

	eq1 = bracket.Final.String() == "[Winner Semifinal 1] - [Winner Semifinal 2]"
	eq2 = bracket.ThirdPlace.String() == "[Loser Semifinal 1] - [Loser Semifinal 2]"
	if !eq1 || !eq2 {
		t.Fatal("The undetermined slots do not name the placement they wait for")
	}

	next := bracket.EliminationGraph.NextMatches(qf[1])
	if len(next) != 1 || next[0] != bracket.Semifinals[0] {
		t.Fatal("The second quarterfinal does not lead to the first semifinal")
	}
	stages := bracket.NextStages(bracket.Semifinals[1])
	if !slices.Equal(stages, []string{"Final", "Third place match"}) {
		t.Fatal("The semifinal does not lead to the final and the third place match")
	}
	if len(bracket.NextStages(bracket.Final)) != 0 {
		t.Fatal("The final leads to another match")
	}

	stages = make([]string, 0, len(bracket.Matches))
	for _, m := range bracket.Matches {
		stages = append(stages, m.Stage)
	}
	expected := []string{
		"Quarterfinal 1", "Quarterfinal 2", "Quarterfinal 3", "Quarterfinal 4",
		"Semifinal 1", "Semifinal 2", "Third place match", "Final",
	}
	if !slices.Equal(stages, expected) {
		t.Fatal("The bracket matches are not in playing order")
	}
}

func TestBracketPlay(t *testing.T) {
	teams := TeamSlice(8)
	ledger := NewLedger()
	bracket, err := NewBracket(bracketPairings(teams))
	if err != nil {
		t.Fatal(err)
	}

	if bracket.Medals() != nil {
		t.Fatal("Medals were awarded before the bracket was played")
	}

	if err := bracket.Play(&StrongerWinsSimulator{}, ledger); err != nil {
		t.Fatal(err)
	}

	sf := bracket.Semifinals
	eq1 := sf[0].Team1() == teams[0] && sf[0].Team2() == teams[3]
	eq2 := sf[1].Team1() == teams[1] && sf[1].Team2() == teams[2]
	eq3 := bracket.ThirdPlace.Team1() == teams[3] && bracket.ThirdPlace.Team2() == teams[2]
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("The winners did not advance through the bracket")
	}

	final := bracket.WinnerRankings[bracket.Final]
	if final.Winner() != teams[0] || final.Loser() != teams[1] {
		t.Fatal("The final ranking does not hold winner and loser")
	}

	medals := bracket.Medals()
	if !slices.Equal(medals, []*Team{teams[0], teams[1], teams[2]}) {
		t.Fatalf("Unexpected medals %s", TeamCodes(medals))
	}

	seen := make(map[*Team]bool)
	for _, m := range medals {
		if seen[m] || !slices.Contains(teams, m) {
			t.Fatal("The medalists are not 3 distinct bracket participants")
		}
		seen[m] = true
	}

	if !ledger.Defeated(teams[0], teams[1]) {
		t.Fatal("The final was not recorded in the ledger")
	}
	first, last := ledger.Record(teams[0]), ledger.Record(teams[7])
	if first.NumMatches() != 3 || last.NumMatches() != 1 {
		t.Fatal("The ledger does not hold the bracket matches")
	}
}

func TestBracketSize(t *testing.T) {
	teams := TeamSlice(8)
	_, err := NewBracket(bracketPairings(teams)[:3])
	if !errors.Is(err, ErrBracketSize) {
		t.Fatal("A bracket with 3 pairings was created")
	}
}
