package render

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knockoutsim/basketball"
	"knockoutsim/internal"
	"knockoutsim/odds"
)

// The stronger ranked team always wins 80:70
type strongerWins struct{}

func (strongerWins) Simulate(strength1, strength2 int) internal.Score {
	if strength1 < strength2 {
		score, _ := basketball.NewScore(80, 70)
		return score
	}
	score, _ := basketball.NewScore(70, 80)
	return score
}

func testResult(t *testing.T, numGroups int) *internal.Result {
	rng := rand.New(rand.NewSource(3))
	return runTournament(t, numGroups, basketball.NewSimulator(rng), rng)
}

func runTournament(t *testing.T, numGroups int, simulator internal.MatchSimulator, rng internal.Rand) *internal.Result {
	groups := make([]internal.GroupEntries, 0, numGroups)
	for g := range numGroups {
		teams := make([]*internal.Team, 0, internal.GroupSize)
		for i := range internal.GroupSize {
			code := fmt.Sprintf("C%d%d", g, i)
			teams = append(teams, internal.NewTeam("Country "+code, code, g*internal.GroupSize+i+1))
		}
		groups = append(groups, internal.GroupEntries{Name: string(rune('A' + g)), Teams: teams})
	}

	logger, _ := logtest.NewNullLogger()
	tournament, err := internal.NewTournament(groups, simulator, rng, logger)
	require.NoError(t, err)

	result, err := tournament.Run()
	require.NoError(t, err)
	return result
}

func TestResult(t *testing.T) {
	result := testResult(t, 3)

	var buf bytes.Buffer
	require.NoError(t, Result(&buf, result))
	out := buf.String()

	for _, section := range []string{
		"Group phase - Round 1",
		"Group phase - Round 3",
		"Final group standings",
		"Qualifiers for the elimination phase",
		"Pots",
		"Elimination pairings",
		"Quarterfinals",
		"Semifinals",
		"Third place match",
		"Final",
		"Medals",
	} {
		assert.Contains(t, out, section)
	}

	assert.Contains(t, out, "Eliminated as worst 3rd place: "+result.Dropped.Name)
	assert.NotContains(t, out, "Not drawn")

	for i, m := range result.Medals {
		assert.Contains(t, out, fmt.Sprintf("%d. %s", i+1, m.Name))
	}

	final := result.EliminationRounds[3].Matches[0]
	assert.Contains(t, out, final.String())
}

func TestStandings(t *testing.T) {
	result := testResult(t, 3)

	var buf bytes.Buffer
	require.NoError(t, Standings(&buf, result))
	out := buf.String()

	for _, header := range []string{"Pts", "Scored", "Conceded", "Diff", "Defeated"} {
		assert.Contains(t, out, header)
	}
	for _, g := range result.Groups {
		assert.Contains(t, out, "Group "+g.Name)
		for _, team := range g.Teams {
			assert.Contains(t, out, team.Name)
		}
	}
}

// Returns the trimmed cells of the table row that contains the text
func rowCells(t *testing.T, out, text string) []string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, text) {
			continue
		}
		cells := make([]string, 0, 10)
		for _, c := range strings.Split(line, "│") {
			if c = strings.TrimSpace(c); c != "" {
				cells = append(cells, c)
			}
		}
		return cells
	}
	t.Fatalf("no row with %q", text)
	return nil
}

func TestStandingsGroupPhaseOnly(t *testing.T) {
	result := runTournament(t, 3, strongerWins{}, rand.New(rand.NewSource(1)))
	gold := result.Medals[0]
	require.Equal(t, "C00", gold.Code)

	var buf bytes.Buffer
	require.NoError(t, Standings(&buf, result))

	// #, Team, W, L, Pts, Scored, Conceded, Diff, Rank, Defeated
	expected := []string{"1", gold.Name, "3", "0", "6", "240", "210", "+30", "1", "C01,C02,C03"}
	assert.Equal(t, expected, rowCells(t, buf.String(), gold.Name))

	runnerUp := rowCells(t, buf.String(), "Country C01")
	assert.Equal(t, "2", runnerUp[0])
	assert.Equal(t, "2", runnerUp[2])
	assert.Equal(t, "1", runnerUp[3])
	assert.Equal(t, "5", runnerUp[4])

	buf.Reset()
	require.NoError(t, Qualifiers(&buf, result))
	assert.Equal(t, []string{"1", gold.Name, "6", "+30", "240"}, rowCells(t, buf.String(), gold.Name))

	fullRecord := result.Ledger.Record(gold)
	assert.Equal(t, 6, fullRecord.NumMatches())
}

func TestDrawUnseeded(t *testing.T) {
	result := testResult(t, 4)
	require.Len(t, result.Draw.Unseeded, 3)

	var buf bytes.Buffer
	require.NoError(t, Draw(&buf, result))
	out := buf.String()

	assert.Contains(t, out, "Not drawn: "+result.Draw.Unseeded[0].Name)
	for _, name := range internal.PotNames {
		assert.Contains(t, out, "Pot "+name)
	}
}

func TestOdds(t *testing.T) {
	spain := internal.NewTeam("Spain", "ESP", 2)
	japan := internal.NewTeam("Japan", "JPN", 26)
	o := &odds.Odds{
		Runs: 4,
		Teams: map[string]*odds.Count{
			"ESP": {Team: spain, Gold: 3, Bronze: 1, Quarterfinals: 4},
			"JPN": {Team: japan, Gold: 1, Quarterfinals: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Odds(&buf, o))
	out := buf.String()

	assert.Contains(t, out, "Medal odds over 4 tournaments")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "100.0%")
	assert.Less(t, strings.Index(out, "Spain"), strings.Index(out, "Japan"))
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+5", signed(5))
	assert.Equal(t, "0", signed(0))
	assert.Equal(t, "-3", signed(-3))
	assert.Equal(t, "0.0%", percent(1, 0))
	assert.Equal(t, "50.0%", percent(1, 2))
}
