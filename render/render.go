// Package render writes tournament results as text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"knockoutsim/internal"
	"knockoutsim/odds"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	stageStyle   = lipgloss.NewStyle().Underline(true)
)

// Writes every stage of the tournament result
func Result(w io.Writer, result *internal.Result) error {
	sections := []func(io.Writer, *internal.Result) error{
		GroupRounds,
		Standings,
		Qualifiers,
		Draw,
		Elimination,
		Medals,
	}
	for _, section := range sections {
		if err := section(w, result); err != nil {
			return err
		}
	}
	return nil
}

// Writes the group phase matches round by round
func GroupRounds(w io.Writer, result *internal.Result) error {
	var sb strings.Builder
	for _, round := range result.GroupRounds {
		sb.WriteString(heading("Group phase - " + round.Name))
		for i, groupRound := range round.NestedRounds {
			fmt.Fprintf(&sb, "  %s\n", stageStyle.Render("Group "+result.Groups[i].Name))
			for _, m := range groupRound.Matches {
				fmt.Fprintf(&sb, "    %s\n", rankedMatch(m))
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Writes the final standing table of each group
func Standings(w io.Writer, result *internal.Result) error {
	var sb strings.Builder
	sb.WriteString(heading("Final group standings"))
	for _, g := range result.Groups {
		rows := make([][]string, 0, len(g.Teams))
		for i, t := range g.Teams {
			record := result.GroupLedger.Record(t)
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				t.Name,
				strconv.Itoa(record.Wins),
				strconv.Itoa(record.Losses),
				strconv.Itoa(record.Points),
				strconv.Itoa(record.Scored),
				strconv.Itoa(record.Conceded),
				signed(record.Difference()),
				strconv.Itoa(t.Rank),
				strings.Join(result.GroupLedger.DefeatedBy(t), ","),
			})
		}
		standing := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "Team", "W", "L", "Pts", "Scored", "Conceded", "Diff", "Rank", "Defeated").
			Rows(rows...)
		fmt.Fprintf(&sb, "  Group %s\n%s\n", g.Name, standing.Render())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Writes the cross group ranking of the qualifiers
func Qualifiers(w io.Writer, result *internal.Result) error {
	rows := make([][]string, 0, len(result.Qualifiers))
	for i, t := range result.Qualifiers {
		record := result.GroupLedger.Record(t)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			t.Name,
			strconv.Itoa(record.Points),
			signed(record.Difference()),
			strconv.Itoa(record.Scored),
		})
	}
	ranking := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Team", "Pts", "Diff", "Scored").
		Rows(rows...)

	var sb strings.Builder
	sb.WriteString(heading("Qualifiers for the elimination phase"))
	sb.WriteString(ranking.Render())
	sb.WriteRune('\n')
	if result.Dropped != nil {
		fmt.Fprintf(&sb, "  Eliminated as worst 3rd place: %s\n", result.Dropped.Name)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Writes the pots and the quarterfinal pairings
func Draw(w io.Writer, result *internal.Result) error {
	var sb strings.Builder
	sb.WriteString(heading("Pots"))
	for _, pot := range result.Draw.Pots {
		fmt.Fprintf(&sb, "  Pot %s\n", pot.Name)
		for _, t := range pot.Teams {
			fmt.Fprintf(&sb, "    %s\n", t.Name)
		}
	}
	if len(result.Draw.Unseeded) > 0 {
		names := make([]string, 0, len(result.Draw.Unseeded))
		for _, t := range result.Draw.Unseeded {
			names = append(names, t.Name)
		}
		fmt.Fprintf(&sb, "  Not drawn: %s\n", strings.Join(names, ", "))
	}

	sb.WriteString(heading("Elimination pairings"))
	for i, p := range result.Draw.Pairings {
		if i == len(result.Draw.Pairings)/2 {
			sb.WriteRune('\n')
		}
		fmt.Fprintf(&sb, "  %s - %s\n", p.Team1.Name, p.Team2.Name)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Writes the elimination matches round by round
func Elimination(w io.Writer, result *internal.Result) error {
	var sb strings.Builder
	for _, round := range result.EliminationRounds {
		sb.WriteString(heading(round.Name))
		for _, m := range round.Matches {
			fmt.Fprintf(&sb, "  %s\n", m)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Writes the medalists
func Medals(w io.Writer, result *internal.Result) error {
	var sb strings.Builder
	sb.WriteString(heading("Medals"))
	for i, t := range result.Medals {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, t.Name)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Writes the medal odds table
func Odds(w io.Writer, o *odds.Odds) error {
	rows := make([][]string, 0, len(o.Teams))
	for _, c := range o.Table() {
		rows = append(rows, []string{
			c.Team.Name,
			percent(c.Gold, o.Runs),
			percent(c.Silver, o.Runs),
			percent(c.Bronze, o.Runs),
			percent(c.Medals(), o.Runs),
			percent(c.Quarterfinals, o.Runs),
		})
	}
	oddsTable := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Team", "Gold", "Silver", "Bronze", "Any medal", "Quarterfinal").
		Rows(rows...)

	var sb strings.Builder
	sb.WriteString(heading(fmt.Sprintf("Medal odds over %d tournaments", o.Runs)))
	sb.WriteString(oddsTable.Render())
	sb.WriteRune('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func heading(text string) string {
	return headingStyle.Render(text) + "\n"
}

func rankedMatch(m *internal.Match) string {
	t1, t2 := m.Team1(), m.Team2()
	return fmt.Sprintf(
		"%s (%d) - %s (%d) (%d:%d)",
		t1.Name, t1.Rank, t2.Name, t2.Rank,
		m.Score.Points1(), m.Score.Points2(),
	)
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func percent(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(count)/float64(total))
}
