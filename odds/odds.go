// Package odds estimates medal chances by simulating many
// independent tournaments.
package odds

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"knockoutsim/basketball"
	"knockoutsim/internal"
)

var ErrNoRuns = errors.New("the number of runs must be positive")

type Config struct {
	// Number of simulated tournaments
	Runs int
	// Number of tournaments simulated in parallel.
	// Zero or less uses GOMAXPROCS.
	Workers int
	// Run i is seeded with Seed+i
	Seed int64
	// Forward the log entries of every tournament run
	Verbose bool
}

// The number of times a team reached a result
type Count struct {
	Team *internal.Team

	Gold, Silver, Bronze int
	Quarterfinals        int
}

func (c *Count) Medals() int {
	return c.Gold + c.Silver + c.Bronze
}

type Odds struct {
	Runs int

	// The counts by team code
	Teams map[string]*Count
}

// Returns the counts sorted by gold, silver, bronze and
// quarterfinal appearances. Equal counts are ordered by
// strength rank.
func (o *Odds) Table() []*Count {
	counts := make([]*Count, 0, len(o.Teams))
	for _, c := range o.Teams {
		counts = append(counts, c)
	}
	slices.SortFunc(counts, func(a, b *Count) int {
		return cmp.Or(
			cmp.Compare(b.Gold, a.Gold),
			cmp.Compare(b.Silver, a.Silver),
			cmp.Compare(b.Bronze, a.Bronze),
			cmp.Compare(b.Quarterfinals, a.Quarterfinals),
			cmp.Compare(a.Team.Rank, b.Team.Rank),
			cmp.Compare(a.Team.Code, b.Team.Code),
		)
	})
	return counts
}

// Returns the share of runs the team won gold in
func (o *Odds) GoldProbability(code string) float64 {
	c, ok := o.Teams[code]
	if !ok || o.Runs == 0 {
		return 0
	}
	return float64(c.Gold) / float64(o.Runs)
}

type outcome struct {
	medals        []*internal.Team
	quarterfinals []*internal.Team
}

// Simulates cfg.Runs tournaments of the given groups and
// counts the results. Every run has its own random source,
// so the odds are reproducible for the same seed regardless
// of the number of workers.
func Simulate(
	ctx context.Context,
	groups []internal.GroupEntries,
	cfg Config,
	logger logrus.FieldLogger,
) (*Odds, error) {
	if cfg.Runs <= 0 {
		return nil, ErrNoRuns
	}
	if err := internal.ValidateGroups(groups); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	runLogger := logger
	if !cfg.Verbose {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		runLogger = quiet
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger.WithFields(logrus.Fields{
		"runs":    cfg.Runs,
		"workers": workers,
		"seed":    cfg.Seed,
	}).Info("Simulating tournaments")

	outcomes := make([]outcome, cfg.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cfg.Runs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := runOnce(groups, cfg.Seed+int64(i), runLogger.WithField("run", i))
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			outcomes[i] = o
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return merge(groups, outcomes), nil
}

func runOnce(groups []internal.GroupEntries, seed int64, logger logrus.FieldLogger) (outcome, error) {
	rng := rand.New(rand.NewSource(seed))
	simulator := basketball.NewSimulator(rng)

	tournament, err := internal.NewTournament(groups, simulator, rng, logger)
	if err != nil {
		return outcome{}, err
	}
	result, err := tournament.Run()
	if err != nil {
		return outcome{}, err
	}

	quarterfinals := make([]*internal.Team, 0, internal.NumSeeded)
	for _, p := range result.Draw.Pairings {
		quarterfinals = append(quarterfinals, p.Team1, p.Team2)
	}

	return outcome{medals: result.Medals, quarterfinals: quarterfinals}, nil
}

func merge(groups []internal.GroupEntries, outcomes []outcome) *Odds {
	odds := &Odds{
		Runs:  len(outcomes),
		Teams: make(map[string]*Count),
	}
	for _, g := range groups {
		for _, t := range g.Teams {
			odds.Teams[t.Code] = &Count{Team: t}
		}
	}

	for _, o := range outcomes {
		for _, t := range o.quarterfinals {
			odds.Teams[t.Code].Quarterfinals += 1
		}
		for place, t := range o.medals {
			c := odds.Teams[t.Code]
			switch place {
			case 0:
				c.Gold += 1
			case 1:
				c.Silver += 1
			case 2:
				c.Bronze += 1
			}
		}
	}

	return odds
}
