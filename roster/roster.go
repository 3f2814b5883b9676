// Package roster reads the groups and teams of a tournament from
// a YAML or JSON document.
//
// The document maps a group name to its teams:
//
//	A:
//	  - Team: Canada
//	    ISOCode: CAN
//	    FIBARanking: 7
//
// The JSON form of the same structure is read as well.
package roster

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"knockoutsim/internal"
)

var (
	ErrEmptyRoster = errors.New("the roster contains no groups")
	ErrMissingName = errors.New("team has no name")
	ErrMissingCode = errors.New("team has no code")
	ErrInvalidRank = errors.New("team rank must be positive")
)

// One team entry of the roster document
type Entry struct {
	Team        string `yaml:"Team"`
	ISOCode     string `yaml:"ISOCode"`
	FIBARanking int    `yaml:"FIBARanking"`
}

// Reads the roster file at path
func Load(path string) ([]internal.GroupEntries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	groups, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return groups, nil
}

// Parses a roster document. The groups are returned
// ordered by their names.
func Parse(data []byte) ([]internal.GroupEntries, error) {
	var doc map[string][]Entry
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	if len(doc) == 0 {
		return nil, ErrEmptyRoster
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int { return cmp.Compare(a, b) })

	groups := make([]internal.GroupEntries, 0, len(names))
	for _, name := range names {
		entries := doc[name]
		teams := make([]*internal.Team, 0, len(entries))
		for i, e := range entries {
			team, err := e.team()
			if err != nil {
				return nil, fmt.Errorf("group %s, entry %d: %w", name, i+1, err)
			}
			teams = append(teams, team)
		}
		groups = append(groups, internal.GroupEntries{Name: name, Teams: teams})
	}

	return groups, nil
}

func (e Entry) team() (*internal.Team, error) {
	name := strings.TrimSpace(e.Team)
	code := strings.TrimSpace(e.ISOCode)
	switch {
	case name == "":
		return nil, ErrMissingName
	case code == "":
		return nil, ErrMissingCode
	case e.FIBARanking <= 0:
		return nil, ErrInvalidRank
	}
	return internal.NewTeam(name, code, e.FIBARanking), nil
}
