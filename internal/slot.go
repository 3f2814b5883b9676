package internal

// A Slot is either a spot in a Ranking or one of two places
// in a Match.
//
// A Slot represents one of 2 things:
//   - An actual team
//   - A not yet determined qualification called a Placement.
//     (e.g. the slots of the final are the winners
//     of the semi-finals)
//
// A placement slot changes what it is representing as the
// tournament progresses. When the results of the semi-finals
// become known the final slots go from undetermined
// qualifications to actual teams.
type Slot struct {
	team      *Team
	placement *Placement
	id        int
}

// Returns the team occupying the slot or nil
// when the slot is not determined yet
func (s *Slot) Team() *Team {
	return s.team
}

func (s *Slot) Placement() *Placement {
	return s.placement
}

func (s *Slot) Id() int {
	return s.id
}

// Updates the return value of the Team method.
// This method is called when the ranking that this
// slot is dependant on updates. The dependency is stored
// in the ranking's list of dependant slots
// [Ranking.DependantSlots].
func (s *Slot) Update() {
	if s.placement == nil {
		return
	}
	slot := s.placement.Slot()
	if slot == nil {
		s.team = nil
		return
	}
	s.team = slot.Team()
}

func NewTeamSlot(team *Team) *Slot {
	return &Slot{team: team, id: NextNodeId()}
}

func NewPlacementSlot(placement *Placement) *Slot {
	slot := &Slot{placement: placement, id: NextNodeId()}
	placement.Ranking().AddDependantSlots(slot)
	return slot
}

// Returns the teams occupying the given slots.
// Unoccupied slots are skipped.
func SlotTeams(slots []*Slot) []*Team {
	teams := make([]*Team, 0, len(slots))
	for _, s := range slots {
		if t := s.Team(); t != nil {
			teams = append(teams, t)
		}
	}
	return teams
}
