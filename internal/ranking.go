package internal

// A Ranking orders a set of Slots according to an implementation specific metric.
type Ranking interface {
	// Returns the current ranks
	Ranks() []*Slot

	// Returns the occupant of the ith place in the Ranking.
	// Returns nil if the place is unoccupied or out of bounds.
	At(i int) *Slot

	// Updates the return value of the Ranks() method.
	// Should be called whenever a result that influences the
	// ranking becomes known.
	UpdateRanks()

	// All slots that resolve their qualification from this
	// ranking are added here.
	AddDependantSlots(slots ...*Slot)

	// Returns all dependant slots
	DependantSlots() []*Slot

	GraphNode
}

type BaseRanking struct {
	ranks          []*Slot
	id             int
	dependantSlots []*Slot
}

func (r *BaseRanking) Ranks() []*Slot {
	return r.ranks
}

// Returns the teams occupying the ranks in order
func (r *BaseRanking) Teams() []*Team {
	return SlotTeams(r.ranks)
}

func (r *BaseRanking) At(i int) *Slot {
	if i >= len(r.ranks) || i < 0 {
		return nil
	}
	return r.ranks[i]
}

func (r *BaseRanking) UpdateRanks() {}

func (r *BaseRanking) AddDependantSlots(slots ...*Slot) {
	r.dependantSlots = append(r.dependantSlots, slots...)
}

func (r *BaseRanking) DependantSlots() []*Slot {
	return r.dependantSlots
}

func (r *BaseRanking) Id() int {
	return r.id
}

// Replaces the ranks with slots for the given teams
func (r *BaseRanking) setTeams(teams []*Team) {
	slots := make([]*Slot, 0, len(teams))
	for _, t := range teams {
		slots = append(slots, NewTeamSlot(t))
	}
	r.ranks = slots
}

func NewBaseRanking() BaseRanking {
	id := NextNodeId()
	return BaseRanking{id: id}
}

// The simplest possible ranking that just provides
// a list of directly team filled slots
type ConstantRanking struct {
	BaseRanking
}

// Creates a *ConstantRanking from the given slice of teams.
// The ranking will provide one Slot per team while
// keeping the order.
func NewConstantRanking(teams []*Team) *ConstantRanking {
	baseRanking := NewBaseRanking()
	baseRanking.setTeams(teams)
	return &ConstantRanking{BaseRanking: baseRanking}
}
