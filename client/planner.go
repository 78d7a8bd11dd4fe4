package client

import (
	"strconv"

	"github.com/packtime/api/catalog"
)

// PlannerSet tracks which section ids the user has saved. It exists to
// answer the add/remove button state question; the persisted list
// itself lives on the backend. Ids are normalized to strings so live
// sections and the bundled local courses share one key space.
type PlannerSet struct {
	ids map[string]struct{}
}

// NewPlannerSet returns an empty set.
func NewPlannerSet() *PlannerSet {
	return &PlannerSet{ids: make(map[string]struct{})}
}

// Load replaces the set with the saved sections fetched from the
// backend. Called when the planner view opens.
func (p *PlannerSet) Load(sections []catalog.Section) {
	p.ids = make(map[string]struct{}, len(sections))
	for _, s := range sections {
		p.ids[strconv.Itoa(s.SectionID)] = struct{}{}
	}
}

// Add marks an id as planned.
func (p *PlannerSet) Add(id string) {
	p.ids[id] = struct{}{}
}

// Remove unmarks an id.
func (p *PlannerSet) Remove(id string) {
	delete(p.ids, id)
}

// Has reports planner membership for a display course id.
func (p *PlannerSet) Has(id string) bool {
	_, ok := p.ids[id]
	return ok
}

// Len is the number of planned sections.
func (p *PlannerSet) Len() int {
	return len(p.ids)
}
