package planner

import (
	"strconv"

	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/model"
)

// Plan is the constraint model of one ordering request together with the
// bookkeeping needed to decode a solution.
type Plan struct {
	// Show is the catalog the plan was built from
	Show *catalog.Show

	// Prefs are the preferences with defaults applied
	Prefs Preferences

	// Model holds every variable and constraint
	Model *model.Store

	// Slots lists one entry per positionable unit, in variable order
	Slots []Slot

	// Boundaries lists the block boundary variables, first block first
	Boundaries []model.Var

	// Conflicts lists reasons the request cannot be satisfied (empty if none)
	Conflicts []Conflict

	itemSlots map[string][]model.Var
	slotByVar map[int]int
}

// Slot binds a slot variable to one unit of an item.
type Slot struct {
	// Var is the decision variable of the unit
	Var model.Var

	// Item is the name of the owning item
	Item string

	// Kind is the owning item's kind
	Kind catalog.Kind

	// Unit is the part index for vignettes and 0 otherwise
	Unit int

	// Name is the display name of the unit ("Doordash 2" for a part)
	Name string

	// Actors are the actors performing in the unit
	Actors []catalog.Actor
}

// Short reports whether the slot belongs to a diddy or a vignette.
func (s Slot) Short() bool {
	return s.Kind == catalog.KindDiddy || s.Kind == catalog.KindVignette
}

// Conflict describes a rule combination that no running order can satisfy.
type Conflict struct {
	// Subject names the item, actor or option the conflict is about
	Subject string `json:"subject" yaml:"subject"`

	// Reason is a human-readable explanation of the conflict
	Reason string `json:"reason" yaml:"reason"`
}

// NewPlan creates an empty Plan for show.
func NewPlan(show *catalog.Show, prefs Preferences) *Plan {
	return &Plan{
		Show:       show,
		Prefs:      prefs,
		Model:      model.NewStore(),
		Slots:      []Slot{},
		Boundaries: []model.Var{},
		Conflicts:  []Conflict{},
		itemSlots:  make(map[string][]model.Var),
		slotByVar:  make(map[int]int),
	}
}

// HasConflicts returns true if the plan has any conflicts.
func (p *Plan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// AddConflict adds a conflict to the plan.
func (p *Plan) AddConflict(conflict Conflict) {
	p.Conflicts = append(p.Conflicts, conflict)
}

// N returns the number of variables, which is also the last position.
func (p *Plan) N() int {
	return p.Model.Size()
}

// SlotOf returns the slot bound to variable id.
func (p *Plan) SlotOf(id int) (Slot, bool) {
	i, ok := p.slotByVar[id]
	if !ok {
		return Slot{}, false
	}
	return p.Slots[i], true
}

// ItemVars returns the slot variables of the named item in unit order.
func (p *Plan) ItemVars(name string) []model.Var {
	return p.itemSlots[name]
}

func (p *Plan) addSlot(it catalog.Item, unit int) model.Var {
	v := p.Model.NewVar(it.UnitName(unit), model.KindSlot)
	p.slotByVar[v.ID] = len(p.Slots)
	p.Slots = append(p.Slots, Slot{
		Var:    v,
		Item:   it.Name,
		Kind:   it.Kind,
		Unit:   unit,
		Name:   it.UnitName(unit),
		Actors: it.ActorsAt(unit),
	})
	p.itemSlots[it.Name] = append(p.itemSlots[it.Name], v)
	return v
}

func (p *Plan) addBoundary(i int) model.Var {
	v := p.Model.NewVar("Block "+strconv.Itoa(i), model.KindBoundary)
	p.Boundaries = append(p.Boundaries, v)
	return v
}

// edges returns the block delimiters from the virtual boundary at 0 to the
// virtual boundary at N+1.
func (p *Plan) edges() []model.Term {
	edges := make([]model.Term, 0, len(p.Boundaries)+2)
	edges = append(edges, model.C(0))
	for _, b := range p.Boundaries {
		edges = append(edges, model.V(b))
	}
	return append(edges, model.C(p.N()+1))
}

// shortVars returns the slot variables of vignette parts followed by those of
// diddies.
func (p *Plan) shortVars() []model.Var {
	var vignettes, diddies []model.Var
	for _, s := range p.Slots {
		switch s.Kind {
		case catalog.KindVignette:
			vignettes = append(vignettes, s.Var)
		case catalog.KindDiddy:
			diddies = append(diddies, s.Var)
		}
	}
	return append(vignettes, diddies...)
}

func (p *Plan) slotsOfKind(kind catalog.Kind) []model.Var {
	var vars []model.Var
	for _, s := range p.Slots {
		if s.Kind == kind {
			vars = append(vars, s.Var)
		}
	}
	return vars
}
