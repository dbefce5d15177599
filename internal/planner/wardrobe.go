package planner

import "github.com/danieljhkim/showorder/internal/model"

// actorSlots maps each actor to the slot variables they appear in. Keys keep
// first-seen order so the model is built the same way on every run.
type actorSlots struct {
	order []string
	slots map[string][]model.Var
}

func newActorSlots() *actorSlots {
	return &actorSlots{slots: make(map[string][]model.Var)}
}

func (a *actorSlots) add(actor string, v model.Var) {
	if _, ok := a.slots[actor]; !ok {
		a.order = append(a.order, actor)
	}
	a.slots[actor] = append(a.slots[actor], v)
}

func (a *actorSlots) get(actor string) []model.Var {
	return a.slots[actor]
}

// encodeWardrobe forbids triple changes, caps quick changes per actor and
// penalizes every quick change.
func encodeWardrobe(p *Plan) {
	index := newActorSlots()
	for _, s := range p.Slots {
		for _, a := range s.Actors {
			index.add(a.Name, s.Var)
		}
	}

	for _, actor := range index.order {
		slots := index.get(actor)
		var changes []model.Constraint
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				adj := model.Adjacent(slots[i], slots[j])
				p.Model.Prefer(adj, -p.Prefs.Weights.QuickChange)
				changes = append(changes, adj)
				for k := j + 1; k < len(slots); k++ {
					p.Model.Require(model.Not(tripleChange(slots[i], slots[j], slots[k])))
				}
			}
		}
		if len(changes) > p.Prefs.MaxChangesPerActor {
			p.Model.Require(model.AtMost(p.Prefs.MaxChangesPerActor, changes...))
		}
	}
}

// tripleChange holds when x, y and z take three consecutive positions in any
// order.
func tripleChange(x, y, z model.Var) model.Constraint {
	return model.Or(
		model.And(model.Adjacent(x, y), model.Adjacent(y, z)),
		model.And(model.Adjacent(y, x), model.Adjacent(x, z)),
		model.And(model.Adjacent(y, z), model.Adjacent(z, x)),
	)
}
