package planner

import "github.com/danieljhkim/showorder/internal/model"

// assignSlots creates one slot variable per unit and NumBlocks-1 boundary
// variables, all over the domain 1..N and pairwise distinct.
func assignSlots(p *Plan) {
	for _, it := range p.Show.Items {
		for k := 0; k < it.Units(); k++ {
			p.addSlot(it, k)
		}
	}
	for i := 1; i < p.Prefs.NumBlocks; i++ {
		p.addBoundary(i)
	}

	n := p.N()
	vars := p.Model.Vars()
	for _, v := range vars {
		p.Model.Require(model.InDomain(v, n))
	}
	p.Model.Require(model.AllDifferent(vars))
}
