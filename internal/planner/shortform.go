package planner

import (
	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/model"
)

// encodeShortForms keeps vignette parts in authored order, allows at most one
// vignette part and one diddy per block, and keeps short forms off the ends
// and away from each other.
func encodeShortForms(p *Plan) {
	for _, it := range p.Show.Items {
		if it.Kind != catalog.KindVignette {
			continue
		}
		parts := p.ItemVars(it.Name)
		for k := 1; k < len(parts); k++ {
			p.Model.Require(model.Less(model.V(parts[k-1]), model.V(parts[k])))
		}
	}

	edges := p.edges()
	for _, kind := range []catalog.Kind{catalog.KindVignette, catalog.KindDiddy} {
		vars := p.slotsOfKind(kind)
		if len(vars) < 2 {
			continue
		}
		for b := 1; b < len(edges); b++ {
			exclusiveInBlock(p, vars, edges[b-1], edges[b])
		}
	}

	n := p.N()
	short := p.shortVars()
	for i, v := range short {
		p.Model.Require(model.Not(model.At(v, 1)), model.Not(model.At(v, n)))
		for _, w := range short[i+1:] {
			p.Model.Require(model.Not(model.Adjacent(v, w)))
		}
	}
}

// exclusiveInBlock requires that when one of vars lies inside the block
// (start, end), none of the others does.
func exclusiveInBlock(p *Plan, vars []model.Var, start, end model.Term) {
	inside := make([]model.Constraint, len(vars))
	for i, v := range vars {
		inside[i] = model.Within(v, start, end)
	}
	for i := range inside {
		others := make([]model.Constraint, 0, len(inside)-1)
		others = append(others, inside[:i]...)
		others = append(others, inside[i+1:]...)
		p.Model.Require(model.Implies(inside[i], model.Not(model.Or(others...))))
	}
}
