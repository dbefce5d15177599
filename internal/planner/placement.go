package planner

import (
	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/model"
)

// encodePlacement applies the optional placement and pairing preferences.
// Names have been checked by Validate.
func encodePlacement(p *Plan) {
	n := p.N()
	placeAt(p, p.Prefs.DesiredFirst, 1, p.Prefs.FirstMode)
	placeAt(p, p.Prefs.DesiredLast, n, p.Prefs.LastMode)

	for _, pair := range p.Prefs.NonAdjacent {
		keepApart(p, pair)
	}

	for _, pair := range p.Prefs.DifferentBlocks {
		x, y := p.ItemVars(pair.A)[0], p.ItemVars(pair.B)[0]
		var separators []model.Constraint
		for _, b := range p.Boundaries {
			separators = append(separators,
				model.Within(b, model.V(x), model.V(y)),
				model.Within(b, model.V(y), model.V(x)),
			)
		}
		p.Model.Require(model.Or(separators...))
	}

	for _, name := range p.Prefs.BlockStarters {
		v := p.ItemVars(name)[0]
		starts := []model.Constraint{model.At(v, 1)}
		for _, b := range p.Boundaries {
			starts = append(starts, model.Equal(model.V(v), model.V(b), 1))
		}
		p.Model.Require(model.Or(starts...))
	}

	if len(p.Boundaries) > 0 {
		first := p.Boundaries[0]
		for _, name := range p.Prefs.NotInFirstBlock {
			v := p.ItemVars(name)[0]
			p.Model.Require(model.Less(model.V(first), model.V(v)))
		}
	}
}

// placeAt asks for one of names at pos (hard), or rewards each of names for
// being there (soft).
func placeAt(p *Plan, names []string, pos int, mode Mode) {
	if len(names) == 0 {
		return
	}
	options := make([]model.Constraint, len(names))
	for i, name := range names {
		options[i] = model.At(p.ItemVars(name)[0], pos)
	}
	if mode == ModeSoft {
		for _, c := range options {
			p.Model.Prefer(c, p.Prefs.Weights.Placement)
		}
		return
	}
	p.Model.Require(model.Or(options...))
}

// keepApart forbids or discourages adjacency between every unit of pair.A
// and every unit of pair.B. A soft pair spreads its weight over the parts of
// a vignette.
func keepApart(p *Plan, pair Pair) {
	a, _ := p.Show.Item(pair.A)
	b, _ := p.Show.Item(pair.B)
	if a.Short() && b.Short() {
		return
	}

	weight := p.Prefs.Weights.Pairing
	for _, it := range []catalog.Item{a, b} {
		if it.Kind == catalog.KindVignette {
			weight /= len(it.Parts)
		}
	}
	if weight < 1 {
		weight = 1
	}

	for _, x := range p.ItemVars(pair.A) {
		for _, y := range p.ItemVars(pair.B) {
			adj := model.Adjacent(x, y)
			if p.Prefs.NonAdjacentMode == ModeSoft {
				p.Model.Prefer(adj, -weight)
			} else {
				p.Model.Require(model.Not(adj))
			}
		}
	}
}
