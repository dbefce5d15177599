package planner

import "github.com/danieljhkim/showorder/internal/model"

const (
	smallCast = 2
	largeCast = 5
)

// encodeSizing spaces out units of the same size class. Small units have
// two actors or fewer, large units five or more.
func encodeSizing(p *Plan) {
	var small, large []Slot
	for _, s := range p.Slots {
		if p.Prefs.SkipShortFormSizing && s.Short() {
			continue
		}
		switch n := len(s.Actors); {
		case n <= smallCast:
			small = append(small, s)
		case n >= largeCast:
			large = append(large, s)
		}
	}
	spread(p, small, p.Prefs.NoAdjacentSmalls)
	spread(p, large, p.Prefs.NoAdjacentBigs)
}

func spread(p *Plan, slots []Slot, hard bool) {
	for i := range slots {
		for _, other := range slots[i+1:] {
			// Short forms are never adjacent to each other already.
			if slots[i].Short() && other.Short() {
				continue
			}
			adj := model.Adjacent(slots[i].Var, other.Var)
			if hard {
				p.Model.Require(model.Not(adj))
			} else {
				p.Model.Prefer(adj, -p.Prefs.Weights.SizeClash)
			}
		}
	}
}
