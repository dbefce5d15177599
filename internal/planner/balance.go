package planner

import "github.com/danieljhkim/showorder/internal/model"

// encodeBalance keeps blocks within one weighted unit of each other and
// non-empty. Non-empty blocks plus distinct values put the boundaries in
// ascending order.
func encodeBalance(p *Plan) {
	edges := p.edges()
	p.Model.Require(model.BlockBalance(edges, p.shortVars(), p.N()))
	for i := 1; i < len(edges); i++ {
		p.Model.Require(model.Diff(edges[i-1], edges[i], 2, model.Unbounded))
	}
}
