package planner

import (
	"fmt"

	"github.com/danieljhkim/showorder/internal/catalog"
)

// checkConflicts records rule combinations that are infeasible on counting
// grounds alone, so the solver is never asked to prove them.
func checkConflicts(p *Plan) {
	blocks := p.Prefs.NumBlocks

	diddies, vignettes, parts := 0, 0, 0
	for _, it := range p.Show.Items {
		switch it.Kind {
		case catalog.KindVignette:
			vignettes++
			parts += len(it.Parts)
			// One part per block at most.
			if len(it.Parts) > blocks {
				p.AddConflict(Conflict{
					Subject: it.Name,
					Reason:  fmt.Sprintf("vignette has %d parts but the show has only %d blocks", len(it.Parts), blocks),
				})
			}
		case catalog.KindDiddy:
			diddies++
		}
	}
	// The per-block limit on vignette parts holds across vignettes too.
	if vignettes > 1 && parts > blocks {
		p.AddConflict(Conflict{
			Subject: "vignette parts",
			Reason:  fmt.Sprintf("%d vignette parts cannot be spread one per block over %d blocks", parts, blocks),
		})
	}
	if diddies > blocks {
		p.AddConflict(Conflict{
			Subject: "diddies",
			Reason:  fmt.Sprintf("%d diddies cannot be spread one per block over %d blocks", diddies, blocks),
		})
	}

	// Short forms need a neighbour on both sides that is not a short form.
	short := len(p.shortVars())
	if short > 0 && 2*short > p.N()-1 {
		p.AddConflict(Conflict{
			Subject: "short forms",
			Reason:  fmt.Sprintf("%d diddies and vignette parts cannot all be buffered by the other %d positions", short, p.N()-short),
		})
	}

	if blocks == 1 && len(p.Prefs.DifferentBlocks) > 0 {
		p.AddConflict(Conflict{
			Subject: "different-block pairs",
			Reason:  "items cannot be kept in different blocks of a single-block show",
		})
	}
}
