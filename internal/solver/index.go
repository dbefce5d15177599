package solver

import "github.com/danieljhkim/showorder/internal/model"

// index maps every variable to the constraints that read it. It is shared
// read-only by all workers.
type index struct {
	store *model.Store
	hard  []model.Constraint
	soft  []model.Soft

	hardOf [][]int
	softOf [][]int

	// global constraints are re-evaluated after every placement.
	globalHard []int
	globalSoft []int

	// optimum is the sum of all positive soft weights, the best objective
	// any assignment could reach.
	optimum int
}

func newIndex(store *model.Store) *index {
	n := store.Size()
	idx := &index{
		store:  store,
		hard:   store.Hard(),
		soft:   store.Soft(),
		hardOf: make([][]int, n),
		softOf: make([][]int, n),
	}
	for i, c := range idx.hard {
		vars := c.Vars()
		if vars == nil {
			idx.globalHard = append(idx.globalHard, i)
			continue
		}
		for _, v := range vars {
			idx.hardOf[v.ID] = append(idx.hardOf[v.ID], i)
		}
	}
	for i, s := range idx.soft {
		if s.Weight > 0 {
			idx.optimum += s.Weight
		}
		vars := s.Constraint.Vars()
		if vars == nil {
			idx.globalSoft = append(idx.globalSoft, i)
			continue
		}
		for _, v := range vars {
			idx.softOf[v.ID] = append(idx.softOf[v.ID], i)
		}
	}
	return idx
}
