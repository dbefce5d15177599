package solver

import (
	"cmp"
	"context"
	"errors"
	"math/rand/v2"
	"slices"

	"k8s.io/klog/v2"

	"github.com/danieljhkim/showorder/internal/clock"
	"github.com/danieljhkim/showorder/internal/model"
)

var (
	errStopped = errors.New("search stopped")
	errLimit   = errors.New("node limit reached")
)

const (
	// checkEvery is how many nodes pass between deadline checks.
	checkEvery = 256

	// firstLimit is the node limit of the first restart.
	firstLimit = 1024
)

type worker struct {
	id     int
	ctx    context.Context
	logger klog.Logger
	idx    *index
	best   *incumbent
	rng    *rand.Rand

	deadline clock.Deadline

	a     *model.Assignment
	state []model.Truth
	trail []int
	bound int

	nodes  int64
	budget int64
}

type candidate struct {
	id    int
	bound int
}

func newWorker(ctx context.Context, id int, idx *index, best *incumbent, seed uint64, deadline clock.Deadline) *worker {
	return &worker{
		id:       id,
		ctx:      ctx,
		logger:   klog.FromContext(ctx).WithValues("worker", id),
		idx:      idx,
		best:     best,
		rng:      rand.New(rand.NewPCG(seed, uint64(id))),
		deadline: deadline,
		a:        model.NewAssignment(idx.store.Size()),
		state:    make([]model.Truth, len(idx.soft)),
		bound:    idx.optimum,
	}
}

// run searches until the tree is exhausted or the search is stopped. It
// reports whether the tree was exhausted.
func (w *worker) run() (bool, error) {
	if w.id == 0 {
		err := w.search()
		return err == nil, err
	}

	for limit := int64(firstLimit); ; limit *= 2 {
		w.budget = limit
		err := w.search()
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, errLimit) {
			return false, err
		}
		w.logger.V(4).Info("Restarting search", "nodes", w.nodes, "nextLimit", 2*limit)
	}
}

func (w *worker) search() error {
	if w.a.Filled() == w.a.Size() {
		return w.leaf()
	}

	for _, c := range w.candidates() {
		if err := w.tick(); err != nil {
			return err
		}
		if int64(c.bound) <= w.best.best() {
			continue
		}

		mark := len(w.trail)
		w.a.Place(c.id)
		if w.propagate(c.id) && int64(w.bound) > w.best.best() {
			if err := w.search(); err != nil {
				w.undo(mark)
				w.a.Unplace()
				return err
			}
		}
		w.undo(mark)
		w.a.Unplace()
	}
	return nil
}

// candidates returns the variables that can take the next position, best
// bound first.
func (w *worker) candidates() []candidate {
	var out []candidate
	for id := 0; id < w.a.Size(); id++ {
		if w.a.Placed(id) {
			continue
		}
		mark := len(w.trail)
		w.a.Place(id)
		if w.propagate(id) {
			out = append(out, candidate{id: id, bound: w.bound})
		}
		w.undo(mark)
		w.a.Unplace()
	}

	switch {
	case w.id == 0:
		slices.SortStableFunc(out, byBound)
	case w.id%2 == 1:
		w.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	default:
		w.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		slices.SortStableFunc(out, byBound)
	}
	return out
}

func byBound(x, y candidate) int {
	return cmp.Compare(y.bound, x.bound)
}

// propagate evaluates the constraints affected by placing id. It returns false
// when a hard constraint is violated.
func (w *worker) propagate(id int) bool {
	for _, i := range w.idx.hardOf[id] {
		if w.idx.hard[i].Eval(w.a) == model.False {
			return false
		}
	}
	for _, i := range w.idx.globalHard {
		if w.idx.hard[i].Eval(w.a) == model.False {
			return false
		}
	}
	for _, i := range w.idx.softOf[id] {
		w.settle(i)
	}
	for _, i := range w.idx.globalSoft {
		w.settle(i)
	}
	return true
}

// settle records soft constraint i once it is decided and tightens the bound.
func (w *worker) settle(i int) {
	if w.state[i] != model.Unknown {
		return
	}
	t := w.idx.soft[i].Constraint.Eval(w.a)
	if t == model.Unknown {
		return
	}
	w.state[i] = t
	w.trail = append(w.trail, i)
	w.bound += w.delta(i, t)
}

func (w *worker) undo(mark int) {
	for len(w.trail) > mark {
		i := w.trail[len(w.trail)-1]
		w.trail = w.trail[:len(w.trail)-1]
		w.bound -= w.delta(i, w.state[i])
		w.state[i] = model.Unknown
	}
}

// delta is the bound change when soft constraint i is decided as t. The
// bound starts optimistic: rewards counted, penalties not.
func (w *worker) delta(i int, t model.Truth) int {
	weight := w.idx.soft[i].Weight
	switch {
	case t == model.True && weight < 0:
		return weight
	case t == model.False && weight > 0:
		return -weight
	default:
		return 0
	}
}

func (w *worker) leaf() error {
	if !w.idx.store.SatisfiesOf(w.a) {
		return nil
	}
	values := w.a.Values()
	score := w.idx.store.ScoreOf(w.a)
	if int64(score) <= w.best.best() {
		return nil
	}

	values, score = w.improve(values, score)
	if w.best.offer(values, score) {
		w.logger.V(2).Info("New incumbent", "score", score, "nodes", w.nodes)
	}
	return nil
}

// improve hill-climbs from a complete assignment by swapping pairs of
// variables while the score goes up.
func (w *worker) improve(values []int, score int) ([]int, int) {
	a, err := model.AssignmentOf(values)
	if err != nil {
		return values, score
	}
	store := w.idx.store
	for improved := true; improved; {
		improved = false
		for x := 0; x < a.Size(); x++ {
			if w.ctx.Err() != nil || w.deadline.Expired() {
				return a.Values(), score
			}
			for y := x + 1; y < a.Size(); y++ {
				a.Swap(x, y)
				if store.SatisfiesOf(a) {
					if s := store.ScoreOf(a); s > score {
						score = s
						improved = true
						continue
					}
				}
				a.Swap(x, y)
			}
		}
	}
	return a.Values(), score
}

// tick counts a node and checks the stop conditions.
func (w *worker) tick() error {
	w.nodes++
	if w.budget > 0 {
		w.budget--
		if w.budget == 0 {
			return errLimit
		}
	}
	if w.nodes%checkEvery == 1 {
		if w.ctx.Err() != nil || w.deadline.Expired() {
			return errStopped
		}
	}
	return nil
}
