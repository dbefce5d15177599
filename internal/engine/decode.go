package engine

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/showorder/internal/planner"
)

// BlockSeparator is the line printed between blocks.
const BlockSeparator = "---------------BLOCK---------------"

// Decode turns solved positions, indexed by variable ID, into a running
// order. Boundaries start new blocks; slots resolve to their item or part.
func Decode(plan *planner.Plan, values []int) (*RunningOrder, error) {
	n := plan.N()
	if len(values) != n {
		return nil, fmt.Errorf("%w: got %d values for %d variables", ErrInvalidAssignment, len(values), n)
	}

	at := make([]int, n+1)
	for i := range at {
		at[i] = -1
	}
	for id, pos := range values {
		if pos < 1 || pos > n {
			return nil, fmt.Errorf("%w: position %d outside 1..%d", ErrInvalidAssignment, pos, n)
		}
		if at[pos] != -1 {
			return nil, fmt.Errorf("%w: position %d taken twice", ErrInvalidAssignment, pos)
		}
		at[pos] = id
	}

	order := &RunningOrder{Blocks: []Block{{Number: 1, Entries: []Entry{}}}}
	for pos := 1; pos <= n; pos++ {
		slot, ok := plan.SlotOf(at[pos])
		if !ok {
			order.Blocks = append(order.Blocks, Block{Number: len(order.Blocks) + 1, Entries: []Entry{}})
			continue
		}
		actors := make([]string, len(slot.Actors))
		for i, a := range slot.Actors {
			actors[i] = a.Name
		}
		cur := &order.Blocks[len(order.Blocks)-1]
		cur.Entries = append(cur.Entries, Entry{
			Position: pos,
			Name:     slot.Name,
			Item:     slot.Item,
			Kind:     slot.Kind,
			Actors:   actors,
		})
	}
	return order, nil
}

// Lines renders the order as "Name: actor actor" lines with a separator
// line between blocks.
func (o *RunningOrder) Lines() []string {
	var lines []string
	for i, b := range o.Blocks {
		if i > 0 {
			lines = append(lines, BlockSeparator)
		}
		for _, e := range b.Entries {
			lines = append(lines, strings.TrimSpace(e.Name+": "+strings.Join(e.Actors, " ")))
		}
	}
	return lines
}

// Names returns the unit names in show order.
func (o *RunningOrder) Names() []string {
	var names []string
	for _, b := range o.Blocks {
		for _, e := range b.Entries {
			names = append(names, e.Name)
		}
	}
	return names
}
