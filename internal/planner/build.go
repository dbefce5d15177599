package planner

import "github.com/danieljhkim/showorder/internal/catalog"

// Build validates prefs against show and encodes the ordering problem.
// Conflicts found on counting grounds are recorded on the plan; the model is
// still complete.
func Build(show *catalog.Show, prefs Preferences) (*Plan, error) {
	if err := Validate(show, prefs); err != nil {
		return nil, err
	}

	p := NewPlan(show, prefs.withDefaults())
	assignSlots(p)
	checkConflicts(p)

	encodeBalance(p)
	encodeWardrobe(p)
	encodeShortForms(p)
	encodeSizing(p)
	encodePlacement(p)

	return p, nil
}
