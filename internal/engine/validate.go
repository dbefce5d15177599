package engine

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/planner"
)

// Validate checks a show and its preferences and builds the model without
// solving it. Conflicts are reported on the result, not as an error.
func (e *Engine) Validate(ctx context.Context, req *ValidateRequest) (*ValidateResult, error) {
	if req.Show == nil {
		return nil, fmt.Errorf("%w: request has no show", ErrValidation)
	}
	if err := req.Show.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	plan, err := planner.Build(req.Show, req.Preferences)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	kinds := make(map[catalog.Kind]int)
	for _, it := range req.Show.Items {
		kinds[it.Kind]++
	}

	result := &ValidateResult{
		Items:     len(req.Show.Items),
		Units:     req.Show.Units(),
		Actors:    len(req.Show.ActorNames()),
		Kinds:     kinds,
		Blocks:    req.Preferences.NumBlocks,
		Variables: plan.N(),
		Hard:      len(plan.Model.Hard()),
		Soft:      len(plan.Model.Soft()),
		Conflicts: plan.Conflicts,
	}
	klog.FromContext(ctx).V(1).Info("Validated show", "items", result.Items, "variables", result.Variables,
		"conflicts", len(result.Conflicts))
	return result, nil
}
