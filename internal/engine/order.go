package engine

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/danieljhkim/showorder/internal/planner"
	"github.com/danieljhkim/showorder/internal/solver"
)

// Algorithm steps:
// 1. Check the request and validate the show
// 2. Build the plan: validate preferences, create variables, encode rules
// 3. Stop on presolve conflicts
// 4. Solve within the timeout
// 5. Decode the best assignment into a running order
//
// A timeout without any solution is not an error: the result has
// Status solver.StatusTimedOut and no Order.
func (e *Engine) Order(ctx context.Context, req *OrderRequest) (*OrderResult, error) {
	logger := klog.FromContext(ctx).WithName("engine")

	if req.Show == nil {
		return nil, fmt.Errorf("%w: request has no show", ErrValidation)
	}
	if req.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %s", ErrValidation, req.Timeout)
	}
	if err := req.Show.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	plan, err := planner.Build(req.Show, req.Preferences)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	fingerprint, err := e.fingerprint(req)
	if err != nil {
		return nil, err
	}
	logger = logger.WithValues("fingerprint", short(fingerprint))

	result := &OrderResult{
		Fingerprint: fingerprint,
		Variables:   plan.N(),
		Seed:        req.Seed,
	}

	if plan.HasConflicts() {
		result.Status = solver.StatusInfeasible
		result.Conflicts = plan.Conflicts
		logger.V(1).Info("Presolve found conflicts", "conflicts", len(plan.Conflicts))
		return result, fmt.Errorf("%w: %s; relax a hard rule and try again", ErrInfeasible, describeConflicts(plan.Conflicts))
	}

	logger.V(1).Info("Solving", "items", len(req.Show.Items), "variables", plan.N(),
		"hard", len(plan.Model.Hard()), "soft", len(plan.Model.Soft()))
	sol, err := solver.Solve(klog.NewContext(ctx, logger), plan.Model, solver.Options{
		Timeout: req.Timeout,
		Workers: req.Workers,
		Seed:    req.Seed,
		Clock:   e.clock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to solve: %w", err)
	}

	result.Status = sol.Status
	result.Seed = sol.Seed
	result.Nodes = sol.Nodes
	result.Elapsed = sol.Elapsed

	switch sol.Status {
	case solver.StatusInfeasible:
		return result, fmt.Errorf("%w: no running order satisfies every hard rule; relax a hard rule and try again", ErrInfeasible)
	case solver.StatusTimedOut:
		logger.Info("No running order found before the timeout", "timeout", req.Timeout)
		return result, nil
	}

	order, err := Decode(plan, sol.Values)
	if err != nil {
		return nil, fmt.Errorf("failed to decode solution: %w", err)
	}
	result.Order = order
	result.Score = sol.Score
	return result, nil
}

// fingerprint hashes everything that determines the model and the search.
func (e *Engine) fingerprint(req *OrderRequest) (string, error) {
	data, err := yaml.Marshal(struct {
		Items       any
		Roster      any
		Preferences planner.Preferences
		Seed        uint64
	}{req.Show.Items, req.Show.Roster, req.Preferences, req.Seed})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}
	return e.hasher.HashBytes(data), nil
}

func short(fingerprint string) string {
	if len(fingerprint) > 12 {
		return fingerprint[:12]
	}
	return fingerprint
}

func describeConflicts(conflicts []planner.Conflict) string {
	parts := make([]string, len(conflicts))
	for i, c := range conflicts {
		parts[i] = c.Subject + ": " + c.Reason
	}
	return strings.Join(parts, "; ")
}
