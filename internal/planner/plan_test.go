package planner

import (
	"testing"

	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/model"
)

func TestNewPlan(t *testing.T) {
	show := &catalog.Show{Items: []catalog.Item{catalog.Standalone("A")}}
	plan := NewPlan(show, DefaultPreferences())

	if plan.Model == nil {
		t.Fatal("expected Model to be initialized")
	}
	if plan.Slots == nil || len(plan.Slots) != 0 {
		t.Errorf("expected empty Slots, got %v", plan.Slots)
	}
	if plan.Conflicts == nil || len(plan.Conflicts) != 0 {
		t.Errorf("expected empty Conflicts, got %v", plan.Conflicts)
	}
	if plan.N() != 0 {
		t.Errorf("N() = %d, want 0", plan.N())
	}
}

func TestPlan_HasConflicts(t *testing.T) {
	tests := []struct {
		name      string
		conflicts []Conflict
		wantHas   bool
	}{
		{
			name:      "no conflicts",
			conflicts: []Conflict{},
			wantHas:   false,
		},
		{
			name: "has conflicts",
			conflicts: []Conflict{
				{Subject: "Doordash", Reason: "vignette has 5 parts but the show has only 4 blocks"},
			},
			wantHas: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewPlan(&catalog.Show{}, DefaultPreferences())
			for _, c := range tt.conflicts {
				plan.AddConflict(c)
			}

			if has := plan.HasConflicts(); has != tt.wantHas {
				t.Errorf("HasConflicts() = %v, want %v", has, tt.wantHas)
			}
		})
	}
}

func TestPlan_SlotsAndBoundaries(t *testing.T) {
	show := &catalog.Show{Items: []catalog.Item{
		catalog.Standalone("A", catalog.Actors("x", "y")...),
		catalog.Vignette("V", catalog.Actors("x"), catalog.Actors("z")),
		catalog.Diddy("T", catalog.Actors("w")...),
	}}
	prefs := DefaultPreferences()
	prefs.NumBlocks = 2

	plan, err := Build(show, prefs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if plan.N() != 5 {
		t.Errorf("N() = %d, want 5", plan.N())
	}
	if len(plan.Slots) != 4 {
		t.Errorf("expected 4 slots, got %d", len(plan.Slots))
	}
	if len(plan.Boundaries) != 1 {
		t.Fatalf("expected 1 boundary, got %d", len(plan.Boundaries))
	}
	if plan.Boundaries[0].Kind != model.KindBoundary || plan.Boundaries[0].Name != "Block 1" {
		t.Errorf("unexpected boundary %+v", plan.Boundaries[0])
	}

	wantNames := []string{"A", "V 1", "V 2", "T"}
	for i, s := range plan.Slots {
		if s.Name != wantNames[i] {
			t.Errorf("slot %d: expected name %q, got %q", i, wantNames[i], s.Name)
		}
		got, ok := plan.SlotOf(s.Var.ID)
		if !ok || got.Name != s.Name {
			t.Errorf("SlotOf(%d) = %+v, %v", s.Var.ID, got, ok)
		}
	}
	if _, ok := plan.SlotOf(plan.Boundaries[0].ID); ok {
		t.Error("expected boundary to have no slot")
	}

	parts := plan.ItemVars("V")
	if len(parts) != 2 || parts[0].Name != "V 1" || parts[1].Name != "V 2" {
		t.Errorf("ItemVars(V) = %v", parts)
	}
	if !plan.Slots[3].Short() || plan.Slots[0].Short() {
		t.Error("expected only diddy and vignette slots to be short")
	}
}
