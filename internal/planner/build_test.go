package planner

import (
	"errors"
	"strings"
	"testing"

	"github.com/danieljhkim/showorder/internal/catalog"
)

var actors = catalog.Actors

// positions maps the given unit names to positions 1..N in order and
// returns values indexed by variable ID.
func positions(t *testing.T, p *Plan, order ...string) []int {
	t.Helper()
	if len(order) != p.N() {
		t.Fatalf("order has %d entries, plan has %d variables", len(order), p.N())
	}
	byName := make(map[string]int)
	for _, v := range p.Model.Vars() {
		byName[v.Name] = v.ID
	}
	values := make([]int, p.N())
	for i, name := range order {
		id, ok := byName[name]
		if !ok {
			t.Fatalf("unknown variable %q", name)
		}
		values[id] = i + 1
	}
	return values
}

func mustBuild(t *testing.T, items []catalog.Item, prefs Preferences) *Plan {
	t.Helper()
	show, err := catalog.NewShow(items, nil)
	if err != nil {
		t.Fatalf("NewShow() error = %v", err)
	}
	plan, err := Build(show, prefs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return plan
}

func prefsWith(blocks, maxChanges int) Preferences {
	p := DefaultPreferences()
	p.NumBlocks = blocks
	p.MaxChangesPerActor = maxChanges
	return p
}

func TestValidate(t *testing.T) {
	show, err := catalog.NewShow([]catalog.Item{
		catalog.Standalone("A", actors("x")...),
		catalog.Standalone("B", actors("y")...),
		catalog.Vignette("V", actors("z"), actors("w")),
		catalog.Diddy("T", actors("q")...),
	}, nil)
	if err != nil {
		t.Fatalf("NewShow() error = %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(p *Preferences)
		wantErr string
	}{
		{"defaults", func(p *Preferences) {}, ""},
		{"zero blocks", func(p *Preferences) { p.NumBlocks = 0 }, "positive integer"},
		{"negative changes", func(p *Preferences) { p.MaxChangesPerActor = -1 }, "non-negative"},
		{"too many blocks", func(p *Preferences) { p.NumBlocks = 5 }, "too many blocks"},
		{"unknown first", func(p *Preferences) { p.DesiredFirst = []string{"Z"} }, `"Z" is not`},
		{"vignette first", func(p *Preferences) { p.DesiredFirst = []string{"V"} }, `desired first items does not support vignette "V"`},
		{"diddy last", func(p *Preferences) { p.DesiredLast = []string{"T"} }, `desired last items does not support diddy "T"`},
		{"diddy in different blocks", func(p *Preferences) { p.DifferentBlocks = []Pair{{"A", "T"}} }, "different-block pairs does not support diddy"},
		{"vignette block starter", func(p *Preferences) { p.BlockStarters = []string{"V"} }, "block-starting items does not support vignette"},
		{"self pair", func(p *Preferences) { p.NonAdjacent = []Pair{{"A", "A"}} }, "with itself"},
		{"bad mode", func(p *Preferences) { p.FirstMode = "maybe" }, `first mode must be`},
		{"negative weight", func(p *Preferences) { p.Weights.Pairing = -1 }, "weights must be non-negative"},
		{"vignette not in first block", func(p *Preferences) { p.NotInFirstBlock = []string{"V"} }, ""},
		{"vignette non-adjacent", func(p *Preferences) { p.NonAdjacent = []Pair{{"V", "A"}} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := prefsWith(2, 1)
			tt.mutate(&prefs)
			err := Validate(show, prefs)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidPreferences) {
				t.Fatalf("Validate() error = %v, want ErrInvalidPreferences", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBuild_RejectsBeforeCreatingVariables(t *testing.T) {
	show, _ := catalog.NewShow([]catalog.Item{catalog.Standalone("A"), catalog.Standalone("B")}, nil)
	plan, err := Build(show, prefsWith(3, 1))
	if err == nil {
		t.Fatal("expected error for 3 blocks over 2 items")
	}
	if plan != nil {
		t.Error("expected no plan on configuration error")
	}
}

func TestBuild_Conflicts(t *testing.T) {
	tests := []struct {
		name        string
		items       []catalog.Item
		prefs       Preferences
		wantSubject string
	}{
		{
			name: "vignette longer than blocks",
			items: []catalog.Item{
				catalog.Standalone("A"), catalog.Standalone("B"), catalog.Standalone("C"), catalog.Standalone("D"),
				catalog.Vignette("V", actors("x"), actors("y"), actors("z")),
			},
			prefs:       prefsWith(2, 1),
			wantSubject: "V",
		},
		{
			name: "vignette parts across vignettes",
			items: []catalog.Item{
				catalog.Standalone("A"), catalog.Standalone("B"), catalog.Standalone("C"),
				catalog.Standalone("D"), catalog.Standalone("E"), catalog.Standalone("F"),
				catalog.Vignette("V", actors("x"), actors("y")),
				catalog.Vignette("W", actors("z"), actors("w")),
			},
			prefs:       prefsWith(3, 1),
			wantSubject: "vignette parts",
		},
		{
			name: "more diddies than blocks",
			items: []catalog.Item{
				catalog.Standalone("A"), catalog.Standalone("B"), catalog.Standalone("C"),
				catalog.Diddy("T1"), catalog.Diddy("T2"),
			},
			prefs:       prefsWith(1, 1),
			wantSubject: "diddies",
		},
		{
			name: "short forms cannot be buffered",
			items: []catalog.Item{
				catalog.Standalone("A"), catalog.Diddy("T1"), catalog.Diddy("T2"),
			},
			prefs:       prefsWith(2, 1),
			wantSubject: "short forms",
		},
		{
			name:  "different blocks in one block",
			items: []catalog.Item{catalog.Standalone("A"), catalog.Standalone("B")},
			prefs: func() Preferences {
				p := prefsWith(1, 1)
				p.DifferentBlocks = []Pair{{"A", "B"}}
				return p
			}(),
			wantSubject: "different-block pairs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := mustBuild(t, tt.items, tt.prefs)
			if !plan.HasConflicts() {
				t.Fatal("expected conflicts")
			}
			found := false
			for _, c := range plan.Conflicts {
				if c.Subject == tt.wantSubject {
					found = true
				}
			}
			if !found {
				t.Errorf("expected conflict about %q, got %+v", tt.wantSubject, plan.Conflicts)
			}
		})
	}
}

// Four three-actor pieces and a two-part vignette over two blocks.
func vignetteShow() []catalog.Item {
	return []catalog.Item{
		catalog.Standalone("P1", actors("a", "b", "c")...),
		catalog.Standalone("P2", actors("d", "e", "f")...),
		catalog.Standalone("P3", actors("g", "h", "i")...),
		catalog.Standalone("P4", actors("j", "k", "l")...),
		catalog.Vignette("V", actors("m"), actors("n")),
	}
}

func TestBuild_ShortFormsAndBalance(t *testing.T) {
	plan := mustBuild(t, vignetteShow(), prefsWith(2, 0))

	tests := []struct {
		name  string
		order []string
		valid bool
	}{
		{"balanced", []string{"P1", "V 1", "P2", "Block 1", "P3", "V 2", "P4"}, true},
		{"parts out of order", []string{"P1", "V 2", "P2", "Block 1", "P3", "V 1", "P4"}, false},
		{"two parts in one block", []string{"P1", "V 1", "P2", "V 2", "Block 1", "P3", "P4"}, false},
		{"part opens the show", []string{"V 1", "P1", "P2", "Block 1", "P3", "V 2", "P4"}, false},
		{"part closes the show", []string{"P1", "V 1", "P2", "Block 1", "P3", "P4", "V 2"}, false},
		{"unbalanced blocks", []string{"P1", "Block 1", "V 1", "P2", "P3", "V 2", "P4"}, false},
		{"boundary at the end", []string{"P1", "V 1", "P2", "P3", "V 2", "P4", "Block 1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := plan.Model.Check(positions(t, plan, tt.order...))
			if tt.valid && err != nil {
				t.Errorf("Check() unexpected error = %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Check() expected a violation")
			}
		})
	}
}

func TestBuild_DiddiesAndVignetteParts(t *testing.T) {
	items := []catalog.Item{
		catalog.Standalone("P1", actors("a", "b", "c")...),
		catalog.Standalone("P2", actors("d", "e", "f")...),
		catalog.Standalone("P3", actors("g", "h", "i")...),
		catalog.Standalone("P4", actors("j", "k", "l")...),
		catalog.Standalone("P5", actors("m", "n", "o")...),
		catalog.Standalone("P6", actors("p", "q", "r")...),
		catalog.Vignette("V", actors("s"), actors("t")),
		catalog.Diddy("T1", actors("u")...),
		catalog.Diddy("T2", actors("v")...),
	}
	plan := mustBuild(t, items, prefsWith(2, 0))
	if plan.HasConflicts() {
		t.Fatalf("unexpected conflicts: %+v", plan.Conflicts)
	}

	tests := []struct {
		name  string
		order []string
		valid bool
	}{
		{"one of each per block", []string{"P1", "T1", "P2", "V 1", "P3", "Block 1", "P4", "T2", "P5", "V 2", "P6"}, true},
		{"two diddies in one block", []string{"P1", "T1", "P2", "T2", "P3", "V 1", "Block 1", "P4", "V 2", "P5", "P6"}, false},
		{"diddy next to a vignette part", []string{"P1", "T1", "V 1", "P2", "P3", "Block 1", "P4", "T2", "P5", "V 2", "P6"}, false},
		{"vignette part next to a diddy", []string{"P1", "V 1", "T1", "P2", "P3", "Block 1", "P4", "V 2", "P5", "T2", "P6"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := plan.Model.Check(positions(t, plan, tt.order...))
			if tt.valid && err != nil {
				t.Errorf("Check() unexpected error = %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Check() expected a violation")
			}
		})
	}
}

func TestBuild_Wardrobe(t *testing.T) {
	items := []catalog.Item{
		catalog.Standalone("A", actors("x", "p1", "p2")...),
		catalog.Standalone("B", actors("x", "p3", "p4")...),
		catalog.Standalone("C", actors("x", "p5", "p6")...),
		catalog.Standalone("D", actors("y", "p7", "p8")...),
		catalog.Standalone("E", actors("z", "p9", "p0")...),
	}

	t.Run("no quick changes allowed", func(t *testing.T) {
		plan := mustBuild(t, items, prefsWith(1, 0))
		if err := plan.Model.Check(positions(t, plan, "A", "D", "B", "E", "C")); err != nil {
			t.Errorf("Check() unexpected error = %v", err)
		}
		if err := plan.Model.Check(positions(t, plan, "A", "B", "D", "C", "E")); err == nil {
			t.Error("expected A next to B to exceed zero quick changes")
		}
	})

	t.Run("triple change always forbidden", func(t *testing.T) {
		plan := mustBuild(t, items, prefsWith(1, 5))
		if err := plan.Model.Check(positions(t, plan, "A", "B", "D", "C", "E")); err != nil {
			t.Errorf("Check() unexpected error = %v", err)
		}
		if err := plan.Model.Check(positions(t, plan, "D", "B", "A", "C", "E")); err == nil {
			t.Error("expected three consecutive appearances to be rejected")
		}
	})

	t.Run("quick changes are penalized", func(t *testing.T) {
		plan := mustBuild(t, items, prefsWith(1, 5))
		apart, err := plan.Model.Score(positions(t, plan, "A", "D", "B", "E", "C"))
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		together, err := plan.Model.Score(positions(t, plan, "A", "B", "D", "C", "E"))
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		if together >= apart {
			t.Errorf("expected quick change to lower the score: together=%d apart=%d", together, apart)
		}
	})
}

func TestBuild_Sizing(t *testing.T) {
	items := []catalog.Item{
		catalog.Standalone("S1", actors("a")...),
		catalog.Standalone("S2", actors("b")...),
		catalog.Standalone("M", actors("c", "d", "e")...),
	}

	hard := prefsWith(1, 0)
	hard.NoAdjacentSmalls = true
	plan := mustBuild(t, items, hard)
	if err := plan.Model.Check(positions(t, plan, "S1", "M", "S2")); err != nil {
		t.Errorf("Check() unexpected error = %v", err)
	}
	if err := plan.Model.Check(positions(t, plan, "S1", "S2", "M")); err == nil {
		t.Error("expected adjacent smalls to be rejected")
	}

	soft := mustBuild(t, items, prefsWith(1, 0))
	if err := soft.Model.Check(positions(t, soft, "S1", "S2", "M")); err != nil {
		t.Errorf("Check() unexpected error = %v", err)
	}
	score, _ := soft.Model.Score(positions(t, soft, "S1", "S2", "M"))
	if score != -2 {
		t.Errorf("Score() = %d, want -2 for one small clash", score)
	}
}

func TestBuild_Placement(t *testing.T) {
	items := []catalog.Item{
		catalog.Standalone("A", actors("a1", "a2", "a3")...),
		catalog.Standalone("B", actors("b1", "b2", "b3")...),
		catalog.Standalone("C", actors("c1", "c2", "c3")...),
		catalog.Standalone("D", actors("d1", "d2", "d3")...),
	}

	tests := []struct {
		name   string
		mutate func(p *Preferences)
		valid  []string
		broken []string
	}{
		{
			name:   "desired first",
			mutate: func(p *Preferences) { p.DesiredFirst = []string{"B", "C"} },
			valid:  []string{"C", "A", "Block 1", "B", "D"},
			broken: []string{"A", "C", "Block 1", "B", "D"},
		},
		{
			name:   "desired last",
			mutate: func(p *Preferences) { p.DesiredLast = []string{"A"} },
			valid:  []string{"C", "B", "Block 1", "D", "A"},
			broken: []string{"A", "C", "Block 1", "B", "D"},
		},
		{
			name:   "non-adjacent pair",
			mutate: func(p *Preferences) { p.NonAdjacent = []Pair{{"A", "B"}} },
			valid:  []string{"A", "C", "Block 1", "B", "D"},
			broken: []string{"A", "B", "Block 1", "C", "D"},
		},
		{
			name:   "different blocks",
			mutate: func(p *Preferences) { p.DifferentBlocks = []Pair{{"A", "B"}} },
			valid:  []string{"B", "C", "Block 1", "A", "D"},
			broken: []string{"A", "B", "Block 1", "C", "D"},
		},
		{
			name:   "block starter",
			mutate: func(p *Preferences) { p.BlockStarters = []string{"D"} },
			valid:  []string{"A", "B", "Block 1", "D", "C"},
			broken: []string{"A", "B", "Block 1", "C", "D"},
		},
		{
			name:   "not in first block",
			mutate: func(p *Preferences) { p.NotInFirstBlock = []string{"A"} },
			valid:  []string{"C", "B", "Block 1", "A", "D"},
			broken: []string{"C", "A", "Block 1", "B", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := prefsWith(2, 3)
			tt.mutate(&prefs)
			plan := mustBuild(t, items, prefs)
			if err := plan.Model.Check(positions(t, plan, tt.valid...)); err != nil {
				t.Errorf("Check(valid) unexpected error = %v", err)
			}
			if err := plan.Model.Check(positions(t, plan, tt.broken...)); err == nil {
				t.Error("Check(broken) expected a violation")
			}
		})
	}
}

func TestBuild_SoftPlacement(t *testing.T) {
	items := []catalog.Item{
		catalog.Standalone("A", actors("a1", "a2", "a3")...),
		catalog.Standalone("B", actors("b1", "b2", "b3")...),
		catalog.Standalone("C", actors("c1", "c2", "c3")...),
	}
	prefs := prefsWith(1, 0)
	prefs.DesiredFirst = []string{"B"}
	prefs.FirstMode = ModeSoft
	plan := mustBuild(t, items, prefs)

	for _, order := range [][]string{{"B", "A", "C"}, {"A", "B", "C"}} {
		if err := plan.Model.Check(positions(t, plan, order...)); err != nil {
			t.Errorf("Check(%v) unexpected error = %v", order, err)
		}
	}
	first, _ := plan.Model.Score(positions(t, plan, "B", "A", "C"))
	other, _ := plan.Model.Score(positions(t, plan, "A", "B", "C"))
	if first-other != DefaultWeights().Placement {
		t.Errorf("expected placement reward %d, got %d", DefaultWeights().Placement, first-other)
	}
}

func TestBuild_SoftPairingSplitsOverParts(t *testing.T) {
	items := []catalog.Item{
		catalog.Standalone("A", actors("a1", "a2", "a3")...),
		catalog.Standalone("B", actors("b1", "b2", "b3")...),
		catalog.Standalone("C", actors("c1", "c2", "c3")...),
		catalog.Vignette("V", actors("v1", "v2", "v3"), actors("w1", "w2", "w3")),
	}
	prefs := prefsWith(2, 0)
	prefs.NonAdjacent = []Pair{{"A", "V"}}
	prefs.NonAdjacentMode = ModeSoft
	plan := mustBuild(t, items, prefs)

	// Every standalone position neighbours exactly one part, so A always
	// pays the pairing penalty once, split over the two parts.
	values := positions(t, plan, "A", "V 1", "Block 1", "B", "V 2", "C")
	if err := plan.Model.Check(values); err != nil {
		t.Fatalf("Check() unexpected error = %v", err)
	}
	score, err := plan.Model.Score(values)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if want := -DefaultWeights().Pairing / 2; score != want {
		t.Errorf("Score() = %d, want %d", score, want)
	}
}

func TestBuild_HardLargeClass(t *testing.T) {
	items := []catalog.Item{
		catalog.Standalone("B1", actors("a", "b", "c", "d", "e")...),
		catalog.Standalone("B2", actors("f", "g", "h", "i", "j")...),
		catalog.Standalone("M", actors("k", "l", "m")...),
	}

	hard := prefsWith(1, 0)
	hard.NoAdjacentBigs = true
	plan := mustBuild(t, items, hard)
	if err := plan.Model.Check(positions(t, plan, "B1", "M", "B2")); err != nil {
		t.Errorf("Check() unexpected error = %v", err)
	}
	if err := plan.Model.Check(positions(t, plan, "B1", "B2", "M")); err == nil {
		t.Error("expected adjacent large units to be rejected")
	}

	soft := mustBuild(t, items, prefsWith(1, 0))
	if err := soft.Model.Check(positions(t, soft, "B1", "B2", "M")); err != nil {
		t.Errorf("Check() unexpected error = %v", err)
	}
	score, _ := soft.Model.Score(positions(t, soft, "B1", "B2", "M"))
	if want := -DefaultWeights().SizeClash; score != want {
		t.Errorf("Score() = %d, want %d for one large clash", score, want)
	}
}

func TestBuild_SkipShortFormSizing(t *testing.T) {
	items := []catalog.Item{
		catalog.Standalone("S", actors("a")...),
		catalog.Diddy("T", actors("b")...),
		catalog.Standalone("M", actors("c", "d", "e")...),
	}

	prefs := prefsWith(1, 0)
	prefs.NoAdjacentSmalls = true
	sized := mustBuild(t, items, prefs)
	if err := sized.Model.Check(positions(t, sized, "S", "T", "M")); err == nil {
		t.Error("expected a small diddy next to a small standalone to be rejected")
	}

	prefs.SkipShortFormSizing = true
	skipped := mustBuild(t, items, prefs)
	if err := skipped.Model.Check(positions(t, skipped, "S", "T", "M")); err != nil {
		t.Errorf("Check() unexpected error = %v", err)
	}
}
