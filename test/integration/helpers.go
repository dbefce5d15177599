package integration

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/clock"
	"github.com/danieljhkim/showorder/internal/config"
	"github.com/danieljhkim/showorder/internal/engine"
	"github.com/danieljhkim/showorder/internal/fsops"
	"github.com/danieljhkim/showorder/internal/hash"
)

// testdataPath returns the path of a file under the repository's testdata.
func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to locate test file")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}

// newTestEngine creates an engine on the real filesystem with default settings.
func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(fsops.NewRealFS(), hash.NewSHA256Hasher(), &clock.RealClock{}, config.DefaultSettings())
}

// loadRequest reads a show file from testdata and turns it into a request.
func loadRequest(t *testing.T, eng *engine.Engine, name string) *engine.OrderRequest {
	t.Helper()
	doc, err := eng.LoadDocument(testdataPath(t, name))
	if err != nil {
		t.Fatalf("LoadDocument(%s) error = %v", name, err)
	}
	req, err := eng.NewOrderRequest(doc)
	if err != nil {
		t.Fatalf("NewOrderRequest(%s) error = %v", name, err)
	}
	return req
}

// placed is one entry of a running order together with its unit's kind.
type placed struct {
	entry engine.Entry
	short bool
}

// checkOrder verifies every hard rule of a running order against its request.
func checkOrder(t *testing.T, req *engine.OrderRequest, order *engine.RunningOrder) {
	t.Helper()
	prefs := req.Preferences

	if len(order.Blocks) != prefs.NumBlocks {
		t.Errorf("expected %d blocks, got %d", prefs.NumBlocks, len(order.Blocks))
	}

	// Every unit appears exactly once.
	at := make(map[int]placed)
	seen := make(map[string]bool)
	for _, b := range order.Blocks {
		if len(b.Entries) == 0 {
			t.Errorf("block %d is empty", b.Number)
		}
		for _, e := range b.Entries {
			if seen[e.Name] {
				t.Errorf("%s placed twice", e.Name)
			}
			seen[e.Name] = true
			at[e.Position] = placed{entry: e, short: e.Kind != catalog.KindStandalone}
		}
	}
	if len(seen) != req.Show.Units() {
		t.Errorf("expected %d units, got %d", req.Show.Units(), len(seen))
	}
	n := req.Show.Units() + prefs.NumBlocks - 1

	// Block lengths in half units: short forms count half.
	lengths := make([]int, len(order.Blocks))
	for i, b := range order.Blocks {
		for _, e := range b.Entries {
			if e.Kind == catalog.KindStandalone {
				lengths[i] += 2
			} else {
				lengths[i]++
			}
		}
	}
	for i := range lengths {
		for j := range lengths {
			if lengths[i]-lengths[j] > 2 {
				t.Errorf("blocks %d and %d are unbalanced: %v half units", i+1, j+1, lengths)
			}
		}
	}

	// At most one diddy and one vignette part per block.
	for _, b := range order.Blocks {
		perKind := make(map[catalog.Kind]int)
		for _, e := range b.Entries {
			if e.Kind != catalog.KindStandalone {
				perKind[e.Kind]++
			}
		}
		for kind, c := range perKind {
			if c > 1 {
				t.Errorf("block %d holds %d units of kind %s", b.Number, c, kind)
			}
		}
	}

	// Short forms stay off the ends and apart.
	for pos, p := range at {
		if !p.short {
			continue
		}
		if pos == 1 || pos == n {
			t.Errorf("%s at an end of the show", p.entry.Name)
		}
		if next, ok := at[pos+1]; ok && next.short {
			t.Errorf("%s and %s are adjacent short forms", p.entry.Name, next.entry.Name)
		}
	}

	// Vignette parts run in order.
	last := make(map[string]int)
	for pos := 1; pos <= n; pos++ {
		p, ok := at[pos]
		if !ok || p.entry.Kind != catalog.KindVignette {
			continue
		}
		if prev, ok := last[p.entry.Item]; ok && prev > pos {
			t.Errorf("%s out of order", p.entry.Name)
		}
		last[p.entry.Item] = pos
	}

	// Quick changes: at most MaxChangesPerActor, never three in a row.
	changes := make(map[string]int)
	for pos := 1; pos < n; pos++ {
		a, okA := at[pos]
		b, okB := at[pos+1]
		if !okA || !okB {
			continue
		}
		for _, actor := range shared(a.entry.Actors, b.entry.Actors) {
			changes[actor]++
			if c, ok := at[pos+2]; ok && contains(c.entry.Actors, actor) {
				t.Errorf("%s has a triple change at %d", actor, pos)
			}
		}
	}
	for actor, c := range changes {
		if c > prefs.MaxChangesPerActor {
			t.Errorf("%s has %d quick changes, max %d", actor, c, prefs.MaxChangesPerActor)
		}
	}

	if len(prefs.DesiredLast) > 0 && prefs.LastMode != "soft" {
		if p := at[n]; !contains(prefs.DesiredLast, p.entry.Item) {
			t.Errorf("expected one of %v last, got %s", prefs.DesiredLast, p.entry.Name)
		}
	}
	if len(prefs.DesiredFirst) > 0 && prefs.FirstMode != "soft" {
		if p := at[1]; !contains(prefs.DesiredFirst, p.entry.Item) {
			t.Errorf("expected one of %v first, got %s", prefs.DesiredFirst, p.entry.Name)
		}
	}
}

func shared(a, b []string) []string {
	var out []string
	for _, x := range a {
		if contains(b, x) {
			out = append(out, x)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
