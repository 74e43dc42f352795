package selection

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/worldmap/catalog"
)

// checkInvariants verifies active-implies-selected and catalog-sourced entries
func checkInvariants(t *testing.T, step int, s State, cat *catalog.Catalog) {
	t.Helper()
	if id, ok := s.Active(); ok && !s.IsSelected(id) {
		t.Fatalf("step %d: active %q not selected", step, id)
	}
	if len(s.Selected()) != s.Count() {
		t.Fatalf("step %d: order length %d != count %d", step, len(s.Selected()), s.Count())
	}
	for _, e := range s.Selected() {
		attrs, ok := cat.Lookup(e.ID)
		if !ok {
			t.Fatalf("step %d: selected %q not in catalog", step, e.ID)
		}
		if attrs != e.Attributes {
			t.Fatalf("step %d: snapshot for %q = %+v, want %+v", step, e.ID, e.Attributes, attrs)
		}
	}
}

func TestMonkeyOperations(t *testing.T) {
	cat := defaultCatalog(t)
	rng := rand.New(rand.NewSource(42))

	pool := []catalog.RegionID{"ATL"} // unknown id mixed in
	for _, r := range cat.Regions() {
		pool = append(pool, r.ID)
	}

	var s State
	for step := 0; step < 5000; step++ {
		id := pool[rng.Intn(len(pool))]

		switch rng.Intn(5) {
		case 0, 1:
			wasSelected := s.IsSelected(id)
			prevActive, _ := s.Active()
			next, _ := Toggle(s, cat, id)

			// double toggle restores membership
			again, _ := Toggle(next, cat, id)
			if again.IsSelected(id) != wasSelected {
				t.Fatalf("step %d: double toggle of %q changed membership", step, id)
			}

			_, known := cat.Lookup(id)
			switch {
			case !known:
				if next.Count() != s.Count() {
					t.Fatalf("step %d: unknown toggle changed selection", step)
				}
			case !wasSelected:
				if a, _ := next.Active(); a != id {
					t.Fatalf("step %d: select %q left active %q", step, id, a)
				}
			case prevActive == id:
				if _, ok := next.Active(); ok {
					t.Fatalf("step %d: deselecting active %q kept it active", step, id)
				}
			default:
				if a, _ := next.Active(); a != prevActive {
					t.Fatalf("step %d: deselecting %q moved active %q -> %q", step, id, prevActive, a)
				}
			}
			s = next
		case 2:
			s, _ = SetActive(s, id)
		case 3:
			s, _ = SetActive(s, catalog.None)
		case 4:
			if rng.Intn(4) == 0 {
				s = ClearAll(s)
				for i := 0; i < rng.Intn(3); i++ {
					s = ClearAll(s)
				}
				if s.Count() != 0 {
					t.Fatalf("step %d: clear all left %d selected", step, s.Count())
				}
				if _, ok := s.Active(); ok {
					t.Fatalf("step %d: clear all left an active region", step)
				}
			}
		}

		checkInvariants(t, step, s, cat)
	}
}
