package aspen

import "testing"

// poolItem is a trivial Poolable for exercising the pool on its own.
type poolItem struct {
	id     int
	resets int
}

func (i *poolItem) Reset() {
	i.id = 0
	i.resets++
}

func TestPoolObtainWhenEmptyUsesNew(t *testing.T) {
	made := 0
	p := Pool[*poolItem]{New: func() *poolItem {
		made++
		return &poolItem{}
	}}

	a := p.Obtain()
	b := p.Obtain()
	if made != 2 {
		t.Errorf("New called %d times, want 2", made)
	}
	if a == b {
		t.Error("distinct obtains returned the same instance")
	}
	if p.Len() != 0 {
		t.Errorf("pool len = %d, want 0", p.Len())
	}
}

func TestPoolFreeResetsAndStores(t *testing.T) {
	p := Pool[*poolItem]{New: func() *poolItem { return &poolItem{} }}

	item := p.Obtain()
	item.id = 42
	p.Free(item)

	if item.resets != 1 {
		t.Errorf("Reset called %d times on free, want 1", item.resets)
	}
	if item.id != 0 {
		t.Error("Free did not reset the item")
	}
	if p.Len() != 1 {
		t.Errorf("pool len = %d after free, want 1", p.Len())
	}

	// LIFO reuse: the freed item comes back.
	if got := p.Obtain(); got != item {
		t.Error("expected the freed instance back")
	}
	if p.Len() != 0 {
		t.Errorf("pool len = %d after reuse, want 0", p.Len())
	}
}

func TestPoolFreeManyObtainMany(t *testing.T) {
	made := 0
	p := Pool[*poolItem]{New: func() *poolItem {
		made++
		return &poolItem{}
	}}

	items := make([]*poolItem, 5)
	for i := range items {
		items[i] = p.Obtain()
	}
	for _, item := range items {
		p.Free(item)
	}
	if p.Len() != 5 {
		t.Fatalf("pool len = %d, want 5", p.Len())
	}

	for range items {
		p.Obtain()
	}
	if made != 5 {
		t.Errorf("New called %d times total, want 5 (reuse, no growth)", made)
	}
}

func TestPoolSteadyStateZeroAlloc(t *testing.T) {
	p := Pool[*poolItem]{New: func() *poolItem { return &poolItem{} }}
	p.Free(p.Obtain()) // warm up backing array

	allocs := testing.AllocsPerRun(100, func() {
		p.Free(p.Obtain())
	})
	if allocs > 0 {
		t.Errorf("Obtain/Free cycle allocated %f times per run, want 0", allocs)
	}
}
