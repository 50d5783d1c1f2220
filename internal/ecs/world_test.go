package ecs

import "testing"

const (
	bagType ComponentType = 1
	tagType ComponentType = 2
)

type bag struct{ slots int }

func (bag) Type() ComponentType { return bagType }

type tag struct{}

func (tag) Type() ComponentType { return tagType }

func TestCreateEntityIsAliveAndUnique(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == NilEntity || b == NilEntity {
		t.Fatal("expected non-nil entity IDs")
	}
	if a == b {
		t.Fatalf("expected distinct IDs, both were %d", a)
	}
	if !w.Alive(a) || !w.Alive(b) {
		t.Fatal("expected entities to be alive after creation")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, bag{slots: 4})

	c := w.Get(id, bagType)
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	b, ok := c.(bag)
	if !ok {
		t.Fatalf("wrong component type returned: %T", c)
	}
	if b.slots != 4 {
		t.Fatalf("expected slots=4, got %d", b.slots)
	}
}

func TestAddReplacesSameType(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, bag{slots: 1})
	w.Add(id, bag{slots: 9})

	if got := w.Get(id, bagType).(bag).slots; got != 9 {
		t.Fatalf("slots = %d; want 9", got)
	}
}

func TestAddToDeadEntityIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.DestroyEntity(id)
	w.Add(id, bag{})

	if w.Has(id, bagType) {
		t.Fatal("dead entity must not receive components")
	}
}

func TestPointerComponentsShareState(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	p := &bag{slots: 2}
	w.Add(id, p)

	p.slots = 3
	if got := w.Get(id, bagType).(*bag).slots; got != 3 {
		t.Fatalf("slots = %d; want 3 (stored pointer should see the change)", got)
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, bag{slots: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, bagType) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
	// Destroying twice must not panic.
	w.DestroyEntity(id)
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, bag{slots: 5})
	w.Remove(id, bagType)

	if w.Has(id, bagType) {
		t.Fatal("component should be gone after Remove")
	}
	// Removing a type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestQueryFiltersAndSorts(t *testing.T) {
	w := NewWorld()
	var both []EntityID
	for i := 0; i < 5; i++ {
		id := w.CreateEntity()
		w.Add(id, bag{})
		if i%2 == 0 {
			w.Add(id, tag{})
			both = append(both, id)
		}
	}

	got := w.Query(bagType, tagType)
	if len(got) != len(both) {
		t.Fatalf("Query returned %v; want %v", got, both)
	}
	for i := range both {
		if got[i] != both[i] {
			t.Fatalf("Query returned %v; want %v", got, both)
		}
	}
	if w.Query() != nil {
		t.Fatal("Query with no types must return nil")
	}
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, bag{})
	dead := w.CreateEntity()
	w.Add(dead, bag{})
	w.DestroyEntity(dead)

	got := w.Query(bagType)
	if len(got) != 1 || got[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", got)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	if _, ok := w.First(tagType); ok {
		t.Fatal("First on an empty world must report no match")
	}

	untagged := w.CreateEntity()
	w.Add(untagged, bag{})
	a := w.CreateEntity()
	w.Add(a, bag{})
	w.Add(a, tag{})
	b := w.CreateEntity()
	w.Add(b, bag{})
	w.Add(b, tag{})

	id, ok := w.First(bagType, tagType)
	if !ok || id != a {
		t.Fatalf("First = (%d, %v); want (%d, true)", id, ok, a)
	}

	w.DestroyEntity(a)
	id, ok = w.First(bagType, tagType)
	if !ok || id != b {
		t.Fatalf("after destroy First = (%d, %v); want (%d, true)", id, ok, b)
	}
}

func TestRemoveLastComponentOfType(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Add(e, bag{})
	w.Add(e, tag{})

	w.Remove(e, tagType)
	w.Remove(e, tagType) // already gone

	if got := w.Query(tagType); len(got) != 0 {
		t.Fatalf("Query(tag) after removal = %v; want none", got)
	}
	if got := w.Query(bagType); len(got) != 1 || got[0] != e {
		t.Fatalf("Query(bag) = %v; want [%d]", got, e)
	}
	if _, ok := w.First(bagType, tagType); ok {
		t.Fatal("First must not match an entity missing one of the types")
	}

	w.Add(e, tag{})
	if id, ok := w.First(tagType); !ok || id != e {
		t.Fatalf("First(tag) after re-adding = (%d, %v); want (%d, true)", id, ok, e)
	}
}

func TestIDsAreNotReused(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.DestroyEntity(a)
	w.DestroyEntity(a) // no-op
	b := w.CreateEntity()
	if a == b || a == NilEntity || b == NilEntity {
		t.Fatalf("ids %d, %d: want distinct non-nil IDs", a, b)
	}
	if w.Alive(a) || !w.Alive(b) {
		t.Fatalf("Alive(a)=%v Alive(b)=%v; want false, true", w.Alive(a), w.Alive(b))
	}
	if got := w.Query(); got != nil {
		t.Fatalf("Query() = %v; want nil", got)
	}
}
