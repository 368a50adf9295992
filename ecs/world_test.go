package ecs

import (
	"testing"

	"github.com/milk9111/hookshift/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func TestEntityGenerationReuse(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(7)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}

	reborn := CreateEntity(w)
	if reborn.id() != old.id() {
		t.Fatalf("expected slot reuse, got id %d vs %d", reborn.id(), old.id())
	}
	if reborn == old {
		t.Fatal("reused slot must carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle should be dead")
	}
	if _, ok := Get(w, reborn, k); ok {
		t.Fatal("reborn entity should not inherit the old component")
	}
	if _, ok := Get(w, old, k); ok {
		t.Fatal("stale handle should not resolve a component")
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	if err := Add(w, e1, h1.Kind(), intPtr(10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	v, ok := Get(w, e1, h1.Kind())
	if !ok || *v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}

	// Get hands out the stored pointer, so mutations stick.
	*v = 11
	v2, _ := Get(w, e1, h1.Kind())
	if *v2 != 11 {
		t.Fatalf("expected in-place mutation to persist, got %d", *v2)
	}

	if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, h2.Kind(), stringPtr("b")); err != nil {
		t.Fatal(err)
	}
	if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
		t.Fatalf("expected both entities to have string component")
	}

	if !Remove(w, e1, h1.Kind()) {
		t.Fatal("remove should return true")
	}
	if Has(w, e1, h1.Kind()) {
		t.Fatal("component should be gone after remove")
	}
	if Remove(w, e1, h1.Kind()) {
		t.Fatal("second remove should return false")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	dead := CreateEntity(w)
	DestroyEntity(w, dead)
	if err := Add(w, dead, h.Kind(), intPtr(1)); err == nil {
		t.Fatal("expected error adding to dead entity")
	}

	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), nil); err == nil {
		t.Fatal("expected error adding nil component")
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); err == nil {
		t.Fatal("expected error adding with zero kind")
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, add := range []struct {
					e Entity
					k component.ComponentKind[int]
					v int
				}{
					{e1, ka, 1},
					{e2, ka, 2},
					{e2, kb, 3},
					{e2, kc, 5},
					{e3, kb, 4},
					{e4, kc, 6},
				} {
					if err := Add(w, add.e, add.k, intPtr(add.v)); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, k := range []component.ComponentKind[int]{ka, kb, kc} {
					if err := Add(w, e, k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEachAllowsDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 {
		t.Fatalf("expected to visit all 4 entities, visited %d", visited)
	}
	if got := len(Entities(w)); got != 0 {
		t.Fatalf("expected empty world after destroying during iteration, got %d", got)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	if _, ok := First(w, h.Kind()); ok {
		t.Fatal("expected no match in empty world")
	}

	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	got, ok := First(w, h.Kind())
	if !ok || got != e {
		t.Fatalf("expected %v, got %v ok=%v", e, got, ok)
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()

	w.Events().Push(Event{Type: EventRoomCreated, Data: EntityEvent{Entity: 1}})
	w.Events().Push(Event{Type: EventObjectReaped, Data: EntityEvent{Entity: 2}})

	evs := w.Events().Drain()
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].Type != EventRoomCreated || evs[1].Type != EventObjectReaped {
		t.Fatalf("unexpected event order: %v", evs)
	}
	if again := w.Events().Drain(); len(again) != 0 {
		t.Fatalf("expected drain to empty the queue, got %d", len(again))
	}
}
