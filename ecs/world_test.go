package ecs

import (
	"testing"

	"github.com/milk9111/shroomydoomy/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
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
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if got := len(Entities(w)); got != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, got)
				}
			}
		})
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.ID() != old.ID() {
		t.Fatalf("expected slot reuse, got id %d want %d", reused.ID(), old.ID())
	}
	if reused == old {
		t.Fatalf("reused handle must differ from the destroyed one")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}

	kind := component.NewComponentKind[int]()
	if err := Add(w, old, kind, intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get(w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove(w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove(w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get(w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove(w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})

	t.Run("nil_value_rejected", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)
		kind := component.NewComponentKind[int]()
		if err := Add(w, e, kind, nil); err != component.ErrNilComponent {
			t.Fatalf("expected ErrNilComponent, got %v", err)
		}
	})

	t.Run("destroy_clears_components", func(t *testing.T) {
		w := NewWorld()
		kind := component.NewComponentKind[int]()
		e := CreateEntity(w)
		if err := Add(w, e, kind, intPtr(3)); err != nil {
			t.Fatal(err)
		}
		DestroyEntity(w, e)
		reused := CreateEntity(w)
		if Has(w, reused, kind) {
			t.Fatalf("reused slot inherited a component from a destroyed entity")
		}
	})
}

func TestMustGetPanicsWhenMissing(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	kind := component.NewComponentKind[int]()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustGet to panic on a missing component")
		}
	}()
	MustGet(w, e, kind)
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
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
	})

	t.Run("destroy_during_iteration", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponentKind[int]()
		for i := 0; i < 5; i++ {
			e := CreateEntity(w)
			if err := Add(w, e, h, intPtr(i)); err != nil {
				t.Fatal(err)
			}
		}

		visited := 0
		ForEach(w, h, func(e Entity, _ *int) {
			visited++
			DestroyEntity(w, e)
		})
		if visited != 5 {
			t.Fatalf("expected 5 visits, got %d", visited)
		}
		if w.Len() != 0 {
			t.Fatalf("expected empty world, got %d entities", w.Len())
		}
	})
}

func TestQuery(t *testing.T) {
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

				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e2, ka, intPtr(2))
				_ = Add(w, e2, kb, intPtr(3))
				_ = Add(w, e2, kc, intPtr(5))
				_ = Add(w, e3, kb, intPtr(4))
				_ = Add(w, e4, kc, intPtr(6))

				res := Query(w, ka, kb, kc)
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "snapshot_not_live",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				e1 := CreateEntity(w)
				_ = Add(w, e1, ka, intPtr(1))

				snap := Query(w, ka)
				e2 := CreateEntity(w)
				_ = Add(w, e2, ka, intPtr(2))

				if len(snap) != 1 {
					t.Fatalf("snapshot changed after mutation: %v", snap)
				}
				if got := Query(w, ka); len(got) != 2 {
					t.Fatalf("expected 2 entities in fresh query, got %v", got)
				}
			},
		},
		{
			name: "sorted_by_slot",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				ents := []Entity{CreateEntity(w), CreateEntity(w), CreateEntity(w)}
				for i := len(ents) - 1; i >= 0; i-- {
					_ = Add(w, ents[i], ka, intPtr(i))
				}
				res := Query(w, ka)
				for i := range ents {
					if res[i] != ents[i] {
						t.Fatalf("expected slot order %v, got %v", ents, res)
					}
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				_ = Add(w, e, ka, intPtr(1))

				if res := Query(w, ka, kb); len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
		{
			name: "foreach2_pairs",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e1, kb, stringPtr("one"))
				_ = Add(w, e2, ka, intPtr(2))

				var got []string
				ForEach2(w, ka, kb, func(_ Entity, _ *int, s *string) { got = append(got, *s) })
				if len(got) != 1 || got[0] != "one" {
					t.Fatalf("expected [one], got %v", got)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}
