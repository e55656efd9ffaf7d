package ecs

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/wraith/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	tests := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{name: "single", create: 1, destroyIndex: 0, wantAlive: 0},
		{name: "destroy middle", create: 3, destroyIndex: 1, wantAlive: 2},
		{name: "no destroy", create: 2, destroyIndex: -1, wantAlive: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			var ents []Entity
			for range tt.create {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), tt.create)

			if tt.destroyIndex >= 0 {
				require.True(t, DestroyEntity(w, ents[tt.destroyIndex]))
				assert.False(t, IsAlive(w, ents[tt.destroyIndex]))
				assert.False(t, DestroyEntity(w, ents[tt.destroyIndex]), "second destroy is a no-op")
			}
			assert.Len(t, Entities(w), tt.wantAlive)
		})
	}
}

func TestNoEntityIsNeverAlive(t *testing.T) {
	w := NewWorld()
	CreateEntity(w)
	assert.False(t, IsAlive(w, NoEntity))
	assert.Equal(t, "none", NoEntity.String())
	assert.Equal(t, NoEntity, EntityFromRef(0))
}

func TestRefRoundTrip(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	assert.Equal(t, e, EntityFromRef(e.Ref()))
	assert.True(t, IsAlive(w, EntityFromRef(e.Ref())))
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	names := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	require.NoError(t, Add(w, e1, ints.Kind(), intPtr(10)))
	require.NoError(t, Add(w, e1, names.Kind(), stringPtr("a")))
	require.NoError(t, Add(w, e2, names.Kind(), stringPtr("b")))

	v, ok := Get(w, e1, ints.Kind())
	require.True(t, ok)
	assert.Equal(t, 10, *v)

	*v = 11
	v, _ = Get(w, e1, ints.Kind())
	assert.Equal(t, 11, *v, "Get returns the stored pointer")

	require.NoError(t, Add(w, e1, ints.Kind(), intPtr(12)))
	v, _ = Get(w, e1, ints.Kind())
	assert.Equal(t, 12, *v, "Add replaces")

	assert.True(t, Has(w, e2, names.Kind()))
	assert.False(t, Has(w, e2, ints.Kind()))

	assert.True(t, Remove(w, e1, ints.Kind()))
	assert.False(t, Remove(w, e1, ints.Kind()))
	_, ok = Get(w, e1, ints.Kind())
	assert.False(t, ok)
	assert.Equal(t, 2, Count(w, names.Kind()))
}

func TestKindsOverSameTypeAreDistinct(t *testing.T) {
	w := NewWorld()
	a := component.NewComponentKind[int]()
	b := component.NewComponentKind[int]()
	e := CreateEntity(w)

	require.NoError(t, Add(w, e, a, intPtr(1)))
	assert.True(t, Has(w, e, a))
	assert.False(t, Has(w, e, b))
	assert.Equal(t, "int", a.Name())
}

func TestAddErrorNamesKind(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	DestroyEntity(w, e)

	err := Add(w, e, component.NewComponentKind[string](), stringPtr("x"))
	assert.ErrorIs(t, err, component.ErrEntityNotAlive)
	assert.ErrorContains(t, err, "string")
}

func TestQueries(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()
	kEmpty := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	dead := CreateEntity(w)

	// e2 has everything, e1 only a, e3 a and b
	for _, add := range []struct {
		e     Entity
		kinds []component.ComponentKind[int]
	}{
		{e: e1, kinds: []component.ComponentKind[int]{ka}},
		{e: e2, kinds: []component.ComponentKind[int]{ka, kb, kc, kd}},
		{e: e3, kinds: []component.ComponentKind[int]{ka, kb}},
		{e: dead, kinds: []component.ComponentKind[int]{ka, kb, kc, kd}},
	} {
		for i, k := range add.kinds {
			require.NoError(t, Add(w, add.e, k, intPtr(i)))
		}
	}
	require.True(t, DestroyEntity(w, dead))

	tests := []struct {
		name string
		run  func(collect func(Entity))
		want []Entity
	}{
		{
			name: "one",
			run: func(c func(Entity)) {
				ForEach(w, ka, func(e Entity, _ *int) { c(e) })
			},
			want: []Entity{e1, e2, e3},
		},
		{
			name: "two",
			run: func(c func(Entity)) {
				ForEach2(w, ka, kb, func(e Entity, _, _ *int) { c(e) })
			},
			want: []Entity{e2, e3},
		},
		{
			name: "three",
			run: func(c func(Entity)) {
				ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { c(e) })
			},
			want: []Entity{e2},
		},
		{
			name: "four",
			run: func(c func(Entity)) {
				ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { c(e) })
			},
			want: []Entity{e2},
		},
		{
			name: "missing store",
			run: func(c func(Entity)) {
				ForEach2(w, ka, kEmpty, func(e Entity, _, _ *int) { c(e) })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Entity
			tt.run(func(e Entity) { got = append(got, e) })
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestForEachToleratesMutation(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		require.NoError(t, Add(w, ents[i], k, intPtr(i)))
	}

	visited := 0
	ForEach(w, k, func(e Entity, v *int) {
		visited++
		if *v == 0 {
			spawned := CreateEntity(w)
			require.NoError(t, Add(w, spawned, k, intPtr(9)))
			DestroyEntity(w, ents[3])
		}
	})
	assert.Equal(t, 3, visited, "destroyed entities are skipped and new ones wait for the next pass")
	assert.Equal(t, 4, Count(w, k))
}

func TestSetRandIsRepeatable(t *testing.T) {
	roll := func() []float64 {
		w := NewWorld()
		w.SetRand(rand.New(rand.NewPCG(1, 2)))
		return []float64{w.Rand().Float64(), w.Rand().Float64()}
	}
	assert.Equal(t, roll(), roll())

	w := NewWorld()
	before := w.Rand()
	w.SetRand(nil)
	assert.Same(t, before, w.Rand())
}
