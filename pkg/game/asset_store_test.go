package game

import (
	"testing"

	"github.com/decker502/explosion/internal/particle"
	"github.com/decker502/explosion/pkg/types"
)

func TestAssetStoreEffectDeduplicated(t *testing.T) {
	store := NewAssetStore()
	tmpl := particle.ExplosionTemplate()

	h1 := store.AddEffect(tmpl)
	h2 := store.AddEffect(tmpl)
	if h1 == 0 {
		t.Fatal("AddEffect returned the zero handle")
	}
	if h1 != h2 {
		t.Errorf("same template registered twice: %d != %d", h1, h2)
	}
	if store.EffectCount() != 1 {
		t.Errorf("EffectCount = %d, want 1", store.EffectCount())
	}

	got, ok := store.Effect(h1)
	if !ok || got != tmpl {
		t.Errorf("Effect(%d) = %p, %v; want %p", h1, got, ok, tmpl)
	}

	other := store.AddEffect(particle.ExplosionTemplate())
	if other == h1 {
		t.Error("a distinct template must get its own handle")
	}
	if store.AddEffect(nil) != 0 {
		t.Error("nil template should yield the zero handle")
	}
}

func TestAssetStoreLookupMisses(t *testing.T) {
	store := NewAssetStore()

	if _, ok := store.Effect(0); ok {
		t.Error("zero effect handle resolved")
	}
	if _, ok := store.Mesh(3); ok {
		t.Error("unknown mesh handle resolved")
	}
	if _, ok := store.Material(1); ok {
		t.Error("material resolved in empty store")
	}
}

func TestAssetStoreMeshAndMaterial(t *testing.T) {
	store := NewAssetStore()

	mh := store.AddMesh(types.Circle{Radius: 1})
	mat := store.AddMaterial(types.Material{Color: types.ColorWhite})

	mesh, ok := store.Mesh(mh)
	if !ok || mesh.Radius != 1 {
		t.Errorf("Mesh(%d) = %+v, %v", mh, mesh, ok)
	}
	m, ok := store.Material(mat)
	if !ok || m.Color != types.ColorWhite {
		t.Errorf("Material(%d) = %+v, %v", mat, m, ok)
	}
	if store.MeshCount() != 1 || store.MaterialCount() != 1 {
		t.Errorf("counts = %d/%d, want 1/1", store.MeshCount(), store.MaterialCount())
	}
}
