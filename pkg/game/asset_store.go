package game

import (
	"github.com/decker502/explosion/internal/particle"
	"github.com/decker502/explosion/pkg/types"
)

// AssetStore is the scene's asset registry. Effect templates, meshes and
// materials are registered once and referenced everywhere else by handle, so
// many entities share one value.
//
// Handles start at 1; the zero handle is never issued and never resolves.
//
// Thread Safety Note:
// AssetStore is NOT thread-safe. Register everything during startup on the
// game loop goroutine.
type AssetStore struct {
	effects   []*particle.EffectTemplate
	meshes    []types.Circle
	materials []types.Material

	effectIndex map[*particle.EffectTemplate]types.EffectHandle
}

// NewAssetStore creates an empty store.
func NewAssetStore() *AssetStore {
	return &AssetStore{
		effectIndex: make(map[*particle.EffectTemplate]types.EffectHandle),
	}
}

// AddEffect registers a template. Adding the same template pointer again
// returns the handle issued the first time.
func (s *AssetStore) AddEffect(tmpl *particle.EffectTemplate) types.EffectHandle {
	if tmpl == nil {
		return 0
	}
	if h, ok := s.effectIndex[tmpl]; ok {
		return h
	}
	s.effects = append(s.effects, tmpl)
	h := types.EffectHandle(len(s.effects))
	s.effectIndex[tmpl] = h
	return h
}

// Effect resolves an effect handle.
func (s *AssetStore) Effect(h types.EffectHandle) (*particle.EffectTemplate, bool) {
	if h == 0 || int(h) > len(s.effects) {
		return nil, false
	}
	return s.effects[h-1], true
}

// AddMesh registers a circle mesh.
func (s *AssetStore) AddMesh(c types.Circle) types.MeshHandle {
	s.meshes = append(s.meshes, c)
	return types.MeshHandle(len(s.meshes))
}

// Mesh resolves a mesh handle.
func (s *AssetStore) Mesh(h types.MeshHandle) (types.Circle, bool) {
	if h == 0 || int(h) > len(s.meshes) {
		return types.Circle{}, false
	}
	return s.meshes[h-1], true
}

// AddMaterial registers a flat color material.
func (s *AssetStore) AddMaterial(m types.Material) types.MaterialHandle {
	s.materials = append(s.materials, m)
	return types.MaterialHandle(len(s.materials))
}

// Material resolves a material handle.
func (s *AssetStore) Material(h types.MaterialHandle) (types.Material, bool) {
	if h == 0 || int(h) > len(s.materials) {
		return types.Material{}, false
	}
	return s.materials[h-1], true
}

// EffectCount returns the number of registered templates.
func (s *AssetStore) EffectCount() int { return len(s.effects) }

// MeshCount returns the number of registered meshes.
func (s *AssetStore) MeshCount() int { return len(s.meshes) }

// MaterialCount returns the number of registered materials.
func (s *AssetStore) MaterialCount() int { return len(s.materials) }
