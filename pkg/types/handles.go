package types

// EffectHandle 特效模板句柄（由 game.AssetStore 分配，0 为无效句柄）
type EffectHandle uint32

// MeshHandle 网格句柄
type MeshHandle uint32

// MaterialHandle 材质句柄
type MaterialHandle uint32

// Circle 平面圆形网格
type Circle struct {
	Radius float64
}

// Material 纯色材质
type Material struct {
	Color Vec4
}
