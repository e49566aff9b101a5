package components

import "github.com/decker502/explosion/pkg/types"

// MarkerComponent 按住触发键时生成的静态圆形标记
// Mesh/Material 为共享资源句柄，所有标记复用同一份
type MarkerComponent struct {
	Mesh     types.MeshHandle
	Material types.MaterialHandle
	// Seq 生成序号，用于数量上限时淘汰最早的标记
	Seq uint64
}
