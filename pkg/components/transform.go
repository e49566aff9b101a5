package components

import "github.com/decker502/explosion/pkg/types"

// TransformComponent 实体在世界坐标系中的位置（Y 轴向上）
type TransformComponent struct {
	Position types.Vec3
}
