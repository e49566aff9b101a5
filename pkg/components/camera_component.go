package components

import "github.com/decker502/explosion/pkg/types"

// CameraComponent 透视相机参数
// 相机位置取自同一实体的 TransformComponent，朝向固定为看向 -Z 方向
type CameraComponent struct {
	// HDR 开启时粒子以加色混合绘制，叠加处会变亮
	HDR bool

	// ClearColor 每帧的背景填充色
	ClearColor types.Vec4

	// FovY 垂直视角（弧度）
	FovY float64

	// Near 近裁剪面，距离小于该值的点不绘制
	Near float64
}
