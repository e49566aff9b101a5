package systems

import (
	"math"

	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/types"
)

// Projection 透视投影：相机位于 Eye，朝向 -Z，Y 轴向上
type Projection struct {
	Eye    types.Vec3
	FovY   float64 // 垂直视角（弧度）
	Near   float64
	Width  float64 // 目标画面宽度（像素）
	Height float64 // 目标画面高度（像素）

	// Aspect 单个像素的高宽比，终端字符格约为 2
	Aspect float64
}

// NewProjection 由相机组件和画面尺寸创建投影
func NewProjection(cam *components.CameraComponent, eye types.Vec3, width, height int) Projection {
	return Projection{
		Eye:    eye,
		FovY:   cam.FovY,
		Near:   cam.Near,
		Width:  float64(width),
		Height: float64(height),
		Aspect: 1,
	}
}

// focal 每单位深度对应的像素数
func (p Projection) focal() float64 {
	return (p.Height / 2) / math.Tan(p.FovY/2)
}

// Project 把世界坐标投影到屏幕
//
// 返回屏幕坐标、该深度处每个世界单位对应的像素数，以及点是否在近裁剪面之前。
func (p Projection) Project(world types.Vec3) (x, y, scale float64, ok bool) {
	rel := world.Sub(p.Eye)
	depth := -rel.Z
	if depth < p.Near || p.FovY <= 0 {
		return 0, 0, 0, false
	}
	aspect := p.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	scale = p.focal() / depth
	x = p.Width/2 + rel.X*scale*aspect
	y = p.Height/2 - rel.Y*scale
	return x, y, scale, true
}

// InView 屏幕坐标是否落在画面内
func (p Projection) InView(x, y, margin float64) bool {
	return x >= -margin && y >= -margin && x < p.Width+margin && y < p.Height+margin
}

// FindCamera 返回第一个相机实体及其组件
func FindCamera(em *ecs.EntityManager) (ecs.EntityID, *components.CameraComponent, *components.TransformComponent, bool) {
	ids := ecs.GetEntitiesWith2[*components.CameraComponent, *components.TransformComponent](em)
	if len(ids) == 0 {
		return ecs.InvalidEntity, nil, nil, false
	}
	cam, _ := ecs.GetComponent[*components.CameraComponent](em, ids[0])
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, ids[0])
	return ids[0], cam, tr, true
}
