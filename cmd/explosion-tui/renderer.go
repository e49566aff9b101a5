package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/game"
	"github.com/decker502/explosion/pkg/systems"
	"github.com/decker502/explosion/pkg/types"
)

// cellAspect 终端字符格的高宽比
const cellAspect = 2.0

const particleRune = '*'

// cellWriter tcell.Screen 中渲染器用到的部分
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// termRenderer 把场景中的标记与粒子投影到字符网格上
type termRenderer struct {
	entityManager *ecs.EntityManager
	assets        *game.AssetStore
}

func newTermRenderer(em *ecs.EntityManager, assets *game.AssetStore) *termRenderer {
	return &termRenderer{entityManager: em, assets: assets}
}

// draw 绘制一帧，返回绘制的粒子数
func (r *termRenderer) draw(w cellWriter, cols, rows int) int {
	_, cam, camTr, ok := systems.FindCamera(r.entityManager)
	if !ok || cols <= 0 || rows <= 0 {
		return 0
	}
	proj := systems.NewProjection(cam, camTr.Position, cols, rows)
	proj.Aspect = cellAspect

	background := toTermColor(cam.ClearColor)
	clearStyle := tcell.StyleDefault.Background(background)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			w.SetContent(x, y, ' ', nil, clearStyle)
		}
	}

	r.drawMarkers(w, proj, cols, rows)
	return r.drawParticles(w, proj, background, cols, rows)
}

func (r *termRenderer) drawMarkers(w cellWriter, proj systems.Projection, cols, rows int) {
	for _, id := range ecs.GetEntitiesWith2[*components.MarkerComponent, *components.TransformComponent](r.entityManager) {
		marker, _ := ecs.GetComponent[*components.MarkerComponent](r.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](r.entityManager, id)

		mesh, ok := r.assets.Mesh(marker.Mesh)
		if !ok {
			continue
		}
		mat, ok := r.assets.Material(marker.Material)
		if !ok {
			continue
		}
		cx, cy, scale, ok := proj.Project(tr.Position)
		if !ok {
			continue
		}
		radius := mesh.Radius * scale
		style := tcell.StyleDefault.Background(toTermColor(mat.Color))

		// 以字符格中心判断是否落在圆内，横向按高宽比拉伸
		minY := int(math.Floor(cy - radius))
		maxY := int(math.Ceil(cy + radius))
		minX := int(math.Floor(cx - radius*cellAspect))
		maxX := int(math.Ceil(cx + radius*cellAspect))
		for y := max(minY, 0); y <= min(maxY, rows-1); y++ {
			for x := max(minX, 0); x <= min(maxX, cols-1); x++ {
				dx := (float64(x) + 0.5 - cx) / cellAspect
				dy := float64(y) + 0.5 - cy
				if dx*dx+dy*dy <= radius*radius {
					w.SetContent(x, y, ' ', nil, style)
				}
			}
		}
	}
}

func (r *termRenderer) drawParticles(w cellWriter, proj systems.Projection, background tcell.Color, cols, rows int) int {
	drawn := 0
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.TransformComponent](r.entityManager) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](r.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](r.entityManager, id)
		if p.Color.W <= 0 {
			continue
		}
		fx, fy, _, ok := proj.Project(tr.Position)
		if !ok {
			continue
		}
		x, y := int(math.Floor(fx)), int(math.Floor(fy))
		if x < 0 || y < 0 || x >= cols || y >= rows {
			continue
		}
		c := p.Color.Clamp01()
		premul := types.Vec4{X: c.X * c.W, Y: c.Y * c.W, Z: c.Z * c.W, W: 1}
		style := tcell.StyleDefault.Foreground(toTermColor(premul)).Background(background)
		w.SetContent(x, y, particleRune, nil, style)
		drawn++
	}
	return drawn
}

func toTermColor(c types.Vec4) tcell.Color {
	c = c.Clamp01()
	return tcell.NewRGBColor(int32(c.X*255+0.5), int32(c.Y*255+0.5), int32(c.Z*255+0.5))
}
