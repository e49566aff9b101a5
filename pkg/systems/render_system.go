package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/game"
	"github.com/decker502/explosion/pkg/types"
)

const dotImageSize = 32

// RenderSystem 从相机实体的视角绘制标记和粒子
//
// 标记绘制为投影后的实心圆；粒子使用预先绘制的白色圆点图片，
// 通过 ColorScale 着色。相机开启 HDR 时粒子以加色混合绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	assets        *game.AssetStore

	// ParticleSize 粒子直径（世界单位）
	ParticleSize float64

	dot *ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, assets *game.AssetStore) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		assets:        assets,
		ParticleSize:  0.6,
	}
}

// Draw 绘制一帧，没有相机实体时不绘制任何内容
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	_, cam, camTr, ok := FindCamera(s.entityManager)
	if !ok {
		return
	}
	bounds := screen.Bounds()
	proj := NewProjection(cam, camTr.Position, bounds.Dx(), bounds.Dy())

	screen.Fill(toRGBA(cam.ClearColor))
	s.drawMarkers(screen, proj)
	s.drawParticles(screen, proj, cam.HDR)
}

func (s *RenderSystem) drawMarkers(screen *ebiten.Image, proj Projection) {
	for _, id := range ecs.GetEntitiesWith2[*components.MarkerComponent, *components.TransformComponent](s.entityManager) {
		marker, _ := ecs.GetComponent[*components.MarkerComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		mesh, ok := s.assets.Mesh(marker.Mesh)
		if !ok {
			continue
		}
		mat, ok := s.assets.Material(marker.Material)
		if !ok {
			continue
		}
		x, y, scale, ok := proj.Project(tr.Position)
		r := mesh.Radius * scale
		if !ok || !proj.InView(x, y, r) {
			continue
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), toRGBA(mat.Color), true)
	}
}

func (s *RenderSystem) drawParticles(screen *ebiten.Image, proj Projection, hdr bool) {
	dot := s.dotImage()
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.TransformComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		x, y, scale, ok := proj.Project(tr.Position)
		size := s.ParticleSize * scale
		if !ok || !proj.InView(x, y, size) || p.Color.W <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		k := size / dotImageSize
		op.GeoM.Translate(-dotImageSize/2, -dotImageSize/2)
		op.GeoM.Scale(k, k)
		op.GeoM.Translate(x, y)
		c := p.Color.Clamp01()
		// ColorScale 使用预乘 alpha
		op.ColorScale.Scale(float32(c.X*c.W), float32(c.Y*c.W), float32(c.Z*c.W), float32(c.W))
		if hdr {
			op.Blend = ebiten.BlendLighter
		}
		screen.DrawImage(dot, op)
	}
}

// dotImage 延迟创建粒子贴图，避免无窗口环境下提前创建 GPU 资源
func (s *RenderSystem) dotImage() *ebiten.Image {
	if s.dot == nil {
		s.dot = ebiten.NewImage(dotImageSize, dotImageSize)
		vector.DrawFilledCircle(s.dot, dotImageSize/2, dotImageSize/2, dotImageSize/2, color.White, true)
	}
	return s.dot
}

func toRGBA(c types.Vec4) color.RGBA {
	c = c.Clamp01()
	// color.RGBA 为预乘 alpha
	return color.RGBA{
		R: uint8(c.X*c.W*255 + 0.5),
		G: uint8(c.Y*c.W*255 + 0.5),
		B: uint8(c.Z*c.W*255 + 0.5),
		A: uint8(c.W*255 + 0.5),
	}
}
