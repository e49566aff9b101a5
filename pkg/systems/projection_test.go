package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/explosion/pkg/config"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/entities"
	"github.com/decker502/explosion/pkg/types"
)

func TestProjectionCenter(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultSceneConfig()
	entities.SpawnCamera(em, cfg.Camera)

	_, cam, tr, ok := FindCamera(em)
	if !ok {
		t.Fatal("camera not found")
	}
	proj := NewProjection(cam, tr.Position, 1280, 720)

	// 生成点与相机同高，位于正前方 50 个单位
	x, y, scale, ok := proj.Project(cfg.Spawn.Position)
	if !ok {
		t.Fatal("spawn point should be visible")
	}
	if math.Abs(x-640) > 1e-9 || math.Abs(y-360) > 1e-9 {
		t.Errorf("spawn point projects to (%v, %v), want screen center", x, y)
	}
	wantScale := 360 / math.Tan(math.Pi/8) / 50
	if math.Abs(scale-wantScale) > 1e-9 {
		t.Errorf("scale = %v, want %v", scale, wantScale)
	}
}

func TestProjectionAxes(t *testing.T) {
	proj := Projection{Eye: types.Vec3{Z: 10}, FovY: math.Pi / 2, Near: 0.1, Width: 200, Height: 200, Aspect: 1}

	x, y, _, ok := proj.Project(types.Vec3{X: 1, Y: 1})
	if !ok {
		t.Fatal("point should be visible")
	}
	if x <= 100 || y >= 100 {
		t.Errorf("+X/+Y should map right/up, got (%v, %v)", x, y)
	}

	if _, _, _, ok := proj.Project(types.Vec3{Z: 20}); ok {
		t.Error("point behind the camera must be culled")
	}
	if _, _, _, ok := proj.Project(types.Vec3{Z: 9.95}); ok {
		t.Error("point closer than Near must be culled")
	}

	// 终端字符格横向拉伸
	proj.Aspect = 2
	x2, _, _, _ := proj.Project(types.Vec3{X: 1, Y: 1})
	if math.Abs((x2-100)-2*(x-100)) > 1e-9 {
		t.Errorf("aspect 2 should double the horizontal offset: %v vs %v", x2-100, x-100)
	}
}

func TestFindCameraMissing(t *testing.T) {
	if _, _, _, ok := FindCamera(ecs.NewEntityManager()); ok {
		t.Error("FindCamera on empty world should fail")
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		in   types.Vec4
		want color.RGBA
	}{
		{types.ColorBlack, color.RGBA{A: 255}},
		{types.ColorWhite, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{types.Vec4{X: 1, W: 0.5}, color.RGBA{R: 128, A: 128}},
		{types.Vec4{X: 2, Y: -1, W: 1}, color.RGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := toRGBA(tt.in); got != tt.want {
			t.Errorf("toRGBA(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
