package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/explosion/pkg/scenes"
	"github.com/decker502/explosion/pkg/systems"
)

type gridCell struct {
	r     rune
	style tcell.Style
}

type fakeGrid struct {
	cols, rows int
	cells      map[[2]int]gridCell
}

func newFakeGrid(cols, rows int) *fakeGrid {
	return &fakeGrid{cols: cols, rows: rows, cells: make(map[[2]int]gridCell)}
}

func (g *fakeGrid) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	g.cells[[2]int{x, y}] = gridCell{r: primary, style: style}
}

func (g *fakeGrid) count(r rune) int {
	n := 0
	for _, c := range g.cells {
		if c.r == r {
			n++
		}
	}
	return n
}

func TestTermRendererClearsAndDrawsMarker(t *testing.T) {
	held := 1
	scene, err := scenes.NewExplosionScene(scenes.Options{
		Input: systems.HeldInputFunc(func() bool {
			held--
			return held >= 0
		}),
	})
	if err != nil {
		t.Fatal(err)
	}
	scene.Update(0.016)

	grid := newFakeGrid(80, 24)
	r := newTermRenderer(scene.EntityManager(), scene.Assets())
	if drawn := r.draw(grid, grid.cols, grid.rows); drawn != 0 {
		t.Errorf("particles drawn = %d, want 0", drawn)
	}
	if len(grid.cells) != 80*24 {
		t.Fatalf("cells written = %d, want every cell", len(grid.cells))
	}

	// 标记位于相机正前方，投影到画面中心
	center := grid.cells[[2]int{40, 12}]
	_, bg, _ := center.style.Decompose()
	if bg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("center background = %v, want white marker", bg)
	}
	corner := grid.cells[[2]int{0, 0}]
	if _, bg, _ := corner.style.Decompose(); bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("corner background = %v, want clear color", bg)
	}
}

func TestTermRendererDrawsParticles(t *testing.T) {
	scene, err := scenes.NewExplosionScene(scenes.Options{Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	scene.Update(1.0)
	scene.Update(0.1)

	grid := newFakeGrid(80, 24)
	drawn := newTermRenderer(scene.EntityManager(), scene.Assets()).draw(grid, grid.cols, grid.rows)
	if drawn != 5 {
		t.Errorf("particles drawn = %d, want 5", drawn)
	}
	if grid.count(particleRune) == 0 {
		t.Error("no particle cells on the grid")
	}
}

func TestTermRendererZeroSize(t *testing.T) {
	grid := newFakeGrid(10, 5)
	scene, err := scenes.NewExplosionScene(scenes.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if drawn := newTermRenderer(scene.EntityManager(), scene.Assets()).draw(grid, 0, 0); drawn != 0 || len(grid.cells) != 0 {
		t.Errorf("zero-sized grid should draw nothing, got %d cells", len(grid.cells))
	}
}
