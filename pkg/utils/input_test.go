package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/explosion/pkg/config"
)

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"space", ebiten.KeySpace},
		{"a", ebiten.KeyA},
		{"z", ebiten.KeyZ},
		{"0", ebiten.KeyDigit0},
		{"left", ebiten.KeyArrowLeft},
	}
	for _, tt := range tests {
		got, ok := KeyFromName(tt.name)
		if !ok || got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, %v; want %v", tt.name, got, ok, tt.want)
		}
	}

	if _, err := NewKeyInput("hyper"); err == nil {
		t.Error("unknown key name should fail")
	}
	in, err := NewKeyInput("space")
	if err != nil || in.Key() != ebiten.KeySpace {
		t.Errorf("NewKeyInput(space) = %v, %v", in, err)
	}
}

// 配置接受的每个键名都必须能映射到 ebiten 键码
func TestKeyNamesCoverConfig(t *testing.T) {
	for name := range config.KeyNames {
		if _, ok := KeyFromName(name); !ok {
			t.Errorf("config key %q has no ebiten mapping", name)
		}
	}
	if len(keyNames) != len(config.KeyNames) {
		t.Errorf("ebiten table has %d keys, config has %d", len(keyNames), len(config.KeyNames))
	}
}
