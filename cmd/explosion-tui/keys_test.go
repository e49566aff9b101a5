package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/explosion/pkg/config"
)

func TestParseTriggerKeyCoversConfigNames(t *testing.T) {
	for name := range config.KeyNames {
		if _, err := parseTriggerKey(name); err != nil {
			t.Errorf("parseTriggerKey(%q): %v", name, err)
		}
	}
	if _, err := parseTriggerKey("hyper"); err == nil {
		t.Error("unknown key name should be rejected")
	}
}

func TestTriggerKeyMatches(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want bool
	}{
		{"space", tcell.KeyRune, ' ', true},
		{"space", tcell.KeyRune, 'x', false},
		{"enter", tcell.KeyEnter, 0, true},
		{"enter", tcell.KeyRune, ' ', false},
		{"tab", tcell.KeyTab, 0, true},
		{"backspace", tcell.KeyBackspace2, 0, true},
		{"up", tcell.KeyUp, 0, true},
		{"up", tcell.KeyDown, 0, false},
		{"a", tcell.KeyRune, 'a', true},
		{"a", tcell.KeyRune, 'A', true},
		{"7", tcell.KeyRune, '7', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := parseTriggerKey(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if got := k.matches(tt.key, tt.r); got != tt.want {
				t.Errorf("matches(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
			}
		})
	}
}
