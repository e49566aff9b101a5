package main

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/explosion/pkg/config"
)

// triggerKey 配置键名对应的终端按键
// keys 为特殊键，r 非零时匹配字符键
type triggerKey struct {
	keys []tcell.Key
	r    rune
}

var specialKeys = map[string][]tcell.Key{
	"enter":     {tcell.KeyEnter},
	"tab":       {tcell.KeyTab},
	"backspace": {tcell.KeyBackspace, tcell.KeyBackspace2},
	"up":        {tcell.KeyUp},
	"down":      {tcell.KeyDown},
	"left":      {tcell.KeyLeft},
	"right":     {tcell.KeyRight},
}

// parseTriggerKey 把配置键名转换为终端按键，未知键名返回错误
func parseTriggerKey(name string) (triggerKey, error) {
	name = config.NormalizeKeyName(name)
	if !config.KeyNames[name] {
		return triggerKey{}, fmt.Errorf("unsupported trigger key %q", name)
	}
	if name == "space" {
		return triggerKey{r: ' '}, nil
	}
	if keys, ok := specialKeys[name]; ok {
		return triggerKey{keys: keys}, nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return triggerKey{}, fmt.Errorf("trigger key %q has no terminal mapping", name)
	}
	return triggerKey{r: runes[0]}, nil
}

// matches 按键事件是否为触发键；字母不区分大小写
func (k triggerKey) matches(key tcell.Key, r rune) bool {
	if key == tcell.KeyRune {
		return k.r != 0 && unicode.ToLower(r) == k.r
	}
	for _, want := range k.keys {
		if key == want {
			return true
		}
	}
	return false
}
