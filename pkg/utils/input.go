// Package utils 提供通用工具函数
package utils

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyNames 配置键名到 ebiten 键码的映射
var keyNames = map[string]ebiten.Key{
	"space": ebiten.KeySpace, "enter": ebiten.KeyEnter, "tab": ebiten.KeyTab, "backspace": ebiten.KeyBackspace,
	"up": ebiten.KeyArrowUp, "down": ebiten.KeyArrowDown, "left": ebiten.KeyArrowLeft, "right": ebiten.KeyArrowRight,

	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD, "e": ebiten.KeyE,
	"f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH, "i": ebiten.KeyI, "j": ebiten.KeyJ,
	"k": ebiten.KeyK, "l": ebiten.KeyL, "m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO,
	"p": ebiten.KeyP, "q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX, "y": ebiten.KeyY,
	"z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2, "3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5, "6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8, "9": ebiten.KeyDigit9,
}

// KeyFromName 把配置中的键名转换为 ebiten 键码
func KeyFromName(name string) (ebiten.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// KeyInput 读取键盘按键的按下状态（按住期间每帧都为 true）
type KeyInput struct {
	key ebiten.Key
}

// NewKeyInput 按键名创建键盘输入
func NewKeyInput(name string) (*KeyInput, error) {
	k, ok := KeyFromName(name)
	if !ok {
		return nil, fmt.Errorf("unknown key name %q", name)
	}
	return &KeyInput{key: k}, nil
}

// IsHeld 当前帧按键是否按下
func (k *KeyInput) IsHeld() bool {
	return ebiten.IsKeyPressed(k.key)
}

// Key 对应的 ebiten 键码
func (k *KeyInput) Key() ebiten.Key {
	return k.key
}
