package utils

import (
	"sync"
	"time"
)

// HoldWindow 把离散的按键事件转换为"按住"状态
//
// 终端只上报按下与自动重复，不上报松开。每次 Press 后的 Window 时间内
// IsHeld 返回 true；自动重复间隔小于 Window 时，按住期间状态保持连续。
type HoldWindow struct {
	mu     sync.Mutex
	window time.Duration
	last   time.Time
	now    func() time.Time
}

// NewHoldWindow 创建按住窗口，now 为 nil 时使用 time.Now
func NewHoldWindow(window time.Duration, now func() time.Time) *HoldWindow {
	if now == nil {
		now = time.Now
	}
	return &HoldWindow{window: window, now: now}
}

// Press 记录一次按键事件（可在输入 goroutine 中调用）
func (h *HoldWindow) Press() {
	h.mu.Lock()
	h.last = h.now()
	h.mu.Unlock()
}

// Release 立即结束按住状态
func (h *HoldWindow) Release() {
	h.mu.Lock()
	h.last = time.Time{}
	h.mu.Unlock()
}

// IsHeld 最近一次按键是否仍在窗口内
func (h *HoldWindow) IsHeld() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last.IsZero() {
		return false
	}
	return h.now().Sub(h.last) < h.window
}
