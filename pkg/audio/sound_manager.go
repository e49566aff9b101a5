// Package audio 使用 beep 合成并播放场景音效
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager 管理爆炸提示音的播放
//
// speaker 在独立的 goroutine 中拉取音频数据，所有状态都由 mu 保护。
// 初始化失败（无音频设备）时所有播放调用静默忽略。
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	tone        ExplosionTone
	enabled     bool
	volume      float64
	initialized bool
	seed        int64
}

// NewSoundManager 创建音效管理器
func NewSoundManager(frequency float64, duration time.Duration) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		tone:    ExplosionTone{Frequency: frequency, Duration: duration, Noise: 0.35},
		enabled: true,
		volume:  1,
	}
}

// Initialize 打开音频设备；重复调用无副作用
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[SoundManager] Audio initialized at %d Hz", sampleRate)
	return nil
}

// Initialized 音频设备是否可用
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetEnabled 开关音效
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = enabled
}

// SetVolume 设置音量（0.0 ~ 1.0）
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = clamp01(volume)
}

// PlayExplosion 播放一次爆炸提示音
func (sm *SoundManager) PlayExplosion() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled || sm.volume <= 0 {
		return
	}
	sm.seed++
	streamer, err := sm.tone.Streamer(sampleRate, sm.seed)
	if err != nil {
		log.Printf("[SoundManager] Failed to build explosion tone: %v", err)
		return
	}

	// Mixer 由 speaker goroutine 读取，修改时需持有 speaker 锁
	speaker.Lock()
	sm.mixer.Add(newGain(streamer, sm.volume))
	speaker.Unlock()
}

// Cleanup 停止所有声音
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
}
