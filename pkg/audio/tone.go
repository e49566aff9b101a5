package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// ExplosionTone 描述爆炸提示音：带衰减包络的正弦低音混合一段噪声
type ExplosionTone struct {
	Frequency float64       // 正弦波频率（Hz）
	Duration  time.Duration // 总时长
	Noise     float64       // 噪声占比 0-1
}

// Streamer 按采样率生成一次性的音频流
func (t ExplosionTone) Streamer(rate beep.SampleRate, seed int64) (beep.Streamer, error) {
	if t.Duration <= 0 {
		return nil, fmt.Errorf("explosion tone: duration must be > 0, got %v", t.Duration)
	}
	sine, err := generators.SineTone(rate, t.Frequency)
	if err != nil {
		return nil, fmt.Errorf("explosion tone: %w", err)
	}

	n := rate.N(t.Duration)
	noise := clamp01(t.Noise)
	mixed := beep.Mix(
		newGain(beep.Take(n, sine), 1-noise),
		newGain(beep.Take(n, &noiseStreamer{rng: rand.New(rand.NewSource(seed))}), noise),
	)
	return newDecay(mixed, n), nil
}

// noiseStreamer 白噪声
type noiseStreamer struct {
	rng *rand.Rand
}

func (s *noiseStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := s.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *noiseStreamer) Err() error { return nil }

// decay 线性衰减包络，total 个采样后结束
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, total int) beep.Streamer {
	return &decay{streamer: s, total: total}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if d.position >= d.total {
		return 0, false
	}
	if remaining := d.total - d.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newGain 线性音量，0 时静音（log2(0) 为 -Inf）
func newGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
