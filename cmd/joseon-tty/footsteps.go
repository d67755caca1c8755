package main

import (
	"log"
	"math"
	"time"

	"github.com/decker502/joseonsoul/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate        = beep.SampleRate(44100)
	footstepPeriod    = 500 * time.Millisecond // 一个循环包含两步
	footstepLength    = 60 * time.Millisecond
	footstepFrequency = 110
)

// footstepStreamer 在正弦音上叠加脚步包络，无限循环
type footstepStreamer struct {
	tone beep.Streamer
	half int // 半个周期的采样数
	step int // 单步发声的采样数
	pos  int
}

func newFootstepStreamer(sr beep.SampleRate) (*footstepStreamer, error) {
	tone, err := generators.SineTone(sr, footstepFrequency)
	if err != nil {
		return nil, err
	}
	return &footstepStreamer{
		tone: tone,
		half: sr.N(footstepPeriod) / 2,
		step: sr.N(footstepLength),
	}, nil
}

func (f *footstepStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.tone.Stream(samples)
	for i := 0; i < n; i++ {
		env := f.envelope(f.pos)
		samples[i][0] *= env
		samples[i][1] *= env
		f.pos++
	}
	return n, ok
}

func (f *footstepStreamer) Err() error {
	return f.tone.Err()
}

// envelope 每半个周期开头一次快速衰减，其余时间静音
func (f *footstepStreamer) envelope(pos int) float64 {
	offset := pos % f.half
	if offset >= f.step {
		return 0
	}
	t := float64(offset) / float64(f.step)
	return 0.6 * math.Exp(-t*4)
}

// terminalFootsteps 终端版的脚步声，实现 systems.RunningAudio
// 扬声器初始化失败时只记录状态
type terminalFootsteps struct {
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	mixer   *beep.Mixer
	running bool
	enabled bool
}

func newTerminalFootsteps(settings *game.SettingsManager) *terminalFootsteps {
	tf := &terminalFootsteps{mixer: &beep.Mixer{}}

	steps, err := newFootstepStreamer(sampleRate)
	if err != nil {
		log.Printf("[Footsteps] Warning: failed to create tone: %v", err)
		return tf
	}
	tf.ctrl = &beep.Ctrl{Streamer: steps, Paused: true}
	tf.volume = &effects.Volume{Streamer: tf.ctrl, Base: 2}
	tf.applyVolume(settings)

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Footsteps] Warning: speaker unavailable: %v", err)
		return tf
	}
	tf.mixer.Add(tf.volume)
	speaker.Play(tf.mixer)
	tf.enabled = true
	return tf
}

// applyVolume 把 0~1 的线性音量换算为以 2 为底的对数音量
func (tf *terminalFootsteps) applyVolume(settings *game.SettingsManager) {
	volume := 1.0
	if settings != nil {
		volume = settings.EffectiveVolume()
	}
	if volume <= 0 {
		tf.volume.Silent = true
		return
	}
	tf.volume.Silent = false
	tf.volume.Volume = math.Log2(volume)
}

// SetRunning 开始或暂停脚步声
func (tf *terminalFootsteps) SetRunning(running bool) {
	if running == tf.running {
		return
	}
	tf.running = running
	if !tf.enabled {
		return
	}
	speaker.Lock()
	tf.ctrl.Paused = !running
	speaker.Unlock()
}

// Close 停止播放并关闭扬声器
func (tf *terminalFootsteps) Close() {
	if !tf.enabled {
		return
	}
	speaker.Lock()
	tf.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	tf.enabled = false
}
