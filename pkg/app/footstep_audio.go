package app

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"

	"github.com/decker502/joseonsoul/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 脚步声合成参数
const (
	footstepSampleRate = 48000
	footstepPeriod     = 0.5   // 一个循环的时长（秒），包含两步
	footstepLength     = 0.06  // 单步声音时长（秒）
	footstepFrequency  = 110.0 // 基频（Hz）
)

// FootstepAudio 脚步声循环
//
// 玩家移动时循环播放，停止移动时暂停。音量跟随 SettingsManager，
// 音频初始化失败时所有调用都是空操作。
type FootstepAudio struct {
	player   *audio.Player
	settings *game.SettingsManager
	running  bool
}

// NewFootstepAudio 创建脚步声
//
// 参数：
//   - ctx: ebiten 音频上下文（采样率需为 48000）
//   - settings: 设置管理器，可为 nil（使用满音量）
func NewFootstepAudio(ctx *audio.Context, settings *game.SettingsManager) *FootstepAudio {
	fa := &FootstepAudio{settings: settings}
	if ctx == nil {
		log.Printf("[FootstepAudio] Warning: no audio context, footsteps disabled")
		return fa
	}

	pcm := footstepPCM(footstepSampleRate)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("[FootstepAudio] Warning: failed to create player: %v", err)
		return fa
	}
	fa.player = player
	fa.applyVolume()
	return fa
}

// SetRunning 开始或停止脚步声
func (fa *FootstepAudio) SetRunning(running bool) {
	if running == fa.running {
		return
	}
	fa.running = running
	if fa.player == nil {
		return
	}

	if running {
		fa.applyVolume()
		fa.player.Play()
		return
	}
	fa.player.Pause()
	if err := fa.player.Rewind(); err != nil {
		log.Printf("[FootstepAudio] Warning: rewind failed: %v", err)
	}
}

// IsRunning 脚步声是否处于播放状态
func (fa *FootstepAudio) IsRunning() bool {
	return fa.running
}

// Close 释放播放器
func (fa *FootstepAudio) Close() error {
	if fa.player == nil {
		return nil
	}
	return fa.player.Close()
}

func (fa *FootstepAudio) applyVolume() {
	if fa.player == nil {
		return
	}
	volume := 1.0
	if fa.settings != nil {
		volume = fa.settings.EffectiveVolume()
	}
	fa.player.SetVolume(volume)
}

// footstepPCM 合成一个循环周期的脚步声
// 输出 16 位小端立体声 PCM：每半个周期开头一次快速衰减的低频脉冲
func footstepPCM(sampleRate int) []byte {
	frames := int(float64(sampleRate) * footstepPeriod)
	stepFrames := int(float64(sampleRate) * footstepLength)
	half := frames / 2

	buf := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		offset := i % half
		var sample float64
		if offset < stepFrames {
			t := float64(offset) / float64(sampleRate)
			envelope := math.Exp(-t * 60)
			sample = 0.6 * envelope * math.Sin(2*math.Pi*footstepFrequency*t)
		}
		v := int16(sample * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
