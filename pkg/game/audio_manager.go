package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	synth "github.com/gonewx/whackzombie/internal/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 管理命中音效的合成与播放
//   - 实现静音开关（与 SettingsManager 联动并持久化）
//   - 初始化失败时整体降级为空操作，不影响游戏运行
//
// 设计原则：
//   - 能力在启动时确定一次：要么是真实音频，要么是空操作，
//     调用点不做可用性分支
//   - 播放是 fire-and-forget：任何播放失败都被吞掉，绝不中断帧循环
type AudioManager struct {
	settingsManager *SettingsManager // 设置管理器（用于读取音效开关和音量，可为 nil）
	hitPlayer       *audio.Player    // 命中音效播放器
	available       bool             // 音频能力是否可用
}

// NewAudioManager 创建新的音频管理器
// 音频上下文缺失或音效合成失败时返回降级实例（Available() == false）
//
// 参数：
//   - audioContext: ebiten 音频上下文，可为 nil（降级模式）
//   - sm: SettingsManager 实例（用于读取音效设置，可为 nil）
func NewAudioManager(audioContext *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{settingsManager: sm}

	if audioContext == nil {
		log.Printf("[AudioManager] No audio context, sound disabled")
		return am
	}

	pcm, err := synth.SynthesizeBlip(audioContext.SampleRate())
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to synthesize hit sound: %v (sound disabled)", err)
		return am
	}

	am.hitPlayer = audioContext.NewPlayerFromBytes(pcm)
	am.available = true
	log.Printf("[AudioManager] Hit sound ready (%d Hz)", audioContext.SampleRate())
	return am
}

// Available 返回音频能力是否可用
// 不可用时不提供静音开关，HUD 显示"Sound unavailable"
func (am *AudioManager) Available() bool {
	return am.available
}

// PlayHitSound 播放命中音效
// 音频不可用或音效被关闭时静默跳过
//
// 返回：
//   - bool: 是否实际触发了播放
func (am *AudioManager) PlayHitSound() bool {
	if !am.available {
		return false
	}

	volume := 0.8
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false // 音效已禁用
		}
		volume = settings.SoundVolume
	}

	am.hitPlayer.SetVolume(volume)

	// 重置并播放；倒带失败只记日志，不影响帧循环
	if err := am.hitPlayer.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind hit sound: %v", err)
	}
	am.hitPlayer.Play()

	return true
}

// ToggleSound 切换音效开关并持久化设置
//
// 返回：
//   - bool: 切换后的开关状态
func (am *AudioManager) ToggleSound() bool {
	if am.settingsManager == nil {
		return false
	}

	settings := am.settingsManager.GetSettings()
	am.settingsManager.SetSoundEnabled(!settings.SoundEnabled)
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save sound settings: %v", err)
	}

	log.Printf("[AudioManager] Sound enabled: %v", settings.SoundEnabled)
	return settings.SoundEnabled
}
