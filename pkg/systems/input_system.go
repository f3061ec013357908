package systems

import (
	"log"

	"github.com/gonewx/whackzombie/pkg/components"
	"github.com/gonewx/whackzombie/pkg/game"
	"github.com/gonewx/whackzombie/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem 输入与计分协调系统
// 按到达顺序消费当前帧的输入事件：
//   - 指针按下：对在场僵尸做命中判定并更新命中/失误计数
//   - M 键：切换静音（仅在音频可用时）
//   - ESC / 窗口关闭：请求退出
type InputSystem struct {
	audioManager *game.AudioManager // 音频管理器（可为降级实例）
}

// NewInputSystem 创建输入系统
func NewInputSystem(am *game.AudioManager) *InputSystem {
	return &InputSystem{
		audioManager: am,
	}
}

// Update 处理当前帧的输入事件
// 事件严格按切片顺序处理，每个事件只处理一次
func (s *InputSystem) Update(gs *game.GameState, now int64, events []utils.InputEvent) {
	for _, ev := range events {
		switch ev.Kind {
		case utils.EventQuit:
			gs.RequestQuit()

		case utils.EventKeyDown:
			s.handleKeyDown(gs, ev.Key)

		case utils.EventPointerDown:
			s.handlePointerDown(gs, now, ev.X, ev.Y)
		}
	}
}

// handleKeyDown 处理按键事件，不触碰计分状态
func (s *InputSystem) handleKeyDown(gs *game.GameState, key ebiten.Key) {
	switch key {
	case ebiten.KeyEscape:
		log.Printf("[InputSystem] Quit requested (ESC)")
		gs.RequestQuit()

	case ebiten.KeyM:
		// 音频不可用时没有静音开关
		if s.audioManager != nil && s.audioManager.Available() {
			s.audioManager.ToggleSound()
		}
	}
}

// handlePointerDown 处理一次指针按下
//
// 计分规则：
//   - 僵尸可点击且命中 -> 记一次命中，触发命中音效
//   - 僵尸处于 Spawning/Alive 但未命中 -> 记一次失误
//   - 僵尸在消失中或场上无僵尸 -> 不计分
//     （只有在确实有目标可打时才惩罚失误）
func (s *InputSystem) handlePointerDown(gs *game.GameState, now int64, x, y float64) {
	z := gs.Zombie

	if z != nil && z.IsClickable() && z.HitTest(x, y) {
		// RegisterHit 后 IsClickable 立即为 false，
		// 同一帧的后续点击不可能再次命中
		z.RegisterHit(now)
		gs.Hits++
		if s.audioManager != nil {
			s.audioManager.PlayHitSound()
		}
		return
	}

	if z != nil && (z.State == components.ZombieSpawning || z.State == components.ZombieAlive) {
		gs.Misses++
	}
}
