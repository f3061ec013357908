// Package scenes 实现游戏场景
package scenes

import (
	"math/rand"

	"github.com/gonewx/whackzombie/pkg/config"
	"github.com/gonewx/whackzombie/pkg/game"
	"github.com/gonewx/whackzombie/pkg/systems"
	"github.com/gonewx/whackzombie/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 打僵尸主场景
// 每帧的控制流固定为：
// 采样时钟 -> 消费输入事件 -> 生成调度 -> （Draw 阶段）渲染
//
// 时钟每帧只采样一次，Draw 复用 Update 采样的时间戳，
// 保证同一帧的所有决策时间一致
type GameScene struct {
	gameState    *game.GameState
	clock        game.Clock
	audioManager *game.AudioManager

	inputSystem  *systems.InputSystem
	spawnSystem  *systems.SpawnSystem
	zombieRender *systems.ZombieRenderSystem
	hudRender    *systems.HUDRenderSystem

	background *ebiten.Image
	nowMs      int64 // 本帧时间戳（毫秒）

	// collectEvents 事件收集函数，测试中替换为固定事件序列
	collectEvents func() []utils.InputEvent
}

// NewGameScene 创建主场景
//
// 参数:
//   - cfg: 玩法配置
//   - clock: 单调毫秒时钟
//   - audioManager: 音频管理器（可为降级实例）
//   - rng: 随机源（由 -seed 参数或时间播种）
func NewGameScene(cfg *config.GameplayConfig, clock game.Clock, audioManager *game.AudioManager, rng *rand.Rand) *GameScene {
	return &GameScene{
		gameState:     game.NewGameState(),
		clock:         clock,
		audioManager:  audioManager,
		inputSystem:   systems.NewInputSystem(audioManager),
		spawnSystem:   systems.NewSpawnSystem(cfg, rng),
		zombieRender:  systems.NewZombieRenderSystem(cfg.BaseRadius),
		hudRender:     systems.NewHUDRenderSystem(audioManager.Available()),
		background:    buildPlayfieldImage(cfg),
		collectEvents: utils.CollectEvents,
	}
}

// Update 推进一帧游戏逻辑
// deltaTime 由 Scene 接口约定传入，本场景的时序判定
// 全部基于时钟采样，不使用 deltaTime
func (s *GameScene) Update(deltaTime float64) {
	now := s.clock.NowMs()
	s.nowMs = now

	events := s.collectEvents()
	s.inputSystem.Update(s.gameState, now, events)
	s.spawnSystem.Update(s.gameState, now)
}

// Draw 绘制一帧：背景 -> 僵尸 -> HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.background, nil)
	s.zombieRender.Draw(screen, s.gameState.Zombie, s.nowMs)
	s.hudRender.Draw(screen, s.gameState)
}

// GameState 返回场景持有的游戏状态
// 供 App 检查退出标志
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}
