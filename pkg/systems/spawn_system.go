// Package systems 实现游戏的各个逻辑系统
package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/whackzombie/pkg/components"
	"github.com/gonewx/whackzombie/pkg/config"
	"github.com/gonewx/whackzombie/pkg/game"
)

// SpawnSystem 僵尸生成调度系统
// 职责：
//   - 决定下一个僵尸何时、在哪个出现点生成
//   - 维护单槽位：同一时刻最多一个活动僵尸
//   - 僵尸死亡后释放槽位并安排一段随机间隔再生成
//
// 先到期、再间隔、再生成的两段式节奏是刻意设计，
// 用于在僵尸之间制造短暂停顿
type SpawnSystem struct {
	cfg *config.GameplayConfig
	rng *rand.Rand // 可注入的随机源，测试中使用固定种子

	// nextSpawnAt 下一次允许生成的时间戳（毫秒）
	// 仅在槽位为空时有意义
	nextSpawnAt int64
}

// NewSpawnSystem 创建生成调度系统
//
// 参数:
//   - cfg: 玩法配置（出现点、存活区间、重生间隔）
//   - rng: 随机源
func NewSpawnSystem(cfg *config.GameplayConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		cfg: cfg,
		rng: rng,
	}
}

// Update 推进生成调度
// 每帧调用一次：先尝试生成，再推进在场僵尸的状态机，
// 僵尸死亡时释放槽位并安排下一次生成
func (s *SpawnSystem) Update(gs *game.GameState, now int64) {
	// 槽位为空且到达生成时间：生成新僵尸
	if gs.Zombie == nil && now >= s.nextSpawnAt {
		point := s.cfg.SpawnPoints[s.rng.Intn(len(s.cfg.SpawnPoints))]
		lifetime := s.randRange(s.cfg.LifetimeMinMs, s.cfg.LifetimeMaxMs)

		gs.Zombie = components.NewZombie(
			point.X, point.Y,
			s.cfg.BaseRadius, s.cfg.HitRadius(),
			now, lifetime,
		)
		log.Printf("[SpawnSystem] Spawned zombie at (%.0f, %.0f), lifetime %dms", point.X, point.Y, lifetime)
	}

	if gs.Zombie == nil {
		return
	}

	gs.Zombie.Update(now)

	// 死亡的僵尸直接丢弃，绝不复用
	if gs.Zombie.State == components.ZombieDead {
		gs.Zombie = nil
		gap := s.randRange(s.cfg.RespawnGapMinMs, s.cfg.RespawnGapMaxMs)
		s.nextSpawnAt = now + gap
		log.Printf("[SpawnSystem] Zombie released, next spawn in %dms", gap)
	}
}

// randRange 返回 [min, max] 区间内的均匀随机值（闭区间）
func (s *SpawnSystem) randRange(min, max int64) int64 {
	return min + s.rng.Int63n(max-min+1)
}
