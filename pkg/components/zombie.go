// Package components 定义游戏实体的状态数据
package components

import (
	"github.com/gonewx/whackzombie/pkg/config"
	"github.com/gonewx/whackzombie/pkg/utils"
)

// ZombieState 僵尸生命周期状态
// 状态只能沿 Spawning -> Alive -> Despawning -> Dead 顺序前进，
// 不允许回退或跳过 Despawning
type ZombieState int

const (
	// ZombieSpawning 出现动画中（可点击）
	ZombieSpawning ZombieState = iota
	// ZombieAlive 完全出现（可点击）
	ZombieAlive
	// ZombieDespawning 消失动画中（不可点击）
	ZombieDespawning
	// ZombieDead 生命周期结束，等待回收
	ZombieDead
)

// String 返回状态的可读名称（用于日志和测试输出）
func (s ZombieState) String() string {
	switch s {
	case ZombieSpawning:
		return "spawning"
	case ZombieAlive:
		return "alive"
	case ZombieDespawning:
		return "despawning"
	case ZombieDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Zombie 单个僵尸头实体
// 同一时刻最多存在一个实例（由 SpawnSystem 的单槽位保证）
//
// 时间参数统一使用单调毫秒时间戳，每帧采样一次后
// 在该帧的所有判定中复用，保证帧内时间一致
type Zombie struct {
	X, Y       float64 // 中心位置（固定，来自出现点集合）
	Radius     float64 // 基础半径，绘制尺寸的基准
	HitRadius  float64 // 命中判定半径（略小于 Radius）
	SpawnTime  int64   // 创建时间戳（毫秒）
	LifetimeMs int64   // 存活时长，创建时随机确定后不再变化

	State     ZombieState // 当前生命周期状态
	StateTime int64       // 进入当前状态的时间戳（毫秒）

	// HitRegistered 只允许 false -> true 一次，
	// 防止同一个僵尸被重复计分
	HitRegistered bool
}

// NewZombie 创建一个新僵尸
//
// 参数:
//   - x, y: 中心位置
//   - radius: 基础半径
//   - hitRadius: 命中判定半径
//   - now: 当前时间戳（毫秒）
//   - lifetimeMs: 存活时长（毫秒）
func NewZombie(x, y, radius, hitRadius float64, now, lifetimeMs int64) *Zombie {
	return &Zombie{
		X:          x,
		Y:          y,
		Radius:     radius,
		HitRadius:  hitRadius,
		SpawnTime:  now,
		LifetimeMs: lifetimeMs,
		State:      ZombieSpawning,
		StateTime:  now,
	}
}

// Update 根据当前时间推进生命周期状态机
//
// 状态转换规则:
//   - Spawning -> Alive: 进入状态满 SpawnAnimMs
//   - Alive -> Despawning: 距创建满 LifetimeMs
//   - Despawning -> Dead: 进入状态满 DespawnAnimMs
//
// 被点中时的 Spawning/Alive -> Despawning 转换由 RegisterHit 处理
func (z *Zombie) Update(now int64) {
	switch z.State {
	case ZombieSpawning:
		if now-z.StateTime >= config.SpawnAnimMs {
			z.State = ZombieAlive
			z.StateTime = now
		}
	case ZombieAlive:
		if now-z.SpawnTime >= z.LifetimeMs {
			z.State = ZombieDespawning
			z.StateTime = now
		}
	case ZombieDespawning:
		if now-z.StateTime >= config.DespawnAnimMs {
			z.State = ZombieDead
		}
	}
}

// IsClickable 返回僵尸当前是否可以被点中计分
// 这是防止重复计分的唯一闸门：RegisterHit 执行后立即变为 false
func (z *Zombie) IsClickable() bool {
	return (z.State == ZombieSpawning || z.State == ZombieAlive) && !z.HitRegistered
}

// HitTest 判断点 (px, py) 是否落在命中范围内
// 始终使用固定的 HitRadius，不受绘制动画缩放影响
func (z *Zombie) HitTest(px, py float64) bool {
	dx := px - z.X
	dy := py - z.Y
	return dx*dx+dy*dy <= z.HitRadius*z.HitRadius
}

// RegisterHit 记录一次命中
// 设置一次性命中标记并强制进入消失动画（绕过自然到期）
//
// 注意：调用方必须先用 IsClickable() 判断，本方法不做重复检查
func (z *Zombie) RegisterHit(now int64) {
	z.HitRegistered = true
	z.State = ZombieDespawning
	z.StateTime = now
}

// Scale 返回当前的绘制缩放系数（纯视觉，不影响命中判定）
//
// Spawning 期间从 0.6 弹性放大到 1.0（带轻微过冲），
// Despawning 期间从 1.0 线性缩小到 0.1
func (z *Zombie) Scale(now int64) float64 {
	switch z.State {
	case ZombieSpawning:
		t := clamp01(float64(now-z.StateTime) / float64(config.SpawnAnimMs))
		return utils.Lerp(0.6, 1.0, utils.EaseOutBack(t))
	case ZombieDespawning:
		t := clamp01(float64(now-z.StateTime) / float64(config.DespawnAnimMs))
		return 1.0 - 0.9*t
	case ZombieDead:
		return 0
	default:
		return 1.0
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
