package game

import "github.com/gonewx/whackzombie/pkg/components"

// GameState 存储一局游戏的显式状态
// 由场景创建并以引用方式传入各个系统，不使用全局变量
type GameState struct {
	// Hits 命中次数，只增不减
	Hits int
	// Misses 失误次数，只增不减
	Misses int

	// Zombie 当前唯一的活动僵尸槽位
	// nil 表示没有僵尸在场；单槽位从构造上保证
	// 同一时刻最多只有一个活动实体
	Zombie *components.Zombie

	// QuitRequested 退出标志，每帧循环检查一次，
	// 置位后当前帧正常结束再退出
	QuitRequested bool
}

// NewGameState 创建初始游戏状态（计数清零，无僵尸在场）
func NewGameState() *GameState {
	return &GameState{}
}

// Accuracy 返回命中率百分比
// 无任何点击记录时定义为 0
func (gs *GameState) Accuracy() float64 {
	total := gs.Hits + gs.Misses
	if total == 0 {
		return 0
	}
	return float64(gs.Hits) / float64(total) * 100.0
}

// RequestQuit 请求结束游戏循环
func (gs *GameState) RequestQuit() {
	gs.QuitRequested = true
}
