// Package config 提供游戏配置常量和 YAML 配置加载
package config

const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 900

	// GameWindowHeight 游戏逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// SpawnAnimMs 僵尸出现动画时长（毫秒）
	// 动画期间状态为 Spawning，结束后进入 Alive
	SpawnAnimMs = 180

	// DespawnAnimMs 僵尸消失动画时长（毫秒）
	// 动画期间状态为 Despawning，结束后进入 Dead
	DespawnAnimMs = 220
)
