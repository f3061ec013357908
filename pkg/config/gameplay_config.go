package config

import (
	"fmt"

	"github.com/gonewx/whackzombie/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// SpawnPoint 僵尸出现点坐标（屏幕像素）
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GameplayConfig 玩法参数配置
// 从 data/gameplay.yaml 加载，控制僵尸的出现位置和节奏
type GameplayConfig struct {
	SpawnPoints     []SpawnPoint `yaml:"spawnPoints"`     // 出现点列表（至少 6 个）
	LifetimeMinMs   int64        `yaml:"lifetimeMinMs"`   // 存活时间下限（毫秒）
	LifetimeMaxMs   int64        `yaml:"lifetimeMaxMs"`   // 存活时间上限（毫秒）
	RespawnGapMinMs int64        `yaml:"respawnGapMinMs"` // 重生间隔下限（毫秒）
	RespawnGapMaxMs int64        `yaml:"respawnGapMaxMs"` // 重生间隔上限（毫秒）
	BaseRadius      float64      `yaml:"baseRadius"`      // 基础半径（像素）
	HitboxShrink    float64      `yaml:"hitboxShrink"`    // 命中判定缩小系数
}

// MinSpawnPoints 出现点的最低数量要求
const MinSpawnPoints = 6

// LoadGameplayConfig 从嵌入资源加载玩法配置
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - *GameplayConfig: 解析并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", path, err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 解析并校验玩法配置数据
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	var cfg GameplayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}
	return &cfg, nil
}

// Validate 校验配置的完整性
//
// 校验规则:
//   - 出现点数量 >= MinSpawnPoints 且互不重复
//   - 时间区间均为正值且下限 <= 上限
//   - 半径为正值，命中缩小系数在 (0, 1] 区间
func (c *GameplayConfig) Validate() error {
	if len(c.SpawnPoints) < MinSpawnPoints {
		return fmt.Errorf("need at least %d spawn points, got %d", MinSpawnPoints, len(c.SpawnPoints))
	}

	// 出现点必须互不重复，否则随机选点会偏向重复坐标
	seen := make(map[SpawnPoint]bool, len(c.SpawnPoints))
	for _, p := range c.SpawnPoints {
		if seen[p] {
			return fmt.Errorf("duplicate spawn point (%.0f, %.0f)", p.X, p.Y)
		}
		seen[p] = true
	}

	if c.LifetimeMinMs <= 0 || c.LifetimeMaxMs < c.LifetimeMinMs {
		return fmt.Errorf("invalid lifetime range [%d, %d]", c.LifetimeMinMs, c.LifetimeMaxMs)
	}
	if c.RespawnGapMinMs <= 0 || c.RespawnGapMaxMs < c.RespawnGapMinMs {
		return fmt.Errorf("invalid respawn gap range [%d, %d]", c.RespawnGapMinMs, c.RespawnGapMaxMs)
	}
	if c.BaseRadius <= 0 {
		return fmt.Errorf("invalid base radius %.2f", c.BaseRadius)
	}
	if c.HitboxShrink <= 0 || c.HitboxShrink > 1 {
		return fmt.Errorf("invalid hitbox shrink factor %.2f (must be in (0, 1])", c.HitboxShrink)
	}
	return nil
}

// HitRadius 返回命中判定半径
// 判定半径比绘制半径略小，避免边缘像素误判
func (c *GameplayConfig) HitRadius() float64 {
	return c.BaseRadius * c.HitboxShrink
}
