package scenes

import (
	"math/rand"
	"testing"

	"github.com/gonewx/whackzombie/pkg/components"
	"github.com/gonewx/whackzombie/pkg/config"
	"github.com/gonewx/whackzombie/pkg/game"
	"github.com/gonewx/whackzombie/pkg/utils"
)

// manualClock 测试用手动时钟
type manualClock struct {
	now int64
}

func (c *manualClock) NowMs() int64 { return c.now }

func testConfig() *config.GameplayConfig {
	return &config.GameplayConfig{
		SpawnPoints: []config.SpawnPoint{
			{X: 150, Y: 160}, {X: 300, Y: 140}, {X: 450, Y: 170},
			{X: 600, Y: 150}, {X: 750, Y: 170}, {X: 220, Y: 320},
		},
		LifetimeMinMs:   1000,
		LifetimeMaxMs:   1000,
		RespawnGapMinMs: 300,
		RespawnGapMaxMs: 300,
		BaseRadius:      48,
		HitboxShrink:    0.95,
	}
}

func newTestScene(clock game.Clock) *GameScene {
	sm, _ := game.NewSettingsManager(nil)
	am := game.NewAudioManager(nil, sm)
	return NewGameScene(testConfig(), clock, am, rand.New(rand.NewSource(1)))
}

// TestGameSceneSpawnsOnFirstFrame 测试第一帧就会生成僵尸
func TestGameSceneSpawnsOnFirstFrame(t *testing.T) {
	clock := &manualClock{}
	scene := newTestScene(clock)
	scene.collectEvents = func() []utils.InputEvent { return nil }

	scene.Update(1.0 / 60.0)

	if scene.GameState().Zombie == nil {
		t.Fatal("zombie should spawn on the first frame")
	}
}

// TestGameSceneClickScoresHit 测试点击在场僵尸会计分
func TestGameSceneClickScoresHit(t *testing.T) {
	clock := &manualClock{}
	scene := newTestScene(clock)

	// 第一帧：生成僵尸，无输入
	scene.collectEvents = func() []utils.InputEvent { return nil }
	scene.Update(1.0 / 60.0)

	z := scene.GameState().Zombie
	if z == nil {
		t.Fatal("zombie should have spawned")
	}

	// 第二帧：点击僵尸圆心
	clock.now = 50
	scene.collectEvents = func() []utils.InputEvent {
		return []utils.InputEvent{{Kind: utils.EventPointerDown, X: z.X, Y: z.Y}}
	}
	scene.Update(1.0 / 60.0)

	gs := scene.GameState()
	if gs.Hits != 1 {
		t.Errorf("hits: got %d, want 1", gs.Hits)
	}
	if z.State != components.ZombieDespawning {
		t.Errorf("state after hit: got %v, want despawning", z.State)
	}
}

// TestGameSceneFrameUsesSingleTimestamp 测试一帧内只采样一次时钟
// Update 采样的时间戳保存在场景中供 Draw 复用
func TestGameSceneFrameUsesSingleTimestamp(t *testing.T) {
	clock := &manualClock{now: 1234}
	scene := newTestScene(clock)
	scene.collectEvents = func() []utils.InputEvent { return nil }

	scene.Update(1.0 / 60.0)

	if scene.nowMs != 1234 {
		t.Errorf("frame timestamp: got %d, want 1234", scene.nowMs)
	}
}
