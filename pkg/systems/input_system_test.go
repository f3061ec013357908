package systems

import (
	"testing"

	"github.com/gonewx/whackzombie/pkg/components"
	"github.com/gonewx/whackzombie/pkg/game"
	"github.com/gonewx/whackzombie/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// newTestInputSystem 创建使用降级音频的输入系统及其设置管理器
func newTestInputSystem() (*InputSystem, *game.SettingsManager) {
	sm, _ := game.NewSettingsManager(nil)
	am := game.NewAudioManager(nil, sm)
	return NewInputSystem(am), sm
}

// stateWithZombie 创建带一个在场僵尸的游戏状态
// 僵尸位于 (400, 300)，半径 48，命中半径 45.6，t=0 创建
func stateWithZombie() *game.GameState {
	gs := game.NewGameState()
	gs.Zombie = components.NewZombie(400, 300, 48, 48*0.95, 0, 1000)
	return gs
}

func pointerDown(x, y float64) utils.InputEvent {
	return utils.InputEvent{Kind: utils.EventPointerDown, X: x, Y: y}
}

func keyDown(key ebiten.Key) utils.InputEvent {
	return utils.InputEvent{Kind: utils.EventKeyDown, Key: key}
}

// TestClickHitDuringSpawning 测试出现动画期间的命中
// 场景：t=50，僵尸处于 Spawning，点击距圆心 0.9*HitRadius 处
func TestClickHitDuringSpawning(t *testing.T) {
	s, _ := newTestInputSystem()
	gs := stateWithZombie()
	gs.Zombie.Update(50)

	s.Update(gs, 50, []utils.InputEvent{pointerDown(400+gs.Zombie.HitRadius*0.9, 300)})

	if gs.Hits != 1 {
		t.Errorf("hits: got %d, want 1", gs.Hits)
	}
	if gs.Misses != 0 {
		t.Errorf("misses: got %d, want 0", gs.Misses)
	}
	if !gs.Zombie.HitRegistered {
		t.Error("HitRegistered should be true")
	}
	if gs.Zombie.State != components.ZombieDespawning {
		t.Errorf("state: got %v, want despawning", gs.Zombie.State)
	}
	if gs.Zombie.StateTime != 50 {
		t.Errorf("StateTime: got %d, want 50", gs.Zombie.StateTime)
	}
}

// TestClickMissWhileAlive 测试存活期内点空
// 命中范围外的点击计一次失误，僵尸状态不受影响
func TestClickMissWhileAlive(t *testing.T) {
	s, _ := newTestInputSystem()
	gs := stateWithZombie()
	gs.Zombie.Update(500)

	if gs.Zombie.State != components.ZombieAlive {
		t.Fatalf("state at t=500: got %v, want alive", gs.Zombie.State)
	}

	s.Update(gs, 500, []utils.InputEvent{pointerDown(400+gs.Zombie.HitRadius+2, 300)})

	if gs.Misses != 1 {
		t.Errorf("misses: got %d, want 1", gs.Misses)
	}
	if gs.Hits != 0 {
		t.Errorf("hits: got %d, want 0", gs.Hits)
	}
	if gs.Zombie.State != components.ZombieAlive {
		t.Errorf("state after miss: got %v, want alive", gs.Zombie.State)
	}
}

// TestClickWithNoZombie 测试场上无僵尸时点击不计分
func TestClickWithNoZombie(t *testing.T) {
	s, _ := newTestInputSystem()
	gs := game.NewGameState()

	s.Update(gs, 10, []utils.InputEvent{pointerDown(400, 300)})

	if gs.Hits != 0 || gs.Misses != 0 {
		t.Errorf("counters changed: hits=%d misses=%d, want 0/0", gs.Hits, gs.Misses)
	}
}

// TestClickDuringDespawningNotCounted 测试消失动画期间点击不计失误
// 只有在确实有目标可打时才惩罚失误
func TestClickDuringDespawningNotCounted(t *testing.T) {
	s, _ := newTestInputSystem()
	gs := stateWithZombie()
	gs.Zombie.Update(200)  // Spawning -> Alive
	gs.Zombie.Update(1000) // 自然到期进入 Despawning

	s.Update(gs, 1050, []utils.InputEvent{pointerDown(400, 300)})

	if gs.Hits != 0 || gs.Misses != 0 {
		t.Errorf("counters changed during despawn: hits=%d misses=%d, want 0/0", gs.Hits, gs.Misses)
	}
}

// TestDoubleClickSameFrame 测试同一帧两次点击不会重复计分
// RegisterHit 后 IsClickable 立即为 false，第二次点击既不命中也不计失误
func TestDoubleClickSameFrame(t *testing.T) {
	s, _ := newTestInputSystem()
	gs := stateWithZombie()
	gs.Zombie.Update(300)

	events := []utils.InputEvent{
		pointerDown(400, 300),
		pointerDown(400, 300),
	}
	s.Update(gs, 300, events)

	if gs.Hits != 1 {
		t.Errorf("hits: got %d, want 1", gs.Hits)
	}
	if gs.Misses != 0 {
		t.Errorf("misses: got %d, want 0", gs.Misses)
	}
}

// TestEscapeRequestsQuit 测试 ESC 请求退出且不触碰计分
func TestEscapeRequestsQuit(t *testing.T) {
	s, _ := newTestInputSystem()
	gs := stateWithZombie()

	s.Update(gs, 100, []utils.InputEvent{keyDown(ebiten.KeyEscape)})

	if !gs.QuitRequested {
		t.Error("QuitRequested should be true after ESC")
	}
	if gs.Hits != 0 || gs.Misses != 0 {
		t.Errorf("counters changed: hits=%d misses=%d", gs.Hits, gs.Misses)
	}
}

// TestQuitEvent 测试窗口关闭事件
func TestQuitEvent(t *testing.T) {
	s, _ := newTestInputSystem()
	gs := game.NewGameState()

	s.Update(gs, 0, []utils.InputEvent{{Kind: utils.EventQuit}})

	if !gs.QuitRequested {
		t.Error("QuitRequested should be true after quit event")
	}
}

// TestMuteKeyIgnoredWhenAudioUnavailable 测试音频降级时 M 键无效
func TestMuteKeyIgnoredWhenAudioUnavailable(t *testing.T) {
	s, sm := newTestInputSystem() // 降级音频：Available() == false
	gs := game.NewGameState()

	s.Update(gs, 0, []utils.InputEvent{keyDown(ebiten.KeyM)})

	if !sm.GetSettings().SoundEnabled {
		t.Error("sound settings should be untouched when audio is unavailable")
	}
	if gs.QuitRequested {
		t.Error("M key should not request quit")
	}
}

// TestEventOrderPreserved 测试事件按到达顺序处理
// 先失误点击后命中点击，两者都应生效
func TestEventOrderPreserved(t *testing.T) {
	s, _ := newTestInputSystem()
	gs := stateWithZombie()
	gs.Zombie.Update(300)

	events := []utils.InputEvent{
		pointerDown(700, 500), // 点空
		pointerDown(400, 300), // 命中
	}
	s.Update(gs, 300, events)

	if gs.Misses != 1 {
		t.Errorf("misses: got %d, want 1", gs.Misses)
	}
	if gs.Hits != 1 {
		t.Errorf("hits: got %d, want 1", gs.Hits)
	}
}
