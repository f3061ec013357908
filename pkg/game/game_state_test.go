package game

import (
	"math"
	"testing"
)

// TestNewGameState 测试初始状态
func TestNewGameState(t *testing.T) {
	gs := NewGameState()

	if gs.Hits != 0 || gs.Misses != 0 {
		t.Errorf("initial counters: got hits=%d misses=%d, want 0/0", gs.Hits, gs.Misses)
	}
	if gs.Zombie != nil {
		t.Error("initial zombie slot should be empty")
	}
	if gs.QuitRequested {
		t.Error("QuitRequested should start false")
	}
}

// TestAccuracy 测试命中率计算
func TestAccuracy(t *testing.T) {
	tests := []struct {
		name   string
		hits   int
		misses int
		want   float64
	}{
		{"无记录时为0", 0, 0, 0},
		{"全部命中", 10, 0, 100},
		{"全部失误", 0, 7, 0},
		{"一半命中", 5, 5, 50},
		{"三分之一命中", 1, 2, 100.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			gs.Hits = tt.hits
			gs.Misses = tt.misses

			if got := gs.Accuracy(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestRequestQuit 测试退出标志
func TestRequestQuit(t *testing.T) {
	gs := NewGameState()
	gs.RequestQuit()

	if !gs.QuitRequested {
		t.Error("QuitRequested should be true after RequestQuit()")
	}
}
