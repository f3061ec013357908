package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind 输入事件类型
type EventKind int

const (
	// EventQuit 窗口关闭请求
	EventQuit EventKind = iota
	// EventKeyDown 按键按下
	EventKeyDown
	// EventPointerDown 指针按下（鼠标左键或触摸）
	EventPointerDown
)

// InputEvent 单个离散输入事件
// 每帧收集一次，同一事件不会被重复投递
type InputEvent struct {
	Kind EventKind
	Key  ebiten.Key // 仅 EventKeyDown 有效
	X, Y float64    // 仅 EventPointerDown 有效
}

// CollectEvents 收集当前帧的所有输入事件
// 同时支持鼠标点击和触摸输入，返回的事件按固定顺序排列：
// 窗口关闭 -> 按键 -> 指针按下
//
// 需要在 main 中调用 ebiten.SetWindowClosingHandled(true)
// 才能收到 EventQuit（否则窗口关闭直接结束 RunGame）
func CollectEvents() []InputEvent {
	var events []InputEvent

	if ebiten.IsWindowBeingClosed() {
		events = append(events, InputEvent{Kind: EventQuit})
	}

	for _, key := range []ebiten.Key{ebiten.KeyEscape, ebiten.KeyM} {
		if inpututil.IsKeyJustPressed(key) {
			events = append(events, InputEvent{Kind: EventKeyDown, Key: key})
		}
	}

	// 优先检测触摸（移动设备），其次鼠标左键
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		events = append(events, InputEvent{Kind: EventPointerDown, X: float64(x), Y: float64(y)})
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, InputEvent{Kind: EventPointerDown, X: float64(x), Y: float64(y)})
	}

	return events
}
