package game

import "time"

// Clock 单调毫秒时钟
// 每帧只采样一次，采样值在该帧内的所有判定中复用，
// 保证同一帧的决策时间一致
type Clock interface {
	// NowMs 返回单调递增的毫秒时间戳
	NowMs() int64
}

// monotonicClock 基于进程启动时间的真实时钟
type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock 创建从当前时刻起算的单调时钟
func NewMonotonicClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}
