package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/whackzombie/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD 布局参数
const (
	hudMarginX    = 12.0
	hudMarginY    = 12.0
	hudLineHeight = 26.0
	hudTextScale  = 1.6
)

// hudColor HUD 文字颜色
var hudColor = color.RGBA{R: 230, G: 235, B: 245, A: 255}

// HUDRenderSystem 计分板绘制系统
// 每帧在左上角绘制命中、失误、命中率和音频状态四行文字
type HUDRenderSystem struct {
	face           text.Face
	audioAvailable bool
}

// NewHUDRenderSystem 创建 HUD 绘制系统
// 使用内置的 basicfont，避免引入字体资源加载
//
// 参数:
//   - audioAvailable: 音频能力是否可用，决定状态行文案
func NewHUDRenderSystem(audioAvailable bool) *HUDRenderSystem {
	return &HUDRenderSystem{
		face:           text.NewGoXFace(basicfont.Face7x13),
		audioAvailable: audioAvailable,
	}
}

// Draw 绘制 HUD
func (s *HUDRenderSystem) Draw(screen *ebiten.Image, gs *game.GameState) {
	for i, line := range hudLines(gs, s.audioAvailable) {
		op := &text.DrawOptions{}
		op.GeoM.Scale(hudTextScale, hudTextScale)
		op.GeoM.Translate(hudMarginX, hudMarginY+float64(i)*hudLineHeight)
		op.ColorScale.ScaleWithColor(hudColor)
		text.Draw(screen, line, s.face, op)
	}
}

// hudLines 生成 HUD 的四行文字
// 命中率固定保留一位小数
func hudLines(gs *game.GameState, audioAvailable bool) []string {
	status := "Sound unavailable"
	if audioAvailable {
		status = "Press M to mute"
	}
	return []string{
		fmt.Sprintf("Hits: %d", gs.Hits),
		fmt.Sprintf("Misses: %d", gs.Misses),
		fmt.Sprintf("Accuracy: %.1f%%", gs.Accuracy()),
		status,
	}
}
