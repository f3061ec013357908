package scenes

import (
	"image/color"

	"github.com/gonewx/whackzombie/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 场地配色
var (
	backgroundColor = color.RGBA{R: 24, G: 28, B: 38, A: 255}
	holeOuterColor  = color.RGBA{R: 18, G: 20, B: 26, A: 255}
	holeInnerColor  = color.RGBA{R: 28, G: 33, B: 43, A: 255}
)

// 洞口绘制参数：每个出现点下方画两层错位的暗色圆，
// 形成僵尸钻出的洞口
const (
	holeOuterRadius  = 58
	holeOuterOffsetY = 18
	holeInnerRadius  = 54
	holeInnerOffsetY = 14
)

// buildPlayfieldImage 预绘制静态场地背景
// 背景在场景创建时合成一次，之后每帧直接贴图
func buildPlayfieldImage(cfg *config.GameplayConfig) *ebiten.Image {
	bg := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	bg.Fill(backgroundColor)

	for _, p := range cfg.SpawnPoints {
		vector.DrawFilledCircle(bg,
			float32(p.X), float32(p.Y)+holeOuterOffsetY,
			holeOuterRadius, holeOuterColor, true)
		vector.DrawFilledCircle(bg,
			float32(p.X), float32(p.Y)+holeInnerOffsetY,
			holeInnerRadius, holeInnerColor, true)
	}

	return bg
}
