package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/whackzombie/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 僵尸脸配色（矢量绘制，无需图片素材）
var (
	zombieSkinColor   = color.RGBA{R: 141, G: 199, B: 63, A: 255}
	zombieShadowColor = color.RGBA{R: 94, G: 134, B: 45, A: 255}
	zombieEyeColor    = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	zombiePupilColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	zombieScarColor   = color.RGBA{R: 183, G: 62, B: 62, A: 255}
	zombieMouthColor  = color.RGBA{R: 60, G: 20, B: 20, A: 255}
	zombieToothColor  = color.RGBA{R: 235, G: 235, B: 235, A: 255}

	dropShadowColor = color.RGBA{A: 30}
)

// ZombieRenderSystem 僵尸绘制系统
// 启动时把僵尸脸按基础半径预合成到一张离屏图片上，
// 每帧只做缩放和平移绘制。缩放系数来自 Zombie.Scale，
// 纯视觉，不影响命中判定
type ZombieRenderSystem struct {
	face   *ebiten.Image // 预合成的僵尸脸
	side   float64       // face 画布边长（像素）
	radius float64       // 基础半径
}

// NewZombieRenderSystem 创建僵尸绘制系统并预合成脸部图片
//
// 参数:
//   - radius: 僵尸基础半径（像素）
func NewZombieRenderSystem(radius float64) *ZombieRenderSystem {
	s := &ZombieRenderSystem{radius: radius}
	s.buildFace()
	return s
}

// buildFace 把脸部各元素绘制到离屏画布
// 画布略大于直径，容纳偏心的描边圆环
func (s *ZombieRenderSystem) buildFace() {
	r := s.radius
	side := int(math.Ceil(r * 2.6))
	s.side = float64(side)
	s.face = ebiten.NewImage(side, side)

	c := float32(side) / 2
	fr := float32(r)

	// 脸底
	vector.DrawFilledCircle(s.face, c, c, fr, zombieSkinColor, true)

	// 左上方的阴影圆环
	vector.StrokeCircle(s.face, c-fr*0.2, c-fr*0.2, fr*1.02, 4, zombieShadowColor, true)

	// 眼睛（左大右小）
	ex, ey := fr*0.45, fr*0.20
	vector.DrawFilledCircle(s.face, c-ex, c-ey, fr*0.28, zombieEyeColor, true)
	vector.DrawFilledCircle(s.face, c+ex, c-ey, fr*0.24, zombieEyeColor, true)
	vector.DrawFilledCircle(s.face, c-ex, c-ey, fr*0.10, zombiePupilColor, true)
	vector.DrawFilledCircle(s.face, c+ex, c-ey, fr*0.08, zombiePupilColor, true)

	// 伤疤：一长一短两道
	vector.StrokeLine(s.face, c-fr*0.7, c-fr*0.55, c-fr*0.2, c-fr*0.1, 3, zombieScarColor, true)
	vector.StrokeLine(s.face, c-fr*0.6, c-fr*0.5, c-fr*0.5, c-fr*0.35, 3, zombieScarColor, true)

	// 嘴：宽 r、高 0.45r 的椭圆，用压扁的圆绘制
	s.drawMouth(c, fr)

	// 牙齿：三颗矩形
	toothW := float32(math.Max(4, r*0.12))
	toothH := fr * 0.45 * 0.35
	for _, dx := range []float32{-fr * 0.25, 0, fr * 0.25} {
		vector.DrawFilledRect(s.face,
			c+dx-toothW/2, c+fr*0.33-toothH/2,
			toothW, toothH, zombieToothColor, true)
	}
}

// drawMouth 绘制椭圆嘴
// vector 包没有椭圆图元，先把圆画到临时图片再做 Y 方向压缩
func (s *ZombieRenderSystem) drawMouth(c, fr float32) {
	d := int(math.Ceil(float64(fr)))
	if d <= 0 {
		return
	}
	tmp := ebiten.NewImage(d, d)
	vector.DrawFilledCircle(tmp, float32(d)/2, float32(d)/2, float32(d)/2, zombieMouthColor, true)

	const squash = 0.45
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, squash)
	op.GeoM.Translate(
		float64(c)-float64(d)/2,
		float64(c)+float64(fr)*0.40-float64(d)*squash/2,
	)
	op.Filter = ebiten.FilterLinear
	s.face.DrawImage(tmp, op)
	tmp.Deallocate()
}

// Draw 绘制僵尸（含落地阴影）
// 僵尸为 nil 或已死亡时不绘制
func (s *ZombieRenderSystem) Draw(screen *ebiten.Image, z *components.Zombie, now int64) {
	if z == nil || z.State == components.ZombieDead {
		return
	}

	scale := z.Scale(now)
	if scale <= 0 {
		return
	}

	// 落地阴影，右下偏移
	vector.DrawFilledCircle(screen,
		float32(z.X)+6, float32(z.Y)+10,
		float32(z.Radius*scale*0.95), dropShadowColor, true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.side/2, -s.side/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(z.X, z.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.face, op)
}
