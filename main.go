package main

import (
	"flag"
	"log"

	"github.com/gonewx/whackzombie/pkg/app"
	"github.com/gonewx/whackzombie/pkg/config"
	"github.com/gonewx/whackzombie/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	// 初始化嵌入资源，必须在任何配置加载之前
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("打僵尸 - Whack-a-Zombie")
	// 接管窗口关闭：关闭请求作为输入事件处理，让当前帧干净收尾
	ebiten.SetWindowClosingHandled(true)

	// 开始游戏循环
	// ESC、M 等按键在场景内处理；Update 返回 ebiten.Termination 时正常退出
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
