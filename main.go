package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/montociel/pkg/app"
	"github.com/decker502/montociel/pkg/config"
	"github.com/decker502/montociel/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "外部配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "云朵生成的随机种子（0 表示随机）")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Montociel")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
