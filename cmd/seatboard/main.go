package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"seatboard/internal/config"
	"seatboard/internal/server"
	"seatboard/internal/util"
)

var (
	port      = flag.Int("port", 0, "服务端口 (config.toml 中显式配置的端口优先)")
	devMode   = flag.Bool("dev", false, "开发模式")
	dataDir   = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	noBrowser = flag.Bool("no-browser", false, "启动后不自动打开浏览器")
)

func loadConfig() *config.AppConfig {
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	return cfg
}

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Seatboard - 席位分配推演面板")
	fmt.Println("==========================================")

	cfg := loadConfig()

	if dir, err := config.EnsureDataDir(cfg); err != nil {
		log.Printf("创建数据目录失败: %v", err)
	} else {
		fmt.Printf("数据目录: %s\n", dir)
	}

	srv := server.NewServer(cfg)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	switch {
	case cfg.Server.DevMode:
		fmt.Printf("开发模式: 请访问 %s\n", url)
	case *noBrowser:
		fmt.Printf("请访问 %s\n", url)
	default:
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n服务已停止")
}
