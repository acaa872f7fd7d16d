package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// BusinessConfig 业务配置：模拟调整滑杆范围与预览行数
type BusinessConfig struct {
	WhatIfMin          int `toml:"whatif_min"`
	WhatIfMax          int `toml:"whatif_max"`
	WhatIfPreviewLimit int `toml:"whatif_preview_limit"`
}

// Normalize 修正不合法的业务配置：滑杆范围倒置时收拢，预览行数至少为 1
func (b *BusinessConfig) Normalize() {
	if b.WhatIfMax < b.WhatIfMin {
		b.WhatIfMax = b.WhatIfMin
	}
	if b.WhatIfPreviewLimit < 1 {
		b.WhatIfPreviewLimit = 1
	}
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Business: BusinessConfig{
			WhatIfMin:          100,
			WhatIfMax:          200,
			WhatIfPreviewLimit: 5,
		},
	}
}

// exeDir 可执行文件所在目录；拿不到时退回当前目录
func exeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	server, ok := raw["server"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = server["port"]
	return ok
}

// LoadConfigWithInfo 从可执行文件旁的 config.toml 加载配置
// 文件不存在时返回默认配置；同时报告 toml 是否写死了端口（写死则 CLI --port 不覆盖）
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(exeDir(), "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, info, err
	}
	cfg.Business.Normalize()

	return cfg, info, nil
}

// EnsureDataDir 确保数据目录及 uploads/exports 子目录存在，返回数据目录路径
func EnsureDataDir(cfg *AppConfig) (string, error) {
	dataDir := filepath.Join(exeDir(), cfg.Data.DataDir)
	for _, dir := range []string{dataDir, filepath.Join(dataDir, "uploads"), filepath.Join(dataDir, "exports")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	return dataDir, nil
}
