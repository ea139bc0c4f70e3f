package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App     *App     `json:"app" yaml:"app"`
	MySQL   *MySQL   `json:"mysql" yaml:"mysql"`
	Jwt     *Jwt     `json:"jwt" yaml:"jwt"`
	Server  *Server  `json:"server" yaml:"server"`
	Storage *Storage `json:"storage" yaml:"storage"`
	Upload  *Upload  `json:"upload" yaml:"upload"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
