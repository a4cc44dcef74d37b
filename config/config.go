package config

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// EnvFile .env 文件路径，可在 Load 前修改
var EnvFile = ".env"

// EnvPrefix 只有带此前缀的环境变量参与覆盖
const EnvPrefix = "MINDMETER_"

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// 首先加载 .env 文件到环境变量
		if err = godotenv.Load(EnvFile); err != nil {
			slog.Warn("无法加载 .env 文件", "path", EnvFile, "error", err)
		}

		k = koanf.New(".")
		err = load(k, configPath)
		if err != nil {
			return
		}

		Conf = &AppConfig{}
		if err = k.Unmarshal("", Conf); err != nil {
			err = fmt.Errorf("解析配置失败: %w", err)
			return
		}
		Conf.applyDefaults()
	})

	return err
}

// load 先读 yaml，再用环境变量覆盖
func load(k *koanf.Koanf, configPath string) error {
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return fmt.Errorf("加载配置文件失败: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		slog.Warn("加载环境变量失败", "error", err)
	}
	return nil
}

// envKey 去掉前缀后只有第一个下划线表示层级：
// MINDMETER_JWT_EXPIRE_TIME -> jwt.expire_time
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + key
}

// MustLoad 加载配置，失败则 panic
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		panic(fmt.Sprintf("配置加载失败: %v", err))
	}
}

func loaded() *koanf.Koanf {
	if k == nil {
		panic("配置未初始化")
	}
	return k
}

// GetString 按点分路径读取原始配置，未加载时 panic
func GetString(key string) string { return loaded().String(key) }

func GetInt(key string) int { return loaded().Int(key) }

func GetBool(key string) bool { return loaded().Bool(key) }

// Reload 重新加载配置
func Reload(configPath string) error {
	if k == nil {
		return fmt.Errorf("配置未初始化")
	}

	fresh := koanf.New(".")
	if err := load(fresh, configPath); err != nil {
		return err
	}

	conf := &AppConfig{}
	if err := fresh.Unmarshal("", conf); err != nil {
		return err
	}
	conf.applyDefaults()

	k = fresh
	Conf = conf
	return nil
}
