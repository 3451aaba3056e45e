package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int  `toml:"port"`
	DevMode     bool `toml:"dev_mode"`
	OpenBrowser bool `toml:"open_browser"`
	MaxUploadMB int  `toml:"max_upload_mb"`
}

// CacheConfig 解析缓存与会话配置
type CacheConfig struct {
	TableEntries   int    `toml:"table_entries"`
	SessionEntries int    `toml:"session_entries"`
	SessionTTL     string `toml:"session_ttl"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        8501,
			DevMode:     false,
			OpenBrowser: true,
			MaxUploadMB: 32,
		},
		Cache: CacheConfig{
			TableEntries:   16,
			SessionEntries: 256,
			SessionTTL:     "2h",
		},
	}
}

// SessionTTLDuration 会话闲置过期时间，格式错误时回退到 2h
func (c CacheConfig) SessionTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil || d <= 0 {
		return 2 * time.Hour
	}
	return d
}

// MaxUploadBytes 上传大小上限（字节）
func (c ServerConfig) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 32 << 20
	}
	return int64(c.MaxUploadMB) << 20
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath 默认配置文件路径：可执行文件同目录下的 config.toml
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
// path 为空时使用 DefaultPath；文件不存在时使用默认配置
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultPath()
	}
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	// .env 可选
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, info, err
		}
		// 配置文件不存在，使用默认配置
	} else {
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	}

	if applyEnv(config) {
		info.PortSpecified = true
	}

	return config, info, nil
}

// LoadConfig 从 config.toml 加载配置
func LoadConfig(path string) (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo(path)
	return config, err
}

// applyEnv 环境变量覆盖，返回是否覆盖了端口
func applyEnv(config *AppConfig) (portSet bool) {
	if v, ok := envInt("VENDORDASH_PORT"); ok && v > 0 {
		config.Server.Port = v
		portSet = true
	}
	if v := os.Getenv("VENDORDASH_DEV"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Server.DevMode = b
		}
	}
	if v, ok := envInt("VENDORDASH_MAX_UPLOAD_MB"); ok {
		config.Server.MaxUploadMB = v
	}
	if v, ok := envInt("VENDORDASH_CACHE_ENTRIES"); ok {
		config.Cache.TableEntries = v
	}
	if v := os.Getenv("VENDORDASH_SESSION_TTL"); v != "" {
		config.Cache.SessionTTL = v
	}
	return portSet
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SaveConfig 保存配置到 path
func SaveConfig(path string, config *AppConfig) error {
	if path == "" {
		path = DefaultPath()
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
