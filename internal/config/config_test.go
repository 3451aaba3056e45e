package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigWithInfo_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, info, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if cfg.Server.Port != DefaultConfig().Server.Port {
		t.Fatalf("Port = %d", cfg.Server.Port)
	}
	if info.PortSpecified {
		t.Fatalf("PortSpecified should be false")
	}
}

func TestLoadConfigWithInfo_FromToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[server]\nport = 9000\nmax_upload_mb = 8\n\n[cache]\ntable_entries = 4\nsession_ttl = \"30m\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, info, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if !info.PortSpecified || cfg.Server.Port != 9000 {
		t.Fatalf("port not loaded: %+v %+v", cfg.Server, info)
	}
	if cfg.Server.MaxUploadBytes() != 8<<20 {
		t.Fatalf("MaxUploadBytes = %d", cfg.Server.MaxUploadBytes())
	}
	if cfg.Cache.TableEntries != 4 || cfg.Cache.SessionTTLDuration() != 30*time.Minute {
		t.Fatalf("cache config not loaded: %+v", cfg.Cache)
	}
	// 未配置的字段保持默认
	if cfg.Cache.SessionEntries != 256 || !cfg.Server.OpenBrowser {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigWithInfo_EnvOverrides(t *testing.T) {
	t.Setenv("VENDORDASH_PORT", "9100")
	t.Setenv("VENDORDASH_DEV", "true")
	t.Setenv("VENDORDASH_SESSION_TTL", "5m")

	cfg, info, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if cfg.Server.Port != 9100 || !info.PortSpecified {
		t.Fatalf("port override failed: %d %v", cfg.Server.Port, info.PortSpecified)
	}
	if !cfg.Server.DevMode {
		t.Fatalf("dev override failed")
	}
	if cfg.Cache.SessionTTLDuration() != 5*time.Minute {
		t.Fatalf("ttl override failed: %v", cfg.Cache.SessionTTLDuration())
	}
}

func TestLoadConfigWithInfo_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\nport ="), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := LoadConfigWithInfo(path); err == nil {
		t.Fatalf("expected error for invalid toml")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Server.Port = 9300
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Server.Port != 9300 {
		t.Fatalf("Port = %d", loaded.Server.Port)
	}
}

func TestSessionTTLDuration_Fallback(t *testing.T) {
	t.Parallel()

	c := CacheConfig{SessionTTL: "soon"}
	if c.SessionTTLDuration() != 2*time.Hour {
		t.Fatalf("fallback ttl = %v", c.SessionTTLDuration())
	}
}
