package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Cleanup(func() {
		configPath = ""
		configForce = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), "8501") {
		t.Fatalf("default port missing:\n%s", data)
	}

	// 已存在时不覆盖
	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error when config exists")
	}
}
