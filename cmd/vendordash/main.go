package main

import (
	"log"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vendordash",
	Short: "Vendor Master Dashboard",
	Long: `Vendor Master Dashboard loads a vendor master file (.csv / .xlsx),
lets you search and filter it, and renders per-vendor detail cards.`,
	// 不带子命令时启动服务
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径 (默认: 可执行文件同目录下的 config.toml)")
	addServeFlags(rootCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
