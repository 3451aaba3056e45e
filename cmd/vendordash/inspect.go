package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vendordash/internal/model"
	"vendordash/internal/parser"
	"vendordash/internal/service/vendor"
	"vendordash/internal/terminal"
)

var (
	inspectFile     string
	inspectVendor   string
	inspectAdvanced bool
	inspectQuery    string
	inspectCapacity string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print vendor cards for a file in the terminal",
	Long: `Inspect loads a vendor master file and prints the same views as the
web dashboard: a single vendor (--vendor) or the advanced search results
(--advanced with optional --search / --capacity).`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "供应商文件 (.csv / .xlsx / .xls)")
	inspectCmd.Flags().StringVarP(&inspectVendor, "vendor", "v", model.AllVendors, "供应商名称（基础模式）")
	inspectCmd.Flags().BoolVarP(&inspectAdvanced, "advanced", "a", false, "高级筛选模式")
	inspectCmd.Flags().StringVarP(&inspectQuery, "search", "s", "", "全文搜索关键词（高级模式）")
	inspectCmd.Flags().StringVarP(&inspectCapacity, "capacity", "c", model.AllCapacities, "接待能力（高级模式）")

	inspectCmd.MarkFlagRequired("file")
}

func runInspect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if err := parser.CheckExtension(inspectFile); err != nil {
		fmt.Fprint(out, terminal.RenderError(err))
		return err
	}
	data, err := os.ReadFile(inspectFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inspectFile, err)
	}

	tbl, err := parser.Load(inspectFile, data)
	if err != nil {
		fmt.Fprint(out, terminal.RenderError(err))
		return err
	}

	d := vendor.BuildDashboard(tbl, model.FilterState{
		Vendor:   inspectVendor,
		Advanced: inspectAdvanced || inspectQuery != "" || inspectCapacity != model.AllCapacities,
		Query:    inspectQuery,
		Capacity: inspectCapacity,
	})
	fmt.Fprint(out, terminal.RenderDashboard(d))
	return nil
}
