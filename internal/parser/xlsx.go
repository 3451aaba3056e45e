package parser

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readSpreadsheet 读取工作簿第一个工作表：第一行为表头，全空行跳过
func readSpreadsheet(name string, data []byte) ([]string, [][]string, error) {
	// 按内容判断：以 .xls 命名的 xlsx 照常读取，旧版二进制 .xls 打不开
	legacy := strings.EqualFold(filepath.Ext(name), ".xls")

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		if legacy || errors.Is(err, excelize.ErrWorkbookFileFormat) {
			return nil, nil, fmt.Errorf("%w: %v", ErrSpreadsheetUnsupported, err)
		}
		return nil, nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var nonEmpty [][]string
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		nonEmpty = append(nonEmpty, row)
	}
	if len(nonEmpty) == 0 {
		return []string{}, nil, nil
	}

	return NormalizeHeaders(nonEmpty[0]), nonEmpty[1:], nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
