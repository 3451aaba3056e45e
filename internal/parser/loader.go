package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"vendordash/internal/model"
)

var (
	// ErrUnsupportedExtension 不支持的文件扩展名
	ErrUnsupportedExtension = errors.New("unsupported file type: upload a .csv, .xlsx or .xls file")
	// ErrSpreadsheetUnsupported 当前构建无法读取该表格格式
	ErrSpreadsheetUnsupported = errors.New("this spreadsheet format cannot be read here: save the workbook as .xlsx, or upload the file as .csv instead")
	// ErrEmptyFile 文件没有任何内容（连表头都没有）
	ErrEmptyFile = errors.New("the uploaded file is empty")
)

// AcceptedExtensions 上传允许的扩展名
var AcceptedExtensions = []string{".csv", ".xlsx", ".xls"}

// Format 上传文件格式
type Format string

const (
	FormatCSV         Format = "csv"
	FormatSpreadsheet Format = "spreadsheet"
)

// DetectFormat 按扩展名判断格式：.csv 走 CSV，其余按表格处理
func DetectFormat(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return FormatCSV
	}
	return FormatSpreadsheet
}

// CheckExtension 校验上传文件扩展名
func CheckExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return nil
		}
	}
	return fmt.Errorf("%w (got %q)", ErrUnsupportedExtension, name)
}

// Load 解析上传文件为供应商表
// 表头会去掉首尾空白；解析失败时返回的错误对本次请求是致命的
func Load(name string, data []byte) (*model.Table, error) {
	var (
		header []string
		rows   [][]string
		err    error
	)

	switch DetectFormat(name) {
	case FormatCSV:
		header, rows, err = readCSV(data)
	default:
		header, rows, err = readSpreadsheet(name, data)
	}
	if err != nil {
		return nil, err
	}

	return buildTable(header, rows), nil
}

// buildTable 识别缺失值并推断列类型，header 已规范化
func buildTable(names []string, rows [][]string) *model.Table {

	cells := make([][]model.Cell, len(rows))
	for i, raw := range rows {
		row := make([]model.Cell, len(names))
		for j := range names {
			if j < len(raw) && !IsMissing(raw[j]) {
				row[j] = model.Value(raw[j])
			}
		}
		cells[i] = row
	}

	columns := make([]model.Column, len(names))
	for j, name := range names {
		columns[j] = model.Column{Name: name, Kind: inferKind(cells, j)}
	}

	return model.NewTable(columns, cells)
}

// inferKind 所有非空值都是数字时视为数值列（全空列同样视为数值列）
func inferKind(rows [][]model.Cell, col int) model.ColumnKind {
	for _, row := range rows {
		cell := row[col]
		if !cell.Valid {
			continue
		}
		if !IsNumeric(cell.Text) {
			return model.ColumnText
		}
	}
	return model.ColumnNumeric
}
