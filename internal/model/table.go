package model

import "fmt"

// ColumnKind 列的数据类型
type ColumnKind int

const (
	ColumnText    ColumnKind = iota // 文本列，参与全文搜索
	ColumnNumeric                   // 数值列，不参与搜索
)

func (k ColumnKind) String() string {
	if k == ColumnNumeric {
		return "numeric"
	}
	return "text"
}

// MarshalText JSON 中以 "text" / "numeric" 表示
func (k ColumnKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ColumnKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "numeric":
		*k = ColumnNumeric
	case "text":
		*k = ColumnText
	default:
		return fmt.Errorf("unknown column kind %q", b)
	}
	return nil
}

// Column 列定义
type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// Cell 单元格，Valid=false 表示缺失（空值）
type Cell struct {
	Text  string
	Valid bool
}

// Value 有效单元格
func Value(text string) Cell {
	return Cell{Text: text, Valid: true}
}

// Missing 缺失单元格
func Missing() Cell {
	return Cell{}
}

// Table 一次上传解析出的供应商表
// 创建后只读，所有筛选/提取都不修改原表
type Table struct {
	columns []Column
	index   map[string]int
	rows    [][]Cell
}

// NewTable 创建供应商表，入参会被复制
// 行长度不足时按缺失处理，超出部分丢弃
func NewTable(columns []Column, rows [][]Cell) *Table {
	t := &Table{
		columns: make([]Column, len(columns)),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]Cell, len(rows)),
	}
	copy(t.columns, columns)
	for i, col := range t.columns {
		if _, exists := t.index[col.Name]; !exists {
			t.index[col.Name] = i
		}
	}
	for i, row := range rows {
		cells := make([]Cell, len(columns))
		copy(cells, row)
		t.rows[i] = cells
	}
	return t
}

// Len 行数
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Columns 列定义（副本）
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames 列名列表
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// HasColumn 是否存在指定列
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex 列下标
func (t *Table) ColumnIndex(name string) (int, bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// TextColumns 文本列下标
func (t *Table) TextColumns() []int {
	var out []int
	for i, col := range t.columns {
		if col.Kind == ColumnText {
			out = append(out, i)
		}
	}
	return out
}

// Row 按原始顺序取第 i 行
func (t *Table) Row(i int) Row {
	return Row{table: t, index: i}
}

// Row 表中一行的只读视图
type Row struct {
	table *Table
	index int
}

// Index 在原表中的行号（从 0 开始）
func (r Row) Index() int {
	return r.index
}

// Cell 按列下标取单元格
func (r Row) Cell(col int) Cell {
	cells := r.table.rows[r.index]
	if col < 0 || col >= len(cells) {
		return Missing()
	}
	return cells[col]
}

// Lookup 取列值；列不存在或值为空时返回 false
func (r Row) Lookup(name string) (string, bool) {
	if r.table == nil {
		return "", false
	}
	idx, ok := r.table.index[name]
	if !ok {
		return "", false
	}
	cell := r.Cell(idx)
	if !cell.Valid || cell.Text == "" {
		return "", false
	}
	return cell.Text, true
}

// Get 取列值，缺失时返回 def
func (r Row) Get(name, def string) string {
	if v, ok := r.Lookup(name); ok {
		return v
	}
	return def
}
