package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
)

// headerReader 供 csvutil 读取：第一条记录作为表头规范化，
// 之后的短行补齐到表头长度，缺少的尾部字段按空值处理
type headerReader struct {
	r     *csv.Reader
	width int
}

func (h *headerReader) Read() ([]string, error) {
	record, err := h.r.Read()
	if err != nil {
		return nil, err
	}
	if h.width == 0 {
		record = NormalizeHeaders(record)
		h.width = len(record)
		return record, nil
	}
	for len(record) < h.width {
		record = append(record, "")
	}
	return record, nil
}

// readCSV 读取 CSV：第一行为表头
func readCSV(data []byte) ([]string, [][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	dec, err := csvutil.NewDecoder(&headerReader{r: r})
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	header := dec.Header()

	// 列是动态的：Decoder 按表头校验字段数，原始记录通过 Record 取出
	var rows [][]string
	for {
		var discard struct{}
		if err := dec.Decode(&discard); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("failed to decode csv row %d: %w", len(rows)+2, err)
		}
		record := dec.Record()
		row := make([]string, len(record))
		copy(row, record)
		rows = append(rows, row)
	}

	return header, rows, nil
}
