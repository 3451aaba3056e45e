package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// missingMarkers 按缺失处理的单元格文本
var missingMarkers = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissing 单元格是否视为空值
func IsMissing(text string) bool {
	_, ok := missingMarkers[text]
	return ok
}

// decimalPattern 十进制数字，可带正负号、小数点与指数
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsNumeric 是否为十进制数字（允许首尾空白）
// Inf、十六进制浮点数等写法按文本处理
func IsNumeric(text string) bool {
	return decimalPattern.MatchString(strings.TrimSpace(text))
}

// NormalizeHeaders 去掉表头首尾空白
// 空表头命名为 "Unnamed: N"，重名表头依次追加 ".1" ".2"
func NormalizeHeaders(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if seen[name] {
			base := name
			for k := 1; ; k++ {
				candidate := base + "." + strconv.Itoa(k)
				if !seen[candidate] {
					name = candidate
					break
				}
			}
		}
		seen[name] = true
		out[i] = name
	}
	return out
}
