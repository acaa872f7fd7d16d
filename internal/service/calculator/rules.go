package calculator

import (
	"fmt"
	"strings"

	"seatboard/internal/model"
)

// RequiredColumns 上传文件必须包含的列
var RequiredColumns = []string{"Party", "Good", "Neutral", "Worst"}

// ValidateColumns 校验上传文件的表头，缺少必需列时返回错误
func ValidateColumns(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}

	missing := make([]string, 0, len(RequiredColumns))
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("缺少必需列: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ClampCell 把单元格输入收敛到 [0, 234]，与界面上的输入范围一致
func ClampCell(v int) int {
	if v < 0 {
		return 0
	}
	if v > model.TotalSeats {
		return model.TotalSeats
	}
	return v
}

// NormalizeParty1First 确保 Party 1 位于第 0 行，其余行保持相对顺序
// 表中没有 Party 1 时原样返回，不报错
func NormalizeParty1First(t *model.Table) *model.Table {
	if t.Len() == 0 || t.Rows[0].Party == model.Party1Name {
		return t
	}

	idx := -1
	for i := range t.Rows {
		if t.Rows[i].Party == model.Party1Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t
	}

	rows := make([]model.Row, 0, t.Len())
	rows = append(rows, t.Rows[idx])
	for i := range t.Rows {
		if i != idx {
			rows = append(rows, t.Rows[i])
		}
	}
	return model.NewTable(rows)
}
