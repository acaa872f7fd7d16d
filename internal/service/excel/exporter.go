package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"seatboard/internal/model"
)

// SheetAllocation 分配表工作表名
const SheetAllocation = "Seat_Allocation"

// SheetSummary 汇总工作表名
const SheetSummary = "Summary"

// Exporter 席位数据导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportXLSX 导出分配表为 Excel：Seat_Allocation 与 Summary 两个工作表
func (e *Exporter) ExportXLSX(t *model.Table, summaries []model.ScenarioSummary) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SheetAllocation)

	headers := []string{"Party", "Good", "Neutral", "Worst"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetAllocation, cell, h)
	}

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(SheetAllocation, 1, 1, headerStyle)

	for i := range t.Rows {
		row := i + 2
		f.SetCellValue(SheetAllocation, fmt.Sprintf("A%d", row), t.Rows[i].Party)
		f.SetCellValue(SheetAllocation, fmt.Sprintf("B%d", row), t.Rows[i].Good)
		f.SetCellValue(SheetAllocation, fmt.Sprintf("C%d", row), t.Rows[i].Neutral)
		f.SetCellValue(SheetAllocation, fmt.Sprintf("D%d", row), t.Rows[i].Worst)
	}

	// 汇总表：每个情景一行
	f.NewSheet(SheetSummary)
	summaryHeaders := []string{"Scenario", "Party 1 Seats", "Party 1 %", "Allies Total", "Zero Seat Allies", "Allocation"}
	for i, h := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetSummary, cell, h)
	}
	f.SetRowStyle(SheetSummary, 1, 1, headerStyle)

	for i, s := range summaries {
		row := i + 2
		f.SetCellValue(SheetSummary, fmt.Sprintf("A%d", row), string(s.Scenario))
		f.SetCellValue(SheetSummary, fmt.Sprintf("B%d", row), s.Party1Seats)
		f.SetCellValue(SheetSummary, fmt.Sprintf("C%d", row), s.Party1Percent)
		f.SetCellValue(SheetSummary, fmt.Sprintf("D%d", row), s.AllyTotal)
		f.SetCellValue(SheetSummary, fmt.Sprintf("E%d", row), s.ZeroSeatAllies)
		f.SetCellValue(SheetSummary, fmt.Sprintf("F%d", row), s.Allocation)
	}

	// 设置列宽
	f.SetColWidth(SheetAllocation, "A", "A", 18)
	f.SetColWidth(SheetAllocation, "B", "D", 10)
	f.SetColWidth(SheetSummary, "A", "F", 16)

	return f, nil
}

// ExportCSV 导出分配表为 CSV：全部列，无索引列
func (e *Exporter) ExportCSV(t *model.Table, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Party", "Good", "Neutral", "Worst"}); err != nil {
		return err
	}
	for i := range t.Rows {
		record := []string{
			t.Rows[i].Party,
			strconv.Itoa(t.Rows[i].Good),
			strconv.Itoa(t.Rows[i].Neutral),
			strconv.Itoa(t.Rows[i].Worst),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// XLSXFileName 生成带时间戳（到分钟）的 Excel 文件名
func XLSXFileName(now time.Time) string {
	return fmt.Sprintf("seat_allocation_%s.xlsx", now.Format("20060102_1504"))
}

// CSVFileName 生成带日期的 CSV 文件名
func CSVFileName(now time.Time) string {
	return fmt.Sprintf("seat_allocation_%s.csv", now.Format("20060102"))
}
