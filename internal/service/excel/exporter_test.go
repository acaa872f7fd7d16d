package excel

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"seatboard/internal/model"
	"seatboard/internal/service/calculator"
)

// TestExportXLSX 导出的工作簿包含 Seat_Allocation 与 Summary 两个工作表
func TestExportXLSX(t *testing.T) {
	tbl := model.DefaultTable()
	summaries := calculator.NewEngine().SummarizeAll(tbl)

	f, err := NewExporter().ExportXLSX(tbl, summaries)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer out.Close()

	sheets := out.GetSheetList()
	if len(sheets) != 2 || sheets[0] != SheetAllocation || sheets[1] != SheetSummary {
		t.Fatalf("sheets = %v, want [%s %s]", sheets, SheetAllocation, SheetSummary)
	}

	// 分配表：表头 + 22 行数据
	rows, err := out.GetRows(SheetAllocation)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != tbl.Len()+1 {
		t.Fatalf("行数 = %d, want %d", len(rows), tbl.Len()+1)
	}
	if got := rows[1][0]; got != model.Party1Name {
		t.Errorf("首行政党 = %s, want Party 1", got)
	}
	if got := rows[1][1]; got != "168" {
		t.Errorf("Party 1 Good = %s, want 168", got)
	}

	// 汇总表：表头 + 三个情景
	summaryRows, err := out.GetRows(SheetSummary)
	if err != nil {
		t.Fatalf("GetRows summary: %v", err)
	}
	if len(summaryRows) != 4 {
		t.Fatalf("汇总行数 = %d, want 4", len(summaryRows))
	}
	if got := summaryRows[1][0]; got != "Good" {
		t.Errorf("汇总首行情景 = %s, want Good", got)
	}
	if got := summaryRows[1][2]; got != "71.8%" {
		t.Errorf("Good Party 1 %% = %s, want 71.8%%", got)
	}
	if got := summaryRows[2][5]; got != "234/234" {
		t.Errorf("Neutral Allocation = %s, want 234/234", got)
	}
}

// TestExportCSV 导出 CSV：全部列、无索引列
func TestExportCSV(t *testing.T) {
	tbl := model.DefaultTable()

	var buf bytes.Buffer
	if err := NewExporter().ExportCSV(tbl, &buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != tbl.Len()+1 {
		t.Fatalf("行数 = %d, want %d", len(lines), tbl.Len()+1)
	}
	if lines[0] != "Party,Good,Neutral,Worst" {
		t.Errorf("表头 = %s", lines[0])
	}
	if lines[1] != "Party 1,168,163,158" {
		t.Errorf("首行 = %s", lines[1])
	}
}

// TestExportCSVRoundTrip 导出再解析应得到同一张表
func TestExportCSVRoundTrip(t *testing.T) {
	tbl := model.DefaultTable()

	var buf bytes.Buffer
	if err := NewExporter().ExportCSV(tbl, &buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	parsed, err := NewParser().ParseCSV(&buf)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	if parsed.Len() != tbl.Len() {
		t.Fatalf("Len = %d, want %d", parsed.Len(), tbl.Len())
	}
	for i := 0; i < tbl.Len(); i++ {
		for _, sc := range model.Scenarios() {
			if parsed.Value(i, sc) != tbl.Value(i, sc) {
				t.Errorf("行 %d %s = %d, want %d", i, sc, parsed.Value(i, sc), tbl.Value(i, sc))
			}
		}
	}
}

// TestFileNames 文件名带时间戳：xlsx 到分钟，csv 到日期
func TestFileNames(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 5, 0, 0, time.UTC)

	if got := XLSXFileName(now); got != "seat_allocation_20260829_1405.xlsx" {
		t.Errorf("XLSXFileName = %s", got)
	}
	if got := CSVFileName(now); got != "seat_allocation_20260829.csv" {
		t.Errorf("CSVFileName = %s", got)
	}
}
