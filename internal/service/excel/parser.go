package excel

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"seatboard/internal/model"
	"seatboard/internal/service/calculator"
)

// Parser 席位数据解析器：支持 xlsx 与 csv 两种上传格式
type Parser struct {
	fileID string
}

// NewParser 创建解析器
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// GetFileID 获取文件ID
func (p *Parser) GetFileID() string {
	return p.fileID
}

// ParseXLSX 解析 Excel 工作簿的第一个工作表
func (p *Parser) ParseXLSX(reader io.Reader) (*model.Table, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("empty workbook")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return p.parseRows(rows)
}

// ParseCSV 解析 CSV 文件
func (p *Parser) ParseCSV(reader io.Reader) (*model.Table, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return p.parseRows(rows)
}

// parseRows 通用的行解析：校验表头、逐行取值、把 Party 1 提到第 0 行
// 缺少必需列直接报错，不做部分应用
func (p *Parser) parseRows(rows [][]string) (*model.Table, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty sheet")
	}

	header := rows[0]
	if err := calculator.ValidateColumns(header); err != nil {
		return nil, err
	}

	// 构建列名到索引的映射
	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	out := make([]model.Row, 0, len(rows)-1)
	for _, row := range rows[1:] {
		party := getCell(row, colIndex["Party"])
		if party == "" {
			// 跳过空白行
			continue
		}
		out = append(out, model.Row{
			Party:   party,
			Good:    parseSeats(getCell(row, colIndex["Good"])),
			Neutral: parseSeats(getCell(row, colIndex["Neutral"])),
			Worst:   parseSeats(getCell(row, colIndex["Worst"])),
		})
	}

	if len(out) == 0 {
		return nil, errors.New("no data rows")
	}

	return calculator.NormalizeParty1First(model.NewTable(out)), nil
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseSeats 解析席位数：去掉千分位分隔符，小数向零截断，无法解析时取 0
func parseSeats(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}
