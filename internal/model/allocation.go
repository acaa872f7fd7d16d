package model

import "fmt"

// TotalSeats 席位总数：每个情景列的分配之和必须恒等于该值
const TotalSeats = 234

// Party1Name 第一大党的固定行名，始终位于表格第 0 行
const Party1Name = "Party 1"

// Scenario 情景类型
type Scenario string

const (
	ScenarioGood    Scenario = "Good"    // 乐观情景
	ScenarioNeutral Scenario = "Neutral" // 中性情景
	ScenarioWorst   Scenario = "Worst"   // 悲观情景
)

// Scenarios 返回固定顺序的全部情景
func Scenarios() []Scenario {
	return []Scenario{ScenarioGood, ScenarioNeutral, ScenarioWorst}
}

// IsValidScenario 判断情景是否合法
func IsValidScenario(s Scenario) bool {
	switch s {
	case ScenarioGood, ScenarioNeutral, ScenarioWorst:
		return true
	}
	return false
}

// Row 席位分配表中的一行：一个政党在三个情景下的席位数
type Row struct {
	Party   string `json:"party"`
	Good    int    `json:"good"`
	Neutral int    `json:"neutral"`
	Worst   int    `json:"worst"`
}

// Value 读取指定情景下的席位数
func (r *Row) Value(sc Scenario) int {
	switch sc {
	case ScenarioGood:
		return r.Good
	case ScenarioNeutral:
		return r.Neutral
	case ScenarioWorst:
		return r.Worst
	}
	return 0
}

// SetValue 写入指定情景下的席位数
func (r *Row) SetValue(sc Scenario, v int) {
	switch sc {
	case ScenarioGood:
		r.Good = v
	case ScenarioNeutral:
		r.Neutral = v
	case ScenarioWorst:
		r.Worst = v
	}
}

// Table 席位分配表
// 第 0 行固定为 Party 1（结构上特殊：所有补差都落到它头上），其余行为盟友
type Table struct {
	Rows []Row `json:"rows"`
}

// NewTable 由行数据创建分配表
func NewTable(rows []Row) *Table {
	t := &Table{Rows: make([]Row, len(rows))}
	copy(t.Rows, rows)
	return t
}

// Clone 深拷贝整张表
func (t *Table) Clone() *Table {
	return NewTable(t.Rows)
}

// Len 行数
func (t *Table) Len() int {
	return len(t.Rows)
}

// Value 读取单元格
func (t *Table) Value(idx int, sc Scenario) int {
	if idx < 0 || idx >= len(t.Rows) {
		return 0
	}
	return t.Rows[idx].Value(sc)
}

// SetValue 写入单元格
func (t *Table) SetValue(idx int, sc Scenario, v int) {
	if idx < 0 || idx >= len(t.Rows) {
		return
	}
	t.Rows[idx].SetValue(sc, v)
}

// ScenarioTotal 某情景列的席位总和
func (t *Table) ScenarioTotal(sc Scenario) int {
	sum := 0
	for i := range t.Rows {
		sum += t.Rows[i].Value(sc)
	}
	return sum
}

// AllyTotal 某情景下盟友（第 1..N-1 行）的席位总和
func (t *Table) AllyTotal(sc Scenario) int {
	sum := 0
	for i := 1; i < len(t.Rows); i++ {
		sum += t.Rows[i].Value(sc)
	}
	return sum
}

// DefaultTable 内置的 22 行默认数据（Party 1 加 21 个盟友），各情景列之和均为 234
func DefaultTable() *Table {
	good := []int{168, 2, 1, 1, 1, 0, 1, 4, 22, 6, 4, 4, 2, 1, 1, 1, 1, 1, 1, 5, 6, 1}
	neutral := []int{163, 2, 1, 1, 1, 0, 1, 4, 24, 7, 5, 5, 2, 1, 1, 1, 1, 1, 1, 5, 6, 1}
	worst := []int{158, 2, 2, 1, 1, 0, 1, 4, 25, 8, 5, 5, 2, 1, 1, 1, 1, 1, 1, 6, 7, 1}

	rows := make([]Row, len(good))
	for i := range good {
		rows[i] = Row{
			Party:   partyName(i),
			Good:    good[i],
			Neutral: neutral[i],
			Worst:   worst[i],
		}
	}
	return &Table{Rows: rows}
}

func partyName(i int) string {
	return fmt.Sprintf("Party %d", i+1)
}
