package store

import (
	"testing"

	"seatboard/internal/model"
)

// TestTableReturnsCopy 取出的表是深拷贝，外部修改不影响存储
func TestTableReturnsCopy(t *testing.T) {
	s := NewMemoryStore()

	tbl := s.Table()
	tbl.SetValue(0, model.ScenarioGood, 1)

	if got := s.Table().Value(0, model.ScenarioGood); got != 168 {
		t.Errorf("存储被外部修改: Party 1 Good = %d, want 168", got)
	}
}

// TestSetCurrentAndReset SetCurrent 不动快照，Reset 恢复快照
func TestSetCurrentAndReset(t *testing.T) {
	s := NewMemoryStore()

	tbl := s.Table()
	tbl.SetValue(0, model.ScenarioGood, 150)
	s.SetCurrent(tbl)

	if got := s.Table().Value(0, model.ScenarioGood); got != 150 {
		t.Fatalf("SetCurrent 未生效: %d", got)
	}

	s.Reset()
	if got := s.Table().Value(0, model.ScenarioGood); got != 168 {
		t.Errorf("Reset 后 Party 1 Good = %d, want 168", got)
	}
}

// TestReplaceUpdatesSnapshot Replace 同时更新重置快照
func TestReplaceUpdatesSnapshot(t *testing.T) {
	s := NewMemoryStore()

	rows := []model.Row{
		{Party: model.Party1Name, Good: 200, Neutral: 200, Worst: 200},
		{Party: "Party 2", Good: 34, Neutral: 34, Worst: 34},
	}
	s.Replace(model.NewTable(rows))

	if got := s.Count(); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}

	// 修改后重置应回到上传的数据，而不是内置默认数据
	tbl := s.Table()
	tbl.SetValue(0, model.ScenarioGood, 100)
	s.SetCurrent(tbl)
	s.Reset()

	if got := s.Table().Value(0, model.ScenarioGood); got != 200 {
		t.Errorf("Reset 后 Party 1 Good = %d, want 200", got)
	}
}

// TestScenarioSelection 情景切换
func TestScenarioSelection(t *testing.T) {
	s := NewMemoryStore()

	if got := s.Scenario(); got != model.ScenarioGood {
		t.Errorf("默认情景 = %s, want Good", got)
	}

	s.SetScenario(model.ScenarioWorst)
	if got := s.Scenario(); got != model.ScenarioWorst {
		t.Errorf("切换后情景 = %s, want Worst", got)
	}
}

// TestDefaultBalanced 初始数据三列都平衡
func TestDefaultBalanced(t *testing.T) {
	s := NewMemoryStore()
	tbl := s.Table()

	for _, sc := range model.Scenarios() {
		if total := tbl.ScenarioTotal(sc); total != model.TotalSeats {
			t.Errorf("%s 列总和 = %d, want %d", sc, total, model.TotalSeats)
		}
	}
}
