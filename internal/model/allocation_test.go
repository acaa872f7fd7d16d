package model

import "testing"

// TestDefaultTableBalanced 内置默认数据：22 行，三列总和都是 234
func TestDefaultTableBalanced(t *testing.T) {
	tbl := DefaultTable()

	if tbl.Len() != 22 {
		t.Fatalf("Len = %d, want 22", tbl.Len())
	}
	if tbl.Rows[0].Party != Party1Name {
		t.Errorf("首行 = %s, want Party 1", tbl.Rows[0].Party)
	}
	for _, sc := range Scenarios() {
		if total := tbl.ScenarioTotal(sc); total != TotalSeats {
			t.Errorf("%s 列总和 = %d, want %d", sc, total, TotalSeats)
		}
	}
	if got := tbl.AllyTotal(ScenarioGood); got != 66 {
		t.Errorf("Good 盟友合计 = %d, want 66", got)
	}
}

// TestCloneIndependent 克隆表与原表互不影响
func TestCloneIndependent(t *testing.T) {
	tbl := DefaultTable()
	clone := tbl.Clone()

	clone.SetValue(0, ScenarioGood, 1)

	if got := tbl.Value(0, ScenarioGood); got != 168 {
		t.Errorf("原表被修改: %d", got)
	}
}

// TestValueOutOfRange 越界读取返回 0，越界写入为空操作
func TestValueOutOfRange(t *testing.T) {
	tbl := DefaultTable()

	if got := tbl.Value(99, ScenarioGood); got != 0 {
		t.Errorf("越界读取 = %d, want 0", got)
	}
	tbl.SetValue(99, ScenarioGood, 7) // 不应 panic
}

// TestIsValidScenario 情景合法性
func TestIsValidScenario(t *testing.T) {
	for _, sc := range Scenarios() {
		if !IsValidScenario(sc) {
			t.Errorf("%s 应为合法情景", sc)
		}
	}
	if IsValidScenario("Best") {
		t.Error("Best 不应为合法情景")
	}
	if IsValidScenario("") {
		t.Error("空情景不应合法")
	}
}
