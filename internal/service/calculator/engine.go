package calculator

import (
	"fmt"

	"seatboard/internal/model"
)

// Engine 汇总统计引擎：由分配表派生各情景的展示指标
type Engine struct{}

// NewEngine 创建统计引擎
func NewEngine() *Engine {
	return &Engine{}
}

// Summarize 计算单个情景的汇总统计，纯函数，不修改表
func (e *Engine) Summarize(t *model.Table, sc model.Scenario) model.ScenarioSummary {
	party1 := t.Value(0, sc)
	allyTotal := t.AllyTotal(sc)
	total := t.ScenarioTotal(sc)

	zeroAllies := 0
	activeAllies := 0
	for i := 1; i < t.Len(); i++ {
		if t.Value(i, sc) == 0 {
			zeroAllies++
		} else {
			activeAllies++
		}
	}

	return model.ScenarioSummary{
		Scenario:       sc,
		Party1Seats:    party1,
		Party1Percent:  fmt.Sprintf("%.1f%%", float64(party1)/float64(model.TotalSeats)*100),
		AllyTotal:      allyTotal,
		ZeroSeatAllies: zeroAllies,
		ActiveAllies:   activeAllies,
		Allocation:     fmt.Sprintf("%d/%d", total, model.TotalSeats),
		Balanced:       total == model.TotalSeats,
	}
}

// SummarizeAll 按固定顺序计算全部三个情景的汇总统计
func (e *Engine) SummarizeAll(t *model.Table) []model.ScenarioSummary {
	scenarios := model.Scenarios()
	result := make([]model.ScenarioSummary, 0, len(scenarios))
	for _, sc := range scenarios {
		result = append(result, e.Summarize(t, sc))
	}
	return result
}
