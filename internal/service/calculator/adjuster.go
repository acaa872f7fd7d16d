package calculator

import (
	"seatboard/internal/model"
)

// Adjuster 席位联动调整器：把"编辑一个单元格"转换为整表的零和再平衡
// 三条规则按固定顺序作用于不可变表值，每步输出作为下一步输入，互不混叠
type Adjuster struct {
	whatIfMin          int
	whatIfMax          int
	whatIfPreviewLimit int
}

// NewAdjuster 创建调整器
func NewAdjuster(whatIfMin, whatIfMax, whatIfPreviewLimit int) *Adjuster {
	return &Adjuster{
		whatIfMin:          whatIfMin,
		whatIfMax:          whatIfMax,
		whatIfPreviewLimit: whatIfPreviewLimit,
	}
}

// Apply 对 (情景, 行号, 新值) 的一次编辑做完整联动计算，返回再平衡后的新表
// 所有输入都被收敛而不是拒绝：负值取 0，Party 1 截断到 [0, 234]
func (a *Adjuster) Apply(t *model.Table, sc model.Scenario, idx, newValue int) *model.Table {
	if t == nil || t.Len() == 0 || idx < 0 || idx >= t.Len() {
		return t
	}

	newValue = ClampCell(newValue)
	oldValue := t.Value(idx, sc)

	out := applyZeroSum(t, sc, idx, oldValue, newValue)
	out = applyRatioPropagation(out, sc, idx, oldValue, newValue)
	out = correctTotals(out)
	return out
}

// applyZeroSum 规则一：同情景零和传导
// Party 1 被编辑时盟友按占比反向分摊；盟友被编辑时 Party 1 反向吸收差额
func applyZeroSum(t *model.Table, sc model.Scenario, idx, oldValue, newValue int) *model.Table {
	out := t.Clone()

	if idx == 0 {
		delta := newValue - oldValue
		allyTotal := out.AllyTotal(sc)

		if allyTotal > 0 && delta != 0 {
			for i := 1; i < out.Len(); i++ {
				proportion := float64(out.Value(i, sc)) / float64(allyTotal)
				// 向零截断，不做四舍五入
				adjustment := int(float64(delta) * proportion)
				v := out.Value(i, sc) - adjustment
				if v < 0 {
					v = 0
				}
				out.SetValue(i, sc, v)
			}
		}

		// Party 1 直接写入新值，此处不截断，交由规则三兜底
		out.SetValue(0, sc, newValue)
		return out
	}

	out.SetValue(idx, sc, newValue)
	p1 := out.Value(0, sc) - (newValue - oldValue)
	if p1 < 0 {
		p1 = 0
	}
	out.SetValue(0, sc, p1)
	return out
}

// applyRatioPropagation 规则二：跨情景比例传导
// 只在编辑 Good 情景时触发，对被编辑行在另外两个情景下按 new/old 等比缩放
// 这一不对称性是既定语义，不要推广到三个情景
func applyRatioPropagation(t *model.Table, sc model.Scenario, idx, oldValue, newValue int) *model.Table {
	if sc != model.ScenarioGood {
		return t
	}

	out := t.Clone()

	ratio := 1.0
	if oldValue > 0 {
		ratio = float64(newValue) / float64(oldValue)
	}

	for _, other := range model.Scenarios() {
		if other == sc {
			continue
		}
		scaled := int(float64(out.Value(idx, other)) * ratio)
		out.SetValue(idx, other, scaled)
	}
	return out
}

// correctTotals 规则三：总数校正
// 对全部三个情景独立检查列总和，差额加到 Party 1 并截断到 [0, 234]
// 该步可能覆盖规则一对被编辑情景 Party 1 的直接赋值
func correctTotals(t *model.Table) *model.Table {
	out := t.Clone()

	for _, sc := range model.Scenarios() {
		total := out.ScenarioTotal(sc)
		if total == model.TotalSeats {
			continue
		}
		p1 := out.Value(0, sc) + (model.TotalSeats - total)
		if p1 < 0 {
			p1 = 0
		}
		if p1 > model.TotalSeats {
			p1 = model.TotalSeats
		}
		out.SetValue(0, sc, p1)
	}
	return out
}

// Preview 模拟调整：预览 Party 1 席位变动对盟友的影响，不修改任何状态
// 只展示前若干个（默认 5 个）有席位的盟友，分摊公式与规则一相同
func (a *Adjuster) Preview(t *model.Table, sc model.Scenario, newParty1 int) *model.WhatIfPreview {
	if newParty1 < a.whatIfMin {
		newParty1 = a.whatIfMin
	}
	if newParty1 > a.whatIfMax {
		newParty1 = a.whatIfMax
	}

	current := t.Value(0, sc)
	difference := newParty1 - current
	allyTotal := t.AllyTotal(sc)

	preview := &model.WhatIfPreview{
		Scenario:   sc,
		Party1:     newParty1,
		Current:    current,
		Difference: difference,
		AllyTotal:  allyTotal,
		Items:      []model.WhatIfItem{},
	}

	if difference == 0 || allyTotal <= 0 {
		return preview
	}

	// 只扫描前 whatIfPreviewLimit 个盟友行，其中零席位的不展示
	for i := 1; i < t.Len() && i <= a.whatIfPreviewLimit; i++ {
		seats := t.Value(i, sc)
		if seats <= 0 {
			continue
		}
		proportion := float64(seats) / float64(allyTotal)
		loss := int(float64(difference) * proportion)
		projected := seats - loss
		if projected < 0 {
			projected = 0
		}
		preview.Items = append(preview.Items, model.WhatIfItem{
			Party:     t.Rows[i].Party,
			Current:   seats,
			Projected: projected,
		})
	}
	return preview
}
