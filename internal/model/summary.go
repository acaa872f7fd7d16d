package model

// ScenarioSummary 单个情景的汇总统计
type ScenarioSummary struct {
	Scenario       Scenario `json:"scenario"`
	Party1Seats    int      `json:"party1Seats"`
	Party1Percent  string   `json:"party1Percent"`  // 如 "71.8%"
	AllyTotal      int      `json:"allyTotal"`      // 盟友席位合计
	ZeroSeatAllies int      `json:"zeroSeatAllies"` // 零席位盟友数
	ActiveAllies   int      `json:"activeAllies"`   // 有席位盟友数
	Allocation     string   `json:"allocation"`     // 如 "234/234"
	Balanced       bool     `json:"balanced"`       // 列总和是否等于 234
}

// WhatIfItem 模拟调整中单个盟友的席位变化预览
type WhatIfItem struct {
	Party     string `json:"party"`
	Current   int    `json:"current"`
	Projected int    `json:"projected"`
}

// WhatIfPreview 模拟调整预览：不落库，只展示 Party 1 变动对盟友的影响
type WhatIfPreview struct {
	Scenario   Scenario     `json:"scenario"`
	Party1     int          `json:"party1"`     // 模拟后的 Party 1 席位（已按滑杆范围收敛）
	Current    int          `json:"current"`    // 当前 Party 1 席位
	Difference int          `json:"difference"` // 正数表示盟友整体失去的席位
	AllyTotal  int          `json:"allyTotal"`
	Items      []WhatIfItem `json:"items"` // 最多前 5 个有席位的盟友
}
