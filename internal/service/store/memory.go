package store

import (
	"sync"

	"seatboard/internal/model"
)

// MemoryStore 内存数据存储：一次会话内的分配表与当前情景
// 核心计算保持纯函数，会话状态统一收在这里，不使用包级全局变量
type MemoryStore struct {
	current  *model.Table
	original *model.Table
	scenario model.Scenario
	mu       sync.RWMutex
}

// NewMemoryStore 创建内存存储，初始为内置默认数据
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		current:  model.DefaultTable(),
		original: model.DefaultTable(),
		scenario: model.ScenarioGood,
	}
}

// Table 获取当前分配表（深拷贝，调用方可随意修改）
func (s *MemoryStore) Table() *model.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Replace 整表替换（上传成功后调用），同时更新重置快照
func (s *MemoryStore) Replace(t *model.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = t.Clone()
	s.original = t.Clone()
}

// SetCurrent 写入联动计算后的新表（不影响重置快照）
func (s *MemoryStore) SetCurrent(t *model.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = t.Clone()
}

// Reset 重置为快照数据
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.original.Clone()
}

// Scenario 获取当前情景
func (s *MemoryStore) Scenario() model.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scenario
}

// SetScenario 切换当前情景
func (s *MemoryStore) SetScenario(sc model.Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenario = sc
}

// Count 获取政党行数
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Len()
}
