package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"sync"
	"time"
)

// exportTicket 一次导出对应一张票据：临时文件路径、下载文件名、过期时间
type exportTicket struct {
	path     string
	name     string
	deadline time.Time
}

// exportDownloadStore 导出下载票据缓存
// 票据在 TTL 内可重复下载，过期后连同临时文件一起清理
type exportDownloadStore struct {
	mu      sync.Mutex
	tickets map[string]exportTicket
}

func newExportDownloadStore() *exportDownloadStore {
	return &exportDownloadStore{tickets: make(map[string]exportTicket)}
}

// issue 登记一个导出文件并返回下载令牌
func (s *exportDownloadStore) issue(path, name string, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.sweepLocked(now)

	token := mintToken()
	s.tickets[token] = exportTicket{path: path, name: name, deadline: now.Add(ttl)}
	return token
}

// redeem 按令牌取回票据；未登记或已过期返回 false
func (s *exportDownloadStore) redeem(token string) (exportTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.sweepLocked(now)

	t, ok := s.tickets[token]
	if !ok || now.After(t.deadline) {
		return exportTicket{}, false
	}
	return t, true
}

// sweepLocked 清理过期票据并删除对应的临时文件
func (s *exportDownloadStore) sweepLocked(now time.Time) {
	for token, t := range s.tickets {
		if now.After(t.deadline) {
			_ = os.Remove(t.path)
			delete(s.tickets, token)
		}
	}
}

func mintToken() string {
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
