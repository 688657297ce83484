package memory

import (
	"sync"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
)

// Store 是 Registry 的 in-memory 實作，供測試與暫存模式使用
// Load/Save 都做深拷貝，呼叫端與內部狀態互不干擾
type Store struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	saves    int
}

func NewStore() *Store {
	return &Store{accounts: make(map[string]*domain.Account)}
}

// Load 回傳目前快照的深拷貝
func (s *Store) Load() (map[string]*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.accounts), nil
}

// Save 以深拷貝取代目前快照
func (s *Store) Save(accounts map[string]*domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = clone(accounts)
	s.saves++
	return nil
}

// Saves 回傳 Save 被呼叫的次數（測試用）
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func clone(in map[string]*domain.Account) map[string]*domain.Account {
	out := make(map[string]*domain.Account, len(in))
	for num, acc := range in {
		cp := *acc
		cp.History = append([]string(nil), acc.History...)
		out[num] = &cp
	}
	return out
}

var _ usecase.Registry = (*Store)(nil)
