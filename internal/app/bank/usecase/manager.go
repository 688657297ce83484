package usecase

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
)

// BankManager 是核心業務邏輯層：管理帳戶 registry、認證與持久化
// mu 序列化「讀取 → 變更 → 寫回」整段流程，保證變更與落地屬於同一個臨界區
type BankManager struct {
	mu       sync.Mutex
	store    Registry
	accounts map[string]*domain.Account
}

// NewBankManager 建立 BankManager，啟動時由儲存層載入 registry
func NewBankManager(store Registry) (*BankManager, error) {
	accounts, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if accounts == nil {
		accounts = make(map[string]*domain.Account)
	}
	return &BankManager{
		store:    store,
		accounts: accounts,
	}, nil
}

// MakeAccount 建立新帳戶，回傳 (帳號, 密碼)
func (m *BankManager) MakeAccount(kind string) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.makeAccount(kind)
}

// Login 認證帳號密碼，成功時回傳帳戶
func (m *BankManager) Login(number, password string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.login(number, password)
}

// RemoveAccount 刪除帳戶並寫回
// 呼叫端必須先完成認證（dispatch 的刪除分支會先 login）
func (m *BankManager) RemoveAccount(number string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeAccount(number)
}

// 以下為不帶鎖的實作，僅供已持有 mu 的呼叫端使用

func (m *BankManager) makeAccount(kind string) (string, string, error) {
	k, err := domain.ParseAccountKind(kind)
	if err != nil {
		return "", "", err
	}

	num := m.newNumber()
	pwd := newPassword()

	m.accounts[num] = domain.NewAccount(num, pwd, k, decimal.Zero)
	if err := m.save(); err != nil {
		return "", "", err
	}
	return num, pwd, nil
}

func (m *BankManager) login(number, password string) (*domain.Account, error) {
	acc, ok := m.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if acc.Password != password {
		return nil, domain.ErrWrongPassword
	}
	return acc, nil
}

func (m *BankManager) removeAccount(number string) error {
	if _, ok := m.accounts[number]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(m.accounts, number)
	return m.save()
}

func (m *BankManager) save() error {
	if err := m.store.Save(m.accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}

// newNumber 產生五位數帳號，與現有帳號碰撞時重抽
func (m *BankManager) newNumber() string {
	for {
		num := strconv.Itoa(rand.Intn(90000) + 10000)
		if _, exists := m.accounts[num]; !exists {
			return num
		}
	}
}

// newPassword 取 UUID 前八碼作為初始密碼
func newPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
