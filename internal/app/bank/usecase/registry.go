package usecase

import (
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
)

// Registry 是帳戶儲存層的介面
// 持久化策略為「整份重寫」：每次變動成功前，完整 registry 都會先寫回儲存層
type Registry interface {
	// Load 載入所有帳戶
	Load() (map[string]*domain.Account, error)
	// Save 將完整 registry 寫回儲存層
	Save(accounts map[string]*domain.Account) error
}
