package flatfile

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
)

// rw-r--r--（擁有者讀寫，其他人唯讀）
const fileModeData fs.FileMode = 0644

// Store 是純文字帳戶存放區，一行一個帳戶，欄位以管線符號分隔：
//
//	number|password|kind|balance|phoneCredit|history(以 ; 串接，可省略)
//
// 每次 Save 重寫整個檔案：先寫入 .tmp、Sync 落地，再 rename 取代正式檔，
// 避免寫到一半中斷時留下壞檔。
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load 讀取所有帳戶；檔案不存在視為空 registry（首次啟動），空白行略過
func (s *Store) Load() (map[string]*domain.Account, error) {
	accounts := make(map[string]*domain.Account)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return accounts, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		acc, err := parseRecord(line)
		if err != nil {
			return nil, err
		}
		accounts[acc.Number] = acc
	}
	return accounts, nil
}

// Save 以原子方式重寫整個資料檔
func (s *Store) Save(accounts map[string]*domain.Account) error {
	var b strings.Builder
	for _, acc := range accounts {
		fmt.Fprintf(&b, "%s|%s|%s|%s|%s|%s\n",
			acc.Number, acc.Password, acc.Kind,
			acc.Balance, acc.PhoneCredit,
			strings.Join(acc.History, ";"))
	}

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileModeData)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return err
	}
	// rename 之前強制刷入硬碟
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func parseRecord(line string) (*domain.Account, error) {
	parts := strings.SplitN(line, "|", 6)
	if len(parts) < 5 {
		return nil, fmt.Errorf("malformed record: %q", line)
	}

	balance, err := decimal.NewFromString(parts[3])
	if err != nil {
		return nil, fmt.Errorf("account %s: bad balance %q: %w", parts[0], parts[3], err)
	}
	phone, err := decimal.NewFromString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("account %s: bad phone credit %q: %w", parts[0], parts[4], err)
	}

	// 只有完全等於 "Personal" 才算個人戶；舊資料可能含非標準字串，一律視為 Business
	kind := domain.KindBusiness
	switch parts[2] {
	case string(domain.KindPersonal):
		kind = domain.KindPersonal
	case string(domain.KindBusiness):
	default:
		log.Printf("account %s: unknown kind %q, treating as Business", parts[0], parts[2])
	}

	acc := domain.NewAccount(parts[0], parts[1], kind, balance)
	acc.PhoneCredit = phone
	if len(parts) > 5 && parts[5] != "" {
		acc.History = strings.Split(parts[5], ";")
	}
	return acc, nil
}

var _ usecase.Registry = (*Store)(nil)
