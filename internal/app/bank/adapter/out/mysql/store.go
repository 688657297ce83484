package mysql

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
	"github.com/JoeShih716/go-bank-ledger/pkg/mysql"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	Number      string          `gorm:"primaryKey;size:16"`
	Password    string          `gorm:"size:64"`
	Kind        string          `gorm:"size:16"`
	Balance     decimal.Decimal `gorm:"type:varchar(64)"`
	PhoneCredit decimal.Decimal `gorm:"type:varchar(64)"`
	History     string          `gorm:"type:text"` // 以 ; 串接，與純文字檔同格式
	UpdatedAt   int64           `gorm:"autoUpdateTime:milli"`
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// MySQLRegistry 是 Registry 的 MySQL 實作
type MySQLRegistry struct {
	client *mysql.Client
}

// NewMySQLRegistry 建立 MySQL 版帳戶存放區，啟動時自動建表
func NewMySQLRegistry(client *mysql.Client) (*MySQLRegistry, error) {
	if err := client.DB().AutoMigrate(&sqlAccount{}); err != nil {
		return nil, fmt.Errorf("migrate accounts table: %w", err)
	}
	return &MySQLRegistry{client: client}, nil
}

// Load 載入所有帳戶
func (r *MySQLRegistry) Load() (map[string]*domain.Account, error) {
	var rows []sqlAccount
	if err := r.client.DB().Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	accounts := make(map[string]*domain.Account, len(rows))
	for i := range rows {
		acc := toDomain(&rows[i])
		accounts[acc.Number] = acc
	}
	return accounts, nil
}

// Save 對齊「整份重寫」語義：同一個交易內清空資料表後批次寫回
func (r *MySQLRegistry) Save(accounts map[string]*domain.Account) error {
	return r.client.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&sqlAccount{}).Error; err != nil {
			return err
		}
		if len(accounts) == 0 {
			return nil
		}
		rows := make([]sqlAccount, 0, len(accounts))
		for _, acc := range accounts {
			rows = append(rows, sqlAccount{
				Number:      acc.Number,
				Password:    acc.Password,
				Kind:        string(acc.Kind),
				Balance:     acc.Balance,
				PhoneCredit: acc.PhoneCredit,
				History:     strings.Join(acc.History, ";"),
			})
		}
		return tx.Create(&rows).Error
	})
}

func toDomain(row *sqlAccount) *domain.Account {
	kind := domain.KindBusiness
	if row.Kind == string(domain.KindPersonal) {
		kind = domain.KindPersonal
	}
	acc := domain.NewAccount(row.Number, row.Password, kind, row.Balance)
	acc.PhoneCredit = row.PhoneCredit
	if row.History != "" {
		acc.History = strings.Split(row.History, ";")
	}
	return acc
}

var _ usecase.Registry = (*MySQLRegistry)(nil)
