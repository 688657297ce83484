package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountKind 帳戶類型
// 僅為資訊欄位，不影響任何交易行為
type AccountKind string

const (
	KindPersonal AccountKind = "Personal"
	KindBusiness AccountKind = "Business"
)

// ParseAccountKind 驗證帳戶類型字串（建立帳戶時使用，嚴格比對）
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(s) {
	case KindPersonal, KindBusiness:
		return AccountKind(s), nil
	default:
		return "", ErrInvalidAccountKind
	}
}

// Account 帳戶實體
// Balance 與 PhoneCredit 不可為負；History 為 append-only，順序有意義。
// 所有變更都必須透過下面的方法，不做任何 I/O，純記憶體內的狀態轉移。
type Account struct {
	Number      string
	Password    string
	Kind        AccountKind
	Balance     decimal.Decimal
	PhoneCredit decimal.Decimal
	History     []string
}

// NewAccount 以指定餘額建立帳戶（由儲存層還原時會帶入既有餘額）
func NewAccount(number, password string, kind AccountKind, balance decimal.Decimal) *Account {
	return &Account{
		Number:      number,
		Password:    password,
		Kind:        kind,
		Balance:     balance,
		PhoneCredit: decimal.Zero,
	}
}

// Deposit 存款
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	a.History = append(a.History, fmt.Sprintf("Added %s", amount))
	return nil
}

// Withdraw 提款
// 先檢核再扣款，任一檢核失敗時帳戶狀態不變
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.History = append(a.History, fmt.Sprintf("Took %s", amount))
	return nil
}

// TransferTo 轉帳到另一個帳戶
// 提款失敗時雙方狀態皆不變；提款成功後入帳必定成功（金額已驗證為正），
// 雙方都會記下對方帳號的紀錄。
func (a *Account) TransferTo(amount decimal.Decimal, other *Account) error {
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	_ = other.Deposit(amount)
	a.History = append(a.History, fmt.Sprintf("Sent %s to %s", amount, other.Number))
	other.History = append(other.History, fmt.Sprintf("Got %s from %s", amount, a.Number))
	return nil
}

// TopUpPhone 話費儲值：把金額從 Balance 移到 PhoneCredit
// 檢核條件與 Withdraw 相同，成功時只記一筆合併紀錄
func (a *Account) TopUpPhone(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.PhoneCredit = a.PhoneCredit.Add(amount)
	a.History = append(a.History, fmt.Sprintf("Phone +%s", amount))
	return nil
}
