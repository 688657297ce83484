package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
)

// 操作代碼，對應前端選單的固定編號
const (
	ChoiceNewAccount = "1"
	ChoiceLogin      = "2"
	ChoiceDeposit    = "3"
	ChoiceWithdraw   = "4"
	ChoiceTransfer   = "5"
	ChoiceBalance    = "6"
	ChoiceDelete     = "7"
	ChoiceTopUp      = "8"
	ChoiceHistory    = "9"
)

// HandleChoice 是所有前端唯一的進入點：操作代碼 + 位置參數 → 結果訊息或錯誤
//
// 規則：
//   - 需要認證的分支（2–9）一律先認證，錯誤原樣往外傳
//   - 金額只在這個邊界解析一次，壞輸入一律對應 ErrInvalidAmount
//   - 轉帳在動到來源帳戶之前先確認目標帳戶存在
//   - 任何改變餘額的分支都先寫回儲存層才回傳成功
//
// 本層不保存任何跨呼叫狀態，登入會話由前端自行管理。
func (m *BankManager) HandleChoice(choice string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch choice {
	case ChoiceNewAccount:
		if err := needArgs(choice, args, 1); err != nil {
			return "", err
		}
		num, pwd, err := m.makeAccount(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("New %s account:\nNumber: %s\nPassword: %s", args[0], num, pwd), nil

	case ChoiceLogin:
		if err := needArgs(choice, args, 2); err != nil {
			return "", err
		}
		acc, err := m.login(args[0], args[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Welcome %s account %s", acc.Kind, acc.Number), nil

	case ChoiceDeposit:
		if err := needArgs(choice, args, 3); err != nil {
			return "", err
		}
		amount, err := parseAmount(args[2])
		if err != nil {
			return "", err
		}
		acc, err := m.login(args[0], args[1])
		if err != nil {
			return "", err
		}
		if err := acc.Deposit(amount); err != nil {
			return "", err
		}
		if err := m.save(); err != nil {
			return "", err
		}
		return fmt.Sprintf("Added %s. New balance: %s", amount, acc.Balance), nil

	case ChoiceWithdraw:
		if err := needArgs(choice, args, 3); err != nil {
			return "", err
		}
		amount, err := parseAmount(args[2])
		if err != nil {
			return "", err
		}
		acc, err := m.login(args[0], args[1])
		if err != nil {
			return "", err
		}
		if err := acc.Withdraw(amount); err != nil {
			return "", err
		}
		if err := m.save(); err != nil {
			return "", err
		}
		return fmt.Sprintf("Withdrew %s. New balance: %s", amount, acc.Balance), nil

	case ChoiceTransfer:
		if err := needArgs(choice, args, 4); err != nil {
			return "", err
		}
		amount, err := parseAmount(args[3])
		if err != nil {
			return "", err
		}
		from, err := m.login(args[0], args[1])
		if err != nil {
			return "", err
		}
		// 先確認目標帳戶存在，再動來源帳戶
		to, ok := m.accounts[args[2]]
		if !ok {
			return "", fmt.Errorf("receiver: %w", domain.ErrAccountNotFound)
		}
		if err := from.TransferTo(amount, to); err != nil {
			return "", err
		}
		if err := m.save(); err != nil {
			return "", err
		}
		return fmt.Sprintf("Sent %s to %s", amount, to.Number), nil

	case ChoiceBalance:
		if err := needArgs(choice, args, 2); err != nil {
			return "", err
		}
		acc, err := m.login(args[0], args[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Balance: %s\nPhone credit: %s", acc.Balance, acc.PhoneCredit), nil

	case ChoiceDelete:
		if err := needArgs(choice, args, 2); err != nil {
			return "", err
		}
		if _, err := m.login(args[0], args[1]); err != nil {
			return "", err
		}
		if err := m.removeAccount(args[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Account %s deleted", args[0]), nil

	case ChoiceTopUp:
		if err := needArgs(choice, args, 3); err != nil {
			return "", err
		}
		amount, err := parseAmount(args[2])
		if err != nil {
			return "", err
		}
		acc, err := m.login(args[0], args[1])
		if err != nil {
			return "", err
		}
		if err := acc.TopUpPhone(amount); err != nil {
			return "", err
		}
		if err := m.save(); err != nil {
			return "", err
		}
		return fmt.Sprintf("Added %s phone credit. New balance: %s", amount, acc.PhoneCredit), nil

	case ChoiceHistory:
		if err := needArgs(choice, args, 2); err != nil {
			return "", err
		}
		acc, err := m.login(args[0], args[1])
		if err != nil {
			return "", err
		}
		if len(acc.History) == 0 {
			return "No transactions", nil
		}
		return strings.Join(acc.History, "\n"), nil

	default:
		return "", fmt.Errorf("invalid option %q", choice)
	}
}

// parseAmount 在 dispatch 邊界一次性解析金額
// 解析失敗或非正數都視為 ErrInvalidAmount
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	return d, nil
}

func needArgs(choice string, args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("choice %s: need %d args, got %d", choice, n, len(args))
	}
	return nil
}
