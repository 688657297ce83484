package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
)

// Shell 是行模式互動前端：主選單（開戶/登入）加上登入後的帳戶選單
// 所有操作都只透過 HandleChoice 進入核心；登入會話（帳號/密碼）由這一層保存，
// 核心本身每次呼叫都會重新認證。
type Shell struct {
	manager *usecase.BankManager
	in      *bufio.Scanner
	out     io.Writer
}

func NewShell(manager *usecase.BankManager, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run 主選單迴圈，輸入 0 或 EOF 時結束
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Bank App - Command Line")
	for {
		fmt.Fprintln(s.out, "\nMain Menu:")
		fmt.Fprintln(s.out, "1. New Account")
		fmt.Fprintln(s.out, "2. Login")
		fmt.Fprintln(s.out, "0. Exit")

		choice, ok := s.prompt("Choose: ")
		if !ok || choice == "0" {
			return s.in.Err()
		}

		switch choice {
		case usecase.ChoiceNewAccount:
			kind, ok := s.prompt("Account type (Personal/Business): ")
			if !ok {
				return s.in.Err()
			}
			s.show(s.manager.HandleChoice(usecase.ChoiceNewAccount, kind))

		case usecase.ChoiceLogin:
			num, ok := s.prompt("Account #: ")
			if !ok {
				return s.in.Err()
			}
			pwd, ok := s.prompt("Password: ")
			if !ok {
				return s.in.Err()
			}
			msg, err := s.manager.HandleChoice(usecase.ChoiceLogin, num, pwd)
			if err != nil {
				s.show("", err)
				continue
			}
			fmt.Fprintln(s.out, msg)
			if err := s.accountMenu(num, pwd); err != nil {
				return err
			}

		default:
			fmt.Fprintln(s.out, "Invalid choice")
		}
	}
}

// accountMenu 登入後的操作迴圈，刪除帳戶成功或登出時返回主選單
func (s *Shell) accountMenu(num, pwd string) error {
	for {
		fmt.Fprintln(s.out, "\nAccount Menu:")
		fmt.Fprintln(s.out, "3. Deposit")
		fmt.Fprintln(s.out, "4. Withdraw")
		fmt.Fprintln(s.out, "5. Transfer")
		fmt.Fprintln(s.out, "6. Balance")
		fmt.Fprintln(s.out, "7. Delete")
		fmt.Fprintln(s.out, "8. Phone Top-up")
		fmt.Fprintln(s.out, "9. History")
		fmt.Fprintln(s.out, "0. Logout")

		action, ok := s.prompt("Choose: ")
		if !ok {
			return s.in.Err()
		}
		if action == "0" {
			fmt.Fprintln(s.out, "Logged out")
			return nil
		}

		var args []string
		switch action {
		case usecase.ChoiceDeposit, usecase.ChoiceWithdraw, usecase.ChoiceTopUp:
			amount, ok := s.prompt("Amount: ")
			if !ok {
				return s.in.Err()
			}
			args = []string{num, pwd, amount}

		case usecase.ChoiceTransfer:
			to, ok := s.prompt("To account #: ")
			if !ok {
				return s.in.Err()
			}
			amount, ok := s.prompt("Amount: ")
			if !ok {
				return s.in.Err()
			}
			args = []string{num, pwd, to, amount}

		case usecase.ChoiceBalance, usecase.ChoiceHistory:
			args = []string{num, pwd}

		case usecase.ChoiceDelete:
			confirm, ok := s.prompt("Delete account? (y/n): ")
			if !ok {
				return s.in.Err()
			}
			if !strings.EqualFold(confirm, "y") {
				continue
			}
			args = []string{num, pwd}

		default:
			fmt.Fprintln(s.out, "Invalid choice")
			continue
		}

		msg, err := s.manager.HandleChoice(action, args...)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(s.out, msg)

		if action == usecase.ChoiceDelete {
			// 帳戶已刪除，登入狀態失效
			return nil
		}
	}
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) show(msg string, err error) {
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, msg)
}
