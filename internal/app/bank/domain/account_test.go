package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeposit(t *testing.T) {
	t.Run("positive amount", func(t *testing.T) {
		a := NewAccount("10001", "pw", KindPersonal, decimal.Zero)
		require.NoError(t, a.Deposit(dec("500")))
		assert.True(t, a.Balance.Equal(dec("500")))
		require.Len(t, a.History, 1)
		assert.Equal(t, "Added 500", a.History[0])

		// 連續存款，History 依序累加
		require.NoError(t, a.Deposit(dec("300")))
		assert.True(t, a.Balance.Equal(dec("800")))
		require.Len(t, a.History, 2)
		assert.Equal(t, "Added 300", a.History[1])
	})

	t.Run("non-positive amount", func(t *testing.T) {
		a := NewAccount("10001", "pw", KindPersonal, dec("100"))
		for _, s := range []string{"0", "-5"} {
			err := a.Deposit(dec(s))
			require.ErrorIs(t, err, ErrInvalidAmount)
			assert.True(t, a.Balance.Equal(dec("100")))
			assert.Empty(t, a.History)
		}
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		a := NewAccount("10001", "pw", KindBusiness, dec("100"))
		require.NoError(t, a.Withdraw(dec("40")))
		assert.True(t, a.Balance.Equal(dec("60")))
		assert.Equal(t, []string{"Took 40"}, a.History)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		a := NewAccount("10001", "pw", KindPersonal, dec("100"))
		err := a.Withdraw(dec("150"))
		require.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, a.Balance.Equal(dec("100")))
		assert.Empty(t, a.History)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		a := NewAccount("10001", "pw", KindPersonal, dec("100"))
		require.ErrorIs(t, a.Withdraw(decimal.Zero), ErrInvalidAmount)
		assert.True(t, a.Balance.Equal(dec("100")))
	})
}

// 同額存提款後餘額應精確回到原點
func TestDepositThenWithdrawRestoresBalance(t *testing.T) {
	a := NewAccount("10001", "pw", KindPersonal, dec("123.45"))
	require.NoError(t, a.Deposit(dec("67.89")))
	require.NoError(t, a.Withdraw(dec("67.89")))
	assert.True(t, a.Balance.Equal(dec("123.45")))
}

func TestTransferTo(t *testing.T) {
	t.Run("moves amount and records both sides", func(t *testing.T) {
		from := NewAccount("11111", "pw", KindPersonal, dec("1000"))
		to := NewAccount("22222", "pw", KindBusiness, dec("200"))

		require.NoError(t, from.TransferTo(dec("400"), to))
		assert.True(t, from.Balance.Equal(dec("600")))
		assert.True(t, to.Balance.Equal(dec("600")))

		// 雙方紀錄都要指到對方帳號
		assert.Contains(t, from.History, "Sent 400 to 22222")
		assert.Contains(t, to.History, "Got 400 from 11111")
	})

	t.Run("insufficient funds leaves both unchanged", func(t *testing.T) {
		from := NewAccount("11111", "pw", KindPersonal, dec("100"))
		to := NewAccount("22222", "pw", KindPersonal, dec("50"))

		err := from.TransferTo(dec("400"), to)
		require.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, from.Balance.Equal(dec("100")))
		assert.True(t, to.Balance.Equal(dec("50")))
		assert.Empty(t, from.History)
		assert.Empty(t, to.History)
	})
}

func TestTopUpPhone(t *testing.T) {
	t.Run("moves amount from balance to phone credit", func(t *testing.T) {
		a := NewAccount("10001", "pw", KindPersonal, dec("100"))
		before := a.Balance.Add(a.PhoneCredit)

		require.NoError(t, a.TopUpPhone(dec("30")))
		assert.True(t, a.Balance.Equal(dec("70")))
		assert.True(t, a.PhoneCredit.Equal(dec("30")))

		// 總額守恆：Balance + PhoneCredit 不變
		assert.True(t, a.Balance.Add(a.PhoneCredit).Equal(before))

		// 只記一筆合併紀錄
		assert.Equal(t, []string{"Phone +30"}, a.History)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		a := NewAccount("10001", "pw", KindPersonal, dec("10"))
		require.ErrorIs(t, a.TopUpPhone(dec("30")), ErrInsufficientFunds)
		assert.True(t, a.Balance.Equal(dec("10")))
		assert.True(t, a.PhoneCredit.Equal(decimal.Zero))
	})
}

// 任何操作序列後餘額都不可為負
func TestBalanceNeverNegative(t *testing.T) {
	a := NewAccount("10001", "pw", KindPersonal, decimal.Zero)
	ops := []func() error{
		func() error { return a.Withdraw(dec("1")) },
		func() error { return a.Deposit(dec("5")) },
		func() error { return a.TopUpPhone(dec("10")) },
		func() error { return a.Withdraw(dec("5")) },
		func() error { return a.Withdraw(dec("5")) },
	}
	for _, op := range ops {
		_ = op()
		assert.False(t, a.Balance.IsNegative())
		assert.False(t, a.PhoneCredit.IsNegative())
	}
}

func TestParseAccountKind(t *testing.T) {
	for _, s := range []string{"Personal", "Business"} {
		k, err := ParseAccountKind(s)
		require.NoError(t, err)
		assert.Equal(t, AccountKind(s), k)
	}
	for _, s := range []string{"", "personal", "Savings"} {
		_, err := ParseAccountKind(s)
		assert.ErrorIs(t, err, ErrInvalidAccountKind)
	}
}
