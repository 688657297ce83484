package usecase_test

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memory_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/out/memory"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
)

func newManager(t *testing.T) (*usecase.BankManager, *memory_adapter.Store) {
	t.Helper()
	store := memory_adapter.NewStore()
	m, err := usecase.NewBankManager(store)
	require.NoError(t, err)
	return m, store
}

func TestNewBankManagerLoadsFromStore(t *testing.T) {
	store := memory_adapter.NewStore()
	acc := domain.NewAccount("10001", "pw", domain.KindPersonal, decimal.RequireFromString("250"))
	require.NoError(t, store.Save(map[string]*domain.Account{acc.Number: acc}))

	m, err := usecase.NewBankManager(store)
	require.NoError(t, err)

	got, err := m.Login("10001", "pw")
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("250")))
}

func TestMakeAccount(t *testing.T) {
	t.Run("returns five digit number and password", func(t *testing.T) {
		m, store := newManager(t)
		num, pwd, err := m.MakeAccount("Personal")
		require.NoError(t, err)

		require.Len(t, num, 5)
		n, err := strconv.Atoi(num)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 10000)
		assert.LessOrEqual(t, n, 99999)
		assert.Len(t, pwd, 8)

		// 建立帳戶屬於變動操作，必須已寫回儲存層
		assert.Equal(t, 1, store.Saves())
	})

	t.Run("numbers unique across many creates", func(t *testing.T) {
		m, _ := newManager(t)
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			num, _, err := m.MakeAccount("Business")
			require.NoError(t, err)
			require.False(t, seen[num], "duplicate number %s", num)
			seen[num] = true
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		m, store := newManager(t)
		_, _, err := m.MakeAccount("Savings")
		require.ErrorIs(t, err, domain.ErrInvalidAccountKind)
		assert.Equal(t, 0, store.Saves())
	})
}

func TestLogin(t *testing.T) {
	m, _ := newManager(t)
	num, pwd, err := m.MakeAccount("Personal")
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		acc, err := m.Login(num, pwd)
		require.NoError(t, err)
		assert.Equal(t, num, acc.Number)
		assert.Equal(t, domain.KindPersonal, acc.Kind)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := m.Login(num, "nope")
		assert.ErrorIs(t, err, domain.ErrWrongPassword)
	})

	t.Run("unknown number", func(t *testing.T) {
		_, err := m.Login("00000", pwd)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestRemoveAccount(t *testing.T) {
	m, store := newManager(t)
	num, pwd, err := m.MakeAccount("Business")
	require.NoError(t, err)

	require.NoError(t, m.RemoveAccount(num))
	assert.Equal(t, 2, store.Saves())

	_, err = m.Login(num, pwd)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	assert.ErrorIs(t, m.RemoveAccount(num), domain.ErrAccountNotFound)
}
