package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須為正數（含無法解析的輸入）
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("not enough funds")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrWrongPassword 密碼錯誤
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidAccountKind 不支援的帳戶類型
	ErrInvalidAccountKind = errors.New("account kind must be Personal or Business")
)
