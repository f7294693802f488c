package domain

import "errors"

var (
	// ErrInvalidAmount 金額為負數或小數位數超過 AmountScale
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrPlanAccountNotFound 找不到科目 (plan of accounts entry)
	ErrPlanAccountNotFound = errors.New("plan account not found")

	// ErrPersistenceFailure 底層儲存無法提交
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrInvalidDateRange 查詢區間起日晚於迄日
	ErrInvalidDateRange = errors.New("date range start is after end")

	// ErrAccountAlreadyExists 帳戶已存在 (同一 login + tag)
	ErrAccountAlreadyExists = errors.New("account already exists")
)
