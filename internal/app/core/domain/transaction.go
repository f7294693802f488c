package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// OperationType 交易類型
type OperationType uint8

const (
	// 存款
	OperationDeposit OperationType = 1
	// 付款
	OperationPayment OperationType = 2
	// 轉帳
	OperationTransfer OperationType = 3
)

func (t OperationType) String() string {
	switch t {
	case OperationDeposit:
		return "deposit"
	case OperationPayment:
		return "payment"
	case OperationTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// OperationRequest 交易請求
// Destination 只有轉帳需要
type OperationRequest struct {
	Source      AccountRef
	Destination *AccountRef
	Amount      decimal.Decimal
	PlanAccount string
	Description string
}

// Receipt 交易成功的結果
type Receipt struct {
	NewBalance decimal.Decimal
	Message    string
}

// LockIDs 回傳需要鎖定的帳號 ID，遞增排序且去重，避免死鎖
func LockIDs(ids ...int64) []int64 {
	out := make([]int64, 0, len(ids))
	out = append(out, ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	n := 0
	for i, id := range out {
		if i > 0 && id == out[n-1] {
			continue
		}
		out[n] = id
		n++
	}
	return out[:n]
}
