package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Posting 分錄，建立後不可變更
// 每一筆經濟事件的每一個帳戶端各一筆：存款/付款一筆，轉帳兩筆
type Posting struct {
	ID               uuid.UUID
	CreatedAt        time.Time
	AccountID        int64
	CounterAccountID int64
	PlanAccountID    int64
	PlanAccountName  string
	// Amount 帶正負號：入帳為正，出帳為負
	Amount      decimal.Decimal
	Description string
}

// DateRange 查詢區間，前後皆包含
type DateRange struct {
	From time.Time
	To   time.Time
}

// Validate 檢查區間合法
func (r *DateRange) Validate() error {
	if r == nil {
		return nil
	}
	if r.From.After(r.To) {
		return ErrInvalidDateRange
	}
	return nil
}

// Contains 判斷時間是否落在 [From, To]
func (r *DateRange) Contains(t time.Time) bool {
	if r == nil {
		return true
	}
	return !t.Before(r.From) && !t.After(r.To)
}

// StatementLine 對帳單上的一筆分錄
type StatementLine struct {
	CreatedAt       time.Time
	CounterAccount  AccountRef
	PlanAccountName string
	Amount          decimal.Decimal
	Description     string
}

// Statement 對帳單：目前餘額加上依時間遞增排列的分錄
type Statement struct {
	Account  AccountRef
	Balance  decimal.Decimal
	Postings []StatementLine
}
