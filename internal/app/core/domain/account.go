package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tag 帳戶幣別/類型標記，同一擁有者下唯一
type Tag string

const (
	TagBRL    Tag = "BRL"
	TagUSD    Tag = "USD"
	TagEUR    Tag = "EUR"
	TagCredit Tag = "CREDIT"
)

// AccountRef 以 (擁有者 login, 標記) 指向一個帳戶
type AccountRef struct {
	Login string `json:"login" yaml:"login"`
	Tag   Tag    `json:"tag" yaml:"tag"`
}

func (r AccountRef) String() string {
	return fmt.Sprintf("%s/%s", r.Login, r.Tag)
}

// AmountScale 金額最多的小數位數，與 MySQL decimal(20,4) 一致
const AmountScale = 4

// ValidateAmount 金額不得為負數，小數位數不得超過 AmountScale
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() || !amount.Truncate(AmountScale).Equal(amount) {
		return ErrInvalidAmount
	}
	return nil
}

// Account 帳戶
// Balance 使用 decimal，避免浮點誤差累積
// Version 每次儲存遞增，作為 MySQL 條件更新的前置條件
type Account struct {
	ID        int64
	Login     string
	Tag       Tag
	Name      string
	Balance   decimal.Decimal
	Version   int64
	CreatedAt time.Time
}

// Ref 回傳帳戶的外部參照
func (a *Account) Ref() AccountRef {
	return AccountRef{Login: a.Login, Tag: a.Tag}
}

// Credit 入帳
func (a *Account) Credit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Debit 扣款，餘額不足時不做任何變更
func (a *Account) Debit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// PlanAccount 科目 (plan of accounts entry)，以擁有者為範圍
type PlanAccount struct {
	ID         int64
	Name       string
	OwnerLogin string
}
