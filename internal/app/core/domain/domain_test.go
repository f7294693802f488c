package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_CreditDebit(t *testing.T) {
	acc := &Account{ID: 1, Balance: decimal.RequireFromString("100.00")}

	require.NoError(t, acc.Credit(decimal.RequireFromString("50.00")))
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("150.00")))

	require.NoError(t, acc.Debit(decimal.RequireFromString("150.00")))
	assert.True(t, acc.Balance.IsZero())

	assert.ErrorIs(t, acc.Debit(decimal.RequireFromString("0.01")), ErrInsufficientFunds)
	assert.True(t, acc.Balance.IsZero(), "failed debit must not touch the balance")

	assert.ErrorIs(t, acc.Credit(decimal.RequireFromString("-1")), ErrInvalidAmount)
	assert.ErrorIs(t, acc.Debit(decimal.RequireFromString("-1")), ErrInvalidAmount)
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"0", true},
		{"10", true},
		{"0.0001", true},
		{"12345.6789", true},
		{"1.50000", true},
		{"0.00001", false},
		{"1.23456", false},
		{"-0.01", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.amount))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidAmount)
			}
		})
	}
}

func TestAccount_RejectsAmountBeyondScale(t *testing.T) {
	acc := &Account{Balance: decimal.RequireFromString("1")}
	assert.ErrorIs(t, acc.Credit(decimal.RequireFromString("0.00005")), ErrInvalidAmount)
	assert.ErrorIs(t, acc.Debit(decimal.RequireFromString("0.00005")), ErrInvalidAmount)
	assert.Equal(t, "1", acc.Balance.String())
}

func TestAccount_DecimalHasNoDrift(t *testing.T) {
	acc := &Account{}
	for i := 0; i < 1000; i++ {
		require.NoError(t, acc.Credit(decimal.RequireFromString("0.10")))
	}
	assert.Equal(t, "100", acc.Balance.String())
}

func TestLockIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want []int64
	}{
		{name: "single", in: []int64{7}, want: []int64{7}},
		{name: "already ordered", in: []int64{1, 2}, want: []int64{1, 2}},
		{name: "reversed", in: []int64{9, 3}, want: []int64{3, 9}},
		{name: "same account", in: []int64{4, 4}, want: []int64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LockIDs(tt.in...))
		})
	}
}

func TestLockIDs_DoesNotMutateInput(t *testing.T) {
	in := []int64{5, 1}
	_ = LockIDs(in...)
	assert.Equal(t, []int64{5, 1}, in)
}

func TestDateRange(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	r := &DateRange{From: day(2), To: day(5)}

	require.NoError(t, r.Validate())
	assert.False(t, r.Contains(day(1)))
	assert.True(t, r.Contains(day(2)))
	assert.True(t, r.Contains(day(3)))
	assert.True(t, r.Contains(day(5)))
	assert.False(t, r.Contains(day(6)))

	var open *DateRange
	assert.True(t, open.Contains(day(1)))
	assert.NoError(t, open.Validate())

	assert.ErrorIs(t, (&DateRange{From: day(5), To: day(2)}).Validate(), ErrInvalidDateRange)
}

func TestOperationType_String(t *testing.T) {
	assert.Equal(t, "deposit", OperationDeposit.String())
	assert.Equal(t, "payment", OperationPayment.String())
	assert.Equal(t, "transfer", OperationTransfer.String())
	assert.Equal(t, "unknown", OperationType(0).String())
}
