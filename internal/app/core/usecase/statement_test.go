package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 9, 0, 0, 0, time.UTC)
}

func TestStatement_Range(t *testing.T) {
	var now time.Time
	f := newFixture(t, "0", "0", usecase.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	steps := []struct {
		at     time.Time
		op     func(context.Context, domain.OperationRequest) (domain.Receipt, error)
		amount string
	}{
		{day(1), f.engine.Deposit, "10"},
		{day(3), f.engine.Pay, "5"},
		{day(5), f.engine.Deposit, "20"},
	}
	for _, s := range steps {
		now = s.at
		_, err := s.op(ctx, domain.OperationRequest{Source: alice, Amount: dec(s.amount), PlanAccount: "salary"})
		require.NoError(t, err)
	}

	svc := usecase.NewStatementService(f.store, f.store)
	st, err := svc.Statement(ctx, "alice", domain.TagBRL, &domain.DateRange{From: day(2), To: day(5)})
	require.NoError(t, err)

	assert.Equal(t, alice, st.Account)
	assert.True(t, st.Balance.Equal(dec("25")))
	require.Len(t, st.Postings, 2)
	assert.True(t, st.Postings[0].Amount.Equal(dec("-5")))
	assert.True(t, st.Postings[0].CreatedAt.Equal(day(3)))
	assert.True(t, st.Postings[1].Amount.Equal(dec("20")))
	assert.Equal(t, alice, st.Postings[0].CounterAccount)
	assert.Equal(t, "salary", st.Postings[1].PlanAccountName)

	full, err := svc.Statement(ctx, "alice", domain.TagBRL, nil)
	require.NoError(t, err)
	assert.Len(t, full.Postings, 3)
}

func TestStatement_CounterAccounts(t *testing.T) {
	f := newFixture(t, "50", "0")
	ctx := context.Background()

	_, err := f.engine.Transfer(ctx, domain.OperationRequest{
		Source: alice, Destination: &bob, Amount: dec("20"), PlanAccount: "rent", Description: "dinner",
	})
	require.NoError(t, err)

	svc := usecase.NewStatementService(f.store, f.store)
	st, err := svc.Statement(ctx, "bob", domain.TagBRL, nil)
	require.NoError(t, err)
	require.Len(t, st.Postings, 1)
	assert.Equal(t, alice, st.Postings[0].CounterAccount)
	assert.True(t, st.Postings[0].Amount.Equal(dec("20")))
	assert.Equal(t, "dinner", st.Postings[0].Description)
	assert.True(t, st.Balance.Equal(dec("20")))

	st, err = svc.Statement(ctx, "alice", domain.TagBRL, nil)
	require.NoError(t, err)
	require.Len(t, st.Postings, 1)
	assert.Equal(t, bob, st.Postings[0].CounterAccount)
}

// 入帳進行中取得的對帳單：餘額必須等於 (開戶餘額 + 所列分錄合計)
func TestStatement_BalanceMatchesPostingsUnderLoad(t *testing.T) {
	f := newFixture(t, "0", "0")
	svc := usecase.NewStatementService(f.store, f.store)
	ctx := context.Background()

	const deposits = 200
	var wg sync.WaitGroup
	wg.Add(deposits)
	for i := 0; i < deposits; i++ {
		go func() {
			defer wg.Done()
			_, err := f.engine.Deposit(ctx, domain.OperationRequest{Source: alice, Amount: dec("1"), PlanAccount: "salary"})
			assert.NoError(t, err)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	check := func() decimal.Decimal {
		st, err := svc.Statement(ctx, "alice", domain.TagBRL, nil)
		require.NoError(t, err)
		sum := decimal.Zero
		for _, line := range st.Postings {
			sum = sum.Add(line.Amount)
		}
		require.True(t, st.Balance.Equal(sum), "balance %s, postings sum %s", st.Balance, sum)
		return st.Balance
	}
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			check()
		}
	}
	assert.Equal(t, "200", check().String())
}

func TestStatement_Errors(t *testing.T) {
	f := newFixture(t, "0", "0")
	svc := usecase.NewStatementService(f.store, f.store)
	ctx := context.Background()

	_, err := svc.Statement(ctx, "alice", domain.TagBRL, &domain.DateRange{From: day(5), To: day(2)})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = svc.Statement(ctx, "alice", domain.TagUSD, nil)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	st, err := svc.Statement(ctx, "alice", domain.TagBRL, nil)
	require.NoError(t, err)
	assert.Empty(t, st.Postings)
	assert.True(t, st.Balance.IsZero())
}

func TestAccounts(t *testing.T) {
	f := newFixture(t, "1", "2")
	ctx := context.Background()
	_, err := f.store.OpenAccount(ctx, "alice", domain.TagUSD, "Alice USD", dec("3"))
	require.NoError(t, err)

	svc := usecase.NewStatementService(f.store, f.store)
	accounts, err := svc.Accounts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, domain.TagBRL, accounts[0].Tag)
	assert.Equal(t, domain.TagUSD, accounts[1].Tag)

	none, err := svc.Accounts(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
