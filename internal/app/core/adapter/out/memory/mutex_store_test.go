package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-account-ledger/pkg/wal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// credit 在一個 Tx 內入帳並寫一筆分錄
func credit(t *testing.T, s *MutexStore, id int64, amount string, at time.Time) error {
	t.Helper()
	return s.WithinTx(context.Background(), func(ctx context.Context, tx usecase.Tx) error {
		accounts, err := tx.LoadForUpdate(ctx, []int64{id})
		if err != nil {
			return err
		}
		acc := accounts[id]
		if err := acc.Credit(dec(amount)); err != nil {
			return err
		}
		if err := tx.AppendPosting(ctx, &domain.Posting{
			ID:               uuid.New(),
			CreatedAt:        at,
			AccountID:        id,
			CounterAccountID: id,
			PlanAccountName:  "salary",
			Amount:           dec(amount),
		}); err != nil {
			return err
		}
		return tx.SaveAccount(ctx, acc)
	})
}

func TestMutexStore_OpenAccount(t *testing.T) {
	s, err := NewMutexStore(nil)
	require.NoError(t, err)
	ctx := context.Background()

	a, err := s.OpenAccount(ctx, "alice", domain.TagBRL, "Alice", dec("10"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)

	_, err = s.OpenAccount(ctx, "alice", domain.TagBRL, "again", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	_, err = s.OpenAccount(ctx, "alice", domain.TagUSD, "neg", dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = s.OpenAccount(ctx, "alice", domain.TagUSD, "too fine", dec("0.12345"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	b, err := s.OpenAccount(ctx, "alice", domain.TagUSD, "Alice USD", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, int64(2), b.ID)

	all, err := s.FindAllByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, domain.TagBRL, all[0].Tag)
	assert.Equal(t, domain.TagUSD, all[1].Tag)

	none, err := s.FindAllByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMutexStore_FindReturnsCopy(t *testing.T) {
	s, _ := NewMutexStore(nil)
	ctx := context.Background()
	_, err := s.OpenAccount(ctx, "bob", domain.TagEUR, "Bob", dec("5"))
	require.NoError(t, err)

	acc, err := s.FindByOwnerAndTag(ctx, "bob", domain.TagEUR)
	require.NoError(t, err)
	acc.Balance = dec("999")

	again, err := s.FindByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, again.Balance.Equal(dec("5")))

	_, err = s.FindByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = s.FindByOwnerAndTag(ctx, "bob", domain.TagUSD)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestMutexStore_AddPlanAccount(t *testing.T) {
	s, _ := NewMutexStore(nil)
	ctx := context.Background()

	p1, err := s.AddPlanAccount(ctx, "rent", "alice")
	require.NoError(t, err)
	p2, err := s.AddPlanAccount(ctx, "rent", "alice")
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)

	other, err := s.AddPlanAccount(ctx, "rent", "bob")
	require.NoError(t, err)
	assert.NotEqual(t, p1.ID, other.ID)

	got, err := s.ResolvePlanAccount(ctx, "rent", "bob")
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.ID)

	_, err = s.ResolvePlanAccount(ctx, "food", "alice")
	assert.ErrorIs(t, err, domain.ErrPlanAccountNotFound)
}

func TestMutexStore_RollbackOnError(t *testing.T) {
	s, _ := NewMutexStore(nil)
	ctx := context.Background()
	acc, err := s.OpenAccount(ctx, "carol", domain.TagUSD, "Carol", dec("1"))
	require.NoError(t, err)

	err = s.WithinTx(ctx, func(ctx context.Context, tx usecase.Tx) error {
		accounts, err := tx.LoadForUpdate(ctx, []int64{acc.ID})
		require.NoError(t, err)
		a := accounts[acc.ID]
		require.NoError(t, a.Credit(dec("100")))
		require.NoError(t, tx.SaveAccount(ctx, a))
		require.NoError(t, tx.AppendPosting(ctx, &domain.Posting{ID: uuid.New(), AccountID: acc.ID, Amount: dec("100")}))
		return domain.ErrInsufficientFunds
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	got, _ := s.FindByID(ctx, acc.ID)
	assert.True(t, got.Balance.Equal(dec("1")))
	assert.Equal(t, int64(0), got.Version)
	postings, err := s.ListByAccount(ctx, acc.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, postings)
}

func TestMutexStore_VersionConflict(t *testing.T) {
	s, _ := NewMutexStore(nil)
	ctx := context.Background()
	acc, err := s.OpenAccount(ctx, "dave", domain.TagBRL, "Dave", decimal.Zero)
	require.NoError(t, err)

	err = s.WithinTx(ctx, func(ctx context.Context, tx usecase.Tx) error {
		accounts, err := tx.LoadForUpdate(ctx, []int64{acc.ID})
		require.NoError(t, err)
		// 另一筆交易在此期間提交
		require.NoError(t, credit(t, s, acc.ID, "1", time.Now()))
		a := accounts[acc.ID]
		require.NoError(t, a.Credit(dec("2")))
		return tx.SaveAccount(ctx, a)
	})
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)

	got, _ := s.FindByID(ctx, acc.ID)
	assert.True(t, got.Balance.Equal(dec("1")))
	assert.Equal(t, int64(1), got.Version)
}

func TestMutexStore_ListByAccount(t *testing.T) {
	s, _ := NewMutexStore(nil)
	ctx := context.Background()
	acc, err := s.OpenAccount(ctx, "erin", domain.TagBRL, "Erin", decimal.Zero)
	require.NoError(t, err)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	// 寫入順序與時間順序不同
	require.NoError(t, credit(t, s, acc.ID, "3", base.Add(2*time.Hour)))
	require.NoError(t, credit(t, s, acc.ID, "1", base))
	require.NoError(t, credit(t, s, acc.ID, "2", base.Add(time.Hour)))

	all, err := s.ListByAccount(ctx, acc.ID, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].Amount.Equal(dec("1")))
	assert.True(t, all[1].Amount.Equal(dec("2")))
	assert.True(t, all[2].Amount.Equal(dec("3")))

	// 區間頭尾皆包含
	ranged, err := s.ListByAccount(ctx, acc.ID, &domain.DateRange{From: base.Add(time.Hour), To: base.Add(2 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.True(t, ranged[0].Amount.Equal(dec("2")))

	empty, err := s.ListByAccount(ctx, acc.ID, &domain.DateRange{From: base.Add(-48 * time.Hour), To: base.Add(-24 * time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, empty)

	// 回傳的 slice 不共享內部狀態
	all[0].Amount = dec("100")
	again, _ := s.ListByAccount(ctx, acc.ID, nil)
	assert.True(t, again[0].Amount.Equal(dec("1")))
}

func TestMutexStore_Snapshot(t *testing.T) {
	s, err := NewMutexStore(nil)
	require.NoError(t, err)
	ctx := context.Background()

	acc, err := s.OpenAccount(ctx, "ivan", domain.TagBRL, "Ivan", dec("1"))
	require.NoError(t, err)
	at := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, credit(t, s, acc.ID, "2", at))
	require.NoError(t, credit(t, s, acc.ID, "3", at.Add(time.Hour)))

	got, postings, err := s.Snapshot(ctx, acc.ID, &domain.DateRange{From: at.Add(time.Minute), To: at.Add(2 * time.Hour)})
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("6")), got.Balance.String())
	require.Len(t, postings, 1)
	assert.True(t, postings[0].Amount.Equal(dec("3")))

	got.Balance = dec("999")
	again, err := s.FindByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, again.Balance.Equal(dec("6")))

	_, _, err = s.Snapshot(ctx, 404, nil)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestMutexStore_RecoverFromWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.wal")
	ctx := context.Background()

	w, err := wal.NewWAL(path)
	require.NoError(t, err)
	s, err := NewMutexStore(w)
	require.NoError(t, err)

	acc, err := s.OpenAccount(ctx, "frank", domain.TagUSD, "Frank", dec("10.50"))
	require.NoError(t, err)
	plan, err := s.AddPlanAccount(ctx, "salary", "frank")
	require.NoError(t, err)
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, credit(t, s, acc.ID, "4.25", at))
	require.NoError(t, credit(t, s, acc.ID, "0.25", at.Add(time.Minute)))
	require.NoError(t, w.Close())

	w2, err := wal.NewWAL(path)
	require.NoError(t, err)
	defer w2.Close()
	restored, err := NewMutexStore(w2)
	require.NoError(t, err)

	got, err := restored.FindByOwnerAndTag(ctx, "frank", domain.TagUSD)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)
	assert.True(t, got.Balance.Equal(dec("15")), got.Balance.String())
	assert.Equal(t, int64(2), got.Version)

	gotPlan, err := restored.ResolvePlanAccount(ctx, "salary", "frank")
	require.NoError(t, err)
	assert.Equal(t, plan.ID, gotPlan.ID)

	postings, err := restored.ListByAccount(ctx, acc.ID, nil)
	require.NoError(t, err)
	require.Len(t, postings, 2)
	assert.True(t, postings[0].CreatedAt.Equal(at))

	// 恢復後 ID 序列延續
	next, err := restored.OpenAccount(ctx, "grace", domain.TagBRL, "Grace", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, acc.ID+1, next.ID)
}

// 模擬 crash 留下半筆紀錄：重啟後的新交易必須在下一次重啟時仍可重播
func TestMutexStore_CommitAfterTornTailSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.wal")
	ctx := context.Background()

	w, err := wal.NewWAL(path)
	require.NoError(t, err)
	s, err := NewMutexStore(w)
	require.NoError(t, err)
	acc, err := s.OpenAccount(ctx, "heidi", domain.TagBRL, "Heidi", dec("10"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, wal.FileModePrivate)
	require.NoError(t, err)
	_, err = f.WriteString(`{"kind":"commit","acc`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	w2, err := wal.NewWAL(path)
	require.NoError(t, err)
	s2, err := NewMutexStore(w2)
	require.NoError(t, err)
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, credit(t, s2, acc.ID, "5", at))
	require.NoError(t, w2.Close())

	w3, err := wal.NewWAL(path)
	require.NoError(t, err)
	defer w3.Close()
	s3, err := NewMutexStore(w3)
	require.NoError(t, err)

	got, err := s3.FindByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("15")), got.Balance.String())
	assert.Equal(t, int64(1), got.Version)

	postings, err := s3.ListByAccount(ctx, acc.ID, nil)
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.True(t, postings[0].Amount.Equal(dec("5")))
	assert.True(t, postings[0].CreatedAt.Equal(at))
}

func TestMutexStore_WALFailureLeavesNoTrace(t *testing.T) {
	w, err := wal.NewWAL(filepath.Join(t.TempDir(), "ledger.wal"))
	require.NoError(t, err)
	s, err := NewMutexStore(w)
	require.NoError(t, err)
	ctx := context.Background()

	acc, err := s.OpenAccount(ctx, "heidi", domain.TagBRL, "Heidi", dec("7"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	err = credit(t, s, acc.ID, "3", time.Now())
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)

	got, _ := s.FindByID(ctx, acc.ID)
	assert.True(t, got.Balance.Equal(dec("7")))
	postings, _ := s.ListByAccount(ctx, acc.ID, nil)
	assert.Empty(t, postings)

	_, err = s.OpenAccount(ctx, "ivan", domain.TagBRL, "Ivan", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)
	_, err = s.FindByOwnerAndTag(ctx, "ivan", domain.TagBRL)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestMutexStore_CanceledContext(t *testing.T) {
	s, _ := NewMutexStore(nil)
	acc, err := s.OpenAccount(context.Background(), "judy", domain.TagBRL, "Judy", decimal.Zero)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	err = s.WithinTx(ctx, func(ctx context.Context, tx usecase.Tx) error {
		accounts, err := tx.LoadForUpdate(ctx, []int64{acc.ID})
		if err != nil {
			return err
		}
		a := accounts[acc.ID]
		_ = a.Credit(dec("1"))
		cancel()
		return tx.SaveAccount(ctx, a)
	})
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)

	got, _ := s.FindByID(context.Background(), acc.ID)
	assert.True(t, got.Balance.IsZero())
}
