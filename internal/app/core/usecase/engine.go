package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
)

// TransactionEngine 是核心業務邏輯層：存款、付款、轉帳
//
// 每一筆交易流程:
//
//	查帳戶/科目 -> 依 ID 遞增取得帳戶鎖 -> 開啟 Tx -> 重新讀取帳戶 -> 檢查規則 -> 寫分錄/存帳戶 -> Commit -> 釋放鎖
type TransactionEngine struct {
	store  Store
	locker Locker
	logger *zap.Logger
	now    func() time.Time
}

// EngineOption 定義了 TransactionEngine 的配置選項函數
type EngineOption func(*TransactionEngine)

// WithLogger 設定 logger，預設為 zap.NewNop()
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *TransactionEngine) {
		e.logger = logger
	}
}

// WithClock 設定分錄時間來源 (測試用)
func WithClock(now func() time.Time) EngineOption {
	return func(e *TransactionEngine) {
		e.now = now
	}
}

func NewTransactionEngine(store Store, locker Locker, opts ...EngineOption) *TransactionEngine {
	e := &TransactionEngine{
		store:  store,
		locker: locker,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Deposit 存款
//
// 參數:
//
//	ctx: 上下文
//	req: 交易請求 (Source, Amount, PlanAccount, Description)
//
// 回傳:
//
//	domain.Receipt: 存款後餘額
//	error: ErrInvalidAmount / ErrAccountNotFound / ErrPlanAccountNotFound / ErrPersistenceFailure
func (e *TransactionEngine) Deposit(ctx context.Context, req domain.OperationRequest) (domain.Receipt, error) {
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return e.reject(domain.OperationDeposit, req, err)
	}
	account, err := e.store.FindByOwnerAndTag(ctx, req.Source.Login, req.Source.Tag)
	if err != nil {
		return e.reject(domain.OperationDeposit, req, err)
	}
	plan, err := e.store.ResolvePlanAccount(ctx, req.PlanAccount, req.Source.Login)
	if err != nil {
		return e.reject(domain.OperationDeposit, req, err)
	}

	var newBalance decimal.Decimal
	err = e.execute(ctx, []int64{account.ID}, func(ctx context.Context, tx Tx, accounts map[int64]*domain.Account) error {
		acc := accounts[account.ID]
		if err := acc.Credit(req.Amount); err != nil {
			return err
		}
		if err := tx.AppendPosting(ctx, e.newPosting(acc.ID, acc.ID, plan, req.Amount, req.Description)); err != nil {
			return err
		}
		if err := tx.SaveAccount(ctx, acc); err != nil {
			return err
		}
		newBalance = acc.Balance
		return nil
	})
	if err != nil {
		return e.reject(domain.OperationDeposit, req, err)
	}

	e.logger.Info("operation committed",
		zap.Stringer("op", domain.OperationDeposit),
		zap.Int64("account_id", account.ID),
		zap.String("amount", req.Amount.String()),
		zap.String("new_balance", newBalance.String()),
	)
	return domain.Receipt{NewBalance: newBalance, Message: "deposit completed"}, nil
}

// Pay 付款
//
// 參數:
//
//	ctx: 上下文
//	req: 交易請求 (Source, Amount, PlanAccount, Description)
//
// 回傳:
//
//	domain.Receipt: 付款後餘額
//	error: 另外可能為 ErrInsufficientFunds
func (e *TransactionEngine) Pay(ctx context.Context, req domain.OperationRequest) (domain.Receipt, error) {
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return e.reject(domain.OperationPayment, req, err)
	}
	account, err := e.store.FindByOwnerAndTag(ctx, req.Source.Login, req.Source.Tag)
	if err != nil {
		return e.reject(domain.OperationPayment, req, err)
	}
	plan, err := e.store.ResolvePlanAccount(ctx, req.PlanAccount, req.Source.Login)
	if err != nil {
		return e.reject(domain.OperationPayment, req, err)
	}

	var newBalance decimal.Decimal
	err = e.execute(ctx, []int64{account.ID}, func(ctx context.Context, tx Tx, accounts map[int64]*domain.Account) error {
		acc := accounts[account.ID]
		// 餘額檢查必須使用鎖內重新讀取的值
		if err := acc.Debit(req.Amount); err != nil {
			return err
		}
		if err := tx.AppendPosting(ctx, e.newPosting(acc.ID, acc.ID, plan, req.Amount.Neg(), req.Description)); err != nil {
			return err
		}
		if err := tx.SaveAccount(ctx, acc); err != nil {
			return err
		}
		newBalance = acc.Balance
		return nil
	})
	if err != nil {
		return e.reject(domain.OperationPayment, req, err)
	}

	e.logger.Info("operation committed",
		zap.Stringer("op", domain.OperationPayment),
		zap.Int64("account_id", account.ID),
		zap.String("amount", req.Amount.String()),
		zap.String("new_balance", newBalance.String()),
	)
	return domain.Receipt{NewBalance: newBalance, Message: "payment completed"}, nil
}

// Transfer 轉帳
//
// 來源與目的帳戶各自以自己的舊餘額計算新餘額，兩筆分錄互為相反數，
// 兩個帳戶與兩筆分錄在同一個 Tx 內提交。
//
// 參數:
//
//	ctx: 上下文
//	req: 交易請求 (Source, Destination, Amount, PlanAccount, Description)
//
// 回傳:
//
//	domain.Receipt: Message 含金額與雙方帳戶；NewBalance 為來源帳戶餘額
//	error: ErrInvalidAmount / ErrAccountNotFound / ErrPlanAccountNotFound / ErrInsufficientFunds / ErrPersistenceFailure
func (e *TransactionEngine) Transfer(ctx context.Context, req domain.OperationRequest) (domain.Receipt, error) {
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return e.reject(domain.OperationTransfer, req, err)
	}
	if req.Destination == nil {
		return e.reject(domain.OperationTransfer, req, fmt.Errorf("%w: transfer destination is required", domain.ErrAccountNotFound))
	}
	source, err := e.store.FindByOwnerAndTag(ctx, req.Source.Login, req.Source.Tag)
	if err != nil {
		return e.reject(domain.OperationTransfer, req, err)
	}
	destination, err := e.store.FindByOwnerAndTag(ctx, req.Destination.Login, req.Destination.Tag)
	if err != nil {
		return e.reject(domain.OperationTransfer, req, err)
	}
	plan, err := e.store.ResolvePlanAccount(ctx, req.PlanAccount, req.Source.Login)
	if err != nil {
		return e.reject(domain.OperationTransfer, req, err)
	}

	var newBalance decimal.Decimal
	lockIDs := domain.LockIDs(source.ID, destination.ID)
	err = e.execute(ctx, lockIDs, func(ctx context.Context, tx Tx, accounts map[int64]*domain.Account) error {
		from := accounts[source.ID]
		to := accounts[destination.ID]

		if err := from.Debit(req.Amount); err != nil {
			return err
		}
		if err := to.Credit(req.Amount); err != nil {
			return err
		}

		// 出帳分錄 (來源端) 與入帳分錄 (目的端)
		if err := tx.AppendPosting(ctx, e.newPosting(from.ID, to.ID, plan, req.Amount.Neg(), req.Description)); err != nil {
			return err
		}
		if err := tx.AppendPosting(ctx, e.newPosting(to.ID, from.ID, plan, req.Amount, req.Description)); err != nil {
			return err
		}

		for _, id := range lockIDs {
			if err := tx.SaveAccount(ctx, accounts[id]); err != nil {
				return err
			}
		}
		newBalance = from.Balance
		return nil
	})
	if err != nil {
		return e.reject(domain.OperationTransfer, req, err)
	}

	e.logger.Info("operation committed",
		zap.Stringer("op", domain.OperationTransfer),
		zap.Int64("account_id", source.ID),
		zap.Int64("counter_account_id", destination.ID),
		zap.String("amount", req.Amount.String()),
		zap.String("new_balance", newBalance.String()),
	)
	return domain.Receipt{
		NewBalance: newBalance,
		Message: fmt.Sprintf("transfer of %s from %s to %s completed",
			req.Amount.StringFixed(2), source.Ref(), destination.Ref()),
	}, nil
}

// Balance 取得帳戶餘額
func (e *TransactionEngine) Balance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := e.store.FindByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// execute 取得帳戶鎖後，在同一個 Tx 內重新讀取帳戶並執行 fn
func (e *TransactionEngine) execute(ctx context.Context, ids []int64, fn func(ctx context.Context, tx Tx, accounts map[int64]*domain.Account) error) error {
	unlock, err := e.locker.Lock(ctx, ids)
	if err != nil {
		return fmt.Errorf("%w: acquire account locks: %v", domain.ErrPersistenceFailure, err)
	}
	// 必須在 Commit/Rollback 之後才釋放
	defer unlock()

	return e.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		accounts, err := tx.LoadForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if _, ok := accounts[id]; !ok {
				return domain.ErrAccountNotFound
			}
		}
		return fn(ctx, tx, accounts)
	})
}

func (e *TransactionEngine) newPosting(accountID, counterID int64, plan *domain.PlanAccount, amount decimal.Decimal, description string) *domain.Posting {
	return &domain.Posting{
		ID:               uuid.New(),
		CreatedAt:        e.now(),
		AccountID:        accountID,
		CounterAccountID: counterID,
		PlanAccountID:    plan.ID,
		PlanAccountName:  plan.Name,
		Amount:           amount,
		Description:      description,
	}
}

func (e *TransactionEngine) reject(op domain.OperationType, req domain.OperationRequest, err error) (domain.Receipt, error) {
	fields := []zap.Field{
		zap.Stringer("op", op),
		zap.Stringer("source", req.Source),
		zap.String("amount", req.Amount.String()),
		zap.Error(err),
	}
	if req.Destination != nil {
		fields = append(fields, zap.Stringer("destination", req.Destination))
	}
	if errors.Is(err, domain.ErrPersistenceFailure) {
		e.logger.Error("operation failed", fields...)
	} else {
		e.logger.Warn("operation rejected", fields...)
	}
	return domain.Receipt{}, err
}
