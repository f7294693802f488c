package usecase

import (
	"context"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
)

// StatementService 唯讀查詢：對帳單與帳戶列表
type StatementService struct {
	directory AccountDirectory
	journal   PostingJournal
}

func NewStatementService(directory AccountDirectory, journal PostingJournal) *StatementService {
	return &StatementService{
		directory: directory,
		journal:   journal,
	}
}

// Statement 取得對帳單
//
// 參數:
//
//	ctx: 上下文
//	login, tag: 帳戶參照
//	rng: 查詢區間 (含頭尾)，nil 表示全部
//
// 回傳:
//
//	domain.Statement: 目前餘額與依時間遞增的分錄
//	error: ErrAccountNotFound / ErrInvalidDateRange / ErrPersistenceFailure
func (s *StatementService) Statement(ctx context.Context, login string, tag domain.Tag, rng *domain.DateRange) (domain.Statement, error) {
	if err := rng.Validate(); err != nil {
		return domain.Statement{}, err
	}
	found, err := s.directory.FindByOwnerAndTag(ctx, login, tag)
	if err != nil {
		return domain.Statement{}, err
	}
	// 餘額以快照為準，不使用上面查到的帳戶
	account, postings, err := s.journal.Snapshot(ctx, found.ID, rng)
	if err != nil {
		return domain.Statement{}, err
	}

	// 對方帳戶參照，同一帳戶只查一次
	refs := map[int64]domain.AccountRef{account.ID: account.Ref()}
	lines := make([]domain.StatementLine, 0, len(postings))
	for _, p := range postings {
		ref, ok := refs[p.CounterAccountID]
		if !ok {
			counter, err := s.directory.FindByID(ctx, p.CounterAccountID)
			if err != nil {
				return domain.Statement{}, err
			}
			ref = counter.Ref()
			refs[p.CounterAccountID] = ref
		}
		lines = append(lines, domain.StatementLine{
			CreatedAt:       p.CreatedAt,
			CounterAccount:  ref,
			PlanAccountName: p.PlanAccountName,
			Amount:          p.Amount,
			Description:     p.Description,
		})
	}

	return domain.Statement{
		Account:  account.Ref(),
		Balance:  account.Balance,
		Postings: lines,
	}, nil
}

// Account 以 (login, tag) 取得帳戶
func (s *StatementService) Account(ctx context.Context, login string, tag domain.Tag) (*domain.Account, error) {
	return s.directory.FindByOwnerAndTag(ctx, login, tag)
}

// Accounts 列出擁有者的所有帳戶
func (s *StatementService) Accounts(ctx context.Context, login string) ([]domain.Account, error) {
	return s.directory.FindAllByOwner(ctx, login)
}
