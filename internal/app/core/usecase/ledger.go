package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
)

// AccountDirectory 查詢帳戶
type AccountDirectory interface {
	// FindByOwnerAndTag 以 (login, tag) 取得帳戶，找不到回傳 domain.ErrAccountNotFound
	FindByOwnerAndTag(ctx context.Context, login string, tag domain.Tag) (*domain.Account, error)
	// FindByID 以內部 ID 取得帳戶
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	// FindAllByOwner 取得擁有者的所有帳戶 (可能為空)
	FindAllByOwner(ctx context.Context, login string) ([]domain.Account, error)
}

// ChartOfAccounts 查詢科目
type ChartOfAccounts interface {
	// ResolvePlanAccount 找不到回傳 domain.ErrPlanAccountNotFound
	ResolvePlanAccount(ctx context.Context, name string, ownerLogin string) (*domain.PlanAccount, error)
}

// PostingJournal 分錄查詢；寫入只能透過 Tx.AppendPosting
type PostingJournal interface {
	// ListByAccount 依時間遞增回傳分錄，rng 為 nil 時不限區間
	ListByAccount(ctx context.Context, accountID int64, rng *domain.DateRange) ([]domain.Posting, error)
	// Snapshot 在同一個讀取視角下取得帳戶與分錄，餘額與分錄不會跨越一筆提交
	Snapshot(ctx context.Context, accountID int64, rng *domain.DateRange) (*domain.Account, []domain.Posting, error)
}

// Tx 單一原子單位內的寫入操作
type Tx interface {
	// LoadForUpdate 在交易內重新讀取 (並鎖定) 帳戶，ids 必須已遞增排序
	LoadForUpdate(ctx context.Context, ids []int64) (map[int64]*domain.Account, error)
	// SaveAccount 儲存帳戶餘額
	SaveAccount(ctx context.Context, account *domain.Account) error
	// AppendPosting 新增一筆分錄
	AppendPosting(ctx context.Context, posting *domain.Posting) error
}

// Store 是帳務系統的儲存邊界
type Store interface {
	AccountDirectory
	ChartOfAccounts
	PostingJournal
	// WithinTx 執行 fn；fn 回傳 nil 時所有寫入一起提交，否則全部捨棄
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Registry 開戶與科目登錄，不屬於交易引擎；供啟動時的 seed 與測試使用
type Registry interface {
	// OpenAccount 同一 (login, tag) 已存在時回傳 domain.ErrAccountAlreadyExists
	OpenAccount(ctx context.Context, login string, tag domain.Tag, name string, opening decimal.Decimal) (*domain.Account, error)
	// AddPlanAccount 已存在時直接回傳既有科目
	AddPlanAccount(ctx context.Context, name string, ownerLogin string) (*domain.PlanAccount, error)
}

// Locker 帳戶層級互斥鎖
type Locker interface {
	// Lock 依 ids 的順序 (遞增) 取得所有鎖，回傳的 unlock 會釋放全部
	Lock(ctx context.Context, ids []int64) (unlock func(), err error)
}
