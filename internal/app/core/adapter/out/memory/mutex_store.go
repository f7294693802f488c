package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-account-ledger/pkg/wal"
)

// WAL 紀錄類型
const (
	recordOpenAccount = "open_account"
	recordAddPlan     = "add_plan"
	recordCommit      = "commit"
)

// walRecord 一筆 WAL 紀錄
// commit 紀錄保存提交後的帳戶狀態 (絕對值) 與新增的分錄，重放時直接覆蓋
type walRecord struct {
	Kind     string              `json:"kind"`
	Account  *domain.Account     `json:"account,omitempty"`
	Plan     *domain.PlanAccount `json:"plan,omitempty"`
	Accounts []domain.Account    `json:"accounts,omitempty"`
	Postings []domain.Posting    `json:"postings,omitempty"`
}

type planKey struct {
	name  string
	owner string
}

// MutexStore 是一個使用 Mutex 實現的記憶體帳本
//
// 結構:
//
//	mu: RWMutex 保護以下所有資料
//	accounts: 帳戶 ID -> 帳戶
//	byRef: (login, tag) -> 帳戶 ID
//	plans: (科目名稱, 擁有者) -> 科目
//	postings: 依寫入順序排列的分錄
//	byAccount: 帳戶 ID -> postings 索引
//	wal: Write-Ahead Log 實例 (nil 表示不落地)
type MutexStore struct {
	mu        sync.RWMutex
	accounts  map[int64]*domain.Account
	byRef     map[domain.AccountRef]int64
	plans     map[planKey]*domain.PlanAccount
	postings  []domain.Posting
	byAccount map[int64][]int
	nextID    int64
	nextPlan  int64
	wal       *wal.WAL
}

// NewMutexStore 建立一個新的 MutexStore 實例，並從 WAL 恢復狀態
//
// 參數:
//
//	w: Write-Ahead Log 實例，可為 nil
//
// 回傳:
//
//	*MutexStore: MutexStore 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewMutexStore(w *wal.WAL) (*MutexStore, error) {
	s := &MutexStore{
		accounts:  make(map[int64]*domain.Account),
		byRef:     make(map[domain.AccountRef]int64),
		plans:     make(map[planKey]*domain.PlanAccount),
		byAccount: make(map[int64][]int),
		wal:       w,
	}
	if w != nil {
		if err := s.recoverFromWAL(); err != nil {
			return nil, fmt.Errorf("recover from wal: %w", err)
		}
	}
	return s, nil
}

// recoverFromWAL 從 WAL 檔案恢復帳本狀態
// 只有 NewMutexStore 呼叫，無需 Lock (單執行緒)
func (s *MutexStore) recoverFromWAL() error {
	return s.wal.ReadAll(func(jsonRaw []byte) error {
		var rec walRecord
		if err := json.Unmarshal(jsonRaw, &rec); err != nil {
			return err
		}
		switch rec.Kind {
		case recordOpenAccount:
			if rec.Account != nil {
				s.putAccount(*rec.Account)
			}
		case recordAddPlan:
			if rec.Plan != nil {
				s.putPlan(*rec.Plan)
			}
		case recordCommit:
			s.apply(rec.Accounts, rec.Postings)
		}
		return nil
	})
}

// OpenAccount 開戶
//
// 參數:
//
//	ctx: 上下文
//	login, tag: 帳戶參照，同一組合只能有一個帳戶
//	name: 帳戶名稱
//	opening: 開戶餘額，不得為負
//
// 回傳:
//
//	*domain.Account: 新帳戶 (拷貝)
//	error: ErrInvalidAmount / ErrAccountAlreadyExists / ErrPersistenceFailure
func (s *MutexStore) OpenAccount(ctx context.Context, login string, tag domain.Tag, name string, opening decimal.Decimal) (*domain.Account, error) {
	if err := domain.ValidateAmount(opening); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ref := domain.AccountRef{Login: login, Tag: tag}
	if _, ok := s.byRef[ref]; ok {
		return nil, domain.ErrAccountAlreadyExists
	}
	acc := domain.Account{
		ID:        s.nextID + 1,
		Login:     login,
		Tag:       tag,
		Name:      name,
		Balance:   opening,
		CreatedAt: time.Now(),
	}
	if err := s.writeWAL(walRecord{Kind: recordOpenAccount, Account: &acc}); err != nil {
		return nil, err
	}
	s.putAccount(acc)
	return &acc, nil
}

// AddPlanAccount 登錄科目，已存在則回傳既有科目
func (s *MutexStore) AddPlanAccount(ctx context.Context, name string, ownerLogin string) (*domain.PlanAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if plan, ok := s.plans[planKey{name: name, owner: ownerLogin}]; ok {
		cp := *plan
		return &cp, nil
	}
	plan := domain.PlanAccount{ID: s.nextPlan + 1, Name: name, OwnerLogin: ownerLogin}
	if err := s.writeWAL(walRecord{Kind: recordAddPlan, Plan: &plan}); err != nil {
		return nil, err
	}
	s.putPlan(plan)
	return &plan, nil
}

// FindByOwnerAndTag 以 (login, tag) 取得帳戶拷貝
func (s *MutexStore) FindByOwnerAndTag(ctx context.Context, login string, tag domain.Tag) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byRef[domain.AccountRef{Login: login, Tag: tag}]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *s.accounts[id]
	return &cp, nil
}

// FindByID 以 ID 取得帳戶拷貝
func (s *MutexStore) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

// FindAllByOwner 依 ID 遞增回傳擁有者的所有帳戶
func (s *MutexStore) FindAllByOwner(ctx context.Context, login string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, 0)
	for _, acc := range s.accounts {
		if acc.Login == login {
			out = append(out, *acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ResolvePlanAccount 取得擁有者範圍內的科目
func (s *MutexStore) ResolvePlanAccount(ctx context.Context, name string, ownerLogin string) (*domain.PlanAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plan, ok := s.plans[planKey{name: name, owner: ownerLogin}]
	if !ok {
		return nil, domain.ErrPlanAccountNotFound
	}
	cp := *plan
	return &cp, nil
}

// ListByAccount 依時間遞增回傳分錄，同一時間依寫入順序
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//	rng: 查詢區間 (含頭尾)，nil 表示全部
//
// 回傳:
//
//	[]domain.Posting: 每次呼叫都是新的 slice
//	error: 查詢錯誤
func (s *MutexStore) ListByAccount(ctx context.Context, accountID int64, rng *domain.DateRange) ([]domain.Posting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked(accountID, rng), nil
}

// Snapshot 在同一個讀鎖內取得帳戶與分錄
func (s *MutexStore) Snapshot(ctx context.Context, accountID int64, rng *domain.DateRange) (*domain.Account, []domain.Posting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, nil, domain.ErrAccountNotFound
	}
	cp := *acc
	return &cp, s.listLocked(accountID, rng), nil
}

// listLocked 呼叫者須持有 s.mu
func (s *MutexStore) listLocked(accountID int64, rng *domain.DateRange) []domain.Posting {
	idx := s.byAccount[accountID]
	out := make([]domain.Posting, 0, len(idx))
	for _, i := range idx {
		p := s.postings[i]
		if rng.Contains(p.CreatedAt) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// WithinTx 執行 fn，成功時先寫 WAL 再套用到記憶體
//
// 參數:
//
//	ctx: 上下文
//	fn: 交易內容，回傳錯誤時所有暫存變更都會被丟棄
//
// 回傳:
//
//	error: fn 的錯誤，或 ErrPersistenceFailure (WAL 寫入失敗 / 版本衝突 / ctx 已取消)
func (s *MutexStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx usecase.Tx) error) error {
	tx := &mutexTx{
		store:   s,
		loaded:  make(map[int64]int64),
		staged:  make(map[int64]domain.Account),
		ordered: make([]int64, 0, 2),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	return s.commit(tx)
}

// commit 檢查版本、寫 WAL、套用
func (s *MutexStore) commit(tx *mutexTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]domain.Account, 0, len(tx.ordered))
	for _, id := range tx.ordered {
		acc := tx.staged[id]
		current, ok := s.accounts[id]
		if !ok {
			return domain.ErrAccountNotFound
		}
		if current.Version != tx.loaded[id] {
			return fmt.Errorf("%w: account %d was modified concurrently", domain.ErrPersistenceFailure, id)
		}
		acc.Version = current.Version + 1
		accounts = append(accounts, acc)
	}
	if len(accounts) == 0 && len(tx.postings) == 0 {
		return nil
	}

	// 1. 寫入 WAL (Critical Path)
	if err := s.writeWAL(walRecord{Kind: recordCommit, Accounts: accounts, Postings: tx.postings}); err != nil {
		return err
	}
	// 2. 套用到記憶體
	s.apply(accounts, tx.postings)
	return nil
}

// writeWAL 呼叫端必須持有寫鎖
func (s *MutexStore) writeWAL(rec walRecord) error {
	if s.wal == nil {
		return nil
	}
	if err := s.wal.Write(rec); err != nil {
		return fmt.Errorf("%w: wal write: %v", domain.ErrPersistenceFailure, err)
	}
	return nil
}

func (s *MutexStore) apply(accounts []domain.Account, postings []domain.Posting) {
	for i := range accounts {
		acc := accounts[i]
		s.accounts[acc.ID] = &acc
	}
	for _, p := range postings {
		s.postings = append(s.postings, p)
		s.byAccount[p.AccountID] = append(s.byAccount[p.AccountID], len(s.postings)-1)
	}
}

func (s *MutexStore) putAccount(acc domain.Account) {
	s.accounts[acc.ID] = &acc
	s.byRef[acc.Ref()] = acc.ID
	if acc.ID > s.nextID {
		s.nextID = acc.ID
	}
}

func (s *MutexStore) putPlan(plan domain.PlanAccount) {
	s.plans[planKey{name: plan.Name, owner: plan.OwnerLogin}] = &plan
	if plan.ID > s.nextPlan {
		s.nextPlan = plan.ID
	}
}

// mutexTx 暫存一次交易的變更，提交前不會影響 MutexStore
type mutexTx struct {
	store    *MutexStore
	loaded   map[int64]int64 // 帳戶 ID -> 讀取時的版本
	staged   map[int64]domain.Account
	ordered  []int64
	postings []domain.Posting
}

// LoadForUpdate 回傳帳戶拷貝；互斥由 usecase.Locker 保證
func (t *mutexTx) LoadForUpdate(ctx context.Context, ids []int64) (map[int64]*domain.Account, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	out := make(map[int64]*domain.Account, len(ids))
	for _, id := range ids {
		acc, ok := t.store.accounts[id]
		if !ok {
			continue
		}
		cp := *acc
		t.loaded[id] = acc.Version
		out[id] = &cp
	}
	return out, nil
}

func (t *mutexTx) SaveAccount(ctx context.Context, account *domain.Account) error {
	if _, ok := t.loaded[account.ID]; !ok {
		return fmt.Errorf("%w: account %d saved without being loaded", domain.ErrPersistenceFailure, account.ID)
	}
	if _, ok := t.staged[account.ID]; !ok {
		t.ordered = append(t.ordered, account.ID)
	}
	t.staged[account.ID] = *account
	return nil
}

func (t *mutexTx) AppendPosting(ctx context.Context, posting *domain.Posting) error {
	t.postings = append(t.postings, *posting)
	return nil
}

var (
	_ usecase.Store    = (*MutexStore)(nil)
	_ usecase.Registry = (*MutexStore)(nil)
)
