package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-account-ledger/pkg/mysql"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Login     string          `gorm:"size:50;not null;uniqueIndex:ux_accounts_login_tag"`
	Tag       string          `gorm:"size:16;not null;uniqueIndex:ux_accounts_login_tag"`
	Name      string          `gorm:"size:100"`
	Balance   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Version   int64           `gorm:"not null;default:0"`
	CreatedAt time.Time       `gorm:"type:datetime(6)"`
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlPlanAccount 對應資料庫的 plan_accounts 表
type sqlPlanAccount struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"size:100;not null;uniqueIndex:ux_plan_accounts_owner_name"`
	OwnerLogin string `gorm:"size:50;not null;uniqueIndex:ux_plan_accounts_owner_name"`
}

func (*sqlPlanAccount) TableName() string {
	return "plan_accounts"
}

// sqlPosting 對應資料庫的 postings 表
// Seq 自動遞增，作為同一時間分錄的排序依據
type sqlPosting struct {
	Seq              int64           `gorm:"primaryKey;autoIncrement"`
	RefID            []byte          `gorm:"column:ref_id;type:binary(16);uniqueIndex"` // 對應 domain.Posting.ID
	AccountID        int64           `gorm:"not null;index:ix_postings_account_created,priority:1"`
	CreatedAt        time.Time       `gorm:"type:datetime(6);not null;index:ix_postings_account_created,priority:2"`
	CounterAccountID int64           `gorm:"not null"`
	PlanAccountID    int64           `gorm:"not null"`
	PlanAccountName  string          `gorm:"size:100;not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Description      string          `gorm:"size:255"`
}

func (*sqlPosting) TableName() string {
	return "postings"
}

// MySQLStore 以 MySQL (GORM) 實作的帳本儲存
type MySQLStore struct {
	client *mysql.Client
}

func NewMySQLStore(client *mysql.Client) *MySQLStore {
	return &MySQLStore{
		client: client,
	}
}

// Migrate 建立/更新資料表
func (s *MySQLStore) Migrate(ctx context.Context) error {
	return s.client.DB().WithContext(ctx).AutoMigrate(&sqlAccount{}, &sqlPlanAccount{}, &sqlPosting{})
}

// OpenAccount 開戶
func (s *MySQLStore) OpenAccount(ctx context.Context, login string, tag domain.Tag, name string, opening decimal.Decimal) (*domain.Account, error) {
	if err := domain.ValidateAmount(opening); err != nil {
		return nil, err
	}
	db := s.client.DB().WithContext(ctx)

	var count int64
	if err := db.Model(&sqlAccount{}).Where("login = ? AND tag = ?", login, string(tag)).Count(&count).Error; err != nil {
		return nil, persistence("count accounts", err)
	}
	if count > 0 {
		return nil, domain.ErrAccountAlreadyExists
	}

	row := sqlAccount{Login: login, Tag: string(tag), Name: name, Balance: opening, CreatedAt: time.Now()}
	if err := db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAccountAlreadyExists
		}
		return nil, persistence("create account", err)
	}
	return row.toDomain(), nil
}

// AddPlanAccount 登錄科目，已存在則回傳既有科目
func (s *MySQLStore) AddPlanAccount(ctx context.Context, name string, ownerLogin string) (*domain.PlanAccount, error) {
	row := sqlPlanAccount{Name: name, OwnerLogin: ownerLogin}
	err := s.client.DB().WithContext(ctx).
		Where("name = ? AND owner_login = ?", name, ownerLogin).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, persistence("add plan account", err)
	}
	return &domain.PlanAccount{ID: row.ID, Name: row.Name, OwnerLogin: row.OwnerLogin}, nil
}

// FindByOwnerAndTag 以 (login, tag) 取得帳戶
func (s *MySQLStore) FindByOwnerAndTag(ctx context.Context, login string, tag domain.Tag) (*domain.Account, error) {
	var row sqlAccount
	err := s.client.DB().WithContext(ctx).Where("login = ? AND tag = ?", login, string(tag)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, persistence("find account", err)
	}
	return row.toDomain(), nil
}

// FindByID 以 ID 取得帳戶
func (s *MySQLStore) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	var row sqlAccount
	err := s.client.DB().WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, persistence("find account", err)
	}
	return row.toDomain(), nil
}

// FindAllByOwner 取得擁有者的所有帳戶
func (s *MySQLStore) FindAllByOwner(ctx context.Context, login string) ([]domain.Account, error) {
	var rows []sqlAccount
	if err := s.client.DB().WithContext(ctx).Where("login = ?", login).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, persistence("list accounts", err)
	}
	out := make([]domain.Account, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}
	return out, nil
}

// ResolvePlanAccount 取得擁有者範圍內的科目
func (s *MySQLStore) ResolvePlanAccount(ctx context.Context, name string, ownerLogin string) (*domain.PlanAccount, error) {
	var row sqlPlanAccount
	err := s.client.DB().WithContext(ctx).Where("name = ? AND owner_login = ?", name, ownerLogin).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanAccountNotFound
		}
		return nil, persistence("resolve plan account", err)
	}
	return &domain.PlanAccount{ID: row.ID, Name: row.Name, OwnerLogin: row.OwnerLogin}, nil
}

// ListByAccount 依時間遞增回傳分錄
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//	rng: 查詢區間 (含頭尾)，nil 表示全部
//
// 回傳:
//
//	[]domain.Posting: 分錄
//	error: ErrPersistenceFailure
func (s *MySQLStore) ListByAccount(ctx context.Context, accountID int64, rng *domain.DateRange) ([]domain.Posting, error) {
	return listPostings(s.client.DB().WithContext(ctx), accountID, rng)
}

// Snapshot 在唯讀 REPEATABLE READ 交易內讀取帳戶與分錄，兩者來自同一個 InnoDB 快照
func (s *MySQLStore) Snapshot(ctx context.Context, accountID int64, rng *domain.DateRange) (*domain.Account, []domain.Posting, error) {
	var (
		account  *domain.Account
		postings []domain.Posting
	)
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	err := s.client.DB().WithContext(ctx).Transaction(func(db *gorm.DB) error {
		var row sqlAccount
		if err := db.Where("id = ?", accountID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return persistence("find account", err)
		}
		account = row.toDomain()

		var err error
		postings, err = listPostings(db, accountID, rng)
		return err
	}, opts)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) || errors.Is(err, domain.ErrPersistenceFailure) {
			return nil, nil, err
		}
		return nil, nil, persistence("snapshot", err)
	}
	return account, postings, nil
}

func listPostings(db *gorm.DB, accountID int64, rng *domain.DateRange) ([]domain.Posting, error) {
	q := db.Where("account_id = ?", accountID)
	if rng != nil {
		q = q.Where("created_at >= ? AND created_at <= ?", rng.From, rng.To)
	}
	var rows []sqlPosting
	if err := q.Order("created_at ASC, seq ASC").Find(&rows).Error; err != nil {
		return nil, persistence("list postings", err)
	}
	out := make([]domain.Posting, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toDomain()
		if err != nil {
			return nil, persistence("decode posting", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// WithinTx 在一個資料庫交易內執行 fn
//
// 參數:
//
//	ctx: 上下文
//	fn: 交易內容，回傳錯誤時 Rollback
//
// 回傳:
//
//	error: fn 的錯誤 (原樣回傳)，或 ErrPersistenceFailure (Begin/Commit 失敗)
func (s *MySQLStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx usecase.Tx) error) error {
	var fnErr error
	err := s.client.DB().WithContext(ctx).Transaction(func(db *gorm.DB) error {
		fnErr = fn(ctx, &gormTx{db: db})
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return persistence("commit", err)
	}
	return nil
}

// gormTx 包裝 *gorm.DB 交易
type gormTx struct {
	db *gorm.DB
}

// LoadForUpdate 取得鎖定帳號 悲觀鎖 (SELECT ... FOR UPDATE)，依 ID 遞增鎖定
func (t *gormTx) LoadForUpdate(ctx context.Context, ids []int64) (map[int64]*domain.Account, error) {
	var rows []sqlAccount
	if err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, persistence("lock accounts", err)
	}
	out := make(map[int64]*domain.Account, len(rows))
	for i := range rows {
		out[rows[i].ID] = rows[i].toDomain()
	}
	return out, nil
}

// SaveAccount 條件更新：只有 version 與讀取時相同才寫入
func (t *gormTx) SaveAccount(ctx context.Context, account *domain.Account) error {
	res := t.db.Model(&sqlAccount{}).
		Where("id = ? AND version = ?", account.ID, account.Version).
		Updates(map[string]any{
			"balance": account.Balance,
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return persistence("save account", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: account %d was modified concurrently", domain.ErrPersistenceFailure, account.ID)
	}
	account.Version++
	return nil
}

// AppendPosting 建立分錄紀錄
func (t *gormTx) AppendPosting(ctx context.Context, posting *domain.Posting) error {
	row := sqlPosting{
		RefID:            posting.ID[:],
		AccountID:        posting.AccountID,
		CreatedAt:        posting.CreatedAt,
		CounterAccountID: posting.CounterAccountID,
		PlanAccountID:    posting.PlanAccountID,
		PlanAccountName:  posting.PlanAccountName,
		Amount:           posting.Amount,
		Description:      posting.Description,
	}
	if err := t.db.Create(&row).Error; err != nil {
		return persistence("append posting", err)
	}
	return nil
}

func (r *sqlAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:        r.ID,
		Login:     r.Login,
		Tag:       domain.Tag(r.Tag),
		Name:      r.Name,
		Balance:   r.Balance,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
	}
}

func (r *sqlPosting) toDomain() (domain.Posting, error) {
	id, err := uuid.FromBytes(r.RefID)
	if err != nil {
		return domain.Posting{}, err
	}
	return domain.Posting{
		ID:               id,
		CreatedAt:        r.CreatedAt,
		AccountID:        r.AccountID,
		CounterAccountID: r.CounterAccountID,
		PlanAccountID:    r.PlanAccountID,
		PlanAccountName:  r.PlanAccountName,
		Amount:           r.Amount,
		Description:      r.Description,
	}, nil
}

func persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrPersistenceFailure, op, err)
}

var (
	_ usecase.Store    = (*MySQLStore)(nil)
	_ usecase.Registry = (*MySQLStore)(nil)
)
