package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
)

const keyPrefix = "ledger:account:"

// Options 分散式鎖設定
type Options struct {
	// Expiry 鎖自動過期時間，必須大於一筆交易的最長耗時
	Expiry time.Duration `yaml:"expiry"`
	// Tries 取得鎖的嘗試次數
	Tries int `yaml:"tries"`
	// RetryDelay 每次重試間隔
	RetryDelay time.Duration `yaml:"retry_delay"`
	// DriftFactor RedLock 時鐘漂移係數
	DriftFactor float64 `yaml:"drift_factor"`
}

// DefaultOptions 預設值
func DefaultOptions() Options {
	return Options{
		Expiry:      10 * time.Second,
		Tries:       32,
		RetryDelay:  50 * time.Millisecond,
		DriftFactor: 0.01,
	}
}

// Locker 以 Redis (RedLock) 實作的帳戶鎖，多個服務實例共用同一組帳戶時使用
type Locker struct {
	rs     *redsync.Redsync
	opts   Options
	logger *zap.Logger
}

// NewLocker 建立分散式帳戶鎖
//
// 參數:
//
//	client: go-redis 客戶端
//	opts: 鎖設定，零值欄位使用 DefaultOptions
//	logger: 釋放失敗時記錄
//
// 回傳:
//
//	*Locker: Locker 實例
func NewLocker(client goredislib.UniversalClient, opts Options, logger *zap.Logger) *Locker {
	def := DefaultOptions()
	if opts.Expiry <= 0 {
		opts.Expiry = def.Expiry
	}
	if opts.Tries < 1 {
		opts.Tries = def.Tries
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = def.RetryDelay
	}
	if opts.DriftFactor <= 0 || opts.DriftFactor >= 1 {
		opts.DriftFactor = def.DriftFactor
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locker{
		rs:     redsync.New(goredis.NewPool(client)),
		opts:   opts,
		logger: logger,
	}
}

// Lock 依 ids 順序取得所有帳戶鎖；任一把失敗時釋放已取得的鎖
func (l *Locker) Lock(ctx context.Context, ids []int64) (func(), error) {
	held := make([]*redsync.Mutex, 0, len(ids))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			// 使用獨立 context，確保 ctx 取消後仍能釋放
			if ok, err := held[i].UnlockContext(context.Background()); !ok || err != nil {
				l.logger.Warn("failed to release account lock",
					zap.String("key", held[i].Name()),
					zap.Error(err),
				)
			}
		}
	}

	for _, id := range ids {
		m := l.rs.NewMutex(
			fmt.Sprintf("%s%d", keyPrefix, id),
			redsync.WithExpiry(l.opts.Expiry),
			redsync.WithTries(l.opts.Tries),
			redsync.WithRetryDelay(l.opts.RetryDelay),
			redsync.WithDriftFactor(l.opts.DriftFactor),
		)
		if err := m.LockContext(ctx); err != nil {
			release()
			return nil, fmt.Errorf("lock account %d: %w", id, err)
		}
		held = append(held, m)
	}
	return release, nil
}

var _ usecase.Locker = (*Locker)(nil)
