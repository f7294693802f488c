package local

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
)

// Locker 單一行程內的帳戶鎖：每個帳戶一把 sync.Mutex
type Locker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewLocker() *Locker {
	return &Locker{locks: make(map[int64]*sync.Mutex)}
}

func (l *Locker) get(id int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// Lock 依 ids 順序取得所有帳戶鎖，呼叫端負責傳入遞增排序的 ids
// 取得前先檢查 ctx；sync.Mutex 本身不可取消
func (l *Locker) Lock(ctx context.Context, ids []int64) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	held := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		m := l.get(id)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}, nil
}

var _ usecase.Locker = (*Locker)(nil)
