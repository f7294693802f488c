package local

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_MutualExclusion(t *testing.T) {
	l := NewLocker()
	ctx := context.Background()

	var inside, maxInside atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, []int64{1})
			if !assert.NoError(t, err) {
				return
			}
			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), maxInside.Load())
}

func TestLocker_OppositeOrderDoesNotDeadlock(t *testing.T) {
	l := NewLocker()
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for i := 0; i < 200; i++ {
			wg.Add(2)
			// 呼叫端一律傳入遞增順序，模擬 A->B 與 B->A 兩種轉帳
			go func() {
				defer wg.Done()
				unlock, err := l.Lock(ctx, []int64{1, 2})
				if err == nil {
					unlock()
				}
			}()
			go func() {
				defer wg.Done()
				unlock, err := l.Lock(ctx, []int64{1, 2})
				if err == nil {
					unlock()
				}
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("locker deadlocked")
	}
}

func TestLocker_CanceledContext(t *testing.T) {
	l := NewLocker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Lock(ctx, []int64{1})
	assert.ErrorIs(t, err, context.Canceled)

	// 取消的請求不能留下鎖
	unlock, err := l.Lock(context.Background(), []int64{1})
	require.NoError(t, err)
	unlock()
}
