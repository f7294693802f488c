package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	grpcpkg "github.com/JoeShih716/go-account-ledger/pkg/grpc"
	"github.com/JoeShih716/go-account-ledger/pkg/logger"
	pb "github.com/JoeShih716/go-account-ledger/proto"
)

const (
	Target      = "localhost:50051"
	TotalCount  = 100000
	Concurrency = 500
	Amount      = "0.10"
	PlanAccount = "load-test"
)

// 壓測目標帳戶，需事先 seed (見 config/config.yaml)
var account = &pb.AccountRef{Login: "alice", Tag: "BRL"}

func main() {
	log, err := logger.New(logger.Config{Development: true})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// 失敗計數放在 client 攔截器
	var failed atomic.Int64
	pool := grpcpkg.NewPool(grpcpkg.WithInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			failed.Add(1)
		}
		return err
	}))
	defer pool.Close()

	conn, err := pool.GetConnection(Target)
	if err != nil {
		log.Fatal("did not connect", zap.Error(err))
	}
	c := pb.NewLedgerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	before, err := c.GetBalance(ctx, &pb.GetBalanceRequest{Account: account})
	if err != nil {
		log.Fatal("get balance failed", zap.Error(err))
	}

	var wg sync.WaitGroup
	wg.Add(TotalCount)
	sem := make(chan struct{}, Concurrency)
	startTime := time.Now()

	for i := 0; i < TotalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			_, err := c.Deposit(ctx, &pb.OperationRequest{
				Source:      account,
				Amount:      Amount,
				PlanAccount: PlanAccount,
				Description: fmt.Sprintf("load test #%d", idx),
			})
			if err != nil && idx%10000 == 0 {
				log.Warn("deposit failed", zap.Int("idx", idx), zap.Error(err))
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(startTime)

	after, err := c.GetBalance(ctx, &pb.GetBalanceRequest{Account: account})
	if err != nil {
		log.Fatal("get balance failed", zap.Error(err))
	}

	// 驗證：餘額增加量 = 成功筆數 * 金額
	succeeded := int64(TotalCount) - failed.Load()
	expected := decimal.RequireFromString(before.Balance).
		Add(decimal.RequireFromString(Amount).Mul(decimal.NewFromInt(succeeded)))

	fmt.Printf("Completed %d requests in %v (%d failed)\n", TotalCount, elapsed, failed.Load())
	fmt.Printf("TPS: %.2f\n", float64(TotalCount)/elapsed.Seconds())
	fmt.Printf("Balance: %s -> %s (expected %s)\n", before.Balance, after.Balance, expected.String())
	if !decimal.RequireFromString(after.Balance).Equal(expected) {
		log.Error("balance mismatch", zap.String("expected", expected.String()), zap.String("actual", after.Balance))
	}
}
