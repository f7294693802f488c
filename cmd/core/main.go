package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_adapter "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/in/grpc"
	local_lock "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/lock/local"
	redis_lock "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/lock/redis"
	memory_adapter "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/config"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-account-ledger/pkg/logger"
	"github.com/JoeShih716/go-account-ledger/pkg/mysql"
	"github.com/JoeShih716/go-account-ledger/pkg/redis"
	"github.com/JoeShih716/go-account-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-account-ledger/proto"
)

// ledgerStore 同時提供交易邊界與開戶/科目登錄
type ledgerStore interface {
	usecase.Store
	usecase.Registry
}

func main() {
	// 1. 載入設定
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("ledger exited with error", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx := context.Background()

	// 2. 初始化帳本儲存 (Driven Adapter)
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// 3. 帳戶鎖
	locker, closeLocker, err := openLocker(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLocker()

	// 4. 初始資料
	if err := seed(ctx, store, cfg.Seed, log); err != nil {
		return err
	}

	// 5. 初始化 UseCase
	engine := usecase.NewTransactionEngine(store, locker, usecase.WithLogger(log.Named("engine")))
	statements := usecase.NewStatementService(store, store)

	// 6. 啟動 gRPC Server (Driving Adapter)
	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Addr, err)
	}

	s := grpc.NewServer(grpc.UnaryInterceptor(grpc_adapter.LoggingInterceptor(log.Named("grpc"))))
	pb.RegisterLedgerServiceServer(s, grpc_adapter.NewGrpcServer(engine, statements))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus(pb.LedgerService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	if cfg.Server.Reflection {
		reflection.Register(s) // 方便使用 grpcurl 測試
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting grpc server",
			zap.String("addr", cfg.Server.Addr),
			zap.String("store", string(cfg.Ledger.Store)),
			zap.String("lock", string(cfg.Lock.Backend)),
		)
		serveErr <- s.Serve(lis)
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info("shutting down server", zap.Stringer("signal", sig))
	case err := <-serveErr:
		return fmt.Errorf("failed to serve: %w", err)
	}

	healthServer.Shutdown()
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(cfg.Server.ShutdownTimeout):
		log.Warn("graceful stop timed out, forcing stop")
		s.Stop()
	}
	log.Info("server exited")
	return nil
}

// openStore 依設定建立帳本儲存，回傳的 close 在結束時呼叫
func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (ledgerStore, func(), error) {
	switch cfg.Ledger.Store {
	case config.StoreMySQL:
		dbClient, err := mysql.NewClient(cfg.MySQL, log.Named("mysql"))
		if err != nil {
			return nil, nil, err
		}
		log.Info("connected to mysql", zap.String("host", cfg.MySQL.Host))
		store := mysql_adapter.NewMySQLStore(dbClient)
		if err := store.Migrate(ctx); err != nil {
			_ = dbClient.Close()
			return nil, nil, fmt.Errorf("failed to migrate: %w", err)
		}
		return store, func() { _ = dbClient.Close() }, nil

	case config.StoreMemory:
		var walFile *wal.WAL
		if cfg.Ledger.WALPath != "" {
			w, err := wal.NewWAL(cfg.Ledger.WALPath)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init wal: %w", err)
			}
			walFile = w
		}
		store, err := memory_adapter.NewMutexStore(walFile)
		if err != nil {
			if walFile != nil {
				_ = walFile.Close()
			}
			return nil, nil, err
		}
		log.Info("memory ledger ready", zap.String("wal", cfg.Ledger.WALPath))
		return store, func() {
			if walFile != nil {
				_ = walFile.Close()
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", cfg.Ledger.Store)
}

// openLocker 依設定建立帳戶鎖
func openLocker(ctx context.Context, cfg config.Config, log *zap.Logger) (usecase.Locker, func(), error) {
	if cfg.Lock.Backend != config.LockRedis {
		return local_lock.NewLocker(), func() {}, nil
	}
	client, err := redis.NewClient(ctx, cfg.Lock.Redis, log.Named("redis"))
	if err != nil {
		return nil, nil, err
	}
	return redis_lock.NewLocker(client, cfg.Lock.Options, log.Named("lock")), func() { _ = client.Close() }, nil
}

// seed 建立設定檔中的帳戶與科目，已存在的帳戶略過
func seed(ctx context.Context, registry usecase.Registry, cfg config.SeedConfig, log *zap.Logger) error {
	for _, a := range cfg.Accounts {
		balance, err := a.OpeningBalance()
		if err != nil {
			return fmt.Errorf("seed account %s/%s: %w", a.Login, a.Tag, err)
		}
		_, err = registry.OpenAccount(ctx, a.Login, domain.Tag(a.Tag), a.Name, balance)
		switch {
		case errors.Is(err, domain.ErrAccountAlreadyExists):
			continue
		case err != nil:
			return fmt.Errorf("seed account %s/%s: %w", a.Login, a.Tag, err)
		}
		log.Info("account opened", zap.String("login", a.Login), zap.String("tag", a.Tag), zap.String("balance", balance.String()))
	}
	for _, p := range cfg.PlanAccounts {
		if _, err := registry.AddPlanAccount(ctx, p.Name, p.Owner); err != nil {
			return fmt.Errorf("seed plan account %s: %w", p.Name, err)
		}
	}
	return nil
}
