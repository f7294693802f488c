package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config 定義 Redis 連線配置
type Config struct {
	Addr     string `yaml:"addr"`     // host:port
	Password string `yaml:"password"` // 密碼 (可空)
	DB       int    `yaml:"db"`       // DB index
}

// NewClient 建立 Redis 客戶端並確認連線
//
// 參數:
//
//	cfg: Config - Redis 連線配置
//	logger: 重試時記錄警告
//
// 回傳值:
//
//	*redis.Client: Redis 客戶端
//	error: 若多次嘗試仍無法連線則回傳錯誤
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	maxRetries := 5
	retryInterval := time.Second

	var err error
	for i := 0; i < maxRetries; i++ {
		if err = client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		if i < maxRetries-1 {
			logger.Warn("failed to connect to redis, retrying",
				zap.Int("attempt", i+1),
				zap.Int("max_attempts", maxRetries),
				zap.Duration("retry_in", retryInterval),
				zap.Error(err),
			)
			time.Sleep(retryInterval)
		}
	}
	_ = client.Close()
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, err)
}
