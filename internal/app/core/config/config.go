package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	redis_lock "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/lock/redis"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-account-ledger/pkg/logger"
	"github.com/JoeShih716/go-account-ledger/pkg/mysql"
	"github.com/JoeShih716/go-account-ledger/pkg/redis"
)

// EnvConfigPath 覆寫設定檔路徑的環境變數
const EnvConfigPath = "LEDGER_CONFIG"

// DefaultPath 預設設定檔路徑
const DefaultPath = "config/config.yaml"

// StoreType 帳本儲存實作
type StoreType string

const (
	StoreMemory StoreType = "memory"
	StoreMySQL  StoreType = "mysql"
)

// LockBackend 帳戶鎖實作
type LockBackend string

const (
	LockLocal LockBackend = "local"
	LockRedis LockBackend = "redis"
)

type Config struct {
	Server ServerConfig  `yaml:"server"`
	Log    logger.Config `yaml:"log"`
	Ledger LedgerConfig  `yaml:"ledger"`
	Lock   LockConfig    `yaml:"lock"`
	MySQL  mysql.Config  `yaml:"mysql"`
	Seed   SeedConfig    `yaml:"seed"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	Reflection      bool          `yaml:"reflection"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LedgerConfig struct {
	Store   StoreType `yaml:"store"`
	WALPath string    `yaml:"wal_path"` // 空字串表示不落地 (僅 memory)
}

// LockConfig expiry/tries/retry_delay/drift_factor 直接寫在 lock 底下
type LockConfig struct {
	Backend            LockBackend  `yaml:"backend"`
	Redis              redis.Config `yaml:"redis"`
	redis_lock.Options `yaml:",inline"`
}

// SeedConfig 啟動時建立的帳戶與科目；已存在的帳戶會被略過
type SeedConfig struct {
	Accounts     []SeedAccount     `yaml:"accounts"`
	PlanAccounts []SeedPlanAccount `yaml:"plan_accounts"`
}

type SeedAccount struct {
	Login   string `yaml:"login"`
	Tag     string `yaml:"tag"`
	Name    string `yaml:"name"`
	Balance string `yaml:"balance"`
}

// OpeningBalance 解析開戶餘額，空字串為 0
func (a SeedAccount) OpeningBalance() (decimal.Decimal, error) {
	if a.Balance == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(a.Balance)
}

type SeedPlanAccount struct {
	Name  string `yaml:"name"`
	Owner string `yaml:"owner"`
}

// Default 回傳預設設定：memory 帳本、local 鎖、監聽 :50051
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":50051",
			Reflection:      true,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: logger.Config{Level: "info"},
		Ledger: LedgerConfig{
			Store:   StoreMemory,
			WALPath: "wal.log",
		},
		Lock: LockConfig{
			Backend: LockLocal,
			Redis:   redis.Config{Addr: "localhost:6379"},
			Options: redis_lock.DefaultOptions(),
		},
	}
}

// Path 回傳設定檔路徑：LEDGER_CONFIG 優先，否則 DefaultPath
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load 讀取 YAML 設定檔並套用在預設值之上
//
// 參數:
//
//	path: 設定檔路徑
//
// 回傳:
//
//	Config: 設定
//	error: 讀檔、解析或驗證失敗
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 檢查列舉值與 seed 內容
func (c Config) Validate() error {
	switch c.Ledger.Store {
	case StoreMemory, StoreMySQL:
	default:
		return fmt.Errorf("ledger.store: unknown store %q", c.Ledger.Store)
	}
	switch c.Lock.Backend {
	case LockLocal, LockRedis:
	default:
		return fmt.Errorf("lock.backend: unknown backend %q", c.Lock.Backend)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}

	for i, a := range c.Seed.Accounts {
		if a.Login == "" || a.Tag == "" {
			return fmt.Errorf("seed.accounts[%d]: login and tag are required", i)
		}
		balance, err := a.OpeningBalance()
		if err != nil {
			return fmt.Errorf("seed.accounts[%d]: invalid balance %q", i, a.Balance)
		}
		if err := domain.ValidateAmount(balance); err != nil {
			return fmt.Errorf("seed.accounts[%d]: %w", i, err)
		}
	}
	for i, p := range c.Seed.PlanAccounts {
		if p.Name == "" || p.Owner == "" {
			return fmt.Errorf("seed.plan_accounts[%d]: name and owner are required", i)
		}
	}
	return nil
}
