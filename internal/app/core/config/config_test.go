package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_lock "github.com/JoeShih716/go-account-ledger/internal/app/core/adapter/out/lock/redis"
	"github.com/JoeShih716/go-account-ledger/internal/app/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":6000"
log:
  level: debug
ledger:
  store: mysql
lock:
  backend: redis
  redis:
    addr: "redis:6379"
    db: 2
  expiry: 5s
  tries: 8
  retry_delay: 20ms
  drift_factor: 0.02
mysql:
  host: db
  user: ledger
  db_name: ledger
  conn_max_lifetime: 1m
seed:
  accounts:
    - {login: alice, tag: BRL, name: Alice, balance: "100.50"}
    - {login: bob, tag: USD, name: Bob}
  plan_accounts:
    - {name: salary, owner: alice}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.Server.Addr)
	assert.True(t, cfg.Server.Reflection)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, StoreMySQL, cfg.Ledger.Store)
	assert.Equal(t, "wal.log", cfg.Ledger.WALPath)
	assert.Equal(t, LockRedis, cfg.Lock.Backend)
	assert.Equal(t, "redis:6379", cfg.Lock.Redis.Addr)
	assert.Equal(t, 2, cfg.Lock.Redis.DB)
	assert.Equal(t, 5*time.Second, cfg.Lock.Expiry)
	assert.Equal(t, 8, cfg.Lock.Tries)
	assert.Equal(t, 20*time.Millisecond, cfg.Lock.RetryDelay)
	assert.Equal(t, 0.02, cfg.Lock.DriftFactor)
	assert.Equal(t, "db", cfg.MySQL.Host)
	assert.Equal(t, time.Minute, cfg.MySQL.ConnMaxLifetime)

	require.Len(t, cfg.Seed.Accounts, 2)
	balance, err := cfg.Seed.Accounts[0].OpeningBalance()
	require.NoError(t, err)
	assert.Equal(t, "100.5", balance.String())
	balance, err = cfg.Seed.Accounts[1].OpeningBalance()
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	assert.Equal(t, "alice", cfg.Seed.PlanAccounts[0].Owner)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log:\n  development: true\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Server, cfg.Server)
	assert.Equal(t, StoreMemory, cfg.Ledger.Store)
	assert.Equal(t, LockLocal, cfg.Lock.Backend)
	assert.Equal(t, redis_lock.DefaultOptions(), cfg.Lock.Options)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown store", "ledger:\n  store: postgres\n"},
		{"unknown lock backend", "lock:\n  backend: etcd\n"},
		{"empty addr", "server:\n  addr: \"\"\n"},
		{"bad balance", "seed:\n  accounts:\n    - {login: a, tag: BRL, balance: abc}\n"},
		{"missing tag", "seed:\n  accounts:\n    - {login: a}\n"},
		{"missing plan owner", "seed:\n  plan_accounts:\n    - {name: rent}\n"},
		{"malformed yaml", "server: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(writeConfig(t, "seed:\n  accounts:\n    - {login: a, tag: BRL, balance: \"-1\"}\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = Load(writeConfig(t, "seed:\n  accounts:\n    - {login: a, tag: BRL, balance: \"0.99999\"}\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv(EnvConfigPath, "/etc/ledger.yaml")
	assert.Equal(t, "/etc/ledger.yaml", Path())
}
