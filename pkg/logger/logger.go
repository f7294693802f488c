package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 日誌設定
type Config struct {
	// Level: debug / info / warn / error，空字串時依 Development 決定
	Level string `yaml:"level"`
	// Development 為 true 時使用 console 格式並預設 debug
	Development bool `yaml:"development"`
}

// New 建立 zap Logger
//
// 參數:
//
//	cfg: 日誌設定
//
// 回傳值:
//
//	*zap.Logger: 結構化 logger
//	error: 等級字串無法解析或建立失敗
func New(cfg Config) (*zap.Logger, error) {
	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	var base zap.Config
	if cfg.Development {
		base = zap.NewDevelopmentConfig()
	} else {
		base = zap.NewProductionConfig()
		base.EncoderConfig.TimeKey = "time"
		base.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	base.Level = level
	base.DisableStacktrace = true
	base.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	logger, err := base.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(cfg.Level); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		return zap.NewAtomicLevelAt(parsed), nil
	}
	if cfg.Development {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}
	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}
