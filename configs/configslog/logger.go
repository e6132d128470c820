package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog its sugared twin. Both are ready
// after InitLogger; packages import them directly instead of threading a
// logger through every constructor.
// They start as no-ops so packages stay usable before InitLogger runs
// (tests in particular never call it).
var (
	Log  = zap.NewNop()
	SLog = zap.NewNop().Sugar()
)

func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("logger init failed: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered entries, call it via defer in main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
