package configsdatabase

import (
	"fmt"
	"time"

	"agenda.link/configs"
	"agenda.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the Postgres connection pool. Fatal on failure: the
// application cannot run without its store.
func InitDB() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_USER", "postgres"),
		configs.GetEnv("DB_PASSWORD", "postgres"),
		configs.GetEnv("DB_NAME", "agenda"),
		configs.GetEnv("DB_SSL_MODE", "disable"),
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		configslog.Log.Fatal("database handle unavailable", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvAsInt("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(configs.GetEnvAsInt("DB_MAX_IDLE_CONNS", 25))
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		configslog.Log.Fatal("database ping failed", zap.Error(err))
	}

	db = gormDB
	configslog.SLog.Info("database connection established")
}

func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB called before InitDB")
	}
	return db
}

func CloseDB() {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
