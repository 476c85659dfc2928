package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

var ErrUnsupportedDriver = gorm.ErrInvalidDB

type Opts struct {
	Driver             string // postgres | mysql
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.DSN)
	case "mysql":
		dial = mysql.Open(o.DSN)
	default:
		return nil, ErrUnsupportedDriver
	}

	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)

	db = db.Session(&gorm.Session{
		PrepareStmt:            true, // 预编译缓存，提高 QPS
		SkipDefaultTransaction: true, // 只在需要时手动开 Tx
	})
	return db, nil
}

// MigrateWithRetry 建表带重试：数据库可能比应用晚就绪（容器编排常见），
// 固定间隔重试 retries 次，全部失败才放弃
func MigrateWithRetry(db *gorm.DB, l *zap.Logger, retries int, delay time.Duration, models ...any) error {
	if retries < 1 {
		retries = 1
	}
	var err error
	for i := 1; i <= retries; i++ {
		if err = db.AutoMigrate(models...); err == nil {
			l.Info("automigrate done", zap.Int("attempt", i))
			return nil
		}
		l.Warn("automigrate failed, will retry",
			zap.Int("attempt", i), zap.Int("retries", retries),
			zap.Duration("delay", delay), zap.Error(err))
		if i < retries {
			time.Sleep(delay)
		}
	}
	return err
}
