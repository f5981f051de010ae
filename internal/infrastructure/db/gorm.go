package db

import (
	"context"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolConfig bounds the connection pool: PoolSize steady connections plus
// MaxOverflow burst capacity, recycled on an interval so stale connections
// are not handed out.
type PoolConfig struct {
	PoolSize    int
	MaxOverflow int
	Recycle     time.Duration
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{PoolSize: 10, MaxOverflow: 20, Recycle: 30 * time.Minute}
}

func OpenGorm(dsn string, pool PoolConfig) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), pool)
}

// OpenGormWithDialector exists so tests can inject a mocked *sql.DB.
func OpenGormWithDialector(dial gorm.Dialector, pool PoolConfig) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(pool.PoolSize + pool.MaxOverflow)
	sqlDB.SetMaxIdleConns(pool.PoolSize)
	sqlDB.SetConnMaxLifetime(pool.Recycle)
	sqlDB.SetConnMaxIdleTime(pool.Recycle / 2)

	// pre-flight ping: fail startup on a dead backend rather than on first request
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return gdb, nil
}

// PingProbe is the liveness probe for the storage dependency: a trivial
// round-trip that should complete quickly on a healthy backend.
func PingProbe(gdb *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return gdb.WithContext(ctx).Exec("SELECT 1").Error
	}
}
