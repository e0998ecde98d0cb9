package connection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectGORM opens a PostgreSQL connection from a DSN/URL with retries.
// An empty dsn means the caller explicitly opted into degraded mode and
// gets (nil, nil) back.
func ConnectGORM(dsn string, maxRetries int) (*gorm.DB, error) {
	if dsn == "" {
		return nil, nil
	}

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			lastErr = err
			zap.L().Warn("gorm open failed",
				zap.Int("attempt", i),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			time.Sleep(3 * time.Second)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			time.Sleep(3 * time.Second)
			continue
		}
		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			zap.L().Warn("db ping failed",
				zap.Int("attempt", i),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			time.Sleep(3 * time.Second)
			continue
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

// ConnectRedis returns nil when addr is empty or unreachable; callers treat
// a nil client as "idempotency/caching disabled".
func ConnectRedis(addr string, maxRetries int) *redis.Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	for i := 1; i <= maxRetries; i++ {
		if err := rdb.Ping(context.Background()).Err(); err == nil {
			return rdb
		}
		zap.L().Warn("redis ping failed",
			zap.Int("attempt", i),
			zap.Int("max_retries", maxRetries),
		)
		time.Sleep(3 * time.Second)
	}

	zap.L().Warn("redis unavailable, continuing without it", zap.String("addr", addr))
	return nil
}

// NewKafkaWriter builds a shared writer for notification topics, or nil when
// no brokers are configured.
func NewKafkaWriter(brokers string) *kafkago.Writer {
	if brokers == "" {
		return nil
	}
	return &kafkago.Writer{
		Addr:         kafkago.TCP(strings.Split(brokers, ",")...),
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireNone,
		Async:        true,
	}
}
