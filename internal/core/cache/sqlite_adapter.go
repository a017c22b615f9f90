package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// kvEntry is a single row of the SQLite key-value table.
// ExpiresAt is unix nanoseconds; 0 means no expiration.
type kvEntry struct {
	Key       string `gorm:"column:cache_key;primaryKey;size:255"`
	Value     []byte `gorm:"column:value"`
	ExpiresAt int64  `gorm:"column:expires_at;index"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQLiteAdapter implements the Cache interface on a single SQLite file.
// It is meant for single-node deployments that do not run Redis.
type SQLiteAdapter struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSQLiteAdapter opens (or creates) the SQLite database at path and migrates the table.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}

	return &SQLiteAdapter{db: db, now: time.Now}, nil
}

func (s *SQLiteAdapter) expiry(ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	return s.now().Add(ttl).UnixNano()
}

// Get retrieves a live value by key. Expired rows are removed lazily.
func (s *SQLiteAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	var e kvEntry
	err := s.db.WithContext(ctx).Where("cache_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	if e.ExpiresAt != 0 && e.ExpiresAt <= s.now().UnixNano() {
		_ = s.Delete(ctx, key)
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	return e.Value, nil
}

// Set upserts a value with the specified TTL.
func (s *SQLiteAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := kvEntry{Key: key, Value: value, ExpiresAt: s.expiry(ttl)}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// SetIfAbsent inserts the value unless a live row already holds the key.
func (s *SQLiteAdapter) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	db := s.db.WithContext(ctx)

	err := db.Where("cache_key = ? AND expires_at <> 0 AND expires_at <= ?", key, s.now().UnixNano()).
		Delete(&kvEntry{}).Error
	if err != nil {
		return false, fmt.Errorf("failed to purge expired key %s: %w", key, err)
	}

	e := kvEntry{Key: key, Value: value, ExpiresAt: s.expiry(ttl)}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&e)
	if res.Error != nil {
		return false, fmt.Errorf("failed to setnx key %s: %w", key, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// Delete removes a value by key.
func (s *SQLiteAdapter) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("cache_key = ?", key).Delete(&kvEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// DeleteIfEquals removes the row only while its value matches.
func (s *SQLiteAdapter) DeleteIfEquals(ctx context.Context, key string, value []byte) (bool, error) {
	res := s.db.WithContext(ctx).Where("cache_key = ? AND value = ?", key, value).Delete(&kvEntry{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to compare-and-delete key %s: %w", key, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// Ping checks that the database handle is usable.
func (s *SQLiteAdapter) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle unavailable: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteAdapter) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
