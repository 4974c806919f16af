package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
)

// KVStore is a string key-value store on the kv_store table.
type KVStore struct {
	DB *gorm.DB
}

// NewKVStore returns a KVStore backed by db.
func NewKVStore(db *gorm.DB) *KVStore { return &KVStore{DB: db} }

// Get returns the value stored under key. ok is false when the key is absent.
func (s *KVStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	var kv domain.KeyValue
	err = s.DB.WithContext(ctx).Where("`key` = ?", key).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return kv.Value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC()
	kv := domain.KeyValue{Key: key, Value: value, CreatedAt: now, UpdatedAt: now}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
}

// SetIfAbsent stores value under key unless the key already exists, and
// returns the value that ends up stored.
func (s *KVStore) SetIfAbsent(ctx context.Context, key, value string) (string, error) {
	now := time.Now().UTC()
	kv := domain.KeyValue{Key: key, Value: value, CreatedAt: now, UpdatedAt: now}
	if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&kv).Error; err != nil {
		return "", err
	}
	stored, ok, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotFound
	}
	return stored, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Where("`key` = ?", key).Delete(&domain.KeyValue{}).Error
}
