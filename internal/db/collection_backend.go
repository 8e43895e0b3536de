package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type collectionRow struct {
	Name      string    `gorm:"column:name;primaryKey"`
	Payload   string    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (collectionRow) TableName() string {
	return "collections"
}

// CollectionBackend stores every key of the application namespace as one
// row of the collections table.
type CollectionBackend struct {
	database *gorm.DB
	now      func() time.Time
}

func NewCollectionBackend(database *gorm.DB) *CollectionBackend {
	return &CollectionBackend{database: database, now: time.Now}
}

func (backend *CollectionBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var row collectionRow
	err := backend.database.WithContext(ctx).Where("name = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load collection %s: %w", key, err)
	}
	return row.Payload, true, nil
}

func (backend *CollectionBackend) Set(ctx context.Context, key string, value string) error {
	row := collectionRow{Name: key, Payload: value, UpdatedAt: backend.now().UTC()}
	return backend.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}

func (backend *CollectionBackend) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return backend.database.WithContext(ctx).Where("name IN ?", keys).Delete(&collectionRow{}).Error
}

func (backend *CollectionBackend) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := backend.database.WithContext(ctx).Model(&collectionRow{}).Order("name").Pluck("name", &keys).Error; err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return keys, nil
}
