// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ClothingItem model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a delete targets a missing item, DeleteClothingItem returns
//     gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stylematch/go-wardrobe-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateClothingItem inserts a new ClothingItem row holding the uploaded
// image payload and its classification. The item ID is a randomly generated
// UUID (string), and CreatedAt is set to UTC.
//
// On success, it returns the persisted item. On failure, it returns a DB error.
func CreateClothingItem(ctx context.Context, db *gorm.DB, imageBase64, category, color, style, description string) (*domain.ClothingItem, error) {
	item := &domain.ClothingItem{
		ID:          uuid.NewString(),
		ImageBase64: imageBase64,
		Category:    category,
		Color:       color,
		Style:       style,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// ListClothingItems returns every stored clothing item, ordered by creation
// time descending (most recent first). It returns an empty slice when the
// wardrobe is empty. On DB error, it returns the error.
func ListClothingItems(ctx context.Context, db *gorm.DB) ([]domain.ClothingItem, error) {
	var out []domain.ClothingItem
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListClothingItemsByIDs returns the clothing items whose ids are in the
// given set. Ids that match nothing are silently skipped; an empty id set
// short-circuits to an empty result without touching the database.
func ListClothingItemsByIDs(ctx context.Context, db *gorm.DB, ids []string) ([]domain.ClothingItem, error) {
	if len(ids) == 0 {
		return []domain.ClothingItem{}, nil
	}
	var out []domain.ClothingItem
	err := db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&out).Error
	return out, err
}

// DeleteClothingItem removes the item identified by id. If no row is
// affected (item missing), it returns ErrNotFound. On DB error, the raw
// error is returned.
func DeleteClothingItem(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.ClothingItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
