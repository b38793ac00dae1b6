// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// SavedOutfit model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stylematch/go-wardrobe-backend/internal/domain"
)

// CreateSavedOutfit inserts a new SavedOutfit row. The referenced clothing
// ids are stored exactly as given (order-preserving, duplicates allowed,
// no existence check). The outfit ID is a randomly generated UUID and
// CreatedAt is set to UTC.
func CreateSavedOutfit(ctx context.Context, db *gorm.DB, name, occasion string, clothingIDs []string, aiSuggestion string) (*domain.SavedOutfit, error) {
	if clothingIDs == nil {
		clothingIDs = []string{}
	}
	o := &domain.SavedOutfit{
		ID:           uuid.NewString(),
		Name:         name,
		Occasion:     occasion,
		ClothingIDs:  domain.StringList(clothingIDs),
		AISuggestion: aiSuggestion,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

// ListSavedOutfits returns every saved outfit, ordered by creation time
// descending. It returns an empty slice when nothing has been saved.
func ListSavedOutfits(ctx context.Context, db *gorm.DB) ([]domain.SavedOutfit, error) {
	var out []domain.SavedOutfit
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// DeleteSavedOutfit removes the outfit identified by id. If no row is
// affected (outfit missing), it returns ErrNotFound. On DB error, the raw
// error is returned.
func DeleteSavedOutfit(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.SavedOutfit{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
