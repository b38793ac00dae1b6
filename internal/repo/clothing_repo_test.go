package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stylematch/go-wardrobe-backend/internal/domain"
)

func newClothingRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("clothing_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateClothingItem_Error_NoTable(t *testing.T) {
	db := newClothingRepoDB(t /* no migrations */)
	item, err := CreateClothingItem(context.Background(), db, "aW1n", "shirt", "blue", "casual", "d")
	if err == nil || item != nil {
		t.Fatalf("expected error creating without table, got item=%v err=%v", item, err)
	}
}

func TestCreateClothingItem_Success_PersistsAndSetsFields(t *testing.T) {
	db := newClothingRepoDB(t, &domain.ClothingItem{})

	start := time.Now().UTC().Add(-time.Minute)
	item, err := CreateClothingItem(context.Background(), db, "aW1n", "shirt", "blue", "casual", "cotton shirt")
	if err != nil {
		t.Fatalf("CreateClothingItem: %v", err)
	}
	if item.ID == "" || item.ImageBase64 != "aW1n" || item.Category != "shirt" ||
		item.Color != "blue" || item.Style != "casual" || item.Description != "cotton shirt" {
		t.Fatalf("unexpected item fields: %+v", item)
	}
	if item.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset/really old: %v", item.CreatedAt)
	}
	// round-trip
	var got domain.ClothingItem
	if err := db.First(&got, "id = ?", item.ID).Error; err != nil {
		t.Fatalf("load created item: %v", err)
	}
	if got.ImageBase64 != "aW1n" || got.Category != "shirt" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListClothingItems_OrderDescending(t *testing.T) {
	db := newClothingRepoDB(t, &domain.ClothingItem{})

	// Seed with known CreatedAt so order is deterministic.
	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC) // oldest
	t2 := t1.Add(1 * time.Hour)
	t3 := t2.Add(1 * time.Hour)
	for _, item := range []domain.ClothingItem{
		{ID: "i1", Category: "shirt", CreatedAt: t1},
		{ID: "i2", Category: "pants", CreatedAt: t2},
		{ID: "i3", Category: "shoes", CreatedAt: t3},
	} {
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("seed %s: %v", item.ID, err)
		}
	}

	list, err := ListClothingItems(context.Background(), db)
	if err != nil {
		t.Fatalf("ListClothingItems: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list))
	}
	if list[0].ID != "i3" || list[1].ID != "i2" || list[2].ID != "i1" {
		t.Fatalf("unexpected order: %#v", list)
	}
}

func TestListClothingItems_EmptyWardrobe(t *testing.T) {
	db := newClothingRepoDB(t, &domain.ClothingItem{})
	list, err := ListClothingItems(context.Background(), db)
	if err != nil {
		t.Fatalf("ListClothingItems: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d items", len(list))
	}
}

func TestListClothingItemsByIDs(t *testing.T) {
	db := newClothingRepoDB(t, &domain.ClothingItem{})
	for _, id := range []string{"a", "b", "c"} {
		if err := db.Create(&domain.ClothingItem{ID: id}).Error; err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	got, err := ListClothingItemsByIDs(context.Background(), db, []string{"a", "c", "missing"})
	if err != nil {
		t.Fatalf("ListClothingItemsByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items (missing id skipped), got %d", len(got))
	}
}

func TestListClothingItemsByIDs_EmptySetSkipsDB(t *testing.T) {
	// No table migrated: an empty id set must not touch the database.
	db := newClothingRepoDB(t)
	got, err := ListClothingItemsByIDs(context.Background(), db, nil)
	if err != nil {
		t.Fatalf("ListClothingItemsByIDs: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestDeleteClothingItem(t *testing.T) {
	db := newClothingRepoDB(t, &domain.ClothingItem{})
	if err := db.Create(&domain.ClothingItem{ID: "del-me"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := DeleteClothingItem(context.Background(), db, "del-me"); err != nil {
		t.Fatalf("DeleteClothingItem: %v", err)
	}
	var count int64
	db.Model(&domain.ClothingItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("item not deleted, %d remain", count)
	}

	if err := DeleteClothingItem(context.Background(), db, "del-me"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}
