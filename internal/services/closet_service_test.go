package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stylematch/go-wardrobe-backend/internal/ai"
	"github.com/stylematch/go-wardrobe-backend/internal/domain"
	"github.com/stylematch/go-wardrobe-backend/internal/repo"
)

// aiStub adapts a function to the ai.Client interface for tests.
type aiStub func(ctx context.Context, req ai.Request) (string, error)

func (f aiStub) Complete(ctx context.Context, req ai.Request) (string, error) { return f(ctx, req) }

// repoFuncs routes the ClothingRepo interface to the real repo functions.
type repoFuncs struct{}

func (repoFuncs) CreateClothingItem(ctx context.Context, db *gorm.DB, imageBase64, category, color, style, description string) (*domain.ClothingItem, error) {
	return repo.CreateClothingItem(ctx, db, imageBase64, category, color, style, description)
}

func (repoFuncs) ListClothingItems(ctx context.Context, db *gorm.DB) ([]domain.ClothingItem, error) {
	return repo.ListClothingItems(ctx, db)
}

func (repoFuncs) ListClothingItemsByIDs(ctx context.Context, db *gorm.DB, ids []string) ([]domain.ClothingItem, error) {
	return repo.ListClothingItemsByIDs(ctx, db, ids)
}

func (repoFuncs) DeleteClothingItem(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteClothingItem(ctx, db, id)
}

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("services_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.ClothingItem{}, &domain.SavedOutfit{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestClosetService_Create_ParsesAIReply(t *testing.T) {
	db := newServiceDB(t)
	var gotReq ai.Request
	svc := NewClosetService(db, repoFuncs{}, aiStub(func(_ context.Context, req ai.Request) (string, error) {
		gotReq = req
		return "Category: shirt\nColor: blue\nStyle: casual\nDescription: A cotton shirt", nil
	}))

	item, err := svc.Create(context.Background(), "aW1hZ2U=")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Category != "shirt" || item.Color != "blue" || item.Style != "casual" || item.Description != "A cotton shirt" {
		t.Fatalf("unexpected classification: %+v", item)
	}
	if item.ImageBase64 != "aW1hZ2U=" {
		t.Fatalf("image not stored verbatim: %q", item.ImageBase64)
	}

	// The AI call must carry the image and a stylist framing.
	if gotReq.ImageBase64 != "aW1hZ2U=" {
		t.Fatalf("AI request missing image: %+v", gotReq)
	}
	if !strings.Contains(gotReq.System, "fashion stylist") {
		t.Fatalf("unexpected system prompt: %q", gotReq.System)
	}
	if gotReq.SessionID == "" {
		t.Fatalf("expected a session id on the AI request")
	}
}

func TestClosetService_Create_FallbackOnAIError(t *testing.T) {
	db := newServiceDB(t)
	svc := NewClosetService(db, repoFuncs{}, aiStub(func(context.Context, ai.Request) (string, error) {
		return "", errors.New("provider down")
	}))

	item, err := svc.Create(context.Background(), "aW1hZ2U=")
	if err != nil {
		t.Fatalf("Create must not fail on AI error: %v", err)
	}
	if item.Category != "unknown" || item.Color != "unknown" || item.Style != "casual" || item.Description != "Clothing item" {
		t.Fatalf("expected fallback record, got %+v", item)
	}
}

func TestClosetService_Create_DefaultsForMissingFields(t *testing.T) {
	db := newServiceDB(t)
	svc := NewClosetService(db, repoFuncs{}, aiStub(func(context.Context, ai.Request) (string, error) {
		return "Category: jacket", nil // model only answered one field
	}))

	item, err := svc.Create(context.Background(), "aW1hZ2U=")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Category != "jacket" || item.Color != "unknown" || item.Style != "casual" || item.Description != "Clothing item" {
		t.Fatalf("defaults not applied: %+v", item)
	}
}

func TestClosetService_List(t *testing.T) {
	db := newServiceDB(t)
	svc := NewClosetService(db, repoFuncs{}, aiStub(func(context.Context, ai.Request) (string, error) {
		return "Category: shirt", nil
	}))

	if _, err := svc.Create(context.Background(), "aQ=="); err != nil {
		t.Fatalf("Create: %v", err)
	}
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestClosetService_Delete_NotFound(t *testing.T) {
	db := newServiceDB(t)
	svc := NewClosetService(db, repoFuncs{}, nil)

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestClosetService_Delete_Success(t *testing.T) {
	db := newServiceDB(t)
	svc := NewClosetService(db, repoFuncs{}, aiStub(func(context.Context, ai.Request) (string, error) {
		return "Category: shirt", nil
	}))

	item, err := svc.Create(context.Background(), "aQ==")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("item still present after delete")
	}
}
