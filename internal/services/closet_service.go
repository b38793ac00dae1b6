// Package services – ClosetService
//
// This file implements the ClosetService, which owns the lifecycle of
// clothing items: analyzing an uploaded image via the AI provider,
// persisting the classified item, and listing/deleting stored items.
//
// The analyzer deliberately never fails: any error at any stage (missing
// credential, transport failure, provider error, unusable reply) is logged
// and replaced by the fixed fallback record, so a degraded classification
// never blocks an upload. Persistence errors still propagate.
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/stylematch/go-wardrobe-backend/internal/ai"
	"github.com/stylematch/go-wardrobe-backend/internal/domain"
	"github.com/stylematch/go-wardrobe-backend/internal/repo"
	"github.com/stylematch/go-wardrobe-backend/internal/stylist"
)

// ClothingRepo defines the repository contract required by ClosetService.
// Implementations are responsible for persistence of clothing items.
type ClothingRepo interface {
	// CreateClothingItem inserts a new item with a fresh UUID and UTC timestamp.
	CreateClothingItem(ctx context.Context, db *gorm.DB, imageBase64, category, color, style, description string) (*domain.ClothingItem, error)

	// ListClothingItems returns all stored items.
	ListClothingItems(ctx context.Context, db *gorm.DB) ([]domain.ClothingItem, error)

	// ListClothingItemsByIDs returns the items matching the given id set.
	ListClothingItemsByIDs(ctx context.Context, db *gorm.DB, ids []string) ([]domain.ClothingItem, error)

	// DeleteClothingItem removes an item by id, repo.ErrNotFound when missing.
	DeleteClothingItem(ctx context.Context, db *gorm.DB, id string) error
}

// ClosetService provides clothing-item operations: analyze-and-create,
// list, and delete. It holds no per-request state.
type ClosetService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the clothing repository used by this service.
	Repo ClothingRepo
	// AI is the chat provider used to classify images.
	AI ai.Client
}

// NewClosetService constructs a ClosetService bound to db, r and aiClient.
func NewClosetService(db *gorm.DB, r ClothingRepo, aiClient ai.Client) *ClosetService {
	return &ClosetService{DB: db, Repo: r, AI: aiClient}
}

// Create classifies the uploaded image and persists the resulting item.
// Analysis failures degrade to the fallback record; only persistence
// failures are returned to the caller.
func (s *ClosetService) Create(ctx context.Context, imageBase64 string) (*domain.ClothingItem, error) {
	tr := otel.Tracer("services/ClosetService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.Int("image.bytes", len(imageBase64))),
	)
	defer span.End()

	analysis := s.analyze(ctx, imageBase64)
	return s.Repo.CreateClothingItem(ctx, s.DB, imageBase64,
		analysis.Category, analysis.Color, analysis.Style, analysis.Description)
}

// List returns all stored clothing items.
func (s *ClosetService) List(ctx context.Context) ([]domain.ClothingItem, error) {
	return s.Repo.ListClothingItems(ctx, s.DB)
}

// Delete removes the item with the given id. It returns ErrItemNotFound
// when the id matches nothing; other errors propagate as-is.
func (s *ClosetService) Delete(ctx context.Context, id string) error {
	err := s.Repo.DeleteClothingItem(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}

// analyze sends the image to the AI provider and parses the reply into the
// four classification fields, filling gaps with the fixed defaults. Any
// error is logged and absorbed into the full fallback record.
func (s *ClosetService) analyze(ctx context.Context, imageBase64 string) stylist.Analysis {
	sessionID := uuid.NewString()
	reply, err := s.AI.Complete(ctx, ai.Request{
		SessionID:   sessionID,
		System:      stylist.AnalyzerSystemPrompt,
		Prompt:      stylist.AnalyzerPrompt,
		ImageBase64: imageBase64,
	})
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("clothing analysis failed, using fallback record")
		return stylist.FallbackAnalysis()
	}
	return stylist.ParseAnalysis(reply).OrDefaults()
}
