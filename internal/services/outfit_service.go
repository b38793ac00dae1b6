// Package services – OutfitService
//
// This file implements OutfitService, which generates outfit suggestions
// from a selection of stored clothing items and manages saved outfits.
// Unlike the closet analyzer, generation does not degrade silently: an
// empty selection is rejected and AI failures propagate so the handler can
// surface them as an error response.
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/stylematch/go-wardrobe-backend/internal/ai"
	"github.com/stylematch/go-wardrobe-backend/internal/domain"
	"github.com/stylematch/go-wardrobe-backend/internal/repo"
	"github.com/stylematch/go-wardrobe-backend/internal/stylist"
)

// OutfitRepo defines the repository contract required by OutfitService.
// Implementations are responsible for persistence of saved outfits.
type OutfitRepo interface {
	// CreateSavedOutfit inserts a new saved outfit with a fresh UUID.
	CreateSavedOutfit(ctx context.Context, db *gorm.DB, name, occasion string, clothingIDs []string, aiSuggestion string) (*domain.SavedOutfit, error)

	// ListSavedOutfits returns all saved outfits.
	ListSavedOutfits(ctx context.Context, db *gorm.DB) ([]domain.SavedOutfit, error)

	// DeleteSavedOutfit removes an outfit by id, repo.ErrNotFound when missing.
	DeleteSavedOutfit(ctx context.Context, db *gorm.DB, id string) error
}

// GeneratedOutfit is the result of one generation call: the provider's
// suggestion text verbatim, the occasion echoed back, and the stored items
// the suggestion was built from.
type GeneratedOutfit struct {
	Suggestion string
	Occasion   string
	Items      []domain.ClothingItem
}

// OutfitService coordinates outfit generation and saved-outfit CRUD.
type OutfitService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the saved-outfit repository.
	Repo OutfitRepo
	// Closet resolves the selected clothing ids to stored items.
	Closet ClothingRepo
	// AI is the chat provider asked for suggestions.
	AI ai.Client
}

// NewOutfitService constructs an OutfitService bound to its dependencies.
func NewOutfitService(db *gorm.DB, r OutfitRepo, closet ClothingRepo, aiClient ai.Client) *OutfitService {
	return &OutfitService{DB: db, Repo: r, Closet: closet, AI: aiClient}
}

// Generate fetches the selected items and asks the provider for outfit
// combinations for the occasion. It returns ErrNoItemsFound when the
// selection is empty or matches nothing stored; AI failures propagate.
func (s *OutfitService) Generate(ctx context.Context, occasion string, clothingIDs []string) (*GeneratedOutfit, error) {
	tr := otel.Tracer("services/OutfitService")
	ctx, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(
			attribute.String("occasion", occasion),
			attribute.Int("selection.size", len(clothingIDs)),
		),
	)
	defer span.End()

	items, err := s.Closet.ListClothingItemsByIDs(ctx, s.DB, clothingIDs)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItemsFound
	}

	suggestion, err := s.AI.Complete(ctx, ai.Request{
		SessionID: uuid.NewString(),
		System:    stylist.ComposerSystemPrompt,
		Prompt:    stylist.OutfitPrompt(items, occasion),
	})
	if err != nil {
		return nil, err
	}

	return &GeneratedOutfit{
		Suggestion: suggestion,
		Occasion:   occasion,
		Items:      items,
	}, nil
}

// Save persists a named outfit with its suggestion text. Referenced ids are
// stored as given; nothing checks that they still exist.
func (s *OutfitService) Save(ctx context.Context, name, occasion string, clothingIDs []string, aiSuggestion string) (*domain.SavedOutfit, error) {
	return s.Repo.CreateSavedOutfit(ctx, s.DB, name, occasion, clothingIDs, aiSuggestion)
}

// List returns all saved outfits.
func (s *OutfitService) List(ctx context.Context) ([]domain.SavedOutfit, error) {
	return s.Repo.ListSavedOutfits(ctx, s.DB)
}

// Delete removes the outfit with the given id. It returns ErrOutfitNotFound
// when the id matches nothing; other errors propagate as-is.
func (s *OutfitService) Delete(ctx context.Context, id string) error {
	err := s.Repo.DeleteSavedOutfit(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrOutfitNotFound
	}
	return err
}
