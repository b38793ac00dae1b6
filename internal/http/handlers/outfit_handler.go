package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylematch/go-wardrobe-backend/internal/domain"
	"github.com/stylematch/go-wardrobe-backend/internal/services"
)

// OutfitService abstracts outfit generation and saved-outfit operations.
// *services.OutfitService satisfies it.
type OutfitService interface {
	Generate(ctx context.Context, occasion string, clothingIDs []string) (*services.GeneratedOutfit, error)
	Save(ctx context.Context, name, occasion string, clothingIDs []string, aiSuggestion string) (*domain.SavedOutfit, error)
	List(ctx context.Context) ([]domain.SavedOutfit, error)
	Delete(ctx context.Context, id string) error
}

// OutfitHandler serves the /outfits endpoints.
type OutfitHandler struct {
	svc OutfitService
}

// NewOutfitHandler constructs an OutfitHandler backed by svc.
func NewOutfitHandler(svc OutfitService) *OutfitHandler {
	return &OutfitHandler{svc: svc}
}

// GenerateOutfitRequest is the payload accepted by POST /outfits/generate.
type GenerateOutfitRequest struct {
	Occasion    string   `json:"occasion" binding:"required"`
	ClothingIDs []string `json:"clothing_ids"`
}

// GenerateOutfitResponse echoes the occasion and returns the provider's
// suggestion text together with the items it was built from.
type GenerateOutfitResponse struct {
	Suggestion    string                `json:"suggestion"`
	Occasion      string                `json:"occasion"`
	ClothingItems []domain.ClothingItem `json:"clothing_items"`
}

// SaveOutfitRequest is the payload accepted by POST /outfits/save.
type SaveOutfitRequest struct {
	Name         string   `json:"name" binding:"required"`
	Occasion     string   `json:"occasion" binding:"required"`
	ClothingIDs  []string `json:"clothing_ids"`
	AISuggestion string   `json:"ai_suggestion"`
}

// GenerateOutfit asks the AI provider for outfit combinations built from
// the selected stored items. A selection that matches nothing stored
// returns 404; provider failures return 500.
func (h *OutfitHandler) GenerateOutfit(c *gin.Context) {
	var req GenerateOutfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, codeValidationFailed, "occasion is required")
		return
	}

	out, err := h.svc.Generate(c.Request.Context(), req.Occasion, req.ClothingIDs)
	switch {
	case errors.Is(err, services.ErrNoItemsFound):
		fail(c, http.StatusNotFound, codeNotFound, "No clothing items found")
	case err != nil:
		fail(c, http.StatusInternalServerError, codeInternalError, err.Error())
	default:
		ok(c, http.StatusOK, GenerateOutfitResponse{
			Suggestion:    out.Suggestion,
			Occasion:      out.Occasion,
			ClothingItems: out.Items,
		})
	}
}

// SaveOutfit stores an outfit the user chose to keep and returns the stored
// record with its assigned id.
func (h *OutfitHandler) SaveOutfit(c *gin.Context) {
	var req SaveOutfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, codeValidationFailed, "name and occasion are required")
		return
	}

	outfit, err := h.svc.Save(c.Request.Context(), req.Name, req.Occasion, req.ClothingIDs, req.AISuggestion)
	if err != nil {
		fail(c, http.StatusInternalServerError, codeInternalError, err.Error())
		return
	}
	ok(c, http.StatusOK, outfit)
}

// ListSavedOutfits returns every saved outfit, newest first.
func (h *OutfitHandler) ListSavedOutfits(c *gin.Context) {
	outfits, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, codeInternalError, err.Error())
		return
	}
	if outfits == nil {
		outfits = []domain.SavedOutfit{}
	}
	ok(c, http.StatusOK, outfits)
}

// DeleteOutfit removes the saved outfit with the given id.
func (h *OutfitHandler) DeleteOutfit(c *gin.Context) {
	id := c.Param("id")
	err := h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrOutfitNotFound):
		fail(c, http.StatusNotFound, codeNotFound, "Outfit not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, codeInternalError, err.Error())
	default:
		ok(c, http.StatusOK, MessageResponse{Message: "Outfit deleted successfully"})
	}
}
