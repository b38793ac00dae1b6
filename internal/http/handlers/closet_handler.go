package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stylematch/go-wardrobe-backend/internal/domain"
	"github.com/stylematch/go-wardrobe-backend/internal/services"
)

// ClosetService abstracts the clothing-item operations needed by the
// closet endpoints. *services.ClosetService satisfies it.
type ClosetService interface {
	Create(ctx context.Context, imageBase64 string) (*domain.ClothingItem, error)
	List(ctx context.Context) ([]domain.ClothingItem, error)
	Delete(ctx context.Context, id string) error
}

// ClosetHandler serves the root banner and the /clothes endpoints.
type ClosetHandler struct {
	svc ClosetService
}

// NewClosetHandler constructs a ClosetHandler backed by svc.
func NewClosetHandler(svc ClosetService) *ClosetHandler {
	return &ClosetHandler{svc: svc}
}

// CreateClothingRequest is the payload accepted by POST /clothes. The image
// must be base64 text, with or without a data-URL prefix.
type CreateClothingRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// Root returns the service banner.
func (h *ClosetHandler) Root(c *gin.Context) {
	ok(c, http.StatusOK, MessageResponse{Message: "StyleMatch AI Backend"})
}

// CreateClothing accepts an uploaded image, runs the AI classification and
// stores the resulting item. The stored item is returned with its assigned
// id; analysis failures surface only as the fallback classification, never
// as an error status.
func (h *ClosetHandler) CreateClothing(c *gin.Context) {
	var req CreateClothingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, codeValidationFailed, "image_base64 is required")
		return
	}
	if !validBase64(req.ImageBase64) {
		fail(c, http.StatusBadRequest, codeBadRequest, "image_base64 is not valid base64 data")
		return
	}

	item, err := h.svc.Create(c.Request.Context(), req.ImageBase64)
	if err != nil {
		fail(c, http.StatusInternalServerError, codeInternalError, err.Error())
		return
	}
	ok(c, http.StatusOK, item)
}

// ListClothes returns every stored clothing item, newest first.
func (h *ClosetHandler) ListClothes(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, codeInternalError, err.Error())
		return
	}
	if items == nil {
		items = []domain.ClothingItem{}
	}
	ok(c, http.StatusOK, items)
}

// DeleteClothing removes the item with the given id.
func (h *ClosetHandler) DeleteClothing(c *gin.Context) {
	id := c.Param("id")
	err := h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		fail(c, http.StatusNotFound, codeNotFound, "Clothing item not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, codeInternalError, err.Error())
	default:
		ok(c, http.StatusOK, MessageResponse{Message: "Clothing item deleted successfully"})
	}
}

// validBase64 reports whether s decodes as base64. A data-URL prefix
// ("data:image/...;base64,") is stripped before decoding.
func validBase64(s string) bool {
	if strings.HasPrefix(s, "data:") {
		_, rest, found := strings.Cut(s, "base64,")
		if !found {
			return false
		}
		s = rest
	}
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil
}
