package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ggorockee/cookiemap/internal/apperr"
	"github.com/ggorockee/cookiemap/internal/models"
	"github.com/ggorockee/cookiemap/internal/promotion"
	"github.com/gofiber/fiber/v2"
)

// CandidateReader review side of the candidate table
type CandidateReader interface {
	GetAll(ctx context.Context) ([]models.Candidate, error)
	GetByID(ctx context.Context, id string) (models.Candidate, error)
}

// Promoter candidate promotion workflow
type Promoter interface {
	Promote(ctx context.Context, candidateID string, overrides *promotion.Overrides) (models.Store, error)
}

// StoreReplacer bulk writer of the published store table
type StoreReplacer interface {
	ReplaceAll(ctx context.Context, stores []models.Store) ([]models.Store, error)
}

// VerifyCandidateRequest POST /admin/verify-candidate body
type VerifyCandidateRequest struct {
	CandidateID string   `json:"candidateId"`
	Address     *string  `json:"address,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// VerifyCandidateResponse promoted store
type VerifyCandidateResponse struct {
	Store   models.Store `json:"store"`
	Message string       `json:"message"`
}

// SeedStoresResponse reseeded stores, public-facing fields only
type SeedStoresResponse struct {
	Message string                `json:"message"`
	Stores  []models.StoreSummary `json:"stores"`
}

// CandidateListResponse GET /admin/candidates body
type CandidateListResponse struct {
	Candidates []models.Candidate `json:"candidates"`
}

// AdminHandler review and publication surface (unauthenticated)
type AdminHandler struct {
	candidates CandidateReader
	promoter   Promoter
	stores     StoreReplacer
}

func NewAdminHandler(candidates CandidateReader, promoter Promoter, stores StoreReplacer) *AdminHandler {
	return &AdminHandler{candidates: candidates, promoter: promoter, stores: stores}
}

func SetupAdminRoutes(router fiber.Router, candidates CandidateReader, promoter Promoter, stores StoreReplacer) {
	h := NewAdminHandler(candidates, promoter, stores)

	router.Get("/candidates", h.ListCandidates)
	router.Get("/candidates/:id", h.GetCandidate)
	router.Post("/verify-candidate", h.VerifyCandidate)
	router.Post("/seed-stores", h.SeedStores)
}

// ListCandidates godoc
// @Summary List discovered candidates
// @Tags admin
// @Produce json
// @Success 200 {object} CandidateListResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/candidates [get]
func (h *AdminHandler) ListCandidates(c *fiber.Ctx) error {
	candidates, err := h.candidates.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(CandidateListResponse{Candidates: candidates})
}

// GetCandidate godoc
// @Summary Get candidate by ID
// @Tags admin
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.Candidate
// @Failure 404 {object} ErrorResponse
// @Router /admin/candidates/{id} [get]
func (h *AdminHandler) GetCandidate(c *fiber.Ctx) error {
	candidate, err := h.candidates.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(candidate)
}

// VerifyCandidate godoc
// @Summary Promote a candidate to a published store
// @Description Address falls back to "{city}, {state}, USA", coordinates to the US midpoint
// @Tags admin
// @Accept json
// @Produce json
// @Param request body VerifyCandidateRequest true "Candidate ID and optional overrides"
// @Success 200 {object} VerifyCandidateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/verify-candidate [post]
func (h *AdminHandler) VerifyCandidate(c *fiber.Ctx) error {
	var req VerifyCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	id := strings.TrimSpace(req.CandidateID)
	if id == "" {
		return apperr.Validation("candidateId", "candidateId is required")
	}

	store, err := h.promoter.Promote(c.UserContext(), id, &promotion.Overrides{
		Address: req.Address,
		Lat:     req.Lat,
		Lng:     req.Lng,
	})
	if err != nil {
		return err
	}

	return c.JSON(VerifyCandidateResponse{
		Store:   store,
		Message: "Candidate verified and added to stores",
	})
}

// SeedStores godoc
// @Summary Replace published stores with the seed list
// @Tags admin
// @Produce json
// @Success 200 {object} SeedStoresResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/seed-stores [post]
func (h *AdminHandler) SeedStores(c *fiber.Ctx) error {
	written, err := h.stores.ReplaceAll(c.UserContext(), models.SeedStores())
	if err != nil {
		return err
	}

	summaries := make([]models.StoreSummary, 0, len(written))
	for _, s := range written {
		summaries = append(summaries, s.Summary())
	}

	return c.JSON(SeedStoresResponse{
		Message: fmt.Sprintf("Seeded %d verified stores", len(written)),
		Stores:  summaries,
	})
}
