package handlers

import (
	"context"
	"time"

	"github.com/ggorockee/cookiemap/internal/models"
	"github.com/gofiber/fiber/v2"
)

// StoreSearcher public read side of the published store table
type StoreSearcher interface {
	Search(ctx context.Context, query string) ([]models.Store, error)
}

// StoreResponse published store plus the derived isNew flag
type StoreResponse struct {
	models.Store
	IsNew bool `json:"isNew"`
}

// StoreListResponse GET /stores body
type StoreListResponse struct {
	Stores []StoreResponse `json:"stores"`
}

type StoreHandler struct {
	stores StoreSearcher
	now    func() time.Time
}

func NewStoreHandler(stores StoreSearcher) *StoreHandler {
	return &StoreHandler{stores: stores, now: time.Now}
}

func SetupStoreRoutes(router fiber.Router, stores StoreSearcher) {
	h := NewStoreHandler(stores)

	router.Get("/", h.List)
}

// List godoc
// @Summary List published stores
// @Description Verified, in-region stores only
// @Tags stores
// @Produce json
// @Param q query string false "Case-insensitive match on name or address"
// @Success 200 {object} StoreListResponse
// @Failure 500 {object} ErrorResponse
// @Router /stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	stores, err := h.stores.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}

	now := h.now()
	resp := StoreListResponse{Stores: make([]StoreResponse, 0, len(stores))}
	for _, s := range stores {
		resp.Stores = append(resp.Stores, StoreResponse{Store: s, IsNew: s.IsNew(now)})
	}

	return c.JSON(resp)
}
