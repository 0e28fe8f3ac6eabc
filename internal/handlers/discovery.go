package handlers

import (
	"context"

	"github.com/ggorockee/cookiemap/internal/discovery"
	"github.com/ggorockee/cookiemap/internal/models"
	"github.com/gofiber/fiber/v2"
)

// DiscoveryRunner runs one platform discovery
type DiscoveryRunner interface {
	Run(ctx context.Context, req discovery.Request) (*discovery.Result, error)
}

// DiscoveryResponse POST /discovery/run body
type DiscoveryResponse struct {
	RunID      string                   `json:"runId"`
	Platform   models.Platform          `json:"platform"`
	Candidates []models.ParsedCandidate `json:"candidates"`
	Saved      []models.Candidate       `json:"saved"`
	Rejected   int                      `json:"rejected"`
	Message    string                   `json:"message"`
}

type DiscoveryHandler struct {
	runner DiscoveryRunner
}

func NewDiscoveryHandler(runner DiscoveryRunner) *DiscoveryHandler {
	return &DiscoveryHandler{runner: runner}
}

func SetupDiscoveryRoutes(router fiber.Router, runner DiscoveryRunner) {
	h := NewDiscoveryHandler(runner)

	router.Post("/run", h.Run)
}

// Run godoc
// @Summary Run discovery
// @Description Searches one platform, extracts candidates and saves the in-region ones
// @Tags discovery
// @Accept json
// @Produce json
// @Param request body discovery.Request true "Keywords and platform (tiktok|instagram)"
// @Success 200 {object} DiscoveryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery/run [post]
func (h *DiscoveryHandler) Run(c *fiber.Ctx) error {
	var req discovery.Request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := h.runner.Run(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(DiscoveryResponse{
		RunID:      res.RunID,
		Platform:   res.Platform,
		Candidates: res.Candidates,
		Saved:      res.Saved,
		Rejected:   len(res.Rejected),
		Message:    res.Message(),
	})
}
