package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/repository"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	stats repository.StatsRepository
}

// NewStatsHandler constructs handler.
func NewStatsHandler(stats repository.StatsRepository) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /stats/. Super admins receive the full counter set;
// general admins the reduced one.
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	stats, err := h.stats.Collect(c.UserContext(), principal.Role == domain.RoleSuperAdmin)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
