package fiber

import (
	"context"
	"net/http"

	"crash-dashboard-service/internal/dataset/core/domain"

	"github.com/gofiber/fiber/v2"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (domain.FilterOptions, error)
}

type FiltersHandler struct {
	uc GetFilterOptionsUseCase
}

func NewFiltersHandler(uc GetFilterOptionsUseCase) *FiltersHandler {
	return &FiltersHandler{uc: uc}
}

// The injury-type control is a fixed enum, not data-driven.
var injuryTypeOptions = []string{"all", "injured", "killed"}

// GetFilterOptions godoc
// @Summary List filter options
// @Description Returns the distinct values available for each dashboard filter control
// @Tags Filters
// @Produce json
// @Success 200 {object} FilterOptionsResponse
// @Failure 500 {object} ErrorResponse
// @Router /filters [get]
func (h *FiltersHandler) GetFilterOptions(c *fiber.Ctx) error {
	opts, err := h.uc.Execute(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(FilterOptionsResponse{
		Boroughs:            opts.Boroughs,
		Years:               opts.Years,
		InjuryTypes:         injuryTypeOptions,
		VehicleTypes:        opts.VehicleTypes,
		ContributingFactors: opts.ContributingFactors,
	})
}
