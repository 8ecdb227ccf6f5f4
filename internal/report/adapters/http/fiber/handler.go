package fiber

import (
	"context"
	"errors"
	"net/http"

	"crash-dashboard-service/internal/report/core/domain"
	"crash-dashboard-service/internal/report/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GenerateReportUseCase interface {
	Execute(ctx context.Context, in usecase.GenerateReportInput) (*domain.Report, error)
}

type ReportHandler struct {
	uc GenerateReportUseCase
}

func NewReportHandler(uc GenerateReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GenerateReport godoc
// @Summary Generate a dashboard report
// @Description Filters the crash dataset and returns five chart specifications plus a summary line
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body GenerateReportRequest true "Filter selection"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /report [post]
func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	var req GenerateReportRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.GenerateReportInput{
		InjuryType:          req.InjuryType,
		VehicleTypes:        req.VehicleTypes,
		ContributingFactors: req.ContributingFactors,
	}
	if req.Borough != "" {
		borough := req.Borough
		input.Borough = &borough
	}
	input.Year = req.Year

	report, err := h.uc.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInjuryType):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_selection",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toReportResponse(report))
}

// The null-borough bucket is keyed by "" in the domain; the API surfaces
// it as UNKNOWN.
const unknownBoroughLabel = "UNKNOWN"

func toReportResponse(r *domain.Report) ReportResponse {
	resp := ReportResponse{
		CrashesByBorough: BarChartResponse{Empty: r.BoroughCounts.Empty},
		CrashesOverYears: TimeSeriesResponse{Empty: r.YearlyCounts.Empty},
		HourDayDensity:   HeatmapResponse{Empty: r.HourDayDensity.Empty},
		InjuredVsKilled:  DistributionResponse{Empty: r.InjurySplit.Empty},
		CrashLocations:   MapChartResponse{Empty: r.CrashMap.Empty, Sampled: r.CrashMap.Sampled},
		MatchCount:       r.MatchCount,
		Summary:          r.Summary,
	}

	for _, b := range r.BoroughCounts.Bars {
		label := b.Label
		if label == "" {
			label = unknownBoroughLabel
		}
		resp.CrashesByBorough.Bars = append(resp.CrashesByBorough.Bars, BarBucketResponse{
			Label: label,
			Count: b.Count,
		})
	}
	for _, p := range r.YearlyCounts.Points {
		resp.CrashesOverYears.Points = append(resp.CrashesOverYears.Points, TimePointResponse{
			Year:  p.Year,
			Count: p.Count,
		})
	}
	for _, cell := range r.HourDayDensity.Cells {
		resp.HourDayDensity.Cells = append(resp.HourDayDensity.Cells, HeatmapCellResponse{
			DayOfWeek: cell.DayOfWeek,
			Hour:      cell.Hour,
			Count:     cell.Count,
		})
	}
	for _, s := range r.InjurySplit.Slices {
		resp.InjuredVsKilled.Slices = append(resp.InjuredVsKilled.Slices, DistributionSliceResponse{
			Category: s.Category,
			Total:    s.Total,
		})
	}
	for _, p := range r.CrashMap.Points {
		resp.CrashLocations.Points = append(resp.CrashLocations.Points, MapPointResponse{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Borough:   p.Borough,
			CrashDate: p.CrashDate,
		})
	}

	return resp
}
