package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "crash-dashboard-service/internal/report/adapters/http/fiber"
	"crash-dashboard-service/internal/report/core/domain"
	"crash-dashboard-service/internal/report/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.
type fakeGenerateReportUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GenerateReportInput) (*domain.Report, error)
	lastInput usecase.GenerateReportInput
	called    bool
}

func (f *fakeGenerateReportUseCase) Execute(ctx context.Context, in usecase.GenerateReportInput) (*domain.Report, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

func setupApp(t *testing.T, uc httpadapter.GenerateReportUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewReportHandler(uc)
	app.Post("/report", h.GenerateReport)
	return app
}

func postReport(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	return resp
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGenerateReport_Success(t *testing.T) {
	uc := &fakeGenerateReportUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GenerateReportInput) (*domain.Report, error) {
			if in.Borough == nil || *in.Borough != "BROOKLYN" {
				t.Fatalf("expected borough=BROOKLYN, got %v", in.Borough)
			}
			if in.Year == nil || *in.Year != 2020 {
				t.Fatalf("expected year=2020, got %v", in.Year)
			}
			if in.InjuryType != "killed" {
				t.Fatalf("expected injury_type=killed, got %s", in.InjuryType)
			}
			if len(in.VehicleTypes) != 2 {
				t.Fatalf("expected 2 vehicle types, got %v", in.VehicleTypes)
			}
			return &domain.Report{
				BoroughCounts: domain.BarChart{Bars: []domain.BarBucket{
					{Label: "BROOKLYN", Count: 12},
					{Label: "", Count: 3},
				}},
				YearlyCounts: domain.TimeSeries{Points: []domain.TimePoint{{Year: 2020, Count: 15}}},
				InjurySplit: domain.Distribution{Slices: []domain.DistributionSlice{
					{Category: "Injured", Total: 10},
					{Category: "Killed", Total: 5},
				}},
				HourDayDensity: domain.Heatmap{Empty: true},
				CrashMap:       domain.MapChart{Empty: true},
				MatchCount:     15,
				Summary:        "Showing 15 crashes after filters.",
			}, nil
		},
	}

	app := setupApp(t, uc)

	resp := postReport(t, app, `{
		"borough": "BROOKLYN",
		"year": 2020,
		"injury_type": "killed",
		"vehicle_types": ["Sedan", "Taxi"]
	}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !uc.called {
		t.Fatalf("expected usecase to be called")
	}

	var body httpadapter.ReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Summary != "Showing 15 crashes after filters." {
		t.Fatalf("unexpected summary: %q", body.Summary)
	}
	if body.MatchCount != 15 {
		t.Fatalf("expected match_count=15, got %d", body.MatchCount)
	}
	// Null-borough bucket is surfaced as UNKNOWN.
	if len(body.CrashesByBorough.Bars) != 2 || body.CrashesByBorough.Bars[1].Label != "UNKNOWN" {
		t.Fatalf("expected UNKNOWN bucket, got %+v", body.CrashesByBorough.Bars)
	}
	if !body.HourDayDensity.Empty || !body.CrashLocations.Empty {
		t.Fatalf("expected empty markers to pass through")
	}
}

// ------------------------------------------------------------
// EMPTY BODY FIELDS: no filters sent downstream
// ------------------------------------------------------------

func TestGenerateReport_EmptySelection(t *testing.T) {
	uc := &fakeGenerateReportUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GenerateReportInput) (*domain.Report, error) {
			if in.Borough != nil || in.Year != nil {
				t.Fatalf("expected no borough/year filter, got %v / %v", in.Borough, in.Year)
			}
			return &domain.Report{Summary: "Showing 100 crashes after filters.", MatchCount: 100}, nil
		},
	}

	app := setupApp(t, uc)

	resp := postReport(t, app, `{}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// VALIDATION AND ERROR MAPPING
// ------------------------------------------------------------

func TestGenerateReport_InvalidJSON(t *testing.T) {
	uc := &fakeGenerateReportUseCase{}
	app := setupApp(t, uc)

	resp := postReport(t, app, `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("usecase should not be called on malformed JSON")
	}
}

func TestGenerateReport_InvalidInjuryType(t *testing.T) {
	uc := &fakeGenerateReportUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GenerateReportInput) (*domain.Report, error) {
			return nil, usecase.ErrInvalidInjuryType
		},
	}
	app := setupApp(t, uc)

	resp := postReport(t, app, `{"injury_type": "maimed"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}

	var body httpadapter.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "invalid_selection" {
		t.Fatalf("expected error=invalid_selection, got %q", body.Error)
	}
}

func TestGenerateReport_InternalError(t *testing.T) {
	uc := &fakeGenerateReportUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GenerateReportInput) (*domain.Report, error) {
			return nil, errors.New("boom")
		},
	}
	app := setupApp(t, uc)

	resp := postReport(t, app, `{}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}
