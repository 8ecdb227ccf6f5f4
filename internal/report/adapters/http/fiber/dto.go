package fiber

// GenerateReportRequest carries one dashboard refresh's filter selection
// @Description Filter selection DTO
type GenerateReportRequest struct {
	Borough             string   `json:"borough"`
	Year                *int     `json:"year"`
	InjuryType          string   `json:"injury_type"` // all | injured | killed
	VehicleTypes        []string `json:"vehicle_types"`
	ContributingFactors []string `json:"contributing_factors"`
}

type BarBucketResponse struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type BarChartResponse struct {
	Empty bool                `json:"empty"`
	Bars  []BarBucketResponse `json:"bars,omitempty"`
}

type TimePointResponse struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

type TimeSeriesResponse struct {
	Empty  bool                `json:"empty"`
	Points []TimePointResponse `json:"points,omitempty"`
}

type HeatmapCellResponse struct {
	DayOfWeek string `json:"day_of_week"`
	Hour      int    `json:"hour"`
	Count     int64  `json:"count"`
}

type HeatmapResponse struct {
	Empty bool                  `json:"empty"`
	Cells []HeatmapCellResponse `json:"cells,omitempty"`
}

type DistributionSliceResponse struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

type DistributionResponse struct {
	Empty  bool                        `json:"empty"`
	Slices []DistributionSliceResponse `json:"slices,omitempty"`
}

type MapPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Borough   string  `json:"borough,omitempty"`
	CrashDate string  `json:"crash_date,omitempty"`
}

type MapChartResponse struct {
	Empty   bool               `json:"empty"`
	Sampled bool               `json:"sampled"`
	Points  []MapPointResponse `json:"points,omitempty"`
}

type ReportResponse struct {
	CrashesByBorough BarChartResponse     `json:"crashes_by_borough"`
	CrashesOverYears TimeSeriesResponse   `json:"crashes_over_years"`
	HourDayDensity   HeatmapResponse      `json:"hour_day_density"`
	InjuredVsKilled  DistributionResponse `json:"injured_vs_killed"`
	CrashLocations   MapChartResponse     `json:"crash_locations"`
	MatchCount       int                  `json:"match_count"`
	Summary          string               `json:"summary"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_selection"`
	Message string `json:"message" example:"invalid injury_type value"`
}
