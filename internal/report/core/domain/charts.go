package domain

// Chart payloads for the five dashboard figures. Empty marks the
// well-defined "no data to display" placeholder; it is not an error and
// renderers show a blank figure for it.

type BarBucket struct {
	Label string // "" is the null-borough bucket
	Count int64
}

type BarChart struct {
	Empty bool
	Bars  []BarBucket
}

type TimePoint struct {
	Year  int
	Count int64
}

type TimeSeries struct {
	Empty  bool
	Points []TimePoint
}

type HeatmapCell struct {
	DayOfWeek string
	Hour      int
	Count     int64
}

type Heatmap struct {
	Empty bool
	Cells []HeatmapCell
}

type DistributionSlice struct {
	Category string
	Total    int64
}

type Distribution struct {
	Empty  bool
	Slices []DistributionSlice
}

type MapPoint struct {
	Latitude  float64
	Longitude float64
	Borough   string
	CrashDate string // yyyy-mm-dd, "" when unknown
}

type MapChart struct {
	Empty   bool
	Sampled bool // true when the point list was capped
	Points  []MapPoint
}
