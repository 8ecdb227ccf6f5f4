package domain

import (
	"fmt"
	"math/rand"
	"sort"

	dataset "crash-dashboard-service/internal/dataset/core/domain"
)

const (
	// Map rendering cost is bounded by sampling past this many points.
	// The seed is fixed so identical filters always yield the identical
	// sample.
	mapSampleCap  = 10000
	mapSampleSeed = 42

	SummaryNoMatches = "No crashes match the filters."
)

// Report is everything one dashboard refresh needs: five chart
// specifications plus the summary line.
type Report struct {
	BoroughCounts  BarChart
	YearlyCounts   TimeSeries
	HourDayDensity Heatmap
	InjurySplit    Distribution
	CrashMap       MapChart
	MatchCount     int
	Summary        string
}

// Generate recomputes the report from scratch. It is a pure function of
// (dataset, selection); the dataset is shared read-only and never mutated,
// so concurrent calls need no locking.
func Generate(ds *dataset.Dataset, sel FilterSelection) *Report {
	filtered := filterRecords(ds.Records, sel)

	// Checked before any aggregation so empty groups never occur below.
	if len(filtered) == 0 {
		return &Report{
			BoroughCounts:  BarChart{Empty: true},
			YearlyCounts:   TimeSeries{Empty: true},
			HourDayDensity: Heatmap{Empty: true},
			InjurySplit:    Distribution{Empty: true},
			CrashMap:       MapChart{Empty: true},
			Summary:        SummaryNoMatches,
		}
	}

	return &Report{
		BoroughCounts:  boroughCounts(filtered),
		YearlyCounts:   yearlyCounts(filtered, ds.Schema),
		HourDayDensity: hourDayDensity(filtered, ds.Schema),
		InjurySplit:    injurySplit(filtered),
		CrashMap:       crashMap(filtered, ds.Schema),
		MatchCount:     len(filtered),
		Summary:        fmt.Sprintf("Showing %d crashes after filters.", len(filtered)),
	}
}

// filterRecords applies the active predicates conjunctively. Each
// predicate narrows the working set independently; they commute on row
// membership, so order is irrelevant.
func filterRecords(records []dataset.CrashRecord, sel FilterSelection) []*dataset.CrashRecord {
	out := make([]*dataset.CrashRecord, 0, len(records))
	for i := range records {
		r := &records[i]
		if sel.Borough != nil && r.Borough != *sel.Borough {
			continue
		}
		if sel.Year != nil && (r.Year == nil || *r.Year != *sel.Year) {
			continue
		}
		switch sel.InjuryType {
		case InjuryInjured:
			if r.Injured <= 0 {
				continue
			}
		case InjuryKilled:
			if r.Killed <= 0 {
				continue
			}
		}
		if len(sel.VehicleTypes) > 0 && !containsAny(r.VehicleTypes, sel.VehicleTypes) {
			continue
		}
		if len(sel.ContributingFactors) > 0 && !containsAny(r.ContributingFactors, sel.ContributingFactors) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// containsAny reports whether any of the row's values equals any selected
// value: OR across the row's per-vehicle columns and across the selection.
func containsAny(values, selected []string) bool {
	for _, v := range values {
		for _, s := range selected {
			if v == s {
				return true
			}
		}
	}
	return false
}

func boroughCounts(rows []*dataset.CrashRecord) BarChart {
	counts := make(map[string]int64)
	for _, r := range rows {
		counts[r.Borough]++
	}

	labels := make([]string, 0, len(counts))
	for b := range counts {
		if b != "" {
			labels = append(labels, b)
		}
	}
	sort.Strings(labels)
	if _, ok := counts[""]; ok {
		// Null borough is its own bucket, shown after the named ones.
		labels = append(labels, "")
	}

	bars := make([]BarBucket, 0, len(labels))
	for _, b := range labels {
		bars = append(bars, BarBucket{Label: b, Count: counts[b]})
	}
	return BarChart{Bars: bars}
}

func yearlyCounts(rows []*dataset.CrashRecord, schema dataset.Schema) TimeSeries {
	if !schema.HasYear {
		return TimeSeries{Empty: true}
	}

	counts := make(map[int]int64)
	for _, r := range rows {
		if r.Year != nil {
			counts[*r.Year]++
		}
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	points := make([]TimePoint, 0, len(years))
	for _, y := range years {
		points = append(points, TimePoint{Year: y, Count: counts[y]})
	}
	return TimeSeries{Points: points}
}

func hourDayDensity(rows []*dataset.CrashRecord, schema dataset.Schema) Heatmap {
	if !schema.HasHour || !schema.HasDayOfWeek {
		return Heatmap{Empty: true}
	}

	type cellKey struct {
		day  string
		hour int
	}
	counts := make(map[cellKey]int64)
	for _, r := range rows {
		if r.Hour == nil || r.DayOfWeek == "" {
			continue
		}
		counts[cellKey{day: r.DayOfWeek, hour: *r.Hour}]++
	}

	keys := make([]cellKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].day != keys[j].day {
			return keys[i].day < keys[j].day
		}
		return keys[i].hour < keys[j].hour
	})

	cells := make([]HeatmapCell, 0, len(keys))
	for _, k := range keys {
		cells = append(cells, HeatmapCell{DayOfWeek: k.day, Hour: k.hour, Count: counts[k]})
	}
	return Heatmap{Cells: cells}
}

func injurySplit(rows []*dataset.CrashRecord) Distribution {
	var injured, killed int64
	for _, r := range rows {
		injured += r.Injured
		killed += r.Killed
	}
	return Distribution{
		Slices: []DistributionSlice{
			{Category: "Injured", Total: injured},
			{Category: "Killed", Total: killed},
		},
	}
}

func crashMap(rows []*dataset.CrashRecord, schema dataset.Schema) MapChart {
	if !schema.HasCoordinates {
		return MapChart{Empty: true}
	}

	located := make([]*dataset.CrashRecord, 0, len(rows))
	for _, r := range rows {
		if r.Latitude != nil && r.Longitude != nil {
			located = append(located, r)
		}
	}

	sampled := false
	if len(located) > mapSampleCap {
		located = sampleRecords(located, mapSampleCap)
		sampled = true
	}

	points := make([]MapPoint, 0, len(located))
	for _, r := range located {
		p := MapPoint{
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
			Borough:   r.Borough,
		}
		if r.CrashDate != nil {
			p.CrashDate = r.CrashDate.Format("2006-01-02")
		}
		points = append(points, p)
	}
	return MapChart{Sampled: sampled, Points: points}
}

// sampleRecords draws exactly n rows without replacement from a PRNG
// seeded the same way every call, so repeated identical filters yield an
// identical sample regardless of platform randomness defaults.
func sampleRecords(rows []*dataset.CrashRecord, n int) []*dataset.CrashRecord {
	rng := rand.New(rand.NewSource(mapSampleSeed))

	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: only the first n positions are needed.
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	idx = idx[:n]
	sort.Ints(idx) // keep source order in the output

	out := make([]*dataset.CrashRecord, n)
	for i, k := range idx {
		out[i] = rows[k]
	}
	return out
}
