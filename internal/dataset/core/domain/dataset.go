package domain

import "sort"

// Schema records which optional columns the source actually carries. It
// is consulted before each dependent aggregate; a missing column degrades
// that chart to the empty marker instead of failing the request.
type Schema struct {
	HasCrashDate   bool
	HasYear        bool
	HasHour        bool
	HasDayOfWeek   bool
	HasCoordinates bool
}

// FilterOptions are the sorted distinct-value lists that populate the UI
// filter controls. Together they are the closed universe of values a
// filter selection may carry.
type FilterOptions struct {
	Boroughs            []string
	Years               []int
	VehicleTypes        []string
	ContributingFactors []string
}

// Dataset is the full crash table plus everything derived from it once at
// load time. It is shared read-only for the process lifetime; nothing
// mutates it after BuildDataset returns.
type Dataset struct {
	Records []CrashRecord
	Schema  Schema
	Options FilterOptions
}

// BuildDataset fills in years derivable from crash dates and computes the
// filter option lists. A year column becomes available when the source
// carries crash dates, even if it had no year column of its own.
func BuildDataset(records []CrashRecord, schema Schema) *Dataset {
	for i := range records {
		r := &records[i]
		if r.Year == nil && r.CrashDate != nil {
			y := r.CrashDate.Year()
			r.Year = &y
		}
	}
	if schema.HasCrashDate {
		schema.HasYear = true
	}

	return &Dataset{
		Records: records,
		Schema:  schema,
		Options: buildOptions(records),
	}
}

func buildOptions(records []CrashRecord) FilterOptions {
	boroughs := make(map[string]struct{})
	years := make(map[int]struct{})
	vehicles := make(map[string]struct{})
	factors := make(map[string]struct{})

	for i := range records {
		r := &records[i]
		if r.Borough != "" {
			boroughs[r.Borough] = struct{}{}
		}
		if r.Year != nil {
			years[*r.Year] = struct{}{}
		}
		// Any value from any per-vehicle column counts.
		for _, v := range r.VehicleTypes {
			vehicles[v] = struct{}{}
		}
		for _, f := range r.ContributingFactors {
			factors[f] = struct{}{}
		}
	}

	return FilterOptions{
		Boroughs:            sortedStrings(boroughs),
		Years:               sortedInts(years),
		VehicleTypes:        sortedStrings(vehicles),
		ContributingFactors: sortedStrings(factors),
	}
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
