package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"crash-dashboard-service/internal/dataset/core/domain"
	"crash-dashboard-service/internal/dataset/core/ports"
)

// Column names as they appear in the NYC collisions export.
const (
	colBorough   = "BOROUGH"
	colCrashDate = "CRASH DATE"
	colYear      = "CRASH_YEAR"
	colInjured   = "NUMBER OF PERSONS INJURED"
	colKilled    = "NUMBER OF PERSONS KILLED"
	colHour      = "HOUR"
	colDayOfWeek = "DAY_OF_WEEK"
	colLatitude  = "LATITUDE"
	colLongitude = "LONGITUDE"

	// Per-vehicle columns are numbered; any column containing these
	// markers counts (VEHICLE TYPE CODE 1, VEHICLE TYPE CODE 2, ...).
	vehicleColMark = "VEHICLE TYPE CODE"
	factorColMark  = "CONTRIBUTING FACTOR VEHICLE"
)

// Date layouts tried in order when parsing the crash date.
var dateLayouts = []string{
	"01/02/2006",
	"2006-01-02",
	"01/02/2006 15:04",
	"2006-01-02 15:04:05",
}

type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

var _ ports.CrashSourcePort = (*Source)(nil)

func (s *Source) LoadCrashes(ctx context.Context) ([]domain.CrashRecord, domain.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.Schema{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, domain.Schema{}, fmt.Errorf("open crash csv: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	head, err := cr.Read()
	if err != nil {
		return nil, domain.Schema{}, fmt.Errorf("read crash csv header: %w", err)
	}

	lay, err := newLayout(head)
	if err != nil {
		return nil, domain.Schema{}, err
	}

	var records []domain.CrashRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.Schema{}, fmt.Errorf("read crash csv row %d: %w", len(records)+2, err)
		}
		records = append(records, lay.record(row))
	}

	return records, lay.schema(), nil
}

// layout maps the probed header to column positions; -1 marks an absent
// column.
type layout struct {
	borough   int
	crashDate int
	year      int
	injured   int
	killed    int
	hour      int
	dayOfWeek int
	latitude  int
	longitude int

	vehicleCols []int
	factorCols  []int
}

func newLayout(head []string) (*layout, error) {
	cx := make(map[string]int, len(head))
	for i, name := range head {
		cx[strings.TrimSpace(name)] = i
	}
	pos := func(name string) int {
		if p, ok := cx[name]; ok {
			return p
		}
		return -1
	}

	lay := &layout{
		borough:   pos(colBorough),
		crashDate: pos(colCrashDate),
		year:      pos(colYear),
		injured:   pos(colInjured),
		killed:    pos(colKilled),
		hour:      pos(colHour),
		dayOfWeek: pos(colDayOfWeek),
		latitude:  pos(colLatitude),
		longitude: pos(colLongitude),
	}

	for i, name := range head {
		switch {
		case strings.Contains(name, vehicleColMark):
			lay.vehicleCols = append(lay.vehicleCols, i)
		case strings.Contains(name, factorColMark):
			lay.factorCols = append(lay.factorCols, i)
		}
	}

	if lay.borough < 0 || lay.injured < 0 || lay.killed < 0 {
		return nil, fmt.Errorf("crash csv: missing required column (need %q, %q, %q)",
			colBorough, colInjured, colKilled)
	}

	return lay, nil
}

func (l *layout) schema() domain.Schema {
	return domain.Schema{
		HasCrashDate:   l.crashDate >= 0,
		HasYear:        l.year >= 0,
		HasHour:        l.hour >= 0,
		HasDayOfWeek:   l.dayOfWeek >= 0,
		HasCoordinates: l.latitude >= 0 && l.longitude >= 0,
	}
}

// record coerces one row. Malformed values become null (or zero for the
// casualty counts), never an error; only structural problems abort a load.
func (l *layout) record(row []string) domain.CrashRecord {
	rec := domain.CrashRecord{
		Borough:   field(row, l.borough),
		CrashDate: parseDate(field(row, l.crashDate)),
		Year:      parseIntPtr(field(row, l.year)),
		Injured:   parseCount(field(row, l.injured)),
		Killed:    parseCount(field(row, l.killed)),
		Hour:      parseIntPtr(field(row, l.hour)),
		DayOfWeek: field(row, l.dayOfWeek),
		Latitude:  parseFloatPtr(field(row, l.latitude)),
		Longitude: parseFloatPtr(field(row, l.longitude)),
	}

	for _, c := range l.vehicleCols {
		if v := field(row, c); v != "" {
			rec.VehicleTypes = append(rec.VehicleTypes, v)
		}
	}
	for _, c := range l.factorCols {
		if v := field(row, c); v != "" {
			rec.ContributingFactors = append(rec.ContributingFactors, v)
		}
	}

	return rec
}

// field returns the trimmed cell value, tolerating short rows.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, lay := range dateLayouts {
		if t, err := time.Parse(lay, s); err == nil {
			return &t
		}
	}
	return nil
}

// parseIntPtr accepts plain integers and float renderings like "2020.0",
// which show up when the column passed through a dataframe with nulls.
func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(f)
		return &n
	}
	return nil
}

func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return &f
	}
	return nil
}
