package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"crash-dashboard-service/internal/dataset/core/domain"
	"crash-dashboard-service/internal/dataset/core/ports"
)

// Column names for a crash table kept in Postgres. Optional columns are
// probed against information_schema before the load query is built, so a
// table without coordinates or hour/day columns still loads.
const (
	colBorough   = "borough"
	colCrashDate = "crash_date"
	colYear      = "crash_year"
	colInjured   = "persons_injured"
	colKilled    = "persons_killed"
	colHour      = "hour"
	colDayOfWeek = "day_of_week"
	colLatitude  = "latitude"
	colLongitude = "longitude"

	vehicleColPrefix = "vehicle_type_code"
	factorColPrefix  = "contributing_factor_vehicle"
)

const probeColumnsSQL = `
SELECT column_name
FROM information_schema.columns
WHERE table_name = $1
ORDER BY ordinal_position`

type Source struct {
	db    DB
	table string
}

func NewSource(db DB, table string) *Source {
	return &Source{db: db, table: table}
}

var _ ports.CrashSourcePort = (*Source)(nil)

func (s *Source) LoadCrashes(ctx context.Context) ([]domain.CrashRecord, domain.Schema, error) {
	cols, err := s.probeColumns(ctx)
	if err != nil {
		return nil, domain.Schema{}, fmt.Errorf("probe crash table columns: %w", err)
	}

	lay, err := newLayout(s.table, cols)
	if err != nil {
		return nil, domain.Schema{}, err
	}

	rows, err := s.db.QueryContext(ctx, lay.query)
	if err != nil {
		return nil, domain.Schema{}, fmt.Errorf("load crash table: %w", err)
	}
	defer rows.Close()

	var records []domain.CrashRecord
	for rows.Next() {
		rec, err := lay.scan(rows)
		if err != nil {
			return nil, domain.Schema{}, fmt.Errorf("scan crash row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Schema{}, err
	}

	return records, lay.schema, nil
}

func (s *Source) probeColumns(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, probeColumnsSQL, s.table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols = append(cols, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %q has no columns (does it exist?)", s.table)
	}
	return cols, nil
}

// layout carries the SELECT built from the probed columns and scans its
// rows in the same order the columns were selected.
type layout struct {
	schema domain.Schema
	query  string

	hasCrashDate bool
	hasYear      bool
	hasHour      bool
	hasDayOfWeek bool

	vehicleCount int
	factorCount  int
}

func newLayout(table string, cols []string) (*layout, error) {
	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c] = struct{}{}
	}
	has := func(name string) bool {
		_, ok := present[name]
		return ok
	}

	if !has(colBorough) || !has(colInjured) || !has(colKilled) {
		return nil, fmt.Errorf("crash table %q: missing required column (need %q, %q, %q)",
			table, colBorough, colInjured, colKilled)
	}

	lay := &layout{
		hasCrashDate: has(colCrashDate),
		hasYear:      has(colYear),
		hasHour:      has(colHour),
		hasDayOfWeek: has(colDayOfWeek),
	}
	hasCoords := has(colLatitude) && has(colLongitude)

	lay.schema = domain.Schema{
		HasCrashDate:   lay.hasCrashDate,
		HasYear:        lay.hasYear,
		HasHour:        lay.hasHour,
		HasDayOfWeek:   lay.hasDayOfWeek,
		HasCoordinates: hasCoords,
	}

	// Selection order must match layout.scan.
	selected := []string{colBorough, colInjured, colKilled}
	if lay.hasCrashDate {
		selected = append(selected, colCrashDate)
	}
	if lay.hasYear {
		selected = append(selected, colYear)
	}
	if lay.hasHour {
		selected = append(selected, colHour)
	}
	if lay.hasDayOfWeek {
		selected = append(selected, colDayOfWeek)
	}
	if hasCoords {
		selected = append(selected, colLatitude, colLongitude)
	}
	for _, c := range cols {
		if strings.HasPrefix(c, vehicleColPrefix) {
			selected = append(selected, c)
			lay.vehicleCount++
		}
	}
	for _, c := range cols {
		if strings.HasPrefix(c, factorColPrefix) {
			selected = append(selected, c)
			lay.factorCount++
		}
	}

	quoted := make([]string, len(selected))
	for i, c := range selected {
		quoted[i] = pq.QuoteIdentifier(c)
	}
	lay.query = "SELECT " + strings.Join(quoted, ", ") + " FROM " + pq.QuoteIdentifier(table)

	return lay, nil
}

func (l *layout) scan(rows RowScanner) (domain.CrashRecord, error) {
	var (
		borough   sql.NullString
		injured   sql.NullInt64
		killed    sql.NullInt64
		crashDate sql.NullTime
		year      sql.NullInt64
		hour      sql.NullInt64
		dayOfWeek sql.NullString
		latitude  sql.NullFloat64
		longitude sql.NullFloat64
	)

	dest := []any{&borough, &injured, &killed}
	if l.hasCrashDate {
		dest = append(dest, &crashDate)
	}
	if l.hasYear {
		dest = append(dest, &year)
	}
	if l.hasHour {
		dest = append(dest, &hour)
	}
	if l.hasDayOfWeek {
		dest = append(dest, &dayOfWeek)
	}
	if l.schema.HasCoordinates {
		dest = append(dest, &latitude, &longitude)
	}

	vehicles := make([]sql.NullString, l.vehicleCount)
	for i := range vehicles {
		dest = append(dest, &vehicles[i])
	}
	factors := make([]sql.NullString, l.factorCount)
	for i := range factors {
		dest = append(dest, &factors[i])
	}

	if err := rows.Scan(dest...); err != nil {
		return domain.CrashRecord{}, err
	}

	rec := domain.CrashRecord{
		Borough: borough.String,
		Injured: injured.Int64,
		Killed:  killed.Int64,
	}
	if crashDate.Valid {
		t := crashDate.Time
		rec.CrashDate = &t
	}
	if year.Valid {
		y := int(year.Int64)
		rec.Year = &y
	}
	if hour.Valid {
		h := int(hour.Int64)
		rec.Hour = &h
	}
	rec.DayOfWeek = dayOfWeek.String
	if latitude.Valid {
		v := latitude.Float64
		rec.Latitude = &v
	}
	if longitude.Valid {
		v := longitude.Float64
		rec.Longitude = &v
	}
	for _, v := range vehicles {
		if v.Valid && v.String != "" {
			rec.VehicleTypes = append(rec.VehicleTypes, v.String)
		}
	}
	for _, f := range factors {
		if f.Valid && f.String != "" {
			rec.ContributingFactors = append(rec.ContributingFactors, f.String)
		}
	}

	return rec, nil
}
