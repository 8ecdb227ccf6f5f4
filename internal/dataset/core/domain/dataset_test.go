package domain_test

import (
	"testing"
	"time"

	"crash-dashboard-service/internal/dataset/core/domain"
)

func intPtr(n int) *int { return &n }

func datePtr(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

// ------------------------------------------------------------
// YEAR DERIVATION
// ------------------------------------------------------------

func TestBuildDataset_DerivesYearFromCrashDate(t *testing.T) {
	records := []domain.CrashRecord{
		{Borough: "QUEENS", CrashDate: datePtr(2019, 5, 20)},
		{Borough: "QUEENS", Year: intPtr(2021), CrashDate: datePtr(2020, 1, 1)}, // explicit year wins
		{Borough: "QUEENS"}, // neither date nor year
	}

	ds := domain.BuildDataset(records, domain.Schema{HasCrashDate: true})

	if ds.Records[0].Year == nil || *ds.Records[0].Year != 2019 {
		t.Fatalf("expected derived year 2019, got %v", ds.Records[0].Year)
	}
	if *ds.Records[1].Year != 2021 {
		t.Fatalf("expected explicit year 2021 to survive, got %d", *ds.Records[1].Year)
	}
	if ds.Records[2].Year != nil {
		t.Fatalf("expected nil year without a date, got %d", *ds.Records[2].Year)
	}
	if !ds.Schema.HasYear {
		t.Fatalf("a source with crash dates must report HasYear")
	}
}

func TestBuildDataset_NoDateNoYear(t *testing.T) {
	ds := domain.BuildDataset([]domain.CrashRecord{{Borough: "BRONX"}}, domain.Schema{})

	if ds.Schema.HasYear {
		t.Fatalf("expected HasYear=false for a dateless source")
	}
	if len(ds.Options.Years) != 0 {
		t.Fatalf("expected no year options, got %v", ds.Options.Years)
	}
}

// ------------------------------------------------------------
// FILTER OPTIONS: distinct, sorted, nulls dropped
// ------------------------------------------------------------

func TestBuildDataset_FilterOptions(t *testing.T) {
	records := []domain.CrashRecord{
		{
			Borough: "QUEENS", Year: intPtr(2021),
			VehicleTypes:        []string{"Taxi", "Sedan"},
			ContributingFactors: []string{"Unspecified"},
		},
		{
			Borough: "BROOKLYN", Year: intPtr(2020),
			VehicleTypes:        []string{"Sedan"}, // duplicate across rows
			ContributingFactors: []string{"Alcohol Involvement", "Unspecified"},
		},
		{
			Borough: "", Year: nil, // null borough and year stay out of options
			VehicleTypes: []string{"Bike"},
		},
	}

	ds := domain.BuildDataset(records, domain.Schema{HasYear: true})

	wantBoroughs := []string{"BROOKLYN", "QUEENS"}
	if len(ds.Options.Boroughs) != len(wantBoroughs) {
		t.Fatalf("expected boroughs %v, got %v", wantBoroughs, ds.Options.Boroughs)
	}
	for i, b := range wantBoroughs {
		if ds.Options.Boroughs[i] != b {
			t.Fatalf("expected boroughs %v, got %v", wantBoroughs, ds.Options.Boroughs)
		}
	}

	wantYears := []int{2020, 2021}
	if len(ds.Options.Years) != 2 || ds.Options.Years[0] != wantYears[0] || ds.Options.Years[1] != wantYears[1] {
		t.Fatalf("expected years %v, got %v", wantYears, ds.Options.Years)
	}

	wantVehicles := []string{"Bike", "Sedan", "Taxi"}
	if len(ds.Options.VehicleTypes) != len(wantVehicles) {
		t.Fatalf("expected vehicle types %v, got %v", wantVehicles, ds.Options.VehicleTypes)
	}
	for i, v := range wantVehicles {
		if ds.Options.VehicleTypes[i] != v {
			t.Fatalf("expected vehicle types %v, got %v", wantVehicles, ds.Options.VehicleTypes)
		}
	}

	wantFactors := []string{"Alcohol Involvement", "Unspecified"}
	if len(ds.Options.ContributingFactors) != len(wantFactors) {
		t.Fatalf("expected factors %v, got %v", wantFactors, ds.Options.ContributingFactors)
	}
}
