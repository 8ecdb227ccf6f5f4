package domain

// InjuryType narrows rows by casualty outcome.
type InjuryType string

const (
	InjuryAll     InjuryType = "all"
	InjuryInjured InjuryType = "injured"
	InjuryKilled  InjuryType = "killed"
)

// FilterSelection is one request's worth of filter choices. Nil fields
// and empty lists mean "no filter" for that control; a selection is built
// per request and never persisted.
type FilterSelection struct {
	Borough             *string
	Year                *int
	InjuryType          InjuryType
	VehicleTypes        []string
	ContributingFactors []string
}
