package fiber

type FilterOptionsResponse struct {
	Boroughs            []string `json:"boroughs"`
	Years               []int    `json:"years"`
	InjuryTypes         []string `json:"injury_types"`
	VehicleTypes        []string `json:"vehicle_types"`
	ContributingFactors []string `json:"contributing_factors"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty"`
}
