package models

const (
	BuildingResidential = "Residential"
	BuildingCommercial  = "Commercial"
	BuildingIndustrial  = "Industrial"
)

// PredictionRequest is the inbound body of a prediction call. The numeric
// fields are pointers so an absent field is distinguishable from an explicit
// zero.
type PredictionRequest struct {
	BuildingType      string   `json:"building_type"`
	SquareFootage     *float64 `json:"square_footage"`
	NumberOfOccupants *float64 `json:"number_of_occupants"`
	AppliancesUsed    *float64 `json:"appliances_used"`
}

// Missing reports whether any of the four required fields is absent.
func (r PredictionRequest) Missing() bool {
	return r.BuildingType == "" ||
		r.SquareFootage == nil ||
		r.NumberOfOccupants == nil ||
		r.AppliancesUsed == nil
}

// Input converts a validated request into the outbound backend body.
func (r PredictionRequest) Input() PredictionInput {
	return PredictionInput{
		BuildingType:      r.BuildingType,
		SquareFootage:     *r.SquareFootage,
		NumberOfOccupants: *r.NumberOfOccupants,
		AppliancesUsed:    *r.AppliancesUsed,
	}
}

// PredictionInput is the body forwarded to the backend: exactly these four
// fields, no more, no less.
type PredictionInput struct {
	BuildingType      string  `json:"building_type"`
	SquareFootage     float64 `json:"square_footage"`
	NumberOfOccupants float64 `json:"number_of_occupants"`
	AppliancesUsed    float64 `json:"appliances_used"`
}

// Factors is the backend's decomposition of the predicted consumption into
// per-input contributions.
type Factors struct {
	BuildingType      float64 `json:"building_type"`
	SquareFootage     float64 `json:"square_footage"`
	NumberOfOccupants float64 `json:"number_of_occupants"`
	AppliancesUsed    float64 `json:"appliances_used"`
}

type PredictionResult struct {
	EnergyConsumption float64 `json:"energy_consumption"`
	Unit              string  `json:"unit"`
	Factors           Factors `json:"factors"`
}

// Normalize fills in defaults for fields the backend may omit, so rendering
// never sees a partially populated result. Omitted numeric fields decode to
// zero already; only the unit needs a fallback.
func (r *PredictionResult) Normalize() {
	if r.Unit == "" {
		r.Unit = "kWh"
	}
}

// Monthly returns the displayed monthly consumption: a quarter of whatever
// total the backend reports. The divisor is a fixed display contract.
func (r PredictionResult) Monthly() float64 {
	return r.EnergyConsumption / 4
}
