package model

// DistanceInfo describes the computed distance between two buildings.
// Meters are rounded to centimeters, kilometers to two decimals
// (meters/10 rounded then /100), per the backend contract.
type DistanceInfo struct {
	Meters      float64 `json:"meters"`
	Kilometers  float64 `json:"kilometers"`
	Type        string  `json:"type"`        // computation method, e.g. "haversine"
	Description string  `json:"description"` // human-readable label
}

// DistanceResult is the full response of GET /distance/between, echoing
// both endpoints of the measured pair alongside the distance itself.
type DistanceResult struct {
	Batiment1 BatimentInfo `json:"batiment1"`
	Batiment2 BatimentInfo `json:"batiment2"`
	Distance  DistanceInfo `json:"distance"`
}
