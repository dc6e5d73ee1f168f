package models

// ValuationInput is the fixed-shape request body of the external valuation
// service. Exactly one of lot_area (SFH) or building_area (Condo) is
// non-zero.
type ValuationInput struct {
	PropertyType string  `json:"property_type"`
	LotArea      float64 `json:"lot_area"`
	BuildingArea float64 `json:"building_area"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	YearBuilt    int     `json:"year_built"`
	HasPool      bool    `json:"has_pool"`
	HasGarage    bool    `json:"has_garage"`
	SchoolRating int     `json:"school_rating"`
}
