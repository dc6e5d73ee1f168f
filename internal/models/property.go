package models

// PropertyBasics is the identity/price/location source record. A property is
// only materialized when its id appears here.
type PropertyBasics struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

// PropertyCharacteristics is the physical-characteristics overlay.
type PropertyCharacteristics struct {
	ID           int      `json:"id"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	SizeSqft     *float64 `json:"size_sqft,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	YearBuilt    *int     `json:"year_built,omitempty"`
	SchoolRating *int     `json:"school_rating,omitempty"`
}

// PropertyImage is the media overlay.
type PropertyImage struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
}

// Property is the merged view of a listing. Overlay fields are optional: a
// missing source record simply leaves them unset. Prediction fields are
// attached in memory by enrichment and never persisted back to the datasets.
type Property struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Price        float64  `json:"price"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	SizeSqft     *float64 `json:"size_sqft,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	YearBuilt    *int     `json:"year_built,omitempty"`
	SchoolRating *int     `json:"school_rating,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`

	PredictedPrice         *float64 `json:"predicted_price,omitempty"`
	PriceDifference        *float64 `json:"price_difference,omitempty"`
	PriceDifferencePercent *float64 `json:"price_difference_percent,omitempty"`
	AIAnalysis             string   `json:"ai_analysis,omitempty"`
}

// SearchCriteria is structured user intent. A nil/empty field means "no
// constraint on that dimension", never "zero".
type SearchCriteria struct {
	Location  string   `json:"location,omitempty"`
	MaxBudget *float64 `json:"maxBudget,omitempty"`
	MinBudget *float64 `json:"minBudget,omitempty"`
	Bedrooms  *int     `json:"bedrooms,omitempty"`
	Bathrooms *int     `json:"bathrooms,omitempty"`
	MinSize   *float64 `json:"minSize,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// IsEmpty reports whether no dimension is constrained.
func (c *SearchCriteria) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Location == "" &&
		c.MaxBudget == nil &&
		c.MinBudget == nil &&
		c.Bedrooms == nil &&
		c.Bathrooms == nil &&
		c.MinSize == nil &&
		len(c.Amenities) == 0
}

// DatasetStats summarizes what the merged dataset actually contains. The
// orchestrator uses it to explain zero-match searches truthfully.
type DatasetStats struct {
	Total           int
	Locations       []string
	MinPrice        float64
	MaxPrice        float64
	BedroomOptions  []int
	BathroomOptions []int
}
