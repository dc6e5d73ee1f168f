package service

import (
	"strings"

	"estatescout/internal/models"
)

// Filter returns the order-preserving subsequence of properties matching all
// active criteria. A record missing a field referenced by an active criterion
// fails closed: it does not match.
func Filter(properties []models.Property, criteria *models.SearchCriteria) []models.Property {
	if criteria == nil {
		criteria = &models.SearchCriteria{}
	}

	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if matches(p, criteria) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

func matches(p models.Property, c *models.SearchCriteria) bool {
	if c.Location != "" {
		if !strings.Contains(strings.ToLower(p.Location), strings.ToLower(c.Location)) {
			return false
		}
	}

	// Both budget bounds are inclusive.
	if c.MaxBudget != nil && p.Price > *c.MaxBudget {
		return false
	}
	if c.MinBudget != nil && p.Price < *c.MinBudget {
		return false
	}

	// Bedroom/bathroom criteria are minimums.
	if c.Bedrooms != nil {
		if p.Bedrooms == nil || *p.Bedrooms < *c.Bedrooms {
			return false
		}
	}
	if c.Bathrooms != nil {
		if p.Bathrooms == nil || *p.Bathrooms < *c.Bathrooms {
			return false
		}
	}

	if c.MinSize != nil {
		if p.SizeSqft == nil || *p.SizeSqft < *c.MinSize {
			return false
		}
	}

	// At least one requested amenity must appear as a case-insensitive
	// substring of at least one of the record's amenities.
	if len(c.Amenities) > 0 {
		if !hasAnyAmenity(p.Amenities, c.Amenities) {
			return false
		}
	}

	return true
}

func hasAnyAmenity(have, want []string) bool {
	for _, w := range want {
		wLower := strings.ToLower(w)
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), wLower) {
				return true
			}
		}
	}
	return false
}
