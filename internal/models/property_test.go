package models

import "testing"

func TestSearchCriteriaIsEmpty(t *testing.T) {
	var nilCriteria *SearchCriteria
	if !nilCriteria.IsEmpty() {
		t.Error("nil criteria must be empty")
	}

	if !(&SearchCriteria{}).IsEmpty() {
		t.Error("zero-value criteria must be empty")
	}

	budget := 100000.0
	cases := []SearchCriteria{
		{Location: "miami"},
		{MaxBudget: &budget},
		{Amenities: []string{"pool"}},
	}
	for i, c := range cases {
		if c.IsEmpty() {
			t.Errorf("case %d must not be empty: %+v", i, c)
		}
	}
}
