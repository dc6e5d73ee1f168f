package service

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"estatescout/internal/models"

	"go.uber.org/zap"
)

func intPtr(n int) *int          { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestMergeJoinsOverlaysByID(t *testing.T) {
	basics := []models.PropertyBasics{
		{ID: 1, Title: "Condo A", Location: "Miami, FL", Price: 300000},
		{ID: 2, Title: "House B", Location: "Austin, TX", Price: 450000},
		{ID: 3, Title: "House C", Location: "Denver, CO", Price: 380000},
	}
	characteristics := []models.PropertyCharacteristics{
		{ID: 1, Bedrooms: intPtr(2), Bathrooms: intPtr(1), SizeSqft: floatPtr(900), Amenities: []string{"pool"}},
		{ID: 3, Bedrooms: intPtr(3)},
		{ID: 99, Bedrooms: intPtr(5)}, // no matching basics record
	}
	images := []models.PropertyImage{
		{ID: 2, ImageURL: "https://img/2.jpg"},
	}

	merged := Merge(basics, characteristics, images)

	if len(merged) != 3 {
		t.Fatalf("expected 3 merged records, got %d", len(merged))
	}
	if merged[0].ID != 1 || merged[0].Bedrooms == nil || *merged[0].Bedrooms != 2 {
		t.Errorf("record 1 did not pick up characteristics: %+v", merged[0])
	}
	if merged[0].ImageURL != "" {
		t.Errorf("record 1 should have no image, got %q", merged[0].ImageURL)
	}
	if merged[1].ImageURL != "https://img/2.jpg" {
		t.Errorf("record 2 should have an image, got %q", merged[1].ImageURL)
	}
	if merged[1].Bedrooms != nil {
		t.Errorf("record 2 should have no bedrooms, got %v", *merged[1].Bedrooms)
	}
	for _, p := range merged {
		if p.ID == 99 {
			t.Error("overlay-only id 99 must not materialize a record")
		}
	}
}

func TestMergePreservesBasicsOrder(t *testing.T) {
	basics := []models.PropertyBasics{
		{ID: 7, Title: "G", Location: "X", Price: 1},
		{ID: 2, Title: "B", Location: "X", Price: 2},
		{ID: 5, Title: "E", Location: "X", Price: 3},
	}

	merged := Merge(basics, nil, nil)

	got := []int{merged[0].ID, merged[1].ID, merged[2].ID}
	if !reflect.DeepEqual(got, []int{7, 2, 5}) {
		t.Errorf("merge must preserve basics order, got %v", got)
	}
}

func TestStats(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Location: "Miami, FL", Price: 300000, Bedrooms: intPtr(2), Bathrooms: intPtr(1)},
		{ID: 2, Location: "Austin, TX", Price: 450000, Bedrooms: intPtr(4), Bathrooms: intPtr(3)},
		{ID: 3, Location: "Miami, FL", Price: 210000, Bedrooms: intPtr(2)},
	}

	stats := Stats(properties)

	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if !reflect.DeepEqual(stats.Locations, []string{"Austin, TX", "Miami, FL"}) {
		t.Errorf("unexpected locations: %v", stats.Locations)
	}
	if stats.MinPrice != 210000 || stats.MaxPrice != 450000 {
		t.Errorf("unexpected price range: %f - %f", stats.MinPrice, stats.MaxPrice)
	}
	if !reflect.DeepEqual(stats.BedroomOptions, []int{2, 4}) {
		t.Errorf("unexpected bedroom options: %v", stats.BedroomOptions)
	}
	if !reflect.DeepEqual(stats.BathroomOptions, []int{1, 3}) {
		t.Errorf("unexpected bathroom options: %v", stats.BathroomOptions)
	}
}

func TestLoadAllMissingOverlayDegrades(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, basicsFile, `[{"id":1,"title":"A","location":"Miami, FL","price":100000}]`)
	// characteristics file intentionally absent
	writeFile(t, dir, imagesFile, `{not json`)

	svc := NewDatasetService(dir, zap.NewNop())
	properties := svc.LoadAll()

	if len(properties) != 1 {
		t.Fatalf("expected 1 property, got %d", len(properties))
	}
	if properties[0].Bedrooms != nil || properties[0].ImageURL != "" {
		t.Errorf("broken overlays must leave fields unset: %+v", properties[0])
	}
}

func TestLoadAllMissingBasicsYieldsEmpty(t *testing.T) {
	svc := NewDatasetService(t.TempDir(), zap.NewNop())
	if properties := svc.LoadAll(); len(properties) != 0 {
		t.Errorf("expected empty result without basics, got %d records", len(properties))
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
