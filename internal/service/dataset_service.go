package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"estatescout/internal/models"

	"go.uber.org/zap"
)

const (
	basicsFile          = "property_basics.json"
	characteristicsFile = "property_characteristics.json"
	imagesFile          = "property_images.json"
)

// DatasetService reads the three listing sources and merges them into
// unified property records. Records are rebuilt fresh on every call; the
// datasets are never mutated.
type DatasetService struct {
	dir    string
	logger *zap.Logger
}

func NewDatasetService(dir string, logger *zap.Logger) *DatasetService {
	return &DatasetService{
		dir:    dir,
		logger: logger,
	}
}

// LoadAll reads and merges all three sources. A source that is missing or
// unparseable is treated as empty, so a broken overlay file degrades to
// records without those fields instead of failing the request.
func (s *DatasetService) LoadAll() []models.Property {
	var basics []models.PropertyBasics
	var characteristics []models.PropertyCharacteristics
	var images []models.PropertyImage

	s.loadJSON(basicsFile, &basics)
	s.loadJSON(characteristicsFile, &characteristics)
	s.loadJSON(imagesFile, &images)

	return Merge(basics, characteristics, images)
}

func (s *DatasetService) loadJSON(filename string, out any) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		s.logger.Warn("Dataset file unavailable, treating as empty",
			zap.String("file", filename),
			zap.Error(err),
		)
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("Dataset file unparseable, treating as empty",
			zap.String("file", filename),
			zap.Error(err),
		)
	}
}

// Merge left-joins the overlays onto basics by id. Only ids present in
// basics materialize; overlays are indexed by id so the join stays linear.
func Merge(
	basics []models.PropertyBasics,
	characteristics []models.PropertyCharacteristics,
	images []models.PropertyImage,
) []models.Property {
	charByID := make(map[int]models.PropertyCharacteristics, len(characteristics))
	for _, c := range characteristics {
		charByID[c.ID] = c
	}
	imageByID := make(map[int]models.PropertyImage, len(images))
	for _, img := range images {
		imageByID[img.ID] = img
	}

	properties := make([]models.Property, 0, len(basics))
	for _, b := range basics {
		p := models.Property{
			ID:       b.ID,
			Title:    b.Title,
			Location: b.Location,
			Price:    b.Price,
		}
		if c, ok := charByID[b.ID]; ok {
			p.Bedrooms = c.Bedrooms
			p.Bathrooms = c.Bathrooms
			p.SizeSqft = c.SizeSqft
			p.Amenities = c.Amenities
			p.YearBuilt = c.YearBuilt
			p.SchoolRating = c.SchoolRating
		}
		if img, ok := imageByID[b.ID]; ok {
			p.ImageURL = img.ImageURL
		}
		properties = append(properties, p)
	}

	return properties
}

// Stats summarizes the merged dataset for no-match explanations.
func Stats(properties []models.Property) models.DatasetStats {
	stats := models.DatasetStats{Total: len(properties)}

	locations := make(map[string]struct{})
	bedrooms := make(map[int]struct{})
	bathrooms := make(map[int]struct{})

	for i, p := range properties {
		if p.Location != "" {
			locations[p.Location] = struct{}{}
		}
		if i == 0 || p.Price < stats.MinPrice {
			stats.MinPrice = p.Price
		}
		if p.Price > stats.MaxPrice {
			stats.MaxPrice = p.Price
		}
		if p.Bedrooms != nil {
			bedrooms[*p.Bedrooms] = struct{}{}
		}
		if p.Bathrooms != nil {
			bathrooms[*p.Bathrooms] = struct{}{}
		}
	}

	for loc := range locations {
		stats.Locations = append(stats.Locations, loc)
	}
	sort.Strings(stats.Locations)

	for b := range bedrooms {
		stats.BedroomOptions = append(stats.BedroomOptions, b)
	}
	sort.Ints(stats.BedroomOptions)

	for b := range bathrooms {
		stats.BathroomOptions = append(stats.BathroomOptions, b)
	}
	sort.Ints(stats.BathroomOptions)

	return stats
}
