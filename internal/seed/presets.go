package seed

import (
	_ "embed"
	"fmt"

	"spacedout/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed presets.yml
var presetsYAML []byte

// LocationPreset is a well-known location shipped with the seeder. Presets
// carry pre-resolved coordinates so seeding never reaches the geocoder.
type LocationPreset struct {
	Name      string  `yaml:"name"`
	Address   string  `yaml:"address"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

type presetFile struct {
	Locations []LocationPreset `yaml:"locations"`
}

// LoadPresets parses the embedded preset file.
func LoadPresets() ([]LocationPreset, error) {
	var file presetFile
	if err := yaml.Unmarshal(presetsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse location presets: %w", err)
	}
	return file.Locations, nil
}

// SeedPresetLocations inserts the preset locations, skipping names that
// already exist so reseeding is safe.
func SeedPresetLocations(db *gorm.DB) ([]models.Location, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}

	locations := make([]models.Location, 0, len(presets))
	for _, p := range presets {
		var existing models.Location
		err := db.Where("name = ?", p.Name).First(&existing).Error
		if err == nil {
			locations = append(locations, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to check preset %q: %w", p.Name, err)
		}

		location := models.NewLocation(p.Name, p.Address, p.Latitude, p.Longitude)
		if err := db.Create(location).Error; err != nil {
			return nil, fmt.Errorf("failed to seed preset %q: %w", p.Name, err)
		}
		locations = append(locations, *location)
	}
	return locations, nil
}
