package util

import (
	"encoding/json"
	"fmt"
	"os"

	"crowd-server/models/location"
)

// ReadCatalogFromJSON loads a location catalog from JSON on disk. Categories
// are normalised and every record is checked before the catalog is accepted.
func ReadCatalogFromJSON(filePath string) ([]location.Location, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}

	var raw []location.Location
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(raw))
	catalog := make([]location.Location, 0, len(raw))
	for i, l := range raw {
		if l.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %q", l.ID)
		}
		seen[l.ID] = struct{}{}

		category, err := location.ParseCategory(string(l.Category))
		if err != nil {
			return nil, fmt.Errorf("location %q: %w", l.ID, err)
		}
		if l.Capacity <= 0 {
			return nil, fmt.Errorf("location %q: capacity must be positive, got %d", l.ID, l.Capacity)
		}
		if l.Lat < -90 || l.Lat > 90 || l.Lng < -180 || l.Lng > 180 {
			return nil, fmt.Errorf("location %q: coordinates out of range", l.ID)
		}

		// Only static fields are taken from the file.
		catalog = append(catalog, location.Location{
			ID:        l.ID,
			Name:      l.Name,
			Address:   l.Address,
			Lat:       l.Lat,
			Lng:       l.Lng,
			Category:  category,
			Capacity:  l.Capacity,
			Distance:  l.Distance,
			ForceHigh: l.ForceHigh,
		})
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog %q is empty", filePath)
	}
	return catalog, nil
}
