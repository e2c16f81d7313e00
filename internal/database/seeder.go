package database

import (
	"log/slog"

	"github.com/autoassist/auto-assist-api/internal/models"
)

var seedBrands = []string{
	"Chevrolet", "Citroen", "Fiat", "Ford", "Honda", "Hyundai",
	"Jeep", "Nissan", "Peugeot", "Renault", "Toyota", "Volkswagen",
}

var seedColors = []string{
	"Black", "Blue", "Brown", "Gray", "Green", "Orange",
	"Red", "Silver", "White", "Yellow",
}

// SeedCatalogs inserts the brand and color lookup rows served by /data.
// Existing rows are left untouched.
func SeedCatalogs() error {
	for _, name := range seedBrands {
		brand := models.VehicleBrand{Name: name}
		if err := DB.Where("name = ?", name).FirstOrCreate(&brand).Error; err != nil {
			return err
		}
	}
	for _, name := range seedColors {
		color := models.VehicleColor{Name: name}
		if err := DB.Where("name = ?", name).FirstOrCreate(&color).Error; err != nil {
			return err
		}
	}
	slog.Info("catalog data seeded", "brands", len(seedBrands), "colors", len(seedColors))
	return nil
}
