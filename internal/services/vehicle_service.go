package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoassist/auto-assist-api/internal/dto"
	"github.com/autoassist/auto-assist-api/internal/models"
	"github.com/autoassist/auto-assist-api/internal/ownership"
	"github.com/autoassist/auto-assist-api/internal/storage"
)

// VehicleFilters are independent optional predicates combined with AND.
// Text filters are case-insensitive substring matches; Search spans
// name, model, version and license plate.
type VehicleFilters struct {
	Brand        string
	Model        string
	Color        string
	LicensePlate string
	Search       string
}

type VehicleService struct {
	db     *gorm.DB
	images storage.ImageStore
}

func NewVehicleService(db *gorm.DB, images storage.ImageStore) *VehicleService {
	return &VehicleService{db: db, images: images}
}

// scopedQuery builds a fresh owner-scoped, filtered query. The count query
// and the data query each call this so both run the same predicate set.
func (s *VehicleService) scopedQuery(userID uuid.UUID, f VehicleFilters) *gorm.DB {
	q := s.db.Model(&models.Vehicle{}).Scopes(ownership.OwnedBy(userID))

	if f.Brand != "" {
		q = q.Where("LOWER(brand) LIKE ?", like(f.Brand))
	}
	if f.Model != "" {
		q = q.Where("LOWER(model) LIKE ?", like(f.Model))
	}
	if f.Color != "" {
		q = q.Where("LOWER(color) LIKE ?", like(f.Color))
	}
	if f.LicensePlate != "" {
		q = q.Where("LOWER(license_plate) LIKE ?", like(f.LicensePlate))
	}
	if f.Search != "" {
		p := like(f.Search)
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(model) LIKE ? OR LOWER(version) LIKE ? OR LOWER(license_plate) LIKE ?",
			p, p, p, p,
		)
	}
	return q
}

// List returns one page of the caller's vehicles in creation order, plus the
// total match count and page count. An empty match set is reported as
// ErrNoVehicles, distinct from a valid page beyond the data.
func (s *VehicleService) List(userID uuid.UUID, f VehicleFilters, page, limit int) ([]models.Vehicle, int64, int, error) {
	var total int64
	if err := s.scopedQuery(userID, f).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}
	if total == 0 {
		return nil, 0, 0, ErrNoVehicles
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	var vehicles []models.Vehicle
	err := s.scopedQuery(userID, f).
		Order("created_at").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&vehicles).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return vehicles, total, totalPages, nil
}

func (s *VehicleService) GetByID(userID, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.db.Scopes(ownership.OwnedBy(userID)).First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// Create stores the optional image first and rolls the file back if the row
// insert fails. The license plate is uppercased before persistence.
func (s *VehicleService) Create(userID uuid.UUID, req *dto.VehicleRequest, image *storage.Upload) (*models.Vehicle, error) {
	if req.Brand == "" || req.Model == "" || req.Color == "" {
		return nil, validationErr("brand, model and color are required")
	}

	vehicle := models.Vehicle{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Brand:        req.Brand,
		Model:        req.Model,
		Version:      req.Version,
		Color:        req.Color,
		LicensePlate: strings.ToUpper(req.LicensePlate),
		Mileage:      req.Mileage,
	}

	if image != nil {
		filename, err := s.images.Save(context.Background(), *image)
		if err != nil {
			return nil, err
		}
		vehicle.Image = &filename
	}

	if err := s.db.Create(&vehicle).Error; err != nil {
		if vehicle.Image != nil {
			s.deleteImageFile(*vehicle.Image)
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return &vehicle, nil
}

// Update replaces the vehicle's fields and, when an image is supplied, swaps
// the stored file in a fixed order: fetch old reference, store new file,
// update row, then best-effort delete of the old file.
func (s *VehicleService) Update(userID, id uuid.UUID, req *dto.VehicleRequest, image *storage.Upload) (*models.Vehicle, error) {
	if req.Brand == "" || req.Model == "" || req.Color == "" {
		return nil, validationErr("brand, model and color are required")
	}

	vehicle, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	oldImage := vehicle.Image

	updates := map[string]any{
		"name":          req.Name,
		"brand":         req.Brand,
		"model":         req.Model,
		"version":       req.Version,
		"color":         req.Color,
		"license_plate": strings.ToUpper(req.LicensePlate),
		"mileage":       req.Mileage,
	}

	var newImage string
	if image != nil {
		newImage, err = s.images.Save(context.Background(), *image)
		if err != nil {
			return nil, err
		}
		updates["image"] = newImage
	}

	if err := s.db.Model(vehicle).Updates(updates).Error; err != nil {
		if newImage != "" {
			s.deleteImageFile(newImage)
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	if newImage != "" && oldImage != nil {
		s.deleteImageFile(*oldImage)
	}

	return vehicle, nil
}

// Delete removes the vehicle together with its reminders, then best-effort
// deletes the stored image file.
func (s *VehicleService) Delete(userID, id uuid.UUID) error {
	vehicle, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.MaintenanceReminder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vehicle{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	if vehicle.Image != nil {
		s.deleteImageFile(*vehicle.Image)
	}
	return nil
}

// DetachImage clears the vehicle's image reference. Detaching a vehicle that
// has no image is a distinct error; a missing underlying file is not, the
// reference is cleared regardless.
func (s *VehicleService) DetachImage(userID, id uuid.UUID) error {
	vehicle, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if vehicle.Image == nil {
		return ErrNoImage
	}

	s.deleteImageFile(*vehicle.Image)

	if err := s.db.Model(vehicle).Update("image", nil).Error; err != nil {
		return fmt.Errorf("failed to clear vehicle image: %w", err)
	}
	return nil
}

func (s *VehicleService) deleteImageFile(filename string) {
	if err := s.images.Delete(context.Background(), filename); err != nil {
		slog.Error("failed to delete vehicle image file", "file", filename, "error", err)
	}
}

func like(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
