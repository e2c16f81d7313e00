package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoassist/auto-assist-api/internal/dto"
	"github.com/autoassist/auto-assist-api/internal/models"
	"github.com/autoassist/auto-assist-api/internal/ownership"
)

// MaintenanceFilters are optional AND-combined predicates. VehicleID is an
// exact match; Search is a case-insensitive substring match on the title.
type MaintenanceFilters struct {
	VehicleID string
	Search    string
}

type MaintenanceService struct {
	db *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{db: db}
}

// reminderRow carries a reminder plus the owning vehicle's mileage, which the
// derivation needs.
type reminderRow struct {
	models.MaintenanceReminder
	VehicleMileage int
}

const reminderColumns = "maintenance_reminders.*, vehicles.mileage AS vehicle_mileage"

func (s *MaintenanceService) scopedQuery(userID uuid.UUID, f MaintenanceFilters) *gorm.DB {
	q := s.db.Model(&models.MaintenanceReminder{}).Scopes(ownership.ThroughVehicle(userID))

	if f.VehicleID != "" {
		q = q.Where("maintenance_reminders.vehicle_id = ?", f.VehicleID)
	}
	if f.Search != "" {
		q = q.Where("LOWER(maintenance_reminders.title) LIKE ?", like(f.Search))
	}
	return q
}

// List returns one page of the caller's reminders in creation order, each
// with its derived remaining values. The total comes from a separate count
// query over the same predicates.
func (s *MaintenanceService) List(userID uuid.UUID, f MaintenanceFilters, page, limit int) ([]dto.MaintenanceResponse, int64, int, error) {
	var total int64
	if err := s.scopedQuery(userID, f).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}
	if total == 0 {
		return nil, 0, 0, ErrNoReminders
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	var rows []reminderRow
	err := s.scopedQuery(userID, f).
		Select(reminderColumns).
		Order("maintenance_reminders.created_at").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, 0, err
	}

	now := time.Now()
	out := make([]dto.MaintenanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toMaintenanceResponse(&rows[i], now))
	}
	return out, total, totalPages, nil
}

func (s *MaintenanceService) GetByID(userID, id uuid.UUID) (*dto.MaintenanceResponse, error) {
	var row reminderRow
	err := s.db.Model(&models.MaintenanceReminder{}).
		Scopes(ownership.ThroughVehicle(userID)).
		Select(reminderColumns).
		Where("maintenance_reminders.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}

	resp := toMaintenanceResponse(&row, time.Now())
	return &resp, nil
}

// Create verifies the target vehicle through the caller's ownership scope
// before inserting; a vehicle outside the scope reads as nonexistent.
func (s *MaintenanceService) Create(userID uuid.UUID, req *dto.MaintenanceRequest) (*models.MaintenanceReminder, error) {
	vehicleID, lastDate, err := parseMaintenanceRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.checkVehicle(userID, vehicleID); err != nil {
		return nil, err
	}

	reminder := models.MaintenanceReminder{
		ID:                  uuid.New(),
		VehicleID:           vehicleID,
		Title:               req.Title,
		Description:         req.Description,
		Type:                req.Type,
		KmTarget:            req.KmTarget,
		DaysTarget:          req.DaysTarget,
		LastKmRecord:        req.LastKmRecord,
		LastMaintenanceDate: lastDate,
	}

	if err := s.db.Create(&reminder).Error; err != nil {
		return nil, fmt.Errorf("failed to create maintenance reminder: %w", err)
	}
	return &reminder, nil
}

func (s *MaintenanceService) Update(userID, id uuid.UUID, req *dto.MaintenanceRequest) error {
	vehicleID, lastDate, err := parseMaintenanceRequest(req)
	if err != nil {
		return err
	}

	var existing models.MaintenanceReminder
	err = s.db.Model(&models.MaintenanceReminder{}).
		Scopes(ownership.ThroughVehicle(userID)).
		Select("maintenance_reminders.*").
		Where("maintenance_reminders.id = ?", id).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReminderNotFound
		}
		return err
	}

	// Moving the reminder to another vehicle re-checks ownership of the target.
	if vehicleID != existing.VehicleID {
		if err := s.checkVehicle(userID, vehicleID); err != nil {
			return err
		}
	}

	updates := map[string]any{
		"vehicle_id":            vehicleID,
		"title":                 req.Title,
		"description":           req.Description,
		"type":                  req.Type,
		"km_target":             req.KmTarget,
		"days_target":           req.DaysTarget,
		"last_km_record":        req.LastKmRecord,
		"last_maintenance_date": lastDate,
	}
	return s.db.Model(&existing).Updates(updates).Error
}

func (s *MaintenanceService) Delete(userID, id uuid.UUID) error {
	var existing models.MaintenanceReminder
	err := s.db.Model(&models.MaintenanceReminder{}).
		Scopes(ownership.ThroughVehicle(userID)).
		Select("maintenance_reminders.*").
		Where("maintenance_reminders.id = ?", id).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReminderNotFound
		}
		return err
	}

	return s.db.Delete(&models.MaintenanceReminder{}, "id = ?", id).Error
}

func (s *MaintenanceService) checkVehicle(userID, vehicleID uuid.UUID) error {
	var vehicle models.Vehicle
	err := s.db.Scopes(ownership.OwnedBy(userID)).First(&vehicle, "id = ?", vehicleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVehicleNotFound
		}
		return err
	}
	return nil
}

func parseMaintenanceRequest(req *dto.MaintenanceRequest) (uuid.UUID, *time.Time, error) {
	if req.VehicleID == "" || req.Title == "" || req.Type == "" {
		return uuid.Nil, nil, validationErr("vehicle_id, title and type are required")
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return uuid.Nil, nil, validationErr("vehicle_id must be a valid id")
	}

	if !models.ValidTrackingMode(req.Type) {
		return uuid.Nil, nil, validationErr("type must be one of: km, time, km_time")
	}

	var lastDate *time.Time
	if req.LastMaintenanceDate != "" {
		d, err := time.Parse("2006-01-02", req.LastMaintenanceDate)
		if err != nil {
			return uuid.Nil, nil, validationErr("last_maintenance_date must be formatted as YYYY-MM-DD")
		}
		lastDate = &d
	}

	return vehicleID, lastDate, nil
}

func toMaintenanceResponse(row *reminderRow, now time.Time) dto.MaintenanceResponse {
	km, days := DeriveRemaining(&row.MaintenanceReminder, row.VehicleMileage, now)
	return dto.MaintenanceResponse{
		ID:                  row.ID,
		VehicleID:           row.VehicleID,
		Title:               row.Title,
		Description:         row.Description,
		Type:                row.Type,
		KmTarget:            row.KmTarget,
		DaysTarget:          row.DaysTarget,
		LastKmRecord:        row.LastKmRecord,
		LastMaintenanceDate: row.LastMaintenanceDate,
		UpdateDate:          row.UpdatedAt,
		KmRemaining:         km,
		DaysRemaining:       days,
	}
}
