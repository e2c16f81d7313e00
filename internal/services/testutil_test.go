package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/autoassist/auto-assist-api/internal/config"
	"github.com/autoassist/auto-assist-api/internal/models"
	"github.com/autoassist/auto-assist-api/internal/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.MaintenanceReminder{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 24 * time.Hour,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    email,
		Password: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func seedVehicle(t *testing.T, db *gorm.DB, userID uuid.UUID, mutate func(*models.Vehicle)) uuid.UUID {
	t.Helper()

	vehicle := models.Vehicle{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    "Daily driver",
		Brand:   "Honda",
		Model:   "Civic",
		Version: "EXL",
		Color:   "Black",
		Mileage: 42000,
	}
	if mutate != nil {
		mutate(&vehicle)
	}
	require.NoError(t, db.Create(&vehicle).Error)
	return vehicle.ID
}

// fakeImageStore records the order of store operations so tests can assert
// the replace pipeline ordering.
type fakeImageStore struct {
	files map[string]bool
	ops   []string
	seq   int
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{files: map[string]bool{}}
}

func (f *fakeImageStore) Save(_ context.Context, up storage.Upload) (string, error) {
	if err := storage.Validate(up); err != nil {
		return "", err
	}
	f.seq++
	name := fmt.Sprintf("img-%d.jpg", f.seq)
	f.files[name] = true
	f.ops = append(f.ops, "save:"+name)
	return name, nil
}

func (f *fakeImageStore) Delete(_ context.Context, filename string) error {
	delete(f.files, filename)
	f.ops = append(f.ops, "delete:"+filename)
	return nil
}

func (f *fakeImageStore) URL(filename string) string {
	return "/uploads/vehicles/" + filename
}

func jpegUpload() *storage.Upload {
	return &storage.Upload{Reader: nil, Size: 1024, ContentType: "image/jpeg"}
}

func intPtr(v int) *int {
	return &v
}
