package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/autoassist/auto-assist-api/internal/models"
	"github.com/autoassist/auto-assist-api/internal/services"
	"github.com/autoassist/auto-assist-api/internal/storage"
)

func newHandlerDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Vehicle{}))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	user := models.User{ID: uuid.New(), Name: "Test User", Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func seedOwnedVehicle(t *testing.T, db *gorm.DB, userID uuid.UUID) uuid.UUID {
	t.Helper()

	vehicle := models.Vehicle{
		ID:     uuid.New(),
		UserID: userID,
		Brand:  "Honda",
		Model:  "Civic",
		Color:  "Black",
	}
	require.NoError(t, db.Create(&vehicle).Error)
	return vehicle.ID
}

// vehicleTestApp mounts the vehicle read routes behind a stub auth layer that
// places the caller's token in the context the way the JWT middleware does.
func vehicleTestApp(t *testing.T, db *gorm.DB, callerID uuid.UUID) *fiber.App {
	t.Helper()

	images, err := storage.NewLocalStore(t.TempDir(), "/uploads/vehicles")
	require.NoError(t, err)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": callerID.String()})
		c.Locals("user", token)
		return c.Next()
	})

	h := NewVehicleHandler(services.NewVehicleService(db, images), images)
	app.Get("/vehicles/user/:userId", h.ListByUser)
	app.Get("/vehicles/:id", h.GetByID)
	return app
}

func getStatus(t *testing.T, app *fiber.App, path string) int {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestListByUserMismatchIsForbidden(t *testing.T) {
	db := newHandlerDB(t)
	alice := seedAccount(t, db, "alice@example.com")
	bob := seedAccount(t, db, "bob@example.com")
	vehicleID := seedOwnedVehicle(t, db, alice)

	asAlice := vehicleTestApp(t, db, alice)
	asBob := vehicleTestApp(t, db, bob)

	require.Equal(t, fiber.StatusOK, getStatus(t, asAlice, "/vehicles/user/"+alice.String()))

	// Another user's listing is an explicit 403, the one place the mismatch
	// is named rather than hidden.
	require.Equal(t, fiber.StatusForbidden, getStatus(t, asBob, "/vehicles/user/"+alice.String()))

	// Per-id misses on foreign vehicles stay 404 so existence never leaks.
	require.Equal(t, fiber.StatusNotFound, getStatus(t, asBob, "/vehicles/"+vehicleID.String()))

	// The caller's own empty listing is a 404 for no rows, not a 403.
	require.Equal(t, fiber.StatusNotFound, getStatus(t, asBob, "/vehicles/user/"+bob.String()))
}
