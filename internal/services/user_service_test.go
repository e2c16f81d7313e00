package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/autoassist/auto-assist-api/internal/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewUserService(newTestDB(t), testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "alice@example.com", resp.User.Email)

	logged, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, logged.User.ID)

	_, err = svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t), testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Name: "B", Email: "dup@example.com", Password: "secret456"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(newTestDB(t), testConfig())

	var ve *ValidationError

	_, err := svc.Register(&dto.RegisterRequest{Email: "x@example.com", Password: "secret123"})
	require.ErrorAs(t, err, &ve)

	_, err = svc.Register(&dto.RegisterRequest{Name: "X", Email: "x@example.com", Password: "short"})
	require.ErrorAs(t, err, &ve)
}

func TestTokenClaims(t *testing.T) {
	cfg := testConfig()
	svc := NewUserService(newTestDB(t), cfg)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, resp.User.ID.String(), claims["sub"])
	require.Equal(t, "alice@example.com", claims["email"])
}

func TestRefreshReissuesToken(t *testing.T) {
	svc := NewUserService(newTestDB(t), testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(resp.User.ID)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.Token)
	require.Equal(t, resp.User.ID, refreshed.User.ID)
}

func TestUpdateOtherUserIsForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	err := svc.Update(alice, bob, &dto.UpdateUserRequest{Name: "Hacked", Email: "bob@example.com"})
	require.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(alice, bob)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateOwnProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	alice := seedUser(t, db, "alice@example.com")
	seedUser(t, db, "bob@example.com")

	// Taking another user's email is a conflict.
	err := svc.Update(alice, alice, &dto.UpdateUserRequest{Name: "Alice", Email: "bob@example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)

	err = svc.Update(alice, alice, &dto.UpdateUserRequest{Name: "Alice B.", Email: "alice.b@example.com"})
	require.NoError(t, err)

	user, err := svc.GetByID(alice)
	require.NoError(t, err)
	require.Equal(t, "Alice B.", user.Name)
	require.Equal(t, "alice.b@example.com", user.Email)
}
