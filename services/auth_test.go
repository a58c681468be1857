package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliEmadEldin/SpaceCourseSystem/config"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
)

func setupConfig() {
	config.AppConfig = &config.Config{
		JWTKey:        "test-secret",
		SaltRound:     4,
		TokenTTL:      60,
		AdminEmail:    "admin@spacecourse.com",
		AdminPassword: "SpaceAdmin123",
	}
}

func TestHashAndComparePasswords(t *testing.T) {
	setupConfig()

	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, ComparePasswords("hunter22", hash))
	assert.False(t, ComparePasswords("hunter23", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	setupConfig()

	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, ComparePasswords("same-password", first))
	assert.True(t, ComparePasswords("same-password", second))
}

func TestTokenRoundTrip(t *testing.T) {
	setupConfig()

	token, err := GenerateToken(42, models.RoleInstructor)
	require.NoError(t, err)

	identity, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.ID)
	assert.Equal(t, models.RoleInstructor, identity.Role)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	setupConfig()

	claims := jwt.MapClaims{
		"userId": float64(1),
		"role":   "student",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = VerifyToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	setupConfig()
	config.AppConfig.TokenTTL = -1

	token, err := GenerateToken(7, models.RoleStudent)
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	setupConfig()

	_, err := VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsUnknownRole(t *testing.T) {
	setupConfig()

	claims := jwt.MapClaims{
		"userId": float64(1),
		"role":   "pirate",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSeedAdminUserIsIdempotent(t *testing.T) {
	setupConfig()
	s := store.NewMemStore()

	require.NoError(t, SeedAdminUser(s))
	require.NoError(t, SeedAdminUser(s))

	users, err := s.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@spacecourse.com", users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.True(t, ComparePasswords("SpaceAdmin123", users[0].Password))
}
