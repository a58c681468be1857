package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/AliEmadEldin/SpaceCourseSystem/config"
	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
)

// ErrInvalidToken covers malformed, tampered and expired tokens alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the authenticated principal bound to a request.
type Identity struct {
	ID   uint
	Role models.Role
}

// HashPassword returns the bcrypt hash of password at the configured cost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePasswords reports whether password matches hash. A mismatch is not
// an error condition.
func ComparePasswords(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken issues a signed, time-limited bearer token for the identity.
func GenerateToken(userID uint, role models.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   string(role),
		"iat":    now.Unix(),
		"exp":    now.Add(time.Duration(config.AppConfig.TokenTTL) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// VerifyToken parses and validates a token produced by GenerateToken. Any
// signature, format or expiry problem yields ErrInvalidToken.
func VerifyToken(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil || claims["role"] == nil {
		return Identity{}, ErrInvalidToken
	}

	// JWT numeric claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !models.Role(roleStr).Valid() {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: uint(userID), Role: models.Role(roleStr)}, nil
}

// SeedAdminUser creates the bootstrap admin account if it does not exist yet.
func SeedAdminUser(s store.Storage) error {
	if _, err := s.GetUserByEmail(config.AppConfig.AdminEmail); err == nil {
		log.Println("Admin user already exists")
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hashed, err := HashPassword(config.AppConfig.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:    config.AppConfig.AdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := s.CreateUser(&admin); err != nil {
		return err
	}
	log.Printf("Admin user created: %s", admin.Email)
	return nil
}
