package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService authenticates the operations admin and issues tokens for
// the protected catalog endpoints.
type AdminAuthService interface {
	Login(email, password string) (string, error)
}

type adminAuthService struct{}

func NewAdminAuthService() AdminAuthService {
	return &adminAuthService{}
}

// Login checks the credentials against ADMIN_EMAIL and ADMIN_PASSWORD_HASH
// (a bcrypt hash) and returns a signed JWT valid for one hour.
func (s *adminAuthService) Login(email, password string) (string, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminHash == "" {
		return "", errors.New("admin credentials not configured")
	}
	if email != adminEmail {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
