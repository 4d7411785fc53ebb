package services

import (
	"errors"
	"time"

	"github.com/JoseAcuna0/insightflow-users-service/internal/application/ports"
	"github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
	"github.com/JoseAcuna0/insightflow-users-service/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

const tokenTTL = time.Hour

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

// GenerateToken compares the stored plaintext password with the supplied one.
// An exact, case-sensitive compare is the inherited contract of this system;
// hashing would change the authentication behavior and is deliberately not
// done here.
func (as *AuthService) GenerateToken(u *user.User, requestPassword string) (string, error) {
	if u.Password != requestPassword {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), u.Username, tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
