package service

import (
	"time"

	identity "identity_client"
	"identity_client/internal/repository"
)

// Authorization is everything the stub's HTTP layer needs from the auth domain.
type Authorization interface {
	SignUp(username, email, password string) (string, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	Authenticate(accessToken string) (*identity.User, error)
}

// Service aggregates the stub's sub-services.
type Service struct {
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, signingKey string, tokenTTL time.Duration) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, signingKey, tokenTTL),
	}
}
