package repository

import (
	"database/sql"

	identity "identity_client"
)

// Authorization is the user store behind the stub identity service.
type Authorization interface {
	Create(username, email, hash string) (int, error)
	GetByUsername(username string) (*identity.User, error)
	GetByID(id int) (*identity.User, error)
}

type Repository struct {
	Auth Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth: NewUserRepository(db),
	}
}
