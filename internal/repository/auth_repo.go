package repository

import (
	"database/sql"
	"errors"
	"fmt"

	identity "identity_client"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, email, password_hash FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username, email, password_hash FROM users WHERE id = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(username, email, passwordHash string) (int, error) {
	res, err := r.db.Exec(insertUserSQL, username, email, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*identity.User, error) {
	u, err := scanUser(r.db.QueryRow(selectUserByUsernameSQL, username))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(id int) (*identity.User, error) {
	u, err := scanUser(r.db.QueryRow(selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return u, nil
}

func scanUser(row *sql.Row) (*identity.User, error) {
	var u identity.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
