package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// User is one account row. The password hash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUser inserts a new account.
func (c *Client) CreateUser(ctx context.Context, name, email, passwordHash string) (*User, error) {
	user := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	err := c.pool.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		user.ID, user.Name, user.Email, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser fetches one account by id.
func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.scanUser(c.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM users WHERE id = $1`, id), id.String())
}

// GetUserByEmail fetches one account by email.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return c.scanUser(c.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM users WHERE email = $1`, email), email)
}

// CheckEmailExists reports whether an account already uses the email.
func (c *Client) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := c.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (c *Client) scanUser(row pgx.Row, ref string) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Entity: "user", ID: ref}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}
