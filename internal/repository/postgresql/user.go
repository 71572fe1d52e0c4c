package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create implements user.UserRepository.
func (u *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (username, password_hash, name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.Username,
		newUser.PasswordHash,
		newUser.Name,
		newUser.Email,
		newUser.Role,
	).Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByID implements user.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return u.getOne(ctx, `WHERE id = $1`, id)
}

// GetByUsername implements user.UserRepository.
func (u *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return u.getOne(ctx, `WHERE username = $1`, username)
}

func (u *userRepository) getOne(ctx context.Context, where string, arg interface{}) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, name, email, role, created_at, updated_at
		FROM users
	` + where

	var usr user.User
	err := q.QueryRow(ctx, query, arg).Scan(
		&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Name,
		&usr.Email, &usr.Role, &usr.CreatedAt, &usr.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return usr, nil
}

// List implements user.UserRepository.
func (u *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, name, email, role, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var usr user.User
		if err := rows.Scan(
			&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Name,
			&usr.Email, &usr.Role, &usr.CreatedAt, &usr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, usr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}

// Update implements user.UserRepository.
func (u *userRepository) Update(ctx context.Context, usr user.User) error {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET name = $2, email = $3, role = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, usr.ID, usr.Name, usr.Email, usr.Role)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete implements user.UserRepository.
func (u *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, u.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
