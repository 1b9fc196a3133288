package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/modules/users/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type userRepository struct {
	db database.IDatabase
}

func NewUserRepository(db database.IDatabase) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, first_name, last_name, phone_number,
		          is_active, created_at, updated_at`

	var created entity.User
	err := r.db.GetContext(ctx, &created, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.PhoneNumber)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetUserByEmail returns nil when no account exists for the email.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, phone_number,
		       is_active, created_at, updated_at
		FROM users
		WHERE email = $1`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, email)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, phone_number,
		       is_active, created_at, updated_at
		FROM users
		WHERE id = $1`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
