package repository

import (
	"context"
	"errors"
	"fmt"

	"bookmarkd/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Migrate() error {
	err := r.db.MigrateTable(&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser inserts the user in a single constrained statement. The
// unique index on email is what enforces uniqueness; there is no
// check-then-insert step.
func (r *UserRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}

	err := r.db.GetAll(ctx, &users)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	return users, nil
}

// UpdateBookmarks replaces the stored list wholly in one UPDATE. Zero rows
// affected means no user with that email exists.
func (r *UserRepository) UpdateBookmarks(ctx context.Context, email string, bookmarks []string) error {
	updates := map[string]any{
		"bookmarks": Bookmarks(bookmarks),
	}

	rows, err := r.db.UpdateOneBy(ctx, &User{}, "email", email, updates)
	if err != nil {
		return fmt.Errorf("update bookmarks: %w", err)
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
