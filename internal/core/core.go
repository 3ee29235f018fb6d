package core

import (
	"context"
	"errors"
	"fmt"

	"bookmarkd/internal/repository"
	tokenIssuer "bookmarkd/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserExists error = errors.New("user already exists")
var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")

// Bookmarker holds the business rules for user accounts and their
// bookmark lists.
type Bookmarker struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

func NewBookmarker(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *Bookmarker {
	return &Bookmarker{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// SignUp hashes the password and creates the user with an empty bookmark
// list. Email uniqueness is enforced by the storage layer, so a concurrent
// duplicate signup loses with ErrUserExists rather than racing a pre-check.
func (b *Bookmarker) SignUp(ctx context.Context, msg CredentialsMessage) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Email:        msg.Email,
		PasswordHash: string(hash),
		Bookmarks:    repository.Bookmarks{},
	}

	if err := b.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	b.logs.Infow("user created", "userId", user.ID)

	return user.ID, nil
}

// Login checks the credentials against the stored hash and, on success,
// returns the user record together with a signed session token.
func (b *Bookmarker) Login(ctx context.Context, msg CredentialsMessage) (Session, error) {
	user, err := b.repo.GetUserByEmail(ctx, msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, fmt.Errorf("get user by email: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return Session{}, ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Email:      user.Email,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := b.jwtIssuer.Generate(tokenInfo)
	signed, err := b.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	return Session{
		User: UserRecord{
			ID:        user.ID,
			Email:     user.Email,
			Bookmarks: user.Bookmarks,
		},
		Token: signed,
	}, nil
}

// ListUsers returns every stored user reduced to the id+email summary.
func (b *Bookmarker) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := b.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	summaries := make([]UserSummary, len(users))
	for i, user := range users {
		summaries[i] = UserSummary{
			ID:    user.ID,
			Email: user.Email,
		}
	}

	b.logs.Infow("users listed", "count", len(summaries))

	return summaries, nil
}

// UpdateBookmarks replaces the user's bookmark list wholly with the
// supplied one.
func (b *Bookmarker) UpdateBookmarks(ctx context.Context, email string, bookmarks []string) error {
	err := b.repo.UpdateBookmarks(ctx, email, bookmarks)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update bookmarks: %w", err)
	}

	b.logs.Infow("bookmarks updated", "email", email, "count", len(bookmarks))

	return nil
}
