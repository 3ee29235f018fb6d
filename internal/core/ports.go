package core

import (
	"context"

	"bookmarkd/internal/repository"
	tokenIssuer "bookmarkd/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	ListUsers(ctx context.Context) ([]repository.User, error)
	UpdateBookmarks(ctx context.Context, email string, bookmarks []string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}
