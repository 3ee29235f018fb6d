package handler

import (
	"context"
	"net/http"

	"bookmarkd/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BookmarkService . BookmarkService
type BookmarkService interface {
	SignUp(ctx context.Context, msg core.CredentialsMessage) (string, error)
	Login(ctx context.Context, msg core.CredentialsMessage) (core.Session, error)
	ListUsers(ctx context.Context) ([]core.UserSummary, error)
	UpdateBookmarks(ctx context.Context, email string, bookmarks []string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
