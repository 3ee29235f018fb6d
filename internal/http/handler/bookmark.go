package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"bookmarkd/internal/core"
	"bookmarkd/internal/http/handler/middleware"
	"bookmarkd/internal/http/payload"

	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

var (
	Banner          = "GET /{$}"
	ListUsers       = "GET /api/users"
	Signup          = "POST /api/signup"
	Login           = "POST /api/login"
	UpdateBookmarks = "PUT /api/bookmark"
	Docs            = "GET /docs"
	DocsJSON        = "GET /docs.json"
)

const bannerText = "Bookmark App API"

type BookmarkHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	bookmarker       BookmarkService
}

func NewBookmarkHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, bookmarkService BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		logs:             logger,
		requestValidator: requestValidator,
		bookmarker:       bookmarkService,
	}
}

// HandleBanner godoc
//
//	@Summary	API banner
//	@Tags		Meta
//	@Produce	json
//	@Success	200	{string}	string	"banner text"
//	@Router		/ [get]
func (h *BookmarkHandler) HandleBanner(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	h.respond(w, bannerText, http.StatusOK, requestId)
}

// HandleListUsers godoc
//
//	@Summary	Get all users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	handler.Response{data=[]core.UserSummary}
//	@Failure	500	{object}	handler.Response
//	@Router		/api/users [get]
func (h *BookmarkHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	users, err := h.bookmarker.ListUsers(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve users",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list users",
			"error", err,
			"handler", ListUsers,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Fetched Successfully",
		Data:    users,
	}, http.StatusOK, requestId)
}

// HandleSignup godoc
//
//	@Summary	Signup the user with email and password
//	@Tags		Signup
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		payload.CredentialsRequest	true	"Signup payload"
//	@Success	200			{object}	handler.Response			"User created, data holds userId"
//	@Failure	400			{object}	handler.Response			"Validation error or user already exists"
//	@Failure	500			{object}	handler.Response
//	@Router		/api/signup [post]
func (h *BookmarkHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var signupPayload payload.CredentialsRequest
	err := h.requestValidator.DecodeJSONPayload(r, &signupPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not sign up",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	if err := signupPayload.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not sign up",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	userId, err := h.bookmarker.SignUp(r.Context(), signupPayload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not sign up",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusBadRequest
			resp.Message = "User already exists"
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "User created",
		Data:    map[string]string{"userId": userId},
	}, http.StatusOK, requestId)
}

// HandleLogin godoc
//
//	@Summary	Login the user with email and password
//	@Tags		Login
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		payload.CredentialsRequest			true	"Login payload"
//	@Success	200			{object}	handler.Response{data=core.Session}	"Login successful"
//	@Failure	400			{object}	handler.Response					"Validation error, unknown user or wrong password"
//	@Failure	500			{object}	handler.Response
//	@Router		/api/login [post]
func (h *BookmarkHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var loginPayload payload.CredentialsRequest
	err := h.requestValidator.DecodeJSONPayload(r, &loginPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not log in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	if err := loginPayload.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not log in",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	session, err := h.bookmarker.Login(r.Context(), loginPayload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		// unknown-user and wrong-password responses stay distinguishable
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusBadRequest
			resp.Message = "User not found"
			resp.Error = err.Error()
		} else if errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusBadRequest
			resp.Message = "Invalid password"
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Login successful",
		Data:    session,
	}, http.StatusOK, requestId)
}

// HandleUpdateBookmarks godoc
//
//	@Summary	Update the user bookmarks
//	@Tags		Bookmark
//	@Accept		json
//	@Produce	json
//	@Param		bookmarks	body		payload.BookmarksRequest	true	"Full replacement bookmark list"
//	@Success	200			{object}	handler.Response			"Updated Successfully"
//	@Failure	400			{object}	handler.Response			"Validation error or unknown user"
//	@Failure	500			{object}	handler.Response
//	@Router		/api/bookmark [put]
func (h *BookmarkHandler) HandleUpdateBookmarks(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var bookmarksPayload payload.BookmarksRequest
	err := h.requestValidator.DecodeJSONPayload(r, &bookmarksPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update bookmarks",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", UpdateBookmarks,
			"request_id", requestId)
		return
	}

	if err := bookmarksPayload.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not update bookmarks",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", UpdateBookmarks,
			"request_id", requestId)
		return
	}

	err = h.bookmarker.UpdateBookmarks(r.Context(), bookmarksPayload.Email, bookmarksPayload.Bookmarks)
	if err != nil {
		resp := Response{
			Message: "Could not update bookmarks",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusBadRequest
			resp.Message = "User not found"
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("bookmark update failed",
			"error", err,
			"handler", UpdateBookmarks,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Updated Successfully",
	}, http.StatusOK, requestId)
}

// HandleDocs sends the caller into the interactive swagger UI.
func (h *BookmarkHandler) HandleDocs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/swagger/index.html", http.StatusFound)
}

// HandleDocsJSON serves the machine-readable OpenAPI document.
func (h *BookmarkHandler) HandleDocsJSON(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	doc, err := swag.ReadDoc()
	if err != nil {
		h.respond(w, Response{
			Message: "Could not read API documentation",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to read swagger doc",
			"error", err,
			"handler", DocsJSON,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write([]byte(doc))
}

func (h *BookmarkHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
