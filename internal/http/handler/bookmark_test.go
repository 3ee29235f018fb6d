package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	_ "bookmarkd/docs"
	"bookmarkd/internal/core"
	"bookmarkd/internal/http/handler"
	"bookmarkd/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("BookmarkHandler", func() {
	var (
		bh            *handler.BookmarkHandler
		fakeService   *fake.BookmarkService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.BookmarkService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		bh = handler.NewBookmarkHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleBanner", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/", nil)
		})

		It("should return the banner string", func() {
			bh.HandleBanner(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var banner string
			Expect(json.NewDecoder(w.Body).Decode(&banner)).To(Succeed())
			Expect(banner).To(Equal("Bookmark App API"))
		})
	})

	Describe("HandleListUsers", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/users", nil)
		})

		JustBeforeEach(func() {
			bh.HandleListUsers(w, req)
		})

		When("users are listed successfully", func() {
			BeforeEach(func() {
				fakeService.ListUsersReturns([]core.UserSummary{
					{ID: "id-1", Email: "alice@example.com"},
					{ID: "id-2", Email: "bob@example.com"},
				}, nil)
			})

			It("should return the user summaries", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response struct {
					Message string             `json:"message"`
					Data    []core.UserSummary `json:"data"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Message).To(Equal("Fetched Successfully"))
				Expect(response.Data).To(HaveLen(2))
				Expect(fakeService.ListUsersCallCount()).To(Equal(1))
			})

			It("should not leak password hashes or bookmarks", func() {
				Expect(w.Body.String()).NotTo(ContainSubstring("password"))
				Expect(w.Body.String()).NotTo(ContainSubstring("bookmarks"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListUsersReturns(nil, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleSignup", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"email":"a@x.com","password":"secret1"}`)
			req = httptest.NewRequest("POST", "/api/signup", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.SignUpReturns("new-user-id", nil)
		})

		JustBeforeEach(func() {
			bh.HandleSignup(w, req)
		})

		When("signup succeeds", func() {
			It("should return the new user id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response struct {
					Message string            `json:"message"`
					Data    map[string]string `json:"data"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Message).To(Equal("User created"))
				Expect(response.Data["userId"]).To(Equal("new-user-id"))

				Expect(fakeService.SignUpCallCount()).To(Equal(1))
				_, msg := fakeService.SignUpArgsForCall(0)
				Expect(msg.Email).To(Equal("a@x.com"))
				Expect(msg.Password).To(Equal("secret1"))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.SignUpCallCount()).To(Equal(0))
			})
		})

		When("the email is malformed", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"email":"not-an-email","password":"secret1"}`)
				req = httptest.NewRequest("POST", "/api/signup", body)
			})

			It("should return a field-specific validation message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("email"))
				Expect(w.Body.String()).To(ContainSubstring("must be a valid email address"))
				Expect(fakeService.SignUpCallCount()).To(Equal(0))
			})
		})

		When("the password is empty", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"email":"a@x.com","password":""}`)
				req = httptest.NewRequest("POST", "/api/signup", body)
			})

			It("should return a field-specific validation message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("password"))
				Expect(w.Body.String()).To(ContainSubstring("cannot be blank"))
				Expect(fakeService.SignUpCallCount()).To(Equal(0))
			})
		})

		When("the user already exists", func() {
			BeforeEach(func() {
				fakeService.SignUpReturns("", core.ErrUserExists)
			})

			It("should return 400 with a duplicate-user message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("User already exists"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.SignUpReturns("", fakeErr)
			})

			It("should return 500 without leaking detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		var testSession core.Session

		BeforeEach(func() {
			body := strings.NewReader(`{"email":"a@x.com","password":"secret1"}`)
			req = httptest.NewRequest("POST", "/api/login", body)
			req.Header.Set("Content-Type", "application/json")

			testSession = core.Session{
				User: core.UserRecord{
					ID:        "user-id",
					Email:     "a@x.com",
					Bookmarks: []string{"m1", "m2"},
				},
				Token: "signed-token",
			}
			fakeService.LoginReturns(testSession, nil)
		})

		JustBeforeEach(func() {
			bh.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			It("should return the user with bookmarks and a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response struct {
					Message string       `json:"message"`
					Data    core.Session `json:"data"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Message).To(Equal("Login successful"))
				Expect(response.Data).To(Equal(testSession))
			})

			It("should never include the password in the response", func() {
				Expect(w.Body.String()).NotTo(ContainSubstring("secret1"))
			})
		})

		When("the email is malformed", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"email":"not-an-email","password":"secret1"}`)
				req = httptest.NewRequest("POST", "/api/login", body)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("must be a valid email address"))
				Expect(fakeService.LoginCallCount()).To(Equal(0))
			})
		})

		When("the user doesn't exist", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.Session{}, core.ErrUserNotFound)
			})

			It("should return 400 with a user-not-found message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("User not found"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.Session{}, core.ErrIncorrectPassword)
			})

			It("should return 400 with an invalid-password message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("Invalid password"))
				Expect(w.Body.String()).NotTo(ContainSubstring("User not found"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.Session{}, fakeErr)
			})

			It("should return 500 without leaking detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleUpdateBookmarks", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"email":"a@x.com","bookmarks":["m1","m2"]}`)
			req = httptest.NewRequest("PUT", "/api/bookmark", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.UpdateBookmarksReturns(nil)
		})

		JustBeforeEach(func() {
			bh.HandleUpdateBookmarks(w, req)
		})

		When("the update succeeds", func() {
			It("should acknowledge the update", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Updated Successfully"))

				Expect(fakeService.UpdateBookmarksCallCount()).To(Equal(1))
				_, email, bookmarks := fakeService.UpdateBookmarksArgsForCall(0)
				Expect(email).To(Equal("a@x.com"))
				Expect(bookmarks).To(Equal([]string{"m1", "m2"}))
			})
		})

		When("the list is empty", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"email":"a@x.com","bookmarks":[]}`)
				req = httptest.NewRequest("PUT", "/api/bookmark", body)
			})

			It("should accept the empty replacement", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, _, bookmarks := fakeService.UpdateBookmarksArgsForCall(0)
				Expect(bookmarks).To(BeEmpty())
			})
		})

		When("the bookmarks field is missing", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"email":"a@x.com"}`)
				req = httptest.NewRequest("PUT", "/api/bookmark", body)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("bookmarks"))
				Expect(fakeService.UpdateBookmarksCallCount()).To(Equal(0))
			})
		})

		When("a bookmark entry is empty", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"email":"a@x.com","bookmarks":["m1",""]}`)
				req = httptest.NewRequest("PUT", "/api/bookmark", body)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdateBookmarksCallCount()).To(Equal(0))
			})
		})

		When("the user doesn't exist", func() {
			BeforeEach(func() {
				fakeService.UpdateBookmarksReturns(core.ErrUserNotFound)
			})

			It("should return 400 with a user-not-found message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("User not found"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.UpdateBookmarksReturns(fakeErr)
			})

			It("should return 500 without leaking detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleDocsJSON", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/docs.json", nil)
		})

		It("should serve the OpenAPI document as JSON", func() {
			bh.HandleDocsJSON(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var doc map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&doc)).To(Succeed())
			Expect(doc).To(HaveKey("paths"))
		})
	})

	Describe("HandleDocs", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/docs", nil)
		})

		It("should redirect to the swagger UI", func() {
			bh.HandleDocs(w, req)

			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/swagger/index.html"))
		})
	})
})
