package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"notely/internal/handler"
	"notely/internal/middleware"
	"notely/internal/repo"
	"notely/internal/service"
	"notely/test/testutil"
)

var testJWTSecret = []byte("test-secret")

func setupRouter(t *testing.T) (http.Handler, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, cleanup := testutil.OpenTestDB(t)
	userRepo := repo.NewUserRepo(db)
	noteRepo := repo.NewNoteRepo(db)

	authService := service.NewAuthService(userRepo, testJWTSecret, time.Hour)
	noteService := service.NewNoteService(noteRepo)

	deps := handler.RouterDeps{
		Auth:      handler.NewAuthHandler(authService, testJWTSecret, time.Hour, false),
		Notes:     handler.NewNoteHandler(noteService),
		JWTSecret: testJWTSecret,
	}

	engine, err := webapi.NewEngine(
		"/api",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)

	return engine, cleanup
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// sessionCookie pulls the session cookie out of a login/register response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func register(t *testing.T, router http.Handler, email, password string) (*http.Cookie, string) {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	return sessionCookie(t, rec), body.User.ID
}
