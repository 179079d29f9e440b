package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/domain"
	"github.com/luanpessuti/case01furia/internal/mocks"
	"github.com/luanpessuti/case01furia/pkg/api"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(authSvc domain.AuthService) *gin.Engine {
	h := NewAuthHandlers(authSvc, 7*24*time.Hour, false, zap.NewNop())
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.Me)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == api.CookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Register(t *testing.T) {
	registeredUser := &domain.User{ID: "user-1", Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"}

	t.Run("successful registration sets session cookie", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RegisterFunc = func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			return registeredUser, "jwt-token", nil
		}
		r := newAuthTestRouter(authSvc)

		w := doJSON(t, r, http.MethodPost, "/auth/register", `{"name":"Ana","email":"ana@x.com","password":"secret1"}`, nil)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		cookie := sessionCookie(t, w)
		if cookie == nil {
			t.Fatal("expected session cookie")
		}
		if cookie.Value != "jwt-token" {
			t.Errorf("unexpected cookie value %q", cookie.Value)
		}
		if !cookie.HttpOnly {
			t.Error("cookie must be HttpOnly")
		}
		if cookie.Path != "/" {
			t.Errorf("expected path /, got %q", cookie.Path)
		}
		if cookie.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
			t.Errorf("unexpected MaxAge %d", cookie.MaxAge)
		}
		if cookie.Secure {
			t.Error("cookie must not be Secure outside production")
		}
		if strings.Contains(w.Body.String(), "hash") || strings.Contains(w.Body.String(), "password") {
			t.Errorf("response leaks credential material: %s", w.Body.String())
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r := newAuthTestRouter(mocks.NewMockAuthService())
		for _, body := range []string{
			`{}`,
			`{"name":"Ana"}`,
			`{"name":"Ana","email":"ana@x.com"}`,
			`not json`,
		} {
			w := doJSON(t, r, http.MethodPost, "/auth/register", body, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("body %q: expected 400, got %d", body, w.Code)
			}
			if !strings.Contains(w.Body.String(), "Nome, email e senha são obrigatórios") {
				t.Errorf("body %q: unexpected message %s", body, w.Body.String())
			}
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RegisterFunc = func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrEmailTaken
		}
		r := newAuthTestRouter(authSvc)

		w := doJSON(t, r, http.MethodPost, "/auth/register", `{"name":"Ana","email":"ana@x.com","password":"secret1"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Email já cadastrado") {
			t.Errorf("unexpected message %s", w.Body.String())
		}
		if sessionCookie(t, w) != nil {
			t.Error("no cookie may be set on failure")
		}
	})
}

func TestAuthHandlers_Login(t *testing.T) {
	t.Run("credential failures are indistinguishable", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		}
		r := newAuthTestRouter(authSvc)

		bodies := []string{
			`{"email":"nobody@x.com","password":"whatever"}`,
			`{"email":"ana@x.com","password":"wrong"}`,
			`broken json`,
		}
		var responses []string
		for _, body := range bodies {
			w := doJSON(t, r, http.MethodPost, "/auth/login", body, nil)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("body %q: expected 401, got %d", body, w.Code)
			}
			responses = append(responses, w.Body.String())
		}
		for _, resp := range responses[1:] {
			if resp != responses[0] {
				t.Errorf("login failure bodies differ: %q vs %q", responses[0], resp)
			}
		}
	})

	t.Run("successful login sets cookie", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: "user-1", Name: "Ana", Email: email}, "jwt-token", nil
		}
		r := newAuthTestRouter(authSvc)

		w := doJSON(t, r, http.MethodPost, "/auth/login", `{"email":"ana@x.com","password":"secret1"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		cookie := sessionCookie(t, w)
		if cookie == nil || cookie.Value != "jwt-token" {
			t.Fatalf("expected session cookie, got %+v", cookie)
		}

		var resp api.AuthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if !resp.Success || resp.User == nil || resp.User.Email != "ana@x.com" {
			t.Errorf("unexpected response %+v", resp)
		}
	})
}

func TestAuthHandlers_Logout(t *testing.T) {
	r := newAuthTestRouter(mocks.NewMockAuthService())

	// Logout is idempotent; the second call behaves like the first.
	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/auth/logout", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("call %d: expected 200, got %d", i, w.Code)
		}
		cookie := sessionCookie(t, w)
		if cookie == nil {
			t.Fatal("expected clearing cookie")
		}
		if cookie.Value != "" || cookie.MaxAge >= 0 {
			t.Errorf("cookie not cleared: value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
		}
		if w.Header().Get(api.HeaderAuthEvent) != api.EventLogout {
			t.Errorf("expected %s header", api.HeaderAuthEvent)
		}
	}
}

func TestAuthHandlers_Me(t *testing.T) {
	storedUser := &domain.User{ID: "user-1", Name: "Ana", Email: "ana@x.com", PasswordHash: "hash", Verified: true}

	t.Run("no cookie", func(t *testing.T) {
		r := newAuthTestRouter(mocks.NewMockAuthService())
		w := doJSON(t, r, http.MethodGet, "/auth/me", "", nil)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Não autenticado") {
			t.Errorf("unexpected body %s", w.Body.String())
		}
		if w.Header().Get("Cache-Control") != "no-store" {
			t.Error("expected Cache-Control: no-store")
		}
		if w.Header().Get(api.HeaderAuthStatus) != api.StatusUnauthenticated {
			t.Errorf("expected unauthenticated status header, got %q", w.Header().Get(api.HeaderAuthStatus))
		}
	})

	t.Run("valid session", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.User, error) {
			if token != "jwt-token" {
				return nil, domain.ErrTokenInvalid
			}
			return storedUser, nil
		}
		r := newAuthTestRouter(authSvc)

		w := doJSON(t, r, http.MethodGet, "/auth/me", "", &http.Cookie{Name: api.CookieName, Value: "jwt-token"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if w.Header().Get(api.HeaderAuthStatus) != api.StatusAuthenticated {
			t.Errorf("expected authenticated status header")
		}
		if w.Header().Get("Cache-Control") != "no-store" {
			t.Error("expected Cache-Control: no-store")
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["_id"] != "user-1" || body["email"] != "ana@x.com" || body["verified"] != true {
			t.Errorf("unexpected body %v", body)
		}
		if _, leaked := body["password"]; leaked {
			t.Error("password field leaked")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrTokenExpired
		}
		r := newAuthTestRouter(authSvc)

		w := doJSON(t, r, http.MethodGet, "/auth/me", "", &http.Cookie{Name: api.CookieName, Value: "stale"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		cookie := sessionCookie(t, w)
		if cookie == nil || cookie.Value != "" || cookie.MaxAge >= 0 {
			t.Errorf("expected cleared cookie, got %+v", cookie)
		}
		if w.Header().Get(api.HeaderAuthEvent) != api.EventLogout {
			t.Error("expected logout event header")
		}
	})

	t.Run("user deleted after issuance", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		}
		r := newAuthTestRouter(authSvc)

		w := doJSON(t, r, http.MethodGet, "/auth/me", "", &http.Cookie{Name: api.CookieName, Value: "jwt-token"})
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Usuário não encontrado") {
			t.Errorf("unexpected body %s", w.Body.String())
		}
		cookie := sessionCookie(t, w)
		if cookie == nil || cookie.MaxAge >= 0 {
			t.Errorf("expected cleared cookie, got %+v", cookie)
		}
	})
}
