package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/domain"
	"github.com/luanpessuti/case01furia/internal/http/middleware"
	"github.com/luanpessuti/case01furia/internal/mocks"
	"github.com/luanpessuti/case01furia/pkg/api"
)

func newPollTestRouter(pollSvc domain.PollService, authSvc domain.AuthService) *gin.Engine {
	h := NewPollHandlers(pollSvc, zap.NewNop())
	mw := middleware.NewAuthMW(authSvc, false)
	r := gin.New()
	r.GET("/polls/:id", h.Get)
	r.POST("/polls/:id/vote", mw.WithCookie(), h.Vote)
	return r
}

func authedService() *mocks.MockAuthService {
	authSvc := mocks.NewMockAuthService()
	authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.User, error) {
		if token == "jwt-token" {
			return &domain.User{ID: "user-1", Email: "ana@x.com"}, nil
		}
		return nil, domain.ErrTokenInvalid
	}
	return authSvc
}

func TestPollHandlers_Get(t *testing.T) {
	pollSvc := mocks.NewMockPollService()
	pollSvc.GetFunc = func(ctx context.Context, pollID string) (*domain.Poll, error) {
		if pollID == "destaque" {
			return &domain.Poll{ID: "destaque", Question: "Quem será o destaque?"}, nil
		}
		return nil, domain.ErrPollNotFound
	}
	r := newPollTestRouter(pollSvc, authedService())

	w := doJSON(t, r, http.MethodGet, "/polls/destaque", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Error("expected Cache-Control: no-store")
	}

	w = doJSON(t, r, http.MethodGet, "/polls/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Enquete não encontrada") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestPollHandlers_Vote(t *testing.T) {
	sessionCookieHeader := &http.Cookie{Name: api.CookieName, Value: "jwt-token"}

	t.Run("requires session", func(t *testing.T) {
		r := newPollTestRouter(mocks.NewMockPollService(), authedService())

		w := doJSON(t, r, http.MethodPost, "/polls/destaque/vote", `{"option":"fallen"}`, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without cookie, got %d", w.Code)
		}
		if w.Header().Get(api.HeaderAuthEvent) != api.EventLogout {
			t.Error("expected logout event header on rejection")
		}
	})

	t.Run("successful vote uses session identity", func(t *testing.T) {
		pollSvc := mocks.NewMockPollService()
		var votedUser string
		pollSvc.VoteFunc = func(ctx context.Context, pollID, optionID, userID string) (*domain.Poll, error) {
			votedUser = userID
			return &domain.Poll{ID: pollID, TotalVotes: 1}, nil
		}
		r := newPollTestRouter(pollSvc, authedService())

		w := doJSON(t, r, http.MethodPost, "/polls/destaque/vote", `{"option":"fallen"}`, sessionCookieHeader)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if votedUser != "user-1" {
			t.Errorf("vote attributed to %q, want session user", votedUser)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			voteErr    error
			wantStatus int
			wantMsg    string
		}{
			{"unknown poll", domain.ErrPollNotFound, http.StatusNotFound, "Enquete não encontrada"},
			{"unknown option", domain.ErrUnknownOption, http.StatusBadRequest, "Opção inválida"},
			{"duplicate vote", domain.ErrAlreadyVoted, http.StatusConflict, "Você já votou nesta enquete"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				pollSvc := mocks.NewMockPollService()
				pollSvc.VoteFunc = func(ctx context.Context, pollID, optionID, userID string) (*domain.Poll, error) {
					return nil, tt.voteErr
				}
				r := newPollTestRouter(pollSvc, authedService())

				w := doJSON(t, r, http.MethodPost, "/polls/destaque/vote", `{"option":"x"}`, sessionCookieHeader)
				if w.Code != tt.wantStatus {
					t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
				}
				if !strings.Contains(w.Body.String(), tt.wantMsg) {
					t.Errorf("unexpected body %s", w.Body.String())
				}
			})
		}
	})

	t.Run("missing option", func(t *testing.T) {
		r := newPollTestRouter(mocks.NewMockPollService(), authedService())
		w := doJSON(t, r, http.MethodPost, "/polls/destaque/vote", `{}`, sessionCookieHeader)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
