package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/internal/config"
	httpx "github.com/luanpessuti/case01furia/internal/http"
	"github.com/luanpessuti/case01furia/internal/http/handlers"
	"github.com/luanpessuti/case01furia/internal/http/middleware"
	"github.com/luanpessuti/case01furia/internal/services"
)

// Run assembles the container, seeds fixtures, starts the match simulator
// and serves HTTP until interrupted.
func Run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}

	if err := c.Redis.Ping(ctx); err != nil {
		return err
	}

	if err := services.SeedMatches(ctx, c.MatchRepo); err != nil {
		return err
	}
	if err := services.SeedPolls(ctx, c.PollRepo); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, cfg.TokenTTL, cfg.IsProduction(), logger)
	userH := handlers.NewUserHandlers(c.VerificationSvc, cfg.IsProduction(), logger)
	matchH := handlers.NewMatchHandlers(c.MatchSvc, logger)
	pollH := handlers.NewPollHandlers(c.PollSvc, logger)
	healthH := handlers.NewHealthHandlers(c.DB, c.Redis)
	authMW := middleware.NewAuthMW(c.AuthSvc, cfg.IsProduction())

	r := httpx.BuildRouter(authH, userH, matchH, pollH, healthH, authMW, logger)

	go c.Simulator.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
