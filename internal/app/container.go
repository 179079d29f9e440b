package app

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/luanpessuti/case01furia/domain"
	"github.com/luanpessuti/case01furia/internal/config"
	"github.com/luanpessuti/case01furia/internal/infrastructure/auth"
	"github.com/luanpessuti/case01furia/internal/infrastructure/database"
	"github.com/luanpessuti/case01furia/internal/infrastructure/repositories"
	"github.com/luanpessuti/case01furia/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	DB    *gorm.DB
	Redis *database.RedisClient

	UserRepo  domain.UserRepository
	MatchRepo domain.MatchRepository
	PollRepo  domain.PollRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	AuthSvc         domain.AuthService
	VerificationSvc domain.VerificationService
	MatchSvc        domain.MatchService
	PollSvc         domain.PollService

	Simulator *services.MatchSimulator
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  rdb,
	}

	c.UserRepo = repositories.NewUserRepository(db)
	c.MatchRepo = repositories.NewMatchRepository(rdb.Client)
	c.PollRepo = repositories.NewPollRepository(rdb.Client)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, logger)
	c.VerificationSvc = services.NewVerificationService(c.UserRepo, logger)
	c.MatchSvc = services.NewMatchService(c.MatchRepo)
	c.PollSvc = services.NewPollService(c.PollRepo)

	c.Simulator = services.NewMatchSimulator(c.MatchRepo, logger, cfg.MatchTick, nil)

	return c, nil
}
