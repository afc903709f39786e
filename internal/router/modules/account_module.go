package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vivahsetu/vivahsetu/internal/application"
	handlers "github.com/vivahsetu/vivahsetu/internal/interface/http"
	"github.com/vivahsetu/vivahsetu/internal/interface/middleware"
)

// AccountModule wires account routes.
// Public: POST /api/register, POST /api/login
// Protected: POST /api/logout, GET /api/me
type AccountModule struct {
	Handler  *handlers.AccountHandler
	Accounts *application.AccountService
	Redis    *redis.Client
}

func NewAccountModule(h *handlers.AccountHandler, accounts *application.AccountService, rdb *redis.Client) *AccountModule {
	return &AccountModule{Handler: h, Accounts: accounts, Redis: rdb}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, 5, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIP())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Session(m.Accounts))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
	}
}
