package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vivahsetu/vivahsetu/internal/application"
	handlers "github.com/vivahsetu/vivahsetu/internal/interface/http"
	"github.com/vivahsetu/vivahsetu/internal/interface/middleware"
)

// BiodataModule wires profile listing routes.
// Public browse: GET /api/profiles, GET /api/profiles/:id
// Protected: POST /api/profiles, PUT/DELETE /api/profiles/:id (owner only,
// enforced in the handler)
type BiodataModule struct {
	Handler  *handlers.BiodataHandler
	Accounts *application.AccountService
	Redis    *redis.Client
}

func NewBiodataModule(h *handlers.BiodataHandler, accounts *application.AccountService, rdb *redis.Client) *BiodataModule {
	return &BiodataModule{Handler: h, Accounts: accounts, Redis: rdb}
}

func (m *BiodataModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP())

	rg.GET("/profiles", browseLimiter, m.Handler.List)
	rg.GET("/profiles/:id", browseLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Session(m.Accounts))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyBySession()))
	{
		auth.POST("/profiles", m.Handler.Create)
		auth.PUT("/profiles/:id", m.Handler.Update)
		auth.DELETE("/profiles/:id", m.Handler.Delete)
	}
}
