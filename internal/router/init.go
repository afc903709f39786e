package router

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vivahsetu/vivahsetu/internal/application"
	handlers "github.com/vivahsetu/vivahsetu/internal/interface/http"
	"github.com/vivahsetu/vivahsetu/internal/router/modules"
)

// Deps carries the shared components the feature modules are wired from.
// Redis may be nil; rate limiting then degrades to a no-op.
type Deps struct {
	Logger   *logrus.Logger
	Accounts *application.AccountService
	Biodata  *application.BiodataService
	Redis    *redis.Client
}

// InitModules wires all feature modules into the registry. Called once
// during startup.
func InitModules(r *Registry, deps Deps) {
	accountHandler := handlers.NewAccountHandler(deps.Accounts, deps.Logger)
	biodataHandler := handlers.NewBiodataHandler(deps.Biodata, deps.Logger)

	r.Add(modules.NewAccountModule(accountHandler, deps.Accounts, deps.Redis))
	r.Add(modules.NewBiodataModule(biodataHandler, deps.Accounts, deps.Redis))
	r.Add(modules.NewDebugModule(deps.Redis))
}
