package setup

import (
	"time"

	"github.com/learnaura/feedgate/internal/apiclient"
	"github.com/learnaura/feedgate/internal/dispatcher"
	"github.com/learnaura/feedgate/internal/feedcache"
	"github.com/learnaura/feedgate/internal/handler"
	"github.com/learnaura/feedgate/internal/markdown"
	mw "github.com/learnaura/feedgate/internal/middleware"
	"github.com/learnaura/feedgate/shared/config"
	"github.com/learnaura/feedgate/shared/jwt"
)

// Platform tokens are minted upstream; the TTL here only bounds tokens the
// gateway itself mints for tests and tooling.
const tokenTTL = 30 * 24 * time.Hour

type Dependencies struct {
	Handler *handler.Handler
	Auth    *mw.Auth
	Public  config.Public
}

func SetupDependencies(cfg *config.Config) *Dependencies {
	apiClient := apiclient.New(cfg.Public.ApiBaseURL)
	cache := feedcache.New(apiClient, cfg.Public.PageSize, cfg.Public.CachePages)
	disp := dispatcher.New(apiClient, cache)
	textProcessor := markdown.New()

	jwtSvc := jwt.New(cfg.JwtKey(), tokenTTL)

	return &Dependencies{
		Handler: handler.New(cache, disp, textProcessor),
		Auth:    mw.NewAuth(jwtSvc),
		Public:  cfg.Public,
	}
}
