package v1

import (
	"context"
	"log"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/engine"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the v1 surface needs wired in.
type Deps struct {
	Cfg      config.Config
	Engines  *engine.Holder
	Cache    usecase.SearchCache
	Reload   func(ctx context.Context) *engine.Engine
	Notifier usecase.Notifier
	Logger   *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(d.Cfg.JWT.Secret, d.Cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	recommendUC := usecase.NewRecommendUsecase(d.Engines, d.Cache, d.Cfg.Engine.CacheTTL, d.Logger)
	gapUC := usecase.NewGapUsecase(d.Engines)
	courseUC := usecase.NewCourseUsecase(d.Engines)
	riskUC := usecase.NewRiskUsecase(d.Engines)
	occupationUC := usecase.NewOccupationUsecase(d.Engines)
	adminUC := usecase.NewAdminUsecase(d.Cfg.Admin, jwtSvc, d.Engines, d.Reload, d.Cache, d.Notifier, d.Logger)

	handler.NewCareerHandler(recommendUC).RegisterRoutes(r)
	handler.NewSkillHandler(gapUC).RegisterRoutes(r)
	handler.NewCourseHandler(courseUC).RegisterRoutes(r)
	handler.NewRiskHandler(riskUC).RegisterRoutes(r)
	handler.NewOccupationHandler(occupationUC).RegisterRoutes(r)

	adminHandler := handler.NewAdminHandler(adminUC)
	adminHandler.RegisterPublicRoutes(r)

	protected := r.Group("", authMw.Middleware())
	adminHandler.RegisterProtectedRoutes(protected)
}
