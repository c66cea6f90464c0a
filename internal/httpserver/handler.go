package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pacekeeper/internal/model"
	trackerHTTP "pacekeeper/internal/tracker/delivery/http"
	trackerUC "pacekeeper/internal/tracker/usecase"
	pkgErrors "pacekeeper/pkg/errors"
	"pacekeeper/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.ErrNotFound)
	})
}

// registerDomainRoutes wires repository, use case, handler and routes per domain.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	uc := trackerUC.New(srv.repo, srv.l, srv.trackerOptions)
	h := trackerHTTP.New(srv.l, uc)
	trackerHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Tracker domain registered at /api/v1")
}
