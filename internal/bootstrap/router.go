package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasthiya-it/tracker-backend/internal/httpapi"
	"github.com/hasthiya-it/tracker-backend/internal/httpapi/middleware"
	projecthttp "github.com/hasthiya-it/tracker-backend/internal/projects/http"
	"github.com/hasthiya-it/tracker-backend/internal/projects/repository"
	"github.com/hasthiya-it/tracker-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.GET("/health", healthHandler.HealthCheck)

	svc := service.New(repository.New(dep.DB))
	projecthttp.Register(api.Group("/projects"), svc)

	return r
}
