package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ralph-xpert-backend/config"
	"ralph-xpert-backend/internal/delivery/http/middleware"
	"ralph-xpert-backend/internal/delivery/http/response"
	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/auth"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	ContactUC domain.ContactUsecase
	MessageUC domain.MessageUsecase
	ExportUC  domain.ExportUsecase
	StatsUC   domain.StatsUsecase
	Tokens    *auth.TokenService
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "System operational"})
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin routes, bearer-guarded as a single group. /admin/login is the
	// one exception and registers on the public group instead.
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Tokens))

	NewAuthHandler(api, deps.AuthUC)
	NewContactHandler(api, admin, deps.ContactUC)
	NewMessageHandler(api, admin, deps.MessageUC)
	NewAdminHandler(admin, deps.StatsUC, deps.ExportUC, deps.Config.ProductName)

	// Static shell (landing + admin pages) for everything outside /api.
	r.NoRoute(serveStatic(deps.Config.StaticDir))

	return r
}

func serveStatic(staticDir string) gin.HandlerFunc {
	fs := http.Dir(staticDir)
	fileServer := http.FileServer(fs)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || strings.HasPrefix(path, "/api/") {
			response.Error(c, http.StatusNotFound, "Route non trouvée")
			return
		}

		probe := path
		if probe == "/" {
			probe = "/index.html"
		}
		f, err := fs.Open(probe)
		if err != nil {
			response.Error(c, http.StatusNotFound, "Route non trouvée")
			return
		}
		f.Close()

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
