package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"newsline/config"
	"newsline/controllers"
	"newsline/middleware"
	"newsline/store"
	"newsline/utils"
)

// SetupRouter builds the gin engine with middlewares, templates and routes.
func SetupRouter(stores *store.Stores) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	Register(r, stores)

	return r
}

// Register wires all application routes onto the engine. It is separate from
// SetupRouter so tests can mount the same routing table on a bare engine.
func Register(r *gin.Engine, stores *store.Stores) {
	accountController := controllers.NewAccountController(stores)
	newsController := controllers.NewNewsController(stores)

	r.GET("/", accountController.Home)
	r.GET("/register/", accountController.RegisterForm)
	r.POST("/register/", middleware.RateLimitMiddleware(), accountController.Register)
	r.GET("/login/", accountController.LoginForm)
	r.POST("/login/", middleware.RateLimitMiddleware(), accountController.Login)
	r.GET("/logout/", accountController.Logout)

	news := r.Group("/news")
	news.Use(middleware.LoginRequired())
	news.GET("/", newsController.List)
	news.GET("/create/", newsController.CreateForm)
	news.POST("/create/", newsController.Create)
	news.GET("/:id/", newsController.Detail)
	news.GET("/:id/update/", newsController.UpdateForm)
	news.POST("/:id/update/", newsController.Update)
	// A GET delete is equivalent to POST here: the source flow had no
	// confirmation step, and no ownership filter either.
	news.GET("/:id/delete/", newsController.Delete)
	news.POST("/:id/delete/", newsController.Delete)
	news.POST("/:id/comment/", newsController.CreateComment)
}
