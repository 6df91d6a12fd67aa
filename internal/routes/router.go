// Package routesはroutingを行います。
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-task-api/internal/config"
	"go-task-api/internal/handlers"
	"go-task-api/internal/repositories"
	"go-task-api/internal/services"
)

// Dependencies はルーターが必要とする依存関係です。DB が nil の場合 /dbcheck は登録されません。
type Dependencies struct {
	Server      config.Server
	Auth        config.Auth
	TaskService *services.TaskService
	DB          *gorm.DB
	Logger      *zap.Logger
}

// SetupRouter はgormのリポジトリからサービスを組み立て、ルーターを返します。
func SetupRouter(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	taskRepo := repositories.NewTaskRepository(db)
	taskService := services.NewTaskService(taskRepo)

	return NewRouter(Dependencies{
		Server:      cfg.Server,
		Auth:        cfg.Auth,
		TaskService: taskService,
		DB:          db,
		Logger:      logger,
	})
}

// NewRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(RecoveryMiddleware(deps.Logger))
	r.Use(RequestLogger(deps.Logger))

	// CORS対策
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = deps.Server.AllowOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = config.DefaultAllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	api := r.Group("/" + deps.Server.Prefix)

	api.GET("/hello", handlers.HelloHandler)
	if deps.DB != nil {
		api.GET("/dbcheck", handlers.DBCheckHandler(deps.DB, deps.Logger))
	}

	taskHandler := handlers.NewTaskHandler(deps.TaskService, deps.Logger, deps.Server.StrictValidation)

	tasks := api.Group("/task")
	if deps.Auth.JWTSecret != "" {
		tasks.Use(AuthMiddleware(services.NewJWTService(deps.Auth.JWTSecret)))
	}
	{
		tasks.GET("", taskHandler.FindAllHandler)
		tasks.GET("/:id", taskHandler.FindOneHandler)
		tasks.POST("", taskHandler.CreateHandler)
		tasks.PUT("/:id", taskHandler.UpdateHandler)
		tasks.DELETE("/:id", taskHandler.RemoveHandler)
	}

	return r
}
