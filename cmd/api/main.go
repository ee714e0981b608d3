package main

import (
	_ "inventario/api/swagger" // swagger docs
	"inventario/internal/config"
	"inventario/internal/database"
	"inventario/internal/handler"
	"inventario/internal/middleware"
	"inventario/internal/model"
	"inventario/internal/repository"
	"inventario/internal/service"
	"inventario/internal/websocket"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Inventario API
// @version         1.0
// @description     REST API for institutional asset inventory management.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load("configs/.env"); err != nil {
		log.Info().Msg("no configs/.env file found")
	}
	cfg := config.Load()

	db, err := database.NewConnection(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("connected to PostgreSQL")

	// Redis backs the scan lookup cache; the API runs without it
	var rdb *redis.Client
	if opts, err := redis.ParseURL(cfg.RedisURL); err == nil {
		rdb = redis.NewClient(opts)
	} else {
		log.Warn().Err(err).Msg("invalid REDIS_URL, scan cache disabled")
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Repository -> Service -> Handler
	userRepo := repository.NewUserRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	nomenclatureRepo := repository.NewNomenclatureRepository(db)
	txManager := repository.NewTransactionManager(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	agentService := service.NewAgentService(agentRepo, roleRepo, assetRepo)
	assetService := service.NewAssetService(assetRepo, agentRepo, locationRepo, categoryRepo, nomenclatureRepo, txManager, rdb, wsHub)
	roleService := service.NewRoleService(roleRepo, agentRepo)
	locationService := service.NewLocationService(locationRepo, assetRepo)
	categoryService := service.NewCategoryService(categoryRepo, assetRepo)
	nomenclatureService := service.NewNomenclatureService(nomenclatureRepo, assetRepo)
	reportService := service.NewReportService(agentRepo, assetRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	agentHandler := handler.NewAgentHandler(agentService)
	assetHandler := handler.NewAssetHandler(assetService)
	locationHandler := handler.NewLocationHandler(locationService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	nomenclatureHandler := handler.NewNomenclatureHandler(nomenclatureService)
	roleHandler := handler.NewRoleHandler(roleService)
	reportHandler := handler.NewReportHandler(reportService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

	router := gin.New()
	router.Use(middleware.Logger(), middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", handler.Health)
	router.Static("/files", cfg.UploadDir)

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, cfg.JWTSecret)
	})

	auth := middleware.RequireAuth(cfg.JWTSecret)
	admin := middleware.RequireRole(cfg.JWTSecret, model.UserRoleAdmin)

	root := router.Group("")
	authHandler.RegisterRoutes(root)
	userHandler.RegisterRoutes(root, admin)
	agentHandler.RegisterRoutes(root, auth)
	assetHandler.RegisterRoutes(root, auth)
	locationHandler.RegisterRoutes(root, auth)
	categoryHandler.RegisterRoutes(root, auth)
	nomenclatureHandler.RegisterRoutes(root, auth)
	roleHandler.RegisterRoutes(root, auth)
	reportHandler.RegisterRoutes(root, auth)
	uploadHandler.RegisterRoutes(root, auth)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
