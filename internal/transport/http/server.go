package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "github.com/AhmedGamal2004/My-Personal-final/internal/app"
	"github.com/AhmedGamal2004/My-Personal-final/internal/bootstrap"
	"github.com/AhmedGamal2004/My-Personal-final/internal/cache"
	"github.com/AhmedGamal2004/My-Personal-final/internal/platform/rabbitmq"
	"github.com/AhmedGamal2004/My-Personal-final/internal/repository"
	"github.com/AhmedGamal2004/My-Personal-final/internal/transport/http/handler"
	"github.com/AhmedGamal2004/My-Personal-final/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	cfg := app.Config
	gin.SetMode(cfg.App.GinMode)
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS.AllowOrigins),
		middleware.BodyLimit(cfg.App.MaxBodyBytes),
	)

	// typed nils must not leak into the service interfaces
	var contentCache appsvc.ContentCache
	if app.Redis != nil {
		contentCache = cache.NewContentCache(
			app.Redis,
			cfg.App.Name,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			time.Duration(cfg.Redis.DirtyTTLSeconds)*time.Second,
		)
	}
	var events appsvc.EventPublisher
	if app.MQConn != nil {
		events = rabbitmq.NewEventPublisher(app.MQConn, cfg.RabbitMQ.EventQueue)
	}

	settingsRepo := repository.NewSettingsRepository(app.DB)
	messageRepo := repository.NewMessageRepository(app.DB)
	eventRepo := repository.NewEventRepository(app.DB)

	gate := appsvc.NewAdminGate(cfg.Admin.Password)
	profileService := appsvc.NewProfileService(
		settingsRepo,
		appsvc.ProfileDefaults{Name: cfg.Profile.DefaultName, Bio: cfg.Profile.DefaultBio},
		contentCache,
		events,
	)
	messageService := appsvc.NewMessageService(messageRepo, contentCache, events)
	audioService := appsvc.NewAudioService(messageService, messageRepo)

	healthHandler := handler.NewHealthHandler(app)
	profileHandler := handler.NewProfileHandler(profileService)
	messageHandler := handler.NewMessageHandler(messageService, audioService)
	adminHandler := handler.NewAdminHandler(gate, eventRepo)
	staticHandler := handler.NewStaticHandler(cfg.App.StaticDir)

	requireDB := middleware.RequireDatabase(app.DB != nil)

	api := router.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/verify-admin", adminHandler.Verify)

	public := api.Group("", requireDB)
	public.GET("/get-profile", profileHandler.Get)
	public.GET("/get-messages", messageHandler.List)
	public.GET("/audio/:id", messageHandler.FetchAudio)

	admin := api.Group("", middleware.AdminOnly(gate), requireDB)
	admin.POST("/update-profile", profileHandler.Update)
	admin.POST("/create-message", messageHandler.Create)
	admin.POST("/upload-audio", messageHandler.UploadAudio)
	admin.POST("/update-message", messageHandler.Update)
	admin.POST("/delete-message", messageHandler.Delete)
	admin.GET("/content-events", adminHandler.ContentEvents)

	router.NoRoute(staticHandler.Serve)

	return router
}
