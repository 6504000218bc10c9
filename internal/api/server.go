package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/rifaapp/rifa-api/docs"
	v1 "github.com/rifaapp/rifa-api/internal/api/handler/v1"
	"github.com/rifaapp/rifa-api/internal/api/middleware"
	"github.com/rifaapp/rifa-api/internal/config"
	"github.com/rifaapp/rifa-api/internal/events"
	"github.com/rifaapp/rifa-api/internal/repository"
	"github.com/rifaapp/rifa-api/internal/repository/dao"
	"github.com/rifaapp/rifa-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Hub must be Run for feed clients to receive events.
	Hub *v1.Hub
	// Reservations is shared with the expiry sweeper.
	Reservations *service.ReservationService

	db     *gorm.DB
	schema *dao.Schema
}

// NewServer wires every handler. Events go to the websocket hub and to
// publisher, which may be nil.
func NewServer(conf *config.AppConfig, db *gorm.DB, schema *dao.Schema, publisher events.Publisher) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		db:     db,
		schema: schema,
	}

	s.MountMiddlewares()

	raffleRepo := repository.NewRaffleRepository(dao.NewRaffleDAO(db))
	s.Hub = v1.NewHub(service.NewRaffleService(raffleRepo, nil))

	fanout := events.Fanout{s.Hub}
	if publisher != nil {
		fanout = append(fanout, publisher)
	}

	authHandler := s.initAuthHandler(db)
	raffleHandler := v1.NewRaffleHandler(service.NewRaffleService(raffleRepo, fanout))
	reservationHandler := s.initReservationHandler(db, fanout)
	participantHandler := s.initParticipantHandler(db)
	healthHandler := v1.NewHealthHandler(conf.API, s.ping)

	s.MountHandlers(authHandler, raffleHandler, reservationHandler, participantHandler, healthHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initReservationHandler(db *gorm.DB, publisher service.EventPublisher) *v1.ReservationHandler {
	reservationDAO := dao.NewReservationDAO(db)
	repo := repository.NewReservationRepository(reservationDAO)
	s.Reservations = service.NewReservationService(repo, publisher)
	handler := v1.NewReservationHandler(s.Reservations, s.Config.Raffle.DefaultTTLMinutes)

	return handler
}

func (s *Server) initParticipantHandler(db *gorm.DB) *v1.ParticipantHandler {
	repo := repository.NewPurchaseRepository(dao.NewPurchaseDAO(db), dao.NewParticipantDAO(db))
	svc := service.NewPurchaseService(repo)
	handler := v1.NewParticipantHandler(svc)

	return handler
}

func (s *Server) ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ZapLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	raffleHandler *v1.RaffleHandler,
	reservationHandler *v1.ReservationHandler,
	participantHandler *v1.ParticipantHandler,
	healthHandler *v1.HealthHandler,
) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath)
	if s.Config.Raffle.AutoMigrate && s.schema != nil {
		api.Use(middleware.EnsureSchema(s.schema))
	}

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.HandleSignup)
		auth.POST("/login", authHandler.HandleLogin)
	}

	raffles := api.Group("/raffles")
	{
		raffles.GET("", raffleHandler.HandleListRaffles)
		raffles.GET("/:raffleID", raffleHandler.HandleGetRaffle)
		raffles.GET("/:raffleID/numbers", raffleHandler.HandleListNumbers)
		raffles.GET("/:raffleID/feed", s.Hub.HandleFeed)
		raffles.POST("/:raffleID/reservations", reservationHandler.HandleReserve)
		raffles.DELETE("/:raffleID/reservations/:reservationID", reservationHandler.HandleRelease)
		raffles.POST("/:raffleID/purchases", reservationHandler.HandleConfirm)
		raffles.POST("/:raffleID/draw", reservationHandler.HandleDraw)
	}

	owned := api.Group("/raffles", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		owned.POST("", raffleHandler.HandleCreateRaffle)
		owned.PATCH("/:raffleID", raffleHandler.HandleUpdateRaffle)
		owned.DELETE("/:raffleID", raffleHandler.HandleDeleteRaffle)
	}

	participants := api.Group("/participants")
	{
		participants.POST("", participantHandler.HandleRegisterParticipant)
		participants.GET("/:participantID", participantHandler.HandleGetParticipant)
		participants.GET("/:participantID/purchases", participantHandler.HandleListPurchases)
	}

	s.Router.GET("/", healthHandler.HandleRoot)
	s.Router.GET("/health", healthHandler.HandleHealth)
	s.Router.GET("/version", healthHandler.HandleVersion)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Rifa API"
	docs.SwaggerInfo.Description = "Raffle number reservation, purchase and draw."
	docs.SwaggerInfo.Version = s.Config.API.Version
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
