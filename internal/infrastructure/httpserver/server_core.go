package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/roamstone/esim-portal/internal/core/ports"
	customMiddleware "github.com/roamstone/esim-portal/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
	AdminAPIKey    string
}

type ServerDeps struct {
	CatalogService    ports.CatalogService
	AdminService      ports.CatalogAdminService
	SubscriberService ports.SubscriberService
	ContactService    ports.ContactService
	HealthCheckers    []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	catalogSvc     ports.CatalogService
	adminSvc       ports.CatalogAdminService
	subscriberSvc  ports.SubscriberService
	contactSvc     ports.ContactService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		catalogSvc:     deps.CatalogService,
		adminSvc:       deps.AdminService,
		subscriberSvc:  deps.SubscriberService,
		contactSvc:     deps.ContactService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			logger,
			serverConfig.AdminAPIKey,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
