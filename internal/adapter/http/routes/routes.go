package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"

	_ "github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/docs" // swagger spec registration
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/adapter/http/handlers"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/adapter/http/middleware"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/adapter/persistence/repository"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/config"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/database"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/metrics"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/infrastructure/notifications"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathAPI          = "/api"
	PathLeads        = "/leads"
	PathCalculations = "/calculations"
	PathEstimates    = "/estimates"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	leadRepo, calcRepo, err := newRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	router := NewRouter(cfg, Dependencies{
		Leads:        leadRepo,
		Calculations: calcRepo,
		Notifier:     newNotifier(cfg),
		Metrics:      metrics.New(prometheus.DefaultRegisterer),
	})

	log.Printf("[server] listening port=%d storage=%s", cfg.Port, cfg.Driver)
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// Dependencies are the adapters the HTTP surface is built on.
type Dependencies struct {
	Leads        interfaces.ILeadRepository
	Calculations interfaces.ICalculationRepository
	Notifier     interfaces.ILeadNotifier
	Metrics      *metrics.Metrics
}

// NewRouter assembles use cases, handlers and middleware into a gin engine.
func NewRouter(cfg config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, deps.Metrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	leadUseCase := usecase.NewLeadUseCase(deps.Leads, deps.Notifier, deps.Metrics)
	calculationUseCase := usecase.NewCalculationUseCase(deps.Calculations, deps.Metrics)

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addLeadRoutes(api, handlers.NewLeadHandler(leadUseCase), middleware.AdminJWT(cfg.AdminJWTSecret))
	addCalculationRoutes(api, handlers.NewCalculationHandler(calculationUseCase))
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Metrics(m))
	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}
}

func addLeadRoutes(rg *gin.RouterGroup, h *handlers.LeadHandler, adminOnly gin.HandlerFunc) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", h.CreateLead)
		leads.GET("", adminOnly, h.ListLeads)
		leads.GET("/:id", adminOnly, h.GetLead)
	}
}

func addCalculationRoutes(rg *gin.RouterGroup, h *handlers.CalculationHandler) {
	calculations := rg.Group(PathCalculations)
	{
		calculations.POST("", h.CreateCalculation)
		calculations.GET("/:id", h.GetCalculation)
	}
	rg.POST(PathEstimates, h.Estimate)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// newRepositories opens the configured store, migrating or provisioning it when AUTO_MIGRATE is on.
func newRepositories(ctx context.Context, cfg config.Config) (interfaces.ILeadRepository, interfaces.ICalculationRepository, error) {
	if cfg.Driver == config.DriverDynamoDB {
		ddb, err := database.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if cfg.AutoMigrate {
			if err := database.EnsureDynamoDBTables(ctx, ddb, cfg.LeadsTable, cfg.CalculationsTable); err != nil {
				return nil, nil, err
			}
		}
		return repository.NewLeadDynamoRepository(ddb, cfg.LeadsTable),
			repository.NewCalculationDynamoRepository(ddb, cfg.CalculationsTable), nil
	}

	db, err := database.OpenSQL(ctx, cfg.Driver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(db, cfg.Driver); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	dialect := repository.DialectPostgres
	if cfg.Driver == config.DriverSQLite {
		dialect = repository.DialectSQLite
	}
	return repository.NewLeadSQLRepository(db, dialect), repository.NewCalculationSQLRepository(db, dialect), nil
}

func newNotifier(cfg config.Config) interfaces.ILeadNotifier {
	n := notifications.NewSendGridLeadNotifier(cfg.SendGridAPIKey, cfg.LeadNotifyFrom, cfg.LeadNotifyTo)
	if n == nil {
		log.Printf("[lead][notifier] SendGrid not configured; lead e-mails disabled")
		return nil
	}
	return n
}
