package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"p360_analytics_backend/internal/config"
	"p360_analytics_backend/internal/controller"
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/pkg/database"
	"p360_analytics_backend/pkg/logger"
	"p360_analytics_backend/pkg/monitoring"
	"p360_analytics_backend/pkg/security"
	"p360_analytics_backend/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	student  *repository.StudentRepository
	key      *repository.AnswerKeyRepository
	mapping  *repository.MappingRepository
	locality *repository.LocalityRepository
	user     *repository.UserRepository
}

type services struct {
	examContext *service.ExamContextService
	storage     *service.StorageService
	auth        *service.AuthService
	dashboard   *service.DashboardService
	benchmark   *service.BenchmarkService
	ranking     *service.RankingService
	report      *service.ReportService
	filter      *service.FilterService
	importer    *service.ImportService
}

type controllers struct {
	auth      *controller.AuthController
	dashboard *controller.DashboardController
	benchmark *controller.BenchmarkController
	ranking   *controller.RankingController
	report    *controller.ReportController
	filter    *controller.FilterController
	admin     *controller.AdminController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig propaga uma configuração recarregada do disco aos callbacks
// registrados. Chamado pelo watcher de configuração.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		student:  repository.NewStudentRepository(db),
		key:      repository.NewAnswerKeyRepository(db),
		mapping:  repository.NewMappingRepository(db),
		locality: repository.NewLocalityRepository(db),
		user:     repository.NewUserRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.examContext = service.NewExamContextService(repos.key, repos.mapping, repos.student, rdb)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg, logger.Log)
	s.dashboard = service.NewDashboardService(repos.student, s.examContext, rdb, cfg.Redis.DashboardTTL)
	s.benchmark = service.NewBenchmarkService(repos.student, s.examContext)
	s.ranking = service.NewRankingService(repos.student, repos.locality, s.examContext)
	s.report = service.NewReportService(repos.student, s.examContext, s.storage)
	s.filter = service.NewFilterService(repos.student, repos.locality)
	s.importer = service.NewImportService(
		repos.student,
		repos.key,
		repos.mapping,
		repos.locality,
		s.examContext,
		cfg,
		logger.Log,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		dashboard: controller.NewDashboardController(s.dashboard),
		benchmark: controller.NewBenchmarkController(s.benchmark),
		ranking:   controller.NewRankingController(s.ranking),
		report:    controller.NewReportController(s.report),
		filter:    controller.NewFilterController(s.filter),
		admin:     controller.NewAdminController(s.examContext, s.importer),
		health:    controller.NewHealthController(db, s.examContext),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())

	// a configuração fica acessível aos middlewares de autenticação
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("falha ao inicializar o banco de dados", zap.Error(err))
	}

	if cfg.ForceMigrate || cfg.Server.Mode != "release" {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("falha na migração do banco de dados", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("falha ao inicializar o redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	// conta administrativa da primeira execução
	if err := services.auth.EnsureAdmin(); err != nil {
		logger.Log.Fatal("falha ao garantir a conta administrativa", zap.Error(err))
	}

	// índices de gabarito e mapeamento carregados antes de aceitar tráfego
	if err := services.examContext.Load(); err != nil {
		logger.Log.Fatal("falha ao carregar o contexto de prova", zap.Error(err))
	}
	logger.Log.Info("contexto de prova carregado",
		zap.Int("gabaritos", len(services.examContext.Keys())),
		zap.Int("temas", len(services.examContext.Topics())))

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("p360-analytics", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("falha ao inicializar o tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/relatorios", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("servidor iniciado", zap.String("porta", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("encerrando o servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("encerramento forçado do servidor:", err)
	}

	logger.Log.Sync()
}
