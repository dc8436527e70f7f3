package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/controller"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/database"
	"adaptive_learning_backend/pkg/logger"
	"adaptive_learning_backend/pkg/monitoring"
	"adaptive_learning_backend/pkg/security"
	"adaptive_learning_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	kelas      *repository.KelasRepository
	subject    *repository.SubjectRepository
	jadwal     *repository.JadwalRepository
	enrollment *repository.EnrollmentRepository
	quiz       *repository.QuizRepository
	question   *repository.QuestionRepository
	answer     *repository.AnswerRepository
	absensi    *repository.AbsensiRepository
	materi     *repository.MateriRepository
}

type services struct {
	storage    *service.StorageService
	auth       *service.AuthService
	user       *service.UserService
	kelas      *service.KelasService
	subject    *service.SubjectService
	jadwal     *service.JadwalService
	enrollment *service.EnrollmentService
	quiz       *service.QuizService
	question   *service.QuestionService
	answer     *service.AnswerService
	absensi    *service.AbsensiService
	materi     *service.MateriService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	kelas      *controller.KelasController
	subject    *controller.SubjectController
	jadwal     *controller.JadwalController
	enrollment *controller.EnrollmentController
	quiz       *controller.QuizController
	question   *controller.QuestionController
	answer     *controller.AnswerController
	absensi    *controller.AbsensiController
	materi     *controller.MateriController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		kelas:      repository.NewKelasRepository(db),
		subject:    repository.NewSubjectRepository(db),
		jadwal:     repository.NewJadwalRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		quiz:       repository.NewQuizRepository(db),
		question:   repository.NewQuestionRepository(db),
		answer:     repository.NewAnswerRepository(db),
		absensi:    repository.NewAbsensiRepository(db),
		materi:     repository.NewMateriRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, rdb, cfg)
	s.user = service.NewUserService(repos.user, repos.enrollment, s.storage)
	s.kelas = service.NewKelasService(repos.kelas)
	s.subject = service.NewSubjectService(repos.subject)
	s.jadwal = service.NewJadwalService(repos.jadwal, repos.enrollment)
	s.enrollment = service.NewEnrollmentService(repos.enrollment)
	s.quiz = service.NewQuizService(db, repos.quiz, repos.answer, repos.enrollment)
	s.question = service.NewQuestionService(repos.question)
	s.answer = service.NewAnswerService(repos.answer)
	s.absensi = service.NewAbsensiService(repos.absensi, repos.enrollment, repos.jadwal)
	s.materi = service.NewMateriService(repos.materi, s.storage)
	s.dashboard = service.NewDashboardService(s.user, s.kelas, s.subject, s.jadwal, s.answer, s.absensi)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	isRelease := a.Config.Server.Mode == "release"
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user, isRelease),
		user:       controller.NewUserController(s.user),
		kelas:      controller.NewKelasController(s.kelas),
		subject:    controller.NewSubjectController(s.subject),
		jadwal:     controller.NewJadwalController(s.jadwal),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		quiz:       controller.NewQuizController(s.quiz),
		question:   controller.NewQuestionController(s.question),
		answer:     controller.NewAnswerController(s.answer, s.quiz, s.question),
		absensi:    controller.NewAbsensiController(s.absensi),
		materi:     controller.NewMateriController(s.materi, s.enrollment),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The portal degrades without Redis: no token revocation, no reset
		// tokens. Startup proceeds so local development works cache-less.
		logger.Log.Warn("Redis unavailable, running without token revocation", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("adaptive-learning-portal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	}
	return gin.DebugMode
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Info("Server exiting")
	logger.Log.Sync()
}
