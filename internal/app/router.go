package app

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/middleware"
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// Public routes, no token required.
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/forgot-password", c.auth.ForgotPassword)
		public.POST("/reset-password", c.auth.ResetPassword)
	}

	// Everything below requires a valid, non-revoked token.
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg, a.Redis))
	{
		api.POST("/logout", c.auth.Logout)
		api.GET("/user", c.auth.CurrentUser)
		api.PUT("/profile", c.user.UpdateProfile)
		api.PUT("/update-password", c.auth.UpdatePassword)

		api.GET("/jadwals", c.jadwal.List)
		api.GET("/jadwals/:id", c.jadwal.Get)
		api.GET("/jadwal/today", c.jadwal.Today)
		api.GET("/jadwal/upcoming", c.jadwal.Upcoming)
		api.GET("/guru/kelas/:id", c.jadwal.ByGuru)
		api.GET("/siswa/kelas/:id", c.jadwal.BySiswa)

		api.GET("/kelas", c.kelas.List)
		api.GET("/kelas/count", c.kelas.Count)
		api.GET("/kelas/:id", c.kelas.Get)
		api.GET("/subjects", c.subject.List)
		api.GET("/subjects/:id", c.subject.Get)
		api.GET("/subjek/count", c.subject.Count)

		api.GET("/enrollment", c.enrollment.List)
		api.GET("/enrollment/get-id", c.enrollment.Resolve)
		api.GET("/enrollment/:id", c.enrollment.Get)

		api.GET("/quizzes", c.quiz.List)
		api.GET("/quizzes/jadwal/:id", c.quiz.ByJadwal)
		api.GET("/quizzes/:id", c.quiz.Get)
		api.GET("/quizzes/:id/answers", c.quiz.Answers)
		api.POST("/quizzes/:id/submit", c.quiz.Submit)

		api.GET("/questions", c.question.List)
		api.GET("/questions/jadwal/:id", c.question.ByJadwal)
		api.GET("/questions/:id", c.question.Get)

		api.POST("/user-answers", c.answer.Create)
		api.POST("/user-answers/batch", c.answer.CreateBatch)
		api.GET("/user-answers", c.answer.List)
		api.GET("/user-answers/count", c.answer.Count)
		api.GET("/user-answers/summary", c.answer.Summary)
		api.GET("/user-answers/:id", c.answer.Get)

		api.POST("/absensis", c.absensi.Create)
		api.GET("/absensis", c.absensi.List)
		api.GET("/absensis/jadwal/:id", c.absensi.ByJadwal)
		api.GET("/absensis/eligibility/:jadwal_id", c.absensi.Eligibility)
		api.GET("/absensis/:id", c.absensi.Get)

		api.GET("/materis", c.materi.List)
		api.GET("/materis/jadwal/:id", c.materi.ByJadwal)
		api.GET("/materis/:id", c.materi.Get)

		api.GET("/dashboard/siswa", c.dashboard.Siswa)

		// Teachers manage content for their slots; admin passes every gate.
		staff := api.Group("")
		staff.Use(middleware.RoleMiddleware(model.Guru))
		{
			staff.GET("/users/jadwal/:id", c.user.ListByJadwal)

			staff.POST("/quizzes", c.quiz.Create)
			staff.PUT("/quizzes/:id", c.quiz.Update)
			staff.DELETE("/quizzes/:id", c.quiz.Delete)

			staff.POST("/questions", c.question.Create)
			staff.PUT("/questions/:id", c.question.Update)
			staff.DELETE("/questions/:id", c.question.Delete)

			staff.POST("/materis", c.materi.Create)
			staff.PUT("/materis/:id", c.materi.Update)
			staff.DELETE("/materis/:id", c.materi.Delete)

			staff.PUT("/absensis/:id", c.absensi.Update)
			staff.GET("/absensi/summary-today", c.absensi.SummaryToday)
		}

		// Administration.
		admin := api.Group("")
		admin.Use(middleware.RoleMiddleware())
		{
			admin.POST("/users", c.user.Create)
			admin.GET("/users", c.user.List)
			admin.GET("/users/count", c.user.Count)
			admin.GET("/users/all/:id", c.user.GetFull)
			admin.GET("/users/:id", c.user.Get)
			admin.PUT("/users/:id", c.user.Update)
			admin.POST("/users/:id", c.user.UpdateMultipart)
			admin.DELETE("/users/:id", c.user.Delete)
			admin.GET("/guru", c.user.ListGuru)
			admin.GET("/siswa", c.user.ListSiswa)
			admin.GET("/roles", c.user.Roles)
			admin.GET("/roles/distribution", c.user.RoleDistribution)

			admin.POST("/kelas", c.kelas.Create)
			admin.PUT("/kelas/:id", c.kelas.Update)
			admin.DELETE("/kelas/:id", c.kelas.Delete)

			admin.POST("/subjects", c.subject.Create)
			admin.PUT("/subjects/:id", c.subject.Update)
			admin.DELETE("/subjects/:id", c.subject.Delete)

			admin.POST("/jadwals", c.jadwal.Create)
			admin.PUT("/jadwals/:id", c.jadwal.Update)
			admin.DELETE("/jadwals/:id", c.jadwal.Delete)

			admin.POST("/enrollment", c.enrollment.Create)
			admin.PUT("/enrollment/:id", c.enrollment.SetLevel)
			admin.DELETE("/enrollment/:id", c.enrollment.Delete)

			admin.DELETE("/user-answers/:id", c.answer.Delete)
			admin.DELETE("/absensis/:id", c.absensi.Delete)

			admin.GET("/dashboard/admin", c.dashboard.Admin)
		}
	}
}
