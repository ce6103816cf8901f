package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"p360_analytics_backend/docs"
	"p360_analytics_backend/internal/middleware"
	"p360_analytics_backend/internal/model"
	"p360_analytics_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. Rotas públicas de consulta (sem login)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)

		ies := public.Group("/ies/:coCurso")
		{
			ies.GET("/dashboard", c.dashboard.GetDashboard)
			ies.GET("/matriz", c.dashboard.GetMatrix)
			ies.GET("/benchmark", c.benchmark.GetBenchmark)
			ies.GET("/comparativo", c.benchmark.GetComparativo)
			ies.GET("/ranking", c.ranking.GetRanking)
			ies.GET("/relatorio", c.report.GetReport)
			ies.GET("/exportar", c.report.ExportCSV)
		}

		filtros := public.Group("/filtros")
		{
			filtros.GET("/ufs", c.filter.ListUFs)
			filtros.GET("/municipios/:uf", c.filter.ListMunicipios)
			filtros.GET("/ies", c.filter.ListIES)
		}
	}

	// 2. Rotas administrativas (JWT + papel admin)
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/reload-cache", c.admin.ReloadCache)
		admin.POST("/import/:dataset", c.admin.ImportDataset)
	}
}
