package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/internal/util"
)

type HealthController struct {
	DB             *gorm.DB
	ContextService *service.ExamContextService
}

func NewHealthController(db *gorm.DB, contextService *service.ExamContextService) *HealthController {
	return &HealthController{DB: db, ContextService: contextService}
}

// @Summary Verificação de saúde
// @Description Estado do serviço, do banco e dos índices de prova carregados
// @Tags Sistema
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "banco de dados indisponível")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database":  "up",
			"gabaritos": len(c.ContextService.Keys()),
			"temas":     len(c.ContextService.Topics()),
		},
	})
}
