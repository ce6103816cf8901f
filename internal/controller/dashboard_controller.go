package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/internal/util"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// cursoParam extrai e valida o co_curso da rota.
func cursoParam(ctx *gin.Context) (int, bool) {
	coCurso, err := strconv.Atoi(ctx.Param("coCurso"))
	if err != nil || coCurso <= 0 {
		util.BadRequest(ctx, "co_curso inválido")
		return 0, false
	}
	return coCurso, true
}

// abortOnAnalysisError traduz os erros de análise em respostas HTTP.
func abortOnAnalysisError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrIESNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrNoScoreableRecords):
		util.NoData(ctx, "nenhum registro pontuável para esta IES")
	case errors.Is(err, util.ErrEmptyDatabase):
		util.NoData(ctx, "base de dados vazia")
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Painel da IES
// @Description Média geral, volume de alunos e análise de fortalezas e pontos de atenção da IES
// @Tags Painel
// @Accept json
// @Produce json
// @Param coCurso path int true "Código do curso (co_curso)"
// @Success 200 {object} util.Response
// @Router /api/ies/{coCurso}/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	coCurso, ok := cursoParam(ctx)
	if !ok {
		return
	}

	dashboard, err := c.DashboardService.GetDashboard(ctx.Request.Context(), coCurso)
	if err != nil {
		abortOnAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// @Summary Matriz de desempenho
// @Description Acerto médio e volume de questões por grande área e subespecialidade
// @Tags Painel
// @Accept json
// @Produce json
// @Param coCurso path int true "Código do curso (co_curso)"
// @Success 200 {object} util.Response
// @Router /api/ies/{coCurso}/matriz [get]
func (c *DashboardController) GetMatrix(ctx *gin.Context) {
	coCurso, ok := cursoParam(ctx)
	if !ok {
		return
	}

	matrix, err := c.DashboardService.GetMatrix(coCurso)
	if err != nil {
		abortOnAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, matrix)
}
