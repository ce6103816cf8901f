package controller

import (
	"github.com/gin-gonic/gin"

	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/internal/util"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// @Summary Relatório detalhado
// @Description Desempenho de cada aluno por grande área e análise por tema da IES
// @Tags Relatório
// @Accept json
// @Produce json
// @Param coCurso path int true "Código do curso (co_curso)"
// @Success 200 {object} util.Response
// @Router /api/ies/{coCurso}/relatorio [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	coCurso, ok := cursoParam(ctx)
	if !ok {
		return
	}

	report, err := c.ReportService.GetDetailedReport(coCurso)
	if err != nil {
		abortOnAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// @Summary Exportar relatório em CSV
// @Description Gera o relatório detalhado em CSV e devolve a URL do arquivo
// @Tags Relatório
// @Accept json
// @Produce json
// @Param coCurso path int true "Código do curso (co_curso)"
// @Success 200 {object} util.Response
// @Router /api/ies/{coCurso}/exportar [get]
func (c *ReportController) ExportCSV(ctx *gin.Context) {
	coCurso, ok := cursoParam(ctx)
	if !ok {
		return
	}

	url, err := c.ReportService.ExportCSV(ctx.Request.Context(), coCurso)
	if err != nil {
		abortOnAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
