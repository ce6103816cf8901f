package controller

import (
	"github.com/gin-gonic/gin"

	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/internal/util"
)

type BenchmarkController struct {
	BenchmarkService *service.BenchmarkService
}

func NewBenchmarkController(benchmarkService *service.BenchmarkService) *BenchmarkController {
	return &BenchmarkController{BenchmarkService: benchmarkService}
}

// @Summary Benchmark da IES
// @Description Compara a média da IES com a média nacional e com a do grupo de elite
// @Tags Benchmark
// @Accept json
// @Produce json
// @Param coCurso path int true "Código do curso (co_curso)"
// @Success 200 {object} util.Response
// @Router /api/ies/{coCurso}/benchmark [get]
func (c *BenchmarkController) GetBenchmark(ctx *gin.Context) {
	coCurso, ok := cursoParam(ctx)
	if !ok {
		return
	}

	benchmark, err := c.BenchmarkService.GetBenchmark(coCurso)
	if err != nil {
		abortOnAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, benchmark)
}

// @Summary Comparativo com a referência nacional
// @Description Gaps por tema entre a IES e a referência nacional, com fortalezas e pontos de atenção
// @Tags Benchmark
// @Accept json
// @Produce json
// @Param coCurso path int true "Código do curso (co_curso)"
// @Success 200 {object} util.Response
// @Router /api/ies/{coCurso}/comparativo [get]
func (c *BenchmarkController) GetComparativo(ctx *gin.Context) {
	coCurso, ok := cursoParam(ctx)
	if !ok {
		return
	}

	comparativo, err := c.BenchmarkService.CompareWithReference(ctx.Request.Context(), coCurso)
	if err != nil {
		abortOnAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, comparativo)
}
