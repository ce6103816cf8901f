package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"p360_analytics_backend/internal/engine"
	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/internal/util"
)

type RankingController struct {
	RankingService *service.RankingService
}

func NewRankingController(rankingService *service.RankingService) *RankingController {
	return &RankingController{RankingService: rankingService}
}

// @Summary Ranking de IES
// @Description Ranking nacional ou regional das IES por média geral, com a posição da IES consultada
// @Tags Ranking
// @Accept json
// @Produce json
// @Param coCurso path int true "Código do curso (co_curso)"
// @Param uf query string false "Filtra pela UF da IES"
// @Param municipio query string false "Filtra pelo município da IES"
// @Param limit query int false "Máximo de posições devolvidas (padrão 50)"
// @Success 200 {object} util.Response
// @Router /api/ies/{coCurso}/ranking [get]
func (c *RankingController) GetRanking(ctx *gin.Context) {
	coCurso, ok := cursoParam(ctx)
	if !ok {
		return
	}

	limit := 50
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			util.BadRequest(ctx, "limit inválido")
			return
		}
		limit = parsed
	}

	ranking, err := c.RankingService.GetRanking(coCurso, ctx.Query("uf"), ctx.Query("municipio"), limit)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyPopulation) {
			util.NoData(ctx, "nenhuma IES na região informada")
			return
		}
		abortOnAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, ranking)
}
