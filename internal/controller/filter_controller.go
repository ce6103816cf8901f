package controller

import (
	"github.com/gin-gonic/gin"

	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/internal/util"
)

type FilterController struct {
	FilterService *service.FilterService
}

func NewFilterController(filterService *service.FilterService) *FilterController {
	return &FilterController{FilterService: filterService}
}

// @Summary Listar UFs
// @Description UFs distintas presentes na base de localidades
// @Tags Filtros
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/filtros/ufs [get]
func (c *FilterController) ListUFs(ctx *gin.Context) {
	ufs, err := c.FilterService.ListUFs()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ufs)
}

// @Summary Listar municípios de uma UF
// @Description Municípios distintos com IES na UF informada
// @Tags Filtros
// @Accept json
// @Produce json
// @Param uf path string true "Sigla da UF"
// @Success 200 {object} util.Response
// @Router /api/filtros/municipios/{uf} [get]
func (c *FilterController) ListMunicipios(ctx *gin.Context) {
	uf := ctx.Param("uf")
	if uf == "" {
		util.BadRequest(ctx, "uf é obrigatória")
		return
	}

	municipios, err := c.FilterService.ListMunicipios(uf)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, municipios)
}

// @Summary Listar IES
// @Description IES distintas da base, opcionalmente filtradas por UF e município
// @Tags Filtros
// @Accept json
// @Produce json
// @Param uf query string false "Sigla da UF"
// @Param municipio query string false "Município"
// @Success 200 {object} util.Response
// @Router /api/filtros/ies [get]
func (c *FilterController) ListIES(ctx *gin.Context) {
	entries, err := c.FilterService.ListIES(ctx.Query("uf"), ctx.Query("municipio"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
