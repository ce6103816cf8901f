package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/internal/util"
)

// AdminController concentra as rotas administrativas: recarga do contexto de
// prova e importação de microdados.
type AdminController struct {
	ContextService *service.ExamContextService
	ImportService  *service.ImportService
}

func NewAdminController(contextService *service.ExamContextService, importService *service.ImportService) *AdminController {
	return &AdminController{ContextService: contextService, ImportService: importService}
}

// @Summary Recarregar caches
// @Description Recarrega gabaritos e mapeamento do banco e invalida os caches derivados
// @Tags Administração
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /admin/reload-cache [post]
func (c *AdminController) ReloadCache(ctx *gin.Context) {
	if err := c.ContextService.Reload(ctx.Request.Context()); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"generation": c.ContextService.Generation()})
}

// @Summary Importar microdados
// @Description Substitui um conjunto de microdados (alunos, gabaritos, mapeamento ou localidades) pelo CSV enviado
// @Tags Administração
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param dataset path string true "Conjunto de dados" Enums(alunos, gabaritos, mapeamento, localidades)
// @Param file formData file true "Arquivo CSV (separador ';', Latin-1)"
// @Success 200 {object} util.Response
// @Router /admin/import/{dataset} [post]
func (c *AdminController) ImportDataset(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "arquivo CSV é obrigatório")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	n, err := c.ImportService.ImportDataset(ctx.Request.Context(), ctx.Param("dataset"), file)
	if err != nil {
		if errors.Is(err, util.ErrUnknownDataset) {
			util.BadRequest(ctx, "conjunto de dados desconhecido")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"registros": n})
}
