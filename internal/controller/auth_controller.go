package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"p360_analytics_backend/internal/service"
	"p360_analytics_backend/internal/util"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Login
// @Description Autentica uma conta administrativa e devolve um JWT
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credenciais"
// @Success 200 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, "credenciais inválidas")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
