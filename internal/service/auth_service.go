package service

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"p360_analytics_backend/internal/config"
	"p360_analytics_backend/internal/model"
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/internal/util"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Config   *config.Config
	Logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config, logger *zap.Logger) *AuthService {
	return &AuthService{UserRepo: userRepo, Config: cfg, Logger: logger}
}

// LoginResult carrega o token emitido e os dados públicos da conta.
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login valida as credenciais e emite um JWT. Erros de conta inexistente e
// senha incorreta são indistinguíveis para o chamador.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		s.Logger.Warn("falha ao registrar último login", zap.Error(err))
	}
	return &LoginResult{Token: token, User: user}, nil
}

// EnsureAdmin cria a conta administrativa na primeira execução, a partir das
// credenciais configuradas. Não faz nada se já existe algum usuário ou se as
// credenciais não foram definidas.
func (s *AuthService) EnsureAdmin() error {
	count, err := s.UserRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if s.Config.JWT.AdminEmail == "" || s.Config.JWT.AdminPassword == "" {
		s.Logger.Warn("nenhum usuário cadastrado e credenciais administrativas não configuradas")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Config.JWT.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:     "Administrador",
		Email:    s.Config.JWT.AdminEmail,
		Password: string(hash),
		Role:     model.Admin,
	}
	if err := s.UserRepo.Create(admin); err != nil {
		return err
	}
	s.Logger.Info("conta administrativa criada", zap.String("email", admin.Email))
	return nil
}
