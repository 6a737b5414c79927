package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jgarciandiav/ventas-backend/internal/application/dto"
	"github.com/jgarciandiav/ventas-backend/internal/application/sales"
	"github.com/jgarciandiav/ventas-backend/internal/application/usecase"
	"github.com/jgarciandiav/ventas-backend/internal/domain"
	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
	"github.com/jgarciandiav/ventas-backend/internal/domain/policy"
	"github.com/jgarciandiav/ventas-backend/internal/domain/repository"
	"github.com/jgarciandiav/ventas-backend/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro, alta de personal y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register registro público: siempre crea una cuenta con rol "usuario".
// El rol nunca se acepta desde el cliente en esta ruta.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.createAccount(in.Username, in.Email, in.Password, entity.RoleUsuario)
}

// RegisterStaff alta de personal: solo un admin puede crear cuentas
// admin/almacenero.
func (uc *AuthUseCase) RegisterStaff(actor sales.Actor, in dto.RegisterStaffRequest) (*dto.UserResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpManageUsers) {
		return nil, domain.ErrForbidden
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleAlmacenero {
		return nil, domain.ErrInvalidInput
	}
	return uc.createAccount(in.Username, in.Email, in.Password, in.Role)
}

func (uc *AuthUseCase) createAccount(username, email, password, role string) (*dto.UserResponse, error) {
	if existing, _ := uc.userRepo.GetByUsername(username); existing != nil {
		return nil, domain.ErrUsernameExists
	}
	if existing, _ := uc.userRepo.GetByEmail(email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return usecase.ToUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUserResponse(user),
	}, nil
}
