package usecase

import (
	"time"

	"github.com/jgarciandiav/ventas-backend/internal/application/dto"
	"github.com/jgarciandiav/ventas-backend/internal/application/sales"
	"github.com/jgarciandiav/ventas-backend/internal/domain"
	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
	"github.com/jgarciandiav/ventas-backend/internal/domain/policy"
	"github.com/jgarciandiav/ventas-backend/internal/domain/repository"
)

// UserUseCase administración de cuentas (solo admin vía manage-users).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista las cuentas del sistema.
func (uc *UserUseCase) List(actor sales.Actor, page dto.PageRequest) (*dto.UserListResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpManageUsers) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	users, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Limit: page.Limit, Offset: page.Offset}, nil
}

// Update cambia rol y/o bandera de actividad de una cuenta.
func (uc *UserUseCase) Update(actor sales.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpManageUsers) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad a su DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
