package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/rbac"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// UserUseCase administración de cuentas: listado con estadísticas de venta
// por usuario y cambio de rol.
type UserUseCase struct {
	userRepo      repository.UserRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, analyticsRepo repository.AnalyticsRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, analyticsRepo: analyticsRepo}
}

// List lista usuarios (más recientes primero) con sus ventas acumuladas.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	stats, err := uc.analyticsRepo.SalesStatsByUser()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserWithStatsResponse, 0, len(users))
	for _, u := range users {
		s := stats[u.ID]
		total := s.Total
		if total.IsZero() {
			total = decimal.Zero
		}
		items = append(items, dto.UserWithStatsResponse{
			ID:         u.ID,
			Email:      u.Email,
			Name:       u.Name,
			Role:       u.Role,
			Superuser:  u.Superuser,
			Active:     u.Active,
			CreatedAt:  u.CreatedAt,
			SalesCount: s.Count,
			SalesTotal: total,
		})
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ChangeRole asigna un nuevo rol a la cuenta (acción de administrador).
func (uc *UserUseCase) ChangeRole(userID, role string) (*dto.UserResponse, error) {
	switch role {
	case entity.RoleSuperAdmin, entity.RoleCashier, entity.RoleStaff:
	default:
		return nil, domain.NewValidationError("role", "rol desconocido: "+role)
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	perms := rbac.PermissionsFor(user.Role)
	if user.Superuser {
		perms = rbac.AllPermissions()
	}
	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		Superuser:   user.Superuser,
		Active:      user.Active,
		Permissions: perms,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}, nil
}
