package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserWithStatsResponse usuario más sus ventas acumuladas (listado de admin).
type UserWithStatsResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Superuser  bool            `json:"superuser"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	SalesCount int             `json:"sales_count"`
	SalesTotal decimal.Decimal `json:"sales_total"`
}

// UserListResponse listado de usuarios con estadísticas.
type UserListResponse struct {
	Items []UserWithStatsResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ChangeRoleRequest cambio de rol por un administrador.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
