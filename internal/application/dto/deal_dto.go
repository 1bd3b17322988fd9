package dto

import "github.com/shopspring/decimal"

// CreateDealRequest entrada para crear un deal.
type CreateDealRequest struct {
	Name                string          `json:"name" validate:"required,min=1,max=200"`
	ClientName          string          `json:"client_name" validate:"required"`
	Value               decimal.Decimal `json:"value"`
	Stage               string          `json:"stage" validate:"omitempty,oneof=prospect proposal negotiation closed-won closed-lost"`
	AssignedManagerID   string          `json:"assigned_manager_id" validate:"required"`
	ExpectedClosingDate string          `json:"expected_closing_date"`
}

// UpdateDealRequest entrada parcial para actualizar un deal.
type UpdateDealRequest struct {
	Name                *string          `json:"name" validate:"omitempty,min=1,max=200"`
	ClientName          *string          `json:"client_name"`
	Value               *decimal.Decimal `json:"value"`
	Stage               *string          `json:"stage" validate:"omitempty,oneof=prospect proposal negotiation closed-won closed-lost"`
	AssignedManagerID   *string          `json:"assigned_manager_id"`
	ExpectedClosingDate *string          `json:"expected_closing_date"`
}

// DealResponse salida de un deal.
type DealResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	ClientName          string          `json:"client_name"`
	Value               decimal.Decimal `json:"value"`
	Stage               string          `json:"stage"`
	AssignedManagerID   string          `json:"assigned_manager_id"`
	ExpectedClosingDate string          `json:"expected_closing_date"`
	CreatedAt           string          `json:"created_at"`
}

// DealListResponse lista de deals.
type DealListResponse struct {
	Items []DealResponse `json:"items"`
	Total int            `json:"total"`
}
