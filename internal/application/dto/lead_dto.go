package dto

import "github.com/shopspring/decimal"

// CreateLeadRequest entrada para crear un lead.
type CreateLeadRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Source  string `json:"source"`
	Status  string `json:"status" validate:"omitempty,oneof=new contacted qualified converted"`
}

// UpdateLeadRequest entrada parcial: los campos ausentes no se tocan.
type UpdateLeadRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Source  *string `json:"source"`
	Status  *string `json:"status" validate:"omitempty,oneof=new contacted qualified converted"`
}

// ConvertLeadRequest payload del deal que nace al convertir un lead.
type ConvertLeadRequest struct {
	Name                string          `json:"name" validate:"required,min=1,max=200"`
	ClientName          string          `json:"client_name" validate:"required"`
	Value               decimal.Decimal `json:"value"`
	Stage               string          `json:"stage" validate:"omitempty,oneof=prospect proposal negotiation closed-won closed-lost"`
	AssignedManagerID   string          `json:"assigned_manager_id" validate:"required"`
	ExpectedClosingDate string          `json:"expected_closing_date"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Source    string `json:"source"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// LeadListResponse lista de leads.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Total int            `json:"total"`
}
