package entity

// Tipos de llamada.
const (
	CallTypeInbound  = "inbound"
	CallTypeOutbound = "outbound"
)

// Call representa una llamada registrada por un empleado.
type Call struct {
	ID                 string
	Title              string
	RelatedLeadID      string // opcional
	RelatedDealID      string // opcional
	DateTime           string // fecha-hora plana, ej. 2026-02-11T10:00:00
	Duration           int    // minutos, >= 0
	CallType           string // inbound, outbound
	Notes              string
	Outcome            string // texto libre
	AssignedEmployeeID string
}
