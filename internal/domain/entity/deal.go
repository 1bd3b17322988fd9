package entity

import "github.com/shopspring/decimal"

// Etapas del pipeline de un Deal.
const (
	DealStageProspect    = "prospect"
	DealStageProposal    = "proposal"
	DealStageNegotiation = "negotiation"
	DealStageClosedWon   = "closed-won"
	DealStageClosedLost  = "closed-lost"
)

// Deal representa una oportunidad de negocio asignada a un manager.
type Deal struct {
	ID                  string
	Name                string
	ClientName          string
	Value               decimal.Decimal
	Stage               string // prospect, proposal, negotiation, closed-won, closed-lost
	AssignedManagerID   string // referencia a User con role=manager
	ExpectedClosingDate string
	CreatedAt           string
}
