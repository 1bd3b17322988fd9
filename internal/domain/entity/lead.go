package entity

// Estados del ciclo de vida de un Lead.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
)

// Lead representa un prospecto comercial. Al convertirlo en Deal queda con
// status=converted pero se conserva en su colección; no guarda referencia
// al Deal generado.
type Lead struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	Source    string // texto libre: Website, Referral, Social Media...
	Status    string // new, contacted, qualified, converted
	CreatedAt string
}
