package entity

// Estados de una Meeting.
const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusCompleted = "completed"
	MeetingStatusCancelled = "cancelled"
)

// Meeting representa una reunión con participantes (IDs de User). El orden de
// inserción se conserva para presentación; la pertenencia no depende del orden.
type Meeting struct {
	ID            string
	Title         string
	Date          string
	Time          string
	Location      string
	Participants  []string
	Notes         string
	Status        string // scheduled, completed, cancelled
	RelatedDealID string // opcional
}

// HasParticipant indica si el usuario participa en la reunión.
func (m *Meeting) HasParticipant(userID string) bool {
	for _, id := range m.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
