package domain

import "time"

type Event struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Tipo        string    `json:"tipo"`
	Fecha       time.Time `json:"fecha"`
	Empresa     string    `json:"empresa"`
	Descripcion string    `json:"descripcion"`
	// Participantes holds the usernames of registered users.
	Participantes []string `json:"participantes"`
}

func (e Event) HasParticipant(username string) bool {
	for _, p := range e.Participantes {
		if p == username {
			return true
		}
	}
	return false
}

// EventParticipantCount is the per-event roll-up served by the active-events
// dashboard.
type EventParticipantCount struct {
	ID            int64  `json:"id"`
	Nombre        string `json:"nombre"`
	Participantes int64  `json:"cantidad_participantes"`
}

// ExternalGuest is an invitee without a user account, tied to one event.
type ExternalGuest struct {
	ID       int64  `json:"id"`
	EventID  int64  `json:"evento_id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
	Empresa  string `json:"empresa"`
}
