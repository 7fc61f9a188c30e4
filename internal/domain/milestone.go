package domain

import "time"

// Milestone records an achievement ("hito") granted to a user, optionally
// tied to the event where it was earned.
type Milestone struct {
	ID            int64     `json:"id"`
	Titulo        string    `json:"titulo"`
	Descripcion   string    `json:"descripcion"`
	Categoria     string    `json:"categoria"`
	FechaRegistro time.Time `json:"fecha_registro"`
	BeneficiaryID int64     `json:"beneficiario_id"`
	EventID       *int64    `json:"evento_id,omitempty"`
}
