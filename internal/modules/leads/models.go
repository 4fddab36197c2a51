package leads

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StatusPending is the status a new lead starts with.
const StatusPending = "pendiente"

// StatusError marks a lead whose hand-off to the event publisher failed.
const StatusError = "error"

// ContactSubmission is a contact form entry tracked as a sales lead. Status is free
// text; the board maps it to a column through alias lists.
type ContactSubmission struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre       string         `gorm:"size:255;not null" json:"nombre"`
	Email        string         `gorm:"size:255;not null;index" json:"email"`
	Telefono     string         `gorm:"size:50" json:"telefono"`
	Empresa      string         `gorm:"size:255" json:"empresa"`
	Asunto       string         `gorm:"size:255;not null" json:"asunto"`
	Mensaje      string         `gorm:"type:text;not null" json:"mensaje"`
	Servicio     string         `gorm:"size:100" json:"servicio"`
	Status       string         `gorm:"size:50;not null;default:'pendiente';index" json:"status"`
	ErrorMessage string         `gorm:"type:text" json:"error_message,omitempty"`
	ErrorDetails datatypes.JSON `json:"error_details,omitempty"`
	Source       string         `gorm:"size:50" json:"source"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }

func (s *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// --- DTOs ---

type ContactRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Empresa  string `json:"empresa"`
	Asunto   string `json:"asunto"`
	Mensaje  string `json:"mensaje"`
	Servicio string `json:"servicio"`
}

type ContactResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type MoveRequest struct {
	Bucket string `json:"bucket"`
}

type statusChange struct {
	ID   uuid.UUID `json:"id"`
	From string    `json:"from"`
	To   string    `json:"to"`
}
