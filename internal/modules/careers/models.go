package careers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type JobPosting struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string             `gorm:"size:255;not null" json:"title"`
	Slug             string             `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Status           string             `gorm:"size:20;not null;default:'draft';index" json:"status"`
	Department       string             `gorm:"size:100" json:"department"`
	Location         string             `gorm:"size:255" json:"location"`
	EmploymentType   string             `gorm:"size:50" json:"employment_type"`
	Seniority        string             `gorm:"size:50" json:"seniority"`
	Summary          string             `gorm:"type:text" json:"summary"`
	Description      string             `gorm:"type:text" json:"description"`
	Responsibilities string             `gorm:"type:text" json:"responsibilities"`
	Requirements     string             `gorm:"type:text" json:"requirements"`
	Benefits         string             `gorm:"type:text" json:"benefits"`
	SalaryMin        *int               `json:"salary_min"`
	SalaryMax        *int               `json:"salary_max"`
	SalaryCurrency   string             `gorm:"size:3" json:"salary_currency"`
	Tags             models.StringArray `json:"tags"`
	ApplyURL         string             `gorm:"size:500" json:"apply_url"`
	ExternalURL      string             `gorm:"size:500" json:"external_url"`
	PublishedAt      *time.Time         `json:"published_at"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func (j *JobPosting) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// JobApplication is what a visitor sends from the careers page.
type JobApplication struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     *uuid.UUID `gorm:"type:uuid;index" json:"job_id"`
	JobSlug   string     `gorm:"size:255" json:"job_slug"`
	Nombre    string     `gorm:"size:255;not null" json:"nombre"`
	Email     string     `gorm:"size:255;not null" json:"email"`
	Telefono  string     `gorm:"size:50" json:"telefono"`
	LinkedIn  string     `gorm:"size:500" json:"linkedin"`
	CVURL     string     `gorm:"size:500" json:"cv_url"`
	Mensaje   string     `gorm:"type:text" json:"mensaje"`
	CreatedAt time.Time  `json:"created_at"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// --- DTOs ---

type JobRequest struct {
	Title            *string   `json:"title"`
	Slug             *string   `json:"slug"`
	Status           *string   `json:"status"`
	Department       *string   `json:"department"`
	Location         *string   `json:"location"`
	EmploymentType   *string   `json:"employment_type"`
	Seniority        *string   `json:"seniority"`
	Summary          *string   `json:"summary"`
	Description      *string   `json:"description"`
	Responsibilities *string   `json:"responsibilities"`
	Requirements     *string   `json:"requirements"`
	Benefits         *string   `json:"benefits"`
	SalaryMin        *int      `json:"salary_min"`
	SalaryMax        *int      `json:"salary_max"`
	SalaryCurrency   *string   `json:"salary_currency"`
	Tags             *[]string `json:"tags"`
	ApplyURL         *string   `json:"apply_url"`
	ExternalURL      *string   `json:"external_url"`
}

type ApplyRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Puesto   string `json:"puesto"`
	JobSlug  string `json:"job_slug"`
	Telefono string `json:"telefono"`
	LinkedIn string `json:"linkedin"`
	CVURL    string `json:"cv_url"`
	Mensaje  string `json:"mensaje"`
}

type ApplyResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}
