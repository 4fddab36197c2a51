package portfolio

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft  = "draft"
	StatusPublic = "public"
	StatusHidden = "hidden"
)

const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaPDF   = "pdf"
	MediaLink  = "link"
)

var mediaTypes = map[string]bool{MediaImage: true, MediaVideo: true, MediaPDF: true, MediaLink: true}

type Project struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string             `gorm:"size:255;not null" json:"title"`
	Slug       string             `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Status     string             `gorm:"size:20;not null;default:'draft';index" json:"status"`
	ClientName string             `gorm:"size:255" json:"client_name"`
	Industry   string             `gorm:"size:100" json:"industry"`
	Summary    string             `gorm:"type:text" json:"summary"`
	Problem    string             `gorm:"type:text" json:"problem"`
	Solution   string             `gorm:"type:text" json:"solution"`
	Outcomes   string             `gorm:"type:text" json:"outcomes"`
	Tags       models.StringArray `json:"tags"`
	Highlights models.StringArray `json:"highlights"`
	CoverURL   string             `gorm:"size:500" json:"cover_url"`
	SortOrder  int                `gorm:"default:0" json:"sort_order"`
	Media      []ProjectMedia     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"media"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProjectMedia is one gallery item of a project. At most one per project is primary;
// the media service keeps it that way by clearing the flag on siblings first.
type ProjectMedia struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Type      string    `gorm:"size:10;not null" json:"type"`
	URL       string    `gorm:"size:1000;not null" json:"url"`
	Title     string    `gorm:"size:255" json:"title"`
	Caption   string    `gorm:"type:text" json:"caption"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProjectMedia) TableName() string { return "project_media" }

func (m *ProjectMedia) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// --- DTOs ---

type ProjectRequest struct {
	Title      *string   `json:"title"`
	Slug       *string   `json:"slug"`
	Status     *string   `json:"status"`
	ClientName *string   `json:"client_name"`
	Industry   *string   `json:"industry"`
	Summary    *string   `json:"summary"`
	Problem    *string   `json:"problem"`
	Solution   *string   `json:"solution"`
	Outcomes   *string   `json:"outcomes"`
	Tags       *[]string `json:"tags"`
	Highlights *[]string `json:"highlights"`
	CoverURL   *string   `json:"cover_url"`
	SortOrder  *int      `json:"sort_order"`
}

type MediaRequest struct {
	Type      *string `json:"type"`
	URL       *string `json:"url"`
	Title     *string `json:"title"`
	Caption   *string `json:"caption"`
	SortOrder *int    `json:"sort_order"`
	IsPrimary *bool   `json:"is_primary"`
}

type ReorderRequest struct {
	IDs []uuid.UUID `json:"ids"`
}
