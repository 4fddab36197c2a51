package portfolio

import (
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/models"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/validate"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingProjectFields = errors.New("slug and title are required")
	ErrProjectNotFound      = errors.New("project not found")
	ErrMissingMediaFields   = errors.New("type and url are required")
	ErrInvalidMediaType     = errors.New("type must be one of image, video, pdf, link")
	ErrMediaNotFound        = errors.New("media item not found")
	ErrEmptyOrder           = errors.New("ids must list the media in their new order")
)

func orderedMedia(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("created_at ASC")
}

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) ListPublic() ([]Project, error) {
	var projects []Project
	err := s.db.Preload("Media", orderedMedia).
		Where("status = ?", StatusPublic).
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (s *ProjectService) GetPublicBySlug(slug string) (*Project, error) {
	var project Project
	err := s.db.Preload("Media", orderedMedia).
		Where("slug = ? AND status = ?", slug, StatusPublic).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns every project regardless of status, without media.
func (s *ProjectService) List(status string) ([]Project, error) {
	var projects []Project
	q := s.db.Order("sort_order ASC").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&projects).Error
	return projects, err
}

func (s *ProjectService) Get(id uuid.UUID) (*Project, error) {
	var project Project
	err := s.db.Preload("Media", orderedMedia).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Create(req ProjectRequest) (*Project, error) {
	if req.Slug == nil || req.Title == nil || validate.Blank(*req.Slug, *req.Title) {
		return nil, ErrMissingProjectFields
	}

	project := Project{Status: StatusDraft}
	applyProjectRequest(&project, req)
	if project.Status == "" {
		project.Status = StatusDraft
	}

	if err := s.db.Omit("Media").Create(&project).Error; err != nil {
		return nil, err
	}
	project.Media = []ProjectMedia{}
	return &project, nil
}

func (s *ProjectService) Update(id uuid.UUID, req ProjectRequest) (*Project, error) {
	for _, f := range []*string{req.Slug, req.Title} {
		if f != nil && validate.Blank(*f) {
			return nil, ErrMissingProjectFields
		}
	}

	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	applyProjectRequest(project, req)

	if err := s.db.Omit("Media").Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project and its media in one transaction.
func (s *ProjectService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&ProjectMedia{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}

func applyProjectRequest(p *Project, req ProjectRequest) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&p.Title, req.Title)
	setString(&p.Slug, req.Slug)
	if req.Status != nil && !validate.Blank(*req.Status) {
		p.Status = strings.TrimSpace(*req.Status)
	}
	setString(&p.ClientName, req.ClientName)
	setString(&p.Industry, req.Industry)
	setString(&p.Summary, req.Summary)
	setString(&p.Problem, req.Problem)
	setString(&p.Solution, req.Solution)
	setString(&p.Outcomes, req.Outcomes)
	setString(&p.CoverURL, req.CoverURL)
	if req.Tags != nil {
		p.Tags = models.StringArray(*req.Tags)
	}
	if req.Highlights != nil {
		p.Highlights = models.StringArray(*req.Highlights)
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}
}

type MediaService struct {
	db *gorm.DB
}

func NewMediaService(db *gorm.DB) *MediaService {
	return &MediaService{db: db}
}

func (s *MediaService) projectExists(tx *gorm.DB, projectID uuid.UUID) error {
	var count int64
	if err := tx.Model(&Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (s *MediaService) List(projectID uuid.UUID) ([]ProjectMedia, error) {
	if err := s.projectExists(s.db, projectID); err != nil {
		return nil, err
	}
	var media []ProjectMedia
	err := orderedMedia(s.db).Where("project_id = ?", projectID).Find(&media).Error
	return media, err
}

// Create appends a media item to the project. Without an explicit sort_order it goes last.
func (s *MediaService) Create(projectID uuid.UUID, req MediaRequest) (*ProjectMedia, error) {
	if req.Type == nil || req.URL == nil || validate.Blank(*req.Type, *req.URL) {
		return nil, ErrMissingMediaFields
	}

	item := ProjectMedia{ProjectID: projectID}
	applyMediaRequest(&item, req)
	if !mediaTypes[item.Type] {
		return nil, ErrInvalidMediaType
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.projectExists(tx, projectID); err != nil {
			return err
		}
		if req.SortOrder == nil {
			var last struct{ Max *int }
			if err := tx.Model(&ProjectMedia{}).Select("MAX(sort_order) AS max").
				Where("project_id = ?", projectID).Scan(&last).Error; err != nil {
				return err
			}
			if last.Max != nil {
				item.SortOrder = *last.Max + 1
			}
		}
		if item.IsPrimary {
			if err := clearPrimary(tx, projectID); err != nil {
				return err
			}
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MediaService) Update(projectID, mediaID uuid.UUID, req MediaRequest) (*ProjectMedia, error) {
	for _, f := range []*string{req.Type, req.URL} {
		if f != nil && validate.Blank(*f) {
			return nil, ErrMissingMediaFields
		}
	}

	var item ProjectMedia
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findMedia(tx, projectID, mediaID, &item); err != nil {
			return err
		}
		applyMediaRequest(&item, req)
		if !mediaTypes[item.Type] {
			return ErrInvalidMediaType
		}
		if req.IsPrimary != nil && *req.IsPrimary {
			if err := clearPrimary(tx, projectID); err != nil {
				return err
			}
		}
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MediaService) Delete(projectID, mediaID uuid.UUID) error {
	result := s.db.Delete(&ProjectMedia{}, "id = ? AND project_id = ?", mediaID, projectID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

// SetPrimary clears is_primary on every media row of the project, then sets it on mediaID.
func (s *MediaService) SetPrimary(projectID, mediaID uuid.UUID) ([]ProjectMedia, error) {
	var media []ProjectMedia
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item ProjectMedia
		if err := findMedia(tx, projectID, mediaID, &item); err != nil {
			return err
		}
		if err := clearPrimary(tx, projectID); err != nil {
			return err
		}
		if err := tx.Model(&item).Update("is_primary", true).Error; err != nil {
			return err
		}
		return orderedMedia(tx).Where("project_id = ?", projectID).Find(&media).Error
	})
	if err != nil {
		return nil, err
	}
	return media, nil
}

// Reorder rewrites sort_order so that ids[i] gets position i. Every id must belong to the project.
func (s *MediaService) Reorder(projectID uuid.UUID, ids []uuid.UUID) ([]ProjectMedia, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyOrder
	}

	var media []ProjectMedia
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			result := tx.Model(&ProjectMedia{}).
				Where("id = ? AND project_id = ?", id, projectID).
				Update("sort_order", i)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrMediaNotFound
			}
		}
		return orderedMedia(tx).Where("project_id = ?", projectID).Find(&media).Error
	})
	if err != nil {
		return nil, err
	}
	return media, nil
}

func findMedia(tx *gorm.DB, projectID, mediaID uuid.UUID, out *ProjectMedia) error {
	err := tx.Where("id = ? AND project_id = ?", mediaID, projectID).First(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMediaNotFound
	}
	return err
}

func clearPrimary(tx *gorm.DB, projectID uuid.UUID) error {
	return tx.Model(&ProjectMedia{}).
		Where("project_id = ? AND is_primary = ?", projectID, true).
		Update("is_primary", false).Error
}

func applyMediaRequest(m *ProjectMedia, req MediaRequest) {
	if req.Type != nil {
		m.Type = strings.ToLower(strings.TrimSpace(*req.Type))
	}
	if req.URL != nil {
		m.URL = strings.TrimSpace(*req.URL)
	}
	if req.Title != nil {
		m.Title = strings.TrimSpace(*req.Title)
	}
	if req.Caption != nil {
		m.Caption = *req.Caption
	}
	if req.SortOrder != nil {
		m.SortOrder = *req.SortOrder
	}
	if req.IsPrimary != nil {
		m.IsPrimary = *req.IsPrimary
	}
}
