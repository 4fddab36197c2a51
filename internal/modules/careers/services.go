package careers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/events"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/models"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/validate"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingJobFields   = errors.New("slug, title and status are required")
	ErrJobNotFound        = errors.New("job posting not found")
	ErrMissingApplicant   = errors.New("nombre and email are required")
	ErrInvalidEmail       = errors.New("email is not valid")
	ErrApplicationMissing = errors.New("application not found")
)

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// ListPublished returns what the careers page shows, newest first.
func (s *JobService) ListPublished() ([]JobPosting, error) {
	var jobs []JobPosting
	err := s.db.Where("status = ?", StatusPublished).
		Order("published_at DESC").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (s *JobService) GetPublishedBySlug(slug string) (*JobPosting, error) {
	var job JobPosting
	err := s.db.Where("slug = ? AND status = ?", slug, StatusPublished).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns postings in any status for the admin panel; status filters when non-empty.
func (s *JobService) List(status string) ([]JobPosting, error) {
	var jobs []JobPosting
	q := s.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&jobs).Error
	return jobs, err
}

func (s *JobService) Get(id uuid.UUID) (*JobPosting, error) {
	var job JobPosting
	err := s.db.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Create(req JobRequest) (*JobPosting, error) {
	if req.Slug == nil || req.Title == nil || req.Status == nil ||
		validate.Blank(*req.Slug, *req.Title, *req.Status) {
		return nil, ErrMissingJobFields
	}

	job := JobPosting{}
	applyJobRequest(&job, req)
	stampPublished(&job)

	if err := s.db.Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Update overwrites the fields present in req. Status changes are not validated
// against any lifecycle; the new value simply replaces the old one.
func (s *JobService) Update(id uuid.UUID, req JobRequest) (*JobPosting, error) {
	for _, f := range []*string{req.Slug, req.Title, req.Status} {
		if f != nil && validate.Blank(*f) {
			return nil, ErrMissingJobFields
		}
	}

	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	applyJobRequest(job, req)
	stampPublished(job)

	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&JobPosting{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func stampPublished(job *JobPosting) {
	if job.Status == StatusPublished && job.PublishedAt == nil {
		now := time.Now().UTC()
		job.PublishedAt = &now
	}
}

func applyJobRequest(job *JobPosting, req JobRequest) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&job.Title, req.Title)
	setString(&job.Slug, req.Slug)
	setString(&job.Status, req.Status)
	setString(&job.Department, req.Department)
	setString(&job.Location, req.Location)
	setString(&job.EmploymentType, req.EmploymentType)
	setString(&job.Seniority, req.Seniority)
	setString(&job.Summary, req.Summary)
	setString(&job.Description, req.Description)
	setString(&job.Responsibilities, req.Responsibilities)
	setString(&job.Requirements, req.Requirements)
	setString(&job.Benefits, req.Benefits)
	setString(&job.SalaryCurrency, req.SalaryCurrency)
	setString(&job.ApplyURL, req.ApplyURL)
	setString(&job.ExternalURL, req.ExternalURL)
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.Tags != nil {
		job.Tags = models.StringArray(*req.Tags)
	}
}

type ApplicationService struct {
	db        *gorm.DB
	publisher events.Publisher
	metrics   *metrics.Metrics
}

func NewApplicationService(db *gorm.DB, publisher events.Publisher, m *metrics.Metrics) *ApplicationService {
	return &ApplicationService{db: db, publisher: publisher, metrics: m}
}

// Submit stores a careers-page application and hands it to the event publisher.
// A publish failure is logged; the visitor still gets a success response.
func (s *ApplicationService) Submit(ctx context.Context, req ApplyRequest) (*JobApplication, error) {
	if validate.Blank(req.Nombre, req.Email) {
		return nil, ErrMissingApplicant
	}
	if !validate.Email(req.Email) {
		return nil, ErrInvalidEmail
	}

	slug := strings.TrimSpace(req.JobSlug)
	if slug == "" {
		slug = strings.TrimSpace(req.Puesto)
	}

	app := JobApplication{
		JobSlug:  slug,
		Nombre:   strings.TrimSpace(req.Nombre),
		Email:    strings.TrimSpace(req.Email),
		Telefono: strings.TrimSpace(req.Telefono),
		LinkedIn: strings.TrimSpace(req.LinkedIn),
		CVURL:    strings.TrimSpace(req.CVURL),
		Mensaje:  strings.TrimSpace(req.Mensaje),
	}
	if slug != "" {
		var job JobPosting
		if err := s.db.Select("id").Where("slug = ?", slug).First(&job).Error; err == nil {
			app.JobID = &job.ID
		}
	}

	if err := s.db.Create(&app).Error; err != nil {
		return nil, err
	}
	slog.Info("job application received", "application_id", app.ID, "job_slug", app.JobSlug, "email", app.Email)
	s.metrics.IncApplications()

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.New(events.TypeApplicationReceived, app.ID.String(), app)); err != nil {
			slog.Error("failed to publish job application", "application_id", app.ID, "error", err)
		}
	}
	return &app, nil
}

func (s *ApplicationService) List(jobSlug string) ([]JobApplication, error) {
	var apps []JobApplication
	q := s.db.Order("created_at DESC")
	if jobSlug != "" {
		q = q.Where("job_slug = ?", jobSlug)
	}
	err := q.Find(&apps).Error
	return apps, err
}

func (s *ApplicationService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&JobApplication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationMissing
	}
	return nil
}
