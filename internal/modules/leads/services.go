package leads

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/events"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/validate"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrMissingContactFields = errors.New("nombre, email, asunto and mensaje are required")
	ErrInvalidEmail         = errors.New("email is not valid")
	ErrMissingStatus        = errors.New("status is required")
	ErrLeadNotFound         = errors.New("contact submission not found")
)

const sourceContactForm = "contact-form"

type LeadService struct {
	db        *gorm.DB
	publisher events.Publisher
	metrics   *metrics.Metrics
}

func NewLeadService(db *gorm.DB, publisher events.Publisher, m *metrics.Metrics) *LeadService {
	return &LeadService{db: db, publisher: publisher, metrics: m}
}

// Submit validates a contact form entry, stores it as a pending lead and publishes
// lead.created. When publishing fails the lead stays stored with status "error"
// and the failure recorded on the row.
func (s *LeadService) Submit(ctx context.Context, req ContactRequest) (*ContactSubmission, error) {
	if validate.Blank(req.Nombre, req.Email, req.Asunto, req.Mensaje) {
		return nil, ErrMissingContactFields
	}
	if !validate.Email(req.Email) {
		return nil, ErrInvalidEmail
	}

	lead := ContactSubmission{
		Nombre:   strings.TrimSpace(req.Nombre),
		Email:    strings.TrimSpace(req.Email),
		Telefono: strings.TrimSpace(req.Telefono),
		Empresa:  strings.TrimSpace(req.Empresa),
		Asunto:   strings.TrimSpace(req.Asunto),
		Mensaje:  strings.TrimSpace(req.Mensaje),
		Servicio: strings.TrimSpace(req.Servicio),
		Status:   StatusPending,
		Source:   sourceContactForm,
	}
	if err := s.db.Create(&lead).Error; err != nil {
		return nil, err
	}
	slog.Info("contact form submitted",
		"lead_id", lead.ID,
		"email", lead.Email,
		"asunto", lead.Asunto,
		"servicio", lead.Servicio,
	)
	s.metrics.IncLeadsCreated()

	if err := s.publish(ctx, events.TypeLeadCreated, lead.ID, lead); err != nil {
		slog.Error("failed to publish lead", "lead_id", lead.ID, "error", err)
		if markErr := s.markDeliveryError(&lead, events.TypeLeadCreated, err); markErr != nil {
			slog.Error("failed to record lead delivery error", "lead_id", lead.ID, "error", markErr)
		}
	}
	return &lead, nil
}

func (s *LeadService) publish(ctx context.Context, eventType string, id uuid.UUID, payload interface{}) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.Publish(ctx, events.New(eventType, id.String(), payload))
}

func (s *LeadService) markDeliveryError(lead *ContactSubmission, eventType string, cause error) error {
	details, err := json.Marshal(map[string]interface{}{
		"event":     eventType,
		"error":     cause.Error(),
		"failed_at": time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	lead.Status = StatusError
	lead.ErrorMessage = "delivery failed: " + cause.Error()
	lead.ErrorDetails = datatypes.JSON(details)
	return s.db.Model(lead).Updates(map[string]interface{}{
		"status":        lead.Status,
		"error_message": lead.ErrorMessage,
		"error_details": lead.ErrorDetails,
	}).Error
}

// List returns leads newest first; status filters on the exact stored value.
func (s *LeadService) List(status string) ([]ContactSubmission, error) {
	var leads []ContactSubmission
	q := s.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&leads).Error
	return leads, err
}

func (s *LeadService) Get(id uuid.UUID) (*ContactSubmission, error) {
	var lead ContactSubmission
	err := s.db.First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// UpdateStatus stores status exactly as given. Any non-blank label is accepted.
func (s *LeadService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ContactSubmission, error) {
	if validate.Blank(status) {
		return nil, ErrMissingStatus
	}

	lead, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	from := lead.Status
	if err := s.db.Model(lead).Update("status", status).Error; err != nil {
		return nil, err
	}
	lead.Status = status

	s.metrics.IncLeadStatus(BucketFor(status))
	if err := s.publish(ctx, events.TypeLeadStatusChanged, lead.ID, statusChange{ID: lead.ID, From: from, To: status}); err != nil {
		slog.Error("failed to publish lead status change", "lead_id", lead.ID, "error", err)
	}
	return lead, nil
}

// MoveToBucket is the board's drop action: the lead takes the column's canonical status.
func (s *LeadService) MoveToBucket(ctx context.Context, id uuid.UUID, bucket string) (*ContactSubmission, error) {
	lead, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	moved, err := Move(*lead, bucket)
	if err != nil {
		return nil, err
	}
	return s.UpdateStatus(ctx, id, moved.Status)
}

func (s *LeadService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&ContactSubmission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLeadNotFound
	}
	return nil
}

func (s *LeadService) Board() ([]Column, error) {
	leads, err := s.List("")
	if err != nil {
		return nil, err
	}
	return Group(leads), nil
}
