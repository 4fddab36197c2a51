package sitesettings

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the settings row, or the defaults when it has never been saved.
func (s *Service) Get() (*SiteSettings, error) {
	var settings SiteSettings
	err := s.db.First(&settings, SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		d := Defaults()
		return &d, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update applies the present toggles and upserts the singleton row.
func (s *Service) Update(req UpdateRequest) (*SiteSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	if req.ShowPortfolioInHeader != nil {
		settings.ShowPortfolioInHeader = *req.ShowPortfolioInHeader
	}
	if req.ShowPortfolioInServices != nil {
		settings.ShowPortfolioInServices = *req.ShowPortfolioInServices
	}
	if req.ShowCareersInHeader != nil {
		settings.ShowCareersInHeader = *req.ShowCareersInHeader
	}
	if req.ShowTeamInAbout != nil {
		settings.ShowTeamInAbout = *req.ShowTeamInAbout
	}
	settings.ID = SingletonID

	if err := s.save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Seed writes the defaults unless a row already exists.
func (s *Service) Seed() (*SiteSettings, error) {
	d := Defaults()
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&d).Error; err != nil {
		return nil, err
	}
	return s.Get()
}

func (s *Service) save(settings *SiteSettings) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
