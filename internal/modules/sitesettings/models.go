package sitesettings

import "time"

// SingletonID is the primary key of the only settings row.
const SingletonID = 1

// SiteSettings holds the feature toggles public pages read to decide which
// navigation entries and sections to render.
type SiteSettings struct {
	ID                      int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ShowPortfolioInHeader   bool      `gorm:"not null" json:"show_portfolio_in_header"`
	ShowPortfolioInServices bool      `gorm:"not null" json:"show_portfolio_in_services"`
	ShowCareersInHeader     bool      `gorm:"not null" json:"show_careers_in_header"`
	ShowTeamInAbout         bool      `gorm:"not null" json:"show_team_in_about"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string { return "site_settings" }

// Defaults is what the site renders before anyone has saved settings.
func Defaults() SiteSettings {
	return SiteSettings{
		ID:                      SingletonID,
		ShowPortfolioInHeader:   true,
		ShowPortfolioInServices: true,
		ShowCareersInHeader:     true,
		ShowTeamInAbout:         true,
	}
}

// UpdateRequest changes only the toggles that are present.
type UpdateRequest struct {
	ShowPortfolioInHeader   *bool `json:"show_portfolio_in_header"`
	ShowPortfolioInServices *bool `json:"show_portfolio_in_services"`
	ShowCareersInHeader     *bool `json:"show_careers_in_header"`
	ShowTeamInAbout         *bool `json:"show_team_in_about"`
}
