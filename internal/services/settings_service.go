package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// SettingsService handles business logic for the site settings record.
type SettingsService struct {
	repo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// GetSettings returns the current settings, or the transient defaults when
// none have been saved yet.
func (s *SettingsService) GetSettings() (*models.SiteSettings, error) {
	return s.repo.GetCurrent()
}

// UpdateSettings upserts the settings record. Empty fields are replaced
// with the defaults, so the stored row always carries both values.
func (s *SettingsService) UpdateSettings(input models.SettingsUpdate) (*models.SiteSettings, error) {
	siteTitle := input.SiteTitle
	if siteTitle == "" {
		siteTitle = models.DefaultSiteTitle
	}
	whatsappNumber := input.WhatsappNumber
	if whatsappNumber == "" {
		whatsappNumber = models.DefaultWhatsappNumber
	}
	return s.repo.Upsert(siteTitle, whatsappNumber)
}
