package repositories

import (
	"sync"

	"storefront/internal/models"
)

// MockSettingsRepository is an in-memory implementation of SettingsRepository.
type MockSettingsRepository struct {
	settings *models.SiteSettings
	mu       sync.RWMutex
}

// NewMockSettingsRepository creates a new instance of MockSettingsRepository.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

// GetCurrent returns the stored settings, or the defaults when nothing has
// been written yet.
func (r *MockSettingsRepository) GetCurrent() (*models.SiteSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		defaults := models.DefaultSiteSettings()
		return &defaults, nil
	}
	settings := *r.settings
	return &settings, nil
}

// Upsert stores both fields on the singleton record.
func (r *MockSettingsRepository) Upsert(siteTitle, whatsappNumber string) (*models.SiteSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = &models.SiteSettings{
		ID:             models.SiteSettingsRowID,
		SiteTitle:      siteTitle,
		WhatsappNumber: whatsappNumber,
	}
	settings := *r.settings
	return &settings, nil
}
