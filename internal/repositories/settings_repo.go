package repositories

import (
	"storefront/internal/models"
)

// SettingsRepository defines the interface for site settings data access.
type SettingsRepository interface {
	// GetCurrent returns the settings row, or the transient defaults when
	// none exists. The defaults are never persisted by a read.
	GetCurrent() (*models.SiteSettings, error)
	// Upsert writes both fields to the singleton row, inserting it if
	// missing, and returns the resulting row.
	Upsert(siteTitle, whatsappNumber string) (*models.SiteSettings, error)
}
