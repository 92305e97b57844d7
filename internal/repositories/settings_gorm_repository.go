package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/models"
)

// GORMSettingsRepository is a GORM implementation of SettingsRepository.
// The settings row lives under a fixed primary key, so the upsert is a
// single INSERT ... ON CONFLICT DO UPDATE and concurrent writers cannot
// create a second row or lose each other's write.
type GORMSettingsRepository struct {
	db *gorm.DB
}

// NewGORMSettingsRepository creates a new instance of GORMSettingsRepository.
func NewGORMSettingsRepository(db *gorm.DB) *GORMSettingsRepository {
	return &GORMSettingsRepository{
		db: db,
	}
}

// GetCurrent retrieves the settings row, falling back to the defaults when
// no row exists yet.
func (r *GORMSettingsRepository) GetCurrent() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings, "id = ?", models.SiteSettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultSiteSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return &settings, nil
}

// Upsert writes the settings row in one conditional statement.
func (r *GORMSettingsRepository) Upsert(siteTitle, whatsappNumber string) (*models.SiteSettings, error) {
	settings := models.SiteSettings{
		ID:             models.SiteSettingsRowID,
		SiteTitle:      siteTitle,
		WhatsappNumber: whatsappNumber,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"site_title", "whatsapp_number"}),
	}).Create(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert site settings: %w", err)
	}
	return &settings, nil
}
