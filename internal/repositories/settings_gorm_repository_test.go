package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

func TestGORMSettingsRepository_GetCurrentReturnsDefaultsWithoutPersisting(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMSettingsRepository(db)

	settings, err := repo.GetCurrent()

	assert.NoError(t, err)
	assert.Equal(t, models.DefaultSiteTitle, settings.SiteTitle)
	assert.Equal(t, models.DefaultWhatsappNumber, settings.WhatsappNumber)
	assert.Zero(t, settings.ID)

	// The defaults are transient: reading must not create a row.
	var count int64
	assert.NoError(t, db.Model(&models.SiteSettings{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestGORMSettingsRepository_UpsertCreatesThenUpdatesSingleRow(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMSettingsRepository(db)

	created, err := repo.Upsert("X", models.DefaultWhatsappNumber)
	assert.NoError(t, err)
	assert.Equal(t, models.SiteSettingsRowID, created.ID)
	assert.Equal(t, "X", created.SiteTitle)
	assert.Equal(t, models.DefaultWhatsappNumber, created.WhatsappNumber)

	updated, err := repo.Upsert(models.DefaultSiteTitle, "Y")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Y", updated.WhatsappNumber)

	// Still exactly one row after the second upsert.
	var count int64
	assert.NoError(t, db.Model(&models.SiteSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	current, err := repo.GetCurrent()
	assert.NoError(t, err)
	assert.Equal(t, updated.ID, current.ID)
	assert.Equal(t, "Y", current.WhatsappNumber)
}
