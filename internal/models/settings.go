package models

// Defaults served when no settings row exists and substituted for empty
// fields on update.
const (
	DefaultSiteTitle      = "Digital Services Store"
	DefaultWhatsappNumber = "+2348020674070"
)

// SiteSettingsRowID is the fixed primary key of the single settings row.
// Keeping the key constant lets the upsert be one conditional write instead
// of a read-then-write against "the newest row".
const SiteSettingsRowID uint = 1

// SiteSettings is the site configuration record. At most one row exists.
type SiteSettings struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	SiteTitle      string `json:"site_title" gorm:"not null"`
	WhatsappNumber string `json:"whatsapp_number" gorm:"not null"`
}

// SettingsUpdate is the payload for updating the site settings. Empty fields
// fall back to the defaults.
type SettingsUpdate struct {
	SiteTitle      string `json:"site_title"`
	WhatsappNumber string `json:"whatsapp_number"`
}

// DefaultSiteSettings returns the transient default record. Its ID is zero:
// it has not been persisted.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteTitle:      DefaultSiteTitle,
		WhatsappNumber: DefaultWhatsappNumber,
	}
}
