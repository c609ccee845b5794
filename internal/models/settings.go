package models

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID uint = 1

// Settings is the application configuration. Exactly one row exists,
// identified by SettingsID; SettingsService upserts on that key.
type Settings struct {
	ID              uint   `gorm:"primaryKey"`
	CompanyName     string `gorm:"size:255"`
	CompanyPhone    string `gorm:"size:50"`
	CompanyAddress  string
	DefaultCurrency string  `gorm:"size:10;not null;default:'USD'"`
	Theme           string  `gorm:"size:20;not null;default:'dark'"`
	Language        string  `gorm:"size:10;not null;default:'en'"`
	MaxDiscount     float64 `gorm:"not null;default:0"` // percentage, 0-100
}

// DefaultSettings returns the documented defaults used both for seeding and
// as the defensive fallback when the row is somehow missing.
func DefaultSettings() Settings {
	return Settings{
		ID:              SettingsID,
		DefaultCurrency: "USD",
		Theme:           "dark",
		Language:        "en",
		MaxDiscount:     0,
	}
}
