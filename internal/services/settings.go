package services

import (
	"errors"

	"github.com/nouralabs/accounting/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsService guards the singleton configuration row. Callers load it
// once at startup and pass the struct around; Save persists edits.
type SettingsService struct{ DB *gorm.DB }

func NewSettingsService(db *gorm.DB) *SettingsService { return &SettingsService{DB: db} }

// Get returns the one settings row. If the row is missing (it should not be
// after migration) the documented defaults are returned without writing.
func (s *SettingsService) Get() (models.Settings, error) {
	var out models.Settings
	err := s.DB.First(&out, models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return out, nil
}

// Save upserts the singleton on its fixed key, leaving exactly one row.
func (s *SettingsService) Save(in models.Settings) error {
	in.ID = models.SettingsID
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&in).Error
}
