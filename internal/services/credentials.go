package services

import (
	"errors"

	"github.com/nouralabs/accounting/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CredentialService verifies admin logins. Rows are seeded by the migration
// step; this service never creates credentials on its own.
type CredentialService struct{ DB *gorm.DB }

func NewCredentialService(db *gorm.DB) *CredentialService { return &CredentialService{DB: db} }

// Authenticate checks the username/password/license triple against the
// stored bcrypt hash. Only an active row with all three matching succeeds;
// every failure path reports false without detail.
func (s *CredentialService) Authenticate(username, password, licenseKey string) (bool, error) {
	var user models.AdminUser
	err := s.DB.Where("username = ? AND license_key = ? AND active = ?", username, licenseKey, true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return false, nil
	}
	return true, nil
}

// SetPassword replaces an admin's password hash. Not reachable from the
// current UI, kept for the CLI and future password-change flows.
func (s *CredentialService) SetPassword(username, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	res := s.DB.Model(&models.AdminUser{}).Where("username = ?", username).
		Update("password_hash", string(hash))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
