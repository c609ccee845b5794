package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nouralabs/accounting/internal/db"
	"github.com/nouralabs/accounting/internal/models"
)

func TestAuthenticateSeededAdmin(t *testing.T) {
	gdb := setupTestDB(t)
	creds := NewCredentialService(gdb)

	ok, err := creds.Authenticate(db.DefaultAdminUsername, db.DefaultAdminPassword, db.DefaultAdminLicense)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthenticateRejectsPartialMatches(t *testing.T) {
	gdb := setupTestDB(t)
	creds := NewCredentialService(gdb)

	cases := []struct {
		name, username, password, license string
	}{
		{"wrong password", db.DefaultAdminUsername, "nope", db.DefaultAdminLicense},
		{"wrong license", db.DefaultAdminUsername, db.DefaultAdminPassword, "WRONG-KEY"},
		{"unknown user", "root", db.DefaultAdminPassword, db.DefaultAdminLicense},
		{"all wrong", "root", "nope", "WRONG-KEY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := creds.Authenticate(tc.username, tc.password, tc.license)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestAuthenticateRejectsInactiveAdmin(t *testing.T) {
	gdb := setupTestDB(t)
	creds := NewCredentialService(gdb)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, gdb.Create(&models.AdminUser{
		Username: "retired", PasswordHash: string(hash), LicenseKey: "KEY-2", Active: false,
	}).Error)

	ok, err := creds.Authenticate("retired", "s3cret", "KEY-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetPassword(t *testing.T) {
	gdb := setupTestDB(t)
	creds := NewCredentialService(gdb)

	require.NoError(t, creds.SetPassword(db.DefaultAdminUsername, "newpass"))

	ok, err := creds.Authenticate(db.DefaultAdminUsername, db.DefaultAdminPassword, db.DefaultAdminLicense)
	require.NoError(t, err)
	assert.False(t, ok, "old password no longer valid")

	ok, err = creds.Authenticate(db.DefaultAdminUsername, "newpass", db.DefaultAdminLicense)
	require.NoError(t, err)
	assert.True(t, ok)

	require.ErrorIs(t, creds.SetPassword("nobody", "x"), gorm.ErrRecordNotFound)
}
