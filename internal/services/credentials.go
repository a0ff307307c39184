package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/peopleops/attrition/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultRole is assigned on self-service registration.
const DefaultRole = "employee"

// HashPassword returns the hex sha256 digest of the password bytes.
// No per-user salt: stored digests from existing deployments depend on
// this exact scheme, so changing it would lock every account out.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CredentialService owns the users table.
type CredentialService struct{ DB *gorm.DB }

func NewCredentialService(db *gorm.DB) *CredentialService { return &CredentialService{DB: db} }

// Register inserts a new user. Registering an existing username is a no-op:
// the stored digest and role are never overwritten.
func (s *CredentialService) Register(username, password, role string) error {
	u := models.User{Username: username, PasswordHash: HashPassword(password), Role: role}
	if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&u).Error; err != nil {
		return wrapStorage(err)
	}
	return nil
}

// Authenticate matches username and digest in a single lookup and returns the
// stored role. An unknown username and a wrong password are indistinguishable.
func (s *CredentialService) Authenticate(username, password string) (string, bool, error) {
	var u models.User
	err := s.DB.Where("username = ? AND password_hash = ?", username, HashPassword(password)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapStorage(err)
	}
	return u.Role, true, nil
}

// SetPassword overwrites the digest for an existing username.
func (s *CredentialService) SetPassword(username, newPassword string) error {
	res := s.DB.Model(&models.User{}).Where("username = ?", username).
		Update("password_hash", HashPassword(newPassword))
	if res.Error != nil {
		return wrapStorage(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether a username is registered.
func (s *CredentialService) Exists(username string) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", username).Limit(1).Count(&count).Error; err != nil {
		return false, wrapStorage(err)
	}
	return count > 0, nil
}

// List returns all users ordered by username. Digests are never serialized.
func (s *CredentialService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("username").Find(&users).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return users, nil
}
