package services

import (
	"github.com/peopleops/attrition/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResetService owns the password_reset_requests table.
type ResetService struct{ DB *gorm.DB }

func NewResetService(db *gorm.DB) *ResetService { return &ResetService{DB: db} }

// Enqueue records a pending reset request for an existing user. A second
// request before resolution is a no-op; an unknown username is ErrNotFound
// so the queue never references a nonexistent user.
func (s *ResetService) Enqueue(username string) error {
	exists, err := NewCredentialService(s.DB).Exists(username)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	req := models.ResetRequest{Username: username}
	if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&req).Error; err != nil {
		return wrapStorage(err)
	}
	return nil
}

// ListPending returns requests ordered by requested_at, ties broken by username.
func (s *ResetService) ListPending() ([]models.ResetRequest, error) {
	var reqs []models.ResetRequest
	if err := s.DB.Order("requested_at, username").Find(&reqs).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return reqs, nil
}

// Resolve sets the new password and dequeues the request in one transaction,
// so a crash can never leave the two steps half-applied. Resolving a username
// with no pending request is ErrNotFound, which makes a retry after a
// completed resolve harmless.
func (s *ResetService) Resolve(username, newPassword string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.ResetRequest{}, "username = ?", username)
		if res.Error != nil {
			return wrapStorage(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return NewCredentialService(tx).SetPassword(username, newPassword)
	})
}
