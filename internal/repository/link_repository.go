package repository

import (
	"errors"

	"github.com/whisperlink/server/internal/models"
	"gorm.io/gorm"
)

type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(link *models.Link) error {
	return r.db.Create(link).Error
}

// GetByLinkID retrieves a link by its public identifier.
// Returns (nil, nil) when no link exists.
func (r *LinkRepository) GetByLinkID(linkID string) (*models.Link, error) {
	var link models.Link
	err := r.db.Where("link_id = ?", linkID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// GetByUserKey retrieves all links owned by the given key, newest first.
func (r *LinkRepository) GetByUserKey(userKey string) ([]models.Link, error) {
	var links []models.Link
	err := r.db.
		Where("user_key = ?", userKey).
		Order("created_at DESC").
		Find(&links).Error

	return links, err
}

// UpdateIsActive persists the current IsActive value of the link.
// Plain read-then-write; concurrent toggles race, last write wins.
func (r *LinkRepository) UpdateIsActive(link *models.Link) error {
	return r.db.Model(&models.Link{}).
		Where("link_id = ?", link.LinkID).
		Update("is_active", link.IsActive).Error
}
