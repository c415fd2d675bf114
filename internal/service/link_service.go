package service

import (
	"time"

	"github.com/whisperlink/server/internal/models"
	"github.com/whisperlink/server/internal/namegen"
	"github.com/whisperlink/server/internal/repository"
)

const minKeyLength = 6

// LinkSummary is a link annotated with its message count, as returned by
// the owner's link listing.
type LinkSummary struct {
	Link         models.Link
	MessageCount int64
}

type LinkService struct {
	linkRepo    *repository.LinkRepository
	messageRepo *repository.MessageRepository
	generator   *namegen.Generator
}

func NewLinkService(
	linkRepo *repository.LinkRepository,
	messageRepo *repository.MessageRepository,
	generator *namegen.Generator,
) *LinkService {
	return &LinkService{
		linkRepo:    linkRepo,
		messageRepo: messageRepo,
		generator:   generator,
	}
}

// CreateLink validates the key, fills placeholder metadata and persists a
// new active link. Link IDs get no collision retry; the unique index on
// link_id would surface a duplicate as a store error.
func (s *LinkService) CreateLink(key, title, description string) (*models.Link, error) {
	if len(key) < minKeyLength {
		return nil, ErrKeyTooShort
	}

	if title == "" {
		title = models.DefaultTitle
	}
	if description == "" {
		description = models.DefaultDescription
	}

	link := &models.Link{
		LinkID:      s.generator.LinkID(),
		UserKey:     key,
		Title:       title,
		Description: description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := s.linkRepo.Create(link); err != nil {
		return nil, err
	}

	return link, nil
}

// GetLinkInfo returns the link's public metadata. No key needed.
func (s *LinkService) GetLinkInfo(linkID string) (*models.Link, error) {
	link, err := s.linkRepo.GetByLinkID(linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

// ListLinks returns every link owned by the exact key, newest first, each
// annotated with its message count. An unknown key yields an empty list,
// not an error.
func (s *LinkService) ListLinks(key string) ([]LinkSummary, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	links, err := s.linkRepo.GetByUserKey(key)
	if err != nil {
		return nil, err
	}

	summaries := make([]LinkSummary, 0, len(links))
	for _, link := range links {
		count, err := s.messageRepo.CountByLinkID(link.LinkID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, LinkSummary{Link: link, MessageCount: count})
	}

	return summaries, nil
}

// ToggleVisibility flips IsActive unconditionally and returns the updated
// link. The read-then-write is not transactional: two concurrent toggles
// race and the last write wins.
func (s *LinkService) ToggleVisibility(linkID, key string) (*models.Link, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	link, err := s.linkRepo.GetByLinkID(linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	if link.UserKey != key {
		return nil, ErrInvalidKey
	}

	link.IsActive = !link.IsActive
	if err := s.linkRepo.UpdateIsActive(link); err != nil {
		return nil, err
	}

	return link, nil
}
