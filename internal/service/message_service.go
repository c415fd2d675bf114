package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/whisperlink/server/internal/models"
	"github.com/whisperlink/server/internal/namegen"
	"github.com/whisperlink/server/internal/repository"
)

const maxContentLength = 1000

type MessageService struct {
	messageRepo *repository.MessageRepository
	linkRepo    *repository.LinkRepository
	generator   *namegen.Generator
}

func NewMessageService(
	messageRepo *repository.MessageRepository,
	linkRepo *repository.LinkRepository,
	generator *namegen.Generator,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		linkRepo:    linkRepo,
		generator:   generator,
	}
}

// SendMessage validates the content, checks the target link exists and is
// still accepting messages, then persists the trimmed content under a fresh
// message ID and a throwaway anonymous sender name.
func (s *MessageService) SendMessage(linkID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	// Limit is in characters, not bytes
	if utf8.RuneCountInString(content) > maxContentLength {
		return nil, ErrContentTooLong
	}

	link, err := s.linkRepo.GetByLinkID(linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	if !link.IsActive {
		return nil, ErrLinkInactive
	}

	msg := &models.Message{
		MessageID:         uuid.New().String(),
		LinkID:            link.LinkID,
		Content:           content,
		AnonymousSenderID: s.generator.SenderName(),
		CreatedAt:         time.Now(),
	}

	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// ListMessages returns the link plus all its messages, newest first, after
// checking the owner key. A wrong key gets the same error whether or not
// the key exists elsewhere.
func (s *MessageService) ListMessages(linkID, key string) (*models.Link, []models.Message, error) {
	if key == "" {
		return nil, nil, ErrKeyRequired
	}

	link, err := s.linkRepo.GetByLinkID(linkID)
	if err != nil {
		return nil, nil, err
	}
	if link == nil {
		return nil, nil, ErrLinkNotFound
	}
	if link.UserKey != key {
		return nil, nil, ErrInvalidKey
	}

	messages, err := s.messageRepo.GetByLinkID(link.LinkID)
	if err != nil {
		return nil, nil, err
	}

	return link, messages, nil
}

// DeleteMessage hard-deletes a single message after checking the key
// against the owning link. A message whose link has vanished reports
// "associated link not found" rather than a generic miss.
func (s *MessageService) DeleteMessage(messageID, key string) error {
	if key == "" {
		return ErrKeyRequired
	}

	msg, err := s.messageRepo.GetByMessageID(messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrMessageNotFound
	}

	link, err := s.linkRepo.GetByLinkID(msg.LinkID)
	if err != nil {
		return err
	}
	if link == nil {
		return ErrAssociatedLinkNotFound
	}
	if link.UserKey != key {
		return ErrInvalidKey
	}

	return s.messageRepo.DeleteByMessageID(messageID)
}
