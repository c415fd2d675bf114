package service

import "errors"

var (
	ErrKeyTooShort            = errors.New("key must be at least 6 characters long")
	ErrKeyRequired            = errors.New("key is required")
	ErrInvalidKey             = errors.New("invalid key")
	ErrLinkNotFound           = errors.New("link not found")
	ErrLinkInactive           = errors.New("this link is no longer accepting messages")
	ErrEmptyContent           = errors.New("message content is required")
	ErrContentTooLong         = errors.New("message content must be at most 1000 characters")
	ErrMessageNotFound        = errors.New("message not found")
	ErrAssociatedLinkNotFound = errors.New("associated link not found")
)
