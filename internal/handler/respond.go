package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whisperlink/server/internal/models"
	"github.com/whisperlink/server/internal/service"
	"github.com/whisperlink/server/pkg/logger"
	"go.uber.org/zap"
)

// SharePath is the public path pointing recipients to a link's
// message-submission form.
func SharePath(linkID string) string {
	return "/link/" + linkID
}

// linkInfo is the non-secret metadata block shared by the public info
// endpoint and the owner's message listing. UserKey must never appear here.
func linkInfo(link *models.Link) gin.H {
	return gin.H{
		"linkId":      link.LinkID,
		"title":       link.Title,
		"description": link.Description,
		"isActive":    link.IsActive,
		"sharePath":   SharePath(link.LinkID),
		"createdAt":   link.CreatedAt,
	}
}

// respondServiceError maps service sentinel errors to HTTP status codes.
// Anything unmatched is an internal error: logged in full, returned opaque.
func respondServiceError(c *gin.Context, op string, err error) {
	var status int

	switch {
	case errors.Is(err, service.ErrKeyTooShort),
		errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrContentTooLong):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrKeyRequired),
		errors.Is(err, service.ErrInvalidKey):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrLinkInactive):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrLinkNotFound),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, service.ErrAssociatedLinkNotFound):
		status = http.StatusNotFound
	default:
		logger.Log.Error("Unexpected error",
			zap.String("op", op),
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Something went wrong",
		})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
