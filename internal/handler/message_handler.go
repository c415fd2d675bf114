package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whisperlink/server/internal/models"
	"github.com/whisperlink/server/internal/service"
	"github.com/whisperlink/server/pkg/logger"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

// POST /api/messages/:linkId/send
func (h *MessageHandler) Send(c *gin.Context) {
	linkID := c.Param("linkId")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Send message request parsing failed",
			zap.String("link_id", linkID),
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	msg, err := h.messageService.SendMessage(linkID, req.Content)
	if err != nil {
		respondServiceError(c, "send message", err)
		return
	}

	logger.Log.Info("Message sent",
		zap.String("link_id", linkID),
		zap.String("message_id", msg.MessageID),
	)

	c.JSON(http.StatusCreated, gin.H{
		"messageId":         msg.MessageID,
		"anonymousSenderId": msg.AnonymousSenderID,
		"timestamp":         msg.CreatedAt,
	})
}

// GET /api/messages/:linkId?key=...
func (h *MessageHandler) List(c *gin.Context) {
	linkID := c.Param("linkId")
	key := c.Query("key")

	link, messages, err := h.messageService.ListMessages(linkID, key)
	if err != nil {
		respondServiceError(c, "list messages", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"linkInfo": linkInfo(link),
		"messages": messageList(messages),
		"total":    len(messages),
	})
}

// DELETE /api/messages/:messageId?key=...
func (h *MessageHandler) Delete(c *gin.Context) {
	messageID := c.Param("messageId")
	key := c.Query("key")

	if err := h.messageService.DeleteMessage(messageID, key); err != nil {
		respondServiceError(c, "delete message", err)
		return
	}

	logger.Log.Info("Message deleted",
		zap.String("message_id", messageID),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Message deleted successfully",
	})
}

func messageList(messages []models.Message) []gin.H {
	result := make([]gin.H, 0, len(messages))
	for _, msg := range messages {
		result = append(result, gin.H{
			"messageId":         msg.MessageID,
			"content":           msg.Content,
			"anonymousSenderId": msg.AnonymousSenderID,
			"timestamp":         msg.CreatedAt,
		})
	}
	return result
}
