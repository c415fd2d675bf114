package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whisperlink/server/internal/service"
	"github.com/whisperlink/server/pkg/logger"
	"go.uber.org/zap"
)

type LinkHandler struct {
	linkService *service.LinkService
}

func NewLinkHandler(linkService *service.LinkService) *LinkHandler {
	return &LinkHandler{
		linkService: linkService,
	}
}

type CreateLinkRequest struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// POST /api/links/create
func (h *LinkHandler) Create(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Create link request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	link, err := h.linkService.CreateLink(req.Key, req.Title, req.Description)
	if err != nil {
		respondServiceError(c, "create link", err)
		return
	}

	logger.Log.Info("Link created",
		zap.String("link_id", link.LinkID),
		zap.String("ip", c.ClientIP()),
	)

	c.JSON(http.StatusCreated, gin.H{
		"linkId":      link.LinkID,
		"sharePath":   SharePath(link.LinkID),
		"title":       link.Title,
		"description": link.Description,
		"isActive":    link.IsActive,
		"createdAt":   link.CreatedAt,
	})
}

// GET /api/links?key=...
func (h *LinkHandler) List(c *gin.Context) {
	key := c.Query("key")

	summaries, err := h.linkService.ListLinks(key)
	if err != nil {
		respondServiceError(c, "list links", err)
		return
	}

	links := make([]gin.H, 0, len(summaries))
	for _, s := range summaries {
		links = append(links, gin.H{
			"linkId":       s.Link.LinkID,
			"sharePath":    SharePath(s.Link.LinkID),
			"title":        s.Link.Title,
			"description":  s.Link.Description,
			"isActive":     s.Link.IsActive,
			"createdAt":    s.Link.CreatedAt,
			"messageCount": s.MessageCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"links": links,
		"total": len(links),
	})
}

// POST /api/links/:linkId/toggle-visibility?key=...
func (h *LinkHandler) ToggleVisibility(c *gin.Context) {
	linkID := c.Param("linkId")
	key := c.Query("key")

	link, err := h.linkService.ToggleVisibility(linkID, key)
	if err != nil {
		respondServiceError(c, "toggle visibility", err)
		return
	}

	logger.Log.Info("Link visibility toggled",
		zap.String("link_id", link.LinkID),
		zap.Bool("is_active", link.IsActive),
	)

	c.JSON(http.StatusOK, gin.H{
		"linkId":   link.LinkID,
		"isActive": link.IsActive,
	})
}

// GET /api/links/:linkId/info
func (h *LinkHandler) Info(c *gin.Context) {
	linkID := c.Param("linkId")

	link, err := h.linkService.GetLinkInfo(linkID)
	if err != nil {
		respondServiceError(c, "link info", err)
		return
	}

	c.JSON(http.StatusOK, linkInfo(link))
}
