package handler_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/whisperlink/server/internal/handler"
	"github.com/whisperlink/server/internal/namegen"
	"github.com/whisperlink/server/internal/repository"
	"github.com/whisperlink/server/internal/service"
	"github.com/whisperlink/server/internal/testutil"
	"github.com/whisperlink/server/pkg/logger"
)

type HandlerIntegrationTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	router *gin.Engine
}

func (s *HandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	require.NoError(s.T(), logger.Init(false))

	s.testDB = testutil.SetupTestDatabase(s.T())

	linkRepo := repository.NewLinkRepository(s.testDB.DB)
	messageRepo := repository.NewMessageRepository(s.testDB.DB)
	generator := namegen.NewGeneratorWithSource(rand.NewSource(5))

	linkService := service.NewLinkService(linkRepo, messageRepo, generator)
	messageService := service.NewMessageService(messageRepo, linkRepo, generator)

	linkHandler := handler.NewLinkHandler(linkService)
	messageHandler := handler.NewMessageHandler(messageService)

	s.router = gin.New()
	api := s.router.Group("/api")
	{
		api.POST("/links/create", linkHandler.Create)
		api.GET("/links", linkHandler.List)
		api.POST("/links/:linkId/toggle-visibility", linkHandler.ToggleVisibility)
		api.GET("/links/:linkId/info", linkHandler.Info)

		api.POST("/messages/:linkId/send", messageHandler.Send)
		api.GET("/messages/:linkId", messageHandler.List)
		api.DELETE("/messages/:messageId", messageHandler.Delete)
	}
}

func (s *HandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *HandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

// do performs a JSON request against the test router
func (s *HandlerIntegrationTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		assert.NoError(s.T(), err)
		buf = bytes.NewBuffer(bodyBytes)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerIntegrationTestSuite) parse(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(s.T(), err)
	return response
}

// createLink creates a link via the API and returns its linkId
func (s *HandlerIntegrationTestSuite) createLink(key string) string {
	w := s.do(http.MethodPost, "/api/links/create", map[string]string{"key": key})
	assert.Equal(s.T(), http.StatusCreated, w.Code)
	return s.parse(w)["linkId"].(string)
}

func (s *HandlerIntegrationTestSuite) TestCreateLink() {
	w := s.do(http.MethodPost, "/api/links/create", map[string]string{
		"key":         "secret123",
		"title":       "My inbox",
		"description": "Tell me anything",
	})

	assert.Equal(s.T(), http.StatusCreated, w.Code)

	response := s.parse(w)
	linkID := response["linkId"].(string)
	assert.Regexp(s.T(), `^[a-z0-9]{8}$`, linkID)
	assert.Equal(s.T(), "/link/"+linkID, response["sharePath"])
	assert.Equal(s.T(), "My inbox", response["title"])
	assert.Equal(s.T(), "Tell me anything", response["description"])
	assert.Equal(s.T(), true, response["isActive"])
	assert.NotEmpty(s.T(), response["createdAt"])
}

func (s *HandlerIntegrationTestSuite) TestCreateLinkKeyTooShort() {
	w := s.do(http.MethodPost, "/api/links/create", map[string]string{"key": "short"})

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Contains(s.T(), w.Body.String(), "at least 6 characters")
}

func (s *HandlerIntegrationTestSuite) TestCreateLinkMalformedBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/links/create", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Contains(s.T(), w.Body.String(), "Invalid request body")
}

func (s *HandlerIntegrationTestSuite) TestPublicInfoRoundTrip() {
	linkID := s.createLink("secret123")

	w := s.do(http.MethodGet, "/api/links/"+linkID+"/info", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	response := s.parse(w)
	assert.Equal(s.T(), linkID, response["linkId"])
	assert.Equal(s.T(), true, response["isActive"])
	assert.NotEmpty(s.T(), response["title"])
	assert.NotEmpty(s.T(), response["createdAt"])

	// Never expose the owner key
	assert.NotContains(s.T(), w.Body.String(), "secret123")
	assert.NotContains(s.T(), strings.ToLower(w.Body.String()), "userkey")
}

func (s *HandlerIntegrationTestSuite) TestPublicInfoNotFound() {
	w := s.do(http.MethodGet, "/api/links/nosuchid/info", nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *HandlerIntegrationTestSuite) TestSendAndFetchMessageFlow() {
	linkID := s.createLink("secret123")

	// Send an anonymous message
	w := s.do(http.MethodPost, "/api/messages/"+linkID+"/send", map[string]string{"content": "hello"})
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	sent := s.parse(w)
	assert.NotEmpty(s.T(), sent["messageId"])
	assert.Regexp(s.T(),
		regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+[1-9][0-9]{0,2}$`),
		sent["anonymousSenderId"],
	)
	assert.NotEmpty(s.T(), sent["timestamp"])

	// Owner fetches with the right key
	w = s.do(http.MethodGet, "/api/messages/"+linkID+"?key=secret123", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	response := s.parse(w)
	assert.Equal(s.T(), float64(1), response["total"])

	messages := response["messages"].([]interface{})
	first := messages[0].(map[string]interface{})
	assert.Equal(s.T(), "hello", first["content"])

	linkInfo := response["linkInfo"].(map[string]interface{})
	assert.Equal(s.T(), linkID, linkInfo["linkId"])
	assert.Equal(s.T(), "/link/"+linkID, linkInfo["sharePath"])

	// The stored key never appears in the payload
	assert.NotContains(s.T(), w.Body.String(), "secret123")
	assert.NotContains(s.T(), strings.ToLower(w.Body.String()), "userkey")

	// Wrong key → unauthorized, no message data
	w = s.do(http.MethodGet, "/api/messages/"+linkID+"?key=wrong", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.NotContains(s.T(), w.Body.String(), "hello")
}

func (s *HandlerIntegrationTestSuite) TestFetchMessagesMissingKey() {
	linkID := s.createLink("secret123")

	w := s.do(http.MethodGet, "/api/messages/"+linkID, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *HandlerIntegrationTestSuite) TestSendMessageToMissingLink() {
	w := s.do(http.MethodPost, "/api/messages/nosuchid/send", map[string]string{"content": "hello"})
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *HandlerIntegrationTestSuite) TestSendMessageToInactiveLink() {
	linkID := s.createLink("secret123")

	w := s.do(http.MethodPost, "/api/links/"+linkID+"/toggle-visibility?key=secret123", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), false, s.parse(w)["isActive"])

	w = s.do(http.MethodPost, "/api/messages/"+linkID+"/send", map[string]string{"content": "hello"})
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
	assert.Contains(s.T(), w.Body.String(), "no longer accepting messages")
}

func (s *HandlerIntegrationTestSuite) TestSendMessageContentValidation() {
	linkID := s.createLink("secret123")

	// All-whitespace content rejected
	w := s.do(http.MethodPost, "/api/messages/"+linkID+"/send", map[string]string{"content": "   "})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	// 1001 characters rejected
	w = s.do(http.MethodPost, "/api/messages/"+linkID+"/send", map[string]string{
		"content": strings.Repeat("a", 1001),
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	// 1000 characters accepted
	w = s.do(http.MethodPost, "/api/messages/"+linkID+"/send", map[string]string{
		"content": strings.Repeat("a", 1000),
	})
	assert.Equal(s.T(), http.StatusCreated, w.Code)
}

func (s *HandlerIntegrationTestSuite) TestListLinks() {
	first := s.createLink("secret123")
	second := s.createLink("secret123")
	s.createLink("otherkey99")

	w := s.do(http.MethodPost, "/api/messages/"+first+"/send", map[string]string{"content": "one"})
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/links?key=secret123", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	response := s.parse(w)
	assert.Equal(s.T(), float64(2), response["total"])

	links := response["links"].([]interface{})
	ids := make(map[string]float64)
	for _, raw := range links {
		link := raw.(map[string]interface{})
		ids[link["linkId"].(string)] = link["messageCount"].(float64)
		assert.Equal(s.T(), "/link/"+link["linkId"].(string), link["sharePath"])
	}
	assert.Equal(s.T(), float64(1), ids[first])
	assert.Equal(s.T(), float64(0), ids[second])

	assert.NotContains(s.T(), w.Body.String(), "secret123")
	assert.NotContains(s.T(), strings.ToLower(w.Body.String()), "userkey")
}

func (s *HandlerIntegrationTestSuite) TestListLinksMissingKey() {
	w := s.do(http.MethodGet, "/api/links", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *HandlerIntegrationTestSuite) TestDeleteMessageFlow() {
	linkID := s.createLink("secret123")

	w := s.do(http.MethodPost, "/api/messages/"+linkID+"/send", map[string]string{"content": "delete me"})
	assert.Equal(s.T(), http.StatusCreated, w.Code)
	messageID := s.parse(w)["messageId"].(string)

	// Wrong key cannot delete
	w = s.do(http.MethodDelete, "/api/messages/"+messageID+"?key=wrong", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	// Right key deletes
	w = s.do(http.MethodDelete, "/api/messages/"+messageID+"?key=secret123", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	// Message is gone from the listing
	w = s.do(http.MethodGet, "/api/messages/"+linkID+"?key=secret123", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), float64(0), s.parse(w)["total"])

	// Deleting again → not found
	w = s.do(http.MethodDelete, "/api/messages/"+messageID+"?key=secret123", nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *HandlerIntegrationTestSuite) TestDeleteMessageOrphanedLink() {
	orphan := testutil.CreateTestMessage("ghostlink", "orphaned")
	s.testDB.DB.Create(orphan)

	w := s.do(http.MethodDelete, "/api/messages/"+orphan.MessageID+"?key=secret123", nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Contains(s.T(), w.Body.String(), "associated link not found")
}

func (s *HandlerIntegrationTestSuite) TestToggleVisibilityWrongKey() {
	linkID := s.createLink("secret123")

	w := s.do(http.MethodPost, "/api/links/"+linkID+"/toggle-visibility?key=wrong", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	// Still active
	w = s.do(http.MethodGet, "/api/links/"+linkID+"/info", nil)
	assert.Equal(s.T(), true, s.parse(w)["isActive"])
}

func (s *HandlerIntegrationTestSuite) TestToggleVisibilityNotFound() {
	w := s.do(http.MethodPost, "/api/links/nosuchid/toggle-visibility?key=secret123", nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func TestHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerIntegrationTestSuite))
}
