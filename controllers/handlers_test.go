package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dev-discuss/environment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the validation paths under test never reach a store or the AI provider,
// so an empty registry is sufficient
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	environment.Env = &environment.Environment{}

	r := gin.New()
	r.GET("/questions/:id", GetQuestion)
	r.POST("/questions/comments/:id", AddComment)
	r.POST("/questions/:id/like", ToggleLike)
	r.DELETE("/userQuestions/:id", DeleteUserQuestion)
	r.POST("/chat", Chat)
	r.POST("/fixFlow", FixFlow)
	r.GET("/saves", ListSaves)
	r.GET("/users/points-breakdown", GetPointsBreakdown)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method string, path string, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestAddCommentRejectsMalformedID(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/questions/comments/not-a-hex-id", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid question ID format", body["error"])
}

func TestAddCommentRejectsMissingFields(t *testing.T) {
	r := newTestRouter()

	id := strings.Repeat("a", 24)
	w, body := doJSON(t, r, http.MethodPost, "/questions/comments/"+id, `{"text":"","author":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Comment text and author name are required", body["error"])
}

func TestAddCommentRequiresEmail(t *testing.T) {
	r := newTestRouter()

	id := strings.Repeat("a", 24)
	w, body := doJSON(t, r, http.MethodPost, "/questions/comments/"+id, `{"text":"nice answer","author":"Ann"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required", body["error"])
}

func TestToggleLikeRequiresEmail(t *testing.T) {
	r := newTestRouter()

	id := strings.Repeat("a", 24)
	w, body := doJSON(t, r, http.MethodPost, "/questions/"+id+"/like", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required", body["error"])
}

func TestToggleLikeRejectsMalformedID(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/questions/xyz/like", `{"email":"ann@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid question ID format", body["error"])
}

func TestGetQuestionRejectsMalformedID(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/questions/short", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid question ID format", body["error"])
}

func TestDeleteUserQuestionRequiresEmail(t *testing.T) {
	r := newTestRouter()

	id := strings.Repeat("b", 24)
	w, body := doJSON(t, r, http.MethodDelete, "/userQuestions/"+id, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required", body["error"])
}

func TestChatRequiresMessage(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/chat", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Message is required", body["error"])
}

func TestFixFlowRejectsInvalidMode(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/fixFlow", `{"error":"some stack trace","mode":"everything"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid mode", body["error"])
}

func TestFixFlowRequiresErrorText(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/fixFlow", `{"error":"  ","mode":"blogs"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Error text is required", body["error"])
}

func TestListSavesRequiresEmail(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/saves", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required", body["error"])
}

func TestPointsBreakdownRequiresEmail(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/users/points-breakdown", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required", body["error"])
}
