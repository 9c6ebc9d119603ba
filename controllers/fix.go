package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"dev-discuss/ai"
	"dev-discuss/apperror"
	"dev-discuss/environment"
	"dev-discuss/models"

	"github.com/gin-gonic/gin"
)

// mode selectors of the error-diagnosis flow
const (
	fixModeBlogs     = "blogs"
	fixModeQuestions = "questions"
	fixModeAI        = "ai"
)

// knownTopics is the fallback vocabulary when the AI classification is
// unavailable; first whole-word match wins
var knownTopics = []string{
	"javascript",
	"typescript",
	"python",
	"java",
	"go",
	"react",
	"node",
	"mongodb",
	"css",
	"html",
}

// topics are matched as whole words, otherwise "go" fires inside
// "django", "mongodb" or "pymongo"
var topicPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(knownTopics))
	for i, topic := range knownTopics {
		patterns[i] = regexp.MustCompile(`\b` + topic + `\b`)
	}
	return patterns
}()

const defaultTopic = "javascript"

// keywordTopic is the deterministic fallback classifier
func keywordTopic(errorText string) string {
	lowered := strings.ToLower(errorText)
	for i, pattern := range topicPatterns {
		if pattern.MatchString(lowered) {
			return knownTopics[i]
		}
	}
	return defaultTopic
}

// classifyTopic reduces a free-text error to a one-word topic, degrading to
// the keyword matcher when the model is slow or unavailable
func classifyTopic(ctx context.Context, errorText string) string {

	prompt := fmt.Sprintf(
		"Classify the following error message into exactly one word out of [%s]. "+
			"Reply with that word only.\nError: %s",
		strings.Join(knownTopics, ", "), errorText)

	reply := environment.Env.AI.CompleteWithFallback(ctx, prompt, keywordTopic(errorText), ai.ClassifyTimeout)

	topic := strings.ToLower(strings.TrimSpace(reply))
	for _, known := range knownTopics {
		if topic == known {
			return topic
		}
	}

	// the model answered something off-vocabulary
	return keywordTopic(errorText)
}

// FixFlow is the AI-assisted error triage: the error text is classified
// into a topic, then the selected mode decides whether related blogs,
// related questions, or an AI fix explanation is returned
func FixFlow(c *gin.Context) {

	data := struct {
		Error string `json:"error"`
		Mode  string `json:"mode"`
	}{}

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	if strings.TrimSpace(data.Error) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgErrorTextRequired})
		return
	}

	switch data.Mode {
	case fixModeBlogs, fixModeQuestions, fixModeAI:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgInvalidMode})
		return
	}

	ctx := c.Request.Context()
	topic := classifyTopic(ctx, data.Error)

	switch data.Mode {
	case fixModeBlogs:
		blogs, err := environment.Env.BlogModel.SearchByTag(topic)
		if err != nil && !errors.Is(err, apperror.ErrNoData) {
			status, apiError := HandleError(err)
			c.JSON(status, apiError)
			return
		}
		if blogs == nil {
			blogs = []models.Blog{}
		}
		c.JSON(http.StatusOK, gin.H{"topic": topic, "blogs": blogs})

	case fixModeQuestions:
		questions, err := environment.Env.QuestionModel.ListByTag(topic)
		if err != nil && !errors.Is(err, apperror.ErrNoData) {
			status, apiError := HandleError(err)
			c.JSON(status, apiError)
			return
		}
		if questions == nil {
			questions = []models.Question{}
		}
		c.JSON(http.StatusOK, gin.H{"topic": topic, "questions": questions})

	case fixModeAI:
		prompt := fmt.Sprintf(
			"Explain the likely cause of this %s error and how to fix it:\n%s",
			topic, data.Error)

		fixCtx, cancel := context.WithTimeout(ctx, ai.FixTimeout)
		defer cancel()

		explanation, err := environment.Env.AI.Complete(fixCtx, prompt)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				c.JSON(http.StatusGatewayTimeout, ErrorResponse{MsgAITimeout})
				return
			}
			status, apiError := HandleError(err)
			c.JSON(status, apiError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"topic": topic, "fix": explanation})
	}
}
