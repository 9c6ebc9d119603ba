package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordTopic(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"TypeError: undefined is not a function (javascript)", "javascript"},
		{"Cannot read properties of null in my React component", "react"},
		{"pymongo.errors.ServerSelectionTimeoutError ... MongoDB", "mongodb"},
		{"IndentationError: unexpected indent in Python script", "python"},
		{"django migration failed with OperationalError", "javascript"}, // "go" inside django must not fire
		{"google chrome devtools shows a CORS failure", "javascript"},
		{"go build failed: undefined symbol", "go"},
		{"segfault in some C program", "javascript"}, // off-vocabulary falls back to the default
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, keywordTopic(tt.text), "input: %s", tt.text)
	}
}

func TestKeywordTopicFirstMatchWins(t *testing.T) {
	// both javascript and react appear; vocabulary order decides
	assert.Equal(t, "javascript", keywordTopic("react app javascript error"))
}
