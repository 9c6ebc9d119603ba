package controllers

import (
	"context"
	"errors"
	"net/http"

	"dev-discuss/ai"
	"dev-discuss/environment"

	"github.com/gin-gonic/gin"
)

// Chat runs one conversational AI turn. A missing conversation id starts a
// new conversation; the handle is returned so the client can continue it.
func Chat(c *gin.Context) {

	data := struct {
		Message        string `json:"message"`
		ConversationID string `json:"conversationId"`
	}{}

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	if data.Message == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgMessageRequired})
		return
	}

	handle := data.ConversationID
	if handle == "" {
		handle = environment.Env.AI.StartConversation()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ai.ChatTimeout)
	defer cancel()

	reply, err := environment.Env.AI.SendTurn(ctx, handle, data.Message)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusGatewayTimeout, ErrorResponse{MsgAITimeout})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversationId": handle, "reply": reply})
}
