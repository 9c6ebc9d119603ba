package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dev-discuss/apperror"
	"dev-discuss/models"
)

// ErrorResponse is the standardized error structure returned by any API
type ErrorResponse struct {
	Error string `json:"error"`
}

// client-facing messages; the exact wording is part of the API contract
const (
	MsgInvalidQuestionID = "Invalid question ID format"
	MsgQuestionNotFound  = "Question not found"
	MsgNoQuestions       = "No questions found"
	MsgCommentFields     = "Comment text and author name are required"
	MsgEmailRequired     = "Email is required"
	MsgMessageRequired   = "Message is required"
	MsgErrorTextRequired = "Error text is required"
	MsgInvalidMode       = "Invalid mode"
	MsgAlreadyFinished   = "You have already finished this problem"
	MsgAITimeout         = "AI request timed out"
	MsgNotFound          = "Not found"
	MsgSystemError       = "Internal server error"
)

// HandleError translates model errors into an HTTP status and the
// standardized error body. Not-found conditions are context-specific and
// handled by the individual controllers; everything that falls through
// becomes a generic 500 so no internal detail reaches the client.
func HandleError(err error) (int, ErrorResponse) {

	if err == nil {
		return 0, ErrorResponse{}
	}

	fmt.Println(err)
	switch {
	case errors.Is(err, models.ErrQuestionIDInvalid):
		return http.StatusBadRequest, ErrorResponse{MsgInvalidQuestionID}
	case errors.Is(err, models.ErrCommentFieldsMissing):
		return http.StatusBadRequest, ErrorResponse{MsgCommentFields}
	case errors.Is(err, models.ErrEmailMissing):
		return http.StatusBadRequest, ErrorResponse{MsgEmailRequired}
	case errors.Is(err, models.ErrBlogIDInvalid),
		errors.Is(err, models.ErrEventIDInvalid),
		errors.Is(err, models.ErrSaveIDInvalid):
		return http.StatusBadRequest, ErrorResponse{err.Error()}
	case errors.Is(err, models.ErrSubmissionFieldsMissing):
		return http.StatusBadRequest, ErrorResponse{err.Error()}
	case errors.Is(err, apperror.ErrNoData):
		return http.StatusNotFound, ErrorResponse{MsgNotFound}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{MsgAITimeout}
	default:
		return http.StatusInternalServerError, ErrorResponse{MsgSystemError}
	}
}
