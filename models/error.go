package models

import (
	"errors"
)

// custom error types (generic types found in apperror package)

// question
// transformed by controllers to 400/404 responses
var (
	ErrQuestionIDInvalid    = errors.New("invalid question id format")
	ErrCommentFieldsMissing = errors.New("comment text and author are required")
	ErrEmailMissing         = errors.New("email is required")
)

// blog / event / saves
var (
	ErrBlogIDInvalid  = errors.New("invalid blog id format")
	ErrEventIDInvalid = errors.New("invalid event id format")
	ErrSaveIDInvalid  = errors.New("invalid save id format")
)

// users & points
var (
	ErrPointCategoryInvalid = errors.New("unknown point category")
)

// gamified progress
var (
	ErrSubmissionFieldsMissing = errors.New("email, item id and solution are required")
)
